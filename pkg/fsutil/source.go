package fsutil

import (
	"context"
	"fmt"
	"io"
	"os"
)

// StdinPath is the pseudo-path that selects standard input.
const StdinPath = "-"

// StdinName is the display name used for input read from stdin.
const StdinName = "<stdin>"

// ReadSource reads CSS source from path, or from stdin when path is
// empty or StdinPath. The second return value is the display name for
// diagnostics.
func ReadSource(ctx context.Context, path string, stdin io.Reader) ([]byte, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("read source: %w", ctx.Err())
	default:
	}

	if path == "" || path == StdinPath {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return content, StdinName, nil
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, "", fmt.Errorf("stat %s: %w", path, err)
	}
	if stat.IsDir() {
		return nil, "", fmt.Errorf("%s is a directory", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}
	return content, path, nil
}
