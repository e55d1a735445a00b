package cssast

// WalkStatus controls traversal from a WalkFunc.
type WalkStatus int

const (
	// WalkContinue visits the node's children next.
	WalkContinue WalkStatus = iota

	// WalkSkipChildren moves on to the node's next sibling.
	WalkSkipChildren

	// WalkStop ends the walk immediately.
	WalkStop
)

// WalkFunc is the function signature for Walk callbacks. parent is nil
// for top-level nodes. Return a non-nil error to stop the walk.
type WalkFunc func(n *Node, parent *Node) (WalkStatus, error)

// Walk performs a pre-order traversal of the given nodes. Children are
// re-read after each visit, so a callback may replace the visited
// node's own Nodes slice and the walk picks up the replacement.
func Walk(nodes []*Node, walkFunc WalkFunc) error {
	_, err := walk(nodes, nil, walkFunc)
	return err
}

func walk(nodes []*Node, parent *Node, walkFunc WalkFunc) (WalkStatus, error) {
	for _, n := range nodes {
		status, err := walkFunc(n, parent)
		if err != nil {
			return WalkStop, err
		}

		switch status {
		case WalkStop:
			return WalkStop, nil
		case WalkSkipChildren:
			continue
		}

		if len(n.Nodes) > 0 {
			status, err := walk(n.Nodes, n, walkFunc)
			if err != nil {
				return WalkStop, err
			}
			if status == WalkStop {
				return WalkStop, nil
			}
		}
	}

	return WalkContinue, nil
}

// FindAll returns all nodes matching the predicate, in visit order.
func FindAll(nodes []*Node, predicate func(n *Node) bool) []*Node {
	var result []*Node

	//nolint:errcheck,revive // the callback never returns an error
	Walk(nodes, func(n *Node, _ *Node) (WalkStatus, error) {
		if predicate(n) {
			result = append(result, n)
		}
		return WalkContinue, nil
	})

	return result
}

// FindFirst returns the first node matching the predicate, or nil.
func FindFirst(nodes []*Node, predicate func(n *Node) bool) *Node {
	var found *Node

	//nolint:errcheck,revive // the callback never returns an error
	Walk(nodes, func(n *Node, _ *Node) (WalkStatus, error) {
		if predicate(n) {
			found = n
			return WalkStop, nil
		}
		return WalkContinue, nil
	})

	return found
}

// FindByKind returns all nodes of the specified kind.
func FindByKind(nodes []*Node, kind Kind) []*Node {
	return FindAll(nodes, func(n *Node) bool {
		return n.Kind == kind
	})
}
