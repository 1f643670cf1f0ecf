package tree

import (
	"fmt"
	"strings"
)

/*
Depth returns the number of decisions on the longest path from the given
node down to a leaf: 0 for a leaf.
*/
func Depth(n Node) int {
	d, ok := n.(*Decision)
	if !ok {
		return 0
	}
	var deepest int
	for _, c := range d.children {
		if cd := Depth(c); cd > deepest {
			deepest = cd
		}
	}
	return deepest + 1
}

// Traverse takes a node, a bottomup boolean and an
// error-returning function that takes a node, and goes
// through the subtree under the node calling the function
// with every traversed node.
// Traverse will call the function with a parent node before
// calling it for its children if bottomup is false, and
// after its children if bottomup is true.
// If the call to the function returns an error, the traversing
// is aborted and the error is returned. Otherwise, when the
// traversing is over, nil is returned.
func Traverse(n Node, bottomup bool, f func(Node) error) error {
	if !bottomup {
		if err := f(n); err != nil {
			return err
		}
	}
	if d, ok := n.(*Decision); ok {
		for _, c := range d.children {
			if err := Traverse(c, bottomup, f); err != nil {
				return err
			}
		}
	}
	if bottomup {
		return f(n)
	}
	return nil
}

/*
Format takes a node and a slice of attribute names and returns a
multi-line drawing of the subtree under the node. Decisions are shown with
the name of their attribute, or its index when names has no entry for it.
*/
func Format(n Node, names []string) string {
	return subtreeString(n, nil, names)
}

func subtreeString(n Node, parent *Decision, names []string) string {
	var result string
	if parent != nil {
		result = fmt.Sprintf("{ %s is %s }\n", attributeName(parent.attribute, names), n.Edge())
	}
	switch n := n.(type) {
	case *Leaf:
		return fmt.Sprintf("%s{ %s }\n", result, n.label)
	case *Decision:
		result = fmt.Sprintf("%s[ %s ]\n", result, attributeName(n.attribute, names))
		for i, child := range n.children {
			for j, line := range strings.Split(subtreeString(child, n, names), "\n") {
				if len(line) == 0 {
					continue
				}
				if j == 0 {
					result = fmt.Sprintf("%s|__%s\n", result, line)
				} else if i == len(n.children)-1 {
					result = fmt.Sprintf("%s   %s\n", result, line)
				} else {
					result = fmt.Sprintf("%s|  %s\n", result, line)
				}
			}
		}
	}
	return result
}

func attributeName(attribute int, names []string) string {
	if attribute >= 0 && attribute < len(names) && names[attribute] != "" {
		return names[attribute]
	}
	return fmt.Sprintf("attribute %d", attribute)
}
