package tree

import "fmt"

/*
Node is a node of a binary decision tree. It is either a *Decision, that asks
about the value of an attribute and has a child for each answer, or a *Leaf,
that holds the label of the records reaching it. No other implementations
exist: code handling nodes switches on these two types.

Edge returns the attribute value under which the node hangs from its parent
decision, or an empty string for the root of a tree.
*/
type Node interface {
	Edge() string
	isNode()
}

/*
Decision is an inner node of the tree. It splits records on the value they
take for an attribute, with one child node per value seen while growing it.
*/
type Decision struct {
	edge      string
	attribute int
	children  []Node
	index     map[string]int
}

/*
Leaf is a terminal node of the tree, holding the label predicted for the
records reaching it.
*/
type Leaf struct {
	edge  string
	label string
}

/*
NewDecision takes an edge value, the index of the attribute to split on and
the children nodes and returns a decision node with them. Each child is hung
under its own edge value, so an error is returned if two children share it.
*/
func NewDecision(edge string, attribute int, children ...Node) (*Decision, error) {
	d := &Decision{
		edge:      edge,
		attribute: attribute,
		children:  make([]Node, 0, len(children)),
		index:     make(map[string]int, len(children)),
	}
	for _, c := range children {
		if c == nil {
			return nil, fmt.Errorf("nil child for decision on attribute %d", attribute)
		}
		if _, ok := d.index[c.Edge()]; ok {
			return nil, fmt.Errorf("duplicate edge %q for decision on attribute %d", c.Edge(), attribute)
		}
		d.index[c.Edge()] = len(d.children)
		d.children = append(d.children, c)
	}
	return d, nil
}

// NewLeaf takes an edge value and a label and returns a leaf node with them
func NewLeaf(edge, label string) *Leaf {
	return &Leaf{edge, label}
}

// Edge returns the value under which the node hangs from its parent
func (d *Decision) Edge() string {
	return d.edge
}

// Attribute returns the index of the attribute the decision splits on
func (d *Decision) Attribute() int {
	return d.attribute
}

// Children returns the children of the decision in the order they were added
func (d *Decision) Children() []Node {
	return append([]Node(nil), d.children...)
}

/*
Child takes an attribute value and returns the child hanging under that
value and true, or nil and false if there is no such child.
*/
func (d *Decision) Child(value string) (Node, bool) {
	i, ok := d.index[value]
	if !ok {
		return nil, false
	}
	return d.children[i], true
}

func (d *Decision) String() string {
	return Format(d, nil)
}

func (*Decision) isNode() {}

// Edge returns the value under which the node hangs from its parent
func (l *Leaf) Edge() string {
	return l.edge
}

// Label returns the label predicted by the leaf
func (l *Leaf) Label() string {
	return l.label
}

func (l *Leaf) String() string {
	return Format(l, nil)
}

func (*Leaf) isNode() {}
