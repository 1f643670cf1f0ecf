/*
Package id3 grows binary decision trees from labeled categorical datasets
with the ID3 algorithm: each decision splits on the attribute that provides
the most information gain on the records reaching it, until records are
pure or no attribute is left to split on.
*/
package id3

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/tree"
)

// AttributePolicy determines how the candidate attributes are passed down
// from a decision to its children while growing a tree.
type AttributePolicy int

const (
	// PerBranch gives every child of a decision its own copy of the
	// candidate attributes, without the attribute the decision splits on.
	PerBranch AttributePolicy = iota
	// Shared keeps a single list of candidate attributes for the whole
	// growth. The attribute a decision splits on is removed from it before
	// growing its children, so removals made while growing a branch are
	// also seen by the branches grown after it.
	Shared
)

// ParseAttributePolicy takes the name of a policy and returns it
func ParseAttributePolicy(name string) (AttributePolicy, error) {
	switch strings.ToLower(name) {
	case "", "per-branch":
		return PerBranch, nil
	case "shared":
		return Shared, nil
	}
	return PerBranch, fmt.Errorf("unknown attribute policy %q (expected per-branch or shared)", name)
}

func (ap AttributePolicy) String() string {
	if ap == Shared {
		return "shared"
	}
	return "per-branch"
}

/*
Grower holds the configuration used to grow trees.
The zero value grows trees with the PerBranch attribute policy.
*/
type Grower struct {
	AttributePolicy AttributePolicy
}

/*
Build takes a context, a dataset and a slice of candidate attribute indexes
and returns the root of a tree grown on the dataset with the PerBranch
attribute policy. See (*Grower).Build.
*/
func Build(ctx context.Context, d *dataset.Dataset, attributes []int) (tree.Node, error) {
	return (&Grower{}).Build(ctx, d, attributes)
}

/*
Build takes a context, a dataset and a slice of candidate attribute indexes
and returns the root of a tree grown on the dataset, or an error.

A node is a leaf with the positive label if all its records are positive,
with the negative label if all are negative, and with the majority label if
no candidate attribute is left. Otherwise it is a decision on the candidate
attribute with the highest information gain (the earliest in the candidates
slice on ties, and the first candidate when no attribute has a positive
gain), with a child for every value the attribute takes on its records.

Build returns an IndexError if a candidate it evaluates is out of range for
the dataset and the context error if the context is cancelled. The given
slice is never modified.
*/
func (g *Grower) Build(ctx context.Context, d *dataset.Dataset, attributes []int) (tree.Node, error) {
	c := &candidates{append([]int(nil), attributes...)}
	return g.branchOut(ctx, d, "", c)
}

func (g *Grower) branchOut(ctx context.Context, d *dataset.Dataset, edge string, c *candidates) (tree.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if d.AllPositive() {
		return tree.NewLeaf(edge, d.Positive()), nil
	}
	if d.AllNegative() {
		return tree.NewLeaf(edge, d.Negative()), nil
	}
	if len(c.attributes) == 0 {
		return tree.NewLeaf(edge, d.MajorityLabel()), nil
	}
	selected, err := selectAttribute(d, c.attributes)
	if err != nil {
		return nil, err
	}
	p, err := NewPartition(d, selected)
	if err != nil {
		return nil, err
	}
	stCandidates := c
	if g.AttributePolicy != Shared {
		stCandidates = &candidates{c.without(selected)}
	}
	children := make([]tree.Node, 0, len(p.Subsets))
	for _, s := range p.Subsets {
		if g.AttributePolicy == Shared {
			c.remove(selected)
		}
		child, err := g.branchOut(ctx, s.Dataset, s.Value, stCandidates)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	n, err := tree.NewDecision(edge, selected, children...)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func selectAttribute(d *dataset.Dataset, attributes []int) (int, error) {
	selected := attributes[0]
	var bestGain float64
	for _, a := range attributes {
		informationGain, err := Gain(d, a)
		if err != nil {
			return 0, fmt.Errorf("evaluating attribute %d: %w", a, err)
		}
		if informationGain > bestGain {
			selected = a
			bestGain = informationGain
		}
	}
	return selected, nil
}

type candidates struct {
	attributes []int
}

func (c *candidates) without(attribute int) []int {
	result := make([]int, 0, len(c.attributes))
	for _, a := range c.attributes {
		if a != attribute {
			result = append(result, a)
		}
	}
	return result
}

func (c *candidates) remove(attribute int) {
	c.attributes = c.without(attribute)
}
