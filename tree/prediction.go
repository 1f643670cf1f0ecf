package tree

import (
	"github.com/pbanos/id3/dataset"
)

/*
Classify takes the root node of a tree and the attribute values of a record
and returns the label the tree predicts for it and true.

When the record reaches a decision with no child for the value it takes (a
value never seen while growing that part of the tree), or the record lacks
the attribute the decision asks about, the classification is unknown and
Classify returns an empty label and false. Unknown is an outcome, not an
error: it never matches any label.
*/
func Classify(n Node, attributes []string) (string, bool) {
	for {
		switch node := n.(type) {
		case *Leaf:
			return node.label, true
		case *Decision:
			if node.attribute < 0 || node.attribute >= len(attributes) {
				return "", false
			}
			child, ok := node.Child(attributes[node.attribute])
			if !ok {
				return "", false
			}
			n = child
		default:
			return "", false
		}
	}
}

/*
Test takes the root node of a tree and a dataset and returns two values:
  - the rate of records in the dataset whose response the tree predicts
    correctly, between 0 and 1 (0 for an empty dataset)
  - the number of records for which the classification is unknown. These
    count as incorrect predictions for the rate.
*/
func Test(n Node, d *dataset.Dataset) (float64, int) {
	if d.Count() == 0 {
		return 0.0, 0
	}
	var correct float64
	var unknown int
	for _, r := range d.Records() {
		label, ok := Classify(n, r.Attributes())
		if !ok {
			unknown++
			continue
		}
		if label == r.Response() {
			correct += 1.0
		}
	}
	return correct / float64(d.Count()), unknown
}
