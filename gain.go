package id3

import (
	"math"

	"github.com/pbanos/id3/dataset"
)

/*
BinaryEntropy takes the number of records of each of two classes and returns
the entropy in bits of a set with those records: a value between 0 and 1
measuring how mixed the classes are. It is 0 when either count is 0.
*/
func BinaryEntropy(a, b int) float64 {
	if a <= 0 || b <= 0 {
		return 0.0
	}
	total := float64(a + b)
	pa := float64(a) / total
	pb := float64(b) / total
	return -pa*math.Log2(pa) - pb*math.Log2(pb)
}

type valueTally struct {
	positive int
	negative int
}

/*
SplitEntropy takes a dataset and an attribute index and returns the entropy
remaining after splitting the dataset on the attribute: the average of the
entropies of the subsets for each value of the attribute, weighted by the
size of each subset. It returns an IndexError if the attribute index is out
of range for the dataset.
*/
func SplitEntropy(d *dataset.Dataset, attribute int) (float64, error) {
	if err := d.CheckAttribute(attribute); err != nil {
		return 0.0, err
	}
	var values []string
	tallies := make(map[string]*valueTally)
	for _, r := range d.Records() {
		v, err := r.Value(attribute)
		if err != nil {
			return 0.0, err
		}
		t, ok := tallies[v]
		if !ok {
			t = &valueTally{}
			tallies[v] = t
			values = append(values, v)
		}
		if r.Response() == d.Positive() {
			t.positive++
		} else {
			t.negative++
		}
	}
	var result float64
	totalCount := float64(d.Count())
	for _, v := range values {
		t := tallies[v]
		result += BinaryEntropy(t.positive, t.negative) * float64(t.positive+t.negative) / totalCount
	}
	return result, nil
}

/*
Gain takes a dataset and an attribute index and returns the information gain
of splitting the dataset on the attribute: the entropy of the dataset minus
its SplitEntropy for the attribute. The result is never negative. It returns
an IndexError if the attribute index is out of range for the dataset.
*/
func Gain(d *dataset.Dataset, attribute int) (float64, error) {
	splitEntropy, err := SplitEntropy(d, attribute)
	if err != nil {
		return 0.0, err
	}
	informationGain := BinaryEntropy(d.PositiveCount(), d.NegativeCount()) - splitEntropy
	if informationGain < 0 {
		return 0.0, nil
	}
	return informationGain, nil
}
