package id3

import (
	"fmt"

	"github.com/pbanos/id3/dataset"
)

/*
Partition represents a split of a dataset on an attribute into subsets, one
for each value the attribute takes on the dataset, along with the information
gain the split provides.
*/
type Partition struct {
	Attribute       int
	Subsets         []Subset
	InformationGain float64
}

// Subset is the part of a partitioned dataset whose records take Value
type Subset struct {
	Value   string
	Dataset *dataset.Dataset
}

/*
NewPartition takes a dataset and an attribute index and returns the
partition of the dataset on that attribute. Subsets are in the order their
values are first seen on the dataset, and none of them is empty. It returns
an IndexError if the attribute index is out of range for the dataset.
*/
func NewPartition(d *dataset.Dataset, attribute int) (*Partition, error) {
	informationGain, err := Gain(d, attribute)
	if err != nil {
		return nil, err
	}
	values, err := d.DistinctValues(attribute)
	if err != nil {
		return nil, err
	}
	subsets := make([]Subset, 0, len(values))
	for _, v := range values {
		s, err := d.SubsetWhere(attribute, v)
		if err != nil {
			return nil, fmt.Errorf("partitioning on attribute %d: %w", attribute, err)
		}
		if s.Count() == 0 {
			continue
		}
		subsets = append(subsets, Subset{v, s})
	}
	return &Partition{attribute, subsets, informationGain}, nil
}
