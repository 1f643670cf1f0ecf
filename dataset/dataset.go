package dataset

import (
	"fmt"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

/*
Dataset represents an ordered collection of records labeled for a binary
classification task: every record is labeled either with the positive or with
the negative response of the dataset, and all records share the same number
of attributes.

A Dataset is read-only once built. Its subsets are independent copies that
never alias the records of the dataset they were obtained from.
*/
type Dataset struct {
	records  []Record
	positive string
	negative string
}

/*
New takes a slice of records, a positive and a negative label and returns a
dataset built with them or a FormatError if a record has a response other
than the given labels, or an arity different from that of the first record.
The labels must be different.
*/
func New(records []Record, positive, negative string) (*Dataset, error) {
	if positive == negative {
		return nil, fmt.Errorf("positive and negative labels must differ, both are %q", positive)
	}
	for i, r := range records {
		if err := checkRecord(r, records[0].Arity(), positive, negative); err != nil {
			return nil, &FormatError{Reason: fmt.Sprintf("record %d: %s", i, err)}
		}
	}
	return &Dataset{append([]Record(nil), records...), positive, negative}, nil
}

func checkRecord(r Record, arity int, positive, negative string) error {
	if r.Arity() != arity {
		return fmt.Errorf("expected %d attributes, got %d", arity, r.Arity())
	}
	if r.Response() != positive && r.Response() != negative {
		return fmt.Errorf("response %q is neither %q nor %q", r.Response(), positive, negative)
	}
	return nil
}

// Positive returns the positive label of the dataset
func (d *Dataset) Positive() string {
	return d.positive
}

// Negative returns the negative label of the dataset
func (d *Dataset) Negative() string {
	return d.negative
}

// Count returns the number of records in the dataset
func (d *Dataset) Count() int {
	return len(d.records)
}

// Records returns a copy of the slice of records in the dataset
func (d *Dataset) Records() []Record {
	return append([]Record(nil), d.records...)
}

/*
Arity returns the number of attributes of the records in the dataset, or 0
if the dataset is empty.
*/
func (d *Dataset) Arity() int {
	if len(d.records) == 0 {
		return 0
	}
	return d.records[0].Arity()
}

// ResponseCount returns the number of records labeled with the given label
func (d *Dataset) ResponseCount(label string) int {
	var count int
	for _, r := range d.records {
		if r.response == label {
			count++
		}
	}
	return count
}

// PositiveCount returns the number of records labeled as positive
func (d *Dataset) PositiveCount() int {
	return d.ResponseCount(d.positive)
}

// NegativeCount returns the number of records labeled as negative
func (d *Dataset) NegativeCount() int {
	return d.ResponseCount(d.negative)
}

/*
AllPositive returns whether every record in the dataset is labeled as
positive. It is true for an empty dataset.
*/
func (d *Dataset) AllPositive() bool {
	return d.PositiveCount() == len(d.records)
}

/*
AllNegative returns whether every record in the dataset is labeled as
negative. It is true for an empty dataset.
*/
func (d *Dataset) AllNegative() bool {
	return d.NegativeCount() == len(d.records)
}

/*
MajorityLabel returns the positive label if there are strictly more positive
records than negative ones in the dataset, and the negative label otherwise.
Ties resolve to the negative label.
*/
func (d *Dataset) MajorityLabel() string {
	if d.PositiveCount() > d.NegativeCount() {
		return d.positive
	}
	return d.negative
}

/*
CheckAttribute returns an IndexError if the given attribute index is out of
the [0, Arity) range, nil otherwise.
*/
func (d *Dataset) CheckAttribute(attribute int) error {
	if attribute < 0 || attribute >= d.Arity() {
		return &IndexError{Index: attribute, Arity: d.Arity()}
	}
	return nil
}

/*
DistinctValues takes an attribute index and returns the values the records
in the dataset take for it, in the order they are first seen, or an
IndexError if the index is out of range.
*/
func (d *Dataset) DistinctValues(attribute int) ([]string, error) {
	if err := d.CheckAttribute(attribute); err != nil {
		return nil, err
	}
	seen := linkedhashset.New()
	for _, r := range d.records {
		seen.Add(r.attributes[attribute])
	}
	result := make([]string, 0, seen.Size())
	for _, v := range seen.Values() {
		result = append(result, v.(string))
	}
	return result, nil
}

/*
SubsetWhere takes an attribute index and a value and returns a new dataset
with copies of the records that take that value for the attribute, labeled
with the same positive and negative responses. It returns an IndexError if
the index is out of range.
*/
func (d *Dataset) SubsetWhere(attribute int, value string) (*Dataset, error) {
	if err := d.CheckAttribute(attribute); err != nil {
		return nil, err
	}
	var records []Record
	for _, r := range d.records {
		if r.attributes[attribute] == value {
			records = append(records, NewRecord(r.attributes, r.response))
		}
	}
	return &Dataset{records, d.positive, d.negative}, nil
}

/*
Partition takes a pair of record positions from and to and returns two
datasets: one with the records in [from, to) and another with the rest
of them, in their original order. Positions are clamped to [0, Count].
*/
func (d *Dataset) Partition(from, to int) (*Dataset, *Dataset) {
	from, to = clamp(from, len(d.records)), clamp(to, len(d.records))
	if to < from {
		to = from
	}
	inside := append([]Record(nil), d.records[from:to]...)
	outside := make([]Record, 0, len(d.records)-len(inside))
	outside = append(outside, d.records[:from]...)
	outside = append(outside, d.records[to:]...)
	return &Dataset{inside, d.positive, d.negative}, &Dataset{outside, d.positive, d.negative}
}

/*
Permute takes a permutation of record positions, like the one returned by
math/rand's Perm, and returns a dataset with the records reordered
accordingly.
*/
func (d *Dataset) Permute(perm []int) (*Dataset, error) {
	if len(perm) != len(d.records) {
		return nil, fmt.Errorf("permutation of %d positions for %d records", len(perm), len(d.records))
	}
	records := make([]Record, len(perm))
	for i, p := range perm {
		if p < 0 || p >= len(d.records) {
			return nil, fmt.Errorf("permutation position %d out of range", p)
		}
		records[i] = d.records[p]
	}
	return &Dataset{records, d.positive, d.negative}, nil
}

func (d *Dataset) String() string {
	return fmt.Sprintf("[%d records: %d %s, %d %s]", d.Count(), d.PositiveCount(), d.positive, d.NegativeCount(), d.negative)
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
