package dataset

import (
	"fmt"
	"strings"
)

/*
Record represents a labeled item from which to learn: an ordered sequence
of categorical attribute values and the response the item is labeled with.

A Record is immutable once constructed.
*/
type Record struct {
	attributes []string
	response   string
}

/*
NewRecord takes a slice of attribute values and a response and returns a
record with them. The slice is copied, so later changes to it do not affect
the record.
*/
func NewRecord(attributes []string, response string) Record {
	return Record{append([]string(nil), attributes...), response}
}

// Attributes returns a copy of the attribute values of the record
func (r Record) Attributes() []string {
	return append([]string(nil), r.attributes...)
}

/*
Value takes an attribute index and returns the value of the record for it,
or an IndexError if the record has no attribute with that index.
*/
func (r Record) Value(attribute int) (string, error) {
	if attribute < 0 || attribute >= len(r.attributes) {
		return "", &IndexError{Index: attribute, Arity: len(r.attributes)}
	}
	return r.attributes[attribute], nil
}

// Response returns the label of the record
func (r Record) Response() string {
	return r.response
}

// Arity returns the number of attributes of the record
func (r Record) Arity() int {
	return len(r.attributes)
}

func (r Record) String() string {
	return fmt.Sprintf("[%s -> %s]", strings.Join(r.attributes, ","), r.response)
}
