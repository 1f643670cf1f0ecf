package dataset

import "fmt"

/*
FormatError is returned when a record source holds a malformed entry: a line
with the wrong number of fields or a response that is neither of the labels
configured for the dataset.

Line is the 1-based position of the offending entry in its source, or 0 when
the entry does not come from a line-oriented source.
*/
type FormatError struct {
	Line   int
	Reason string
}

func (fe *FormatError) Error() string {
	if fe.Line == 0 {
		return fmt.Sprintf("malformed record: %s", fe.Reason)
	}
	return fmt.Sprintf("malformed record on line %d: %s", fe.Line, fe.Reason)
}

/*
IndexError is returned when an attribute index outside [0, Arity) is used
to query a dataset or a record. It signals a broken contract on the caller
side and is never clamped.
*/
type IndexError struct {
	Index int
	Arity int
}

func (ie *IndexError) Error() string {
	return fmt.Sprintf("attribute index %d out of range for arity %d", ie.Index, ie.Arity)
}
