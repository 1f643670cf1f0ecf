/*
Package arff provides methods to read labeled datasets from line-oriented
text sources, such as the data section of ARFF files or plain CSV files.

Blank lines and lines starting with '@' or '%' are skipped. Every other line
is split on a delimiter: the last field is the response of the record and the
preceding fields are its attribute values. Values are compared as they are,
without trimming.
*/
package arff

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pbanos/id3/dataset"
)

// DefaultDelimiter is the field delimiter used when Options has none
const DefaultDelimiter = ","

/*
Options holds the parameters to read a dataset: the positive and negative
labels of the classification task, the field delimiter and whether single
quote characters must be removed from lines before splitting them.
*/
type Options struct {
	Positive    string
	Negative    string
	Delimiter   string
	StripQuotes bool
}

func (o Options) delimiter() string {
	if o.Delimiter == "" {
		return DefaultDelimiter
	}
	return o.Delimiter
}

/*
ReadDataset takes an io.Reader for a line-oriented stream and the options to
parse it and returns the dataset read from it or an error. A line with a
different number of fields than the first record, or with a response other
than the configured labels, makes it fail with a *dataset.FormatError.
*/
func ReadDataset(reader io.Reader, opts Options) (*dataset.Dataset, error) {
	records := []dataset.Record{}
	err := ReadRecords(reader, opts, func(_ int, r dataset.Record) (bool, error) {
		records = append(records, r)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return dataset.New(records, opts.Positive, opts.Negative)
}

/*
ReadRecords takes an io.Reader for a line-oriented stream, the options to
parse it and a lambda function on an integer and a dataset.Record that
returns a boolean value. It parses the records from the reader and for each
it calls the lambda function with the line number and the record as
parameters. If the lambda function returns true, it will continue processing
the next record, otherwise it will stop. An error is returned if something
goes wrong when reading the stream or parsing a record.
*/
func ReadRecords(reader io.Reader, opts Options, lambda func(int, dataset.Record) (bool, error)) error {
	if opts.Positive == opts.Negative {
		return fmt.Errorf("positive and negative labels must differ, both are %q", opts.Positive)
	}
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	arity := -1
	for l := 1; scanner.Scan(); l++ {
		line := scanner.Text()
		if skipLine(line) {
			continue
		}
		r, err := parseRecord(line, opts)
		if err != nil {
			return &dataset.FormatError{Line: l, Reason: err.Error()}
		}
		if arity < 0 {
			arity = r.Arity()
		}
		if r.Arity() != arity {
			return &dataset.FormatError{Line: l, Reason: fmt.Sprintf("expected %d fields, got %d", arity+1, r.Arity()+1)}
		}
		ok, err := lambda(l, r)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading records: %w", err)
	}
	return nil
}

/*
ReadDatasetFromFilePath takes a filepath string and the options to parse it,
opens the file to which the filepath points to and uses ReadDataset to return
the dataset read from it or an error. If the filepath is "", os.Stdin is read
instead.
*/
func ReadDatasetFromFilePath(filepath string, opts Options) (*dataset.Dataset, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading dataset: %w", err)
		}
		defer f.Close()
	}
	d, err := ReadDataset(f, opts)
	if err != nil {
		return nil, fmt.Errorf("parsing dataset file %s: %w", filepath, err)
	}
	return d, nil
}

func skipLine(line string) bool {
	return line == "" || line[0] == '@' || line[0] == '%'
}

func parseRecord(line string, opts Options) (dataset.Record, error) {
	if opts.StripQuotes {
		line = strings.ReplaceAll(line, "'", "")
	}
	fields := strings.Split(line, opts.delimiter())
	if len(fields) < 2 {
		return dataset.Record{}, fmt.Errorf("expected at least 2 fields, got %d", len(fields))
	}
	response := fields[len(fields)-1]
	if response != opts.Positive && response != opts.Negative {
		return dataset.Record{}, fmt.Errorf("response %q is neither %q nor %q", response, opts.Positive, opts.Negative)
	}
	return dataset.NewRecord(fields[:len(fields)-1], response), nil
}
