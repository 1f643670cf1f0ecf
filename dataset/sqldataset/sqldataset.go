package sqldataset

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pbanos/id3/dataset"
)

/*
MaxRecordInsertionsPerStatement is the maximum number of records that are
added with a single insert command by Store. Storing more results in more
insertion commands.
*/
const MaxRecordInsertionsPerStatement = 10

/*
Adapter is an interface providing the methods needed to load and store
datasets on a database backend.
*/
type Adapter interface {
	// DB returns the database handle of the adapter
	DB() *sql.DB
	// ColumnName takes the name of a table or column and returns
	// it quoted as an identifier, or an error if it cannot be used.
	ColumnName(string) (string, error)
	// Placeholder takes the 1-based position of a statement argument
	// and returns the placeholder for it.
	Placeholder(int) string
	// Close releases the database handle
	Close() error
}

/*
Table describes where a dataset is stored: the name of the table, the
columns holding the attribute values in attribute order, and the column
holding the response.
*/
type Table struct {
	Name             string
	AttributeColumns []string
	ResponseColumn   string
}

func (t Table) quoted(a Adapter) (string, []string, error) {
	if len(t.AttributeColumns) == 0 {
		return "", nil, fmt.Errorf("table %s has no attribute columns", t.Name)
	}
	name, err := a.ColumnName(t.Name)
	if err != nil {
		return "", nil, err
	}
	columns := make([]string, 0, len(t.AttributeColumns)+1)
	for _, c := range append(append([]string(nil), t.AttributeColumns...), t.ResponseColumn) {
		qc, err := a.ColumnName(c)
		if err != nil {
			return "", nil, err
		}
		columns = append(columns, qc)
	}
	return name, columns, nil
}

/*
Load takes a context, an Adapter, a Table and the positive and negative
labels and returns the dataset read from the table or an error. A row with a
NULL value or with a response other than the labels makes it fail with a
*dataset.FormatError.
*/
func Load(ctx context.Context, a Adapter, t Table, positive, negative string) (*dataset.Dataset, error) {
	name, columns, err := t.quoted(a)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(columns, ", "), name)
	rows, err := a.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying records from %s: %w", t.Name, err)
	}
	defer rows.Close()
	var records []dataset.Record
	for j := 1; rows.Next(); j++ {
		values := make([]sql.NullString, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err = rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning record %d from %s: %w", j, t.Name, err)
		}
		fields := make([]string, len(values))
		for i, v := range values {
			if !v.Valid {
				return nil, &dataset.FormatError{Reason: fmt.Sprintf("row %d of %s: NULL value for column %s", j, t.Name, columns[i])}
			}
			fields[i] = v.String
		}
		response := fields[len(fields)-1]
		if response != positive && response != negative {
			return nil, &dataset.FormatError{Reason: fmt.Sprintf("row %d of %s: response %q is neither %q nor %q", j, t.Name, response, positive, negative)}
		}
		records = append(records, dataset.NewRecord(fields[:len(fields)-1], response))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("reading records from %s: %w", t.Name, err)
	}
	return dataset.New(records, positive, negative)
}

/*
Store takes a context, an Adapter, a Table and a dataset, creates the table
if it does not exist and inserts the records of the dataset on it. It
returns the number of records inserted and an error if not all of them
could be.
*/
func Store(ctx context.Context, a Adapter, t Table, d *dataset.Dataset) (int, error) {
	if d.Count() > 0 && d.Arity() != len(t.AttributeColumns) {
		return 0, fmt.Errorf("table %s has %d attribute columns for records with %d attributes", t.Name, len(t.AttributeColumns), d.Arity())
	}
	name, columns, err := t.quoted(a)
	if err != nil {
		return 0, err
	}
	var createStmtBuf bytes.Buffer
	createStmtBuf.WriteString("CREATE TABLE IF NOT EXISTS ")
	createStmtBuf.WriteString(name)
	createStmtBuf.WriteString("(")
	for i, c := range columns {
		if i > 0 {
			createStmtBuf.WriteString(", ")
		}
		createStmtBuf.WriteString(c)
		createStmtBuf.WriteString(" TEXT NOT NULL")
	}
	createStmtBuf.WriteString(")")
	if _, err = a.DB().ExecContext(ctx, createStmtBuf.String()); err != nil {
		return 0, fmt.Errorf("creating table %s: %w", t.Name, err)
	}
	records := d.Records()
	var stored int
	for chunkStart := 0; chunkStart < len(records); chunkStart += MaxRecordInsertionsPerStatement {
		chunkEnd := chunkStart + MaxRecordInsertionsPerStatement
		if chunkEnd > len(records) {
			chunkEnd = len(records)
		}
		stmt, args := insertStatement(a, name, columns, records[chunkStart:chunkEnd])
		if _, err = a.DB().ExecContext(ctx, stmt, args...); err != nil {
			return stored, fmt.Errorf("inserting records %d to %d into %s: %w", chunkStart, chunkEnd, t.Name, err)
		}
		stored = chunkEnd
	}
	return stored, nil
}

func insertStatement(a Adapter, name string, columns []string, records []dataset.Record) (string, []interface{}) {
	var insertStmtBuf bytes.Buffer
	args := make([]interface{}, 0, len(records)*len(columns))
	insertStmtBuf.WriteString("INSERT INTO ")
	insertStmtBuf.WriteString(name)
	insertStmtBuf.WriteString(" (")
	insertStmtBuf.WriteString(strings.Join(columns, ", "))
	insertStmtBuf.WriteString(") VALUES ")
	for i, r := range records {
		if i > 0 {
			insertStmtBuf.WriteString(", ")
		}
		insertStmtBuf.WriteString("(")
		for j, v := range append(r.Attributes(), r.Response()) {
			if j > 0 {
				insertStmtBuf.WriteString(", ")
			}
			args = append(args, v)
			insertStmtBuf.WriteString(a.Placeholder(len(args)))
		}
		insertStmtBuf.WriteString(")")
	}
	return insertStmtBuf.String(), args
}

/*
QuoteIdentifier takes the name of a table or column and returns it between
double quotes, or an error if it is empty or contains a double quote.
*/
func QuoteIdentifier(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty identifier")
	}
	if strings.ContainsAny(name, `"`) {
		return "", fmt.Errorf(`identifier '%s' contains invalid character '"'`, name)
	}
	return `"` + name + `"`, nil
}
