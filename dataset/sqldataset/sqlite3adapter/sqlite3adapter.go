/*
Package sqlite3adapter provides an implementation of the Adapter interface
in the sqldataset package that works over a SQLite3 database file.
*/
package sqlite3adapter

import (
	"database/sql"
	"fmt"

	"github.com/pbanos/id3/dataset/sqldataset"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

type adapter struct {
	db *sql.DB
}

/*
New takes a path to an SQLite3 database file and returns an Adapter that
works on the file's database or an error if it fails to open as an sqlite3
database.
*/
func New(path string) (sqldataset.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite3 database %s: %w", path, err)
	}
	return &adapter{db}, nil
}

func (a *adapter) DB() *sql.DB {
	return a.db
}

func (a *adapter) ColumnName(name string) (string, error) {
	return sqldataset.QuoteIdentifier(name)
}

func (a *adapter) Placeholder(int) string {
	return "?"
}

func (a *adapter) Close() error {
	return a.db.Close()
}
