package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/dataset/arff"
	"github.com/pbanos/id3/dataset/mongodataset"
	"github.com/pbanos/id3/dataset/sqldataset"
	"github.com/pbanos/id3/dataset/sqldataset/pgadapter"
	"github.com/pbanos/id3/dataset/sqldataset/sqlite3adapter"
	mgo "gopkg.in/mgo.v2"
)

type source int

const (
	fileSource source = iota
	sqliteSource
	postgresSource
	mongoSource
)

// sourceOf tells the kind of dataset source from an input or output string:
// a PostgreSQL or MongoDB connection URL, a path to an SQLite3 (.db) file or
// else a path to a CSV/ARFF file (STDIN or STDOUT if empty)
func sourceOf(s string) source {
	switch {
	case strings.HasPrefix(s, "postgresql://"), strings.HasPrefix(s, "postgres://"):
		return postgresSource
	case strings.HasPrefix(s, "mongodb://"):
		return mongoSource
	case strings.HasSuffix(s, ".db"):
		return sqliteSource
	}
	return fileSource
}

func (rc *rootCmdConfig) sqlAdapter(input string) (sqldataset.Adapter, error) {
	if sourceOf(input) == postgresSource {
		rc.Logf("Creating PostgreSQL adapter for url %s...", input)
		return pgadapter.New(input)
	}
	rc.Logf("Creating SQLite3 adapter for file %s...", input)
	return sqlite3adapter.New(input)
}

func (rc *rootCmdConfig) loadDataset(ctx context.Context, input string, s *settings) (*dataset.Dataset, error) {
	switch sourceOf(input) {
	case sqliteSource, postgresSource:
		t, err := s.sqlTable()
		if err != nil {
			return nil, err
		}
		a, err := rc.sqlAdapter(input)
		if err != nil {
			return nil, err
		}
		defer a.Close()
		rc.Logf("Loading dataset from table %s...", t.Name)
		return sqldataset.Load(ctx, a, t, s.positive, s.negative)
	case mongoSource:
		c, err := s.collection()
		if err != nil {
			return nil, err
		}
		rc.Logf("Dialing MongoDB at %s...", input)
		session, err := mgo.Dial(input)
		if err != nil {
			return nil, fmt.Errorf("dialing mongodb at %s: %w", input, err)
		}
		defer session.Close()
		rc.Logf("Loading dataset from collection %s...", c.Name)
		return mongodataset.Load(ctx, session, c, s.positive, s.negative)
	}
	if input == "" {
		rc.Logf("Reading dataset from STDIN...")
	} else {
		rc.Logf("Reading dataset from %s...", input)
	}
	return arff.ReadDatasetFromFilePath(input, s.arff)
}

// storeDataset writes the dataset to a database output and returns the
// number of records written
func (rc *rootCmdConfig) storeDataset(ctx context.Context, output string, s *settings, d *dataset.Dataset) (int, error) {
	switch sourceOf(output) {
	case sqliteSource, postgresSource:
		t, err := s.sqlTable()
		if err != nil {
			return 0, err
		}
		a, err := rc.sqlAdapter(output)
		if err != nil {
			return 0, err
		}
		defer a.Close()
		rc.Logf("Storing dataset on table %s...", t.Name)
		return sqldataset.Store(ctx, a, t, d)
	case mongoSource:
		c, err := s.collection()
		if err != nil {
			return 0, err
		}
		rc.Logf("Dialing MongoDB at %s...", output)
		session, err := mgo.Dial(output)
		if err != nil {
			return 0, fmt.Errorf("dialing mongodb at %s: %w", output, err)
		}
		defer session.Close()
		rc.Logf("Storing dataset on collection %s...", c.Name)
		if err := mongodataset.Store(ctx, session, c, d); err != nil {
			return 0, err
		}
		return d.Count(), nil
	}
	return 0, fmt.Errorf("cannot store datasets on %q: expected an SQLite3 (.db) file or a PostgreSQL or MongoDB URL", output)
}
