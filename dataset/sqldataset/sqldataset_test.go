package sqldataset_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/dataset/sqldataset"
	"github.com/pbanos/id3/dataset/sqldataset/pgadapter"
	"github.com/pbanos/id3/dataset/sqldataset/sqlite3adapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var weatherTable = sqldataset.Table{
	Name:             "weather",
	AttributeColumns: []string{"outlook", "temperature"},
	ResponseColumn:   "play",
}

func sqlite3(t *testing.T) sqldataset.Adapter {
	t.Helper()
	a, err := sqlite3adapter.New(filepath.Join(t.TempDir(), "weather.db"))
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestStoreAndLoad(t *testing.T) {
	ctx := context.Background()
	a := sqlite3(t)
	var records []dataset.Record
	for i := 0; i < 23; i++ {
		response := "No"
		if i%3 == 0 {
			response = "Yes"
		}
		records = append(records, dataset.NewRecord([]string{fmt.Sprintf("o%d", i%4), fmt.Sprintf("t%d", i%5)}, response))
	}
	d, err := dataset.New(records, "Yes", "No")
	require.NoError(t, err)

	n, err := sqldataset.Store(ctx, a, weatherTable, d)
	require.NoError(t, err)
	assert.Equal(t, 23, n)

	loaded, err := sqldataset.Load(ctx, a, weatherTable, "Yes", "No")
	require.NoError(t, err)
	assert.Equal(t, d.Count(), loaded.Count())
	assert.Equal(t, d.PositiveCount(), loaded.PositiveCount())
	assert.Equal(t, 2, loaded.Arity())
	values, err := loaded.DistinctValues(0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"o0", "o1", "o2", "o3"}, values)
}

func TestLoadRejectsUnknownLabels(t *testing.T) {
	ctx := context.Background()
	a := sqlite3(t)
	d, err := dataset.New([]dataset.Record{dataset.NewRecord([]string{"Sun", "Hot"}, "Maybe")}, "Maybe", "No")
	require.NoError(t, err)
	_, err = sqldataset.Store(ctx, a, weatherTable, d)
	require.NoError(t, err)

	_, err = sqldataset.Load(ctx, a, weatherTable, "Yes", "No")
	var fe *dataset.FormatError
	assert.True(t, errors.As(err, &fe), "got %v", err)
}

func TestStoreRejectsArityMismatch(t *testing.T) {
	d, err := dataset.New([]dataset.Record{dataset.NewRecord([]string{"Sun"}, "Yes")}, "Yes", "No")
	require.NoError(t, err)
	_, err = sqldataset.Store(context.Background(), sqlite3(t), weatherTable, d)
	assert.Error(t, err)
}

func TestLoadMissingTable(t *testing.T) {
	_, err := sqldataset.Load(context.Background(), sqlite3(t), weatherTable, "Yes", "No")
	assert.Error(t, err)
}

func TestInvalidIdentifiers(t *testing.T) {
	for _, table := range []sqldataset.Table{
		{Name: `we"ather`, AttributeColumns: []string{"outlook"}, ResponseColumn: "play"},
		{Name: "weather", AttributeColumns: []string{"outlook"}, ResponseColumn: ""},
		{Name: "weather", ResponseColumn: "play"},
	} {
		_, err := sqldataset.Load(context.Background(), sqlite3(t), table, "Yes", "No")
		assert.Error(t, err, "%+v", table)
	}
}

func TestPlaceholders(t *testing.T) {
	pg, err := pgadapter.New("postgres://localhost/id3?sslmode=disable")
	require.NoError(t, err)
	defer pg.Close()
	assert.Equal(t, "$3", pg.Placeholder(3))
	assert.Equal(t, "?", sqlite3(t).Placeholder(3))
	c, err := pg.ColumnName("play")
	require.NoError(t, err)
	assert.Equal(t, `"play"`, c)
}
