package id3

import (
	"errors"
	"testing"

	"github.com/pbanos/id3/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDataset(t *testing.T, rows ...[]string) *dataset.Dataset {
	t.Helper()
	records := make([]dataset.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, dataset.NewRecord(row[:len(row)-1], row[len(row)-1]))
	}
	d, err := dataset.New(records, "Yes", "No")
	require.NoError(t, err)
	return d
}

func TestBinaryEntropy(t *testing.T) {
	for n := 0; n < 20; n++ {
		assert.Equal(t, 0.0, BinaryEntropy(0, n))
		assert.Equal(t, 0.0, BinaryEntropy(n, 0))
	}
	for n := 1; n < 20; n++ {
		assert.InDelta(t, 1.0, BinaryEntropy(n, n), 1e-12)
	}
	for a := 1; a < 10; a++ {
		for b := 1; b < 10; b++ {
			e := BinaryEntropy(a, b)
			assert.InDelta(t, e, BinaryEntropy(b, a), 1e-12)
			assert.True(t, e > 0 && e <= 1, "entropy(%d, %d) = %f", a, b, e)
		}
	}
	assert.InDelta(t, 0.8112781244591328, BinaryEntropy(3, 1), 1e-12)
}

func TestWeatherGain(t *testing.T) {
	d := newDataset(t,
		[]string{"Sun", "Yes"},
		[]string{"Sun", "Yes"},
		[]string{"Rain", "No"},
		[]string{"Rain", "No"},
	)
	se, err := SplitEntropy(d, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, se, 1e-12)
	g, err := Gain(d, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, g, 1e-12)
}

func TestSplitEntropyWeightsSubsets(t *testing.T) {
	// a: 2 Yes 2 No (entropy 1), b: 2 Yes (entropy 0)
	d := newDataset(t,
		[]string{"a", "Yes"},
		[]string{"a", "No"},
		[]string{"b", "Yes"},
		[]string{"a", "Yes"},
		[]string{"a", "No"},
		[]string{"b", "Yes"},
	)
	se, err := SplitEntropy(d, 0)
	require.NoError(t, err)
	assert.InDelta(t, 4.0/6.0, se, 1e-12)
	g, err := Gain(d, 0)
	require.NoError(t, err)
	assert.InDelta(t, BinaryEntropy(4, 2)-4.0/6.0, g, 1e-12)
}

func TestGainIsNeverNegative(t *testing.T) {
	datasets := []*dataset.Dataset{
		newDataset(t,
			[]string{"x", "p", "q", "Yes"},
			[]string{"x", "r", "q", "No"},
			[]string{"y", "p", "s", "No"},
			[]string{"y", "r", "q", "Yes"},
			[]string{"z", "r", "s", "Yes"},
		),
		newDataset(t,
			[]string{"x", "p", "q", "Yes"},
			[]string{"x", "p", "q", "Yes"},
			[]string{"x", "p", "q", "Yes"},
		),
		newDataset(t,
			[]string{"a", "a", "a", "No"},
			[]string{"a", "b", "c", "Yes"},
			[]string{"b", "b", "c", "No"},
			[]string{"c", "b", "a", "Yes"},
			[]string{"c", "a", "b", "No"},
			[]string{"b", "c", "a", "Yes"},
			[]string{"a", "c", "c", "No"},
		),
	}
	for i, d := range datasets {
		for a := 0; a < d.Arity(); a++ {
			g, err := Gain(d, a)
			require.NoError(t, err)
			assert.True(t, g >= -1e-9, "dataset %d attribute %d: gain %f", i, a, g)
		}
	}
}

func TestGainIndexError(t *testing.T) {
	d := newDataset(t, []string{"Sun", "Yes"})
	for _, a := range []int{-1, 1} {
		_, err := Gain(d, a)
		var ie *dataset.IndexError
		assert.True(t, errors.As(err, &ie), "attribute %d", a)
	}
}

func TestNewPartition(t *testing.T) {
	d := newDataset(t,
		[]string{"Sun", "Hot", "Yes"},
		[]string{"Rain", "Hot", "No"},
		[]string{"Sun", "Mild", "Yes"},
		[]string{"Cloud", "Mild", "No"},
	)
	p, err := NewPartition(d, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Attribute)
	assert.InDelta(t, 1.0, p.InformationGain, 1e-12)
	require.Len(t, p.Subsets, 3)
	assert.Equal(t, "Sun", p.Subsets[0].Value)
	assert.Equal(t, 2, p.Subsets[0].Dataset.Count())
	assert.Equal(t, "Rain", p.Subsets[1].Value)
	assert.Equal(t, "Cloud", p.Subsets[2].Value)
}
