package dataset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weather(t *testing.T) *Dataset {
	t.Helper()
	d, err := New([]Record{
		NewRecord([]string{"Sun", "Hot"}, "Yes"),
		NewRecord([]string{"Rain", "Mild"}, "No"),
		NewRecord([]string{"Sun", "Mild"}, "Yes"),
		NewRecord([]string{"Cloud", "Hot"}, "No"),
		NewRecord([]string{"Rain", "Hot"}, "Yes"),
	}, "Yes", "No")
	require.NoError(t, err)
	return d
}

func TestNewRejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
	}{
		{"unknown response", []Record{NewRecord([]string{"a"}, "Yes"), NewRecord([]string{"b"}, "Maybe")}},
		{"arity mismatch", []Record{NewRecord([]string{"a"}, "Yes"), NewRecord([]string{"b", "c"}, "No")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.records, "Yes", "No")
			var fe *FormatError
			assert.True(t, errors.As(err, &fe), "expected FormatError, got %v", err)
		})
	}
	_, err := New(nil, "Yes", "Yes")
	assert.Error(t, err)
}

func TestNewCopiesRecords(t *testing.T) {
	records := []Record{NewRecord([]string{"a"}, "Yes")}
	d, err := New(records, "Yes", "No")
	require.NoError(t, err)
	records[0] = NewRecord([]string{"b"}, "No")
	assert.Equal(t, 1, d.PositiveCount())
}

func TestCounts(t *testing.T) {
	d := weather(t)
	assert.Equal(t, 5, d.Count())
	assert.Equal(t, 2, d.Arity())
	assert.Equal(t, 3, d.ResponseCount("Yes"))
	assert.Equal(t, 2, d.ResponseCount("No"))
	assert.Equal(t, 0, d.ResponseCount("Maybe"))
	assert.Equal(t, "Yes", d.MajorityLabel())
}

func TestEmptyDataset(t *testing.T) {
	d, err := New(nil, "Yes", "No")
	require.NoError(t, err)
	assert.Equal(t, 0, d.Arity())
	assert.True(t, d.AllPositive())
	assert.True(t, d.AllNegative())
	assert.Equal(t, "No", d.MajorityLabel())
	_, err = d.DistinctValues(0)
	var ie *IndexError
	assert.True(t, errors.As(err, &ie))
}

func TestMajorityLabelTieIsNegative(t *testing.T) {
	d, err := New([]Record{
		NewRecord([]string{"a"}, "Yes"),
		NewRecord([]string{"a"}, "No"),
	}, "Yes", "No")
	require.NoError(t, err)
	assert.Equal(t, "No", d.MajorityLabel())
	assert.False(t, d.AllPositive())
	assert.False(t, d.AllNegative())
}

func TestDistinctValuesFirstSeenOrder(t *testing.T) {
	d := weather(t)
	values, err := d.DistinctValues(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sun", "Rain", "Cloud"}, values)
	values, err = d.DistinctValues(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hot", "Mild"}, values)
}

func TestIndexErrors(t *testing.T) {
	d := weather(t)
	for _, i := range []int{-1, 2, 10} {
		_, err := d.DistinctValues(i)
		var ie *IndexError
		require.True(t, errors.As(err, &ie), "index %d", i)
		assert.Equal(t, i, ie.Index)
		assert.Equal(t, 2, ie.Arity)
		_, err = d.SubsetWhere(i, "Sun")
		assert.True(t, errors.As(err, &ie), "index %d", i)
	}
}

func TestSubsetWhere(t *testing.T) {
	d := weather(t)
	s, err := d.SubsetWhere(0, "Sun")
	require.NoError(t, err)
	assert.Equal(t, 2, s.Count())
	assert.True(t, s.AllPositive())
	assert.Equal(t, "Yes", s.Positive())
	assert.Equal(t, "No", s.Negative())
	assert.Equal(t, 5, d.Count(), "receiver must not change")

	s, err = d.SubsetWhere(0, "Snow")
	require.NoError(t, err)
	assert.Equal(t, 0, s.Count())
}

func TestPartition(t *testing.T) {
	d := weather(t)
	in, out := d.Partition(1, 3)
	require.Equal(t, 2, in.Count())
	require.Equal(t, 3, out.Count())
	assert.Equal(t, "Rain", in.Records()[0].Attributes()[0])
	assert.Equal(t, "Sun", out.Records()[0].Attributes()[0])
	assert.Equal(t, "Cloud", out.Records()[1].Attributes()[0])

	in, out = d.Partition(4, 10)
	assert.Equal(t, 1, in.Count())
	assert.Equal(t, 4, out.Count())
}

func TestPermute(t *testing.T) {
	d := weather(t)
	p, err := d.Permute([]int{4, 3, 2, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, "Rain", p.Records()[0].Attributes()[0])
	assert.Equal(t, "Cloud", p.Records()[1].Attributes()[0])
	_, err = d.Permute([]int{0})
	assert.Error(t, err)
	_, err = d.Permute([]int{0, 1, 2, 3, 5})
	assert.Error(t, err)
}

func TestRecordIsImmutable(t *testing.T) {
	attrs := []string{"a", "b"}
	r := NewRecord(attrs, "Yes")
	attrs[0] = "z"
	got := r.Attributes()
	got[1] = "z"
	assert.Equal(t, []string{"a", "b"}, r.Attributes())
	v, err := r.Value(1)
	require.NoError(t, err)
	assert.Equal(t, "b", v)
	_, err = r.Value(2)
	assert.Error(t, err)
}
