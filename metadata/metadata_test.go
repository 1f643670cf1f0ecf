package metadata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const breastCancer = `
attributes:
  - age
  - menopause
  - tumor-size
positive: recurrence-events
negative: no-recurrence-events
`

func TestReadYAML(t *testing.T) {
	m, err := ReadYAML([]byte(breastCancer))
	require.NoError(t, err)
	assert.Equal(t, []string{"age", "menopause", "tumor-size"}, m.Attributes)
	assert.Equal(t, "recurrence-events", m.Positive)
	assert.Equal(t, "no-recurrence-events", m.Negative)
	i, err := m.Index("menopause")
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	_, err = m.Index("irradiat")
	assert.Error(t, err)
}

func TestReadYAMLWithoutLabels(t *testing.T) {
	m, err := ReadYAML([]byte("attributes: [outlook, windy]\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"outlook", "windy"}, m.Attributes)
	assert.Empty(t, m.Positive)
}

func TestReadYAMLErrors(t *testing.T) {
	for _, md := range []string{
		"positive: yes\n",
		"attributes: [a, a]\n",
		"attributes: [a, '']\n",
		"attributes: [a]\npositive: x\nnegative: x\n",
		"attributes: [a]\nclasses: [x, y]\n",
		"attributes: {a: 1}\n",
	} {
		_, err := ReadYAML([]byte(md))
		assert.Error(t, err, md)
	}
}

func TestReadYAMLFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metadata.yml")
	require.NoError(t, os.WriteFile(path, []byte(breastCancer), 0o600))
	m, err := ReadYAMLFromFile(path)
	require.NoError(t, err)
	assert.Len(t, m.Attributes, 3)
	_, err = ReadYAMLFromFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
