/*
Package metadata provides methods to parse dataset descriptions from YAML
documents: the names of the attributes, used to print trees, and the
positive and negative labels of the classification task.
*/
package metadata

import (
	"fmt"
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"
)

/*
Metadata describes a dataset. Attributes holds the name of each attribute
in attribute order. Positive and Negative are the labels of the
classification task and may be empty when they are provided elsewhere.
*/
type Metadata struct {
	Attributes []string `yaml:"attributes"`
	Positive   string   `yaml:"positive,omitempty"`
	Negative   string   `yaml:"negative,omitempty"`
}

/*
ReadYAML takes a slice of bytes with a dataset description in YAML and
returns the metadata parsed from it or an error.
The YAML is expected to be an object with an attributes property holding the
list of attribute names, and optionally positive and negative properties
with the labels.
*/
func ReadYAML(md []byte) (*Metadata, error) {
	m := &Metadata{}
	err := yaml.UnmarshalStrict(md, m)
	if err != nil {
		return nil, fmt.Errorf("parsing yml metadata: %w", err)
	}
	if len(m.Attributes) == 0 {
		return nil, fmt.Errorf("metadata has no attribute information")
	}
	seen := make(map[string]bool, len(m.Attributes))
	for i, a := range m.Attributes {
		if a == "" {
			return nil, fmt.Errorf("attribute %d has no name", i)
		}
		if seen[a] {
			return nil, fmt.Errorf("attribute %s is declared twice", a)
		}
		seen[a] = true
	}
	if m.Positive != "" && m.Positive == m.Negative {
		return nil, fmt.Errorf("positive and negative labels must differ, both are %q", m.Positive)
	}
	return m, nil
}

/*
ReadYAMLFromFile takes a filepath string, reads its contents and uses
ReadYAML to parse it and return the metadata or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadYAMLFromFile(filepath string) (*Metadata, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading metadata yml file %s: %w", filepath, err)
	}
	m, err := ReadYAML(md)
	if err != nil {
		err = fmt.Errorf("parsing metadata yml file %s: %w", filepath, err)
	}
	return m, err
}

/*
Index takes an attribute name and returns its index, or an error if the
metadata has no attribute with that name.
*/
func (m *Metadata) Index(name string) (int, error) {
	for i, a := range m.Attributes {
		if a == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("unknown attribute %s", name)
}
