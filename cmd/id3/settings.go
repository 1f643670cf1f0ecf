package main

import (
	"fmt"

	"github.com/pbanos/id3"
	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/dataset/arff"
	"github.com/pbanos/id3/dataset/mongodataset"
	"github.com/pbanos/id3/dataset/sqldataset"
	"github.com/pbanos/id3/metadata"
)

const (
	defaultTable         = "records"
	defaultResponseField = "class"
)

// settings holds the configuration shared by all commands once resolved
// from flags, environment and config file
type settings struct {
	positive      string
	negative      string
	metadata      *metadata.Metadata
	attributes    []string
	policy        id3.AttributePolicy
	arff          arff.Options
	table         string
	responseField string
}

func (rc *rootCmdConfig) settings() (*settings, error) {
	s := &settings{
		positive:      rc.v.GetString("positive"),
		negative:      rc.v.GetString("negative"),
		attributes:    rc.v.GetStringSlice("attributes"),
		table:         rc.v.GetString("table"),
		responseField: rc.v.GetString("response-field"),
	}
	var err error
	s.policy, err = id3.ParseAttributePolicy(rc.v.GetString("attribute-policy"))
	if err != nil {
		return nil, err
	}
	if path := rc.v.GetString("metadata"); path != "" {
		rc.Logf("Reading metadata from %s...", path)
		s.metadata, err = metadata.ReadYAMLFromFile(path)
		if err != nil {
			return nil, err
		}
		if s.positive == "" {
			s.positive = s.metadata.Positive
		}
		if s.negative == "" {
			s.negative = s.metadata.Negative
		}
	}
	if s.positive == "" || s.negative == "" {
		return nil, fmt.Errorf("positive and negative labels are required, set them with flags or in the metadata")
	}
	if s.positive == s.negative {
		return nil, fmt.Errorf("positive and negative labels must differ, both are %q", s.positive)
	}
	if len(s.attributes) > 0 && s.metadata == nil {
		return nil, fmt.Errorf("attributes can only be selected by name with a metadata file")
	}
	s.arff = arff.Options{
		Positive:    s.positive,
		Negative:    s.negative,
		Delimiter:   rc.v.GetString("delimiter"),
		StripQuotes: rc.v.GetBool("strip-quotes"),
	}
	return s, nil
}

// candidates returns the indexes of the attributes to grow trees with on
// the given dataset
func (s *settings) candidates(d *dataset.Dataset) ([]int, error) {
	if s.metadata != nil && d.Count() > 0 && d.Arity() != len(s.metadata.Attributes) {
		return nil, fmt.Errorf("metadata declares %d attributes but records have %d", len(s.metadata.Attributes), d.Arity())
	}
	if len(s.attributes) == 0 {
		attributes := make([]int, d.Arity())
		for i := range attributes {
			attributes[i] = i
		}
		return attributes, nil
	}
	attributes := make([]int, 0, len(s.attributes))
	for _, name := range s.attributes {
		i, err := s.metadata.Index(name)
		if err != nil {
			return nil, err
		}
		attributes = append(attributes, i)
	}
	return attributes, nil
}

// names returns the attribute names to print trees with
func (s *settings) names() []string {
	if s.metadata == nil {
		return nil
	}
	return s.metadata.Attributes
}

func (s *settings) grower() *id3.Grower {
	return &id3.Grower{AttributePolicy: s.policy}
}

func (s *settings) sqlTable() (sqldataset.Table, error) {
	if s.metadata == nil {
		return sqldataset.Table{}, fmt.Errorf("database inputs require a metadata file with the attribute names")
	}
	return sqldataset.Table{
		Name:             s.table,
		AttributeColumns: s.metadata.Attributes,
		ResponseColumn:   s.responseField,
	}, nil
}

func (s *settings) collection() (mongodataset.Collection, error) {
	if s.metadata == nil {
		return mongodataset.Collection{}, fmt.Errorf("database inputs require a metadata file with the attribute names")
	}
	return mongodataset.Collection{
		Name:            s.table,
		AttributeFields: s.metadata.Attributes,
		ResponseField:   s.responseField,
	}, nil
}
