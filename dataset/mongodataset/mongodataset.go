/*
Package mongodataset provides methods to load datasets from MongoDB
collections and to store datasets on them.

Every record is a document with a field for each attribute and a field for
the response. Values that are not strings are read in their fmt %v form.
*/
package mongodataset

import (
	"context"
	"fmt"

	"github.com/pbanos/id3/dataset"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

/*
Collection describes where a dataset is stored: the name of the collection
in the default database of the session, the fields holding the attribute
values in attribute order, and the field holding the response.
*/
type Collection struct {
	Name            string
	AttributeFields []string
	ResponseField   string
}

/*
Load takes a context, a MongoDB session, a Collection and the positive and
negative labels and returns the dataset read from the collection, in _id
order, or an error. A document lacking a field or with a response other than
the labels makes it fail with a *dataset.FormatError.
*/
func Load(ctx context.Context, session *mgo.Session, c Collection, positive, negative string) (*dataset.Dataset, error) {
	if len(c.AttributeFields) == 0 {
		return nil, fmt.Errorf("collection %s has no attribute fields", c.Name)
	}
	iter := session.DB("").C(c.Name).Find(nil).Sort("_id").Iter()
	defer iter.Close()
	var records []dataset.Record
	for j := 1; ; j++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc := bson.M{}
		if !iter.Next(&doc) {
			break
		}
		r, err := recordFromDocument(doc, c, positive, negative)
		if err != nil {
			return nil, &dataset.FormatError{Reason: fmt.Sprintf("document %d of %s: %s", j, c.Name, err)}
		}
		records = append(records, r)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("reading documents from %s: %w", c.Name, err)
	}
	return dataset.New(records, positive, negative)
}

/*
Store takes a context, a MongoDB session, a Collection and a dataset and
inserts a document for each record of the dataset on the collection. It
returns an error if the documents could not be inserted.
*/
func Store(ctx context.Context, session *mgo.Session, c Collection, d *dataset.Dataset) error {
	if d.Count() > 0 && d.Arity() != len(c.AttributeFields) {
		return fmt.Errorf("collection %s has %d attribute fields for records with %d attributes", c.Name, len(c.AttributeFields), d.Arity())
	}
	docs := make([]interface{}, 0, d.Count())
	for _, r := range d.Records() {
		docs = append(docs, documentFromRecord(r, c))
	}
	if len(docs) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := session.DB("").C(c.Name).Insert(docs...); err != nil {
		return fmt.Errorf("inserting %d documents into %s: %w", len(docs), c.Name, err)
	}
	return nil
}

func recordFromDocument(doc bson.M, c Collection, positive, negative string) (dataset.Record, error) {
	attributes := make([]string, 0, len(c.AttributeFields))
	for _, f := range c.AttributeFields {
		v, ok := doc[f]
		if !ok || v == nil {
			return dataset.Record{}, fmt.Errorf("missing field %s", f)
		}
		attributes = append(attributes, stringValue(v))
	}
	v, ok := doc[c.ResponseField]
	if !ok || v == nil {
		return dataset.Record{}, fmt.Errorf("missing response field %s", c.ResponseField)
	}
	response := stringValue(v)
	if response != positive && response != negative {
		return dataset.Record{}, fmt.Errorf("response %q is neither %q nor %q", response, positive, negative)
	}
	return dataset.NewRecord(attributes, response), nil
}

func documentFromRecord(r dataset.Record, c Collection) bson.M {
	doc := bson.M{c.ResponseField: r.Response()}
	for i, v := range r.Attributes() {
		doc[c.AttributeFields[i]] = v
	}
	return doc
}

func stringValue(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
