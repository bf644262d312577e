// Package docstore is the document-store capability the record services
// depend on: collections of JSON documents addressed by opaque string ids
// and queried by exact match on a single field.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get and Delete when no document has the id.
var ErrNotFound = errors.New("document not found")

// Document is one stored record. Data never contains the "id" key; the id
// lives beside it.
type Document struct {
	ID   string
	Data map[string]any
}

// Store is implemented by every backend. Results of Query and All are in
// insertion order.
type Store interface {
	// Query returns every document in collection whose field equals value.
	Query(ctx context.Context, collection, field, value string) ([]Document, error)
	// All returns every document in collection.
	All(ctx context.Context, collection string) ([]Document, error)
	// Get returns a single document or ErrNotFound.
	Get(ctx context.Context, collection, id string) (Document, error)
	// Insert stores data under a generated id and returns it.
	Insert(ctx context.Context, collection string, data map[string]any) (string, error)
	// Set stores data under the caller's id, replacing any existing document.
	Set(ctx context.Context, collection, id string, data map[string]any) error
	// Delete removes the document or returns ErrNotFound.
	Delete(ctx context.Context, collection, id string) error
	// Close releases backend resources.
	Close() error
}

// Encode converts a tagged struct into document data, dropping the id key.
func Encode(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	data := map[string]any{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	delete(data, "id")
	return data, nil
}

// Decode fills out (a pointer to a json-tagged struct) from doc, including
// its "id" field.
func Decode(doc Document, out any) error {
	data := make(map[string]any, len(doc.Data)+1)
	for k, v := range doc.Data {
		data[k] = v
	}
	data["id"] = doc.ID

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("decode document %s: %w", doc.ID, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode document %s: %w", doc.ID, err)
	}
	return nil
}

func marshalData(data map[string]any) (string, error) {
	clean := make(map[string]any, len(data))
	for k, v := range data {
		if k == "id" {
			continue
		}
		clean[k] = v
	}
	raw, err := json.Marshal(clean)
	if err != nil {
		return "", fmt.Errorf("marshal document data: %w", err)
	}
	return string(raw), nil
}

func unmarshalData(id string, raw []byte) (Document, error) {
	data := map[string]any{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return Document{}, fmt.Errorf("unmarshal document %s: %w", id, err)
	}
	return Document{ID: id, Data: data}, nil
}
