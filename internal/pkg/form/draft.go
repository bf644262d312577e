package form

import "strings"

// File is an attachment held by a draft until submission.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// Draft is the mutable, not yet persisted set of field values a form
// accumulates.
type Draft struct {
	values map[string]string
	files  map[string]*File
}

// NewDraft returns an empty draft.
func NewDraft() *Draft {
	return &Draft{
		values: map[string]string{},
		files:  map[string]*File{},
	}
}

// Set stores a text value.
func (d *Draft) Set(field, value string) *Draft {
	d.values[field] = value
	return d
}

// Get returns the text value of field with surrounding space removed.
func (d *Draft) Get(field string) string {
	return strings.TrimSpace(d.values[field])
}

// Attach stores a file for field. A nil file clears it.
func (d *Draft) Attach(field string, f *File) *Draft {
	if f == nil {
		delete(d.files, field)
		return d
	}
	d.files[field] = f
	return d
}

// File returns the attachment of field or nil.
func (d *Draft) File(field string) *File {
	return d.files[field]
}

// Has reports whether field carries a non-blank value or a named file.
func (d *Draft) Has(field string) bool {
	if f := d.files[field]; f != nil && f.Name != "" {
		return true
	}
	return d.Get(field) != ""
}

// Values returns a copy of the trimmed text values.
func (d *Draft) Values() map[string]string {
	out := make(map[string]string, len(d.values))
	for k := range d.values {
		out[k] = d.Get(k)
	}
	return out
}
