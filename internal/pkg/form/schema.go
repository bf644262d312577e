package form

// FieldType tells clients which input to render.
type FieldType string

const (
	TypeText     FieldType = "text"
	TypeNumber   FieldType = "number"
	TypeEmail    FieldType = "email"
	TypeSelect   FieldType = "select"
	TypeFile     FieldType = "file"
	TypePassword FieldType = "password"
	TypeTextarea FieldType = "textarea"
)

// Field is the declarative definition of one input.
type Field struct {
	Name  string    `json:"name"`
	Label string    `json:"label"`
	Type  FieldType `json:"type"`
	// Options names the lookup that fills a select ("colleges", "programs").
	Options string `json:"options,omitempty"`
	Rules   []Rule `json:"rules"`
}

// Schema is the ordered field set of one entity kind.
type Schema struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Field returns the definition of name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// FileFields lists the names of file inputs in declaration order.
func (s Schema) FileFields() []string {
	var names []string
	for _, f := range s.Fields {
		if f.Type == TypeFile {
			names = append(names, f.Name)
		}
	}
	return names
}

// ValidateField returns the first failing rule message for name, or "".
func (s Schema) ValidateField(d *Draft, name string) string {
	f, ok := s.Field(name)
	if !ok {
		return ""
	}
	empty := !d.Has(name)
	for _, r := range f.Rules {
		if empty && !r.onEmpty {
			continue
		}
		if !r.check(d, name) {
			return r.Message
		}
	}
	return ""
}

// Validate checks every field and returns a *ValidationError listing each
// failing field, or nil.
func (s Schema) Validate(d *Draft) error {
	verr := &ValidationError{Fields: map[string]string{}}
	for _, f := range s.Fields {
		if msg := s.ValidateField(d, f.Name); msg != "" {
			verr.add(f.Name, msg)
		}
	}
	if len(verr.order) == 0 {
		return nil
	}
	return verr
}
