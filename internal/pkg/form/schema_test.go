package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/transferdesk/internal/pkg/apperrors"
)

var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n")

func moveSchema() Schema {
	return Schema{
		Name: "move",
		Fields: []Field{
			{Name: "from", Type: TypeSelect, Rules: []Rule{Required("From is required")}},
			{Name: "to", Type: TypeSelect, Rules: []Rule{
				NotEqualTo("from", "To cannot be the same as From"),
				Required("To is required"),
			}},
			{Name: "email", Type: TypeEmail, Rules: []Rule{
				Email("Invalid email address"),
				Required("Email is required"),
			}},
			{Name: "roll", Type: TypeNumber, Rules: []Rule{
				Required("Roll is required"),
				Numeric("Roll must be a number"),
			}},
			{Name: "letter", Type: TypeFile, Rules: []Rule{
				Required("Letter is required"),
				FileType("application/pdf", "Please upload a PDF file."),
			}},
		},
	}
}

func validDraft() *Draft {
	return NewDraft().
		Set("from", "c1").
		Set("to", "c2").
		Set("email", "ram@example.com").
		Set("roll", "1234").
		Attach("letter", &File{Name: "letter.pdf", ContentType: "application/pdf", Content: pdfBytes})
}

func TestSchemaValidate(t *testing.T) {
	s := moveSchema()

	t.Run("valid draft", func(t *testing.T) {
		assert.NoError(t, s.Validate(validDraft()))
	})

	t.Run("empty draft reports every required field in order", func(t *testing.T) {
		err := s.Validate(NewDraft())
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
		assert.Equal(t, []FieldError{
			{Field: "from", Message: "From is required"},
			{Field: "to", Message: "To is required"},
			{Field: "email", Message: "Email is required"},
			{Field: "roll", Message: "Roll is required"},
			{Field: "letter", Message: "Letter is required"},
		}, verr.Errors())
	})

	tests := []struct {
		name    string
		mutate  func(d *Draft)
		field   string
		message string
	}{
		{"same source and destination", func(d *Draft) { d.Set("to", "c1") }, "to", "To cannot be the same as From"},
		{"bad email", func(d *Draft) { d.Set("email", "not-an-email") }, "email", "Invalid email address"},
		{"non numeric roll", func(d *Draft) { d.Set("roll", "12a") }, "roll", "Roll must be a number"},
		{"whitespace only counts as empty", func(d *Draft) { d.Set("roll", "   ") }, "roll", "Roll is required"},
		{"declared type not pdf", func(d *Draft) {
			d.Attach("letter", &File{Name: "letter.docx", ContentType: "application/msword", Content: pdfBytes})
		}, "letter", "Please upload a PDF file."},
		{"content is not pdf", func(d *Draft) {
			d.Attach("letter", &File{Name: "letter.pdf", ContentType: "application/pdf", Content: []byte("hello")})
		}, "letter", "Please upload a PDF file."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(d)

			err := s.Validate(d)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, map[string]string{tt.field: tt.message}, verr.Fields)
		})
	}
}

func TestSchemaValidateField(t *testing.T) {
	s := moveSchema()
	d := NewDraft().Set("email", "bad")

	assert.Equal(t, "Invalid email address", s.ValidateField(d, "email"))
	assert.Equal(t, "From is required", s.ValidateField(d, "from"))
	assert.Equal(t, "", s.ValidateField(d, "unknown"))
}

func TestMinLength(t *testing.T) {
	s := Schema{Fields: []Field{{Name: "password", Rules: []Rule{MinLength(6, "too short")}}}}

	assert.Equal(t, "too short", s.ValidateField(NewDraft().Set("password", "abc"), "password"))
	assert.Equal(t, "", s.ValidateField(NewDraft().Set("password", "abcdef"), "password"))
	assert.Equal(t, "", s.ValidateField(NewDraft(), "password"))
}
