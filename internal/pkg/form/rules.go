package form

import (
	"fmt"
	"mime"
	"net/http"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Rule is one declarative check on a field. Rules other than Required are
// skipped when the field is empty.
type Rule struct {
	Name    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`

	onEmpty bool
	check   func(d *Draft, field string) bool
}

// Required fails when the field has no value or file.
func Required(message string) Rule {
	return Rule{
		Name:    "required",
		Message: message,
		onEmpty: true,
		check:   func(d *Draft, field string) bool { return d.Has(field) },
	}
}

// Email fails when the value is not an email address.
func Email(message string) Rule {
	return Rule{
		Name:    "email",
		Message: message,
		check: func(d *Draft, field string) bool {
			return validate.Var(d.Get(field), "email") == nil
		},
	}
}

// Numeric fails when the value does not parse as a number.
func Numeric(message string) Rule {
	return Rule{
		Name:    "numeric",
		Message: message,
		check: func(d *Draft, field string) bool {
			return validate.Var(d.Get(field), "numeric") == nil
		},
	}
}

// MinLength fails when the value has fewer than n characters.
func MinLength(n int, message string) Rule {
	return Rule{
		Name:    "min",
		Param:   fmt.Sprint(n),
		Message: message,
		check: func(d *Draft, field string) bool {
			return utf8.RuneCountInString(d.Get(field)) >= n
		},
	}
}

// NotEqualTo fails when the value equals the value of other.
func NotEqualTo(other, message string) Rule {
	return Rule{
		Name:    "notOneOf",
		Param:   other,
		Message: message,
		check: func(d *Draft, field string) bool {
			return d.Get(field) != d.Get(other)
		},
	}
}

// FileType fails unless the attachment has a usable file name, declares
// mimeType and, when it has content, the content sniffs as mimeType too.
func FileType(mimeType, message string) Rule {
	return Rule{
		Name:    "fileType",
		Param:   mimeType,
		Message: message,
		check: func(d *Draft, field string) bool {
			f := d.File(field)
			if f == nil || !ValidFileName(f.Name) {
				return false
			}
			if mediaType(f.ContentType) != mimeType {
				return false
			}
			if len(f.Content) > 0 && mediaType(http.DetectContentType(f.Content)) != mimeType {
				return false
			}
			return true
		},
	}
}

func mediaType(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return mt
}
