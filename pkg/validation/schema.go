package validation

import (
	"errors"
	"reflect"
	"strings"

	"portfolio-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Schema validates contact messages.
type Schema struct {
	validate *validator.Validate
}

// NewSchema builds a Schema whose field errors are named after JSON keys.
func NewSchema() *Schema {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	return &Schema{validate: v}
}

// Message checks in against the message constraints. It has no side effects.
func (s *Schema) Message(in domain.MessageInput) (domain.Message, error) {
	if err := s.validate.Struct(in); err != nil {
		return domain.Message{}, toError(err)
	}
	return domain.Message{
		Name:    in.Name,
		Email:   in.Email,
		Message: in.Message,
	}, nil
}

func toError(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return &Error{Fields: []FieldError{{Field: "body", Rule: "invalid", Message: err.Error()}}}
	}
	fields := make([]FieldError, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, newFieldError(fe))
	}
	return &Error{Fields: fields}
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}
