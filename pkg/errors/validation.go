package errors

import (
	"errors"
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// ValidationError represents a single invalid field of the CI model.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ModelValidationError aggregates all invalid fields of a CI model.
type ModelValidationError struct {
	Fields []ValidationError `json:"fields"`
}

func (e *ModelValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Reason))
	}
	return "invalid CI model: " + strings.Join(parts, "; ")
}

// ValidationErr converts validator errors into a ModelValidationError, translating the
// reasons when a translator is given.
func ValidationErr(err error, trans ut.Translator) error {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return err
	}
	fields := make([]ValidationError, 0, len(verr))
	for _, f := range verr {
		reason := f.ActualTag()
		if f.Param() != "" {
			reason = fmt.Sprintf("%s=%s", reason, f.Param())
		}
		if trans != nil {
			reason = f.Translate(trans)
		}
		fields = append(fields, ValidationError{Field: f.Namespace(), Reason: reason})
	}
	return &ModelValidationError{Fields: fields}
}
