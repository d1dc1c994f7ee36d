package contact

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Submission is one contact form post. Absent and null fields decode as "".
type Submission struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			return name
		})
	})
	return validate
}

// decodeSubmission parses raw as a JSON object.
// Field keys match exactly; "Name" or "NAME" is not "name".
// A top-level null, a non-object or a non-string field value is an error.
func decodeSubmission(raw []byte) (*Submission, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, errors.Join(ErrInvalidJSON, err)
	}
	if obj == nil {
		return nil, fmt.Errorf("%w: body is null", ErrInvalidJSON)
	}

	sub := &Submission{}
	for key, dst := range map[string]*string{
		"name":    &sub.Name,
		"email":   &sub.Email,
		"subject": &sub.Subject,
		"message": &sub.Message,
	} {
		v, ok := obj[key]
		if !ok {
			continue
		}
		// null leaves the field empty.
		if err := json.Unmarshal(v, dst); err != nil {
			return nil, fmt.Errorf("%w: field %q: %w", ErrInvalidJSON, key, err)
		}
	}
	return sub, nil
}

// Validate checks that every field is present and non-empty.
// Content is not inspected further; the email address format is not checked.
// The returned error lists the missing fields by their JSON names.
func (s *Submission) Validate() error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(fields, ", "))
}
