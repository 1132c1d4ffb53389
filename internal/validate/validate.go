package validate

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/linksnip/link-shortener/internal/model"
)

// Field names reported in validation errors
const (
	FieldLongURL       = "LongURL"
	FieldExpiresInDays = "ExpiresInDays"
)

var (
	// ErrInvalidURL means the long URL is not a well-formed absolute http(s) URL
	ErrInvalidURL = errors.New("invalid url")

	// ErrInvalidExpiry means the expiry is present but not a positive whole number of days
	ErrInvalidExpiry = errors.New("invalid expiry")
)

// User-facing messages shown inline next to the offending field
const (
	MsgInvalidURL    = "Please enter a valid URL"
	MsgInvalidExpiry = "Expiry must be a positive number of days"
)

// RawInput holds the form fields exactly as the user typed them
type RawInput struct {
	LongURL       string
	ExpiresInDays string
}

// FieldError describes a single rejected field
type FieldError struct {
	Field   string
	Message string
	Err     error
}

// FieldErrors is the set of rejected fields for one input
type FieldErrors []FieldError

// Error returns all field messages joined for logging
func (fe FieldErrors) Error() string {
	msgs := make([]string, 0, len(fe))
	for _, e := range fe {
		msgs = append(msgs, e.Field+": "+e.Message)
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the per-field sentinel causes to errors.Is
func (fe FieldErrors) Unwrap() []error {
	errs := make([]error, 0, len(fe))
	for _, e := range fe {
		errs = append(errs, e.Err)
	}
	return errs
}

// ByField returns the message for a field, or "" if the field passed
func (fe FieldErrors) ByField(name string) string {
	for _, e := range fe {
		if e.Field == name {
			return e.Message
		}
	}
	return ""
}

// formValues is the shape checked by the validator after coercion
type formValues struct {
	LongURL       string `validate:"required,httpurl"`
	ExpiresInDays int    `validate:"gte=1"`
}

// Schema validates raw form input and coerces it into a model.FormInput
type Schema struct {
	validate *validator.Validate
}

// NewSchema creates a Schema with the custom URL rule registered
func NewSchema() *Schema {
	v := validator.New()
	v.RegisterValidation("httpurl", validateHTTPURL)

	return &Schema{validate: v}
}

// Validate checks raw input and returns the coerced FormInput. An empty
// expiry field defaults to model.DefaultExpiryDays without error; anything
// else must be a positive whole number. On failure the returned error is a
// FieldErrors listing every rejected field.
func (s *Schema) Validate(raw RawInput) (model.FormInput, error) {
	values := formValues{
		LongURL:       strings.TrimSpace(raw.LongURL),
		ExpiresInDays: model.DefaultExpiryDays,
	}

	var fieldErrs FieldErrors

	rawDays := strings.TrimSpace(raw.ExpiresInDays)
	if rawDays != "" {
		days, err := strconv.Atoi(rawDays)
		if err != nil {
			fieldErrs = append(fieldErrs, FieldError{
				Field:   FieldExpiresInDays,
				Message: MsgInvalidExpiry,
				Err:     ErrInvalidExpiry,
			})
		} else {
			values.ExpiresInDays = days
		}
	}

	if err := s.validate.Struct(values); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return model.FormInput{}, err
		}
		for _, verr := range verrs {
			fieldErrs = append(fieldErrs, fieldErrorFor(verr))
		}
	}

	if len(fieldErrs) > 0 {
		return model.FormInput{}, fieldErrs
	}

	return model.FormInput{
		LongURL:       values.LongURL,
		ExpiresInDays: values.ExpiresInDays,
	}, nil
}

// ValidateURL checks a single URL string against the same rule the schema
// applies to the long URL field. Used by the form's live entry validator.
func (s *Schema) ValidateURL(raw string) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || !isHTTPURL(trimmed) {
		return ErrInvalidURL
	}
	return nil
}

func fieldErrorFor(verr validator.FieldError) FieldError {
	switch verr.Field() {
	case FieldExpiresInDays:
		return FieldError{Field: FieldExpiresInDays, Message: MsgInvalidExpiry, Err: ErrInvalidExpiry}
	default:
		return FieldError{Field: verr.Field(), Message: MsgInvalidURL, Err: ErrInvalidURL}
	}
}

func validateHTTPURL(fl validator.FieldLevel) bool {
	return isHTTPURL(fl.Field().String())
}

// isHTTPURL requires an absolute URL with an http or https scheme and a host
func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return strings.TrimSpace(u.Host) != ""
}
