package lunasync

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ============================================================================
// Fields
// ============================================================================

// Field names one of the contact form inputs.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

// Fields lists the form fields in validation order.
var Fields = []Field{FieldName, FieldEmail, FieldMessage}

// Valid reports whether f is one of the contact form fields.
func (f Field) Valid() bool {
	switch f {
	case FieldName, FieldEmail, FieldMessage:
		return true
	}
	return false
}

// ParseField converts a raw field name into a Field.
func ParseField(s string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
	return f, nil
}

// ============================================================================
// Validation errors
// ============================================================================

var (
	// ErrRequired is wrapped by FieldErrors for fields left empty.
	ErrRequired = errors.New("required")
	// ErrInvalidFormat is wrapped by FieldErrors for malformed email addresses.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrUnknownField is returned when a field name is not part of the form.
	ErrUnknownField = errors.New("unknown form field")
)

// FieldError is a validation failure for a single field.
type FieldError struct {
	Field   Field  `json:"field"`
	Kind    error  `json:"-"` // ErrRequired or ErrInvalidFormat
	Message string `json:"message"`
}

// Error implements the error interface
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap returns the failure kind so callers can use errors.Is.
func (e *FieldError) Unwrap() error {
	return e.Kind
}

// FieldErrors maps each failing field to its error.
type FieldErrors map[Field]*FieldError

// Has reports whether f failed validation.
func (fe FieldErrors) Has(f Field) bool {
	_, ok := fe[f]
	return ok
}

// Message returns the user-facing message for f, or "" when f is valid.
func (fe FieldErrors) Message(f Field) string {
	if err, ok := fe[f]; ok {
		return err.Message
	}
	return ""
}

// Ordered returns the errors in field order.
func (fe FieldErrors) Ordered() []*FieldError {
	out := make([]*FieldError, 0, len(fe))
	for _, f := range Fields {
		if err, ok := fe[f]; ok {
			out = append(out, err)
		}
	}
	return out
}

// Clone returns an independent copy. A nil or empty map clones to nil.
func (fe FieldErrors) Clone() FieldErrors {
	if len(fe) == 0 {
		return nil
	}
	out := make(FieldErrors, len(fe))
	for f, err := range fe {
		cp := *err
		out[f] = &cp
	}
	return out
}

// ============================================================================
// Validators
// ============================================================================

// Validator checks a trimmed field value.
// Returns nil if valid, or an error wrapping ErrRequired/ErrInvalidFormat.
type Validator func(value string) error

// Required returns a validator that rejects empty values.
func Required(message string) Validator {
	return func(value string) error {
		if value == "" {
			return fmt.Errorf("%w: %s", ErrRequired, message)
		}
		return nil
	}
}

// nonSpace matches one non-whitespace rune. RE2's \S only excludes ASCII
// spaces; this also excludes Unicode separators, vertical tab, NEL and BOM.
const nonSpace = `[^\s\p{Z}\x{0B}\x{85}\x{FEFF}]`

// emailShape is unanchored: it matches a run of non-whitespace, "@",
// non-whitespace, "." and non-whitespace anywhere in the value.
var emailShape = regexp.MustCompile(nonSpace + `+@` + nonSpace + `+\.` + nonSpace + `+`)

// Email returns a validator that checks the value looks like local@domain.tld.
// Empty values pass; pair it with Required.
func Email(message string) Validator {
	return func(value string) error {
		if value != "" && !emailShape.MatchString(value) {
			return fmt.Errorf("%w: %s", ErrInvalidFormat, message)
		}
		return nil
	}
}

// Messages holds the user-facing validation copy.
type Messages struct {
	NameRequired    string `toml:"name_required"`
	EmailRequired   string `toml:"email_required"`
	EmailInvalid    string `toml:"email_invalid"`
	MessageRequired string `toml:"message_required"`
	Success         string `toml:"success"`
}

// DefaultMessages returns the stock English messages.
func DefaultMessages() Messages {
	return Messages{
		NameRequired:    "Name is required",
		EmailRequired:   "Email is required",
		EmailInvalid:    "Email is invalid",
		MessageRequired: "Message is required",
		Success:         "Message sent successfully!",
	}
}

// withDefaults fills blank messages from DefaultMessages.
func (m Messages) withDefaults() Messages {
	d := DefaultMessages()
	if m.NameRequired == "" {
		m.NameRequired = d.NameRequired
	}
	if m.EmailRequired == "" {
		m.EmailRequired = d.EmailRequired
	}
	if m.EmailInvalid == "" {
		m.EmailInvalid = d.EmailInvalid
	}
	if m.MessageRequired == "" {
		m.MessageRequired = d.MessageRequired
	}
	if m.Success == "" {
		m.Success = d.Success
	}
	return m
}

// Rules returns the validators for each field, first failure wins.
func (m Messages) Rules() map[Field][]Validator {
	m = m.withDefaults()
	return map[Field][]Validator{
		FieldName:    {Required(m.NameRequired)},
		FieldEmail:   {Required(m.EmailRequired), Email(m.EmailInvalid)},
		FieldMessage: {Required(m.MessageRequired)},
	}
}

// ============================================================================
// ContactForm
// ============================================================================

// ContactForm holds the raw field values and the errors from the last submit.
type ContactForm struct {
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Message string      `json:"message"`
	Errors  FieldErrors `json:"errors,omitempty"`
}

// Value returns the raw value of f.
func (c ContactForm) Value(f Field) string {
	switch f {
	case FieldName:
		return c.Name
	case FieldEmail:
		return c.Email
	case FieldMessage:
		return c.Message
	}
	return ""
}

// Set stores value verbatim into f. Errors are not touched; they only change on submit.
// Returns false for an unknown field.
func (c *ContactForm) Set(f Field, value string) bool {
	switch f {
	case FieldName:
		c.Name = value
	case FieldEmail:
		c.Email = value
	case FieldMessage:
		c.Message = value
	default:
		return false
	}
	return true
}

// Validate runs the rules against the trimmed values, in field order.
// Returns nil when every field passes.
func (c ContactForm) Validate(rules map[Field][]Validator) FieldErrors {
	var errs FieldErrors
	for _, f := range Fields {
		value := strings.TrimSpace(c.Value(f))
		for _, validator := range rules[f] {
			err := validator(value)
			if err == nil {
				continue
			}
			if errs == nil {
				errs = make(FieldErrors)
			}
			errs[f] = toFieldError(f, err)
			break // Stop at first error for this field
		}
	}
	return errs
}

// toFieldError converts a validator error into a FieldError.
func toFieldError(f Field, err error) *FieldError {
	kind := ErrInvalidFormat
	if errors.Is(err, ErrRequired) {
		kind = ErrRequired
	}
	msg := err.Error()
	if prefix := kind.Error() + ": "; strings.HasPrefix(msg, prefix) {
		msg = strings.TrimPrefix(msg, prefix)
	}
	return &FieldError{Field: f, Kind: kind, Message: msg}
}

// Trimmed returns a copy with whitespace trimmed from every value and no errors.
func (c ContactForm) Trimmed() ContactForm {
	return ContactForm{
		Name:    strings.TrimSpace(c.Name),
		Email:   strings.TrimSpace(c.Email),
		Message: strings.TrimSpace(c.Message),
	}
}

// Clone returns an independent copy.
func (c ContactForm) Clone() ContactForm {
	c.Errors = c.Errors.Clone()
	return c
}
