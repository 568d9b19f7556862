// Package form holds the sign-up form state and its field validators.
package form

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
)

// Field names a sign-up form input.
type Field string

const (
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
)

// Fields lists the inputs in display order.
var Fields = []Field{FieldEmail, FieldPassword}

// emailPattern matches the address shape browsers accept for
// <input type="email">: ASCII local part and dot-separated labels, no TLD
// required.
var emailPattern = regexp.MustCompile("^[a-zA-Z0-9!#$%&'*+/=?^_`{|}~-]+(?:\\.[a-zA-Z0-9!#$%&'*+/=?^_`{|}~-]+)*" +
	"@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

const (
	maxEmailLen     = 254
	maxLocalPartLen = 64

	minPasswordUnits = 6
	maxPasswordUnits = 20
)

// lineTerminators are rejected anywhere in a password.
const lineTerminators = "\n\r\u2028\u2029"

// ValidEmail reports whether s is a well-formed email address.
func ValidEmail(s string) bool {
	if len(s) == 0 || len(s) > maxEmailLen {
		return false
	}
	at := strings.IndexByte(s, '@')
	if at < 1 || at > maxLocalPartLen {
		return false
	}
	return emailPattern.MatchString(s)
}

// ValidPassword reports whether s is 6 to 20 UTF-16 code units long and
// holds no line terminators.
func ValidPassword(s string) bool {
	if strings.ContainsAny(s, lineTerminators) {
		return false
	}
	n := len(utf16.Encode([]rune(s)))
	return n >= minPasswordUnits && n <= maxPasswordUnits
}

// Values is a snapshot of the form taken at submit time.
type Values struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,password"`
}

// FieldError reports the first rule a field failed.
// Rule is one of "required", "email" or "pattern".
type FieldError struct {
	Field Field
	Rule  string
}

func (e FieldError) Error() string {
	return string(e.Field) + ": " + e.Rule
}

// ValidationError collects the failing fields of a form.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Error()
	}
	return "form: invalid " + strings.Join(parts, ", ")
}

// Has reports whether field failed validation.
func (e *ValidationError) Has(field Field) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("email", func(fl validator.FieldLevel) bool {
		return ValidEmail(fl.Field().String())
	})
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return ValidPassword(fl.Field().String())
	})
	return v
}

// Validate checks v against the email and password rules.
// It returns nil or a *ValidationError.
func Validate(v Values) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		rule := fe.Tag()
		if rule == "password" {
			rule = "pattern"
		}
		out.Fields = append(out.Fields, FieldError{Field: Field(fe.Field()), Rule: rule})
	}
	return out
}

// SignUp is the mutable form behind the sign-up screen.
type SignUp struct {
	values Values
}

// New returns an empty form.
func New() *SignUp {
	return &SignUp{}
}

// Set updates a single field.
func (f *SignUp) Set(field Field, value string) {
	switch field {
	case FieldEmail:
		f.values.Email = value
	case FieldPassword:
		f.values.Password = value
	}
}

// Get returns the current value of field.
func (f *SignUp) Get(field Field) string {
	switch field {
	case FieldEmail:
		return f.values.Email
	case FieldPassword:
		return f.values.Password
	}
	return ""
}

// Values returns a copy of the current field values.
func (f *SignUp) Values() Values {
	return f.values
}

// Reset clears both fields.
func (f *SignUp) Reset() {
	f.values = Values{}
}

// Valid reports whether the form passes validation.
func (f *SignUp) Valid() bool {
	return Validate(f.values) == nil
}

// Errors returns the failing fields, or nil when the form is valid.
func (f *SignUp) Errors() []FieldError {
	var verr *ValidationError
	if errors.As(Validate(f.values), &verr) {
		return verr.Fields
	}
	return nil
}
