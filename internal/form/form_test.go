package form

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		values  Values
		wantErr map[Field]string
	}{
		{
			name:   "valid",
			values: Values{Email: "ana@example.com", Password: "secreto"},
		},
		{
			name:    "empty form",
			values:  Values{},
			wantErr: map[Field]string{FieldEmail: "required", FieldPassword: "required"},
		},
		{
			name:    "malformed email",
			values:  Values{Email: "ana-at-example", Password: "secreto"},
			wantErr: map[Field]string{FieldEmail: "email"},
		},
		{
			name:    "password too short",
			values:  Values{Email: "ana@example.com", Password: "12345"},
			wantErr: map[Field]string{FieldPassword: "pattern"},
		},
		{
			name:    "password too long",
			values:  Values{Email: "ana@example.com", Password: strings.Repeat("x", 21)},
			wantErr: map[Field]string{FieldPassword: "pattern"},
		},
		{
			name:    "password with newline",
			values:  Values{Email: "ana@example.com", Password: "abc\ndefg"},
			wantErr: map[Field]string{FieldPassword: "pattern"},
		},
		{
			name:   "email without top-level domain",
			values: Values{Email: "ana@localhost", Password: "secreto"},
		},
		{
			name:    "email with non-ascii local part",
			values:  Values{Email: "josé@ejemplo.com", Password: "secreto"},
			wantErr: map[Field]string{FieldEmail: "email"},
		},
		{
			name:    "email local part too long",
			values:  Values{Email: strings.Repeat("a", 65) + "@example.com", Password: "secreto"},
			wantErr: map[Field]string{FieldEmail: "email"},
		},
		{
			name:    "email label starting with hyphen",
			values:  Values{Email: "ana@-example.com", Password: "secreto"},
			wantErr: map[Field]string{FieldEmail: "email"},
		},
		{
			name:    "password with carriage return",
			values:  Values{Email: "ana@example.com", Password: "abc\rdefg"},
			wantErr: map[Field]string{FieldPassword: "pattern"},
		},
		{
			name:    "password with line separator",
			values:  Values{Email: "ana@example.com", Password: "abc\u2028defg"},
			wantErr: map[Field]string{FieldPassword: "pattern"},
		},
		{
			name:   "password counts utf-16 units",
			values: Values{Email: "ana@example.com", Password: "😀😀😀"},
		},
		{
			name:    "password over 20 utf-16 units",
			values:  Values{Email: "ana@example.com", Password: strings.Repeat("😀", 10) + "x"},
			wantErr: map[Field]string{FieldPassword: "pattern"},
		},
		{
			name:   "password at bounds",
			values: Values{Email: "ana@example.com", Password: strings.Repeat("x", 20)},
		},
		{
			name:   "password counts characters not bytes",
			values: Values{Email: "ana@example.com", Password: "ñandúñandú"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.values)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			got := map[Field]string{}
			for _, f := range verr.Fields {
				got[f.Field] = f.Rule
			}
			assert.Equal(t, tt.wantErr, got)
		})
	}
}

func TestSignUp_SetResetValues(t *testing.T) {
	f := New()
	assert.False(t, f.Valid())

	f.Set(FieldEmail, "ana@example.com")
	f.Set(FieldPassword, "secreto")
	assert.True(t, f.Valid())
	assert.Nil(t, f.Errors())
	assert.Equal(t, Values{Email: "ana@example.com", Password: "secreto"}, f.Values())
	assert.Equal(t, "secreto", f.Get(FieldPassword))

	f.Reset()
	assert.Equal(t, Values{}, f.Values())
	assert.False(t, f.Valid())
}

func TestSignUp_Errors(t *testing.T) {
	f := New()
	f.Set(FieldEmail, "ana@example.com")
	f.Set(FieldPassword, "123")

	errs := f.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, FieldError{Field: FieldPassword, Rule: "pattern"}, errs[0])
}

func TestValidationError_Has(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{{Field: FieldEmail, Rule: "email"}}}
	assert.True(t, err.Has(FieldEmail))
	assert.False(t, err.Has(FieldPassword))
	assert.Equal(t, "form: invalid email: email", err.Error())
}
