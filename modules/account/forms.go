package account

import (
	"strings"
	"time"

	"github.com/cidadaoativo/cidadao/pkg/authapi"
	"github.com/cidadaoativo/cidadao/pkg/cpf"
	"github.com/cidadaoativo/cidadao/pkg/sanitizer"
	"github.com/cidadaoativo/cidadao/pkg/validator"
)

// Field names as submitted by the sign-in and sign-up forms. They are also
// the keys of per-field error messages.
const (
	FieldFullName        = "fullName"
	FieldCPF             = "cpf"
	FieldBirthDate       = "birthDate"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// LoginForm is the sign-in form.
type LoginForm struct {
	CPF      string `json:"cpf" form:"cpf"`
	Password string `json:"password" form:"password"`
}

// Validate requires a CPF with valid check digits and a password.
func (f LoginForm) Validate() error {
	return validator.Apply(
		validator.First(
			validator.Required(FieldCPF, f.CPF),
			validator.ValidCPF(FieldCPF, f.CPF),
		),
		validator.Required(FieldPassword, f.Password),
	)
}

// Normalize strips the CPF mask. The password is left untouched.
func (f *LoginForm) Normalize() {
	f.CPF = cpf.Unformat(f.CPF)
}

func (f LoginForm) request() authapi.LoginRequest {
	return authapi.LoginRequest{CPF: f.CPF, Password: f.Password}
}

// RegisterForm is the sign-up form.
type RegisterForm struct {
	FullName        string `json:"fullName" form:"fullName"`
	CPF             string `json:"cpf" form:"cpf"`
	BirthDate       string `json:"birthDate" form:"birthDate"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
}

// Validate checks every field and reports at most one error per field:
// "required" when blank, the field's own rule otherwise. The birth date is
// checked against now.
func (f RegisterForm) Validate(now time.Time) error {
	return validator.Apply(
		validator.First(
			validator.Required(FieldFullName, f.FullName),
			validator.ValidFullName(FieldFullName, f.FullName),
		),
		validator.First(
			validator.Required(FieldCPF, f.CPF),
			validator.ValidCPF(FieldCPF, f.CPF),
		),
		validator.First(
			validator.Required(FieldBirthDate, f.BirthDate),
			validator.ValidBirthDate(FieldBirthDate, f.BirthDate, now),
		),
		validator.First(
			validator.Required(FieldPassword, f.Password),
			validator.ValidPassword(FieldPassword, f.Password),
		),
		validator.First(
			validator.Required(FieldConfirmPassword, f.ConfirmPassword),
			validator.PasswordConfirmed(FieldConfirmPassword, f.Password, f.ConfirmPassword),
		),
	)
}

// Normalize prepares the form for the backend: the name is cleaned up, the
// CPF mask is stripped and timestamps are reduced to their calendar date.
func (f *RegisterForm) Normalize() {
	f.FullName = sanitizer.PersonName(f.FullName)
	f.CPF = cpf.Unformat(f.CPF)
	if d, ok := validator.ParseDate(f.BirthDate); ok {
		f.BirthDate = d.Format(validator.DateLayout)
	} else {
		f.BirthDate = strings.TrimSpace(f.BirthDate)
	}
}

func (f RegisterForm) request() authapi.RegisterRequest {
	return authapi.RegisterRequest{
		FullName:  f.FullName,
		CPF:       f.CPF,
		BirthDate: f.BirthDate,
		Password:  f.Password,
	}
}

// MaskRequest carries the CPF typed so far.
type MaskRequest struct {
	CPF string `json:"cpf" form:"cpf"`
}

// MaskResult describes a partially typed CPF.
type MaskResult struct {
	Masked   string `json:"masked"`
	Digits   string `json:"digits"`
	Complete bool   `json:"complete"`
	Valid    bool   `json:"valid"`
	Error    string `json:"error,omitempty"`
}

// Mask formats value and validates it once all 11 digits are present.
func Mask(value string) MaskResult {
	masked := cpf.Format(value)
	res := MaskResult{
		Masked:   masked,
		Digits:   cpf.Unformat(masked),
		Complete: cpf.IsComplete(masked),
	}
	res.Valid = res.Complete && cpf.IsValid(masked)
	return res
}
