package domain

import (
	"fmt"
	"strings"
)

// Role tags the variant of an Account. It is fixed at creation.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// ParseRole matches s case-insensitively against the known roles.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RolePatient, RoleDoctor, RoleAdmin:
		return r, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

// Account field names, used by the validator and by per-field access.
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldName     = "name"
	FieldEmail    = "email"
)

// Account is a patient, doctor or admin held by the account directory.
// ID and Role are immutable once the account has been created.
type Account struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

func (a *Account) IsPatient() bool { return a.Role == RolePatient }

func (a *Account) IsDoctor() bool { return a.Role == RoleDoctor }

// Field returns the value of one of the mutable string fields.
func (a *Account) Field(name string) (string, error) {
	switch name {
	case FieldUsername:
		return a.Username, nil
	case FieldPassword:
		return a.Password, nil
	case FieldName:
		return a.Name, nil
	case FieldEmail:
		return a.Email, nil
	}
	return "", &ValidationError{Field: name, Reason: "unknown field"}
}

// SetField assigns one of the mutable string fields on the receiver.
// It does not validate the value.
func (a *Account) SetField(name, value string) error {
	switch name {
	case FieldUsername:
		a.Username = value
	case FieldPassword:
		a.Password = value
	case FieldName:
		a.Name = value
	case FieldEmail:
		a.Email = value
	default:
		return &ValidationError{Field: name, Reason: "unknown field"}
	}
	return nil
}
