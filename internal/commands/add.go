package commands

import (
	"fmt"

	"github.com/gident-cli/gident/internal/store"
	"github.com/gident-cli/gident/internal/validate"
)

// InvalidInputError reports a field that failed validation before any
// state was touched.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// validateProfile checks every field of a profile-to-be.
func validateProfile(p store.Profile) error {
	if !validate.ProfileName(p.Name) {
		return &InvalidInputError{Reason: "profile name must be 1-50 alphanumeric characters, hyphens, or underscores"}
	}
	if !validate.Username(p.Username) {
		return &InvalidInputError{Reason: "invalid username format"}
	}
	if !validate.Email(p.Email) {
		return &InvalidInputError{Reason: "invalid email format"}
	}
	if !validate.SSHKeyName(p.SSHKeyName) {
		return &InvalidInputError{Reason: "invalid SSH key name"}
	}
	return nil
}

// Add validates and stores a new profile.
func Add(st *store.Store, p store.Profile) error {
	if err := validateProfile(p); err != nil {
		return err
	}
	return st.Create(p)
}
