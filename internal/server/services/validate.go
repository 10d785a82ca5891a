package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/common"
)

const (
	minPasswordLength = 6
	minUserNameLength = 3
)

var userNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrorValidation, fmt.Sprintf(format, args...))
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", invalid("email is required")
	}
	if !strings.Contains(email, "@") {
		return "", invalid("email must contain @")
	}
	return email, nil
}

func validatePassword(password string) error {
	if password == "" {
		return invalid("password is required")
	}
	if len(password) < minPasswordLength {
		return invalid("password must be at least %d characters", minPasswordLength)
	}
	return nil
}

// normalizeProfile trims both fields and lower-cases the username.
func normalizeProfile(fullName, userName string) (string, string, error) {
	fullName = strings.TrimSpace(fullName)
	userName = strings.ToLower(strings.TrimSpace(userName))
	if fullName == "" {
		return "", "", invalid("full name is required")
	}
	if userName == "" {
		return "", "", invalid("username is required")
	}
	if len(userName) < minUserNameLength {
		return "", "", invalid("username must be at least %d characters", minUserNameLength)
	}
	if !userNamePattern.MatchString(userName) {
		return "", "", invalid("username may only contain letters, numbers and underscores")
	}
	return fullName, userName, nil
}

// validateID checks a caller-supplied row id. Every primary key is a UUID, so
// anything else cannot name a row and is rejected before reaching the store.
func validateID(what, id string) error {
	if strings.TrimSpace(id) == "" {
		return invalid("%s id is required", what)
	}
	if _, err := uuid.Parse(id); err != nil {
		return invalid("%s id %q is not valid", what, id)
	}
	return nil
}
