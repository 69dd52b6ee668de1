// Package validate holds the input format checks applied before a profile
// is created or updated. All checks are pure and accept arbitrary strings.
package validate

import (
	"regexp"
	"strings"
)

var (
	profileNameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	usernameRe    = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
	emailRe       = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// ProfileName reports whether name is a valid profile name: 1-50
// characters, alphanumerics, hyphens and underscores only.
func ProfileName(name string) bool {
	if name == "" || len(name) > 50 {
		return false
	}
	return profileNameRe.MatchString(name)
}

// Username reports whether s is a valid GitHub-style username: 1-39
// alphanumerics or hyphens, not starting or ending with a hyphen.
func Username(s string) bool {
	if s == "" || len(s) > 39 {
		return false
	}
	if strings.HasPrefix(s, "-") || strings.HasSuffix(s, "-") {
		return false
	}
	return usernameRe.MatchString(s)
}

// Email reports whether s has a user@domain.tld shape.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// invalid filename characters for SSH key names; path separators plus the
// characters Windows refuses in filenames.
const invalidKeyChars = "/\\\x00<>:\"|?*"

// SSHKeyName reports whether s is a usable key file name: 1-255
// characters, no path separators or reserved filename characters, no
// leading or trailing whitespace.
func SSHKeyName(s string) bool {
	if s == "" || len(s) > 255 {
		return false
	}
	if strings.ContainsAny(s, invalidKeyChars) {
		return false
	}
	return strings.TrimSpace(s) == s
}
