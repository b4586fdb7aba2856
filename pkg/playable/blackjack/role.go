package blackjack

import "strings"

// Role is the part a hand plays at the table
type Role string

// Role constants
const (
	RolePlayer   Role = "player"
	RoleComputer Role = "computer"
	RoleDealer   Role = "dealer"
)

// RoleFromString returns the role, ignoring case
func RoleFromString(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if !role.valid() {
		return "", InvalidRoleError(s)
	}

	return role, nil
}

func (r Role) valid() bool {
	switch r {
	case RolePlayer, RoleComputer, RoleDealer:
		return true
	}

	return false
}

// Label returns the capitalized role, suitable for display
func (r Role) Label() string {
	if r == "" {
		return ""
	}

	return strings.ToUpper(string(r[:1])) + string(r[1:])
}
