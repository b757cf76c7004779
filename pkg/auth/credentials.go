package auth

import (
	"context"
	"crypto/subtle"
)

// DefaultKnownUsers are the identities accepted by the placeholder credential policy
var DefaultKnownUsers = []string{"alice", "bob", "carol", "dave"}

// CredentialChecker decides whether a username/password pair may obtain a token
type CredentialChecker interface {
	Check(ctx context.Context, username, password string) bool
}

// KnownUsersChecker is PLACEHOLDER authentication: it accepts a fixed set of
// usernames whose password equals the username. It exists so token issuance
// can be exercised end to end and must be replaced before real use.
type KnownUsersChecker struct {
	users map[string]struct{}
}

// NewKnownUsersChecker returns a checker accepting the given usernames
func NewKnownUsersChecker(users ...string) *KnownUsersChecker {
	set := make(map[string]struct{}, len(users))
	for _, u := range users {
		set[u] = struct{}{}
	}
	return &KnownUsersChecker{users: set}
}

// Check implements CredentialChecker
func (c *KnownUsersChecker) Check(_ context.Context, username, password string) bool {
	if _, ok := c.users[username]; !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(username), []byte(password)) == 1
}
