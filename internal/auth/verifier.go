package auth

import "crypto/subtle"

// Verifier decides whether a submitted username/password pair is valid.
// The router only ever talks to this interface, so the comparison
// strategy can move to hashed credentials without touching handlers.
type Verifier interface {
	Verify(userName, password string) bool
}

// EnvCredentials verifies against a single configured admin credential
// pair using constant-time equality.
type EnvCredentials struct {
	UserName string
	Password string
}

var _ Verifier = EnvCredentials{}

func (e EnvCredentials) Verify(userName, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(userName), []byte(e.UserName)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(e.Password)) == 1
	return userOK && passOK
}
