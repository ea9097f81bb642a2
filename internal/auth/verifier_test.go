package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvCredentials_Verify(t *testing.T) {
	v := EnvCredentials{UserName: "admin", Password: "s3cret"}

	assert.True(t, v.Verify("admin", "s3cret"))
	assert.False(t, v.Verify("admin", "wrong"))
	assert.False(t, v.Verify("someone", "s3cret"))
	assert.False(t, v.Verify("", ""))
}
