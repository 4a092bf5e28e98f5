package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSHA256Digester_Deterministic(t *testing.T) {
	d := SHA256Digester{}

	first, err := d.Hash("Secret1!")
	assert.NoError(t, err)
	second, err := d.Hash("Secret1!")
	assert.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, "Secret1!", first)
	assert.Equal(t, first, second)
}

func TestSHA256Digester_Verify(t *testing.T) {
	d := SHA256Digester{}
	digest, _ := d.Hash("password123")

	assert.True(t, d.Verify("password123", digest))
	assert.False(t, d.Verify("wrongpassword", digest))
	assert.False(t, d.Verify("password123", "notadigest"))
}

func TestBcryptDigester_Verify(t *testing.T) {
	d := BcryptDigester{}
	digest, err := d.Hash("password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.True(t, d.Verify("password123", digest))
	assert.False(t, d.Verify("wrongpassword", digest))
}

func TestBcryptDigester_Salted(t *testing.T) {
	d := BcryptDigester{}
	first, _ := d.Hash("password123")
	second, _ := d.Hash("password123")

	// bcrypt embeds a random salt, so two digests of the same password differ
	assert.NotEqual(t, first, second)
}

func TestNewPasswordDigester(t *testing.T) {
	assert.IsType(t, SHA256Digester{}, NewPasswordDigester("sha256"))
	assert.IsType(t, SHA256Digester{}, NewPasswordDigester(""))
	assert.IsType(t, BcryptDigester{}, NewPasswordDigester("bcrypt"))
}
