package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateURL(t *testing.T) {
	ok := []string{"https://acme.io", "http://acme.io/about?x=1", "https://8.8.8.8/"}
	for _, u := range ok {
		assert.NoError(t, ValidateURL(u), u)
	}

	bad := []string{
		"",
		"ftp://acme.io",
		"javascript:alert(1)",
		"https://",
		"http://localhost:8080",
		"http://api.localhost",
		"http://127.0.0.1",
		"http://[::1]/",
		"http://0.0.0.0",
		"http://10.0.0.5",
		"http://172.20.1.1",
		"http://192.168.1.1",
		"http://169.254.169.254/latest/meta-data",
		"http://metadata.google.internal",
	}
	for _, u := range bad {
		assert.Error(t, ValidateURL(u), u)
	}
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello\tworld", SanitizeString("  hel\x00lo\tworld\x07 "))
}

func TestIDValidators(t *testing.T) {
	assert.NoError(t, ValidateUserID("user_1-a"))
	assert.Error(t, ValidateUserID(""))
	assert.Error(t, ValidateUserID("user 1"))

	assert.NoError(t, ValidateSessionID("3f2b8c1e-8a6d-4c3f-9a52-1b2c3d4e5f60"))
	assert.Error(t, ValidateSessionID("not-a-uuid"))

	assert.NoError(t, ValidateShareToken("k3j9x0a1b2"))
	assert.Error(t, ValidateShareToken("ABC"))
	assert.Error(t, ValidateShareToken("../etc"))
}

func TestPagination(t *testing.T) {
	assert.Equal(t, 20, ValidateLimit(0))
	assert.Equal(t, 100, ValidateLimit(1000))
	assert.Equal(t, 5, ValidateLimit(5))
	assert.Equal(t, 1, ValidatePage(-3))
	assert.Equal(t, 4, ValidatePage(4))
}
