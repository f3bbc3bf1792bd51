package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	original := Env
	t.Cleanup(func() { Env = original })

	Env = map[string]string{"APP_PORT": "8080"}
	t.Setenv("APP_HOST", "0.0.0.0")

	assert.Equal(t, "8080", GetEnv("APP_PORT", "4000"))
	assert.Equal(t, "0.0.0.0", GetEnv("APP_HOST", "localhost"))
	assert.Equal(t, "memory", GetEnv("RECORD_STORE_UNSET_FOR_TEST", "memory"))
}

func TestIsDev(t *testing.T) {
	original := Env
	t.Cleanup(func() { Env = original })

	Env = map[string]string{"APP_ENV": "dev"}
	assert.True(t, IsDev())

	Env = map[string]string{"APP_ENV": "prod"}
	assert.False(t, IsDev())
}
