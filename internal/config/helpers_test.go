package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// unsetEnv removes k; t.Setenv has already registered restoring the
// original value.
func unsetEnv(t *testing.T, k string) {
	t.Helper()
	require.NoError(t, os.Unsetenv(k))
}

func writeTempConfig(t *testing.T, pattern, content string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), pattern)
	require.NoError(t, err)
	_, err = f.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}
