package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "password")
	require.NoError(t, os.WriteFile(path, []byte("  hunter2\n"), 0o600))

	value, err := Resolve("smtp password", path, "inline")
	require.NoError(t, err)
	require.Equal(t, "hunter2", value)

	value, err = Resolve("smtp password", "", " inline ")
	require.NoError(t, err)
	require.Equal(t, "inline", value)

	_, err = Resolve("smtp password", "", "")
	require.ErrorContains(t, err, "not configured")

	_, err = Resolve("smtp password", filepath.Join(t.TempDir(), "missing"), "")
	require.Error(t, err)
}
