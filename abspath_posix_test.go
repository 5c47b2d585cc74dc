//go:build !windows

package abspath_test

import (
	"os"
	"path/filepath"
	"testing"

	abspath "github.com/Jumpaku/go-abspath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A POSIX base beginning with "//" is a legal absolute path, not a UNC
// prefix; resolution against it must succeed and return the canonical
// single-slash form.
func TestResolve_DoubleSlashBase(t *testing.T) {
	t.Parallel()

	dir := realDir(t, t.TempDir())
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	got, err := abspath.Resolve("/"+dir, ".")
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	got, err = abspath.Resolve("/"+dir, filepath.FromSlash("./sub/../sub"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sub"), got)
}
