//go:build unix

package system_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmgilman/syskit/errors"
	"github.com/jmgilman/syskit/path"
	"github.com/jmgilman/syskit/perm"
	"github.com/jmgilman/syskit/provider/local"
	"github.com/jmgilman/syskit/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func newLocal(t *testing.T) (*system.System, path.Path) {
	t.Helper()
	sys := system.New(local.New(), system.WithProcess(local.Process{}))
	return sys, path.New(t.TempDir())
}

func TestPermissions_Local(t *testing.T) {
	sys, dir := newLocal(t)
	file := dir.Joined(path.New("secret"))
	require.NoError(t, os.WriteFile(file.String(), []byte("x"), 0o600))

	got, err := sys.Permissions(file)
	require.NoError(t, err)
	assert.Equal(t, perm.Triplet{Owner: perm.RW}, got)

	want := perm.Triplet{Owner: perm.RWX, Group: perm.Read, Other: perm.None}
	require.NoError(t, sys.SetPermissions(file, want))

	got, err = sys.Permissions(file)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	err = sys.SetPermissions(dir.Joined(path.New("missing")), want)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestMakeDirectory_Local(t *testing.T) {
	old := unix.Umask(0)
	t.Cleanup(func() { unix.Umask(old) })

	sys, dir := newLocal(t)

	def := dir.Joined(path.New("default"))
	require.NoError(t, sys.MakeDirectory(def))
	got, err := sys.Permissions(def)
	require.NoError(t, err)
	assert.Equal(t, perm.DefaultDirectory, got)

	custom := dir.Joined(path.New("custom"))
	require.NoError(t, sys.MakeDirectory(custom, perm.Triplet{Owner: perm.RWX}))
	got, err = sys.Permissions(custom)
	require.NoError(t, err)
	assert.Equal(t, perm.Triplet{Owner: perm.RWX}, got)

	configured := system.New(local.New(), system.WithDirectoryPermission(perm.Triplet{Owner: perm.RWX, Group: perm.RX}))
	grouped := dir.Joined(path.New("grouped"))
	require.NoError(t, configured.MakeDirectory(grouped))
	got, err = configured.Permissions(grouped)
	require.NoError(t, err)
	assert.Equal(t, perm.Triplet{Owner: perm.RWX, Group: perm.RX}, got)
}

func TestRemove_Local(t *testing.T) {
	sys, dir := newLocal(t)
	tree := dir.Joined(path.New("tree"))
	require.NoError(t, os.MkdirAll(filepath.Join(tree.String(), "a", "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tree.String(), "a", "b", "f"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tree.String(), "top"), nil, 0o644))

	keep := dir.Joined(path.New("keep"))
	require.NoError(t, os.Mkdir(keep.String(), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(keep.String(), "precious"), nil, 0o644))
	require.NoError(t, sys.Symlink(keep, tree.Joined(path.New("link"))))

	err := sys.Remove(tree, false)
	assert.Equal(t, errors.CodeNotEmpty, errors.GetCode(err))

	require.NoError(t, sys.Remove(tree, true))
	assert.False(t, sys.Exists(tree))
	assert.True(t, sys.IsFile(keep.Joined(path.New("precious"))))
}

func TestWorkingDirectory_Local(t *testing.T) {
	sys, dir := newLocal(t)
	t.Chdir(dir.String())

	resolved, err := sys.Resolved(dir)
	require.NoError(t, err)

	wd, err := sys.WorkingDirectory()
	require.NoError(t, err)
	assert.True(t, wd.Equal(resolved))

	t.Setenv("TMPDIR", dir.String())
	assert.Equal(t, dir.String(), sys.TemporaryDirectory().String())
}
