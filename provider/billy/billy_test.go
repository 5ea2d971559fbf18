package billy

import (
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmgilman/syskit/core"
	"github.com/jmgilman/syskit/errors"
	"github.com/jmgilman/syskit/providertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_Conformance(t *testing.T) {
	providertest.TestSuite(t, func(t *testing.T) (core.Provider, string) {
		return NewMemory(), "/"
	})
}

func TestLocal_Conformance(t *testing.T) {
	providertest.TestSuite(t, func(t *testing.T) (core.Provider, string) {
		return NewLocal(t.TempDir()), "/"
	})
}

// TestMemory_Constructor verifies NewMemory creates a valid filesystem.
func TestMemory_Constructor(t *testing.T) {
	p := NewMemory()
	require.NotNil(t, p)
	require.NotNil(t, p.Unwrap())
	assert.Equal(t, core.FSTypeMemory, p.Type())
	assert.Equal(t, DefaultMaxLinkHops, p.cfg.maxLinkHops)

	md, err := p.Stat("/")
	require.NoError(t, err)
	assert.True(t, md.IsDir())
}

// TestLocal_Type verifies NewLocal reports FSTypeLocal.
func TestLocal_Type(t *testing.T) {
	assert.Equal(t, core.FSTypeLocal, NewLocal(t.TempDir()).Type())
}

// TestMemory_Unwrap verifies the unwrapped billy.Filesystem shares state.
func TestMemory_Unwrap(t *testing.T) {
	p := NewMemory()

	f, err := p.Unwrap().Create("/direct.txt")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	md, err := p.Stat("/direct.txt")
	require.NoError(t, err)
	assert.Equal(t, core.FileTypeRegular, md.Type)
}

func TestMemory_RelativeNames(t *testing.T) {
	p := NewMemory()
	require.NoError(t, p.Mkdir("/work", 0o755))
	require.NoError(t, p.Process().Chdir("/work"))

	require.NoError(t, p.Mkdir("sub", 0o755))
	md, err := p.Stat("/work/sub")
	require.NoError(t, err)
	assert.True(t, md.IsDir())

	got, err := p.Canonicalize("sub/..")
	require.NoError(t, err)
	assert.Equal(t, "/work", got)
}

func TestProcess(t *testing.T) {
	p := NewMemory(WithEnv(map[string]string{"TMPDIR": "/scratch"}))
	proc := p.Process()

	wd, err := proc.Getwd()
	require.NoError(t, err)
	assert.Equal(t, "/", wd)

	v, ok := proc.LookupEnv("TMPDIR")
	assert.True(t, ok)
	assert.Equal(t, "/scratch", v)
	_, ok = proc.LookupEnv("HOME")
	assert.False(t, ok)

	t.Run("chdir to missing directory", func(t *testing.T) {
		err := proc.Chdir("/nope")
		assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
	})

	t.Run("chdir to file", func(t *testing.T) {
		f, err := p.OpenFile("/file", os.O_CREATE|os.O_WRONLY, 0o644)
		require.NoError(t, err)
		require.NoError(t, f.Close())

		err = proc.Chdir("/file")
		assert.Equal(t, errors.CodeNotADirectory, errors.GetCode(err))
	})

	t.Run("chdir normalizes", func(t *testing.T) {
		require.NoError(t, p.Mkdir("/a", 0o755))
		require.NoError(t, proc.Chdir("/a/../a/"))
		wd, err := proc.Getwd()
		require.NoError(t, err)
		assert.Equal(t, "/a", wd)
	})
}

func TestWithEnv_Copies(t *testing.T) {
	env := map[string]string{"K": "v1"}
	p := NewMemory(WithEnv(env))
	env["K"] = "v2"

	v, _ := p.Process().LookupEnv("K")
	assert.Equal(t, "v1", v)
}

func TestCanonicalize_MaxLinkHops(t *testing.T) {
	p := NewMemory(WithMaxLinkHops(1))
	require.NoError(t, p.Mkdir("/dir", 0o755))
	require.NoError(t, p.Symlink("/dir", "/one"))
	require.NoError(t, p.Symlink("/one", "/two"))

	got, err := p.Canonicalize("/one")
	require.NoError(t, err)
	assert.Equal(t, "/dir", got)

	_, err = p.Canonicalize("/two")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(err))
}

func TestCanonicalize_RelativeLinkTarget(t *testing.T) {
	p := NewMemory()
	require.NoError(t, p.Mkdir("/a", 0o755))
	require.NoError(t, p.Mkdir("/a/b", 0o755))
	require.NoError(t, p.Symlink("b", "/a/rel"))

	got, err := p.Canonicalize("/a/rel")
	require.NoError(t, err)
	assert.Equal(t, "/a/b", got)
}

func TestRemove_Root(t *testing.T) {
	err := NewMemory().Remove("/")
	require.Error(t, err)
	assert.Equal(t, errors.CodeOther, errors.GetCode(err))
	assert.True(t, errors.IsRetryable(err))
}

func TestOpenFile_Directory(t *testing.T) {
	_, err := NewMemory().OpenFile("/", os.O_RDONLY, 0)
	assert.Equal(t, errors.CodeIsADirectory, errors.GetCode(err))

	_, err = NewMemory().OpenFile("/", os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	assert.Equal(t, errors.CodeIsADirectory, errors.GetCode(err))
}

func TestOpenFile_CreateNeedsParent(t *testing.T) {
	p := NewMemory()

	_, err := p.OpenFile("/missing/file", os.O_WRONLY|os.O_CREATE, 0o644)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))

	f, err := p.OpenFile("/file", os.O_WRONLY|os.O_CREATE, 0o644)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = p.OpenFile("/file/child", os.O_WRONLY|os.O_CREATE, 0o644)
	assert.Equal(t, errors.CodeNotADirectory, errors.GetCode(err))
}

func TestSnapshotStream_Closed(t *testing.T) {
	p := NewMemory()
	stream, err := p.OpenDir("/")
	require.NoError(t, err)
	require.NoError(t, stream.Close())

	_, err = stream.Next()
	assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(err))
	assert.False(t, stderrors.Is(err, io.EOF))
}

func TestLocal_Chmod(t *testing.T) {
	root := t.TempDir()
	p := NewLocal(root)

	f, err := p.OpenFile("/script", os.O_CREATE|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, p.Chmod("/script", 0o750))
	info, err := os.Stat(filepath.Join(root, "script"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o750), info.Mode().Perm())

	// An absolute link target stays below root.
	require.NoError(t, p.Symlink("/script", "/link"))
	require.NoError(t, p.Chmod("/link", 0o700))
	info, err = os.Stat(filepath.Join(root, "script"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())

	err = p.Chmod("/missing", 0o600)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestLocal_RelativeRoot(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.Mkdir("data", 0o755))

	p := NewLocal("data")
	assert.True(t, filepath.IsAbs(p.root))

	f, err := p.OpenFile("/file", os.O_CREATE|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.NoError(t, p.Chmod("/file", 0o600))
}

func TestMemory_ChmodUnsupported(t *testing.T) {
	p := NewMemory()
	f, err := p.OpenFile("/file", os.O_CREATE|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	err = p.Chmod("/file", 0o600)
	assert.Equal(t, errors.CodeUnsupported, errors.GetCode(err))
}
