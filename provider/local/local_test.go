//go:build unix

package local

import (
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/jmgilman/syskit/core"
	"github.com/jmgilman/syskit/errors"
	"github.com/jmgilman/syskit/providertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestConformance(t *testing.T) {
	providertest.TestSuite(t, func(t *testing.T) (core.Provider, string) {
		return New(), t.TempDir()
	})
}

func TestConformance_SmallBatches(t *testing.T) {
	providertest.TestSuiteWithConfig(t, func(t *testing.T) (core.Provider, string) {
		return New(WithBatchSize(1)), t.TempDir()
	}, providertest.Config{SkipTests: []string{"Symlink", "Canonicalize"}})
}

func TestNew_Options(t *testing.T) {
	assert.Equal(t, DefaultBatchSize, New().cfg.batchSize)
	assert.Equal(t, 7, New(WithBatchSize(7)).cfg.batchSize)
	assert.Equal(t, DefaultBatchSize, New(WithBatchSize(0)).cfg.batchSize)
	assert.Equal(t, core.FSTypeLocal, New().Type())
}

func TestStat_FIFO(t *testing.T) {
	name := filepath.Join(t.TempDir(), "pipe")
	if err := unix.Mkfifo(name, 0o600); err != nil {
		t.Skipf("mkfifo not permitted: %v", err)
	}

	md, err := New().Stat(name)
	require.NoError(t, err)
	assert.Equal(t, core.FileTypeFIFO, md.Type)
	assert.Equal(t, os.FileMode(0o600), md.Perm)
}

func TestStat_Errno(t *testing.T) {
	_, err := New().Stat(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)

	var e errors.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, unix.ENOENT, e.Errno())
	assert.Equal(t, "stat", e.Op())
	assert.True(t, stderrors.Is(err, os.ErrNotExist))
}

func TestDirStream_ManyEntries(t *testing.T) {
	dir := t.TempDir()
	var want []string
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
		want = append(want, name)
	}

	stream, err := New(WithBatchSize(2)).OpenDir(dir)
	require.NoError(t, err)

	var got []string
	for {
		name, err := stream.Next()
		if stderrors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		got = append(got, name)
	}
	slices.Sort(got)
	assert.Equal(t, want, got)

	require.NoError(t, stream.Close())
	_, err = stream.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestCanonicalize_Relative(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	t.Chdir(dir)

	p := New()
	root, err := p.Canonicalize(dir)
	require.NoError(t, err)

	got, err := p.Canonicalize("sub/./../sub")
	require.NoError(t, err)
	assert.Equal(t, root+"/sub", got)
}

func TestOpenFile_Directory(t *testing.T) {
	_, err := New().OpenFile(t.TempDir(), os.O_RDONLY, 0)
	assert.Equal(t, errors.CodeIsADirectory, errors.GetCode(err))
}

func TestProcess(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("SYSKIT_TEST_VALUE", "present")

	var proc Process
	wd, err := proc.Getwd()
	require.NoError(t, err)

	canonical, err := New().Canonicalize(dir)
	require.NoError(t, err)
	assert.Equal(t, canonical, wd)

	v, ok := proc.LookupEnv("SYSKIT_TEST_VALUE")
	assert.True(t, ok)
	assert.Equal(t, "present", v)

	err = proc.Chdir(filepath.Join(dir, "missing"))
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))

	require.NoError(t, os.Mkdir(filepath.Join(dir, "next"), 0o755))
	require.NoError(t, proc.Chdir("next"))
	wd, err = proc.Getwd()
	require.NoError(t, err)
	assert.Equal(t, canonical+"/next", wd)
}
