package billy

import (
	"io"
	"os"
	"testing"

	"github.com/jmgilman/syskit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_ReadWriteSeek(t *testing.T) {
	p := NewMemory()

	f, err := p.OpenFile("/data.bin", os.O_CREATE|os.O_RDWR, 0o644)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Equal(t, "/data.bin", f.Name())

	n, err := f.Write([]byte("hello world"))
	require.NoError(t, err)
	assert.Equal(t, 11, n)

	buf := make([]byte, 5)
	n, err = f.ReadAt(buf, 6)
	require.NoError(t, err)
	assert.Equal(t, "world", string(buf[:n]))

	pos, err := f.Seek(0, io.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pos)

	all, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(all))

	syncer, ok := f.(core.Syncer)
	require.True(t, ok)
	assert.NoError(t, syncer.Sync())
}

func TestFile_Append(t *testing.T) {
	p := NewMemory()

	for _, chunk := range []string{"one,", "two"} {
		f, err := p.OpenFile("/log.txt", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		require.NoError(t, err)
		_, err = f.Write([]byte(chunk))
		require.NoError(t, err)
		require.NoError(t, f.Close())
	}

	md, err := p.Stat("/log.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(7), md.Size)
}
