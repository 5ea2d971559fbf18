package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodeForErrno(t *testing.T) {
	tests := []struct {
		errno syscall.Errno
		want  ErrorCode
	}{
		{syscall.ENOENT, CodeNotFound},
		{syscall.EACCES, CodePermissionDenied},
		{syscall.EPERM, CodePermissionDenied},
		{syscall.EEXIST, CodeAlreadyExists},
		{syscall.ENOTDIR, CodeNotADirectory},
		{syscall.EISDIR, CodeIsADirectory},
		{syscall.ENOTEMPTY, CodeNotEmpty},
		{syscall.EMFILE, CodeTooManyOpenHandles},
		{syscall.ENFILE, CodeTooManyOpenHandles},
		{syscall.EINVAL, CodeInvalidArgument},
		{syscall.ELOOP, CodeInvalidArgument},
		{syscall.EIO, CodeIOFailure},
		{syscall.ENOSYS, CodeUnsupported},
		{syscall.EXDEV, CodeOther},
	}

	for _, tt := range tests {
		t.Run(tt.errno.Error(), func(t *testing.T) {
			require.Equal(t, tt.want, CodeForErrno(tt.errno))
		})
	}
}

func TestFromErrno_OtherKeepsErrno(t *testing.T) {
	err := FromErrno("rename", "/a", syscall.EXDEV)
	require.Equal(t, CodeOther, err.Code())
	require.Equal(t, syscall.EXDEV, err.Errno())
}

func TestTranslate(t *testing.T) {
	pathErr := &fs.PathError{Op: "lstat", Path: "/nope", Err: syscall.ENOENT}
	existing := NewOp(CodeNotEmpty, "remove", "/d", "directory not empty")

	tests := []struct {
		name      string
		err       error
		wantCode  ErrorCode
		wantErrno syscall.Errno
	}{
		{"bare errno", syscall.ENOTDIR, CodeNotADirectory, syscall.ENOTDIR},
		{"path error", pathErr, CodeNotFound, syscall.ENOENT},
		{"wrapped path error", fmt.Errorf("walk: %w", pathErr), CodeNotFound, syscall.ENOENT},
		{"fs sentinel exist", fs.ErrExist, CodeAlreadyExists, 0},
		{"fs sentinel permission", fs.ErrPermission, CodePermissionDenied, 0},
		{"fs sentinel closed", fs.ErrClosed, CodeInvalidArgument, 0},
		{"unsupported", stderrors.ErrUnsupported, CodeUnsupported, 0},
		{"plain error", stderrors.New("weird"), CodeUnknown, 0},
		{"existing taxonomy error", existing, CodeNotEmpty, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Translate("op", "/p", tt.err)
			require.NotNil(t, got)
			require.Equal(t, tt.wantCode, got.Code())
			require.Equal(t, tt.wantErrno, got.Errno())
			require.True(t, stderrors.Is(got, tt.err))
		})
	}
}

func TestTranslate_Nil(t *testing.T) {
	require.Nil(t, Translate("stat", "/", nil))
}

func TestTranslate_KeepsOpAndPath(t *testing.T) {
	got := Translate("chmod", "/etc/passwd", syscall.EPERM)
	require.Equal(t, "chmod", got.Op())
	require.Equal(t, "/etc/passwd", got.Path())
	require.True(t, stderrors.Is(got, fs.ErrPermission))
}
