package core

import "io/fs"

// FileType is the kind of object a pathname refers to.
type FileType int

const (
	FileTypeUnknown FileType = iota
	FileTypeRegular
	FileTypeDirectory
	FileTypeSymlink
	FileTypeFIFO
	FileTypeSocket
	// FileTypeDevice is a block device.
	FileTypeDevice
	FileTypeCharDevice
)

// String returns a string representation of the FileType.
func (t FileType) String() string {
	switch t {
	case FileTypeRegular:
		return "regular"
	case FileTypeDirectory:
		return "directory"
	case FileTypeSymlink:
		return "symlink"
	case FileTypeFIFO:
		return "fifo"
	case FileTypeSocket:
		return "socket"
	case FileTypeDevice:
		return "device"
	case FileTypeCharDevice:
		return "chardevice"
	default:
		return "unknown"
	}
}

// FileTypeFromMode extracts the FileType from the type bits of mode.
func FileTypeFromMode(mode fs.FileMode) FileType {
	switch {
	case mode.IsRegular():
		return FileTypeRegular
	case mode&fs.ModeDir != 0:
		return FileTypeDirectory
	case mode&fs.ModeSymlink != 0:
		return FileTypeSymlink
	case mode&fs.ModeNamedPipe != 0:
		return FileTypeFIFO
	case mode&fs.ModeSocket != 0:
		return FileTypeSocket
	case mode&fs.ModeCharDevice != 0:
		return FileTypeCharDevice
	case mode&fs.ModeDevice != 0:
		return FileTypeDevice
	default:
		return FileTypeUnknown
	}
}

// Metadata is the result of a metadata query.
type Metadata struct {
	// Type is the kind of object.
	Type FileType
	// Perm holds the nine permission bits (fs.ModePerm range).
	Perm fs.FileMode
	// Size is the size in bytes as reported by the filesystem.
	Size int64
}

// MetadataFromInfo builds Metadata from an fs.FileInfo.
func MetadataFromInfo(info fs.FileInfo) Metadata {
	return Metadata{
		Type: FileTypeFromMode(info.Mode()),
		Perm: info.Mode().Perm(),
		Size: info.Size(),
	}
}

// IsDir reports whether the metadata describes a directory.
func (m Metadata) IsDir() bool {
	return m.Type == FileTypeDirectory
}
