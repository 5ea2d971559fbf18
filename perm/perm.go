// Package perm models Unix permission bits as an owner/group/other triplet
// of read/write/execute sets.
//
// A Triplet round-trips exactly through the classic 9-bit encoding
// (owner*64 + group*8 + other):
//
//	t := perm.Triplet{Owner: perm.RWX, Group: perm.RX, Other: perm.RX}
//	t.Raw()    // 0o755
//	t.String() // "rwxr-xr-x"
package perm

import (
	"io/fs"
	"strconv"
	"strings"

	"github.com/jmgilman/syskit/errors"
)

// Permission is a set of read, write and execute bits for one class of user.
type Permission uint8

const (
	// Execute allows running a file or traversing a directory.
	Execute Permission = 1
	// Write allows modifying a file or the entries of a directory.
	Write Permission = 2
	// Read allows reading a file or listing a directory.
	Read Permission = 4

	// None grants nothing.
	None Permission = 0
	RX   Permission = Read | Execute
	RW   Permission = Read | Write
	RWX  Permission = Read | Write | Execute
)

// Has reports whether every bit in other is set in p.
func (p Permission) Has(other Permission) bool {
	return p&other == other
}

// String returns the symbolic form, e.g. "r-x".
func (p Permission) String() string {
	b := []byte("---")
	if p.Has(Read) {
		b[0] = 'r'
	}
	if p.Has(Write) {
		b[1] = 'w'
	}
	if p.Has(Execute) {
		b[2] = 'x'
	}
	return string(b)
}

// Triplet holds the permissions of the owner, the group and everyone else.
type Triplet struct {
	Owner Permission
	Group Permission
	Other Permission
}

// DefaultDirectory is the permission used when creating directories without
// an explicit triplet (rwxr-xr-x).
var DefaultDirectory = Triplet{Owner: RWX, Group: RX, Other: RX}

// FromRaw decodes the 9-bit numeric encoding. Bits above 0o777 are ignored.
func FromRaw(raw uint16) Triplet {
	return Triplet{
		Owner: Permission((raw >> 6) & 7),
		Group: Permission((raw >> 3) & 7),
		Other: Permission(raw & 7),
	}
}

// FromMode decodes the permission bits of a file mode.
func FromMode(mode fs.FileMode) Triplet {
	return FromRaw(uint16(mode.Perm()))
}

// Raw returns the 9-bit numeric encoding.
func (t Triplet) Raw() uint16 {
	return uint16(t.Owner&7)<<6 | uint16(t.Group&7)<<3 | uint16(t.Other&7)
}

// Mode returns the triplet as file mode permission bits.
func (t Triplet) Mode() fs.FileMode {
	return fs.FileMode(t.Raw())
}

// String returns the symbolic form, e.g. "rwxr-xr-x".
func (t Triplet) String() string {
	return t.Owner.String() + t.Group.String() + t.Other.String()
}

// Octal returns the three-digit octal form, e.g. "755".
func (t Triplet) Octal() string {
	s := strconv.FormatUint(uint64(t.Raw()), 8)
	return strings.Repeat("0", 3-len(s)) + s
}

// Parse reads a triplet from its octal ("755", "0755") or symbolic
// ("rwxr-xr-x") form.
func Parse(s string) (Triplet, error) {
	switch len(s) {
	case 3, 4:
		raw, err := strconv.ParseUint(s, 8, 16)
		if err != nil || raw > 0o777 {
			return Triplet{}, errors.Newf(errors.CodeInvalidArgument, "invalid octal permission %q", s)
		}
		return FromRaw(uint16(raw)), nil
	case 9:
		var t Triplet
		classes := []*Permission{&t.Owner, &t.Group, &t.Other}
		for i, class := range classes {
			p, err := parseSymbolic(s[i*3 : i*3+3])
			if err != nil {
				return Triplet{}, errors.Newf(errors.CodeInvalidArgument, "invalid symbolic permission %q", s)
			}
			*class = p
		}
		return t, nil
	}
	return Triplet{}, errors.Newf(errors.CodeInvalidArgument, "permission %q must be 3-4 octal digits or 9 symbolic characters", s)
}

func parseSymbolic(s string) (Permission, error) {
	var p Permission
	for i, want := range []byte("rwx") {
		switch s[i] {
		case want:
			p |= Permission(4 >> i)
		case '-':
		default:
			return 0, errors.New(errors.CodeInvalidArgument, "unexpected character")
		}
	}
	return p, nil
}

// MarshalText implements encoding.TextMarshaler using the symbolic form.
func (t Triplet) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting any form Parse accepts.
func (t *Triplet) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
