package perm

import (
	"io/fs"
	"testing"

	"github.com/jmgilman/syskit/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriplet_RawRoundTrip(t *testing.T) {
	for raw := uint16(0); raw <= 0o777; raw++ {
		got := FromRaw(raw).Raw()
		if got != raw {
			t.Fatalf("FromRaw(%o).Raw() = %o, want %o", raw, got, raw)
		}
	}
}

func TestTriplet_Encoding(t *testing.T) {
	tr := Triplet{Owner: RW, Group: Read, Other: None}
	assert.Equal(t, uint16(6*64+4*8+0), tr.Raw())
	assert.Equal(t, fs.FileMode(0o640), tr.Mode())
	assert.Equal(t, "rw-r-----", tr.String())
	assert.Equal(t, "640", tr.Octal())
}

func TestFromMode_IgnoresTypeBits(t *testing.T) {
	tr := FromMode(fs.ModeDir | 0o755)
	assert.Equal(t, DefaultDirectory, tr)
	assert.Equal(t, Triplet{Other: Execute}, FromRaw(0o7001))
}

func TestPermission_Has(t *testing.T) {
	assert.True(t, RWX.Has(RX))
	assert.True(t, RX.Has(Execute))
	assert.False(t, RX.Has(Write))
	assert.True(t, None.Has(None))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Triplet
	}{
		{"octal", "755", DefaultDirectory},
		{"octal with leading zero", "0640", Triplet{Owner: RW, Group: Read}},
		{"symbolic", "rwxr-x---", Triplet{Owner: RWX, Group: RX}},
		{"symbolic none", "---------", Triplet{}},
		{"octal zero", "000", Triplet{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{"", "78", "789", "1777", "rwxrwxrw", "rwxrwxrwz", "xwrxwrxwr", "abc"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(err))
		})
	}
}

func TestTriplet_Text(t *testing.T) {
	var tr Triplet
	require.NoError(t, tr.UnmarshalText([]byte("750")))
	assert.Equal(t, Triplet{Owner: RWX, Group: RX}, tr)

	text, err := tr.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "rwxr-x---", string(text))

	require.Error(t, tr.UnmarshalText([]byte("nope")))
}
