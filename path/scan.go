package path

// Separator is the pathname component separator.
const Separator = '/'

// escape marks the following separator as literal component content.
const escape = '\\'

// scanState is the state of the component scanner.
type scanState int

const (
	// stateNormal: the previous byte was not an escape.
	stateNormal scanState = iota
	// stateSawBackslash: the previous byte was an escape, so a separator
	// at the current position is literal.
	stateSawBackslash
)

// next returns the state after consuming b, and whether b is a component
// boundary.
//
// Only the two-byte sequence `\/` is special. A backslash followed by
// another backslash leaves the scanner primed, so in `a\\/b` the second
// backslash escapes the separator.
func (s scanState) next(b byte) (scanState, bool) {
	switch b {
	case escape:
		return stateSawBackslash, false
	case Separator:
		if s == stateSawBackslash {
			return stateNormal, false
		}
		return stateNormal, true
	default:
		return stateNormal, false
	}
}

// scan splits name into its components. Empty components produced by
// leading, trailing or repeated separators are dropped.
func scan(name string) []string {
	var components []string
	state := stateNormal
	start := 0
	for i := 0; i < len(name); i++ {
		var boundary bool
		state, boundary = state.next(name[i])
		if !boundary {
			continue
		}
		if i > start {
			components = append(components, name[start:i])
		}
		start = i + 1
	}
	if start < len(name) {
		components = append(components, name[start:])
	}
	return components
}

// isEscapedAt reports whether the separator at index i is escaped.
// An escape state is entered by any backslash, so this only needs to look
// at the preceding byte.
func isEscapedAt(name string, i int) bool {
	return i > 0 && name[i-1] == escape
}

// trimTrailing removes unescaped trailing separators, keeping a lone root.
func trimTrailing(name string) string {
	for len(name) > 1 && name[len(name)-1] == Separator && !isEscapedAt(name, len(name)-1) {
		name = name[:len(name)-1]
	}
	return name
}
