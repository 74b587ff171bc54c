package buffer

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// LineEnding specifies the line terminator written after every line.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "\\r\\n"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	default:
		return "\n"
	}
}

// ParseLineEnding maps a config name ("lf", "crlf") to a LineEnding.
// ok is false for "auto" and unknown names.
func ParseLineEnding(name string) (le LineEnding, ok bool) {
	switch name {
	case "lf", "LF":
		return LineEndingLF, true
	case "crlf", "CRLF":
		return LineEndingCRLF, true
	}
	return LineEndingLF, false
}

// WithLineEnding sets the buffer's line ending style.
func WithLineEnding(le LineEnding) Option {
	return func(b *Buffer) {
		b.lineEnding = le
	}
}

// DetectLineEnding reports CRLF when every '\n' in text is preceded by
// '\r', and LF otherwise (including text with no line breaks).
func DetectLineEnding(text string) LineEnding {
	var lf, crlf int
	for i := 0; i < len(text); i++ {
		if text[i] != '\n' {
			continue
		}
		if i > 0 && text[i-1] == '\r' {
			crlf++
		} else {
			lf++
		}
	}

	if crlf > 0 && lf == 0 {
		return LineEndingCRLF
	}
	return LineEndingLF
}
