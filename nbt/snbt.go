package nbt

import (
	"strconv"
	"strings"
)

// The String methods below render tags in stringified notation: suffixed
// number literals, prefixed array literals, bracketed lists, and braced
// key:value compounds. The output is for display and diffing; this module
// does not parse it back.

func (End) String() string { return "END" }

func (v Byte) String() string { return strconv.FormatInt(int64(v), 10) + "b" }

func (v Short) String() string { return strconv.FormatInt(int64(v), 10) + "s" }

func (v Int) String() string { return strconv.FormatInt(int64(v), 10) }

func (v Long) String() string { return strconv.FormatInt(int64(v), 10) + "L" }

func (v Float) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 32) + "f" }

func (v Double) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) + "d" }

func (v String) String() string { return quoteString(string(v)) }

func (v ByteArray) String() string {
	var sb strings.Builder
	writeByteArray(&sb, v, false)

	return sb.String()
}

func (v IntArray) String() string {
	var sb strings.Builder
	writeIntArray(&sb, v, false)

	return sb.String()
}

func (v LongArray) String() string {
	var sb strings.Builder
	writeLongArray(&sb, v, false)

	return sb.String()
}

func (l *List) String() string {
	var sb strings.Builder
	writeList(&sb, l, "", false)

	return sb.String()
}

func (c *Compound) String() string {
	var sb strings.Builder
	writeCompound(&sb, c, "", false)

	return sb.String()
}

// Pretty renders tag as indented stringified notation, expanding lists and
// compounds one entry per line. Scalars and arrays stay inline.
func Pretty(tag Tag) string {
	var sb strings.Builder
	writeTag(&sb, tag, "", true)

	return sb.String()
}

const prettyIndent = "  "

func writeTag(sb *strings.Builder, tag Tag, indent string, pretty bool) {
	switch v := tag.(type) {
	case *List:
		writeList(sb, v, indent, pretty)
	case *Compound:
		writeCompound(sb, v, indent, pretty)
	case ByteArray:
		writeByteArray(sb, v, pretty)
	case IntArray:
		writeIntArray(sb, v, pretty)
	case LongArray:
		writeLongArray(sb, v, pretty)
	default:
		sb.WriteString(tag.String())
	}
}

func writeList(sb *strings.Builder, l *List, indent string, pretty bool) {
	if l.Len() == 0 {
		sb.WriteString("[]")
		return
	}

	if !pretty {
		sb.WriteByte('[')
		for i, item := range l.All() {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeTag(sb, item, "", false)
		}
		sb.WriteByte(']')

		return
	}

	inner := indent + prettyIndent
	sb.WriteString("[\n")
	for i, item := range l.All() {
		if i > 0 {
			sb.WriteString(",\n")
		}
		sb.WriteString(inner)
		writeTag(sb, item, inner, true)
	}
	sb.WriteByte('\n')
	sb.WriteString(indent)
	sb.WriteByte(']')
}

func writeCompound(sb *strings.Builder, c *Compound, indent string, pretty bool) {
	if c.Len() == 0 {
		sb.WriteString("{}")
		return
	}

	if !pretty {
		sb.WriteByte('{')
		first := true
		for name, tag := range c.All() {
			if !first {
				sb.WriteByte(',')
			}
			first = false
			writeKey(sb, name)
			sb.WriteByte(':')
			writeTag(sb, tag, "", false)
		}
		sb.WriteByte('}')

		return
	}

	inner := indent + prettyIndent
	sb.WriteString("{\n")
	first := true
	for name, tag := range c.All() {
		if !first {
			sb.WriteString(",\n")
		}
		first = false
		sb.WriteString(inner)
		writeKey(sb, name)
		sb.WriteString(": ")
		writeTag(sb, tag, inner, true)
	}
	sb.WriteByte('\n')
	sb.WriteString(indent)
	sb.WriteByte('}')
}

func writeByteArray(sb *strings.Builder, v ByteArray, pretty bool) {
	sb.WriteString("[B;")
	for i, b := range v {
		writeArraySep(sb, i, pretty)
		// The wire format stores signed bytes.
		sb.WriteString(strconv.FormatInt(int64(int8(b)), 10))
		sb.WriteByte('B')
	}
	sb.WriteByte(']')
}

func writeIntArray(sb *strings.Builder, v IntArray, pretty bool) {
	sb.WriteString("[I;")
	for i, n := range v {
		writeArraySep(sb, i, pretty)
		sb.WriteString(strconv.FormatInt(int64(n), 10))
	}
	sb.WriteByte(']')
}

func writeLongArray(sb *strings.Builder, v LongArray, pretty bool) {
	sb.WriteString("[L;")
	for i, n := range v {
		writeArraySep(sb, i, pretty)
		sb.WriteString(strconv.FormatInt(n, 10))
		sb.WriteByte('L')
	}
	sb.WriteByte(']')
}

func writeArraySep(sb *strings.Builder, i int, pretty bool) {
	switch {
	case i > 0 && pretty:
		sb.WriteString(", ")
	case i > 0:
		sb.WriteByte(',')
	case pretty:
		sb.WriteByte(' ')
	}
}

// writeKey writes a compound key, bare when it only uses the characters that
// need no quoting.
func writeKey(sb *strings.Builder, name string) {
	if isBareName(name) {
		sb.WriteString(name)
		return
	}

	sb.WriteString(quoteString(name))
}

func isBareName(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c == '.' || c == '_' || c == '+' || c == '-':
		default:
			return false
		}
	}

	return true
}

// quoteString quotes s with whichever quote character needs fewer escapes,
// double quotes on a tie. Only the quote character and backslash are
// escaped; everything else passes through byte for byte.
func quoteString(s string) string {
	quote := byte('"')
	if strings.Count(s, `"`) > strings.Count(s, "'") {
		quote = '\''
	}

	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte(quote)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == quote || c == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(c)
	}
	sb.WriteByte(quote)

	return sb.String()
}
