package headers

import (
	"strings"
)

// Param is a single entry of a parameter list: a primary token, optionally
// qualified by semicolon-delimited attributes, e.g. "deflate;q=0.5".
type Param struct {
	Token  string
	Params map[string]string
}

// ParamList is an ordered sequence of Param entries, in the order they
// appear in the source header value. Token case is preserved as written.
type ParamList []Param

// ParseParamList parses a header value as a comma-separated list of tokens
// with parameters, as used by Content-Encoding, Transfer-Encoding and
// friends. The whole input must reduce to the grammar: any leftover returns
// (nil, false), there is no partial acceptance.
func ParseParamList(value string) (ParamList, bool) {
	if len(value) == 0 {
		return nil, false
	}

	var list ParamList

	for pos := 0; ; {
		pos = skipWS(value, pos)
		token, next := scanToken(value, pos)
		if next == pos {
			return nil, false
		}

		pos = skipWS(value, next)
		entry := Param{Token: token}

		for pos < len(value) && value[pos] == ';' {
			pos = skipWS(value, pos+1)

			name, next := scanToken(value, pos)
			if next == pos {
				return nil, false
			}

			pos = skipWS(value, next)
			var attr string

			if pos < len(value) && value[pos] == '=' {
				var ok bool
				attr, pos, ok = scanParamValue(value, skipWS(value, pos+1))
				if !ok {
					return nil, false
				}

				pos = skipWS(value, pos)
			}

			if entry.Params == nil {
				entry.Params = make(map[string]string)
			}

			entry.Params[name] = attr
		}

		list = append(list, entry)

		if pos == len(value) {
			return list, true
		}

		if value[pos] != ',' {
			return nil, false
		}

		pos++
	}
}

func skipWS(str string, pos int) int {
	for pos < len(str) && (str[pos] == ' ' || str[pos] == '\t') {
		pos++
	}

	return pos
}

// scanToken consumes a run of token characters. No progress means no token.
func scanToken(str string, pos int) (token string, next int) {
	next = pos
	for next < len(str) && tokenChars[str[next]] {
		next++
	}

	return str[pos:next], next
}

// scanParamValue consumes either a token or a quoted-string.
func scanParamValue(str string, pos int) (value string, next int, ok bool) {
	if pos < len(str) && str[pos] == '"' {
		return scanQuoted(str, pos+1)
	}

	value, next = scanToken(str, pos)
	return value, next, next > pos
}

func scanQuoted(str string, pos int) (value string, next int, ok bool) {
	var b strings.Builder

	for i := pos; i < len(str); i++ {
		switch str[i] {
		case '"':
			return b.String(), i + 1, true
		case '\\':
			if i++; i == len(str) {
				return "", 0, false
			}

			b.WriteByte(str[i])
		default:
			b.WriteByte(str[i])
		}
	}

	// unterminated quoted-string
	return "", 0, false
}
