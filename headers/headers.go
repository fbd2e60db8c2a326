package headers

import (
	"iter"
	"strings"

	"github.com/evermet/wshttp/internal/strutil"
	"github.com/evermet/wshttp/status"
	"github.com/indigo-web/utils/strcomp"
)

type Pair struct {
	Key, Value string
}

// Headers is an associative structure for storing header fields. Keys are
// compared case-insensitively, yet the spelling of the first occurrence is
// preserved for serialization. It acts as a map but uses linear search
// instead, which proves to be more efficient on relatively low amount of
// entries, which often enough is the case.
type Headers struct {
	pairs []Pair
}

func New() *Headers {
	return new(Headers)
}

// NewPrealloc returns an instance of Headers with pre-allocated underlying storage.
func NewPrealloc(n int) *Headers {
	return &Headers{
		pairs: make([]Pair, 0, n),
	}
}

// Value returns the value corresponding to the key, otherwise an empty
// string. A missing header is never an error.
func (h *Headers) Value(key string) string {
	value, _ := h.Get(key)
	return value
}

// Get returns a value and a bool, indicating whether the value was found.
func (h *Headers) Get(key string) (value string, found bool) {
	for _, pair := range h.pairs {
		if strcomp.EqualFold(key, pair.Key) {
			return pair.Value, true
		}
	}

	return "", false
}

// Has indicates whether there's an entry of the key.
func (h *Headers) Has(key string) bool {
	_, found := h.Get(key)
	return found
}

// Append adds a new header field. If an entry under the key already exists,
// the value is folded into it after a comma, following the HTTP rule for
// multi-valued headers: "a" then "b" yields "a, b".
func (h *Headers) Append(key, value string) error {
	if !validKey(key) {
		return status.ErrInvalidHeaderName
	}

	for i, pair := range h.pairs {
		if strcomp.EqualFold(key, pair.Key) {
			h.pairs[i].Value = pair.Value + ", " + value
			return nil
		}
	}

	h.pairs = append(h.pairs, Pair{Key: key, Value: value})
	return nil
}

// Replace overwrites the value under the key unconditionally, inserting the
// entry if it wasn't present. The stored key spelling stays as it was first
// seen.
func (h *Headers) Replace(key, value string) error {
	if !validKey(key) {
		return status.ErrInvalidHeaderName
	}

	for i, pair := range h.pairs {
		if strcomp.EqualFold(key, pair.Key) {
			h.pairs[i].Value = value
			return nil
		}
	}

	h.pairs = append(h.pairs, Pair{Key: key, Value: value})
	return nil
}

// Remove deletes the entry under the key. Removing a key that isn't there
// is not an error.
func (h *Headers) Remove(key string) error {
	if !validKey(key) {
		return status.ErrInvalidHeaderName
	}

	for i, pair := range h.pairs {
		if strcomp.EqualFold(key, pair.Key) {
			h.pairs = append(h.pairs[:i], h.pairs[i+1:]...)
			return nil
		}
	}

	return nil
}

// AsParams parses the value under the key as a parameter list. Returns false
// if the header is missing, empty, or cannot be parsed as such a list.
func (h *Headers) AsParams(key string) (ParamList, bool) {
	value, found := h.Get(key)
	if !found || len(value) == 0 {
		return nil, false
	}

	return ParseParamList(value)
}

// Pairs returns an iterator over the stored fields.
func (h *Headers) Pairs() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, pair := range h.pairs {
			if !yield(pair.Key, pair.Value) {
				break
			}
		}
	}
}

// Len returns a number of stored fields.
func (h *Headers) Len() int {
	return len(h.pairs)
}

// Clear all the entries. However, all the allocated space won't be freed.
func (h *Headers) Clear() *Headers {
	h.pairs = h.pairs[:0]
	return h
}

// Serialize renders every field as "Key: value\r\n". The order of entries
// is unspecified.
func (h *Headers) Serialize() string {
	var b strings.Builder

	for _, pair := range h.pairs {
		b.WriteString(pair.Key)
		b.WriteString(": ")
		b.WriteString(pair.Value)
		b.WriteString("\r\n")
	}

	return b.String()
}

// FromLine splits a single header line into its key and value, stripping
// optional whitespace around both. A line without a colon is malformed.
func FromLine(line string) (key, value string, err error) {
	colon := strings.IndexByte(line, ':')
	if colon == -1 {
		return "", "", status.ErrInvalidFormat
	}

	return strutil.StripWS(line[:colon]), strutil.StripWS(line[colon+1:]), nil
}

// tokenChars holds the tchar set as of RFC 7230: alphanumeric characters
// plus a handful of punctuation, excluding separators, whitespace and
// controls.
var tokenChars [256]bool

func init() {
	for _, c := range "!#$%&'*+-.^_`|~" {
		tokenChars[c] = true
	}

	for c := '0'; c <= '9'; c++ {
		tokenChars[c] = true
	}

	for c := 'a'; c <= 'z'; c++ {
		tokenChars[c] = true
	}

	for c := 'A'; c <= 'Z'; c++ {
		tokenChars[c] = true
	}
}

func validKey(key string) bool {
	if len(key) == 0 {
		return false
	}

	for i := 0; i < len(key); i++ {
		if !tokenChars[key[i]] {
			return false
		}
	}

	return true
}
