package wshttp

import (
	"github.com/evermet/wshttp/status"
)

// parseUint is a tiny implementation of strconv.Atoi, stricter about the
// input: any character outside 0-9, including a sign or trailing garbage,
// renders the whole value malformed.
func parseUint(raw string) (num uint64, err error) {
	if len(raw) == 0 {
		return 0, status.ErrInvalidFormat
	}

	for _, char := range []byte(raw) {
		char -= '0'

		if char > 9 {
			return 0, status.ErrInvalidFormat
		}

		num = num*10 + uint64(char)
	}

	return num, nil
}
