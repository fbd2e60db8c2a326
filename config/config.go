package config

type (
	Headers struct {
		// MaxEncodingTokens is a limit of how many encodings can be applied
		// to the body of a single message. Longer Content-Encoding or
		// Transfer-Encoding lists are rejected outright.
		MaxEncodingTokens int
		// Prealloc is the initial capacity of the header storage.
		Prealloc int
	}

	Body struct {
		// MaxSize is the hard ceiling for a message body, covering both a
		// declared Content-Length and the running sum of chunk sizes.
		// 0 disables the limit.
		MaxSize uint64
	}
)

// Config holds settings used across the engine, mainly restrictions,
// limitations and pre-allocations.
type Config struct {
	Headers Headers
	Body    Body
}

// Default returns the default config. The maximal defaults are pretty
// permitting.
func Default() *Config {
	return &Config{
		Headers: Headers{
			MaxEncodingTokens: 3,
			Prealloc:          8,
		},
		Body: Body{
			MaxSize: 0,
		},
	}
}
