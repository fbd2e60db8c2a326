// Package wshttp is the message-body and header engine of an HTTP/1.1
// parser, meant to sit beneath a handshake layer such as a WebSocket
// upgrade negotiator. It stores and queries headers, recognizes the
// declared content and transfer encodings, decides how the body is framed
// and consumes body bytes incrementally under that framing. It performs no
// I/O of its own: bytes are handed in by the caller, already read from the
// transport.
package wshttp

import (
	"strconv"

	"github.com/evermet/wshttp/body"
	"github.com/evermet/wshttp/coding"
	"github.com/evermet/wshttp/config"
	"github.com/evermet/wshttp/headers"
	"github.com/evermet/wshttp/status"
	"github.com/indigo-web/utils/uf"
)

const contentLength = "Content-Length"

// Parser owns the state of a single message: its header fields, the
// negotiated encodings, the body byte budget and the decoded body itself.
// One instance serves one message at a time and must not be shared between
// goroutines.
type Parser struct {
	cfg      *config.Config
	headers  *headers.Headers
	content  []coding.Content
	transfer []coding.Transfer
	tracker  body.Tracker
	decoder  *body.Decoder
}

func New(cfg *config.Config) *Parser {
	p := &Parser{
		cfg:     cfg,
		headers: headers.NewPrealloc(cfg.Headers.Prealloc),
		tracker: body.Tracker{Max: cfg.Body.MaxSize},
	}
	p.decoder = body.NewDecoder(&p.tracker)

	return p
}

// ProcessHeader accepts a single unterminated header line and stores the
// field it carries. Repeated fields are comma-folded by the storage.
func (p *Parser) ProcessHeader(line string) error {
	key, value, err := headers.FromLine(line)
	if err != nil {
		return err
	}

	return p.headers.Append(key, value)
}

// Headers exposes the header storage.
func (p *Parser) Headers() *headers.Headers {
	return p.headers
}

// RawHeaders renders all stored fields as "Key: value\r\n" lines.
func (p *Parser) RawHeaders() string {
	return p.headers.Serialize()
}

// PrepareBody reads the encoding and length headers and configures the body
// framing. It reports whether any body bytes are expected at all; a message
// without one is not an error.
//
// An encoding header that is missing, empty, or not parseable as a list
// counts as "no encodings declared" and is skipped rather than rejected.
func (p *Parser) PrepareBody() (expectBody bool, err error) {
	if list, ok := p.headers.AsParams("Content-Encoding"); ok {
		if len(list) > p.cfg.Headers.MaxEncodingTokens {
			return false, status.ErrUnsupportedContentEncoding
		}

		for _, entry := range list {
			enc, known := coding.ContentFromToken(entry.Token)
			if !known {
				return false, status.ErrUnknownContentEncoding
			}

			p.content = append(p.content, enc)
		}
	}

	if list, ok := p.headers.AsParams("Transfer-Encoding"); ok {
		if len(list) > p.cfg.Headers.MaxEncodingTokens {
			return false, status.ErrUnsupportedTransferEncoding
		}

		for _, entry := range list {
			enc, known := coding.TransferFromToken(entry.Token)
			if !known {
				return false, status.ErrUnknownTransferEncoding
			}

			p.transfer = append(p.transfer, enc)
		}
	}

	if p.Chunked() {
		// chunked framing is authoritative, Content-Length isn't consulted
		p.decoder.Init(true)
		return true, nil
	}

	value := p.headers.Value(contentLength)
	if len(value) == 0 {
		return false, nil
	}

	length, err := parseUint(value)
	if err != nil {
		return false, err
	}

	if err = p.tracker.Grow(length); err != nil {
		return false, err
	}

	p.tracker.Needed = length
	p.decoder.Init(false)

	return length > 0, nil
}

// ProcessBody consumes raw body bytes under the framing chosen by
// PrepareBody and returns the number of input bytes taken. The decoded
// payload accumulates in the parser until ConsumeBody.
func (p *Parser) ProcessBody(data []byte) (consumed int, err error) {
	return p.decoder.Process(data)
}

// BodyComplete reports whether the whole body was decoded.
func (p *Parser) BodyComplete() bool {
	return p.decoder.Done()
}

// ContentEncodings returns the validated Content-Encoding chain, in the
// order the sender applied it. Decompression itself is up to the caller.
func (p *Parser) ContentEncodings() []coding.Content {
	return p.content
}

// TransferEncodings returns the validated Transfer-Encoding chain.
func (p *Parser) TransferEncodings() []coding.Transfer {
	return p.transfer
}

// Chunked reports whether chunked appears among the transfer encodings.
func (p *Parser) Chunked() bool {
	for _, enc := range p.transfer {
		if enc == coding.TransferChunked {
			return true
		}
	}

	return false
}

// SetBody replaces the message body, keeping the Content-Length header in
// sync with it. An empty value resets the message to a bodiless one by
// removing Content-Length altogether.
func (p *Parser) SetBody(value string) error {
	if len(value) == 0 {
		if err := p.headers.Remove(contentLength); err != nil {
			return err
		}

		p.decoder.Discard()
		return nil
	}

	if max := p.cfg.Body.MaxSize; max != 0 && uint64(len(value)) > max {
		return status.ErrBodyTooLarge
	}

	if err := p.headers.Replace(contentLength, strconv.Itoa(len(value))); err != nil {
		return err
	}

	p.decoder.Set(uf.S2B(value))
	return nil
}

// Body returns the decoded payload accumulated so far.
func (p *Parser) Body() string {
	return uf.B2S(p.decoder.Body())
}

// ConsumeBody drops the accumulated body once it was handed off. Headers
// stay untouched, calling it again is a no-op.
func (p *Parser) ConsumeBody() {
	p.decoder.Discard()
}
