package status

// Kind classifies an Error. The set is closed: every failure the engine can
// report maps onto exactly one of these.
type Kind uint8

const (
	InvalidHeaderName Kind = iota + 1
	BodyTooLarge
	UnknownContentEncoding
	UnknownTransferEncoding
	UnsupportedContentEncoding
	UnsupportedTransferEncoding
	InvalidFormat
)

type Error struct {
	Message string
	Kind    Kind
}

func NewError(kind Kind, message string) error {
	return Error{
		Kind:    kind,
		Message: message,
	}
}

func (e Error) Error() string {
	return e.Message
}

var (
	ErrInvalidHeaderName           = NewError(InvalidHeaderName, "header name contains non-token characters")
	ErrBodyTooLarge                = NewError(BodyTooLarge, "message body is too large")
	ErrUnknownContentEncoding      = NewError(UnknownContentEncoding, "content encoding is not recognized")
	ErrUnknownTransferEncoding     = NewError(UnknownTransferEncoding, "transfer encoding is not recognized")
	ErrUnsupportedContentEncoding  = NewError(UnsupportedContentEncoding, "too many content encoding tokens")
	ErrUnsupportedTransferEncoding = NewError(UnsupportedTransferEncoding, "too many transfer encoding tokens")
	ErrInvalidFormat               = NewError(InvalidFormat, "malformed numeric field")
)
