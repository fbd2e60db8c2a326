package coding

// Content is a closed enumeration of supported content encodings. Keeping
// it a tagged constant instead of an open string lets downstream dispatch
// be checked exhaustively.
type Content uint8

const (
	Gzip Content = iota + 1
	Compress
	Deflate
)

// ContentFromToken maps a Content-Encoding list token onto the enumeration.
// Matching is case-sensitive. Some old clients use x-gzip instead of the
// regular gzip token, so it is accepted as an alias.
func ContentFromToken(token string) (Content, bool) {
	switch token {
	case "gzip", "x-gzip":
		return Gzip, true
	case "compress":
		return Compress, true
	case "deflate":
		return Deflate, true
	default:
		return 0, false
	}
}

func (c Content) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Compress:
		return "compress"
	case Deflate:
		return "deflate"
	default:
		return "unknown"
	}
}

// Transfer is a closed enumeration of supported transfer encodings.
type Transfer uint8

const (
	TransferGzip Transfer = iota + 1
	TransferCompress
	TransferDeflate
	TransferChunked
)

// TransferFromToken maps a Transfer-Encoding list token onto the
// enumeration. Matching is case-sensitive, with the same x-gzip alias as
// for content encodings.
func TransferFromToken(token string) (Transfer, bool) {
	switch token {
	case "gzip", "x-gzip":
		return TransferGzip, true
	case "compress":
		return TransferCompress, true
	case "deflate":
		return TransferDeflate, true
	case "chunked":
		return TransferChunked, true
	default:
		return 0, false
	}
}

func (t Transfer) String() string {
	switch t {
	case TransferGzip:
		return "gzip"
	case TransferCompress:
		return "compress"
	case TransferDeflate:
		return "deflate"
	case TransferChunked:
		return "chunked"
	default:
		return "unknown"
	}
}
