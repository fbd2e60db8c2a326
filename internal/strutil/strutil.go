package strutil

// LStripWS strips leading spaces and horizontal tabs.
func LStripWS(str string) string {
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case ' ', '\t':
		default:
			return str[i:]
		}
	}

	return ""
}

// RStripWS strips trailing spaces and horizontal tabs.
func RStripWS(str string) string {
	for i := len(str); i > 0; i-- {
		switch str[i-1] {
		case ' ', '\t':
		default:
			return str[:i]
		}
	}

	return ""
}

// StripWS strips optional whitespace from both sides.
func StripWS(str string) string {
	return LStripWS(RStripWS(str))
}

// Unquote removes the surrounding double quotes, if both are present.
func Unquote(str string) string {
	if len(str) > 1 && str[0] == '"' && str[len(str)-1] == '"' {
		return str[1 : len(str)-1]
	}

	return str
}
