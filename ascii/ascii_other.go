//go:build !amd64

package ascii

func Valid(p []byte) bool {
	return isAsciiGo(p)
}

func ValidString(s string) bool {
	return isAsciiGo(s)
}
