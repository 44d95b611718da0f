// Package ascii scans byte slices and strings for runs of 7-bit ASCII.
package ascii

// IndexMask returns the index of the first byte in s that has any of the
// bits of mask set, or -1 if there is none.
func IndexMask[T string | []byte](s T, mask byte) int {
	return indexMaskGo(s, mask)
}

// IndexNonASCII returns the index of the first byte >= 0x80 in s, or -1.
func IndexNonASCII[T string | []byte](s T) int {
	return indexMaskGo(s, 0x80)
}

// RunLength returns the number of leading ASCII bytes in s.
func RunLength[T string | []byte](s T) int {
	return runLengthGo(s)
}
