package ascii

import (
	segascii "github.com/segmentio/asm/ascii"
	"golang.org/x/sys/cpu"
)

var hasAVX2 = cpu.X86.HasAVX2

func Valid(p []byte) bool {
	if hasAVX2 {
		return segascii.Valid(p)
	}

	return isAsciiGo(p)
}

func ValidString(s string) bool {
	if hasAVX2 {
		return segascii.ValidString(s)
	}

	return isAsciiGo(s)
}
