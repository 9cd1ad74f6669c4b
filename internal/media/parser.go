package media

import (
	"strconv"
	"strings"
)

const (
	prefixLen  = 2
	digitWidth = 6
)

var allowedExtensions = map[string]struct{}{
	".mp4": {},
	".mov": {},
	".avi": {},
}

// AllowedExtension reports whether ext (including the leading dot) is one of
// the container formats the camera writes. The comparison is case-insensitive.
func AllowedExtension(ext string) bool {
	_, ok := allowedExtensions[strings.ToLower(ext)]
	return ok
}

// ParseName validates name against the camera naming convention and returns
// the sequence key encoded in its digit field. The entire field is treated as
// one integer; chapter digits occupy the high positions, so integer order
// tracks chapter-then-recording order.
func ParseName(name string) (int, bool) {
	dot := strings.LastIndexByte(name, '.')
	if dot < 0 {
		return 0, false
	}
	base, ext := name[:dot], name[dot:]
	if !AllowedExtension(ext) {
		return 0, false
	}
	if len(base) != prefixLen+digitWidth {
		return 0, false
	}
	for _, r := range base[:prefixLen] {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return 0, false
		}
	}
	digits := base[prefixLen:]
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	key, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return key, true
}
