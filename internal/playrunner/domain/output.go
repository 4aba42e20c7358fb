package domain

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	truncatedPrefix = "[output truncated: "
	truncatedSuffix = " earlier bytes not stored]\n"
)

// TruncateOutput keeps at most max trailing bytes of a transcript and
// prefixes a marker recording how many leading bytes were dropped. Input
// that already carries a marker is truncated further with the counts added
// up. The cut never splits a UTF-8 sequence.
func TruncateOutput(s string, max int) string {
	dropped, body := SplitTruncated(s)
	if max <= 0 || len(body) <= max {
		return s
	}
	cut := len(body) - max
	for cut < len(body) && !utf8.RuneStart(body[cut]) {
		cut++
	}
	return truncatedPrefix + strconv.Itoa(dropped+cut) + truncatedSuffix + body[cut:]
}

// SplitTruncated undoes the marker written by TruncateOutput. It returns the
// number of leading bytes that were dropped and the kept tail; dropped plus
// len(body) is the length of the full transcript.
func SplitTruncated(s string) (dropped int, body string) {
	rest, ok := strings.CutPrefix(s, truncatedPrefix)
	if !ok {
		return 0, s
	}
	count, body, ok := strings.Cut(rest, truncatedSuffix)
	if !ok {
		return 0, s
	}
	n, err := strconv.Atoi(count)
	if err != nil || n < 0 {
		return 0, s
	}
	return n, body
}
