package domain

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateOutput(t *testing.T) {
	assert.Equal(t, "short", TruncateOutput("short", 10))
	assert.Equal(t, "anything", TruncateOutput("anything", 0))

	got := TruncateOutput("0123456789", 4)
	assert.Equal(t, "[output truncated: 6 earlier bytes not stored]\n6789", got)

	dropped, body := SplitTruncated(got)
	assert.Equal(t, 6, dropped)
	assert.Equal(t, "6789", body)

	again := TruncateOutput(got, 2)
	dropped, body = SplitTruncated(again)
	assert.Equal(t, 8, dropped, "drops accumulate")
	assert.Equal(t, "89", body)
	assert.Equal(t, again, TruncateOutput(again, 2))
}

func TestTruncateOutput_KeepsRunesWhole(t *testing.T) {
	s := strings.Repeat("é", 10)
	got := TruncateOutput(s, 5)

	dropped, body := SplitTruncated(got)
	assert.True(t, utf8.ValidString(body))
	assert.Equal(t, "éé", body)
	assert.Equal(t, len(s), dropped+len(body))
}

func TestSplitTruncated_PlainText(t *testing.T) {
	for _, s := range []string{"", "PLAY [all]", "[output truncated: x earlier bytes not stored]\nrest", "[output truncated: 3"} {
		dropped, body := SplitTruncated(s)
		assert.Zero(t, dropped, s)
		assert.Equal(t, s, body)
	}
}
