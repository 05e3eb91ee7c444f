package telegram

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSplitMessageShort(t *testing.T) {
	assert.Equal(t, []string{"hello"}, SplitMessage("hello", 10))
}

func TestSplitMessagePrefersNewline(t *testing.T) {
	text := "aaaaaaa\nbbbbbbb"
	assert.Equal(t, []string{"aaaaaaa\n", "bbbbbbb"}, SplitMessage(text, 10))
}

func TestSplitMessageHardCut(t *testing.T) {
	text := strings.Repeat("x", 25)
	parts := SplitMessage(text, 10)
	assert.Equal(t, []string{strings.Repeat("x", 10), strings.Repeat("x", 10), strings.Repeat("x", 5)}, parts)
}

func TestSplitMessageCountsRunes(t *testing.T) {
	text := strings.Repeat("я", 12)
	parts := SplitMessage(text, 10)
	assert.Len(t, parts, 2)
	assert.Equal(t, 10, utf8.RuneCountInString(parts[0]))
	assert.Equal(t, text, strings.Join(parts, ""))
}

func TestPackBlocks(t *testing.T) {
	tests := []struct {
		name   string
		blocks []string
		max    int
		want   []string
	}{
		{"empty", nil, 10, nil},
		{"fits together", []string{"a", "b"}, 10, []string{"a\n\nb"}},
		{"exact fit", []string{"aaaa", "bbbb"}, 10, []string{"aaaa\n\nbbbb"}},
		{"overflow", []string{"aaaa", "bbbb"}, 9, []string{"aaaa", "bbbb"}},
		{"long block split", []string{"a", strings.Repeat("z", 12)}, 10, []string{"a", strings.Repeat("z", 10), "zz"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PackBlocks(tt.blocks, tt.max))
		})
	}
}

func TestPackBlocksRespectsLimit(t *testing.T) {
	blocks := make([]string, 50)
	for i := range blocks {
		blocks[i] = strings.Repeat("w", 37+i)
	}
	for _, msg := range PackBlocks(blocks, MaxMessageLen) {
		assert.LessOrEqual(t, utf8.RuneCountInString(msg), MaxMessageLen)
	}
}
