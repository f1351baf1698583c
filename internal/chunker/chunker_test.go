package chunker

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	c := New()
	assert.Equal(t, DefaultMaxLength, c.MaxLength())

	c = New(WithMaxLength(0))
	assert.Equal(t, DefaultMaxLength, c.MaxLength())

	c = New(WithMaxLength(50))
	assert.Equal(t, 50, c.MaxLength())
}

func TestSplit_ShortTextIsOneSegment(t *testing.T) {
	c := New(WithMaxLength(100))
	segs := c.Split("Short text.\n\nTwo paragraphs.")
	require.Len(t, segs, 1)
	assert.Equal(t, "Short text.\n\nTwo paragraphs.", segs[0].Content)
	assert.Empty(t, segs[0].Separator)
}

func TestSplit_Empty(t *testing.T) {
	assert.Nil(t, New().Split("  \n "))
}

func TestSplit_PacksParagraphs(t *testing.T) {
	p1 := strings.Repeat("a", 10)
	p2 := strings.Repeat("b", 10)
	p3 := strings.Repeat("c", 10)
	text := p1 + "\n\n" + p2 + "\n\n\n\n" + p3

	c := New(WithMaxLength(25))
	segs := c.Split(text)

	require.Len(t, segs, 2)
	assert.Equal(t, p1+"\n\n"+p2, segs[0].Content)
	assert.Equal(t, "\n\n", segs[0].Separator)
	assert.Equal(t, p3, segs[1].Content)
	assert.Equal(t, 1, segs[1].Position)
	assert.Equal(t, p1+"\n\n"+p2+"\n\n"+p3, Join(segs))
}

func TestSplit_LongParagraphBySentence(t *testing.T) {
	para := "One two three. Four five six. Seven eight nine."
	c := New(WithMaxLength(20))
	segs := c.Split(para)

	require.Len(t, segs, 3)
	assert.Equal(t, "One two three. ", segs[0].Content)
	assert.Equal(t, "Four five six. ", segs[1].Content)
	assert.Equal(t, "Seven eight nine.", segs[2].Content)
	assert.Equal(t, para, Join(segs))
}

func TestSplit_HardCutsLongSentence(t *testing.T) {
	sentence := strings.Repeat("字", 25)
	c := New(WithMaxLength(10))
	segs := c.Split(sentence)

	require.Len(t, segs, 3)
	for _, s := range segs {
		assert.LessOrEqual(t, utf8.RuneCountInString(s.Content), 10)
	}
	assert.Equal(t, sentence, Join(segs))
}

func TestSplit_SegmentsWithinLimit(t *testing.T) {
	text := strings.Repeat("A short sentence here. ", 20) + "\n\n" + strings.Repeat("另一个句子。", 30)
	c := New(WithMaxLength(60))

	for _, s := range c.Split(text) {
		assert.LessOrEqual(t, utf8.RuneCountInString(s.Content), 60)
	}
}

func TestSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"latin", "Hi. How are you? Fine!", []string{"Hi. ", "How are you? ", "Fine!"}},
		{"terminator runs", "Wait... what?! ok", []string{"Wait... ", "what?! ", "ok"}},
		{"cjk", "你好。今天好吗？", []string{"你好。", "今天好吗？"}},
		{"no terminator", "plain", []string{"plain"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sentences(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, strings.Join(got, ""))
		})
	}
}
