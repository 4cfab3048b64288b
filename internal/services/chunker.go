package services

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const defaultChunkRunes = 1000

// TextChunker splits long text into pieces no longer than maxRunes, breaking
// on paragraphs first, then sentences, then words. Sentence punctuation is
// kept so synthesized speech keeps its pauses.
type TextChunker interface {
	ChunkText(text string, maxRunes int) []string
}

type textChunker struct{}

func NewTextChunker() TextChunker {
	return &textChunker{}
}

// ChunkText implements TextChunker.
func (tc *textChunker) ChunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = defaultChunkRunes
	}

	var chunks []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
		}
	}

	add := func(piece, sep string) {
		if current.Len() > 0 && utf8.RuneCountInString(current.String())+utf8.RuneCountInString(sep+piece) > maxRunes {
			flush()
		}
		if current.Len() > 0 {
			current.WriteString(sep)
		}
		current.WriteString(piece)
	}

	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		if utf8.RuneCountInString(para) <= maxRunes {
			add(para, "\n\n")
			continue
		}

		for _, sentence := range splitSentences(para) {
			if utf8.RuneCountInString(sentence) <= maxRunes {
				add(sentence, " ")
				continue
			}
			for _, word := range splitWords(sentence, maxRunes) {
				add(word, " ")
			}
		}
	}

	flush()
	return chunks
}

// splitSentences breaks after '.', '!' or '?' followed by whitespace.
func splitSentences(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0

	for i, r := range runes {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
			sentences = append(sentences, s)
		}
		start = i + 1
	}

	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// splitWords hard-wraps a single over-long sentence; words longer than
// maxRunes are cut.
func splitWords(sentence string, maxRunes int) []string {
	var pieces []string
	for _, word := range strings.Fields(sentence) {
		runes := []rune(word)
		for len(runes) > maxRunes {
			pieces = append(pieces, string(runes[:maxRunes]))
			runes = runes[maxRunes:]
		}
		if len(runes) > 0 {
			pieces = append(pieces, string(runes))
		}
	}
	return pieces
}
