package domain

import (
	"strings"
)

// Poem is an ordered sequence of classified lines with a title and author.
// Only the poem assembler constructs poems.
type Poem struct {
	Lines  []ClassifiedLine
	Title  string
	Author string
}

// NewPoem creates a Poem. The line slice is copied.
func NewPoem(lines []ClassifiedLine, title, author string) Poem {
	return Poem{
		Lines:  append([]ClassifiedLine(nil), lines...),
		Title:  title,
		Author: author,
	}
}

// Text renders the poem: title, underline, lines, underline, "-- author".
func (p Poem) Text() string {
	underline := strings.Repeat("_", len(p.Title))

	var b strings.Builder
	b.WriteString(p.Title)
	b.WriteString("\n")
	b.WriteString(underline)
	b.WriteString("\n\n")
	for _, l := range p.Lines {
		b.WriteString(l.Content)
		b.WriteString("\n")
	}
	b.WriteString(underline)
	b.WriteString("\n\n")
	b.WriteString("-- ")
	b.WriteString(p.Author)
	return b.String()
}

func (p Poem) String() string { return p.Text() }

// EndWords returns the last token of every line.
func (p Poem) EndWords() []string {
	words := make([]string, len(p.Lines))
	for i, l := range p.Lines {
		words[i] = l.LastToken()
	}
	return words
}

// HasDistinctEndWords reports whether no two lines end in the same word.
func (p Poem) HasDistinctEndWords() bool {
	seen := make(map[string]bool, len(p.Lines))
	for _, w := range p.EndWords() {
		if seen[w] {
			return false
		}
		seen[w] = true
	}
	return true
}
