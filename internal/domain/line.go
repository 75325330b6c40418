package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ClassifiedLine is a corpus line whose every word has a known pronunciation.
// It is created once at ingestion and never mutated.
type ClassifiedLine struct {
	ID             uuid.UUID
	Content        string
	Tokens         []string
	Pronunciations []Pronunciation // one per token
	SyllableCount  int
	RhymeKey       string
	CreatedAt      time.Time
}

// LastToken returns the final word of the line, or "" for an empty line.
func (l ClassifiedLine) LastToken() string {
	if len(l.Tokens) == 0 {
		return ""
	}
	return l.Tokens[len(l.Tokens)-1]
}

// RejectionReason classifies why a line could not be classified.
type RejectionReason string

const (
	ReasonNoWords     RejectionReason = "no_words"
	ReasonUnknownWord RejectionReason = "unknown_word"
)

// Rejection is a per-line parse failure. It never aborts batch ingestion.
type Rejection struct {
	Text   string
	Reason RejectionReason
	Word   string // set for ReasonUnknownWord
}

// NewNoWordsRejection creates a rejection for text with no tokens.
func NewNoWordsRejection(text string) Rejection {
	return Rejection{Text: text, Reason: ReasonNoWords}
}

// NewUnknownWordRejection creates a rejection naming the first word without a pronunciation.
func NewUnknownWordRejection(text, word string) Rejection {
	return Rejection{Text: text, Reason: ReasonUnknownWord, Word: word}
}

// Message is the human-readable reason.
func (r Rejection) Message() string {
	switch r.Reason {
	case ReasonNoWords:
		return "no words found"
	case ReasonUnknownWord:
		return fmt.Sprintf("no pronunciation for word '%s'", r.Word)
	default:
		return string(r.Reason)
	}
}

func (r Rejection) Error() string { return r.Message() }

func (r Rejection) Unwrap() error { return ErrRejected }
