// Package cmu parses CMU Pronouncing Dictionary files into ARPAbet pronunciations.
// Pure function: reader in, dictionary out. No database dependencies.
//
// Both distribution formats are accepted:
//
//	HELLO  HH AH0 L OW1        (cmudict-0.7b, ";;;" comments)
//	hello(2) hh eh0 l ow1 # x  (cmudict.dict, "#" comments)
package cmu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/heartmarshall/poemfactory/internal/domain"
)

// errSkipLine signals that a line should be skipped (comment, empty, etc.).
var errSkipLine = errors.New("skip line")

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines   int
	CommentLines int
	ParsedLines  int
	UniqueWords  int
}

// Dictionary is a parsed CMU dictionary. It is read-only after Parse returns
// and safe for concurrent lookups.
type Dictionary struct {
	entries map[string][]domain.Pronunciation
	stats   Stats
}

type variant struct {
	index int
	pron  domain.Pronunciation
}

// Parse reads a CMU dictionary. Variants of a word are ordered by their
// "(n)" suffix so that Lookup returns the primary pronunciation first.
func Parse(r io.Reader) (*Dictionary, error) {
	var stats Stats
	byWord := make(map[string][]variant)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		stats.TotalLines++
		line := scanner.Text()

		word, v, err := parseLine(line)
		if err == errSkipLine {
			if isComment(line) {
				stats.CommentLines++
			}
			continue
		}
		if err != nil {
			continue
		}

		stats.ParsedLines++
		byWord[word] = append(byWord[word], v)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}

	d := &Dictionary{
		entries: make(map[string][]domain.Pronunciation, len(byWord)),
	}
	for word, vs := range byWord {
		slices.SortStableFunc(vs, func(a, b variant) int { return a.index - b.index })
		prons := make([]domain.Pronunciation, len(vs))
		for i, v := range vs {
			prons[i] = v.pron
		}
		d.entries[word] = prons
	}
	stats.UniqueWords = len(d.entries)
	d.stats = stats

	return d, nil
}

// ParseFile opens a dictionary file and parses it.
func ParseFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Lookup returns all pronunciation variants for a lowercase word.
func (d *Dictionary) Lookup(word string) ([]domain.Pronunciation, bool) {
	prons, ok := d.entries[word]
	return prons, ok
}

// Stats returns parse statistics.
func (d *Dictionary) Stats() Stats {
	return d.stats
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

func isComment(line string) bool {
	return strings.HasPrefix(line, ";;;") || strings.HasPrefix(line, "#")
}

// parseLine parses a single dictionary line.
// Returns the normalized word, its variant, or errSkipLine for comments/empty lines.
func parseLine(line string) (string, variant, error) {
	if isComment(line) {
		return "", variant{}, errSkipLine
	}

	// Drop trailing "# ..." annotations from cmudict.dict.
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		line = line[:idx]
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", variant{}, errSkipLine
	}

	word, idx := parseWordAndVariant(fields[0])
	if word == "" {
		return "", variant{}, errSkipLine
	}

	pron := domain.ParsePronunciation(strings.Join(fields[1:], " "))
	return word, variant{index: idx, pron: pron}, nil
}

// parseWordAndVariant splits a raw word like "HOUSE(2)" into the normalized
// word and variant index. Primary pronunciation has variant index 0,
// "(2)" maps to 1, "(3)" to 2, etc.
func parseWordAndVariant(raw string) (string, int) {
	idx := strings.IndexByte(raw, '(')
	if idx == -1 {
		return domain.NormalizeWord(raw), 0
	}

	end := strings.IndexByte(raw[idx:], ')')
	if end == -1 {
		return domain.NormalizeWord(raw), 0
	}

	n, err := strconv.Atoi(raw[idx+1 : idx+end])
	if err != nil {
		return domain.NormalizeWord(raw), 0
	}

	return domain.NormalizeWord(raw[:idx]), n - 1
}
