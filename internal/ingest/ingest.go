// Package ingest reads raw candidate lines from text and SubRip files.
// Output strings are unclassified; the lines service decides what is kept.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Encoding names accepted by Options.
const (
	EncodingUTF8   = "utf-8"
	EncodingLatin1 = "latin1"
)

// tagRegex matches SubRip markup such as <i> or <font color="...">.
var tagRegex = regexp.MustCompile(`<[^>]*>`)

// Options controls how files are decoded.
type Options struct {
	Encoding string // "utf-8" (default) or "latin1"
}

// ReadLines returns one candidate per non-blank line.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	scanner := newScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			out = append(out, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}
	return out, nil
}

// ReadSRT returns the text of every subtitle cue. Cue numbers, timing lines
// and markup tags are dropped; a multi-line cue is joined with "\n" so the
// classifier sees it as one line.
func ReadSRT(r io.Reader) ([]string, error) {
	var (
		out  []string
		cue  []string
		seen bool // timing line of the current block was read
	)
	flush := func() {
		if len(cue) > 0 {
			out = append(out, strings.Join(cue, "\n"))
		}
		cue = cue[:0]
		seen = false
	}

	scanner := newScanner(r)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		line = strings.TrimRight(line, "\r")

		switch {
		case strings.TrimSpace(line) == "":
			flush()
		case !seen && strings.Contains(line, "-->"):
			seen = true
		case !seen:
			// cue index
		default:
			if text := strings.TrimSpace(tagRegex.ReplaceAllString(line, "")); text != "" {
				cue = append(cue, text)
			}
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}
	return out, nil
}

// ReadFile reads path as SubRip when it ends in ".srt", plain lines otherwise.
func ReadFile(path string, opts Options) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	r, err := decoder(f, opts.Encoding)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".srt") {
		return ReadSRT(r)
	}
	return ReadLines(r)
}

func decoder(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "", EncodingUTF8, "utf8":
		return r, nil
	case EncodingLatin1, "iso-8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", encoding)
	}
}

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return scanner
}
