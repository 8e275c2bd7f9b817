// Package fasta parses single-record FASTA text into a clean linear amino
// acid sequence and formats sequences for human-readable display.
package fasta

import (
	"errors"
	"strings"
)

var (
	// ErrNotFasta is returned when the input does not start with a ">" header line.
	ErrNotFasta = errors.New("not a FASTA record: missing '>' header line")
	// ErrEmptySequence is returned when a header is present but no sequence lines follow.
	ErrEmptySequence = errors.New("FASTA record has no sequence lines")
)

// Record is a single parsed FASTA record.
type Record struct {
	Header   string
	Sequence string
}

// Parse reads one FASTA record from text: a ">" header line followed by
// one or more sequence lines, which are concatenated and uppercased.
// Whitespace around lines is stripped. Parse does not validate the amino
// acid alphabet; that happens when the sequence is scored.
func Parse(text string) (Record, error) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, ">") {
		return Record{}, ErrNotFasta
	}

	lines := strings.Split(text, "\n")
	header := strings.TrimSpace(strings.TrimPrefix(lines[0], ">"))

	var body strings.Builder
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ">") {
			// A second header would start another record; everything in
			// scope here is single-sequence input.
			break
		}
		body.WriteString(line)
	}
	if body.Len() == 0 {
		return Record{}, ErrEmptySequence
	}

	return Record{
		Header:   header,
		Sequence: strings.ToUpper(body.String()),
	}, nil
}

// Clean normalizes a raw (headerless) sequence pasted by a user: strips
// all whitespace and uppercases.
func Clean(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch r {
		case ' ', '\t', '\r', '\n':
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

// Preview formats a sequence for display: 10-symbol groups separated by
// 4-space gaps, with a line break before every 6th group (every 60
// residues). The leading newline and exact gap widths are a stable output
// contract; do not change them.
func Preview(seq string) string {
	var groups []string
	for i := 0; i < len(seq); i += 10 {
		end := i + 10
		if end > len(seq) {
			end = len(seq)
		}
		group := seq[i:end]
		if i%60 == 0 {
			group = "\n" + group
		}
		groups = append(groups, group)
	}
	return strings.Join(groups, "    ")
}
