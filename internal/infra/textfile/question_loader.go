package textfile

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"radio-quiz/internal/domain"
)

// recordPattern matches one question block. Field bodies may span lines but never contain '['.
var recordPattern = regexp.MustCompile(
	`\[I\]([^\[]+)\n\[Q\]([^\[]+)\n\[A\]([^\[]+)\n\[B\]([^\[]+)\n\[C\]([^\[]+)\n\[D\]([^\[]+)`,
)

var blockStart = regexp.MustCompile(`\[I\]`)

// Options tunes parsing.
type Options struct {
	// AnswerIndex is the parsed option treated as correct. The question banks
	// this reads list the correct answer first, so it defaults to 0.
	AnswerIndex int
	// Diagnostics collects the position of every unmatched block.
	Diagnostics bool
}

// Diagnostic points at a block of text that did not form a complete record.
type Diagnostic struct {
	Offset  int    `json:"offset"`
	Line    int    `json:"line"`
	Snippet string `json:"snippet"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d (offset %d): unmatched block %q", d.Line, d.Offset, d.Snippet)
}

// Parse extracts question records from raw text in file order.
func Parse(text string, opts Options) ([]domain.QuestionRecord, []Diagnostic, error) {
	if opts.AnswerIndex < 0 || opts.AnswerIndex >= domain.OptionCount {
		return nil, nil, domain.ErrInvalidAnswerIndex
	}

	matches := recordPattern.FindAllStringSubmatchIndex(text, -1)
	records := make([]domain.QuestionRecord, 0, len(matches))
	var diags []Diagnostic

	prevEnd := 0
	for _, m := range matches {
		if opts.Diagnostics {
			diags = append(diags, unmatched(text, prevEnd, m[0])...)
		}
		prevEnd = m[1]

		field := func(group int) string {
			return trimField(text[m[2*group]:m[2*group+1]])
		}
		records = append(records, domain.QuestionRecord{
			ID:          field(1),
			Question:    field(2),
			Options:     [domain.OptionCount]string{field(3), field(4), field(5), field(6)},
			AnswerIndex: opts.AnswerIndex,
		})
	}
	if opts.Diagnostics {
		diags = append(diags, unmatched(text, prevEnd, len(text))...)
	}
	return records, diags, nil
}

// unmatched reports the non-blank text in text[start:end], split at each [I] marker.
func unmatched(text string, start, end int) []Diagnostic {
	if start >= end {
		return nil
	}
	cuts := []int{start}
	for _, loc := range blockStart.FindAllStringIndex(text[start:end], -1) {
		if at := start + loc[0]; at != start {
			cuts = append(cuts, at)
		}
	}
	cuts = append(cuts, end)

	var diags []Diagnostic
	for i := 0; i+1 < len(cuts); i++ {
		chunk := text[cuts[i]:cuts[i+1]]
		lead := len(chunk) - len(strings.TrimLeft(chunk, " \t\r\n"))
		body := strings.TrimSpace(chunk)
		if body == "" {
			continue
		}
		offset := cuts[i] + lead
		diags = append(diags, Diagnostic{
			Offset:  offset,
			Line:    strings.Count(text[:offset], "\n") + 1,
			Snippet: snippet(body),
		})
	}
	return diags
}

func snippet(s string) string {
	s = domain.DisplayText(s)
	if r := []rune(s); len(r) > 40 {
		return string(r[:40]) + "..."
	}
	return s
}

func trimField(s string) string {
	return strings.TrimRight(s, "\r\n")
}

// Loader reads question files from disk.
type Loader struct {
	opts Options
}

func NewLoader(opts Options) *Loader {
	return &Loader{opts: opts}
}

// LoadQuestions reads and parses path. A file with no matching blocks yields an empty slice.
func (l *Loader) LoadQuestions(_ context.Context, path string) ([]domain.QuestionRecord, []Diagnostic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load questions: %w", err)
	}
	return Parse(string(data), l.opts)
}
