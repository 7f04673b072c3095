// Package parser turns a line-oriented guess log into events.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"regexp"

	"github.com/okian/guessboard/internal/domain/model"
)

// Default parser configuration constants.
const (
	DefaultRevealKeyword = "Answer"
	defaultMaxLineSize   = 1 << 20
	initialBufferSize    = 4096
)

// linePattern matches "<word> <word>" at the start of a line. Anything after
// the second word is ignored.
var linePattern = regexp.MustCompile(`^([A-Za-z]+)[ \t]+([A-Za-z]+)`)

// Parser reads events one at a time, in the style of bufio.Scanner:
//
//	p := parser.New(r)
//	for p.Next() {
//		ev := p.Event()
//	}
//	if err := p.Err(); err != nil { ... }
//
// A Parser is forward-only and cannot be restarted.
type Parser struct {
	scanner     *bufio.Scanner
	keyword     string
	maxLineSize int

	event   model.Event
	line    int
	skipped int
	err     error
	done    bool
}

// New creates a parser reading from r.
func New(r io.Reader, opts ...Option) *Parser {
	p := &Parser{
		keyword:     DefaultRevealKeyword,
		maxLineSize: defaultMaxLineSize,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.scanner = bufio.NewScanner(r)
	p.scanner.Buffer(make([]byte, 0, min(initialBufferSize, p.maxLineSize)), p.maxLineSize)
	return p
}

// Next advances to the next matching line. It returns false at the end of
// input or on a read error.
func (p *Parser) Next() bool {
	if p.done {
		return false
	}
	for p.scanner.Scan() {
		p.line++
		ev, ok := p.parseLine(p.scanner.Text())
		if !ok {
			p.skipped++
			continue
		}
		p.event = ev
		return true
	}
	p.done = true
	if err := p.scanner.Err(); err != nil {
		p.err = fmt.Errorf("%w: line %d: %w", ErrRead, p.line+1, err)
	}
	return false
}

// Event returns the event produced by the last successful Next.
func (p *Parser) Event() model.Event { return p.event }

// Err returns the first read error, if any.
func (p *Parser) Err() error { return p.err }

// Lines returns the number of lines consumed so far.
func (p *Parser) Lines() int { return p.line }

// Skipped returns the number of lines that did not match.
func (p *Parser) Skipped() int { return p.skipped }

func (p *Parser) parseLine(text string) (model.Event, bool) {
	m := linePattern.FindStringSubmatch(text)
	if m == nil {
		return model.Event{}, false
	}
	if m[1] == p.keyword {
		return model.Event{Kind: model.KindReveal, Token: m[2], Line: p.line}, true
	}
	return model.Event{Kind: model.KindGuess, Participant: m[1], Token: m[2], Line: p.line}, true
}

// ParseAll drains r and returns every event. Intended for tests and small logs.
func ParseAll(r io.Reader, opts ...Option) ([]model.Event, error) {
	p := New(r, opts...)
	var events []model.Event
	for p.Next() {
		events = append(events, p.Event())
	}
	return events, p.Err()
}
