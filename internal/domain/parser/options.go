package parser

// Option applies a configuration option to the Parser.
type Option func(*Parser)

// WithRevealKeyword sets the first token that marks the answer line.
func WithRevealKeyword(keyword string) Option {
	return func(p *Parser) {
		if keyword != "" {
			p.keyword = keyword
		}
	}
}

// WithMaxLineSize caps the length of a single input line in bytes.
func WithMaxLineSize(size int) Option {
	return func(p *Parser) {
		if size > 0 {
			p.maxLineSize = size
		}
	}
}
