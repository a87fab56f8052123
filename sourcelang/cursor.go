package sourcelang

var controlKeywords = map[string]bool{
	"if": true, "for": true, "while": true, "guard": true, "switch": true,
	"case": true, "else": true, "repeat": true, "return": true, "break": true,
	"continue": true, "defer": true, "try": true, "await": true, "throw": true,
	"in": true, "where": true, "as": true, "is": true, "catch": true, "do": true,
	"func": true, "struct": true, "class": true, "enum": true, "protocol": true,
	"actor": true, "import": true, "var": true, "let": true, "testable": true,
	"public": true, "internal": true, "private": true, "fileprivate": true,
	"open": true, "package": true, "static": true, "mutating": true,
	"async": true, "throws": true, "rethrows": true, "final": true,
	"override": true, "required": true, "convenience": true, "init": true,
}

// cursor walks a token stream with one-token lookahead helpers.
type cursor struct {
	tokens   []token
	pos      int
	lastLine int
}

func (c *cursor) cur() token {
	if c.pos >= len(c.tokens) {
		return token{kind: tokEOF}
	}
	return c.tokens[c.pos]
}

func (c *cursor) peekNext() token {
	if c.pos+1 >= len(c.tokens) {
		return token{kind: tokEOF}
	}
	return c.tokens[c.pos+1]
}

func (c *cursor) advance() {
	if c.pos < len(c.tokens) {
		c.lastLine = c.tokens[c.pos].line
		c.pos++
	}
}

func (c *cursor) atEOF() bool {
	return c.cur().kind == tokEOF
}

// skipUntilSymbol advances past tokens until it reaches (but does not
// consume) the next occurrence of the given symbol; nesting is not tracked.
func (c *cursor) skipUntilSymbol(sym string) {
	for !c.atEOF() {
		t := c.cur()
		if t.kind == tokSymbol && t.text == sym {
			return
		}
		c.advance()
	}
}
