package sourcelang

import "strings"

// EntryPointAttribute is the target language's program-entry attribute name
// (without its leading sigil), analogous to Swift's @main.
const EntryPointAttribute = "main"

// SourceParser is a hand-written scanner for the target language described
// in §1/§6: a curly-braced, strongly-typed OO surface (struct/class/enum/
// protocol/actor, async/throws/mutating). It favors a permissive, best-
// effort grammar over full fidelity — parsing is explicitly out of scope
// for the analytical core, so this exists only to make the pipeline
// runnable end to end against real input.
type SourceParser struct{}

// NewSourceParser creates the default parser collaborator.
func NewSourceParser() *SourceParser {
	return &SourceParser{}
}

// ParseFile implements Parser.
func (p *SourceParser) ParseFile(path string, src []byte) (*ParsedFile, error) {
	c := &cursor{tokens: lex(src)}
	pf := &ParsedFile{Path: path}

	for !c.atEOF() {
		t := c.cur()

		if t.kind == tokIdent && t.text == "@testable" && c.peekNext().text == "import" {
			c.advance()
			imp := c.parseImport()
			imp.IsTestable = true
			pf.Imports = append(pf.Imports, imp)
			continue
		}
		if t.kind == tokIdent && t.text == "testable" && c.peekNext().text == "import" {
			c.advance()
			imp := c.parseImport()
			imp.IsTestable = true
			pf.Imports = append(pf.Imports, imp)
			continue
		}
		if t.kind == tokIdent && t.text == "import" {
			pf.Imports = append(pf.Imports, c.parseImport())
			continue
		}

		typ, fn := c.parseMember()
		if typ != nil {
			pf.Types = append(pf.Types, typ)
			if hasEntryPointAttribute(typ.Attributes) {
				pf.HasEntryPointAttribute = true
			}
		}
		if fn != nil {
			pf.Functions = append(pf.Functions, fn)
		}
	}
	return pf, nil
}

func hasEntryPointAttribute(attrs []string) bool {
	for _, a := range attrs {
		if a == EntryPointAttribute {
			return true
		}
	}
	return false
}

// parseImport consumes `[@testable|testable] import A.B.C`. The caller has
// already consumed any leading testable marker; cur() is the "import" token.
func (c *cursor) parseImport() RawImport {
	line := c.cur().line
	c.advance() // "import"
	var parts []string
	for c.cur().kind == tokIdent {
		parts = append(parts, c.cur().text)
		c.advance()
		if c.cur().kind == tokSymbol && c.cur().text == "." {
			c.advance()
			continue
		}
		break
	}
	return RawImport{ModuleName: strings.Join(parts, "."), Line: line}
}

// consumeModifiers reads leading attributes, an accessibility keyword and
// static/mutating modifiers in any order, stopping at the declaration
// keyword (struct/class/enum/protocol/actor/func/init) or at whatever
// member member introducer follows.
func (c *cursor) consumeModifiers() (attrs []string, access string, isStatic, isMutating bool, startLine int) {
	access = "internal"
	startLine = c.cur().line
	first := true
	for {
		t := c.cur()
		if t.kind != tokIdent {
			break
		}
		switch {
		case isAttribute(t.text):
			attrs = append(attrs, strings.TrimPrefix(t.text, "@"))
		case accessibilityKeywords[t.text]:
			access = t.text
		case t.text == "static":
			isStatic = true
		case t.text == "mutating":
			isMutating = true
		case t.text == "final" || t.text == "override" || t.text == "required" || t.text == "convenience":
			// no-op modifiers for this IR's purposes
		default:
			if first {
				startLine = t.line
			}
			return
		}
		if first {
			startLine = t.line
			first = false
		}
		c.advance()
	}
	return
}

// parseMember dispatches on whatever declaration keyword follows a run of
// modifiers: a type declaration, a function/initializer declaration, or (by
// default) an unrecognized member that is skipped defensively.
func (c *cursor) parseMember() (*RawType, *RawFunction) {
	attrs, access, isStatic, isMutating, startLine := c.consumeModifiers()
	t := c.cur()

	switch {
	case typeKeywords[t.text]:
		return c.parseTypeDecl(attrs, access, startLine), nil
	case t.text == "func" || t.text == "init":
		return nil, c.parseFunctionDecl(access, isStatic, isMutating, startLine)
	default:
		if t.kind == tokSymbol && t.text == "{" {
			c.skipBalanced()
		} else if !c.atEOF() {
			c.advance()
		}
		return nil, nil
	}
}

// skipBalanced skips a brace/paren/bracket group whose opener is the
// current token.
func (c *cursor) skipBalanced() {
	opener := c.cur().text
	closer := map[string]string{"{": "}", "(": ")", "[": "]"}[opener]
	if closer == "" {
		c.advance()
		return
	}
	depth := 0
	for !c.atEOF() {
		t := c.cur()
		if t.kind == tokSymbol && t.text == opener {
			depth++
		} else if t.kind == tokSymbol && t.text == closer {
			depth--
			c.advance()
			if depth == 0 {
				return
			}
			continue
		}
		c.advance()
	}
}

func (c *cursor) parseTypeDecl(attrs []string, access string, startLine int) *RawType {
	kind := c.cur().text
	c.advance() // struct|class|enum|protocol|actor

	name := ""
	if c.cur().kind == tokIdent {
		name = c.cur().text
		c.advance()
	}

	var generics []string
	if c.cur().kind == tokSymbol && c.cur().text == "<" {
		generics = c.parseGenericParamNames()
	}

	var inherited []string
	if c.cur().kind == tokSymbol && c.cur().text == ":" {
		c.advance()
		inherited = c.parseTypeNameList()
	}

	if c.cur().kind == tokIdent && c.cur().text == "where" {
		c.skipUntilSymbol("{")
	}

	rt := &RawType{
		Name: name, Kind: kind, InheritedTypes: inherited, Accessibility: access,
		Line: startLine, EndLine: startLine, Attributes: attrs, GenericParameters: generics,
	}

	if !(c.cur().kind == tokSymbol && c.cur().text == "{") {
		return rt
	}
	c.advance() // "{"

	for !c.atEOF() {
		t := c.cur()
		if t.kind == tokSymbol && t.text == "}" {
			c.advance()
			rt.EndLine = c.lastLine
			return rt
		}
		typ, fn := c.parseMember()
		if typ != nil {
			rt.Nested = append(rt.Nested, typ)
		}
		if fn != nil {
			rt.Functions = append(rt.Functions, fn)
		}
	}
	rt.EndLine = c.lastLine
	return rt
}

func (c *cursor) parseFunctionDecl(access string, isStatic, isMutating bool, startLine int) *RawFunction {
	name := "init"
	if c.cur().text == "func" {
		c.advance()
		if c.cur().kind == tokIdent {
			name = c.cur().text
			c.advance()
		}
	} else if c.cur().text == "init" {
		c.advance()
		if c.cur().kind == tokSymbol && c.cur().text == "?" {
			c.advance()
		}
	}

	var generics []string
	if c.cur().kind == tokSymbol && c.cur().text == "<" {
		generics = c.parseGenericParamNames()
	}

	var params []RawParameter
	if c.cur().kind == tokSymbol && c.cur().text == "(" {
		c.advance()
		params = c.parseParameterList()
	}

	isAsync, isThrows := false, false
	for {
		if c.cur().text == "async" {
			isAsync = true
			c.advance()
			continue
		}
		if c.cur().text == "throws" || c.cur().text == "rethrows" {
			isThrows = true
			c.advance()
			continue
		}
		break
	}

	var returnType *string
	if c.cur().kind == tokSymbol && c.cur().text == "->" {
		c.advance()
		rt := c.consumeBalancedTextUntil("{", "where")
		returnType = &rt
	}

	if c.cur().kind == tokIdent && c.cur().text == "where" {
		c.skipUntilSymbol("{")
	}

	fn := &RawFunction{
		Name: name, Parameters: params, ReturnType: returnType, Accessibility: access,
		IsStatic: isStatic, IsAsync: isAsync, IsThrows: isThrows, IsMutating: isMutating,
		Line: startLine, EndLine: startLine, GenericParameters: generics,
	}

	if c.cur().kind == tokSymbol && c.cur().text == "{" {
		c.advance()
		fn.CallSites, fn.Nested = c.scanBlock()
		fn.EndLine = c.lastLine
	}
	return fn
}

func (c *cursor) parseGenericParamNames() []string {
	c.advance() // "<"
	depth := 1
	expectingName := true
	var names []string
	for depth > 0 && !c.atEOF() {
		t := c.cur()
		switch {
		case t.text == "<":
			depth++
			c.advance()
		case t.text == ">":
			depth--
			c.advance()
		case depth == 1 && expectingName && t.kind == tokIdent:
			names = append(names, t.text)
			expectingName = false
			c.advance()
		case depth == 1 && t.text == ",":
			expectingName = true
			c.advance()
		default:
			c.advance()
		}
	}
	return names
}

func (c *cursor) parseTypeNameList() []string {
	depth := 0
	expectingName := true
	var names []string
	for !c.atEOF() {
		t := c.cur()
		if depth == 0 && t.kind == tokSymbol && t.text == "{" {
			return names
		}
		switch {
		case t.text == "<" || t.text == "(":
			depth++
			c.advance()
		case t.text == ">" || t.text == ")":
			if depth > 0 {
				depth--
			}
			c.advance()
		case depth == 0 && expectingName && t.kind == tokIdent:
			names = append(names, t.text)
			expectingName = false
			c.advance()
		case depth == 0 && t.text == ",":
			expectingName = true
			c.advance()
		default:
			c.advance()
		}
	}
	return names
}

func (c *cursor) parseParameterList() []RawParameter {
	var params []RawParameter
	for !c.atEOF() {
		t := c.cur()
		if t.kind == tokSymbol && t.text == ")" {
			c.advance()
			break
		}
		if t.kind == tokSymbol && t.text == "," {
			c.advance()
			continue
		}
		if t.kind != tokIdent {
			c.advance()
			continue
		}

		first := t.text
		c.advance()
		var label *string
		name := first
		if c.cur().kind == tokIdent {
			second := c.cur().text
			label = &first
			name = second
			c.advance()
		}
		if c.cur().kind == tokSymbol && c.cur().text == ":" {
			c.advance()
		}
		typ := c.consumeParamType()
		params = append(params, RawParameter{Label: label, Name: name, Type: typ})
	}
	return params
}

// consumeParamType reads a type expression up to the next top-level comma
// or closing parenthesis, skipping any "= default" expression.
func (c *cursor) consumeParamType() string {
	depth := 0
	var parts []string
	for !c.atEOF() {
		t := c.cur()
		if depth == 0 && t.kind == tokSymbol && (t.text == "," || t.text == ")") {
			break
		}
		if depth == 0 && t.kind == tokSymbol && t.text == "=" {
			c.advance()
			c.skipBalancedExprUntilCommaOrParen()
			break
		}
		switch t.text {
		case "<", "(", "[":
			depth++
		case ">", ")", "]":
			if depth > 0 {
				depth--
			}
		}
		parts = append(parts, t.text)
		c.advance()
	}
	return strings.Join(parts, "")
}

func (c *cursor) skipBalancedExprUntilCommaOrParen() {
	depth := 0
	for !c.atEOF() {
		t := c.cur()
		if depth == 0 && t.kind == tokSymbol && (t.text == "," || t.text == ")") {
			return
		}
		switch t.text {
		case "<", "(", "[":
			depth++
		case ">", ")", "]":
			if depth > 0 {
				depth--
			}
		}
		c.advance()
	}
}

// consumeBalancedTextUntil reads tokens, balancing <>()[], until hitting a
// top-level symbol/ident in stops.
func (c *cursor) consumeBalancedTextUntil(stops ...string) string {
	depth := 0
	var parts []string
	stopSet := make(map[string]bool, len(stops))
	for _, s := range stops {
		stopSet[s] = true
	}
	for !c.atEOF() {
		t := c.cur()
		if depth == 0 && stopSet[t.text] {
			break
		}
		switch t.text {
		case "<", "(", "[":
			depth++
		case ">", ")", "]":
			if depth > 0 {
				depth--
			}
		}
		parts = append(parts, t.text)
		c.advance()
	}
	return strings.Join(parts, "")
}

// scanBlock consumes statements up to (and including) the matching closing
// brace, recording call sites and local function declarations found
// directly in this block (not inside a nested block belonging to a local
// function, which recurses on its own).
func (c *cursor) scanBlock() (calls []RawCallSite, nested []*RawFunction) {
	depth := 0
	for !c.atEOF() {
		t := c.cur()
		switch {
		case t.kind == tokSymbol && (t.text == "{" || t.text == "(" || t.text == "["):
			depth++
			c.advance()
		case t.kind == tokSymbol && (t.text == "}" || t.text == ")" || t.text == "]"):
			if depth == 0 {
				c.advance()
				return
			}
			depth--
			c.advance()
		case t.kind == tokIdent && t.text == "func":
			fn := c.parseFunctionDecl("", false, false, t.line)
			nested = append(nested, fn)
		case t.kind == tokIdent && !controlKeywords[t.text]:
			if name, line, ok := c.tryConsumeCallChain(); ok {
				calls = append(calls, RawCallSite{CalledName: name, Line: line})
			}
		default:
			c.advance()
		}
	}
	return
}

// tryConsumeCallChain consumes an identifier chain (a.b.c) and reports
// whether it is immediately followed by "(", i.e. is a call expression. The
// chain is consumed either way; the caller's loop continues from the "("
// (or whatever followed) so nested arguments are still scanned.
func (c *cursor) tryConsumeCallChain() (name string, line int, isCall bool) {
	line = c.cur().line
	name = c.cur().text
	c.advance()
	for c.cur().kind == tokSymbol && c.cur().text == "." && c.peekNext().kind == tokIdent {
		c.advance()
		name = c.cur().text
		c.advance()
	}
	if c.cur().kind == tokSymbol && c.cur().text == "(" {
		return name, line, true
	}
	return name, line, false
}
