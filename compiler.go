package suffixtrie

import (
	"bufio"
	"io"
	"strings"

	"github.com/tidwall/hashmap"
	"go.uber.org/zap"
)

// maxPositions bounds a rule's position count (TLD plus brace groups) at 6,
// rules that try to go deeper are reported and skipped rather
// than partially installed.
const maxPositions = 6

type altKind int

const (
	altLiteral altKind = iota
	altWildcard
	altException
)

type alt struct {
	kind  altKind
	label string
}

// Compiler builds a Matcher from a rule corpus written in the brace
// grammar documented on parseLine. Each call to Compile builds a fresh,
// independent Matcher, so one Compiler can compile several corpora.
type Compiler struct {
	logger *zap.Logger
}

// NewCompiler returns a Compiler that logs malformed lines to logger. A nil
// logger is replaced with zap.NewNop() so a missing logger never crashes a
// caller.
func NewCompiler(logger *zap.Logger) *Compiler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Compiler{logger: logger}
}

// Compile parses every line of r and returns the resulting Matcher.
// Malformed lines are skipped with a warning; Compile fails only when
// reading r fails or when the corpus yields zero usable rules.
func (c *Compiler) Compile(r io.Reader) (*Matcher, error) {
	root := &node{}
	tlds := &hashmap.Map[string, struct{}]{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	accepted := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#") {
			continue
		}
		tld, positions, err := parseLine(line)
		if err != nil {
			c.logger.Warn("skipping malformed rule line",
				zap.Int("line", lineNo),
				zap.String("text", line),
				zap.Error(err),
			)
			continue
		}
		tlds.Set(tld, struct{}{})
		insertRule(root, tld, positions)
		accepted++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if accepted == 0 {
		return nil, ErrEmptyRuleset
	}
	return &Matcher{root: root, tlds: tlds, logger: c.logger}, nil
}

// parseLine parses one rule line into its TLD and ordered position list.
// Each position holds the alternatives declared for it; position 0 (the
// TLD) is represented separately since the grammar requires it be a bare
// literal, never a brace group.
func parseLine(line string) (tld string, positions [][]alt, err error) {
	tokens := tokenize(line)
	if len(tokens) == 0 {
		return "", nil, errMalformed("empty line")
	}
	tld = lowerASCII(tokens[0])
	if tld == "{" || tld == "}" || tld == "" {
		return "", nil, errMalformed("missing TLD")
	}
	rest := tokens[1:]

	positionCount := 1 // the TLD itself
	for len(rest) > 0 {
		if rest[0] != "{" {
			return "", nil, errMalformed("expected '{'")
		}
		rest = rest[1:]
		var alts []alt
		for len(rest) > 0 && rest[0] != "}" {
			alts = append(alts, parseAlt(rest[0]))
			rest = rest[1:]
		}
		if len(rest) == 0 {
			return "", nil, errMalformed("unbalanced '{'")
		}
		rest = rest[1:] // consume '}'
		positions = append(positions, alts)
		positionCount++
		if positionCount > maxPositions {
			return "", nil, errMalformed("rule exceeds position limit")
		}
	}
	return tld, positions, nil
}

func parseAlt(tok string) alt {
	switch {
	case tok == "*":
		return alt{kind: altWildcard}
	case tok == "!":
		return alt{kind: altException, label: ""}
	case strings.HasPrefix(tok, "!"):
		return alt{kind: altException, label: lowerASCII(tok[1:])}
	default:
		return alt{kind: altLiteral, label: lowerASCII(tok)}
	}
}

// tokenize splits a rule line into TLD/brace/label tokens, padding braces
// with whitespace first so "{foo}" and "{ foo }" parse identically.
func tokenize(line string) []string {
	line = strings.ReplaceAll(line, "{", " { ")
	line = strings.ReplaceAll(line, "}", " } ")
	return strings.Fields(line)
}

// insertRule inserts one rule's cross-product of alternatives into the
// trie rooted at root, starting from the TLD label.
func insertRule(root *node, tld string, positions [][]alt) {
	tldEnd := insertLabel(root, tld)
	insertPositions(tldEnd.childOrCreate(dotByte), positions)
}

func insertPositions(n *node, positions [][]alt) {
	// An empty brace group "{ }" ends the rule at this depth.
	if len(positions) == 0 || len(positions[0]) == 0 {
		n.setMarker(markerTerminal)
		return
	}
	for _, a := range positions[0] {
		switch a.kind {
		case altLiteral:
			end := insertLabel(n, a.label)
			dot := end.childOrCreate(dotByte)
			continueOrTerminate(dot, positions[1:])
		case altWildcard:
			w := n.childOrCreate(markerWildcard)
			continueOrTerminate(w, positions[1:])
		case altException:
			end := insertLabel(n, a.label)
			dot := end.childOrCreate(dotByte)
			dot.setMarker(markerException)
		}
	}
}

func continueOrTerminate(n *node, rest [][]alt) {
	if len(rest) == 0 {
		n.setMarker(markerTerminal)
		return
	}
	insertPositions(n, rest)
}

type malformedError struct{ reason string }

func (e *malformedError) Error() string { return e.reason }

func errMalformed(reason string) error { return &malformedError{reason: reason} }
