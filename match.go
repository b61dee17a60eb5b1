package suffixtrie

import (
	"github.com/tidwall/hashmap"
	"go.uber.org/zap"
)

// Matcher answers public_suffix, base_domain and has_valid_tld queries
// against an immutable trie built by Compiler.Compile. All Matcher methods
// are safe for concurrent use without further locking: nothing about
// a Matcher changes after Compile returns it.
type Matcher struct {
	root   *node
	tlds   *hashmap.Map[string, struct{}]
	logger *zap.Logger
}

// PublicSuffix implements the strict-mode query: it returns the empty
// string when no rule applies, or when a rule applies but the host lacks
// the extra label the rule demands.
func (m *Matcher) PublicSuffix(host string) string {
	return m.match(host, true)
}

// BaseDomain implements the permissive-mode query: when a rule matches but
// the required extra label is missing, it returns whatever was matched; when
// no rule recognizes the host's TLD at all, it treats the rightmost label as
// the suffix and returns it together with the label to its left.
func (m *Matcher) BaseDomain(host string) string {
	return m.match(host, false)
}

// HasValidTLD reports whether host's rightmost label is a TLD present in
// the compiled rule corpus.
func (m *Matcher) HasValidTLD(host string) bool {
	if m == nil {
		return false
	}
	h := lowerASCII(host)
	if h == "" {
		return false
	}
	j := len(h) - 1
	for j >= 0 && h[j] != dotByte {
		j--
	}
	tld := h[j+1:]
	if tld == "" {
		return false
	}
	_, ok := m.tlds.Get(tld)
	return ok
}

func (m *Matcher) match(host string, strict bool) string {
	if m == nil {
		return ""
	}
	h := lowerASCII(host)
	if h == "" || h[len(h)-1] == dotByte {
		return ""
	}
	if isDigitByte(h[len(h)-1]) {
		if !strict && looksLikeIPv4Literal(h) {
			m.trace("matched IPv4 literal", h, len(h)-1)
			return h
		}
		return ""
	}

	node := m.root
	i := len(h) - 1
	seenWildcard := false
	var btNode *node
	btCursor := -1
	haveBT := false

	for {
		if nn, ni, ok := literalStep(node, h, i); ok {
			m.trace("matched word", h, i)
			node, i = nn, ni
			haveBT = false
			continue
		}
		if nn, ni, ok := wildcardStep(node, h, i); ok {
			btNode, btCursor, haveBT = node, i, true
			seenWildcard = true
			m.trace("matched wildcard", h, i)
			node, i = nn, ni
			continue
		}
		break
	}

	var result string
	switch {
	case node.hasMarker(markerException):
		result = h[suffixStart(h, i):]
	case node.hasMarker(markerTerminal):
		// Any wildcard consumed along the accepted path — trailing or
		// mid-pattern — already stands in for the extra registrable
		// label, so it must not be appended a second time.
		result = m.resolveOrdinary(h, i, seenWildcard, strict)
	case haveBT && btNode.hasMarker(markerTerminal):
		m.trace("backtracking", h, btCursor)
		result = m.resolveOrdinary(h, btCursor, false, strict)
	default:
		if strict {
			return ""
		}
		if i == len(h)-1 {
			// No rule recognizes any prefix of host at all: fall back to
			// treating the rightmost label as a synthetic one-label TLD
			// suffix and apply the usual +1-label gate to it.
			result = m.resolveOrdinary(h, rightmostLabelCursor(h), false, false)
		} else {
			result = h[suffixStart(h, i):]
		}
	}

	if result != "" {
		m.trace("VALID DOMAIN", result, len(result)-1)
	}
	return result
}

// resolveOrdinary applies the +1-extra-label gate: a label must exist
// immediately to the left of i for the match to be valid at all, but
// noAppend controls whether that label is folded into the returned slice.
// noAppend is true when a wildcard was consumed on the accepted path —
// trailing or mid-pattern — since the wildcard-matched label already
// stands in for the extra label; it must still exist, but is not appended
// again on top of it.
//
// In strict mode, when the host byte immediately left of the matched
// suffix (the rightmost byte of the gate label, h[i]) is a reserved marker
// byte ('!' or '*'), the gate label is not a real registrable label, so the
// whole match is rejected rather than appended.
func (m *Matcher) resolveOrdinary(h string, i int, noAppend bool, strict bool) string {
	start, ok := extendByOneLabel(h, i)
	if !ok {
		if strict {
			return ""
		}
		return h[i+1:]
	}
	if strict && (h[i] == markerException || h[i] == markerWildcard) {
		return ""
	}
	if noAppend {
		return h[suffixStart(h, i):]
	}
	return h[start:]
}

// suffixStart returns the index at which a matched suffix ending at cursor
// i begins, skipping a leading separator so the returned slice always
// starts at a label boundary rather than on a leading '.'.
func suffixStart(h string, i int) int {
	start := i + 1
	if start < len(h) && h[start] == dotByte {
		start++
	}
	return start
}

// rightmostLabelCursor returns the cursor that results from consuming
// host's rightmost label and its separator, mirroring literalStep's
// bookkeeping without consulting the trie. Used by the permissive
// fallback when no rule recognizes any prefix of the host at all.
func rightmostLabelCursor(h string) int {
	j := len(h) - 1
	for j >= 0 && h[j] != dotByte {
		j--
	}
	if j >= 0 {
		j--
	}
	return j
}

// extendByOneLabel reports whether a label exists immediately to the left
// of cursor i, and if so, the index at which it (and everything after it)
// begins.
func extendByOneLabel(h string, i int) (start int, ok bool) {
	if i < 0 {
		return 0, false
	}
	j := i
	for j >= 0 && h[j] != dotByte {
		j--
	}
	return j + 1, true
}

// literalStep attempts to match one whole label of h, right-to-left from
// cursor i, by following literal trie edges from node. It succeeds only
// if at least one byte was consumed and the node reached has a separator
// edge; on success it returns the node beyond that separator and the
// cursor just past it.
func literalStep(n *node, h string, i int) (*node, int, bool) {
	if i < 0 {
		return nil, 0, false
	}
	cur := n
	j := i
	consumed := false
	for j >= 0 && h[j] != dotByte {
		c, ok := cur.child(h[j])
		if !ok {
			return nil, 0, false
		}
		cur = c
		j--
		consumed = true
	}
	if !consumed {
		return nil, 0, false
	}
	dot, ok := cur.child(dotByte)
	if !ok {
		return nil, 0, false
	}
	if j >= 0 {
		j-- // consume the literal '.' byte
	}
	return dot, j, true
}

// wildcardStep skips exactly one whole host label, without inspecting its
// bytes, through node's '*' edge.
func wildcardStep(n *node, h string, i int) (*node, int, bool) {
	if i < 0 || h[i] == dotByte {
		return nil, 0, false
	}
	w, ok := n.child(markerWildcard)
	if !ok {
		return nil, 0, false
	}
	j := i
	for j >= 0 && h[j] != dotByte {
		j--
	}
	if j >= 0 {
		j--
	}
	return w, j, true
}

func (m *Matcher) trace(event, h string, i int) {
	if m.logger == nil {
		return
	}
	m.logger.Debug(event, zap.String("host", h), zap.Int("cursor", i))
}
