package suffixtrie

import (
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/hashmap"
)

// Reserved marker bytes. A label byte can never legitimately take one of
// these values on the host side, so they
// double as edge keys with no risk of colliding with real label content.
const (
	markerTerminal  byte = 0x00
	markerException byte = '!'
	markerWildcard  byte = '*'
	dotByte         byte = '.'
)

// node is one trie vertex. Children are stored in a sparse byte-keyed map
// rather than a dense 256-slot array, since most nodes only have a
// handful of edges.
type node struct {
	children hashmap.Map[byte, *node]
}

// markerNode is the shared, never-traversed value stored for marker edges
// (0x00, '!'); only its presence as a key matters.
var markerNode = &node{}

func (n *node) child(b byte) (*node, bool) {
	return n.children.Get(b)
}

func (n *node) childOrCreate(b byte) *node {
	if c, ok := n.children.Get(b); ok {
		return c
	}
	c := &node{}
	n.children.Set(b, c)
	return c
}

func (n *node) hasMarker(b byte) bool {
	_, ok := n.children.Get(b)
	return ok
}

func (n *node) setMarker(b byte) {
	n.children.Set(b, markerNode)
}

// insertLabel walks label's bytes right-to-left from n, creating edges as
// needed, and returns the node reached after the last byte. An empty label
// returns n unchanged.
func insertLabel(n *node, label string) *node {
	cur := n
	for i := len(label) - 1; i >= 0; i-- {
		cur = cur.childOrCreate(label[i])
	}
	return cur
}

// DumpTree writes one reconstructed rule per line, walking every complete
// root-to-terminal/exception path. Diagnostic only: never consulted by the
// matcher.
func (m *Matcher) DumpTree(w io.Writer) {
	dumpWalk(w, m.root, nil, nil)
}

func dumpWalk(w io.Writer, n *node, labels []string, current []byte) {
	n.children.Scan(func(b byte, c *node) bool {
		switch b {
		case markerTerminal:
			fmt.Fprintln(w, strings.Join(reverseLabelsCopy(labels), "."))
		case markerException:
			fmt.Fprintln(w, "!"+strings.Join(reverseLabelsCopy(labels), "."))
		case dotByte:
			lbl := string(reverseBytesCopy(current))
			dumpWalk(w, c, appendLabel(labels, lbl), nil)
		case markerWildcard:
			dumpWalk(w, c, appendLabel(labels, "*"), nil)
		default:
			dumpWalk(w, c, labels, append(append([]byte{}, current...), b))
		}
		return true
	})
}

func appendLabel(labels []string, label string) []string {
	out := make([]string, len(labels)+1)
	copy(out, labels)
	out[len(labels)] = label
	return out
}

// reverseLabelsCopy reverses a copy of a label slice, adapted from the
// teacher's in-place string-slice reverse helper.
func reverseLabelsCopy(labels []string) []string {
	out := append([]string{}, labels...)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func reverseBytesCopy(b []byte) []byte {
	out := append([]byte{}, b...)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
