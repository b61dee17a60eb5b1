package suffixtrie

import (
	"io"
	"sync"

	"go.uber.org/zap"
)

var (
	defaultOnce    sync.Once
	defaultMatcher *Matcher
	defaultErr     error
)

// Compile is the administrative, process-wide compile(rules) operation: it
// builds the package-level Matcher the first time it is called, and is
// idempotent thereafter — concurrent first callers are serialized behind
// a single compile, and every call after the first simply returns its
// cached result regardless of the rules argument. Construct independent,
// freshly-compiled Matchers with NewCompiler instead when a test or CLI
// invocation needs its own trie.
func Compile(rules io.Reader, logger *zap.Logger) (*Matcher, error) {
	defaultOnce.Do(func() {
		defaultMatcher, defaultErr = NewCompiler(logger).Compile(rules)
	})
	return defaultMatcher, defaultErr
}
