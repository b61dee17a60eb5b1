package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/go-suffixtrie/suffixtrie"
)

// fs is the filesystem every command loads corpora through. Tests of the
// cmd package can swap this for afero.NewMemMapFs(), matching the
// teacher's psl.go pattern of threading an afero.Fs rather than touching
// os directly.
var fs afero.Fs = afero.NewOsFs()

func initLogger(verbose bool) *zap.Logger {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}
	pec := zap.NewProductionEncoderConfig()
	pec.EncodeTime = zapcore.ISO8601TimeEncoder
	pec.EncodeLevel = zapcore.CapitalLevelEncoder
	return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(pec), zapcore.AddSync(os.Stderr), level))
}

// loadMatcher reads and compiles the corpora at paths, in order, into a
// fresh, standalone Matcher (not the package-level singleton — each CLI
// invocation gets its own trie so repeated --corpus flags behave
// predictably). The primary and special corpora are concatenated in
// compilation order rather than compiled independently, so a later corpus's
// rules only ever add to the trie, never remove from it. Empty path
// entries (an unset --special-corpus) are skipped.
func loadMatcher(logger *zap.Logger, paths ...string) (*suffixtrie.Matcher, error) {
	var readers []io.Reader
	for _, path := range paths {
		if path == "" {
			continue
		}
		f, err := fs.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening corpus %q: %w", path, err)
		}
		defer f.Close()
		readers = append(readers, f)
	}

	m, err := suffixtrie.NewCompiler(logger).Compile(io.MultiReader(readers...))
	if err != nil {
		return nil, fmt.Errorf("compiling corpora %q: %w", paths, err)
	}
	return m, nil
}
