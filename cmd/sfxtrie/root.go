package main

import (
	"github.com/spf13/cobra"
)

var (
	corpusPath  string
	specialPath string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "sfxtrie",
	Short: "Compile and query a suffix-trie rule corpus",
	Long: "sfxtrie compiles a brace-grammar rule corpus into an in-memory " +
		"suffix trie and answers public_suffix / base_domain / has_valid_tld " +
		"queries against it.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&corpusPath, "corpus", "data/rules.suffix", "path to the primary rule corpus file")
	rootCmd.PersistentFlags().StringVar(&specialPath, "special-corpus", "", "path to a supplemental rule corpus file, concatenated after --corpus")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "emit debug-level matcher trace")
	rootCmd.AddCommand(compileCmd, lookupCmd, dumpCmd, hasTLDCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln(err)
	}
}
