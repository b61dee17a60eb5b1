package main

import (
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile the rule corpus, logging skipped lines, and report has_valid_tld(\"com\")",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := initLogger(verbose)
		defer logger.Sync()

		m, err := loadMatcher(logger, corpusPath, specialPath)
		if err != nil {
			return err
		}
		cmd.Printf("compiled %q: has_valid_tld(\"com\")=%v\n", corpusPath, m.HasValidTLD("com"))
		return nil
	},
}
