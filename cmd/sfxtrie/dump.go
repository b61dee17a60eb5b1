package main

import (
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print every rule reconstructed from the compiled trie, one per line",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := initLogger(verbose)
		defer logger.Sync()

		m, err := loadMatcher(logger, corpusPath, specialPath)
		if err != nil {
			return err
		}
		m.DumpTree(cmd.OutOrStdout())
		return nil
	},
}
