package main

import (
	"github.com/spf13/cobra"
)

var hasTLDCmd = &cobra.Command{
	Use:   "has-tld <host-or-tld>",
	Short: "Report whether a host's rightmost label is a known TLD",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := initLogger(verbose)
		defer logger.Sync()

		m, err := loadMatcher(logger, corpusPath, specialPath)
		if err != nil {
			return err
		}
		printBool(cmd, "has_valid_tld", m.HasValidTLD(args[0]))
		return nil
	},
}
