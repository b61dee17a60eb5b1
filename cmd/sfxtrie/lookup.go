package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/net/idna"
)

var punycode bool

var lookupCmd = &cobra.Command{
	Use:   "lookup <host>",
	Short: "Look up public_suffix and base_domain for a host",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := initLogger(verbose)
		defer logger.Sync()

		host := args[0]
		if punycode {
			ascii, err := idna.ToASCII(host)
			if err != nil {
				return fmt.Errorf("punycode-decoding %q: %w", host, err)
			}
			host = ascii
		}

		m, err := loadMatcher(logger, corpusPath, specialPath)
		if err != nil {
			return err
		}

		suffix := m.PublicSuffix(host)
		base := m.BaseDomain(host)
		validTLD := m.HasValidTLD(host)

		printField(cmd, "host", host, true)
		printField(cmd, "public_suffix", suffix, suffix != "")
		printField(cmd, "base_domain", base, base != "")
		printBool(cmd, "has_valid_tld", validTLD)
		return nil
	},
}

func init() {
	lookupCmd.Flags().BoolVar(&punycode, "punycode", false, "pre-decode host to A-labels via idna before matching")
}

func printField(cmd *cobra.Command, name, value string, populated bool) {
	c := color.New(color.FgRed)
	if populated {
		c = color.New(color.FgGreen)
	}
	cmd.Println(c.Sprintf("%-16s %s", name, value))
}

func printBool(cmd *cobra.Command, name string, value bool) {
	c := color.New(color.FgRed)
	if value {
		c = color.New(color.FgGreen)
	}
	cmd.Println(c.Sprintf("%-16s %v", name, value))
}
