package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration and exit",
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	bw := cfg.Badgewatch
	fmt.Fprintf(out, "config ok: %d badges, base url %s\n", len(bw.Badges), bw.BaseURL)
	for _, b := range bw.Badges {
		fmt.Fprintf(out, "  %-22s %-45s every %dms\n", b.Name, b.Endpoint, b.Poll.IntervalMs)
	}
	return nil
}
