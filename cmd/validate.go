package cmd

import (
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the site configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger.Info().
			Str("file", settings.Config).
			Str("title", cfg.Title).
			Int("entries", len(cfg.Sidebar)).
			Msg("Site config is valid")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
