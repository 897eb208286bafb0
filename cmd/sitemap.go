package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ZacxDev/docnav/utils"
)

var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Generate sitemap.xml for the sidebar pages",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		filePath, err := utils.GenerateSitemaps(settings.OutputDir, settings.Origin, cfg, time.Now())
		if err != nil {
			return err
		}

		logger.Info().Str("file", filePath).Int("pages", len(cfg.Leaves())).Msg("Generated sitemap")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sitemapCmd)
}
