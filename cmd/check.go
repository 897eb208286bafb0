package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ZacxDev/docnav/pages"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that every sidebar entry points at a page",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		report, err := pages.Check(settings.ContentDir, cfg)
		if err != nil {
			return errors.Wrapf(err, "error checking %s", settings.ContentDir)
		}

		for _, issue := range report.Issues {
			event := logger.Warn()
			if issue.Severity == pages.SeverityError {
				event = logger.Error()
			}
			event.Str("title", issue.Title).Str("route", issue.Route).Msg(issue.Message)
		}

		if n := report.Errors(); n > 0 {
			return errors.Errorf("%d sidebar entries point at missing pages", n)
		}

		logger.Info().
			Str("content_dir", settings.ContentDir).
			Int("pages", len(report.Pages)).
			Int("warnings", len(report.Issues)).
			Msg("All sidebar pages found")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
