package cmd

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ZacxDev/docnav/config"
	"github.com/ZacxDev/docnav/javascript"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Export the site configuration as a config.js module",
	RunE: func(cmd *cobra.Command, args []string) error {
		minify, _ := cmd.Flags().GetBool("minify")
		stdout, _ := cmd.Flags().GetBool("stdout")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		err = config.ExportJS(&buf, config.Render(cfg))
		if err != nil {
			return err
		}

		code, err := javascript.Check(buf.Bytes(), minify)
		if err != nil {
			return errors.Wrap(err, "generated config module is not valid javascript")
		}

		if stdout {
			_, err = cmd.OutOrStdout().Write(code)
			return errors.WithStack(err)
		}

		err = os.MkdirAll(settings.OutputDir, os.ModePerm)
		if err != nil {
			return errors.WithStack(err)
		}

		filePath := filepath.Join(settings.OutputDir, "config.js")
		err = os.WriteFile(filePath, code, 0644)
		if err != nil {
			return errors.WithStack(err)
		}

		logger.Info().Str("file", filePath).Bool("minified", minify).Msg("Generated config module")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().Bool("minify", false, "Minify the generated module")
	renderCmd.Flags().Bool("stdout", false, "Write the module to stdout instead of the output directory")
}
