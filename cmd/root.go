package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ZacxDev/docnav/config"
)

// Settings are read from flags, DOCNAV_* environment variables, and an
// optional docnav.yaml in the working directory.
type Settings struct {
	Config     string `mapstructure:"config"`
	ContentDir string `mapstructure:"content-dir"`
	Origin     string `mapstructure:"origin"`
	OutputDir  string `mapstructure:"output-dir"`
	LogLevel   string `mapstructure:"log-level"`
}

var (
	settings Settings
	logger   zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "docnav",
	Short: "docnav - Documentation site navigation config",
	Long: `docnav validates the title, description and sidebar of a documentation
site and exports them as the config module the site framework loads.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeSettings(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "docs/config.yaml", "Site configuration file")
	flags.String("content-dir", "docs", "Directory holding the markdown pages")
	flags.String("origin", "", "Public origin of the site, e.g. https://pluto.docs.fairwinds.com")
	flags.StringP("output-dir", "o", "public", "Directory generated files are written to")
	flags.String("log-level", "info", "Log level (debug|info|warn|error)")
}

func initializeSettings(cmd *cobra.Command) error {
	v := viper.New()

	v.SetConfigName("docnav")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("DOCNAV")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return errors.WithStack(err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errors.Wrap(err, "failed to read docnav.yaml")
		}
	}

	if err := v.Unmarshal(&settings); err != nil {
		return errors.Wrap(err, "unable to decode settings")
	}

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", settings.LogLevel)
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	if used := v.ConfigFileUsed(); used != "" {
		logger.Debug().Str("file", used).Msg("Using settings file")
	}

	return nil
}

// loadConfig loads the site configuration named by --config.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(settings.Config)
	if err != nil {
		var verr *config.ValidationError
		if errors.As(err, &verr) {
			logger.Error().Str("file", settings.Config).Str("field", verr.Field).Msg(verr.Reason)
		}
		return nil, err
	}

	logger.Debug().
		Str("file", settings.Config).
		Int("entries", len(cfg.Sidebar)).
		Int("pages", len(cfg.Leaves())).
		Msg("Loaded site config")
	return cfg, nil
}
