package cmd

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/c9s/fixp/pkg/cmd/cmdutil"
	"github.com/c9s/fixp/pkg/util"
)

var RootCmd = &cobra.Command{
	Use:   "fixp",
	Short: "binary fixed-point calculator",
	Long:  "render and combine pre-scaled fixed-point integers",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
}

func init() {
	// For global flags, assign a flag as a persistent flag on the root.
	cmdutil.PersistentFlags(RootCmd.PersistentFlags())
}

// setup binds the parsed flags into viper, loads the optional config file
// and configures the logger.
func setup(cmd *cobra.Command) error {
	viper.SetEnvPrefix("fixp")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	if err := viper.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return errors.Wrap(err, "failed to bind persistent flags")
	}

	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "failed to bind local flags")
	}

	if configFile := viper.GetString("config"); len(configFile) > 0 {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to load config file %s", configFile)
		}
	}

	log.SetFormatter(&prefixed.TextFormatter{})

	logger := log.StandardLogger()
	if viper.GetBool("debug") {
		logger.SetLevel(log.DebugLevel)
	}

	if viper.GetBool("no-color") {
		color.NoColor = true
	}

	return nil
}

// loadDotenv loads the dotenv file when it exists.
func loadDotenv(dotenvFile string) error {
	if _, err := os.Stat(dotenvFile); err != nil {
		return nil
	}
	return errors.Wrapf(godotenv.Load(dotenvFile), "dotenv file %s", dotenvFile)
}

func Execute() {
	if util.LogErr(loadDotenv(".env.local"), "error loading dotenv file") {
		os.Exit(1)
	}

	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
