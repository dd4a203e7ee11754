package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:           "usertiming",
	Short:         "Resolve user timing measure entries",
	Long:          `usertiming replays recorded marks and measure calls and prints resolved measure entries.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.usertiming/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every resolved entry")
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	home, _ := os.UserHomeDir()

	if err := loadConfig(viper.GetViper(), cfgFile, home); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
	}
}

// loadConfig reads explicit config path, or config.yaml from
// <home>/.usertiming when path is empty. Missing default config is not an error.
func loadConfig(v *viper.Viper, path string, home string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if home != "" {
			v.AddConfigPath(filepath.Join(home, ".usertiming"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("usertiming")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
			return nil
		}

		return err
	}

	return nil
}

func newLogger() (*zap.Logger, error) {
	if verbose || viper.GetBool("verbose") {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

	return cfg.Build()
}
