package cmd

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Rorical/TextValidator/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "textvalidator",
	Short: "Clean, normalize and score text from your terminal",
	Long: `textvalidator is a terminal form for a text validation service.
Paste text, press ctrl+s, and read back the normalized text together with
its quality score. ctrl+y copies the result to the clipboard.`,
	Run: func(cmd *cobra.Command, args []string) {
		runApp()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func runApp() {
	cfg := loadConfig()

	logger, closer := newLogger()
	defer closer.Close()

	application, err := app.NewApplication(cfg, app.Options{
		Logger:      logger,
		MetricsAddr: viper.GetString("metrics-addr"),
	})
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer application.Stop()

	if err := application.Start(); err != nil {
		logger.Error("application error", "error", err)
		log.Printf("Application error: %v", err)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("endpoint", "", "validation service base URL (overrides the active profile)")
	flags.String("validator-profile", "", "profile name sent to the validation service")
	flags.String("clipboard", "", "clipboard backend: system or osc52")
	flags.String("log-file", "", "log file path (default ~/.textvalidator/textvalidator.log)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :2112")

	for _, name := range []string{"endpoint", "validator-profile", "clipboard", "log-file", "log-level", "metrics-addr"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	viper.SetEnvPrefix("TEXTVALIDATOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(serveMockCmd)
}
