package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/Rorical/TextValidator/internal/config"
)

var useCmd = &cobra.Command{
	Use:   "use [profile-name]",
	Short: "Switch to a profile and start the form",
	Long:  `Switch to the specified profile and immediately start the validation form.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		profileName := args[0]

		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		if _, exists := cfg.Profiles[profileName]; !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		cfg.ActiveProfile = profileName
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		runApp()
	},
}

func init() {
	rootCmd.AddCommand(useCmd)
}
