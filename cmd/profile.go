package cmd

import (
	"fmt"
	"log"
	"sort"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/TextValidator/internal/config"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage service profiles",
	Long:  `Manage profiles for different validation service endpoints and clipboard setups.`,
}

var listProfilesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		fmt.Printf("Active Profile: %s\n\n", cfg.ActiveProfile)
		fmt.Println("Available Profiles:")
		for _, name := range profileNames(cfg, "") {
			profile := cfg.Profiles[name]
			marker := ""
			if name == cfg.ActiveProfile {
				marker = " (active)"
			}
			fmt.Printf("  %s%s\n", name, marker)
			fmt.Printf("    Endpoint: %s\n", profile.Endpoint)
			if profile.ValidatorProfile != "" {
				fmt.Printf("    Validator Profile: %s\n", profile.ValidatorProfile)
			}
			fmt.Println()
		}
	},
}

var showProfileCmd = &cobra.Command{
	Use:   "show [profile-name]",
	Short: "Show profile details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		profileName := args[0]
		profile, exists := cfg.Profiles[profileName]
		if !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		fmt.Printf("Profile: %s\n", profileName)
		fmt.Printf("Endpoint: %s\n", profile.Endpoint)
		fmt.Printf("Validator Profile: %s\n", valueOr(profile.ValidatorProfile, "(service default)"))
		fmt.Printf("Clipboard: %s\n", valueOr(profile.Clipboard, config.DefaultClipboard))
		fmt.Printf("Copy Feedback: %dms\n", copyFeedbackMS(profile))
	},
}

var addProfileCmd = &cobra.Command{
	Use:   "add [profile-name]",
	Short: "Add a new profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		var profileName string
		if len(args) > 0 {
			profileName = args[0]
		} else {
			prompt := promptui.Prompt{
				Label: "Profile name",
			}
			profileName, err = prompt.Run()
			if err != nil {
				log.Fatalf("Prompt failed: %v", err)
			}
		}

		if _, exists := cfg.Profiles[profileName]; exists {
			log.Fatalf("Profile '%s' already exists", profileName)
		}

		profile, err := promptProfile(config.DefaultProfile())
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		cfg.Profiles[profileName] = profile
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' added successfully!\n", profileName)
	},
}

var editProfileCmd = &cobra.Command{
	Use:   "edit [profile-name]",
	Short: "Edit an existing profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		profileName := pickProfile(cfg, args, "Select profile to edit", "")
		profile, exists := cfg.Profiles[profileName]
		if !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		profile, err = promptProfile(profile)
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		cfg.Profiles[profileName] = profile
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' updated successfully!\n", profileName)
	},
}

var deleteProfileCmd = &cobra.Command{
	Use:   "delete [profile-name]",
	Short: "Delete a profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		profileName := pickProfile(cfg, args, "Select profile to delete", "")
		if _, exists := cfg.Profiles[profileName]; !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		confirmPrompt := promptui.Prompt{
			Label:     fmt.Sprintf("Delete profile '%s'? (y/N)", profileName),
			IsConfirm: true,
		}
		if _, err := confirmPrompt.Run(); err != nil {
			fmt.Println("Deletion cancelled")
			return
		}

		removeProfile(cfg, profileName)
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' deleted successfully!\n", profileName)
	},
}

var switchProfileCmd = &cobra.Command{
	Use:   "switch [profile-name]",
	Short: "Switch to a different profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		if len(args) == 0 && len(profileNames(cfg, cfg.ActiveProfile)) == 0 {
			fmt.Println("No other profiles available to switch to")
			return
		}

		profileName := pickProfile(cfg, args, "Select profile to switch to", cfg.ActiveProfile)
		if _, exists := cfg.Profiles[profileName]; !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		cfg.ActiveProfile = profileName
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Switched to profile '%s'\n", profileName)
	},
}

// profileNames returns the sorted profile names, leaving out exclude.
func profileNames(cfg *config.Config, exclude string) []string {
	names := make([]string, 0, len(cfg.Profiles))
	for name := range cfg.Profiles {
		if name != exclude {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// pickProfile takes the name from args or lets the user select one.
func pickProfile(cfg *config.Config, args []string, label, exclude string) string {
	if len(args) > 0 {
		return args[0]
	}

	names := profileNames(cfg, exclude)
	if len(names) == 0 {
		log.Fatalf("No profiles available")
	}

	prompt := promptui.Select{
		Label: label,
		Items: names,
	}
	_, name, err := prompt.Run()
	if err != nil {
		log.Fatalf("Selection failed: %v", err)
	}
	return name
}

// removeProfile deletes name and keeps ActiveProfile pointing at an
// existing profile, recreating "default" when the last one goes.
func removeProfile(cfg *config.Config, name string) {
	delete(cfg.Profiles, name)

	if cfg.ActiveProfile != name {
		return
	}
	if remaining := profileNames(cfg, ""); len(remaining) > 0 {
		cfg.ActiveProfile = remaining[0]
		return
	}
	cfg.ActiveProfile = "default"
	cfg.Profiles["default"] = config.DefaultProfile()
}

func promptProfile(current config.Profile) (config.Profile, error) {
	endpointPrompt := promptui.Prompt{
		Label:    "Endpoint",
		Default:  valueOr(current.Endpoint, config.DefaultEndpoint),
		Validate: validateEndpoint,
	}
	endpoint, err := endpointPrompt.Run()
	if err != nil {
		return current, err
	}

	validatorPrompt := promptui.Prompt{
		Label:   "Validator profile (optional)",
		Default: current.ValidatorProfile,
	}
	validatorProfile, err := validatorPrompt.Run()
	if err != nil {
		return current, err
	}

	backends := []string{"system", "osc52"}
	cursor := 0
	if current.Clipboard == "osc52" {
		cursor = 1
	}
	clipboardSelect := promptui.Select{
		Label:     "Clipboard backend",
		Items:     backends,
		CursorPos: cursor,
	}
	_, clipboardBackend, err := clipboardSelect.Run()
	if err != nil {
		return current, err
	}

	feedbackPrompt := promptui.Prompt{
		Label:    "Copy feedback (ms)",
		Default:  strconv.Itoa(copyFeedbackMS(current)),
		Validate: validatePositiveInt,
	}
	feedback, err := feedbackPrompt.Run()
	if err != nil {
		return current, err
	}
	feedbackMS, _ := strconv.Atoi(feedback)

	return config.Profile{
		Endpoint:         endpoint,
		ValidatorProfile: validatorProfile,
		Clipboard:        clipboardBackend,
		CopyFeedbackMS:   feedbackMS,
	}, nil
}

func copyFeedbackMS(p config.Profile) int {
	if p.CopyFeedbackMS > 0 {
		return p.CopyFeedbackMS
	}
	return int(config.DefaultCopyFeedback.Milliseconds())
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func init() {
	profileCmd.AddCommand(listProfilesCmd)
	profileCmd.AddCommand(showProfileCmd)
	profileCmd.AddCommand(addProfileCmd)
	profileCmd.AddCommand(editProfileCmd)
	profileCmd.AddCommand(deleteProfileCmd)
	profileCmd.AddCommand(switchProfileCmd)
}
