package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	authCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileCreateCmd)
	profileCmd.AddCommand(profileDeleteCmd)
	profileCmd.AddCommand(profileSelectCmd)
	profileCmd.AddCommand(profileShowCmd)

	profileCreateCmd.Flags().String("api-url", "", "analysis API base URL for this profile")
	_ = profileCreateCmd.MarkFlagRequired("api-url")
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage configuration profiles",
	Long:  `Manage multiple configuration profiles for different backend environments.`,
}

var profileListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List all profiles",
	Long:    `List all configured profiles.`,
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := ListProfiles()
		if err != nil {
			return fmt.Errorf("failed to list profiles: %w", err)
		}

		if len(profiles) == 0 {
			fmt.Println("No profiles configured")
			return nil
		}

		config, err := LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		fmt.Println("Available profiles:")
		for _, profile := range profiles {
			prefix := "  "
			if profile.Name == config.DefaultProfile {
				prefix = "* "
			}

			fmt.Printf("%s%s\n", prefix, profile.Name)
			if profile.APIURL != "" {
				fmt.Printf("    API: %s\n", profile.APIURL)
			}
			if profile.Email != "" {
				fmt.Printf("    Account: %s\n", profile.Email)
			}
		}

		return nil
	},
}

var profileCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new profile",
	Long:  `Create a configuration profile pointing at a backend environment.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileName := args[0]
		profileAPIURL, _ := cmd.Flags().GetString("api-url")

		if err := AddProfile(Profile{Name: profileName, APIURL: profileAPIURL}); err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}

		fmt.Printf("✓ Profile '%s' created\n", profileName)
		return nil
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:     "delete [name]",
	Short:   "Delete a profile",
	Long:    `Delete a configuration profile.`,
	Aliases: []string{"remove", "rm"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileName := args[0]

		if err := RemoveProfile(profileName); err != nil {
			return fmt.Errorf("failed to delete profile: %w", err)
		}

		fmt.Printf("✓ Profile '%s' deleted\n", profileName)
		return nil
	},
}

var profileSelectCmd = &cobra.Command{
	Use:     "select [name]",
	Short:   "Select a profile as default",
	Long:    `Set the specified profile as the default for all commands.`,
	Aliases: []string{"switch", "use"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileName := args[0]

		if err := SetCurrentProfile(profileName); err != nil {
			return fmt.Errorf("failed to select profile: %w", err)
		}

		fmt.Printf("✓ Profile '%s' selected as default\n", profileName)
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show profile details",
	Long:  `Display detailed information about a profile.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var profileName string
		if len(args) > 0 {
			profileName = args[0]
		}

		var profile *Profile
		if profileName == "" {
			current, err := GetCurrentProfile()
			if err != nil {
				return fmt.Errorf("failed to get current profile: %w", err)
			}
			profile = current
		} else {
			config, err := LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			p, exists := config.Profiles[profileName]
			if !exists {
				return fmt.Errorf("profile '%s' not found", profileName)
			}
			profile = &p
		}

		fmt.Printf("Profile: %s\n", profile.Name)
		fmt.Printf("API: %s\n", profile.APIURL)
		if profile.Email != "" {
			fmt.Printf("Account: %s (%s)\n", profile.Email, profile.UserID)
		}
		if profile.AccessToken != "" {
			fmt.Printf("Token: %s\n", maskToken(profile.AccessToken))
		} else {
			fmt.Printf("Token: Not set\n")
		}

		return nil
	},
}

// maskToken keeps the token's edges visible for identification and hides the
// rest.
func maskToken(token string) string {
	if len(token) <= 16 {
		return strings.Repeat("*", len(token))
	}
	return token[:8] + strings.Repeat("*", len(token)-16) + token[len(token)-8:]
}
