package cli

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(signupCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(resetCmd)
	authCmd.AddCommand(statusCmd)

	signupCmd.Flags().StringP("email", "e", "", "Email address")
	signupCmd.Flags().StringP("name", "n", "", "Display name")

	loginCmd.Flags().StringP("email", "e", "", "Email address")
	loginCmd.Flags().StringP("password", "p", "", "Password (not recommended, use interactive prompt)")
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  `Manage the EcoCode account session used to store analysis history.`,
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an EcoCode account",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		name, _ := cmd.Flags().GetString("name")

		if email == "" {
			fmt.Print("Email: ")
			_, _ = fmt.Scanln(&email)
		}
		if email == "" {
			return fmt.Errorf("email is required")
		}
		if name == "" {
			fmt.Print("Display name: ")
			_, _ = fmt.Scanln(&name)
		}

		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := app.Gateway.SignUp(cmd.Context(), email, password, name); err != nil {
			app.Surface.Notify.Error("Sign up failed: %s", userFacing(err))
			return err
		}

		if app.Gateway.IsAuthenticated() {
			if err := saveProfileIdentity(activeProfileName(), app.Gateway.CurrentUserID(), app.Gateway.CurrentUserEmail()); err != nil {
				app.Logger.Warn("failed to record account on profile", "error", err)
			}
			app.Surface.Notify.Success("Account created, signed in as %s", app.Gateway.CurrentUserEmail())
		} else {
			app.Surface.Notify.Success("Account created. Check your email to confirm your address.")
		}
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to EcoCode",
	Long: `Authenticate with email and password.

This command will prompt for credentials if not provided via flags.
The session token is stored in the active profile for future use.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if email == "" {
			fmt.Print("Email: ")
			_, _ = fmt.Scanln(&email)
		}
		if email == "" {
			return fmt.Errorf("email is required")
		}
		if password == "" {
			var err error
			password, err = promptPassword("Password: ")
			if err != nil {
				return err
			}
		}
		if password == "" {
			return fmt.Errorf("password is required")
		}

		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := app.Gateway.SignIn(cmd.Context(), email, password); err != nil {
			app.Surface.Notify.Error("Sign in failed: %s", userFacing(err))
			return err
		}

		if err := saveProfileIdentity(activeProfileName(), app.Gateway.CurrentUserID(), app.Gateway.CurrentUserEmail()); err != nil {
			app.Logger.Warn("failed to record account on profile", "error", err)
		}
		app.Surface.Notify.Success("Signed in as %s", app.Gateway.CurrentUserEmail())
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := app.Gateway.SignOut(cmd.Context()); err != nil {
			return err
		}
		app.Surface.Notify.Success("Signed out")
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset [email]",
	Short: "Start password recovery",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var email string
		if len(args) > 0 {
			email = args[0]
		}
		if email == "" {
			fmt.Print("Email: ")
			_, _ = fmt.Scanln(&email)
		}
		if email == "" {
			return fmt.Errorf("email is required")
		}

		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := app.Gateway.ResetPassword(cmd.Context(), email); err != nil {
			app.Surface.Notify.Error("Password reset failed: %s", userFacing(err))
			return err
		}
		app.Surface.Notify.Success("Password reset email sent to %s", email)
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authentication status",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		if !app.Gateway.Enabled() {
			fmt.Println("Status: Auth not configured (set ECOCODE_SUPABASE_URL and ECOCODE_SUPABASE_ANON_KEY)")
			return nil
		}
		if !app.Gateway.IsAuthenticated() {
			fmt.Println("Status: Not signed in")
			return nil
		}

		fmt.Printf("Status: ✓ Signed in\n")
		fmt.Printf("Email: %s\n", app.Gateway.CurrentUserEmail())
		fmt.Printf("User ID: %s\n", app.Gateway.CurrentUserID())
		return nil
	},
}

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	bytePassword, err := term.ReadPassword(syscall.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	fmt.Println() // New line after password input
	return string(bytePassword), nil
}
