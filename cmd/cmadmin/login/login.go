package login

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/rpribau/cm-admin-sub000/internal/cli"
	"github.com/rpribau/cm-admin-sub000/internal/validate"
	"github.com/rpribau/cm-admin-sub000/pkg/dashboard"
)

var flags cli.Flags = cli.Flags{
	{
		Name:         "dashboard-url",
		DefaultValue: "http://localhost:28000",
		Usage:        "Defines the url where the dashboard service is accessible at",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "email",
		DefaultValue: "",
		Usage:        "the email address of your account",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "password",
		DefaultValue: "",
		Usage:        "the password for your account, prompted for when unset",
		Type:         cli.FlagTypeString,
	},
}

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:   "login",
	Short: "Login to the dashboard",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, _, err := dashboard.GetSessionToken(); err == nil {
			return fmt.Errorf("looks like you're already logged in, run `cmadmin logout` first before running this command")
		}

		email := viper.GetString("email")
		password := viper.GetString("password")
		if password != "" {
			cli.PrintWarning("Using a password directly on the command line isn't generally recommended\n" +
				"since anyone can see it using the `history` command. Run `history -c` to\n" +
				"remove this from this shell if this is a shared shell")
		}

		if email == "" {
			value, err := cli.PromptText(os.Stdout, os.Stdin, "Email")
			if err != nil {
				if errors.Is(err, cli.ErrorUserCancelled) {
					cli.PrintHint("Login cancelled")
					return cli.ErrorUserCancelled
				}
				return fmt.Errorf("failed to read email: %s", err)
			}
			email = value
		}
		if err := validate.Email(email); err != nil {
			cli.PrintWarning(fmt.Sprintf("The provided email (%s) was not valid", email))
			return cli.ErrorInvalidInput
		}
		if password == "" {
			fmt.Print("Password: ")
			passwordData, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Println()
			if err != nil {
				return fmt.Errorf("failed to read password: %s", err)
			}
			password = string(passwordData)
		}

		client, err := dashboard.NewClient(dashboard.NewClientOpts{
			DashboardUrl: viper.GetString("dashboard-url"),
			Id:           "cmadmin/login",
		})
		if err != nil {
			return fmt.Errorf("failed to create a dashboard client: %w", err)
		}
		output, err := client.CreateSessionV1(dashboard.CreateSessionV1Opts{
			Email:    email,
			Password: password,
		})
		if err != nil {
			if errors.Is(err, dashboard.ErrorLoginFailed) {
				cli.PrintError("The email or password provided was not correct")
				return cli.ErrorAuthError
			}
			return fmt.Errorf("failed to login: %w", err)
		}

		if _, err := dashboard.SaveSessionToken(output.Token); err != nil {
			return fmt.Errorf("failed to store the session token: %w", err)
		}
		cli.PrintSuccess(fmt.Sprintf("Welcome back, %s (%s)", output.User.Name, output.User.Role))
		return nil
	},
}
