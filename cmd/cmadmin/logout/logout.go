package logout

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rpribau/cm-admin-sub000/internal/cli"
	"github.com/rpribau/cm-admin-sub000/pkg/dashboard"
)

var flags cli.Flags = cli.Flags{
	{
		Name:         "dashboard-url",
		DefaultValue: "http://localhost:28000",
		Usage:        "defines the url where the dashboard service is accessible at",
		Type:         cli.FlagTypeString,
	},
}

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:   "logout",
	Short: "Logs out of the dashboard from your terminal",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionToken, sessionFilePath, err := dashboard.GetSessionToken()
		if err != nil {
			return fmt.Errorf("failed to get a session token: %s", err)
		}

		client, err := dashboard.NewClient(dashboard.NewClientOpts{
			DashboardUrl: viper.GetString("dashboard-url"),
			BearerAuth: &dashboard.NewClientBearerAuthOpts{
				Token: sessionToken,
			},
			Id: "cmadmin/logout",
		})
		if err != nil {
			return fmt.Errorf("failed to create a dashboard client: %s", err)
		}
		if _, err := client.DeleteSessionV1(); err != nil {
			if dashboard.IsAuthError(err) {
				logrus.Infof("existing session was invalid, please login again")
			} else {
				return fmt.Errorf("failed to delete session: %s", err)
			}
		}

		if err := dashboard.DeleteSessionToken(); err != nil {
			return fmt.Errorf("failed to remove file at path[%s], please do it yourself: %s", sessionFilePath, err)
		}

		cli.PrintSuccess("Your session is now closed, see you again")
		return nil
	},
}
