package accounts

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rpribau/cm-admin-sub000/internal/cli"
	"github.com/rpribau/cm-admin-sub000/pkg/dashboard"
)

var flags cli.Flags = cli.Flags{
	{
		Name:         "dashboard-url",
		Short:        'u',
		DefaultValue: "http://localhost:28000",
		Usage:        "defines the url where the dashboard service is accessible at",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "output",
		Short:        'o',
		DefaultValue: "text",
		Usage:        "sets the output format (one of [text, json])",
		Type:         cli.FlagTypeString,
	},
}

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "accounts",
	Aliases: []string{"a"},
	Short:   "Retrieves accounts from the dashboard, requires a superuser session",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dashboardUrl := viper.GetString("dashboard-url")
		sessionToken, err := cli.RequireAuth(dashboardUrl)
		if err != nil {
			return err
		}

		client, err := dashboard.NewClient(dashboard.NewClientOpts{
			DashboardUrl: dashboardUrl,
			BearerAuth: &dashboard.NewClientBearerAuthOpts{
				Token: sessionToken,
			},
			Id: "cmadmin/get-accounts",
		})
		if err != nil {
			return fmt.Errorf("failed to create a dashboard client: %s", err)
		}

		accounts, err := client.ListAccountsV1()
		if err != nil {
			if dashboard.IsAuthError(err) {
				cli.PrintWarning("Your session does not allow listing accounts")
				return cli.ErrorAuthError
			}
			return fmt.Errorf("failed to retrieve accounts: %s", err)
		}

		if viper.GetString("output") == "json" {
			o, _ := json.MarshalIndent(accounts, "", "  ")
			fmt.Println(string(o))
			return nil
		}
		table := cli.NewTable(cli.NewTableOpts{
			Headers: []string{"id", "name", "email", "type", "authorised"},
		})
		for _, account := range accounts {
			table.AddRow(account.Id, account.Name, account.Email, account.Type, account.Authorization)
		}
		fmt.Println(table.GetString())
		return nil
	},
}
