package documents

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
	Use:     "documents",
	Aliases: []string{"d"},
	Short:   "Retrieves documents visible to your session's departments",
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
			Id: "cmadmin/get-documents",
		})
		if err != nil {
			return fmt.Errorf("failed to create a dashboard client: %s", err)
		}

		documents, err := client.ListDocumentsV1()
		if err != nil {
			return fmt.Errorf("failed to retrieve documents: %s", err)
		}

		if viper.GetString("output") == "json" {
			o, _ := json.MarshalIndent(documents, "", "  ")
			fmt.Println(string(o))
			return nil
		}
		table := cli.NewTable(cli.NewTableOpts{
			Headers: []string{"id", "name", "type", "status", "created at"},
		})
		for _, document := range documents {
			table.AddRow(document.Id, document.Name, document.Type, document.Status, document.CreatedAt)
		}
		fmt.Println(table.GetString())
		return nil
	},
}
