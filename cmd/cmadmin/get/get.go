package get

import (
	"github.com/spf13/cobra"

	"github.com/rpribau/cm-admin-sub000/cmd/cmadmin/get/accounts"
	"github.com/rpribau/cm-admin-sub000/cmd/cmadmin/get/documents"
)

func init() {
	Command.AddCommand(accounts.Command)
	Command.AddCommand(documents.Command)
}

var Command = &cobra.Command{
	Use:     "get",
	Aliases: []string{"g"},
	Short:   "Retrieves resources from the dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
