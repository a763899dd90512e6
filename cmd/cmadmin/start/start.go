package start

import (
	"github.com/spf13/cobra"

	"github.com/rpribau/cm-admin-sub000/cmd/cmadmin/start/server"
)

func init() {
	Command.AddCommand(server.Command)
}

var Command = &cobra.Command{
	Use:     "start",
	Aliases: []string{"st"},
	Short:   "Starts one of the dashboard's services",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
