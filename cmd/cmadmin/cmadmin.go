package cmadmin

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rpribau/cm-admin-sub000/cmd/cmadmin/get"
	"github.com/rpribau/cm-admin-sub000/cmd/cmadmin/login"
	"github.com/rpribau/cm-admin-sub000/cmd/cmadmin/logout"
	"github.com/rpribau/cm-admin-sub000/cmd/cmadmin/start"
	"github.com/rpribau/cm-admin-sub000/internal/cli"
	"github.com/rpribau/cm-admin-sub000/internal/common"
)

var availableLogLevels = []string{
	string(common.LogLevelTrace),
	string(common.LogLevelDebug),
	string(common.LogLevelInfo),
	string(common.LogLevelWarn),
	string(common.LogLevelError),
}

var persistentFlags cli.Flags = cli.Flags{
	{
		Name:         "log-level",
		Short:        'l',
		DefaultValue: "info",
		Usage:        fmt.Sprintf("Sets the log level (one of [%s])", strings.Join(availableLogLevels, ", ")),
		Type:         cli.FlagTypeString,
	},
}

func init() {
	Command.AddCommand(get.Command)
	Command.AddCommand(login.Command)
	Command.AddCommand(logout.Command)
	Command.AddCommand(start.Command)
	Command.SilenceErrors = true
	Command.SilenceUsage = true

	persistentFlags.AddToCommand(Command, true)

	logrus.SetOutput(os.Stderr)
	cobra.OnInitialize(func() {
		persistentFlags.BindViper(Command, true)
		cli.InitLogging(viper.GetString("log-level"))
	})

	cli.InitConfig()
}

var Command = &cobra.Command{
	Use:   "cmadmin",
	Short: "Administration dashboard for the case management system",
	Long:  "Administration dashboard for the case management system: serves the authenticated dashboard and proxies the record service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
