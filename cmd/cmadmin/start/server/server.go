package server

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rpribau/cm-admin-sub000/internal/auth"
	"github.com/rpribau/cm-admin-sub000/internal/cache"
	"github.com/rpribau/cm-admin-sub000/internal/cli"
	"github.com/rpribau/cm-admin-sub000/internal/common"
	"github.com/rpribau/cm-admin-sub000/internal/dashboard"
	"github.com/rpribau/cm-admin-sub000/internal/dashboard/models"
	"github.com/rpribau/cm-admin-sub000/internal/records"
)

var flags cli.Flags = cli.Flags{
	{
		Name:         "access-policy-path",
		DefaultValue: "",
		Usage:        "specifies a yaml file containing the route access policy, the built-in policy applies when unset",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "listen-addr",
		DefaultValue: "0.0.0.0:28000",
		Usage:        "specifies the listen address of the server",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "production",
		DefaultValue: false,
		Usage:        "marks the deployment as production, session cookies are only sent over https",
		Type:         cli.FlagTypeBool,
	},
	{
		Name:         "record-service-url",
		DefaultValue: "http://localhost:8000",
		Usage:        "specifies the url where the record service is accessible at",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "record-service-timeout",
		DefaultValue: records.DefaultRequestTimeout,
		Usage:        "specifies the timeout for calls to the record service",
		Type:         cli.FlagTypeDuration,
	},
	{
		Name:         "redis-addr",
		DefaultValue: "localhost:6379",
		Usage:        "defines the hostname (including port) of the redis server",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "redis-password",
		DefaultValue: "",
		Usage:        "defines the password used to login to redis",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "use-in-memory-cache",
		DefaultValue: false,
		Usage:        "uses an in-process cache instead of redis, suitable for local development only",
		Type:         cli.FlagTypeBool,
	},
	{
		Name:         "session-signing-token",
		DefaultValue: "",
		Usage:        "specifies the token used to sign session tokens, tokens are unsigned when this is empty",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "superuser-email",
		DefaultValue: models.DefaultSuperuserEmail,
		Usage:        "overrides the reserved superuser email",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "superuser-password",
		DefaultValue: models.DefaultSuperuserPassword,
		Usage:        "overrides the reserved superuser password",
		Type:         cli.FlagTypeString,
	},
}

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "server",
	Aliases: []string{"s"},
	Short:   "Starts the dashboard server",
	Long:    "Starts the dashboard server which authenticates users and proxies the record service for browser and CLI clients",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logrus.Debugf("starting logging engine...")
		serviceLogs := make(chan common.ServiceLog, 64)
		common.StartServiceLogLoop(serviceLogs)
		logrus.Debugf("started logging engine")

		var store cache.Cache
		if viper.GetBool("use-in-memory-cache") {
			logrus.Warnf("using an in-process cache, sessions will not survive a restart")
			store = cache.NewMemory()
		} else {
			logrus.Infof("establishing connection to cache...")
			redisStore, err := cache.NewRedis(cache.NewRedisOpts{
				Addr:        viper.GetString("redis-addr"),
				Password:    viper.GetString("redis-password"),
				ServiceLogs: serviceLogs,
			})
			if err != nil {
				return fmt.Errorf("failed to initialise redis cache: %w", err)
			}
			store = redisStore
			logrus.Debugf("established connection to cache")
		}

		logrus.Infof("initialising record service client...")
		recordsClient, err := records.NewClient(records.NewClientOpts{
			RecordServiceUrl: viper.GetString("record-service-url"),
			Timeout:          viper.GetDuration("record-service-timeout"),
			Id:               "cmadmin/server",
		})
		if err != nil {
			return fmt.Errorf("failed to initialise record service client: %w", err)
		}

		var sessionCodec auth.TokenCodec = auth.NewCodec()
		if signingToken := viper.GetString("session-signing-token"); signingToken != "" {
			logrus.Infof("session tokens will be signed")
			sessionCodec = auth.NewSignedCodec(signingToken)
		} else {
			logrus.Warnf("session tokens are unsigned, specify --session-signing-token to enable signing")
		}

		var policy *dashboard.Policy
		if policyPath := viper.GetString("access-policy-path"); policyPath != "" {
			logrus.Infof("loading access policy from path[%s]...", policyPath)
			policy, err = dashboard.LoadPolicy(policyPath)
			if err != nil {
				return fmt.Errorf("failed to load access policy: %w", err)
			}
		}

		logrus.Infof("initialising application...")
		recordServiceStatus := newReachabilityStatus()
		go func() {
			for {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				_, err := recordsClient.ListDocumentsV1(ctx)
				cancel()
				ok := !records.IsUnavailable(err)
				if recordServiceStatus.Set(ok) {
					logAtLevel := logrus.Infof
					if !ok {
						logAtLevel = logrus.Warnf
					}
					logAtLevel("record service reachability switched to '%v'", ok)
				}
				<-time.After(15 * time.Second)
			}
		}()

		handler, err := dashboard.GetHttpApplication(dashboard.HttpApplicationOpts{
			AccessPolicy: policy,
			Cache:        store,
			Records:      recordsClient,
			SessionCodec: sessionCodec,
			Superuser: models.SuperuserCredentials{
				Email:    viper.GetString("superuser-email"),
				Password: viper.GetString("superuser-password"),
			},
			IsProduction: viper.GetBool("production"),
			ReadinessChecks: []func() error{
				func() error {
					if !recordServiceStatus.IsOk() {
						return fmt.Errorf("record service is pending restoration")
					}
					return nil
				},
			},
			LivenessChecks: []func() error{
				func() error {
					if recordServiceStatus.IsDownFor(5 * time.Minute) {
						return fmt.Errorf("record service has been unreachable for too long")
					}
					return nil
				},
			},
			ServiceLogs: serviceLogs,
		})
		if err != nil {
			return fmt.Errorf("failed to initialise application: %w", err)
		}
		logrus.Debugf("initialised application")

		httpServerDone := make(chan common.Done)
		server, err := common.NewHttpServer(common.NewHttpServerOpts{
			Addr:        viper.GetString("listen-addr"),
			Done:        httpServerDone,
			Handler:     handler,
			ServiceLogs: serviceLogs,
		})
		if err != nil {
			return fmt.Errorf("failed to create new http server: %w", err)
		}
		logrus.Infof("starting server...")
		if err := server.Start(); err != nil {
			return fmt.Errorf("failed to start http server: %w", err)
		}
		return nil
	},
}
