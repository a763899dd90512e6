package dashboard

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rpribau/cm-admin-sub000/internal/auth"
	"github.com/rpribau/cm-admin-sub000/internal/cache"
	"github.com/rpribau/cm-admin-sub000/internal/common"
	"github.com/rpribau/cm-admin-sub000/internal/dashboard/models"
	"github.com/rpribau/cm-admin-sub000/internal/records"
)

type HttpApplicationOpts struct {
	// AccessPolicy drives the route guard; when nil the built-in
	// default policy applies
	AccessPolicy *Policy

	// Cache backs the account-list cache and the logout denylist
	Cache cache.Cache

	// Records provides the connection to the external record service
	Records *records.Client

	// SessionCodec converts sessions to and from transport tokens
	SessionCodec auth.TokenCodec

	// Superuser overrides the reserved superuser credentials; zero
	// values keep the defaults
	Superuser models.SuperuserCredentials

	// IsProduction marks the auth cookie Secure
	IsProduction bool

	// LivenessChecks are sequentially executed when the liveness probe endpoint is hit
	LivenessChecks []func() error

	// ReadinessChecks are sequentially executed when the readiness probe endpoint is hit
	ReadinessChecks []func() error

	// ServiceLogs is a centralised channel where logs get sent to
	ServiceLogs chan<- common.ServiceLog
}

func (o HttpApplicationOpts) Validate() error {
	errs := []error{}
	if o.Cache == nil {
		errs = append(errs, fmt.Errorf("failed to receive a cache: %w", ErrorMissingCache))
	}
	if o.Records == nil {
		errs = append(errs, fmt.Errorf("failed to receive a record service client: %w", ErrorMissingRecordsClient))
	}
	if o.SessionCodec == nil {
		errs = append(errs, fmt.Errorf("failed to receive a session codec: %w", ErrorMissingSessionCodec))
	}
	if o.ServiceLogs == nil {
		errs = append(errs, fmt.Errorf("failed to receive a service log: %w", ErrorMissingServiceLog))
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// httpApplication holds the application's dependencies explicitly; no
// package-level auth state exists
type httpApplication struct {
	cache        cache.Cache
	records      *records.Client
	sessionCodec auth.TokenCodec
	superuser    models.SuperuserCredentials
	policy       *Policy
	isProduction bool
	serviceLogs  chan<- common.ServiceLog
}

func GetHttpApplication(opts HttpApplicationOpts) (http.Handler, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("failed to initialise http application: %w", err)
	}
	policy := opts.AccessPolicy
	if policy == nil {
		policy = GetDefaultPolicy()
	}
	app := &httpApplication{
		cache:        opts.Cache,
		records:      opts.Records,
		sessionCodec: opts.SessionCodec,
		superuser:    opts.Superuser,
		policy:       policy,
		isProduction: opts.IsProduction,
		serviceLogs:  opts.ServiceLogs,
	}

	handler := mux.NewRouter()
	handler.NotFoundHandler = common.GetNotFoundHandler()
	common.RegisterCommonHttpEndpoints(common.CommonHttpEndpointsOpts{
		Router:          handler,
		ServiceLogs:     opts.ServiceLogs,
		LivenessChecks:  opts.LivenessChecks,
		ReadinessChecks: opts.ReadinessChecks,
	})

	sessionRoutes := handler.PathPrefix("/api/v1/session").Subrouter()
	sessionRoutes.HandleFunc("", app.handleCreateSessionV1).Methods(http.MethodPost)
	sessionRoutes.HandleFunc("", app.handleGetSessionV1).Methods(http.MethodGet)
	sessionRoutes.HandleFunc("", app.handleDeleteSessionV1).Methods(http.MethodDelete)

	api := handler.PathPrefix("/api").Subrouter()
	api.Use(app.getRouteGuard())
	app.registerDocumentRoutes(api)
	app.registerAccountRoutes(api)
	app.registerAuthorizationRoutes(api)
	app.registerLinkRoutes(api)
	app.registerSignatureKeyRoutes(api)

	pages := handler.PathPrefix("/").Subrouter()
	pages.Use(app.getRouteGuard())
	pages.HandleFunc(policy.LoginPath, app.handleLoginView).Methods(http.MethodGet)
	pages.HandleFunc(policy.DefaultLanding, app.handleLandingView).Methods(http.MethodGet)

	return handler, nil
}

// sendRecordServiceError maps record service failures to the right
// status: 404 for missing records, 500 when the service is unreachable
func (a *httpApplication) sendRecordServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	log := common.GetRequestLogger(r)
	log(common.LogLevelError, fmt.Sprintf("%s: %s", message, err))
	switch {
	case errors.Is(err, records.ErrorNotFound):
		common.SendHttpFailResponse(w, r, http.StatusNotFound, message, records.ErrorNotFound)
	case records.IsUnavailable(err):
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to reach the record service", ErrorServiceUnavailable)
	default:
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, message, ErrorServiceUnavailable)
	}
}
