package cli

import (
	"fmt"

	"github.com/rpribau/cm-admin-sub000/pkg/dashboard"
)

// RequireAuth loads the stored session token and checks it against the
// dashboard before a command that needs authentication runs. A token
// the dashboard no longer accepts is removed so the next attempt
// starts clean.
func RequireAuth(dashboardUrl string) (string, error) {
	sessionToken, _, err := dashboard.GetSessionToken()
	if err != nil {
		PrintWarning("You must be logged in to run this command")
		return "", ErrorNotAuthenticated
	}

	client, err := dashboard.NewClient(dashboard.NewClientOpts{
		DashboardUrl: dashboardUrl,
		BearerAuth: &dashboard.NewClientBearerAuthOpts{
			Token: sessionToken,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create a dashboard client: %w", err)
	}

	if _, err := client.GetSessionV1(); err != nil {
		if err := dashboard.DeleteSessionToken(); err != nil {
			PrintWarning("We failed to remove the stored session token, please remove it yourself")
		}
		PrintWarning("Please login again using `cmadmin login`")
		return "", ErrorNotAuthenticated
	}

	return sessionToken, nil
}
