package dashboard

import (
	"fmt"
	"net/http"
)

// Account mirrors the dashboard's account view; the record service's
// password field is never included
type Account struct {
	Id            int    `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Type          string `json:"type"`
	Authorization bool   `json:"authorizacion"`
}

func (c Client) ListAccountsV1() ([]Account, error) {
	var accounts []Account
	if err := c.do(request{
		Method: http.MethodGet,
		Path:   "/api/v1/accounts",
		Output: &accounts,
	}); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}
