package records

import (
	"context"
	"fmt"
	"net/http"
)

func (c Client) ListAccountsV1(ctx context.Context) ([]Account, error) {
	var accounts []Account
	if err := c.do(ctx, request{
		Method: http.MethodGet,
		Path:   "/accounts",
		Output: &accounts,
	}); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (c Client) GetAccountV1(ctx context.Context, id int) (*Account, error) {
	var account Account
	if err := c.do(ctx, request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/accounts/%v", id),
		Output: &account,
	}); err != nil {
		return nil, err
	}
	return &account, nil
}

type CreateAccountV1Input struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Type          string `json:"type"`
	Authorization bool   `json:"authorizacion"`
}

func (c Client) CreateAccountV1(ctx context.Context, input CreateAccountV1Input) (*Account, error) {
	var account Account
	if err := c.do(ctx, request{
		Method: http.MethodPost,
		Path:   "/accounts",
		Data:   input,
		Output: &account,
	}); err != nil {
		return nil, err
	}
	return &account, nil
}

type UpdateAccountV1Input struct {
	Name          *string `json:"name,omitempty"`
	Email         *string `json:"email,omitempty"`
	Password      *string `json:"password,omitempty"`
	Type          *string `json:"type,omitempty"`
	Authorization *bool   `json:"authorizacion,omitempty"`
}

func (c Client) UpdateAccountV1(ctx context.Context, id int, input UpdateAccountV1Input) (*Account, error) {
	var account Account
	if err := c.do(ctx, request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/accounts/%v", id),
		Data:   input,
		Output: &account,
	}); err != nil {
		return nil, err
	}
	return &account, nil
}
