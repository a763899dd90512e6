package records

import (
	"context"
	"fmt"
	"net/http"
)

func (c Client) ListAuthorizationsV1(ctx context.Context) ([]Authorization, error) {
	var authorizations []Authorization
	if err := c.do(ctx, request{
		Method: http.MethodGet,
		Path:   "/authorizations",
		Output: &authorizations,
	}); err != nil {
		return nil, err
	}
	return authorizations, nil
}

type CreateAuthorizationV1Input struct {
	DocumentId int    `json:"documentId"`
	AccountId  int    `json:"accountId"`
	Type       string `json:"type"`
	Status     string `json:"status"`
}

func (c Client) CreateAuthorizationV1(ctx context.Context, input CreateAuthorizationV1Input) (*Authorization, error) {
	var authorization Authorization
	if err := c.do(ctx, request{
		Method: http.MethodPost,
		Path:   "/authorizations",
		Data:   input,
		Output: &authorization,
	}); err != nil {
		return nil, err
	}
	return &authorization, nil
}

type UpdateAuthorizationV1Input struct {
	Status   *string `json:"status,omitempty"`
	SignedAt *string `json:"signedAt,omitempty"`
}

func (c Client) UpdateAuthorizationV1(ctx context.Context, id int, input UpdateAuthorizationV1Input) (*Authorization, error) {
	var authorization Authorization
	if err := c.do(ctx, request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/authorizations/%v", id),
		Data:   input,
		Output: &authorization,
	}); err != nil {
		return nil, err
	}
	return &authorization, nil
}
