package records

import (
	"context"
	"net/http"
)

func (c Client) ListLinksV1(ctx context.Context) ([]Link, error) {
	var links []Link
	if err := c.do(ctx, request{
		Method: http.MethodGet,
		Path:   "/links",
		Output: &links,
	}); err != nil {
		return nil, err
	}
	return links, nil
}

type CreateLinkV1Input struct {
	DocumentId int    `json:"documentId"`
	Url        string `json:"url"`
	ExpiresAt  string `json:"expiresAt,omitempty"`
}

func (c Client) CreateLinkV1(ctx context.Context, input CreateLinkV1Input) (*Link, error) {
	var link Link
	if err := c.do(ctx, request{
		Method: http.MethodPost,
		Path:   "/links",
		Data:   input,
		Output: &link,
	}); err != nil {
		return nil, err
	}
	return &link, nil
}
