package records

import (
	"context"
	"fmt"
	"net/http"
)

func (c Client) ListDocumentsV1(ctx context.Context) ([]Document, error) {
	var documents []Document
	if err := c.do(ctx, request{
		Method: http.MethodGet,
		Path:   "/documents",
		Output: &documents,
	}); err != nil {
		return nil, err
	}
	return documents, nil
}

func (c Client) GetDocumentV1(ctx context.Context, id int) (*Document, error) {
	var document Document
	if err := c.do(ctx, request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/documents/%v", id),
		Output: &document,
	}); err != nil {
		return nil, err
	}
	return &document, nil
}

type CreateDocumentV1Input struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Status string `json:"status"`
	Url    string `json:"url"`
}

func (c Client) CreateDocumentV1(ctx context.Context, input CreateDocumentV1Input) (*Document, error) {
	var document Document
	if err := c.do(ctx, request{
		Method: http.MethodPost,
		Path:   "/documents",
		Data:   input,
		Output: &document,
	}); err != nil {
		return nil, err
	}
	return &document, nil
}

type UpdateDocumentV1Input struct {
	Name   *string `json:"name,omitempty"`
	Status *string `json:"status,omitempty"`
	Url    *string `json:"url,omitempty"`
}

func (c Client) UpdateDocumentV1(ctx context.Context, id int, input UpdateDocumentV1Input) (*Document, error) {
	var document Document
	if err := c.do(ctx, request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/documents/%v", id),
		Data:   input,
		Output: &document,
	}); err != nil {
		return nil, err
	}
	return &document, nil
}
