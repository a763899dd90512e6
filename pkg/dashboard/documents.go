package dashboard

import (
	"fmt"
	"net/http"
)

type Document struct {
	Id        int    `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	Url       string `json:"url"`
	CreatedAt string `json:"createdAt"`
}

// ListDocumentsV1 lists the documents visible to the session's
// departments; the dashboard performs the filtering
func (c Client) ListDocumentsV1() ([]Document, error) {
	var documents []Document
	if err := c.do(request{
		Method: http.MethodGet,
		Path:   "/api/v1/documents",
		Output: &documents,
	}); err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return documents, nil
}
