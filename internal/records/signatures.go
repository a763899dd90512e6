package records

import (
	"context"
	"net/http"
)

func (c Client) ListSignatureKeysV1(ctx context.Context) ([]SignatureKey, error) {
	var keys []SignatureKey
	if err := c.do(ctx, request{
		Method: http.MethodGet,
		Path:   "/signature-keys",
		Output: &keys,
	}); err != nil {
		return nil, err
	}
	return keys, nil
}

type CreateSignatureKeyV1Input struct {
	SignerName string `json:"signerName"`
}

// CreateSignatureKeyV1 asks the record service to generate a key pair
// for the named signer; generation and signing happen entirely on the
// record service's side
func (c Client) CreateSignatureKeyV1(ctx context.Context, input CreateSignatureKeyV1Input) (*SignatureKey, error) {
	var key SignatureKey
	if err := c.do(ctx, request{
		Method: http.MethodPost,
		Path:   "/signature-keys",
		Data:   input,
		Output: &key,
	}); err != nil {
		return nil, err
	}
	return &key, nil
}
