package records

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultRequestTimeout bounds every call to the record service; a call
// that does not answer within it fails as ErrorServiceUnavailable
const DefaultRequestTimeout = 15 * time.Second

type NewClientOpts struct {
	// RecordServiceUrl is the URL where the record service is
	// accessible at
	RecordServiceUrl string

	// Id will be included in the user-agent for identification
	Id string

	// Timeout overrides DefaultRequestTimeout when positive
	Timeout time.Duration
}

func NewClient(opts NewClientOpts) (*Client, error) {
	serviceUrl, err := url.Parse(opts.RecordServiceUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse provided recordServiceUrl[%s]: %s", opts.RecordServiceUrl, err)
	}
	if serviceUrl.Scheme == "" {
		return nil, fmt.Errorf("failed to determine url scheme of recordServiceUrl[%s]", opts.RecordServiceUrl)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &Client{
		RecordServiceUrl: serviceUrl,
		HttpClient:       &http.Client{Timeout: timeout},
		Id:               opts.Id,
	}, nil
}

type Client struct {
	// RecordServiceUrl is the URL where the record service is
	// accessible at
	RecordServiceUrl *url.URL

	// HttpClient is the HTTP client
	HttpClient *http.Client

	// Id will be included in the user-agent for identification
	Id string
}

type request struct {
	Method string
	Path   string
	Data   any
	Output any
}

func (c Client) do(ctx context.Context, req request) error {
	serviceUrl := *c.RecordServiceUrl
	serviceUrl.Path = req.Path

	var requestBody io.Reader
	if req.Data != nil {
		requestBodyData, err := json.Marshal(req.Data)
		if err != nil {
			return fmt.Errorf("failed to marshal data: %s", err)
		}
		requestBody = bytes.NewBuffer(requestBodyData)
	}
	httpRequest, err := http.NewRequestWithContext(ctx, req.Method, serviceUrl.String(), requestBody)
	if err != nil {
		return fmt.Errorf("failed to create http request to the record service: %s", err)
	}
	httpRequest.Header.Add("Content-Type", "application/json")
	httpRequest.Header.Add("User-Agent", fmt.Sprintf("cm-admin/records-client-%s", c.Id))

	httpResponse, err := c.HttpClient.Do(httpRequest)
	if err != nil {
		// connection refusals, dns failures and timeouts all count as
		// the service being unavailable; callers render these apart
		// from credential failures
		return fmt.Errorf("failed to execute http request to %s %s: %s: %w", req.Method, req.Path, err, ErrorServiceUnavailable)
	}
	defer httpResponse.Body.Close()

	responseBody, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %s: %w", err, ErrorServiceUnavailable)
	}
	switch {
	case httpResponse.StatusCode == http.StatusNotFound:
		return fmt.Errorf("failed to find the requested record: %w", ErrorNotFound)
	case httpResponse.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("failed to receive a successful response (status code: %v): %w", httpResponse.StatusCode, ErrorServiceUnavailable)
	case httpResponse.StatusCode < http.StatusOK || httpResponse.StatusCode >= http.StatusMultipleChoices:
		return fmt.Errorf("failed to receive a successful response (status code: %v): %w", httpResponse.StatusCode, ErrorUnsuccessfulResponse)
	}
	if req.Output != nil {
		if err := json.Unmarshal(responseBody, req.Output); err != nil {
			return fmt.Errorf("failed to parse response from the record service: %s: %w", err, ErrorUnsuccessfulResponse)
		}
	}
	return nil
}

// IsUnavailable reports whether an error from this client means the
// record service could not be reached
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrorServiceUnavailable)
}
