package dashboard

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rpribau/cm-admin-sub000/internal/common"
)

type NewClientOpts struct {
	// DashboardUrl is the URL where the admin dashboard service is
	// accessible at
	DashboardUrl string
	BasicAuth    *NewClientBasicAuthOpts
	BearerAuth   *NewClientBearerAuthOpts

	// Id will be included in the user-agent for identification
	Id string
}

type NewClientBasicAuthOpts struct {
	Username string
	Password string
}

type NewClientBearerAuthOpts struct {
	Token string
}

func NewClient(opts NewClientOpts) (*Client, error) {
	dashboardUrl, err := url.Parse(opts.DashboardUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse provided dashboardUrl[%s]: %s", opts.DashboardUrl, err)
	}
	if dashboardUrl.Scheme == "" {
		return nil, fmt.Errorf("failed to determine url scheme of dashboardUrl[%s]", opts.DashboardUrl)
	}
	return &Client{
		DashboardUrl: dashboardUrl,
		BasicAuth:    opts.BasicAuth,
		BearerAuth:   opts.BearerAuth,
		HttpClient:   &http.Client{},
		Id:           opts.Id,
	}, nil
}

type Client struct {
	DashboardUrl *url.URL
	BasicAuth    *NewClientBasicAuthOpts
	BearerAuth   *NewClientBearerAuthOpts
	HttpClient   *http.Client
	Id           string
}

type request struct {
	Method string
	Path   string
	Data   any

	// Output receives the unmarshalled `data` field of the response
	// envelope when the request succeeds
	Output any
}

func (c Client) do(req request) error {
	endpointUrl := *c.DashboardUrl
	endpointUrl.Path = req.Path

	var requestBody io.Reader
	if req.Data != nil {
		requestBodyData, err := json.Marshal(req.Data)
		if err != nil {
			return fmt.Errorf("failed to marshal request data: %s", err)
		}
		requestBody = bytes.NewBuffer(requestBodyData)
	}
	httpRequest, err := http.NewRequest(req.Method, endpointUrl.String(), requestBody)
	if err != nil {
		return fmt.Errorf("failed to create http request: %s", err)
	}
	httpRequest.Header.Add("Content-Type", "application/json")
	httpRequest.Header.Add("User-Agent", fmt.Sprintf("cmadmin/dashboard-sdk/client-%s", c.Id))
	if c.BasicAuth != nil {
		httpRequest.SetBasicAuth(c.BasicAuth.Username, c.BasicAuth.Password)
	}
	if c.BearerAuth != nil {
		httpRequest.Header.Add("Authorization", fmt.Sprintf("Bearer %s", c.BearerAuth.Token))
	}

	httpResponse, err := c.HttpClient.Do(httpRequest)
	if err != nil {
		if strings.Contains(err.Error(), "connection refused") {
			return fmt.Errorf("%w: %s", ErrorConnectionRefused, err)
		}
		return fmt.Errorf("failed to execute http request: %s", err)
	}
	defer httpResponse.Body.Close()
	responseBody, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %s", err)
	}

	var response common.HttpResponse
	if err := json.Unmarshal(responseBody, &response); err != nil {
		return fmt.Errorf("failed to parse response from dashboard service: %s", err)
	}
	switch httpResponse.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrorNotAuthenticated, response.Message)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrorNotAuthorized, response.Message)
	default:
		return fmt.Errorf("failed to receive a successful response (status code: %v): %s", httpResponse.StatusCode, response.Message)
	}

	if req.Output != nil {
		responseData, err := json.Marshal(response.Data)
		if err != nil {
			return fmt.Errorf("failed to parse response data from dashboard service: %s", err)
		}
		if err := json.Unmarshal(responseData, req.Output); err != nil {
			return fmt.Errorf("failed to parse response data from dashboard service: %s", err)
		}
	}
	return nil
}

// IsAuthError returns true when the error indicates the caller's
// session is missing or insufficient rather than a transport problem
func IsAuthError(err error) bool {
	return errors.Is(err, ErrorNotAuthenticated) || errors.Is(err, ErrorNotAuthorized)
}
