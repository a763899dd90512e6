package dashboard

import (
	"errors"
	"fmt"
	"net/http"
)

// User is the session owner's profile as the dashboard reports it
type User struct {
	Id    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  string   `json:"role"`
	Types []string `json:"types"`
}

type CreateSessionV1Opts struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateSessionV1Output struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

func (c Client) CreateSessionV1(opts CreateSessionV1Opts) (*CreateSessionV1Output, error) {
	var output CreateSessionV1Output
	if err := c.do(request{
		Method: http.MethodPost,
		Path:   "/api/v1/session",
		Data:   opts,
		Output: &output,
	}); err != nil {
		if errors.Is(err, ErrorNotAuthenticated) {
			return nil, fmt.Errorf("%w: %s", ErrorLoginFailed, err)
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return &output, nil
}

func (c Client) GetSessionV1() (*User, error) {
	var user User
	if err := c.do(request{
		Method: http.MethodGet,
		Path:   "/api/v1/session",
		Output: &user,
	}); err != nil {
		return nil, fmt.Errorf("failed to retrieve session: %w", err)
	}
	return &user, nil
}

type DeleteSessionV1Output struct {
	IsSuccessful bool `json:"isSuccessful"`
}

func (c Client) DeleteSessionV1() (*DeleteSessionV1Output, error) {
	var output DeleteSessionV1Output
	if err := c.do(request{
		Method: http.MethodDelete,
		Path:   "/api/v1/session",
		Output: &output,
	}); err != nil {
		return nil, fmt.Errorf("failed to delete session: %w", err)
	}
	return &output, nil
}
