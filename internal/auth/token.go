package auth

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
)

// SessionValidity is the fixed validity window of a transport token
const SessionValidity = 7 * 24 * time.Hour

// TokenCodec converts sessions to and from their opaque transport form.
// Both directions are pure functions with no I/O.
type TokenCodec interface {
	Encode(session Session) (string, error)
	Decode(token string) (*Session, error)
}

// tokenPayload is the wire shape of the baseline token: exactly the six
// session fields, issuedAt as unix seconds
type tokenPayload struct {
	UserId   string   `json:"userId"`
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Role     string   `json:"role"`
	Types    []string `json:"types,omitempty"`
	IssuedAt int64    `json:"issuedAt"`
}

// Codec is the baseline codec: base64url over the JSON payload. It is
// reversible and deterministic but carries no integrity protection;
// deployments wanting tamper resistance use SignedCodec instead.
type Codec struct{}

func NewCodec() Codec {
	return Codec{}
}

func (c Codec) Encode(session Session) (string, error) {
	payload := tokenPayload{
		UserId:   session.UserId,
		Email:    session.Email,
		Name:     session.Name,
		Role:     string(session.Role),
		Types:    session.Types,
		IssuedAt: session.IssuedAt.Unix(),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %s", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

func (c Codec) Decode(token string) (*Session, error) {
	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", ErrorMalformedToken)
	}
	var payload tokenPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse token payload: %w", ErrorMalformedToken)
	}
	return sessionFromFields(payload.UserId, payload.Email, payload.Name, payload.Role, payload.Types, time.Unix(payload.IssuedAt, 0))
}

// sessionFromFields validates the decoded fields shared by both codecs:
// userId, email, name and role are required, the role must be a member
// of the closed set, and tokens older than the validity window are
// rejected. A missing types list defaults to an empty one for tokens
// issued before the field existed.
func sessionFromFields(userId, email, name, role string, types []string, issuedAt time.Time) (*Session, error) {
	if userId == "" || email == "" || name == "" || role == "" {
		return nil, fmt.Errorf("failed to receive all required session fields: %w", ErrorMalformedToken)
	}
	sessionRole := Role(role)
	if !sessionRole.IsValid() {
		return nil, fmt.Errorf("failed to validate role[%s]: %w", role, ErrorMalformedToken)
	}
	if time.Since(issuedAt) > SessionValidity {
		return nil, fmt.Errorf("failed to validate token issued at %s: %w", issuedAt.Format(time.RFC3339), ErrorTokenExpired)
	}
	if types == nil {
		types = []string{}
	}
	return &Session{
		UserId:   userId,
		Email:    email,
		Name:     name,
		Role:     sessionRole,
		Types:    types,
		IssuedAt: issuedAt,
	}, nil
}
