package models

import (
	"errors"
	"testing"
	"time"

	"github.com/rpribau/cm-admin-sub000/internal/auth"
	"github.com/rpribau/cm-admin-sub000/internal/cache"
)

func getRevocableToken(t *testing.T) (auth.TokenCodec, string) {
	t.Helper()
	codec := auth.NewCodec()
	token, err := codec.Encode(auth.Session{
		UserId:   "1",
		Email:    "ana@example.org",
		Name:     "Ana Pérez",
		Role:     auth.RoleLegal,
		Types:    []string{"legal"},
		IssuedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	return codec, token
}

func TestGetSessionV1(t *testing.T) {
	codec, token := getRevocableToken(t)
	session, err := GetSessionV1(GetSessionV1Opts{
		Codec: codec,
		Cache: cache.NewMemory(),
		Token: token,
	})
	if err != nil {
		t.Fatalf("GetSessionV1 returned error: %v", err)
	}
	if session.UserId != "1" {
		t.Errorf("expected userId[1], got userId[%s]", session.UserId)
	}
}

func TestGetSessionV1PropagatesDecodeErrors(t *testing.T) {
	codec, _ := getRevocableToken(t)
	if _, err := GetSessionV1(GetSessionV1Opts{
		Codec: codec,
		Token: "not-a-token",
	}); !errors.Is(err, auth.ErrorMalformedToken) {
		t.Errorf("expected ErrorMalformedToken, got: %v", err)
	}
}

func TestDeleteSessionV1RevokesToken(t *testing.T) {
	codec, token := getRevocableToken(t)
	store := cache.NewMemory()

	if err := DeleteSessionV1(DeleteSessionV1Opts{
		Codec: codec,
		Cache: store,
		Token: token,
	}); err != nil {
		t.Fatalf("DeleteSessionV1 returned error: %v", err)
	}

	if _, err := GetSessionV1(GetSessionV1Opts{
		Codec: codec,
		Cache: store,
		Token: token,
	}); !errors.Is(err, ErrorSessionRevoked) {
		t.Errorf("expected ErrorSessionRevoked after logout, got: %v", err)
	}
}

func TestDeleteSessionV1IgnoresUndecodableTokens(t *testing.T) {
	codec, _ := getRevocableToken(t)
	if err := DeleteSessionV1(DeleteSessionV1Opts{
		Codec: codec,
		Cache: cache.NewMemory(),
		Token: "garbage",
	}); err != nil {
		t.Errorf("expected an undecodable token to be treated as already deleted, got: %v", err)
	}
}
