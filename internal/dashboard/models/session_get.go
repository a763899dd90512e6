package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/rpribau/cm-admin-sub000/internal/auth"
	"github.com/rpribau/cm-admin-sub000/internal/cache"
)

const sessionDenylistPrefix = "session:denylist:"

type GetSessionV1Opts struct {
	Codec auth.TokenCodec
	Cache cache.Cache

	Token string
}

// GetSessionV1 reconstructs the session carried by a transport token.
// Decode failures propagate the codec's error kind; tokens revoked by a
// logout are rejected even when they still decode.
func GetSessionV1(opts GetSessionV1Opts) (*auth.Session, error) {
	session, err := opts.Codec.Decode(opts.Token)
	if err != nil {
		return nil, fmt.Errorf("models.GetSessionV1: failed to decode token: %w", err)
	}
	if opts.Cache != nil {
		if _, err := opts.Cache.Get(denylistKey(opts.Token)); err == nil {
			return nil, fmt.Errorf("models.GetSessionV1: %w", ErrorSessionRevoked)
		}
	}
	return session, nil
}

func denylistKey(token string) string {
	digest := sha256.Sum256([]byte(token))
	return sessionDenylistPrefix + hex.EncodeToString(digest[:])
}
