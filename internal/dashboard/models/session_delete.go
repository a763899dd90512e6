package models

import (
	"fmt"
	"time"

	"github.com/rpribau/cm-admin-sub000/internal/auth"
	"github.com/rpribau/cm-admin-sub000/internal/cache"
)

type DeleteSessionV1Opts struct {
	Codec auth.TokenCodec
	Cache cache.Cache

	Token string
}

// DeleteSessionV1 revokes a transport token for the remainder of its
// validity window. Tokens that no longer decode have nothing left to
// revoke and are treated as already deleted.
func DeleteSessionV1(opts DeleteSessionV1Opts) error {
	session, err := opts.Codec.Decode(opts.Token)
	if err != nil {
		return nil
	}
	if opts.Cache == nil {
		return nil
	}
	remaining := auth.SessionValidity - time.Since(session.IssuedAt)
	if remaining <= 0 {
		return nil
	}
	if err := opts.Cache.Set(denylistKey(opts.Token), session.UserId, remaining); err != nil {
		return fmt.Errorf("models.DeleteSessionV1: failed to update denylist: %s", err)
	}
	return nil
}
