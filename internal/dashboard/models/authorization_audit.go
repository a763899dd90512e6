package models

import (
	"context"
	"fmt"

	"github.com/rpribau/cm-admin-sub000/internal/common"
	"github.com/rpribau/cm-admin-sub000/internal/records"
)

type ListDuplicateAuthorizationsV1Opts struct {
	Records     *records.Client
	ServiceLogs chan<- common.ServiceLog
}

// ListDuplicateAuthorizationsV1 reports authorization records that
// duplicate an earlier one for the same document, account and type.
// Candidates are logged and returned but never deleted; deletion of
// duplicates has not been confirmed as intended behaviour.
func ListDuplicateAuthorizationsV1(ctx context.Context, opts ListDuplicateAuthorizationsV1Opts) ([]records.Authorization, error) {
	authorizations, err := opts.Records.ListAuthorizationsV1(ctx)
	if err != nil {
		return nil, fmt.Errorf("models.ListDuplicateAuthorizationsV1: failed to list authorizations: %w", err)
	}
	seen := map[string]bool{}
	duplicates := []records.Authorization{}
	for _, authorization := range authorizations {
		key := fmt.Sprintf("%v:%v:%s", authorization.DocumentId, authorization.AccountId, authorization.Type)
		if seen[key] {
			opts.ServiceLogs <- common.ServiceLogf(common.LogLevelWarn, "authorization[%v] duplicates an earlier record for document[%v] account[%v] type[%s]", authorization.Id, authorization.DocumentId, authorization.AccountId, authorization.Type)
			duplicates = append(duplicates, authorization)
			continue
		}
		seen[key] = true
	}
	return duplicates, nil
}
