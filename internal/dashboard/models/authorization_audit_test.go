package models

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rpribau/cm-admin-sub000/internal/common"
	"github.com/rpribau/cm-admin-sub000/internal/records"
)

func TestListDuplicateAuthorizationsV1(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":1,"documentId":10,"accountId":1,"type":"legal","status":"approved"},
			{"id":2,"documentId":10,"accountId":1,"type":"legal","status":"pending"},
			{"id":3,"documentId":10,"accountId":2,"type":"legal","status":"pending"},
			{"id":4,"documentId":11,"accountId":1,"type":"almacen","status":"pending"}
		]`))
	}))
	defer server.Close()

	client, err := records.NewClient(records.NewClientOpts{RecordServiceUrl: server.URL})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	duplicates, err := ListDuplicateAuthorizationsV1(context.Background(), ListDuplicateAuthorizationsV1Opts{
		Records:     client,
		ServiceLogs: make(chan common.ServiceLog, 16),
	})
	if err != nil {
		t.Fatalf("ListDuplicateAuthorizationsV1 returned error: %v", err)
	}
	if len(duplicates) != 1 {
		t.Fatalf("expected 1 duplicate, got %d", len(duplicates))
	}
	if duplicates[0].Id != 2 {
		t.Errorf("expected the later record to be reported, got authorization[%v]", duplicates[0].Id)
	}
}
