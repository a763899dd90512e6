package models

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rpribau/cm-admin-sub000/internal/auth"
	"github.com/rpribau/cm-admin-sub000/internal/cache"
	"github.com/rpribau/cm-admin-sub000/internal/common"
	"github.com/rpribau/cm-admin-sub000/internal/records"
)

const testAccountsBody = `[
	{"id":1,"name":"Ana Pérez","email":"ana@example.org","password":"secret","type":"legal,humanitario","authorizacion":true},
	{"id":2,"name":"Luis Gómez","email":"luis@example.org","password":"hunter2","type":"almacen","authorizacion":false},
	{"id":3,"name":"Rosa Díaz","email":"rosa@example.org","password":"pw","type":"finanzas","authorizacion":false}
]`

func getTestRecordService(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(testAccountsBody))
	}))
}

func getTestOpts(t *testing.T, serviceUrl string, store cache.Cache) CreateSessionV1Opts {
	t.Helper()
	client, err := records.NewClient(records.NewClientOpts{RecordServiceUrl: serviceUrl})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return CreateSessionV1Opts{
		Records:     client,
		Cache:       store,
		ServiceLogs: make(chan common.ServiceLog, 16),
	}
}

func TestCreateSessionSuperuser(t *testing.T) {
	opts := getTestOpts(t, "http://127.0.0.1:1", nil)
	opts.Email = "SuperUser@Email.com"
	opts.Password = DefaultSuperuserPassword

	session, err := CreateSessionV1(context.Background(), opts)
	if err != nil {
		t.Fatalf("CreateSessionV1 returned error: %v", err)
	}
	if session.UserId != SuperuserId {
		t.Errorf("expected userId[%s], got userId[%s]", SuperuserId, session.UserId)
	}
	if session.Role != auth.RoleSuperuser {
		t.Errorf("expected role[%s], got role[%s]", auth.RoleSuperuser, session.Role)
	}
	if len(session.Types) != 1 || session.Types[0] != auth.TypeAll {
		t.Errorf("expected the sentinel department list, got %v", session.Types)
	}
}

func TestCreateSessionSuperuserWrongPassword(t *testing.T) {
	opts := getTestOpts(t, "http://127.0.0.1:1", nil)
	opts.Email = DefaultSuperuserEmail
	opts.Password = "Password"

	if _, err := CreateSessionV1(context.Background(), opts); !errors.Is(err, ErrorCredentialsAuthenticationFailed) {
		t.Errorf("expected ErrorCredentialsAuthenticationFailed, got: %v", err)
	}
}

func TestCreateSessionAccount(t *testing.T) {
	server := getTestRecordService(t)
	defer server.Close()

	opts := getTestOpts(t, server.URL, nil)
	opts.Email = "Ana@Example.org"
	opts.Password = "secret"

	session, err := CreateSessionV1(context.Background(), opts)
	if err != nil {
		t.Fatalf("CreateSessionV1 returned error: %v", err)
	}
	if session.UserId != "1" {
		t.Errorf("expected userId[1], got userId[%s]", session.UserId)
	}
	if session.Role != auth.RoleAdminLegal {
		t.Errorf("expected role[%s], got role[%s]", auth.RoleAdminLegal, session.Role)
	}
	if len(session.Types) != 2 || session.Types[0] != "legal" || session.Types[1] != "humanitario" {
		t.Errorf("expected parsed department tags, got %v", session.Types)
	}
}

func TestCreateSessionUnauthorizedAccountGetsBaseRole(t *testing.T) {
	server := getTestRecordService(t)
	defer server.Close()

	opts := getTestOpts(t, server.URL, nil)
	opts.Email = "luis@example.org"
	opts.Password = "hunter2"

	session, err := CreateSessionV1(context.Background(), opts)
	if err != nil {
		t.Fatalf("CreateSessionV1 returned error: %v", err)
	}
	if session.Role != auth.RoleAlmacen {
		t.Errorf("expected role[%s], got role[%s]", auth.RoleAlmacen, session.Role)
	}
}

func TestCreateSessionRejectsBadCredentials(t *testing.T) {
	server := getTestRecordService(t)
	defer server.Close()

	opts := getTestOpts(t, server.URL, nil)
	opts.Email = "nobody@example.org"
	opts.Password = "whatever"
	if _, err := CreateSessionV1(context.Background(), opts); !errors.Is(err, ErrorCredentialsAuthenticationFailed) {
		t.Errorf("expected ErrorCredentialsAuthenticationFailed for an unknown email, got: %v", err)
	}

	opts.Email = "ana@example.org"
	opts.Password = "wrong"
	if _, err := CreateSessionV1(context.Background(), opts); !errors.Is(err, ErrorCredentialsAuthenticationFailed) {
		t.Errorf("expected ErrorCredentialsAuthenticationFailed for a wrong password, got: %v", err)
	}
}

func TestCreateSessionRejectsUnknownDepartment(t *testing.T) {
	server := getTestRecordService(t)
	defer server.Close()

	opts := getTestOpts(t, server.URL, nil)
	opts.Email = "rosa@example.org"
	opts.Password = "pw"
	if _, err := CreateSessionV1(context.Background(), opts); !errors.Is(err, ErrorCredentialsAuthenticationFailed) {
		t.Errorf("expected an unknown department to fail as a credential error, got: %v", err)
	}
}

func TestCreateSessionServiceUnavailable(t *testing.T) {
	opts := getTestOpts(t, "http://127.0.0.1:1", nil)
	opts.Email = "ana@example.org"
	opts.Password = "secret"

	_, err := CreateSessionV1(context.Background(), opts)
	if !records.IsUnavailable(err) {
		t.Errorf("expected an unreachable record service to surface as unavailable, got: %v", err)
	}
	if errors.Is(err, ErrorCredentialsAuthenticationFailed) {
		t.Error("expected service unavailability to stay distinct from a credential failure")
	}
}

func TestCreateSessionUsesAccountCache(t *testing.T) {
	server := getTestRecordService(t)
	store := cache.NewMemory()

	opts := getTestOpts(t, server.URL, store)
	opts.Email = "ana@example.org"
	opts.Password = "secret"
	if _, err := CreateSessionV1(context.Background(), opts); err != nil {
		t.Fatalf("CreateSessionV1 returned error: %v", err)
	}

	// the second login must be served from the cache
	server.Close()
	if _, err := CreateSessionV1(context.Background(), opts); err != nil {
		t.Errorf("expected the cached account list to serve the second login, got: %v", err)
	}
}
