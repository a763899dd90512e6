package records

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClientRejectsInvalidUrls(t *testing.T) {
	if _, err := NewClient(NewClientOpts{RecordServiceUrl: "localhost:8000"}); err == nil {
		t.Error("expected a url without a scheme to be rejected")
	}
	if _, err := NewClient(NewClientOpts{RecordServiceUrl: "http://localhost:8000"}); err != nil {
		t.Errorf("expected a valid url to be accepted, got: %v", err)
	}
}

func TestClientListAccounts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/accounts" {
			t.Errorf("expected path[/accounts], got path[%s]", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"name":"Ana Pérez","email":"ana@example.org","password":"secret","type":"legal,humanitario","authorizacion":true}]`))
	}))
	defer server.Close()

	client, err := NewClient(NewClientOpts{RecordServiceUrl: server.URL})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	accounts, err := client.ListAccountsV1(context.Background())
	if err != nil {
		t.Fatalf("ListAccountsV1 returned error: %v", err)
	}
	if len(accounts) != 1 {
		t.Fatalf("expected 1 account, got %d", len(accounts))
	}
	if accounts[0].Type != "legal,humanitario" || !accounts[0].Authorization {
		t.Errorf("expected account fields to parse, got %+v", accounts[0])
	}
}

func TestClientNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, _ := NewClient(NewClientOpts{RecordServiceUrl: server.URL})
	if _, err := client.GetDocumentV1(context.Background(), 99); !errors.Is(err, ErrorNotFound) {
		t.Errorf("expected ErrorNotFound, got: %v", err)
	}
}

func TestClientServerErrorIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, _ := NewClient(NewClientOpts{RecordServiceUrl: server.URL})
	_, err := client.ListDocumentsV1(context.Background())
	if !IsUnavailable(err) {
		t.Errorf("expected a 5xx response to count as unavailable, got: %v", err)
	}
}

func TestClientTimeoutIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client, _ := NewClient(NewClientOpts{
		RecordServiceUrl: server.URL,
		Timeout:          20 * time.Millisecond,
	})
	_, err := client.ListAccountsV1(context.Background())
	if !IsUnavailable(err) {
		t.Errorf("expected a timeout to count as unavailable, got: %v", err)
	}
}

func TestClientConnectionRefusedIsUnavailable(t *testing.T) {
	// port 1 should not have a listener
	client, _ := NewClient(NewClientOpts{
		RecordServiceUrl: "http://127.0.0.1:1",
		Timeout:          time.Second,
	})
	_, err := client.ListAccountsV1(context.Background())
	if !IsUnavailable(err) {
		t.Errorf("expected a refused connection to count as unavailable, got: %v", err)
	}
}

func TestClientBadRequestIsNotUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client, _ := NewClient(NewClientOpts{RecordServiceUrl: server.URL})
	_, err := client.ListAccountsV1(context.Background())
	if err == nil {
		t.Fatal("expected an error for a 4xx response")
	}
	if IsUnavailable(err) {
		t.Errorf("expected a 4xx response not to count as unavailable, got: %v", err)
	}
	if !errors.Is(err, ErrorUnsuccessfulResponse) {
		t.Errorf("expected ErrorUnsuccessfulResponse, got: %v", err)
	}
}
