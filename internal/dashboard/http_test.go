package dashboard

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rpribau/cm-admin-sub000/internal/auth"
	"github.com/rpribau/cm-admin-sub000/internal/cache"
	"github.com/rpribau/cm-admin-sub000/internal/common"
	"github.com/rpribau/cm-admin-sub000/internal/records"
)

const testAccountsBody = `[
	{"id":1,"name":"Ana Pérez","email":"ana@example.org","password":"secret","type":"legal","authorizacion":true},
	{"id":2,"name":"Luis Gómez","email":"luis@example.org","password":"hunter2","type":"almacen","authorizacion":false}
]`

const testDocumentsBody = `[
	{"id":10,"name":"expediente legal","type":"legal","status":"pending","url":"","createdAt":"2026-01-01"},
	{"id":11,"name":"inventario","type":"almacen","status":"approved","url":"","createdAt":"2026-01-02"}
]`

func getTestRecordService(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/accounts":
			w.Write([]byte(testAccountsBody))
		case "/documents":
			w.Write([]byte(testDocumentsBody))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func getTestApplication(t *testing.T, recordServiceUrl string) http.Handler {
	t.Helper()
	recordsClient, err := records.NewClient(records.NewClientOpts{RecordServiceUrl: recordServiceUrl})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	handler, err := GetHttpApplication(HttpApplicationOpts{
		Cache:        cache.NewMemory(),
		Records:      recordsClient,
		SessionCodec: auth.NewCodec(),
		ServiceLogs:  common.GetDiscardServiceLog(),
	})
	if err != nil {
		t.Fatalf("GetHttpApplication returned error: %v", err)
	}
	return handler
}

func login(t *testing.T, handler http.Handler, email, password string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	request := httptest.NewRequest(http.MethodPost, "/api/v1/session", bytes.NewBuffer(body))
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusOK {
		return recorder, ""
	}
	var response common.HttpResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse login response: %v", err)
	}
	data, _ := json.Marshal(response.Data)
	var output struct {
		Token string `json:"token"`
	}
	json.Unmarshal(data, &output)
	return recorder, output.Token
}

func TestLoginSetsAuthCookie(t *testing.T) {
	handler := getTestApplication(t, "http://127.0.0.1:1")
	recorder, token := login(t, handler, "superuser@email.com", "password")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if token == "" {
		t.Error("expected the response to include the session token")
	}

	cookies := recorder.Result().Cookies()
	var authCookie *http.Cookie
	for _, cookie := range cookies {
		if cookie.Name == AuthCookieName {
			authCookie = cookie
		}
	}
	if authCookie == nil {
		t.Fatal("expected an auth-token cookie to be set")
	}
	if !authCookie.HttpOnly {
		t.Error("expected the auth cookie to be http-only")
	}
	if authCookie.SameSite != http.SameSiteLaxMode {
		t.Error("expected the auth cookie to use SameSite=Lax")
	}
	if authCookie.MaxAge != int(auth.SessionValidity.Seconds()) {
		t.Errorf("expected the cookie lifetime to match the token validity, got %d", authCookie.MaxAge)
	}
	if authCookie.Secure {
		t.Error("expected a non-production application not to mark the cookie secure")
	}
	if authCookie.Value != token {
		t.Error("expected the cookie to carry the session token")
	}
}

func TestLoginAcceptsFormSubmission(t *testing.T) {
	handler := getTestApplication(t, "http://127.0.0.1:1")
	form := url.Values{}
	form.Set("email", "superuser@email.com")
	form.Set("password", "password")
	request := httptest.NewRequest(http.MethodPost, "/api/v1/session", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusFound {
		t.Fatalf("expected a form login to redirect, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if location := recorder.Header().Get("Location"); location != "/dashboard" {
		t.Errorf("expected a redirect to the landing view, got '%s'", location)
	}
	var authCookie *http.Cookie
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == AuthCookieName {
			authCookie = cookie
		}
	}
	if authCookie == nil || authCookie.Value == "" {
		t.Fatal("expected a form login to set the auth cookie")
	}
}

func TestLoginRejectsFormWithBadCredentials(t *testing.T) {
	server := getTestRecordService(t)
	defer server.Close()
	handler := getTestApplication(t, server.URL)

	form := url.Values{}
	form.Set("email", "ana@example.org")
	form.Set("password", "wrong")
	request := httptest.NewRequest(http.MethodPost, "/api/v1/session", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", recorder.Code)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	server := getTestRecordService(t)
	defer server.Close()
	handler := getTestApplication(t, server.URL)

	recorder, _ := login(t, handler, "ana@example.org", "wrong")
	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", recorder.Code)
	}
}

func TestLoginRejectsInvalidEmail(t *testing.T) {
	handler := getTestApplication(t, "http://127.0.0.1:1")
	recorder, _ := login(t, handler, "not-an-email", "password")
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", recorder.Code)
	}
}

func TestLoginReportsServiceUnavailability(t *testing.T) {
	handler := getTestApplication(t, "http://127.0.0.1:1")
	recorder, _ := login(t, handler, "ana@example.org", "secret")
	if recorder.Code != http.StatusInternalServerError {
		t.Errorf("expected an unreachable record service to return 500, got %d", recorder.Code)
	}
	if strings.Contains(recorder.Body.String(), "invalid credentials") {
		t.Error("expected unavailability not to be reported as a credential failure")
	}
}

func TestSessionCheck(t *testing.T) {
	server := getTestRecordService(t)
	defer server.Close()
	handler := getTestApplication(t, server.URL)

	request := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401 without a token, got %d", recorder.Code)
	}

	_, token := login(t, handler, "ana@example.org", "secret")
	request = httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	request.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200 with a valid cookie, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), `"role":"admin-legal"`) {
		t.Errorf("expected the session user in the response, got: %s", recorder.Body.String())
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	server := getTestRecordService(t)
	defer server.Close()
	handler := getTestApplication(t, server.URL)
	_, token := login(t, handler, "ana@example.org", "secret")

	request := httptest.NewRequest(http.MethodDelete, "/api/v1/session", nil)
	request.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200 on logout, got %d", recorder.Code)
	}
	var cleared *http.Cookie
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == AuthCookieName {
			cleared = cookie
		}
	}
	if cleared == nil || cleared.MaxAge >= 0 || cleared.Value != "" {
		t.Errorf("expected the logout response to clear the auth cookie, got %+v", cleared)
	}

	request = httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	request.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("expected a revoked token to be rejected, got %d", recorder.Code)
	}
}

func TestGuardRedirectsBrowserNavigation(t *testing.T) {
	handler := getTestApplication(t, "http://127.0.0.1:1")

	request := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	request.Header.Set("Accept", "text/html,application/xhtml+xml")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusFound {
		t.Fatalf("expected status 302, got %d", recorder.Code)
	}
	if location := recorder.Header().Get("Location"); location != "/login" {
		t.Errorf("expected a redirect to /login, got %s", location)
	}
}

func TestGuardRedirectsAuthenticatedAwayFromLogin(t *testing.T) {
	handler := getTestApplication(t, "http://127.0.0.1:1")
	_, token := login(t, handler, "superuser@email.com", "password")

	request := httptest.NewRequest(http.MethodGet, "/login", nil)
	request.Header.Set("Accept", "text/html")
	request.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusFound {
		t.Fatalf("expected status 302, got %d", recorder.Code)
	}
	if location := recorder.Header().Get("Location"); location != "/dashboard" {
		t.Errorf("expected a redirect to /dashboard, got %s", location)
	}
}

func TestGuardEnforcesAccountPolicy(t *testing.T) {
	server := getTestRecordService(t)
	defer server.Close()
	handler := getTestApplication(t, server.URL)

	_, memberToken := login(t, handler, "ana@example.org", "secret")
	request := httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	request.Header.Set("Authorization", "Bearer "+memberToken)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusForbidden {
		t.Errorf("expected a non-superuser to get 403 on accounts, got %d", recorder.Code)
	}

	_, superToken := login(t, handler, "superuser@email.com", "password")
	request = httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	request.Header.Set("Authorization", "Bearer "+superToken)
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected a superuser to list accounts, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if strings.Contains(recorder.Body.String(), "secret") || strings.Contains(recorder.Body.String(), "hunter2") {
		t.Error("expected passwords never to leave the server")
	}
}

func TestDocumentsScopedToSessionDepartments(t *testing.T) {
	server := getTestRecordService(t)
	defer server.Close()
	handler := getTestApplication(t, server.URL)

	_, memberToken := login(t, handler, "ana@example.org", "secret")
	request := httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil)
	request.Header.Set("Authorization", "Bearer "+memberToken)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	body := recorder.Body.String()
	if !strings.Contains(body, "expediente legal") {
		t.Error("expected the session's own department's documents to be listed")
	}
	if strings.Contains(body, "inventario") {
		t.Error("expected other departments' documents to be filtered out")
	}

	_, superToken := login(t, handler, "superuser@email.com", "password")
	request = httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil)
	request.Header.Set("Authorization", "Bearer "+superToken)
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	if !strings.Contains(recorder.Body.String(), "inventario") {
		t.Error("expected a superuser to see every document")
	}
}
