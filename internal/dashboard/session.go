package dashboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rpribau/cm-admin-sub000/internal/auth"
	"github.com/rpribau/cm-admin-sub000/internal/common"
	"github.com/rpribau/cm-admin-sub000/internal/dashboard/models"
	"github.com/rpribau/cm-admin-sub000/internal/records"
	"github.com/rpribau/cm-admin-sub000/internal/validate"
)

// authCookieMaxAge matches the token validity window
const authCookieMaxAge = int(auth.SessionValidity / time.Second)

func (a *httpApplication) setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   authCookieMaxAge,
		HttpOnly: true,
		Secure:   a.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

func (a *httpApplication) clearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1, // serialises as Max-Age=0
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   a.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

type handleCreateSessionV1Input struct {
	// Email is the user's email address
	Email string `json:"email"`

	// Password is the user's password
	Password string `json:"password"`
}

type sessionUserOutput struct {
	Id    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  string   `json:"role"`
	Types []string `json:"types"`
}

type handleCreateSessionV1Output struct {
	User  sessionUserOutput `json:"user"`
	Token string            `json:"token"`
}

func getSessionUserOutput(session auth.Session) sessionUserOutput {
	return sessionUserOutput{
		Id:    session.UserId,
		Name:  session.Name,
		Email: session.Email,
		Role:  string(session.Role),
		Types: session.UserTypes(),
	}
}

// handleCreateSessionV1 logs a user in: it validates the input,
// authenticates against the reserved superuser or the record service,
// and attaches the resulting transport token as the auth cookie.
// Accepts both JSON bodies and the login view's form submission.
// Credential failures answer 401 with a deliberately generic message;
// an unreachable record service answers 500 with a distinct one.
func (a *httpApplication) handleCreateSessionV1(w http.ResponseWriter, r *http.Request) {
	log := common.GetRequestLogger(r)
	var input handleCreateSessionV1Input
	isFormLogin := strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
	if isFormLogin {
		if err := r.ParseForm(); err != nil {
			common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to parse request body", ErrorInvalidInput)
			return
		}
		input.Email = r.PostFormValue("email")
		input.Password = r.PostFormValue("password")
	} else {
		requestBody, err := io.ReadAll(r.Body)
		if err != nil {
			common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to read request body", ErrorInvalidInput)
			return
		}
		if err := json.Unmarshal(requestBody, &input); err != nil {
			common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to parse request body", ErrorInvalidInput)
			return
		}
	}
	if err := validate.Email(input.Email); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to receive a valid email", err)
		return
	}
	if input.Password == "" {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to receive a password", ErrorInvalidInput)
		return
	}

	session, err := models.CreateSessionV1(r.Context(), models.CreateSessionV1Opts{
		Records:     a.records,
		Cache:       a.cache,
		Superuser:   a.superuser,
		ServiceLogs: a.serviceLogs,
		Email:       input.Email,
		Password:    input.Password,
	})
	if err != nil {
		if errors.Is(err, models.ErrorCredentialsAuthenticationFailed) {
			common.SendHttpFailResponse(w, r, http.StatusUnauthorized, "invalid credentials", ErrorInvalidCredentials)
			return
		}
		if records.IsUnavailable(err) {
			common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "cannot reach authentication service", ErrorServiceUnavailable)
			return
		}
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to create session", err)
		return
	}

	token, err := a.sessionCodec.Encode(*session)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to issue session token", err)
		return
	}
	a.setAuthCookie(w, token)
	log(common.LogLevelDebug, fmt.Sprintf("issued session token for user[%s]", session.UserId))

	if isFormLogin {
		http.Redirect(w, r, a.policy.DefaultLanding, http.StatusFound)
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", handleCreateSessionV1Output{
		User:  getSessionUserOutput(*session),
		Token: token,
	})
}

// handleGetSessionV1 answers the session-check used by views while
// they resolve authentication state
func (a *httpApplication) handleGetSessionV1(w http.ResponseWriter, r *http.Request) {
	token := getTokenFromRequest(r)
	if token == "" {
		common.SendHttpFailResponse(w, r, http.StatusUnauthorized, "failed to receive a session token", ErrorAuthRequired)
		return
	}
	session, err := models.GetSessionV1(models.GetSessionV1Opts{
		Codec: a.sessionCodec,
		Cache: a.cache,
		Token: token,
	})
	if err != nil {
		a.clearAuthCookie(w)
		common.SendHttpFailResponse(w, r, http.StatusUnauthorized, "failed to retrieve session details", ErrorAuthRequired)
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", getSessionUserOutput(*session))
}

type handleDeleteSessionV1Output struct {
	IsSuccessful bool `json:"isSuccessful"`
}

// handleDeleteSessionV1 logs the current user out: the cookie is
// cleared and the token is denylisted for the rest of its validity
func (a *httpApplication) handleDeleteSessionV1(w http.ResponseWriter, r *http.Request) {
	log := common.GetRequestLogger(r)
	if token := getTokenFromRequest(r); token != "" {
		if err := models.DeleteSessionV1(models.DeleteSessionV1Opts{
			Codec: a.sessionCodec,
			Cache: a.cache,
			Token: token,
		}); err != nil {
			log(common.LogLevelWarn, fmt.Sprintf("failed to revoke session: %s", err))
		}
	}
	a.clearAuthCookie(w)
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", handleDeleteSessionV1Output{
		IsSuccessful: true,
	})
}
