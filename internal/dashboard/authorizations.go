package dashboard

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rpribau/cm-admin-sub000/internal/auth"
	"github.com/rpribau/cm-admin-sub000/internal/common"
	"github.com/rpribau/cm-admin-sub000/internal/dashboard/models"
	"github.com/rpribau/cm-admin-sub000/internal/records"
)

func (a *httpApplication) registerAuthorizationRoutes(router *mux.Router) {
	v1 := router.PathPrefix("/v1/authorizations").Subrouter()
	v1.HandleFunc("", a.handleListAuthorizationsV1).Methods(http.MethodGet)
	v1.HandleFunc("", a.handleCreateAuthorizationV1).Methods(http.MethodPost)
	v1.HandleFunc("/duplicates", a.handleListDuplicateAuthorizationsV1).Methods(http.MethodGet)
	v1.HandleFunc("/{id}", a.handleUpdateAuthorizationV1).Methods(http.MethodPut)
}

func (a *httpApplication) handleListAuthorizationsV1(w http.ResponseWriter, r *http.Request) {
	session, _ := GetRequestSession(r)
	authorizations, err := a.records.ListAuthorizationsV1(r.Context())
	if err != nil {
		a.sendRecordServiceError(w, r, err, "failed to list authorizations")
		return
	}
	visible := []records.Authorization{}
	for _, authorization := range authorizations {
		if session.CanAccessType(authorization.Type) {
			visible = append(visible, authorization)
		}
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", visible)
}

type handleCreateAuthorizationV1Input struct {
	DocumentId int    `json:"documentId"`
	AccountId  int    `json:"accountId"`
	Type       string `json:"type"`
}

func (a *httpApplication) handleCreateAuthorizationV1(w http.ResponseWriter, r *http.Request) {
	session, _ := GetRequestSession(r)
	var input handleCreateAuthorizationV1Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to parse request body", ErrorInvalidInput)
		return
	}
	if input.DocumentId <= 0 || input.AccountId <= 0 || !auth.IsDepartment(input.Type) {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to receive a document id, account id, and department", ErrorInvalidInput)
		return
	}
	if !session.IsAdmin() || !session.CanAccessType(input.Type) {
		common.SendHttpFailResponse(w, r, http.StatusForbidden, "failed to meet the authorization's access requirement", ErrorInsufficientPermissions)
		return
	}
	authorization, err := a.records.CreateAuthorizationV1(r.Context(), records.CreateAuthorizationV1Input{
		DocumentId: input.DocumentId,
		AccountId:  input.AccountId,
		Type:       input.Type,
		Status:     "pending",
	})
	if err != nil {
		a.sendRecordServiceError(w, r, err, "failed to create authorization")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", authorization)
}

type handleUpdateAuthorizationV1Input struct {
	Status   *string `json:"status,omitempty"`
	SignedAt *string `json:"signedAt,omitempty"`
}

func (a *httpApplication) handleUpdateAuthorizationV1(w http.ResponseWriter, r *http.Request) {
	session, _ := GetRequestSession(r)
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to receive a valid authorization id", ErrorInvalidInput)
		return
	}
	var input handleUpdateAuthorizationV1Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to parse request body", ErrorInvalidInput)
		return
	}
	if !session.IsAdmin() {
		common.SendHttpFailResponse(w, r, http.StatusForbidden, "failed to meet the authorization's access requirement", ErrorInsufficientPermissions)
		return
	}
	authorization, err := a.records.UpdateAuthorizationV1(r.Context(), id, records.UpdateAuthorizationV1Input{
		Status:   input.Status,
		SignedAt: input.SignedAt,
	})
	if err != nil {
		a.sendRecordServiceError(w, r, err, "failed to update authorization")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", authorization)
}

// handleListDuplicateAuthorizationsV1 reports duplicate authorization
// records without removing any of them
func (a *httpApplication) handleListDuplicateAuthorizationsV1(w http.ResponseWriter, r *http.Request) {
	duplicates, err := models.ListDuplicateAuthorizationsV1(r.Context(), models.ListDuplicateAuthorizationsV1Opts{
		Records:     a.records,
		ServiceLogs: a.serviceLogs,
	})
	if err != nil {
		a.sendRecordServiceError(w, r, err, "failed to audit authorizations")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", duplicates)
}
