package dashboard

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rpribau/cm-admin-sub000/internal/auth"
	"github.com/rpribau/cm-admin-sub000/internal/common"
	"github.com/rpribau/cm-admin-sub000/internal/records"
)

func (a *httpApplication) registerDocumentRoutes(router *mux.Router) {
	v1 := router.PathPrefix("/v1/documents").Subrouter()
	v1.HandleFunc("", a.handleListDocumentsV1).Methods(http.MethodGet)
	v1.HandleFunc("", a.handleCreateDocumentV1).Methods(http.MethodPost)
	v1.HandleFunc("/{id}", a.handleGetDocumentV1).Methods(http.MethodGet)
	v1.HandleFunc("/{id}", a.handleUpdateDocumentV1).Methods(http.MethodPut)
}

// handleListDocumentsV1 lists documents scoped to the caller's
// departments; superusers see everything
func (a *httpApplication) handleListDocumentsV1(w http.ResponseWriter, r *http.Request) {
	session, _ := GetRequestSession(r)
	documents, err := a.records.ListDocumentsV1(r.Context())
	if err != nil {
		a.sendRecordServiceError(w, r, err, "failed to list documents")
		return
	}
	visible := []records.Document{}
	for _, document := range documents {
		if session.CanAccessType(document.Type) {
			visible = append(visible, document)
		}
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", visible)
}

func (a *httpApplication) handleGetDocumentV1(w http.ResponseWriter, r *http.Request) {
	session, _ := GetRequestSession(r)
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to receive a valid document id", ErrorInvalidInput)
		return
	}
	document, err := a.records.GetDocumentV1(r.Context(), id)
	if err != nil {
		a.sendRecordServiceError(w, r, err, "failed to retrieve document")
		return
	}
	if !session.CanAccessType(document.Type) {
		common.SendHttpFailResponse(w, r, http.StatusForbidden, "failed to meet the document's access requirement", ErrorInsufficientPermissions)
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", document)
}

type handleCreateDocumentV1Input struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Url  string `json:"url"`
}

// handleCreateDocumentV1 proxies document creation; only an approver
// for the document's department (or a superuser) may create
func (a *httpApplication) handleCreateDocumentV1(w http.ResponseWriter, r *http.Request) {
	session, _ := GetRequestSession(r)
	var input handleCreateDocumentV1Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to parse request body", ErrorInvalidInput)
		return
	}
	if input.Name == "" || !auth.IsDepartment(input.Type) {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to receive a valid document name and department", ErrorInvalidInput)
		return
	}
	if !session.IsAdmin() || !session.CanAccessType(input.Type) {
		common.SendHttpFailResponse(w, r, http.StatusForbidden, "failed to meet the document's access requirement", ErrorInsufficientPermissions)
		return
	}
	document, err := a.records.CreateDocumentV1(r.Context(), records.CreateDocumentV1Input{
		Name:   input.Name,
		Type:   input.Type,
		Status: "pending",
		Url:    input.Url,
	})
	if err != nil {
		a.sendRecordServiceError(w, r, err, "failed to create document")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", document)
}

type handleUpdateDocumentV1Input struct {
	Name   *string `json:"name,omitempty"`
	Status *string `json:"status,omitempty"`
	Url    *string `json:"url,omitempty"`
}

// handleUpdateDocumentV1 proxies a document update after checking the
// caller's department covers the document. Concurrent updates from two
// admin sessions are not coordinated; last write wins at the record
// service.
func (a *httpApplication) handleUpdateDocumentV1(w http.ResponseWriter, r *http.Request) {
	session, _ := GetRequestSession(r)
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to receive a valid document id", ErrorInvalidInput)
		return
	}
	var input handleUpdateDocumentV1Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to parse request body", ErrorInvalidInput)
		return
	}
	existing, err := a.records.GetDocumentV1(r.Context(), id)
	if err != nil {
		a.sendRecordServiceError(w, r, err, "failed to retrieve document")
		return
	}
	if !session.IsAdmin() || !session.CanAccessType(existing.Type) {
		common.SendHttpFailResponse(w, r, http.StatusForbidden, "failed to meet the document's access requirement", ErrorInsufficientPermissions)
		return
	}
	document, err := a.records.UpdateDocumentV1(r.Context(), id, records.UpdateDocumentV1Input{
		Name:   input.Name,
		Status: input.Status,
		Url:    input.Url,
	})
	if err != nil {
		a.sendRecordServiceError(w, r, err, "failed to update document")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", document)
}
