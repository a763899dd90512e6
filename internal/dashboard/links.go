package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rpribau/cm-admin-sub000/internal/common"
	"github.com/rpribau/cm-admin-sub000/internal/records"
)

func (a *httpApplication) registerLinkRoutes(router *mux.Router) {
	v1 := router.PathPrefix("/v1/links").Subrouter()
	v1.HandleFunc("", a.handleListLinksV1).Methods(http.MethodGet)
	v1.HandleFunc("", a.handleCreateLinkV1).Methods(http.MethodPost)
}

// handleListLinksV1 lists sharing links for documents the caller's
// departments cover; links for other departments' documents are
// filtered out rather than rejected
func (a *httpApplication) handleListLinksV1(w http.ResponseWriter, r *http.Request) {
	session, _ := GetRequestSession(r)
	links, err := a.records.ListLinksV1(r.Context())
	if err != nil {
		a.sendRecordServiceError(w, r, err, "failed to list links")
		return
	}
	if session.IsSuperuser() {
		common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", links)
		return
	}
	documents, err := a.records.ListDocumentsV1(r.Context())
	if err != nil {
		a.sendRecordServiceError(w, r, err, "failed to list documents")
		return
	}
	documentTypes := map[int]string{}
	for _, document := range documents {
		documentTypes[document.Id] = document.Type
	}
	visible := []records.Link{}
	for _, link := range links {
		if session.CanAccessType(documentTypes[link.DocumentId]) {
			visible = append(visible, link)
		}
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", visible)
}

type handleCreateLinkV1Input struct {
	DocumentId int    `json:"documentId"`
	Url        string `json:"url"`
	ExpiresAt  string `json:"expiresAt,omitempty"`
}

func (a *httpApplication) handleCreateLinkV1(w http.ResponseWriter, r *http.Request) {
	session, _ := GetRequestSession(r)
	var input handleCreateLinkV1Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to parse request body", ErrorInvalidInput)
		return
	}
	if input.DocumentId <= 0 || input.Url == "" {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to receive a document id and url", ErrorInvalidInput)
		return
	}
	document, err := a.records.GetDocumentV1(r.Context(), input.DocumentId)
	if err != nil {
		a.sendRecordServiceError(w, r, err, "failed to retrieve the link's document")
		return
	}
	if !session.CanAccessType(document.Type) {
		common.SendHttpFailResponse(w, r, http.StatusForbidden, "failed to meet the document's access requirement", ErrorInsufficientPermissions)
		return
	}
	link, err := a.records.CreateLinkV1(r.Context(), records.CreateLinkV1Input{
		DocumentId: input.DocumentId,
		Url:        input.Url,
		ExpiresAt:  input.ExpiresAt,
	})
	if err != nil {
		a.sendRecordServiceError(w, r, err, "failed to create link")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", link)
}
