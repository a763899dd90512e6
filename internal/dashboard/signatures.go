package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rpribau/cm-admin-sub000/internal/common"
	"github.com/rpribau/cm-admin-sub000/internal/dashboard/models"
	"github.com/rpribau/cm-admin-sub000/internal/records"
)

// signature key management is restricted to superusers through the
// access policy
func (a *httpApplication) registerSignatureKeyRoutes(router *mux.Router) {
	v1 := router.PathPrefix("/v1/signature-keys").Subrouter()
	v1.HandleFunc("", a.handleListSignatureKeysV1).Methods(http.MethodGet)
	v1.HandleFunc("", a.handleCreateSignatureKeyV1).Methods(http.MethodPost)
}

type signatureKeyView struct {
	records.SignatureKey
	AccountId    *int    `json:"accountId,omitempty"`
	AccountEmail *string `json:"accountEmail,omitempty"`
}

// handleListSignatureKeysV1 lists signing keys and annotates each with
// the account whose name best matches the signer name, when one does.
// The match is a heuristic and is advisory only.
func (a *httpApplication) handleListSignatureKeysV1(w http.ResponseWriter, r *http.Request) {
	keys, err := a.records.ListSignatureKeysV1(r.Context())
	if err != nil {
		a.sendRecordServiceError(w, r, err, "failed to list signature keys")
		return
	}
	accounts, err := a.records.ListAccountsV1(r.Context())
	if err != nil {
		a.sendRecordServiceError(w, r, err, "failed to list accounts")
		return
	}
	views := []signatureKeyView{}
	for _, key := range keys {
		view := signatureKeyView{SignatureKey: key}
		if account := models.MatchSignerAccount(accounts, key.SignerName); account != nil {
			view.AccountId = &account.Id
			view.AccountEmail = &account.Email
		}
		views = append(views, view)
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", views)
}

type handleCreateSignatureKeyV1Input struct {
	SignerName string `json:"signerName"`
}

func (a *httpApplication) handleCreateSignatureKeyV1(w http.ResponseWriter, r *http.Request) {
	var input handleCreateSignatureKeyV1Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to parse request body", ErrorInvalidInput)
		return
	}
	if input.SignerName == "" {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to receive a signer name", ErrorInvalidInput)
		return
	}
	key, err := a.records.CreateSignatureKeyV1(r.Context(), records.CreateSignatureKeyV1Input{
		SignerName: input.SignerName,
	})
	if err != nil {
		a.sendRecordServiceError(w, r, err, "failed to create signature key")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", key)
}
