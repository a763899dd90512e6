package dashboard

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rpribau/cm-admin-sub000/internal/common"
	"github.com/rpribau/cm-admin-sub000/internal/records"
	"github.com/rpribau/cm-admin-sub000/internal/validate"
)

// account management is restricted to superusers through the access
// policy; handlers here only shape the proxied data
func (a *httpApplication) registerAccountRoutes(router *mux.Router) {
	v1 := router.PathPrefix("/v1/accounts").Subrouter()
	v1.HandleFunc("", a.handleListAccountsV1).Methods(http.MethodGet)
	v1.HandleFunc("", a.handleCreateAccountV1).Methods(http.MethodPost)
	v1.HandleFunc("/{id}", a.handleGetAccountV1).Methods(http.MethodGet)
	v1.HandleFunc("/{id}", a.handleUpdateAccountV1).Methods(http.MethodPut)
}

type accountView struct {
	Id            int    `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Type          string `json:"type"`
	Authorization bool   `json:"authorizacion"`
}

// getAccountView strips the password before an account leaves the server
func getAccountView(account records.Account) accountView {
	return accountView{
		Id:            account.Id,
		Name:          account.Name,
		Email:         account.Email,
		Type:          account.Type,
		Authorization: account.Authorization,
	}
}

func (a *httpApplication) handleListAccountsV1(w http.ResponseWriter, r *http.Request) {
	accounts, err := a.records.ListAccountsV1(r.Context())
	if err != nil {
		a.sendRecordServiceError(w, r, err, "failed to list accounts")
		return
	}
	views := []accountView{}
	for _, account := range accounts {
		views = append(views, getAccountView(account))
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", views)
}

func (a *httpApplication) handleGetAccountV1(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to receive a valid account id", ErrorInvalidInput)
		return
	}
	account, err := a.records.GetAccountV1(r.Context(), id)
	if err != nil {
		a.sendRecordServiceError(w, r, err, "failed to retrieve account")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", getAccountView(*account))
}

type handleCreateAccountV1Input struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Type          string `json:"type"`
	Authorization bool   `json:"authorizacion"`
}

func (a *httpApplication) handleCreateAccountV1(w http.ResponseWriter, r *http.Request) {
	var input handleCreateAccountV1Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to parse request body", ErrorInvalidInput)
		return
	}
	if err := validate.Email(input.Email); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to receive a valid email address", ErrorInvalidInput)
		return
	}
	if input.Name == "" || input.Password == "" || input.Type == "" {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to receive a name, password, and type", ErrorInvalidInput)
		return
	}
	account, err := a.records.CreateAccountV1(r.Context(), records.CreateAccountV1Input{
		Name:          input.Name,
		Email:         input.Email,
		Password:      input.Password,
		Type:          input.Type,
		Authorization: input.Authorization,
	})
	if err != nil {
		a.sendRecordServiceError(w, r, err, "failed to create account")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", getAccountView(*account))
}

type handleUpdateAccountV1Input struct {
	Name          *string `json:"name,omitempty"`
	Email         *string `json:"email,omitempty"`
	Password      *string `json:"password,omitempty"`
	Type          *string `json:"type,omitempty"`
	Authorization *bool   `json:"authorizacion,omitempty"`
}

func (a *httpApplication) handleUpdateAccountV1(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to receive a valid account id", ErrorInvalidInput)
		return
	}
	var input handleUpdateAccountV1Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to parse request body", ErrorInvalidInput)
		return
	}
	if input.Email != nil {
		if err := validate.Email(*input.Email); err != nil {
			common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to receive a valid email address", ErrorInvalidInput)
			return
		}
	}
	account, err := a.records.UpdateAccountV1(r.Context(), id, records.UpdateAccountV1Input{
		Name:          input.Name,
		Email:         input.Email,
		Password:      input.Password,
		Type:          input.Type,
		Authorization: input.Authorization,
	})
	if err != nil {
		a.sendRecordServiceError(w, r, err, "failed to update account")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", getAccountView(*account))
}
