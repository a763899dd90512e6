package models

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rpribau/cm-admin-sub000/internal/auth"
	"github.com/rpribau/cm-admin-sub000/internal/cache"
	"github.com/rpribau/cm-admin-sub000/internal/common"
	"github.com/rpribau/cm-admin-sub000/internal/records"
)

const (
	// DefaultSuperuserEmail is the reserved address of the built-in
	// superuser; it exists independently of the record service
	DefaultSuperuserEmail = "superuser@email.com"
	// DefaultSuperuserPassword is the reserved secret of the built-in
	// superuser
	DefaultSuperuserPassword = "password"

	// SuperuserId identifies superuser sessions; the reserved account
	// has no record-service id
	SuperuserId   = "superuser"
	SuperuserName = "Superuser"

	accountsCacheKey = "records:accounts"
	accountsCacheTtl = 15 * time.Second
)

type SuperuserCredentials struct {
	Email    string
	Password string
}

type CreateSessionV1Opts struct {
	Records     *records.Client
	Cache       cache.Cache
	Superuser   SuperuserCredentials
	ServiceLogs chan<- common.ServiceLog

	Email    string
	Password string
}

// CreateSessionV1 decides whether the credentials identify a valid
// principal and constructs that principal's session. The superuser
// shortcut is always checked first, with a case-insensitive email
// compare and a case-sensitive password compare; every other principal
// is looked up in the record service's account list. Credential
// failures are deliberately indistinguishable to the caller; the
// missing-user/wrong-password distinction is only logged.
func CreateSessionV1(ctx context.Context, opts CreateSessionV1Opts) (*auth.Session, error) {
	superuserEmail := opts.Superuser.Email
	if superuserEmail == "" {
		superuserEmail = DefaultSuperuserEmail
	}
	superuserPassword := opts.Superuser.Password
	if superuserPassword == "" {
		superuserPassword = DefaultSuperuserPassword
	}
	if strings.EqualFold(opts.Email, superuserEmail) {
		if opts.Password == superuserPassword {
			return &auth.Session{
				UserId:   SuperuserId,
				Email:    superuserEmail,
				Name:     SuperuserName,
				Role:     auth.RoleSuperuser,
				Types:    []string{auth.TypeAll},
				IssuedAt: time.Now(),
			}, nil
		}
		opts.ServiceLogs <- common.ServiceLogf(common.LogLevelDebug, "superuser login attempt with a wrong password")
		return nil, fmt.Errorf("models.CreateSessionV1: %w", ErrorCredentialsAuthenticationFailed)
	}

	accounts, err := listAccounts(ctx, opts.Records, opts.Cache)
	if err != nil {
		return nil, fmt.Errorf("models.CreateSessionV1: failed to list accounts: %w", err)
	}

	var account *records.Account
	for i, candidate := range accounts {
		if strings.EqualFold(candidate.Email, opts.Email) {
			account = &accounts[i]
			break
		}
	}
	if account == nil {
		opts.ServiceLogs <- common.ServiceLogf(common.LogLevelDebug, "no account matched email[%s]", opts.Email)
		return nil, fmt.Errorf("models.CreateSessionV1: %w", ErrorCredentialsAuthenticationFailed)
	}
	if account.Password != opts.Password {
		opts.ServiceLogs <- common.ServiceLogf(common.LogLevelDebug, "password mismatch for account[%v]", account.Id)
		return nil, fmt.Errorf("models.CreateSessionV1: %w", ErrorCredentialsAuthenticationFailed)
	}

	types := auth.ParseTypes(account.Type)
	if len(types) == 0 {
		opts.ServiceLogs <- common.ServiceLogf(common.LogLevelWarn, "account[%v] has no department tags", account.Id)
		return nil, fmt.Errorf("models.CreateSessionV1: %s: %w", errorAccountHasNoTypes, ErrorCredentialsAuthenticationFailed)
	}
	role, err := auth.DeriveRole(types[0], account.Authorization)
	if err != nil {
		opts.ServiceLogs <- common.ServiceLogf(common.LogLevelWarn, "account[%v] carries an unknown department[%s]", account.Id, types[0])
		return nil, fmt.Errorf("models.CreateSessionV1: %s: %w", err, ErrorCredentialsAuthenticationFailed)
	}

	return &auth.Session{
		UserId:   strconv.Itoa(account.Id),
		Email:    account.Email,
		Name:     account.Name,
		Role:     role,
		Types:    types,
		IssuedAt: time.Now(),
	}, nil
}

// listAccounts serves the account list through a short-lived cache so
// that bursts of logins don't hammer the record service
func listAccounts(ctx context.Context, client *records.Client, store cache.Cache) ([]records.Account, error) {
	if store != nil {
		if cached, err := store.Get(accountsCacheKey); err == nil {
			var accounts []records.Account
			if err := json.Unmarshal([]byte(cached), &accounts); err == nil {
				return accounts, nil
			}
		}
	}
	accounts, err := client.ListAccountsV1(ctx)
	if err != nil {
		return nil, err
	}
	if store != nil {
		if data, err := json.Marshal(accounts); err == nil {
			store.Set(accountsCacheKey, string(data), accountsCacheTtl)
		}
	}
	return accounts, nil
}
