// Package session orchestrates registration and login, enforcing the admin
// first-use passcode gate exactly once per identity.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/saideepoki/counselling-app/internal/account"
	"github.com/saideepoki/counselling-app/internal/logging"
	"github.com/saideepoki/counselling-app/internal/model"
	"github.com/saideepoki/counselling-app/internal/notify"
	"github.com/saideepoki/counselling-app/internal/passcode"
	"github.com/saideepoki/counselling-app/internal/store"
)

var (
	ErrAuthenticationFailed = account.ErrAuthenticationFailed
	ErrProfileNotFound      = errors.New("profile not found")
	ErrPasscodeRequired     = errors.New("passcode required")
	ErrInvalidPasscode      = passcode.ErrInvalidPasscode
)

type Resolver struct {
	accounts account.Service
	store    store.Store
	codes    *passcode.Authenticator
	notifier notify.Notifier
	log      logging.Logger
}

func NewResolver(accounts account.Service, st store.Store, codes *passcode.Authenticator, notifier notify.Notifier, log logging.Logger) *Resolver {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &Resolver{accounts: accounts, store: st, codes: codes, notifier: notifier, log: log}
}

// Session is the resolved result of a successful login.
type Session struct {
	Profile model.AccountProfile
}

type RegisterResult struct {
	Profile        model.AccountProfile
	PasscodeIssued bool
}

// Register creates an account and its profile. For admins a first-login
// passcode is derived and handed to the notifier; notifier failure is logged
// and never rolls the registration back.
func (r *Resolver) Register(ctx context.Context, email, username, password string, role model.Role) (RegisterResult, error) {
	if !role.Valid() {
		return RegisterResult{}, fmt.Errorf("invalid role %q", role)
	}
	email = strings.TrimSpace(strings.ToLower(email))

	acct, err := r.accounts.Create(ctx, email, username, password)
	if err != nil {
		return RegisterResult{}, err
	}

	profile, err := r.store.CreateProfile(ctx, model.AccountProfile{
		AccountID: acct.ID,
		Email:     acct.Email,
		Username:  acct.Username,
		Role:      role,
		// True by convention for regular users; only admins are gated.
		PasscodeValidated: role != model.RoleAdmin,
	})
	if err != nil {
		return RegisterResult{}, err
	}

	res := RegisterResult{Profile: profile}
	if role == model.RoleAdmin {
		code := r.codes.Derive(acct.Email, 0)
		body := fmt.Sprintf("Your one-time organization passcode is %s. Enter it the first time you sign in as an administrator. It expires shortly after issue.", code)
		if err := r.notifier.Send(ctx, acct.Email, "Your organization passcode", body); err != nil {
			r.log.Warn(ctx, "passcode notification failed", "email", acct.Email, "err", err)
		}
		res.PasscodeIssued = true
	}
	return res, nil
}

// Login resolves credentials to a session. Admins with an unvalidated profile
// must present a currently valid passcode; everyone else skips the gate.
func (r *Resolver) Login(ctx context.Context, email, password, code string) (*Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	accountID, err := r.accounts.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	profile, err := r.store.GetProfileByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Authenticated identity without a profile is a data-integrity
			// fault; logged here, surfaced generically.
			r.log.Error(ctx, "authenticated account has no profile", "account_id", accountID)
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	switch profile.Role {
	case model.RoleAdmin:
		if !profile.PasscodeValidated {
			if strings.TrimSpace(code) == "" {
				return nil, ErrPasscodeRequired
			}
			if err := r.codes.Validate(profile.Email, code); err != nil {
				return nil, err
			}
			// Not guarded against concurrent first logins: a correct passcode
			// is proof of secret possession regardless of who writes first.
			profile, err = r.store.SetProfilePasscodeValidated(ctx, profile.ID)
			if err != nil {
				return nil, err
			}
		}
	case model.RoleUser:
		// No gate.
	}

	return &Session{Profile: *profile}, nil
}
