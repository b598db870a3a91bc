package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/assessvault/internal/client/models"
	"github.com/dmitrijs2005/assessvault/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// ErrNotLoggedIn is returned by commands that need a session.
var ErrNotLoggedIn = errors.New("not logged in")

// Register prompts for username, password and profile and creates the
// account. It does not log the new user in.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}

	profile := models.Profile{Email: email, FullName: fullName}
	if err := a.accounts.Register(ctx, userName, password, profile); err != nil {
		return a.fail(ctx, "register", err)
	}

	a.show("Registration successful, you can log in now", SeveritySuccess)
	return nil
}

// Login authenticates and, on success, starts the session. Records sealed
// under the legacy static salt are re-sealed with the account salt.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	acc, err := a.accounts.Authenticate(ctx, userName, password)
	if err != nil {
		a.session.End()
		return a.fail(ctx, "login", err)
	}

	a.session.Begin(acc)

	if upgraded, err := a.records.UpgradeLegacyRecords(ctx, acc.Username, acc.KeyMaterial()); err != nil {
		a.log.Warn(ctx, "legacy record upgrade failed", "error", err)
	} else if upgraded {
		a.log.Info(ctx, "legacy records upgraded", "username", acc.Username)
	}

	name := acc.Profile.FullName
	if name == "" {
		name = acc.Username
	}
	a.show(fmt.Sprintf("Welcome, %s", name), SeveritySuccess)
	return nil
}

// Logout clears the session.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		return ErrNotLoggedIn
	}
	a.session.End()
	a.show("Logged out", SeverityInfo)
	return nil
}

// WhoAmI prints the profile of the logged-in user.
func (a *App) WhoAmI(ctx context.Context) error {
	s, ok := a.session.Current()
	if !ok {
		return ErrNotLoggedIn
	}

	acc, err := a.accounts.Get(ctx, s.Username)
	if err != nil {
		return a.fail(ctx, "whoami", err)
	}

	fmt.Fprintf(a.out, "Username:   %s\n", acc.Username)
	fmt.Fprintf(a.out, "Full name:  %s\n", acc.Profile.FullName)
	fmt.Fprintf(a.out, "Email:      %s\n", acc.Profile.Email)
	fmt.Fprintf(a.out, "Registered: %s\n", acc.RegisteredAt.Local().Format("2006-01-02 15:04"))
	if acc.LastLoginAt != nil {
		fmt.Fprintf(a.out, "Last login: %s\n", acc.LastLoginAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
