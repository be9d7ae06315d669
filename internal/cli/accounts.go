package cli

import (
	"context"
	"errors"

	"github.com/Zetpete/Vaccine-Scheduler/internal/common"
	"github.com/Zetpete/Vaccine-Scheduler/internal/models"
)

const weakPasswordHint = `please use a strong password (8+ char, at least one upper and one lower, ` +
	`at least one letter and one number, and at least one special character, from "!", "@", "#", "?")`

func (a *App) createPatient(ctx context.Context, tokens []string) {
	a.createAccount(ctx, models.RolePatient, "Create patient failed", tokens)
}

func (a *App) createCaregiver(ctx context.Context, tokens []string) {
	a.createAccount(ctx, models.RoleCaregiver, "Create caregiver failed", tokens)
}

func (a *App) createAccount(ctx context.Context, role models.Role, failMsg string, tokens []string) {
	if len(tokens) != 3 {
		a.println(failMsg)
		return
	}
	username, password := tokens[1], tokens[2]

	err := a.accounts.Register(ctx, role, username, password)
	switch {
	case err == nil:
		a.println("Created user " + username)
	case errors.Is(err, common.ErrWeakPassword):
		a.println(failMsg + ", " + weakPasswordHint)
	case errors.Is(err, common.ErrUsernameTaken):
		a.println("Username taken, try again")
	default:
		a.log.Debug(ctx, "create account failed", "role", role, "error", err)
		a.println(failMsg)
	}
}

func (a *App) loginPatient(ctx context.Context, tokens []string) {
	username, ok := a.login(ctx, models.RolePatient, "Login patient failed", tokens)
	if ok {
		a.currentPatient = username
	}
}

func (a *App) loginCaregiver(ctx context.Context, tokens []string) {
	username, ok := a.login(ctx, models.RoleCaregiver, "Login caregiver failed", tokens)
	if ok {
		a.currentCaregiver = username
	}
}

func (a *App) login(ctx context.Context, role models.Role, failMsg string, tokens []string) (string, bool) {
	if a.loggedIn() {
		a.println("User already logged in, try again")
		return "", false
	}
	if len(tokens) != 3 {
		a.println(failMsg)
		return "", false
	}
	username, password := tokens[1], tokens[2]

	if err := a.accounts.Authenticate(ctx, role, username, password); err != nil {
		if !errors.Is(err, common.ErrInvalidCredentials) {
			a.log.Debug(ctx, "login failed", "role", role, "error", err)
		}
		a.println(failMsg)
		return "", false
	}

	a.println("Logged in as " + username)
	return username, true
}

func (a *App) logout(tokens []string) {
	if len(tokens) != 1 {
		a.println("Please try again")
		return
	}
	if !a.loggedIn() {
		a.println("Please login first")
		return
	}
	a.currentPatient = ""
	a.currentCaregiver = ""
	a.println("Successfully logged out")
}
