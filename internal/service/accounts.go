// Package service contains the application services of the scheduler:
// account registration and authentication, schedule queries and mutations,
// and the reservation/cancellation workflow.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/Zetpete/Vaccine-Scheduler/internal/common"
	"github.com/Zetpete/Vaccine-Scheduler/internal/cryptox"
	"github.com/Zetpete/Vaccine-Scheduler/internal/dbx"
	"github.com/Zetpete/Vaccine-Scheduler/internal/models"
	"github.com/Zetpete/Vaccine-Scheduler/internal/repositories/accounts"
	"github.com/Zetpete/Vaccine-Scheduler/internal/repositories/repomanager"
)

// specialChars is the set a strong password must draw at least one character from.
const specialChars = "!@#?"

// Accounts registers and authenticates patient and caregiver accounts.
type Accounts interface {
	// Register creates an account after checking the password strength policy
	// and username availability. Returns common.ErrWeakPassword or
	// common.ErrUsernameTaken on policy failures.
	Register(ctx context.Context, role models.Role, username, password string) error

	// Authenticate verifies the password against the stored salt and hash.
	// Unknown usernames and wrong passwords both return
	// common.ErrInvalidCredentials.
	Authenticate(ctx context.Context, role models.Role, username, password string) error
}

type accountService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewAccounts(db *sql.DB, repos repomanager.RepositoryManager) Accounts {
	return &accountService{db: db, repos: repos}
}

func (s *accountService) repo(role models.Role, db dbx.DBTX) accounts.Repository {
	if role == models.RoleCaregiver {
		return s.repos.Caregivers(db)
	}
	return s.repos.Patients(db)
}

// IsStrongPassword reports whether password satisfies the strength policy:
// at least 8 characters, with an uppercase letter, a lowercase letter,
// a digit, and one of "!@#?".
func IsStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		case strings.ContainsRune(specialChars, c):
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasDigit && hasSpecial
}

func (s *accountService) Register(ctx context.Context, role models.Role, username, password string) error {
	if !IsStrongPassword(password) {
		return common.ErrWeakPassword
	}

	repo := s.repo(role, s.db)

	// The existence check and the insert are deliberately separate
	// statements: a concurrent registration of the same username between
	// them is an accepted limitation of the single-user CLI.
	exists, err := repo.Exists(ctx, username)
	if err != nil {
		return fmt.Errorf("error checking username: %w", err)
	}
	if exists {
		return common.ErrUsernameTaken
	}

	salt := cryptox.GenerateSalt()
	hash := cryptox.HashPassword([]byte(password), salt)

	account := &models.Account{Username: username, Salt: salt, Hash: hash}
	if err := repo.Create(ctx, account); err != nil {
		return fmt.Errorf("error creating account: %w", err)
	}
	return nil
}

func (s *accountService) Authenticate(ctx context.Context, role models.Role, username, password string) error {
	account, err := s.repo(role, s.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrInvalidCredentials
		}
		return fmt.Errorf("error fetching account: %w", err)
	}

	if !cryptox.VerifyPassword([]byte(password), account.Salt, account.Hash) {
		return common.ErrInvalidCredentials
	}
	return nil
}
