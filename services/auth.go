package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/binderhq/binder/core"
)

// SignUpInput contains the credentials needed to register a new account
type SignUpInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInInput contains the credentials for authentication
type SignInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult contains the account and its freshly issued bearer token
type AuthResult struct {
	Account *core.Account `json:"account"`
	Token   string        `json:"token"`
}

type AuthService struct {
	db        core.Storage
	passwords core.PasswordHandler
	tokens    core.TokenHandler
}

func NewAuthService(db core.Storage, passwords core.PasswordHandler, tokens core.TokenHandler) *AuthService {
	return &AuthService{
		db:        db,
		passwords: passwords,
		tokens:    tokens,
	}
}

const minPasswordLength = 8

func validateCredentials(email, password string) error {
	if email == "" {
		return core.ErrEmailRequired
	}
	if !strings.Contains(email, "@") {
		return core.ErrInvalidEmail
	}
	if password == "" {
		return core.ErrPasswordRequired
	}
	if len(password) < minPasswordLength {
		return core.ErrPasswordTooShort
	}
	return nil
}

// SignUp registers a new account with email and password and issues its
// first bearer token.
func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if err := validateCredentials(email, input.Password); err != nil {
		return nil, err
	}

	existing, err := s.db.GetAccountByEmail(ctx, email)
	if err != nil && err != core.ErrAccountNotFound {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, core.ErrAccountExists
	}

	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &core.Account{
		Email: email,
		Hash:  hash,
	}
	if err := s.db.CreateAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResult{Account: account, Token: token}, nil
}

// SignIn authenticates an account with email and password. Unknown email
// and wrong password report the same error.
func (s *AuthService) SignIn(ctx context.Context, input SignInInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if email == "" {
		return nil, core.ErrEmailRequired
	}
	if input.Password == "" {
		return nil, core.ErrPasswordRequired
	}

	account, err := s.db.GetAccountByEmail(ctx, email)
	if err != nil {
		if err == core.ErrAccountNotFound {
			return nil, core.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	valid, err := s.passwords.Verify(input.Password, account.Hash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		return nil, core.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResult{Account: account, Token: token}, nil
}
