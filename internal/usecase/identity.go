package usecase

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/causewayhq/causeway/internal/domain"
)

const minPasswordLen = 8

// Session is the result of a successful login.
type Session struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      domain.User `json:"user"`
}

// IdentityUsecase covers registration, login and one-time code verification.
// Token and hash mechanics live behind the TokenIssuer/PasswordHasher ports.
type IdentityUsecase struct {
	users  UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
	codes  CodeStore
	sender CodeSender
}

func NewIdentityUsecase(users UserRepository, hasher PasswordHasher, tokens TokenIssuer, codes CodeStore, sender CodeSender) *IdentityUsecase {
	return &IdentityUsecase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		codes:  codes,
		sender: sender,
	}
}

// Register creates a donor account and issues an email verification code.
func (uc *IdentityUsecase) Register(ctx context.Context, email, password, name string) (domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.User{}, domain.ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return domain.User{}, domain.ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}
	if strings.TrimSpace(name) == "" {
		return domain.User{}, domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}

	_, err := uc.users.GetByEmail(ctx, email)
	if err == nil {
		return domain.User{}, domain.ConflictError{Reason: "an account with this email already exists"}
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, err
	}

	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(name),
		Role:         domain.RoleDonor,
		CreatedAt:    time.Now().UTC(),
	}
	user, err = uc.users.Create(ctx, user)
	if err != nil {
		return domain.User{}, err
	}

	code, err := uc.codes.Issue(ctx, email, domain.CodePurposeEmailVerification)
	if err != nil {
		return domain.User{}, err
	}
	if err := uc.sender.Send(ctx, code); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// Login verifies credentials and mints a session token.
func (uc *IdentityUsecase) Login(ctx context.Context, email, password string) (Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Session{}, domain.AuthorizationError{Reason: "invalid credentials"}
		}
		return Session{}, err
	}
	if err := uc.hasher.Compare(user.PasswordHash, password); err != nil {
		return Session{}, domain.AuthorizationError{Reason: "invalid credentials"}
	}

	token, expiresAt, err := uc.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// VerifyEmail consumes an email verification code and marks the account
// verified.
func (uc *IdentityUsecase) VerifyEmail(ctx context.Context, email, code string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	if err := uc.codes.Verify(ctx, email, code, domain.CodePurposeEmailVerification); err != nil {
		return err
	}

	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	user.EmailVerified = true
	return uc.users.Update(ctx, user)
}

// RequestPasswordReset issues a reset code when the account exists. An
// unknown email is not distinguishable to the caller.
func (uc *IdentityUsecase) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	_, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}

	code, err := uc.codes.Issue(ctx, email, domain.CodePurposePasswordReset)
	if err != nil {
		return err
	}
	return uc.sender.Send(ctx, code)
}

// ResetPassword consumes a reset code and replaces the password.
func (uc *IdentityUsecase) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if utf8.RuneCountInString(newPassword) < minPasswordLen {
		return domain.ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}

	if err := uc.codes.Verify(ctx, email, code, domain.CodePurposePasswordReset); err != nil {
		return err
	}

	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	hash, err := uc.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return uc.users.Update(ctx, user)
}

// Me returns the caller's own account.
func (uc *IdentityUsecase) Me(ctx context.Context, userID string) (domain.User, error) {
	return uc.users.Get(ctx, userID)
}
