package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/causewayhq/causeway/internal/domain"
)

type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hash:" + plain, nil }
func (fakeHasher) Compare(hash, plain string) error {
	if hash != "hash:"+plain {
		return errors.New("mismatch")
	}
	return nil
}

type fakeTokens struct{}

func (fakeTokens) Issue(userID string, role domain.Role) (string, time.Time, error) {
	return "token:" + userID, time.Now().Add(time.Hour), nil
}

type fakeCodes struct {
	issued map[string]string
}

func (f *fakeCodes) Issue(ctx context.Context, email string, purpose domain.CodePurpose) (domain.OneTimeCode, error) {
	if f.issued == nil {
		f.issued = map[string]string{}
	}
	code := "123456"
	f.issued[string(purpose)+":"+email] = code
	return domain.OneTimeCode{Email: email, Code: code, Purpose: purpose}, nil
}

func (f *fakeCodes) Verify(ctx context.Context, email, code string, purpose domain.CodePurpose) error {
	key := string(purpose) + ":" + email
	if f.issued[key] != code {
		return domain.ValidationError{Field: "code", Reason: "invalid or expired code"}
	}
	delete(f.issued, key)
	return nil
}

type fakeSender struct {
	sent []domain.OneTimeCode
}

func (f *fakeSender) Send(ctx context.Context, code domain.OneTimeCode) error {
	f.sent = append(f.sent, code)
	return nil
}

func newIdentity(m *memStores) (*IdentityUsecase, *fakeCodes, *fakeSender) {
	codes := &fakeCodes{}
	sender := &fakeSender{}
	uc := NewIdentityUsecase(m.stores().Users, fakeHasher{}, fakeTokens{}, codes, sender)
	return uc, codes, sender
}

func TestRegisterCreatesDonor(t *testing.T) {
	m := newMemStores()
	uc, _, sender := newIdentity(m)

	user, err := uc.Register(context.Background(), "Dave@Example.com", "correct horse", "Dave")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Role != domain.RoleDonor {
		t.Fatalf("expected donor role, got %s", user.Role)
	}
	if user.Email != "dave@example.com" {
		t.Fatalf("expected normalized email, got %s", user.Email)
	}
	if len(sender.sent) != 1 || sender.sent[0].Purpose != domain.CodePurposeEmailVerification {
		t.Fatalf("expected a verification code to be sent")
	}
}

func TestRegisterValidation(t *testing.T) {
	m := newMemStores()
	uc, _, _ := newIdentity(m)

	if _, err := uc.Register(context.Background(), "bad", "correct horse", "Dave"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for email, got %v", err)
	}
	if _, err := uc.Register(context.Background(), "d@example.com", "short", "Dave"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for password, got %v", err)
	}
}

func TestRegisterConflictsOnDuplicateEmail(t *testing.T) {
	m := newMemStores()
	uc, _, _ := newIdentity(m)

	if _, err := uc.Register(context.Background(), "d@example.com", "correct horse", "Dave"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	_, err := uc.Register(context.Background(), "d@example.com", "correct horse", "Dave")
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	m := newMemStores()
	uc, _, _ := newIdentity(m)

	user, err := uc.Register(context.Background(), "d@example.com", "correct horse", "Dave")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	session, err := uc.Login(context.Background(), "d@example.com", "correct horse")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if session.Token != "token:"+user.ID {
		t.Fatalf("unexpected token %q", session.Token)
	}

	if _, err := uc.Login(context.Background(), "d@example.com", "wrong"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected authorization error for bad password, got %v", err)
	}
	if _, err := uc.Login(context.Background(), "nobody@example.com", "whatever"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("unknown email must not be distinguishable, got %v", err)
	}
}

func TestVerifyEmailConsumesCode(t *testing.T) {
	m := newMemStores()
	uc, codes, _ := newIdentity(m)

	if _, err := uc.Register(context.Background(), "d@example.com", "correct horse", "Dave"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := uc.VerifyEmail(context.Background(), "d@example.com", "000000"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for wrong code, got %v", err)
	}
	if err := uc.VerifyEmail(context.Background(), "d@example.com", "123456"); err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	user, _ := m.stores().Users.GetByEmail(context.Background(), "d@example.com")
	if !user.EmailVerified {
		t.Fatalf("expected user marked verified")
	}

	// Consumed codes never verify again.
	if err := uc.VerifyEmail(context.Background(), "d@example.com", "123456"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected reuse to fail, got %v", err)
	}
	_ = codes
}

func TestPasswordResetFlow(t *testing.T) {
	m := newMemStores()
	uc, _, sender := newIdentity(m)

	if _, err := uc.Register(context.Background(), "d@example.com", "correct horse", "Dave"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Unknown emails are silently accepted.
	if err := uc.RequestPasswordReset(context.Background(), "nobody@example.com"); err != nil {
		t.Fatalf("reset request for unknown email failed: %v", err)
	}

	if err := uc.RequestPasswordReset(context.Background(), "d@example.com"); err != nil {
		t.Fatalf("reset request failed: %v", err)
	}
	if len(sender.sent) != 2 {
		t.Fatalf("expected reset code sent")
	}

	if err := uc.ResetPassword(context.Background(), "d@example.com", "123456", "battery staple"); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if _, err := uc.Login(context.Background(), "d@example.com", "battery staple"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}
