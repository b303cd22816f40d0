package berkas

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"
)

// trackingUserStore wraps MockUserStore and counts store calls
type trackingUserStore struct {
	*MockUserStore
	findByUsernameCalls int
	findByTokenCalls    int
	saveCalls           int
}

func newTrackingUserStore() *trackingUserStore {
	return &trackingUserStore{MockUserStore: NewMockUserStore()}
}

func (s *trackingUserStore) FindByUsername(ctx context.Context, username string) (*User, error) {
	s.findByUsernameCalls++
	return s.MockUserStore.FindByUsername(ctx, username)
}

func (s *trackingUserStore) FindByToken(ctx context.Context, token string) (*User, error) {
	s.findByTokenCalls++
	return s.MockUserStore.FindByToken(ctx, token)
}

func (s *trackingUserStore) Save(ctx context.Context, user *User) error {
	s.saveCalls++
	return s.MockUserStore.Save(ctx, user)
}

func testLogger() *Logger {
	return NewLoggerWithWriter(io.Discard, slog.LevelError)
}

func newTestAuthService(t *testing.T, store UserStore) *AuthService {
	t.Helper()

	helper, err := NewJWTHelper(testAuthConfig(time.Hour))
	if err != nil {
		t.Fatalf("NewJWTHelper() error = %v", err)
	}

	return NewAuthService(helper, store, "auth-token", testLogger())
}

func seedUser(t *testing.T, store UserStore, username, password string) {
	t.Helper()

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if err := store.Save(context.Background(), &User{Username: username, Password: hash}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
}

func TestLoginNilCredentials(t *testing.T) {
	store := NewMockUserStore()
	service := newTestAuthService(t, store)

	login, loginErrs, err := service.Login(context.Background(), nil)
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if login != nil {
		t.Errorf("login = %v, want nil", login)
	}
	if loginErrs == nil || len(loginErrs.Email) != 1 {
		t.Fatalf("expected one email error, got %v", loginErrs)
	}
	if loginErrs.Email[0] != "Invalid credentials" {
		t.Errorf("email error = %q, want %q", loginErrs.Email[0], "Invalid credentials")
	}
}

func TestLoginBlankUsernameNeverTouchesStore(t *testing.T) {
	store := newTrackingUserStore()
	service := newTestAuthService(t, store)

	_, loginErrs, err := service.Login(context.Background(), &UserCreds{Login: "   ", Password: "pw"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if loginErrs == nil || len(loginErrs.Email) != 1 || loginErrs.Email[0] != "Email required" {
		t.Errorf("expected email-required error, got %v", loginErrs)
	}
	if store.findByUsernameCalls != 0 || store.saveCalls != 0 {
		t.Errorf("store touched on blank username: finds=%d saves=%d", store.findByUsernameCalls, store.saveCalls)
	}
}

func TestLoginBlankPassword(t *testing.T) {
	store := NewMockUserStore()
	service := newTestAuthService(t, store)

	_, loginErrs, err := service.Login(context.Background(), &UserCreds{Login: "alice", Password: ""})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if loginErrs == nil || len(loginErrs.Password) != 1 || loginErrs.Password[0] != "Password required" {
		t.Errorf("expected password-required error, got %v", loginErrs)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	store := NewMockUserStore()
	service := newTestAuthService(t, store)

	_, loginErrs, err := service.Login(context.Background(), &UserCreds{Login: "ghost", Password: "pw"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if loginErrs == nil || len(loginErrs.Email) != 1 || loginErrs.Email[0] != "Incorrect email" {
		t.Errorf("expected incorrect-email error, got %v", loginErrs)
	}
}

func TestLoginWrongPasswordLeavesTokenUnchanged(t *testing.T) {
	store := NewMockUserStore()
	service := newTestAuthService(t, store)

	seedUser(t, store, "alice", "correct")

	// Establish a session first
	login, _, err := service.Login(context.Background(), &UserCreds{Login: "alice", Password: "correct"})
	if err != nil || login == nil {
		t.Fatalf("first login failed: %v %v", login, err)
	}

	_, loginErrs, err := service.Login(context.Background(), &UserCreds{Login: "alice", Password: "wrong"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if loginErrs == nil || len(loginErrs.Password) != 1 || loginErrs.Password[0] != "Incorrect password" {
		t.Errorf("expected incorrect-password error, got %v", loginErrs)
	}

	user, _ := store.FindByUsername(context.Background(), "alice")
	if user.Token != login.Token {
		t.Errorf("stored token changed on failed login")
	}
}

func TestLoginSuccessRoundTrip(t *testing.T) {
	store := NewMockUserStore()
	service := newTestAuthService(t, store)

	seedUser(t, store, "alice", "secret")

	login, loginErrs, err := service.Login(context.Background(), &UserCreds{Login: "alice", Password: "secret"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if loginErrs != nil {
		t.Fatalf("unexpected login errors: %v", loginErrs)
	}
	if login == nil || login.Token == "" {
		t.Fatalf("expected token, got %v", login)
	}

	// Returned token's subject matches the username
	username, err := service.jwtHelper.ExtractUsername(login.Token)
	if err != nil || username != "alice" {
		t.Errorf("token subject = %q (%v), want alice", username, err)
	}

	// Store now holds exactly that token
	user, _ := store.FindByUsername(context.Background(), "alice")
	if user.Token != login.Token {
		t.Errorf("stored token = %q, want returned token", user.Token)
	}

	if !service.jwtHelper.ValidateToken(login.Token, "alice") {
		t.Errorf("minted token does not validate for its own user")
	}
}

func TestSecondLoginRevokesFirstToken(t *testing.T) {
	store := NewMockUserStore()
	service := newTestAuthService(t, store)

	seedUser(t, store, "alice", "secret")

	first, _, err := service.Login(context.Background(), &UserCreds{Login: "alice", Password: "secret"})
	if err != nil || first == nil {
		t.Fatalf("first login failed: %v", err)
	}

	// Second login mints a token with a later iat
	time.Sleep(1100 * time.Millisecond)
	second, _, err := service.Login(context.Background(), &UserCreds{Login: "alice", Password: "secret"})
	if err != nil || second == nil {
		t.Fatalf("second login failed: %v", err)
	}

	if first.Token == second.Token {
		t.Fatalf("second login returned the same token")
	}

	// First token still passes standalone validation...
	if !service.jwtHelper.ValidateToken(first.Token, "alice") {
		t.Errorf("first token should still pass signature/expiry validation")
	}

	// ...but fails the stored-token-equality gate
	if _, err := store.FindByToken(context.Background(), first.Token); err == nil {
		t.Errorf("first token should no longer match any stored token")
	}
	if _, err := store.FindByToken(context.Background(), second.Token); err != nil {
		t.Errorf("second token should match the stored token: %v", err)
	}
}

func TestLogoutClearsToken(t *testing.T) {
	store := NewMockUserStore()
	service := newTestAuthService(t, store)

	seedUser(t, store, "alice", "secret")

	login, _, err := service.Login(context.Background(), &UserCreds{Login: "alice", Password: "secret"})
	if err != nil || login == nil {
		t.Fatalf("login failed: %v", err)
	}

	service.Logout(context.Background(), login.Token)

	user, _ := store.FindByUsername(context.Background(), "alice")
	if user.Token != "" {
		t.Errorf("stored token = %q, want cleared", user.Token)
	}
}

func TestLogoutIdempotent(t *testing.T) {
	store := NewMockUserStore()
	service := newTestAuthService(t, store)

	seedUser(t, store, "alice", "secret")

	login, _, err := service.Login(context.Background(), &UserCreds{Login: "alice", Password: "secret"})
	if err != nil || login == nil {
		t.Fatalf("login failed: %v", err)
	}

	service.Logout(context.Background(), login.Token)
	service.Logout(context.Background(), login.Token)

	user, _ := store.FindByUsername(context.Background(), "alice")
	if user.Token != "" {
		t.Errorf("stored token = %q, want cleared after repeated logout", user.Token)
	}
}

func TestLogoutWithGarbageTokenIsNoOp(t *testing.T) {
	store := NewMockUserStore()
	service := newTestAuthService(t, store)

	seedUser(t, store, "alice", "secret")

	login, _, _ := service.Login(context.Background(), &UserCreds{Login: "alice", Password: "secret"})

	service.Logout(context.Background(), "Bearer not-a-real-token")
	service.Logout(context.Background(), "")

	user, _ := store.FindByUsername(context.Background(), "alice")
	if user.Token != login.Token {
		t.Errorf("garbage logout should not clear an unrelated session")
	}
}

func TestLogoutToleratesBearerPrefix(t *testing.T) {
	store := NewMockUserStore()
	service := newTestAuthService(t, store)

	seedUser(t, store, "alice", "secret")

	login, _, _ := service.Login(context.Background(), &UserCreds{Login: "alice", Password: "secret"})

	service.Logout(context.Background(), "Bearer "+login.Token)

	user, _ := store.FindByUsername(context.Background(), "alice")
	if user.Token != "" {
		t.Errorf("logout with Bearer prefix should clear the token")
	}
}
