package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"postboard/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const testSigningKey = "test-signing-key"

func newTestAuthService(repo *mockUsersRepo) *AuthService {
	return NewAuthService(repo, AuthConfig{SigningKey: testSigningKey})
}

// mockUsersRepo is a lightweight in-test mock for repository.Users.
type mockUsersRepo struct {
	CreateFn         func(username, hash string) (int, error)
	GetByUsernameFn  func(username string) (*models.User, error)
	GetByIDFn        func(id int) (*models.User, error)
	ListFn           func() ([]models.User, error)
	UpdateUsernameFn func(id int, username string) (int64, error)
	UpdatePasswordFn func(id int, hash string) (int64, error)

	createCalls []struct {
		username string
		hash     string
	}
	getCalls []string
}

func (m *mockUsersRepo) Create(_ context.Context, username, hash string) (int, error) {
	m.createCalls = append(m.createCalls, struct {
		username string
		hash     string
	}{username: username, hash: hash})
	return m.CreateFn(username, hash)
}

func (m *mockUsersRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	m.getCalls = append(m.getCalls, username)
	if m.GetByUsernameFn == nil {
		return nil, nil
	}
	return m.GetByUsernameFn(username)
}

func (m *mockUsersRepo) GetByID(_ context.Context, id int) (*models.User, error) {
	if m.GetByIDFn == nil {
		return nil, nil
	}
	return m.GetByIDFn(id)
}

func (m *mockUsersRepo) List(_ context.Context) ([]models.User, error) {
	if m.ListFn == nil {
		return nil, nil
	}
	return m.ListFn()
}

func (m *mockUsersRepo) UpdateUsername(_ context.Context, id int, username string) (int64, error) {
	if m.UpdateUsernameFn == nil {
		return 1, nil
	}
	return m.UpdateUsernameFn(id, username)
}

func (m *mockUsersRepo) UpdatePassword(_ context.Context, id int, hash string) (int64, error) {
	if m.UpdatePasswordFn == nil {
		return 1, nil
	}
	return m.UpdatePasswordFn(id, hash)
}

// --- SignUp tests ---

func TestAuthService_SignUp_SuccessHashesPasswordAndCallsRepo(t *testing.T) {
	mock := &mockUsersRepo{
		CreateFn: func(username, hash string) (int, error) {
			return 42, nil
		},
	}
	svc := newTestAuthService(mock)

	id, err := svc.SignUp(context.Background(), "alice", "s3cr3t")
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}

	// Ensure Create called exactly once with hashed password (not equal to raw) and valid bcrypt.
	if len(mock.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(mock.createCalls))
	}
	call := mock.createCalls[0]
	if call.username != "alice" {
		t.Errorf("expected username 'alice', got %q", call.username)
	}
	if call.hash == "s3cr3t" {
		t.Errorf("expected hashed password not equal to raw password")
	}
	if err := verifyPassword(call.hash, "s3cr3t"); err != nil {
		t.Errorf("stored hash does not verify with original password: %v", err)
	}
}

func TestAuthService_SignUp_DuplicateUsername(t *testing.T) {
	mock := &mockUsersRepo{
		GetByUsernameFn: func(username string) (*models.User, error) {
			return &models.User{ID: 1, Username: username}, nil
		},
		CreateFn: func(username, hash string) (int, error) {
			t.Fatal("Create should not be called for a taken username")
			return 0, nil
		},
	}
	svc := newTestAuthService(mock)

	_, err := svc.SignUp(context.Background(), "alice", "pw")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got: %v", err)
	}
	if len(mock.createCalls) != 0 {
		t.Fatalf("expected no Create calls, got %d", len(mock.createCalls))
	}
}

func TestAuthService_SignUp_EmptyPassword(t *testing.T) {
	mock := &mockUsersRepo{
		CreateFn: func(username, hash string) (int, error) {
			t.Fatal("Create should not be called for empty password")
			return 0, nil
		},
	}
	svc := newTestAuthService(mock)

	_, err := svc.SignUp(context.Background(), "bob", "   ")
	if err == nil {
		t.Fatalf("expected error for empty password, got nil")
	}
	if len(mock.createCalls) != 0 {
		t.Fatalf("expected no Create calls, got %d", len(mock.createCalls))
	}
}

func TestAuthService_SignUp_RepoError(t *testing.T) {
	mock := &mockUsersRepo{
		CreateFn: func(username, hash string) (int, error) {
			return 0, errors.New("db down")
		},
	}
	svc := newTestAuthService(mock)

	_, err := svc.SignUp(context.Background(), "carl", "pass123")
	if err == nil {
		t.Fatalf("expected repo error, got nil")
	}
}

// --- GenerateToken tests ---

func TestAuthService_GenerateToken_Success(t *testing.T) {
	// Prepare a user with a valid bcrypt hash for the provided password.
	hash, err := hashPassword("letmein")
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	user := &models.User{ID: 7, Username: "diana", PasswordHash: hash}

	mock := &mockUsersRepo{
		GetByUsernameFn: func(username string) (*models.User, error) {
			if username != "diana" {
				t.Fatalf("expected username 'diana', got %q", username)
			}
			return user, nil
		},
	}
	svc := newTestAuthService(mock)

	token, err := svc.GenerateToken(context.Background(), "diana", "letmein")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	// Validate the token parses and returns the correct user id.
	uid, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if uid != 7 {
		t.Fatalf("expected user id 7 from token, got %d", uid)
	}
}

func TestAuthService_GenerateToken_UserNotFound(t *testing.T) {
	mock := &mockUsersRepo{
		GetByUsernameFn: func(username string) (*models.User, error) {
			return nil, nil
		},
	}
	svc := newTestAuthService(mock)

	_, err := svc.GenerateToken(context.Background(), "ghost", "pw")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got: %v", err)
	}
}

func TestAuthService_GenerateToken_InvalidPassword(t *testing.T) {
	correctHash, err := hashPassword("correct")
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	mock := &mockUsersRepo{
		GetByUsernameFn: func(username string) (*models.User, error) {
			return &models.User{ID: 1, Username: "eve", PasswordHash: correctHash}, nil
		},
	}
	svc := newTestAuthService(mock)

	_, err = svc.GenerateToken(context.Background(), "eve", "wrong")
	if !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got: %v", err)
	}
}

// --- ParseToken tests ---

func TestAuthService_ParseToken_Success(t *testing.T) {
	svc := newTestAuthService(&mockUsersRepo{})
	token, err := svc.issueToken(99)
	if err != nil {
		t.Fatalf("issueToken failed: %v", err)
	}

	uid, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken returned error: %v", err)
	}
	if uid != 99 {
		t.Fatalf("expected user id 99, got %d", uid)
	}
}

func TestAuthService_IssueToken_UniqueTokenID(t *testing.T) {
	svc := newTestAuthService(&mockUsersRepo{})

	jtis := map[string]bool{}
	for i := 0; i < 5; i++ {
		token, err := svc.issueToken(1)
		if err != nil {
			t.Fatalf("issueToken failed: %v", err)
		}
		parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (interface{}, error) {
			return []byte(testSigningKey), nil
		})
		if err != nil {
			t.Fatalf("parse issued token: %v", err)
		}
		claims := parsed.Claims.(*Claims)
		if claims.ID == "" {
			t.Fatal("expected non-empty jti claim")
		}
		if jtis[claims.ID] {
			t.Fatalf("duplicate jti %q", claims.ID)
		}
		jtis[claims.ID] = true
	}
}

func TestAuthService_ParseToken_Malformed(t *testing.T) {
	svc := newTestAuthService(&mockUsersRepo{})
	_, err := svc.ParseToken("not-a-jwt")
	if err == nil {
		t.Fatalf("expected error for malformed token")
	}
}

func TestAuthService_ParseToken_InvalidSignature(t *testing.T) {
	svc := newTestAuthService(&mockUsersRepo{})

	// Create a token signed with a different key.
	now := time.Now()
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: 5,
	})
	badToken, err := tk.SignedString([]byte("different-key"))
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	_, err = svc.ParseToken(badToken)
	if err == nil {
		t.Fatalf("expected signature verification error")
	}
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	svc := newTestAuthService(&mockUsersRepo{})

	// Issue an already expired token using the same signing key.
	past := time.Now().Add(-2 * time.Hour)
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(past),
			IssuedAt:  jwt.NewNumericDate(past.Add(-time.Minute)),
		},
		UserID: 11,
	})
	expiredToken, err := tk.SignedString([]byte(testSigningKey))
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	_, err = svc.ParseToken(expiredToken)
	if err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestAuthService_ParseToken_UnexpectedAlg(t *testing.T) {
	svc := newTestAuthService(&mockUsersRepo{})

	now := time.Now()
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("rsa.GenerateKey failed: %v", err)
	}

	tk := jwt.NewWithClaims(jwt.SigningMethodRS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: 12,
	})
	tokenStr, err := tk.SignedString(privateKey)
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	_, err = svc.ParseToken(tokenStr)
	if err == nil {
		t.Fatalf("expected error due to unexpected signing method")
	}
}

// --- Identify tests ---

func TestAuthService_Identify(t *testing.T) {
	mock := &mockUsersRepo{
		GetByIDFn: func(id int) (*models.User, error) {
			if id == 7 {
				return &models.User{ID: 7, Username: "diana", PasswordHash: "h"}, nil
			}
			return nil, nil
		},
	}
	svc := newTestAuthService(mock)

	ident, err := svc.Identify(context.Background(), 7)
	if err != nil {
		t.Fatalf("Identify returned error: %v", err)
	}
	if ident.ID != 7 || ident.Username != "diana" {
		t.Fatalf("unexpected identity: %+v", ident)
	}

	_, err = svc.Identify(context.Background(), 8)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for missing account, got: %v", err)
	}
}
