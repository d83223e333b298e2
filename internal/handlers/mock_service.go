package handlers

import (
	"context"
	"net/http"

	"postboard/internal/models"
	"postboard/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error
	identity      *models.Identity
	identifyErr   error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(_ context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}

func (m *mockAuth) GenerateToken(_ context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}

func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

func (m *mockAuth) Identify(_ context.Context, userID int) (*models.Identity, error) {
	if m.identifyErr != nil {
		return nil, m.identifyErr
	}
	if m.identity != nil {
		return m.identity, nil
	}
	return &models.Identity{ID: userID, Username: "tester"}, nil
}

type mockProfile struct {
	users       []models.PublicUser
	listErr     error
	getUser     *models.PublicUser
	getErr      error
	renameErr   error
	passwordErr error

	lastRenameID       int
	lastRenameUsername string
	lastPasswordID     int
	lastOldPassword    string
	lastNewPassword    string
}

func (m *mockProfile) List(_ context.Context) ([]models.PublicUser, error) {
	return m.users, m.listErr
}

func (m *mockProfile) GetByID(_ context.Context, id int) (*models.PublicUser, error) {
	return m.getUser, m.getErr
}

func (m *mockProfile) Rename(_ context.Context, id int, username string) error {
	m.lastRenameID = id
	m.lastRenameUsername = username
	return m.renameErr
}

func (m *mockProfile) ChangePassword(_ context.Context, id int, oldPassword, newPassword string) error {
	m.lastPasswordID = id
	m.lastOldPassword = oldPassword
	m.lastNewPassword = newPassword
	return m.passwordErr
}

type mockPosts struct {
	created    models.Post
	createErr  error
	list       []models.Post
	listErr    error
	getPost    models.Post
	getErr     error
	page       models.PostPage
	pageErr    error
	updateRows int64
	updateErr  error
	deleteRows int64
	deleteErr  error

	lastCreateAuthor string
	lastCreateTitle  string
	lastCreateDesc   string
	lastQuery        service.PostQuery
	lastCaller       string
	lastMutateID     int
	lastPatch        service.PostPatch
	pageCalls        int
	listCalls        int
}

func (m *mockPosts) Create(_ context.Context, author, title, description string) (models.Post, error) {
	m.lastCreateAuthor = author
	m.lastCreateTitle = title
	m.lastCreateDesc = description
	return m.created, m.createErr
}

func (m *mockPosts) List(_ context.Context) ([]models.Post, error) {
	m.listCalls++
	return m.list, m.listErr
}

func (m *mockPosts) GetByID(_ context.Context, id int) (models.Post, error) {
	return m.getPost, m.getErr
}

func (m *mockPosts) PageOf(_ context.Context, q service.PostQuery) (models.PostPage, error) {
	m.pageCalls++
	m.lastQuery = q
	return m.page, m.pageErr
}

func (m *mockPosts) Update(_ context.Context, caller string, id int, patch service.PostPatch) (int64, error) {
	m.lastCaller = caller
	m.lastMutateID = id
	m.lastPatch = patch
	return m.updateRows, m.updateErr
}

func (m *mockPosts) Delete(_ context.Context, caller string, id int) (int64, error) {
	m.lastCaller = caller
	m.lastMutateID = id
	return m.deleteRows, m.deleteErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
