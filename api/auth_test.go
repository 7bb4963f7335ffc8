package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"familybudget/config"
	"familybudget/database"
	"familybudget/middleware"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	oldDB := database.DB
	database.DB = gormDB
	return mock, func() {
		database.DB = oldDB
		sqlDB.Close()
	}
}

func setupTestConfig() (*config.Config, func()) {
	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "debug"},
		JWT:    config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
	}
	config.GlobalConfig = cfg
	middleware.InitJWT(cfg)
	return cfg, func() { config.GlobalConfig = nil }
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "email", "password", "created_at", "updated_at", "deleted_at"})
}

func TestAuthHandler_Register(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg, reset := setupTestConfig()
	defer reset()

	// 检查邮箱不存在：SELECT 返回无记录
	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("a@x.com").
		WillReturnRows(userRows())

	// GORM Create 使用事务
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth/register", NewAuthHandler(cfg).Register)

	body := `{"name":"Alice","email":"a@x.com","password":"secret1"}`
	req := httptest.NewRequest("POST", "/auth/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "a@x.com", resp["user"]["email"])
	assert.Equal(t, "Alice", resp["user"]["name"])
	assert.Equal(t, float64(1), resp["user"]["id"])
	assert.NotEmpty(t, resp["user"]["createdAt"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg, reset := setupTestConfig()
	defer reset()

	// SELECT 返回已有用户
	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("a@x.com").
		WillReturnRows(userRows().
			AddRow(1, "Alice", "a@x.com", "hash", time.Now(), time.Now(), nil))

	router := gin.New()
	router.POST("/auth/register", NewAuthHandler(cfg).Register)

	body := `{"email":"a@x.com","password":"secret1"}`
	req := httptest.NewRequest("POST", "/auth/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Email already in use", resp["error"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()
	cfg, reset := setupTestConfig()
	defer reset()

	router := gin.New()
	router.POST("/auth/register", NewAuthHandler(cfg).Register)

	cases := []struct {
		body    string
		message string
	}{
		{`{"email":"not-an-email","password":"secret1"}`, "Please enter a valid email address"},
		{`{"email":"a@x.com","password":"short"}`, "Password must be at least 6 characters"},
		{`{"password":"secret1"}`, "Email is required"},
		{`not json`, "Invalid request"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest("POST", "/auth/register", bytes.NewBufferString(tc.body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, tc.message, resp["error"])
	}
}

func TestAuthHandler_Login(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg, reset := setupTestConfig()
	defer reset()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("a@x.com").
		WillReturnRows(userRows().
			AddRow(1, "Alice", "a@x.com", string(hashed), time.Now(), time.Now(), nil))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth/login", NewAuthHandler(cfg).Login)

	body := `{"email":"a@x.com","password":"secret1"}`
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)

	var resp map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "a@x.com", resp["user"]["email"])

	// 会话写入 http-only cookie
	var session *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.TokenCookieName {
			session = ck
		}
	}
	require.NotNil(t, session)
	assert.NotEmpty(t, session.Value)
	assert.True(t, session.HttpOnly)

	// 签发的令牌可解析回用户
	claims, err := middleware.ParseToken(session.Value)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg, reset := setupTestConfig()
	defer reset()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)

	// 密码错误
	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("a@x.com").
		WillReturnRows(userRows().
			AddRow(1, "Alice", "a@x.com", string(hashed), time.Now(), time.Now(), nil))

	router := gin.New()
	router.POST("/auth/login", NewAuthHandler(cfg).Login)

	req := httptest.NewRequest("POST", "/auth/login", bytes.NewBufferString(`{"email":"a@x.com","password":"wrong-pass"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 401, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")

	// 用户不存在
	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("nobody@x.com").
		WillReturnRows(userRows())

	req = httptest.NewRequest("POST", "/auth/login", bytes.NewBufferString(`{"email":"nobody@x.com","password":"secret1"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 401, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Me(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg, reset := setupTestConfig()
	defer reset()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs(1).
		WillReturnRows(userRows().
			AddRow(1, "Alice", "a@x.com", "hash", time.Now(), time.Now(), nil))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/auth/me", NewAuthHandler(cfg).Me)

	req := httptest.NewRequest("GET", "/auth/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "a@x.com", resp["user"]["email"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Logout(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()
	cfg, reset := setupTestConfig()
	defer reset()

	router := gin.New()
	router.POST("/auth/logout", NewAuthHandler(cfg).Logout)

	req := httptest.NewRequest("POST", "/auth/logout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)

	// cookie 被清除
	var session *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.TokenCookieName {
			session = ck
		}
	}
	require.NotNil(t, session)
	assert.Empty(t, session.Value)
	assert.Less(t, session.MaxAge, 0)
}
