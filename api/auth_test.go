package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"controle-financeiro/auth"
	"controle-financeiro/config"
	"controle-financeiro/middleware"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	return gormDB, mock
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Mode: "debug"},
		JWT:    config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
	}
}

func setUserIDMiddleware(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetCurrentUserID(c, userID)
		c.Next()
	}
}

// newTestRouter roteador com o usuário autenticado fixo
func newTestRouter(userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(userID))
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

var userColumns = []string{"id", "nome", "email", "senha", "data_criacao"}

func TestAuthHandler_Register(t *testing.T) {
	db, mock := setupMockDB(t)
	cfg := testConfig()
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpireTime)

	// email ainda não cadastrado
	mock.ExpectQuery("SELECT .* FROM `usuarios`").
		WithArgs("a@a.com").
		WillReturnRows(sqlmock.NewRows(userColumns))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `usuarios`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/register", NewAuthHandler(db, cfg, tokens).Register)

	w := doRequest(router, "POST", "/register", `{"nome":"A","email":"a@a.com","senha":"123456"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	resp := decodeBody(t, w)
	assert.Equal(t, true, resp["auth"])
	user := resp["user"].(map[string]interface{})
	assert.Equal(t, float64(1), user["id"])
	assert.Equal(t, "A", user["nome"])
	assert.Equal(t, "a@a.com", user["email"])
	assert.NotContains(t, user, "senha")

	// o token devolvido identifica o usuário criado
	userID, err := tokens.Verify(resp["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, uint(1), userID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	db, mock := setupMockDB(t)
	cfg := testConfig()

	mock.ExpectQuery("SELECT .* FROM `usuarios`").
		WithArgs("a@a.com").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, "A", "a@a.com", "hash", time.Now()))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/register", NewAuthHandler(db, cfg, auth.NewTokenManager("s", 0)).Register)

	w := doRequest(router, "POST", "/register", `{"nome":"A","email":"a@a.com","senha":"123456"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"Email já cadastrado"}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Register_DuplicateOnInsert(t *testing.T) {
	db, mock := setupMockDB(t)
	cfg := testConfig()

	mock.ExpectQuery("SELECT .* FROM `usuarios`").
		WillReturnRows(sqlmock.NewRows(userColumns))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `usuarios`").
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry 'a@a.com' for key 'usuarios.email'"})
	mock.ExpectRollback()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/register", NewAuthHandler(db, cfg, auth.NewTokenManager("s", 0)).Register)

	w := doRequest(router, "POST", "/register", `{"nome":"A","email":"a@a.com","senha":"123456"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	db, _ := setupMockDB(t)
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/register", NewAuthHandler(db, testConfig(), auth.NewTokenManager("s", 0)).Register)

	cases := map[string]string{
		`{"nome":"A","email":"a@a.com"}`:                "Todos os campos são obrigatórios",
		`{"nome":"A","email":"a@a.com","senha":"123"}`:  "A senha deve ter pelo menos 6 caracteres",
		`{"nome":"A","email":"a@a","senha":"123456"}`:   "Email inválido",
		`{"nome":"A","email":"a@a.com","senha":123456}`: "Todos os campos são obrigatórios",
	}
	for body, msg := range cases {
		w := doRequest(router, "POST", "/register", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, msg, decodeBody(t, w)["error"], body)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	db, mock := setupMockDB(t)
	cfg := testConfig()
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpireTime)
	hash, err := auth.HashPassword("123456")
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", NewAuthHandler(db, cfg, tokens).Login)

	// senha correta
	mock.ExpectQuery("SELECT .* FROM `usuarios`").
		WithArgs("demo@email.com").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(7, "Demo", "demo@email.com", hash, time.Now()))
	w := doRequest(router, "POST", "/login", `{"email":"demo@email.com","senha":"123456"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, true, resp["auth"])
	userID, err := tokens.Verify(resp["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)

	// senha errada
	mock.ExpectQuery("SELECT .* FROM `usuarios`").
		WithArgs("demo@email.com").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(7, "Demo", "demo@email.com", hash, time.Now()))
	w = doRequest(router, "POST", "/login", `{"email":"demo@email.com","senha":"errada"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"auth":false,"error":"Credenciais inválidas"}`, w.Body.String())

	// usuário inexistente
	mock.ExpectQuery("SELECT .* FROM `usuarios`").
		WithArgs("x@x.com").
		WillReturnRows(sqlmock.NewRows(userColumns))
	w = doRequest(router, "POST", "/login", `{"email":"x@x.com","senha":"123456"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Usuário não encontrado"}`, w.Body.String())

	// campos faltando
	w = doRequest(router, "POST", "/login", `{"email":"x@x.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Email e senha são obrigatórios"}`, w.Body.String())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Verify(t *testing.T) {
	db, _ := setupMockDB(t)
	cfg := testConfig()
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpireTime)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/verify", middleware.JWTAuth(tokens), NewAuthHandler(db, cfg, tokens).Verify)

	token, err := tokens.Generate(5)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/verify", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"auth":true,"userId":5}`, w.Body.String())

	// token adulterado
	req = httptest.NewRequest("GET", "/verify", nil)
	req.Header.Set("Authorization", "Bearer "+token+"x")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// sem token
	w = doRequest(router, "GET", "/verify", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
