package api

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var goalColumns = []string{"id", "descricao", "valor_objetivo", "valor_atual", "data_limite", "usuario_id"}

func TestGoalHandler_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	router := newTestRouter(1)
	router.POST("/metas", NewGoalHandler(db, testConfig()).Create)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `metas`").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectCommit()

	w := doRequest(router, "POST", "/metas", `{"descricao":"Viagem","valor_objetivo":5000}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":5,"descricao":"Viagem","valor_objetivo":5000,"valor_atual":0,"data_limite":null,"usuario_id":1}`, w.Body.String())

	w = doRequest(router, "POST", "/metas", `{"valor_objetivo":5000}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Descrição e valor objetivo são obrigatórios"}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalHandler_List(t *testing.T) {
	db, mock := setupMockDB(t)
	router := newTestRouter(1)
	router.GET("/metas", NewGoalHandler(db, testConfig()).List)

	mock.ExpectQuery("SELECT \\* FROM `metas` WHERE usuario_id = \\? ORDER BY data_limite ASC").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(goalColumns).
			AddRow(1, "Reserva", "10000.00", "250.00", nil, 1).
			AddRow(2, "Viagem", "5000.00", "0.00", "2024-12-31", 1))

	w := doRequest(router, "GET", "/metas", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"id":1,"descricao":"Reserva","valor_objetivo":10000,"valor_atual":250,"data_limite":null,"usuario_id":1},
		{"id":2,"descricao":"Viagem","valor_objetivo":5000,"valor_atual":0,"data_limite":"2024-12-31","usuario_id":1}
	]`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalHandler_Add(t *testing.T) {
	db, mock := setupMockDB(t)
	router := newTestRouter(1)
	h := NewGoalHandler(db, testConfig())
	router.PATCH("/metas/:id/add", h.Add)
	router.GET("/metas/:id", h.Get)

	// 10 e depois 15 sobre uma meta em 0 resultam em 25
	steps := []struct {
		body    string
		current string
		amount  string
	}{
		{`{"valor":10}`, "0.00", "10"},
		{`{"valor":15}`, "10.00", "15"},
	}
	for _, step := range steps {
		mock.ExpectQuery("SELECT \\* FROM `metas` WHERE id = \\? AND usuario_id = \\?").
			WithArgs(4, 1).
			WillReturnRows(sqlmock.NewRows(goalColumns).AddRow(4, "Reserva", "1000.00", step.current, nil, 1))
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `metas` SET `valor_atual`=valor_atual \\+ \\? WHERE id = \\? AND usuario_id = \\?").
			WithArgs(decimal.RequireFromString(step.amount), 4, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		w := doRequest(router, "PATCH", "/metas/4/add", step.body)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Valor adicionado com sucesso"}`, w.Body.String())
	}

	mock.ExpectQuery("SELECT \\* FROM `metas` WHERE id = \\? AND usuario_id = \\?").
		WithArgs(4, 1).
		WillReturnRows(sqlmock.NewRows(goalColumns).AddRow(4, "Reserva", "1000.00", "25.00", nil, 1))

	w := doRequest(router, "GET", "/metas/4", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":4,"descricao":"Reserva","valor_objetivo":1000,"valor_atual":25,"data_limite":null,"usuario_id":1}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalHandler_Add_ExceedsLimit(t *testing.T) {
	db, mock := setupMockDB(t)
	router := newTestRouter(1)
	router.PATCH("/metas/:id/add", NewGoalHandler(db, testConfig()).Add)

	// nenhum UPDATE quando a soma passaria da coluna
	mock.ExpectQuery("SELECT \\* FROM `metas`").
		WithArgs(4, 1).
		WillReturnRows(sqlmock.NewRows(goalColumns).AddRow(4, "Reserva", "1000.00", "99999990.00", nil, 1))

	w := doRequest(router, "PATCH", "/metas/4/add", `{"valor":10}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Valor excede o limite permitido"}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalHandler_Add_Errors(t *testing.T) {
	db, mock := setupMockDB(t)
	router := newTestRouter(1)
	router.PATCH("/metas/:id/add", NewGoalHandler(db, testConfig()).Add)

	for _, body := range []string{`{}`, `{"valor":0}`, `{"valor":"abc"}`, `{"valor":-3}`} {
		w := doRequest(router, "PATCH", "/metas/4/add", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.JSONEq(t, `{"error":"Valor inválido"}`, w.Body.String(), body)
	}

	// meta de outro usuário
	mock.ExpectQuery("SELECT \\* FROM `metas`").
		WithArgs(4, 1).
		WillReturnRows(sqlmock.NewRows(goalColumns))
	w := doRequest(router, "PATCH", "/metas/4/add", `{"valor":10}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Meta não encontrada"}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalHandler_Update(t *testing.T) {
	db, mock := setupMockDB(t)
	router := newTestRouter(1)
	router.PUT("/metas/:id", NewGoalHandler(db, testConfig()).Update)

	mock.ExpectQuery("SELECT \\* FROM `metas`").
		WithArgs(4, 1).
		WillReturnRows(sqlmock.NewRows(goalColumns).AddRow(4, "Reserva", "1000.00", "20.00", nil, 1))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `metas` SET .* WHERE id = \\? AND usuario_id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := doRequest(router, "PUT", "/metas/4", `{"descricao":"Reserva","valor_objetivo":2000,"valor_atual":20,"data_limite":"2025-06-30"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":4,"descricao":"Reserva","valor_objetivo":2000,"valor_atual":20,"data_limite":"2025-06-30","usuario_id":1}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalHandler_Delete_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	router := newTestRouter(1)
	router.DELETE("/metas/:id", NewGoalHandler(db, testConfig()).Delete)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `metas`").
		WithArgs(8, 1).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	w := doRequest(router, "DELETE", "/metas/8", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Meta não encontrada"}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}
