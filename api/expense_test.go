package api

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var expenseDetailColumns = []string{"id", "descricao", "valor", "data", "categoria_id", "usuario_id", "pago", "categoria_nome", "categoria_cor"}

const validExpense = `{"descricao":"Mercado","valor":150.75,"data":"2024-01-15","categoria_id":3}`

func TestExpenseHandler_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	router := newTestRouter(1)
	router.POST("/gastos", NewExpenseHandler(db, testConfig()).Create)

	// categoria do próprio usuário
	mock.ExpectQuery("SELECT `id` FROM `categorias` WHERE id = \\? AND usuario_id = \\?").
		WithArgs(3, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `gastos`").
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectCommit()

	w := doRequest(router, "POST", "/gastos", validExpense)
	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, float64(10), resp["id"])
	assert.Equal(t, 150.75, resp["valor"])
	assert.Equal(t, "2024-01-15", resp["data"])
	assert.Equal(t, float64(3), resp["categoria_id"])
	assert.Equal(t, false, resp["pago"])
	assert.Equal(t, float64(1), resp["usuario_id"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Create_ForeignCategory(t *testing.T) {
	db, mock := setupMockDB(t)
	router := newTestRouter(1)
	router.POST("/gastos", NewExpenseHandler(db, testConfig()).Create)

	// categoria 3 pertence a outro usuário
	mock.ExpectQuery("SELECT `id` FROM `categorias`").
		WithArgs(3, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := doRequest(router, "POST", "/gastos", validExpense)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Categoria não encontrada"}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Create_Validation(t *testing.T) {
	db, mock := setupMockDB(t)
	router := newTestRouter(1)
	router.POST("/gastos", NewExpenseHandler(db, testConfig()).Create)

	cases := map[string]string{
		`{"descricao":"Mercado","data":"2024-01-15","categoria_id":3}`:                "Todos os campos são obrigatórios",
		`{"descricao":"Mercado","valor":"abc","data":"2024-01-15","categoria_id":3}`:  "Valor deve ser um número",
		`{"descricao":"Mercado","valor":-5,"data":"2024-01-15","categoria_id":3}`:     "Valor deve ser positivo",
		`{"descricao":"Mercado","valor":5,"data":"15 de janeiro","categoria_id":3}`:   "Data inválida",
		`{"descricao":"Mercado","valor":5,"data":"2024-01-15","categoria_id":"tres"}`: "Todos os campos são obrigatórios",
	}
	for body, msg := range cases {
		w := doRequest(router, "POST", "/gastos", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, msg, decodeBody(t, w)["error"], body)
	}
	// nenhuma consulta antes da validação
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_List(t *testing.T) {
	db, mock := setupMockDB(t)
	router := newTestRouter(1)
	router.GET("/gastos", NewExpenseHandler(db, testConfig()).List)

	mock.ExpectQuery("SELECT g.\\*, c.nome AS categoria_nome, c.cor AS categoria_cor FROM gastos g LEFT JOIN categorias c ON g.categoria_id = c.id "+
		"WHERE g.usuario_id = \\? AND g.data >= \\? AND g.data <= \\? AND g.categoria_id = \\? ORDER BY g.data DESC").
		WithArgs(1, "2024-01-01", "2024-01-31", 3).
		WillReturnRows(sqlmock.NewRows(expenseDetailColumns).
			AddRow(2, "Mercado", "150.75", "2024-01-15", 3, 1, false, "Alimentação", "vermelho"))

	w := doRequest(router, "GET", "/gastos?startDate=2024-01-01&endDate=2024-01-31&categoria=3", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":2,"descricao":"Mercado","valor":150.75,"data":"2024-01-15","categoria_id":3,
		"usuario_id":1,"pago":false,"categoria_nome":"Alimentação","categoria_cor":"vermelho"}]`, w.Body.String())

	w = doRequest(router, "GET", "/gastos?startDate=ontem", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Get(t *testing.T) {
	db, mock := setupMockDB(t)
	router := newTestRouter(1)
	router.GET("/gastos/:id", NewExpenseHandler(db, testConfig()).Get)

	mock.ExpectQuery("FROM gastos g LEFT JOIN categorias c .* WHERE g.id = \\? AND g.usuario_id = \\? LIMIT 1").
		WithArgs(2, 1).
		WillReturnRows(sqlmock.NewRows(expenseDetailColumns).
			AddRow(2, "Cinema", "40.00", "2024-01-20", nil, 1, true, nil, nil))
	w := doRequest(router, "GET", "/gastos/2", "")
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Nil(t, resp["categoria_id"])
	assert.Nil(t, resp["categoria_nome"])
	cor, ok := resp["categoria_cor"]
	assert.True(t, ok, "categoria_cor deve vir mesmo sem categoria")
	assert.Nil(t, cor)
	assert.Equal(t, float64(40), resp["valor"])

	mock.ExpectQuery("FROM gastos g").
		WithArgs(3, 1).
		WillReturnRows(sqlmock.NewRows(expenseDetailColumns))
	w = doRequest(router, "GET", "/gastos/3", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Gasto não encontrado"}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Update(t *testing.T) {
	db, mock := setupMockDB(t)
	router := newTestRouter(1)
	router.PUT("/gastos/:id", NewExpenseHandler(db, testConfig()).Update)

	mock.ExpectQuery("SELECT \\* FROM `gastos` WHERE id = \\? AND usuario_id = \\?").
		WithArgs(2, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "descricao", "valor", "data", "categoria_id", "usuario_id", "pago"}).
			AddRow(2, "Mercado", "100.00", "2024-01-10", 3, 1, false))
	mock.ExpectQuery("SELECT `id` FROM `categorias`").
		WithArgs(3, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectBegin()
	// UPDATE filtrado também pelo dono
	mock.ExpectExec("UPDATE `gastos` SET .* WHERE id = \\? AND usuario_id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := doRequest(router, "PUT", "/gastos/2", `{"descricao":"Feira","valor":"80","data":"2024-01-12","categoria_id":3,"pago":true}`)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, float64(2), resp["id"])
	assert.Equal(t, "Feira", resp["descricao"])
	assert.Equal(t, float64(80), resp["valor"])
	assert.Equal(t, true, resp["pago"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Update_NotOwned(t *testing.T) {
	db, mock := setupMockDB(t)
	router := newTestRouter(1)
	router.PUT("/gastos/:id", NewExpenseHandler(db, testConfig()).Update)

	mock.ExpectQuery("SELECT \\* FROM `gastos`").
		WithArgs(2, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := doRequest(router, "PUT", "/gastos/2", validExpense)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Gasto não encontrado"}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	router := newTestRouter(1)
	h := NewExpenseHandler(db, testConfig())
	router.DELETE("/gastos/:id", h.Delete)
	router.GET("/gastos/:id", h.Get)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `gastos` WHERE id = \\? AND usuario_id = \\?").
		WithArgs(2, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	w := doRequest(router, "DELETE", "/gastos/2", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Gasto deletado com sucesso"}`, w.Body.String())

	// depois de removido não é mais encontrado
	mock.ExpectQuery("FROM gastos g").
		WithArgs(2, 1).
		WillReturnRows(sqlmock.NewRows(expenseDetailColumns))
	w = doRequest(router, "GET", "/gastos/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `gastos`").
		WithArgs(2, 1).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	w = doRequest(router, "DELETE", "/gastos/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
