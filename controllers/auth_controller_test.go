package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func authTestRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	ac := NewAuthController(db)
	r.POST("/auth/register", ac.Register)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterCreatesAccount(t *testing.T) {
	db, mock := newMockDB(t)
	r := authTestRouter(db)

	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	w := postJSON(r, "/auth/register", `{"name":"bob","email":"bob@example.com","password":"secret1"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "token")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDuplicateEmailPreCheck(t *testing.T) {
	db, mock := newMockDB(t)
	r := authTestRouter(db)

	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(userRow(7, "bob", "bob@example.com", "user"))

	w := postJSON(r, "/auth/register", `{"name":"bob","email":"bob@example.com","password":"secret1"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already registered")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDuplicateEmailUniqueIndexRace(t *testing.T) {
	db, mock := newMockDB(t)
	r := authTestRouter(db)

	// pre-check sees nothing, the unique index still fires on insert
	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnError(&mysqldrv.MySQLError{
			Number:  1062,
			Message: "Duplicate entry 'bob@example.com' for key 'idx_users_email'",
		})
	mock.ExpectRollback()

	w := postJSON(r, "/auth/register", `{"name":"bob","email":"bob@example.com","password":"secret1"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "40901")
	assert.Contains(t, w.Body.String(), "already registered")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing fields", `{"name":"","email":"","password":""}`},
		{"short password", `{"name":"bob","email":"bob@example.com","password":"abc"}`},
		{"bad email", `{"name":"bob","email":"not-an-email","password":"secret1"}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			db, _ := newMockDB(t)
			r := authTestRouter(db)

			w := postJSON(r, "/auth/register", c.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
