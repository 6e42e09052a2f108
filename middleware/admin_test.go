package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/levelupirl/levelup/models"
)

func TestAuthorize(t *testing.T) {
	cases := []struct {
		name         string
		sessionRole  string
		requiredRole string
		want         bool
	}{
		{"admin matches admin", models.RoleAdmin, models.RoleAdmin, true},
		{"user is not admin", models.RoleUser, models.RoleAdmin, false},
		{"empty session role fails", "", models.RoleAdmin, false},
		{"empty required role fails", models.RoleAdmin, "", false},
		{"both empty fails", "", "", false},
		{"case sensitive", "Admin", models.RoleAdmin, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Authorize(c.sessionRole, c.requiredRole))
		})
	}
}

func adminTestRouter(sessionRole string, executed *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(ctx *gin.Context) {
		ctx.Set(ContextUserIDKey, uint(42))
		ctx.Set(ContextUserNameKey, "tester")
		if sessionRole != "" {
			ctx.Set(ContextUserRoleKey, sessionRole)
		}
	})
	r.Use(AdminRequired())
	r.GET("/admin/users", func(ctx *gin.Context) {
		*executed = true
		ctx.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAdminRequiredAllowsAdmin(t *testing.T) {
	executed := false
	r := adminTestRouter(models.RoleAdmin, &executed)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, executed)
}

func TestAdminRequiredRefusesUserRole(t *testing.T) {
	executed := false
	r := adminTestRouter(models.RoleUser, &executed)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, executed, "handler must not run on refusal")
	assert.Contains(t, w.Body.String(), "admin privileges required")
}

func TestAdminRequiredRefusesMissingRole(t *testing.T) {
	executed := false
	r := adminTestRouter("", &executed)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, executed)
}
