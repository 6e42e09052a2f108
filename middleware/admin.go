package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/levelupirl/levelup/models"
	"github.com/levelupirl/levelup/utils"
)

// Authorize is the single role gate: true only when a session role is present
// and exactly equals the required role. Every admin-surface operation goes
// through it before touching storage.
func Authorize(sessionRole, requiredRole string) bool {
	return sessionRole != "" && sessionRole == requiredRole
}

// AdminRequired refuses any request whose session does not carry the admin
// role. Refusals return Unauthorized without executing the handler, and each
// one is reported to the audit sink with the attempted actor if known.
func AdminRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role, _ := ctx.Get(ContextUserRoleKey)
		sessionRole, _ := role.(string)

		if !Authorize(sessionRole, models.RoleAdmin) {
			actorID, _ := SessionUserID(ctx)
			name, _ := ctx.Get(ContextUserNameKey)
			actorName, _ := name.(string)
			utils.AuditDenied(ctx.Request.Method+" "+ctx.FullPath(), actorID, actorName)

			utils.Error(ctx, http.StatusForbidden, 40301, "admin privileges required")
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}
