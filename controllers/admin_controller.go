package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/levelupirl/levelup/game"
	"github.com/levelupirl/levelup/middleware"
	"github.com/levelupirl/levelup/models"
	"github.com/levelupirl/levelup/utils"
)

// AdminController implements the management surface. Every route behind it is
// guarded by middleware.AdminRequired; destructive operations additionally
// refuse admin-role targets so the surface cannot remove its own operators.
type AdminController struct {
	db *gorm.DB
}

// NewAdminController creates an AdminController.
func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{db: db}
}

func sessionActor(ctx *gin.Context) (uint, string) {
	actorID, _ := middleware.SessionUserID(ctx)
	v, _ := ctx.Get(middleware.ContextUserNameKey)
	name, _ := v.(string)
	return actorID, name
}

func parseTargetID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.Error(ctx, http.StatusBadRequest, 40011, "invalid user id")
		return 0, false
	}
	return uint(id), true
}

// ListUsers returns a paginated page of regular accounts. Admin accounts are
// not listed; they are managed out of band.
func (a *AdminController) ListUsers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var total int64
	if err := a.db.Model(&models.User{}).
		Where("role = ?", models.RoleUser).
		Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50012, "failed to count users")
		return
	}

	var users []models.User
	if err := a.db.Where("role = ?", models.RoleUser).
		Order("id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&users).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50013, "failed to list users")
		return
	}

	utils.Success(ctx, gin.H{
		"users":     users,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetUser returns a single regular account with its full profile. Admin
// accounts are refused like everywhere else on this surface.
func (a *AdminController) GetUser(ctx *gin.Context) {
	targetID, ok := parseTargetID(ctx)
	if !ok {
		return
	}

	var user models.User
	if err := a.db.First(&user, targetID).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40401, "user not found")
		return
	}

	if user.IsAdmin() {
		utils.Error(ctx, http.StatusForbidden, 40305, "admin accounts cannot be viewed")
		return
	}

	utils.Success(ctx, user)
}

// DeleteUser removes a regular account permanently. The row must actually go
// away so the unique email index releases the address for re-registration.
// Admin accounts cannot be deleted through this surface.
func (a *AdminController) DeleteUser(ctx *gin.Context) {
	targetID, ok := parseTargetID(ctx)
	if !ok {
		return
	}

	var user models.User
	if err := a.db.First(&user, targetID).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40401, "user not found")
		return
	}

	if user.IsAdmin() {
		utils.Error(ctx, http.StatusForbidden, 40302, "admin accounts cannot be deleted")
		return
	}

	if err := a.db.Delete(&user).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50014, "failed to delete user")
		return
	}

	DailyCacheInvalidateAll(targetID)

	actorID, actorName := sessionActor(ctx)
	utils.AuditAdminAction("delete_user", actorID, actorName, targetID)

	utils.Success(ctx, gin.H{"deleted": targetID})
}

// ResetUserProgress zeroes a regular account's progression while keeping its
// identity and path selection. Admin accounts are refused.
func (a *AdminController) ResetUserProgress(ctx *gin.Context) {
	targetID, ok := parseTargetID(ctx)
	if !ok {
		return
	}

	var user models.User
	err := a.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, targetID).Error; err != nil {
			return err
		}
		if user.IsAdmin() {
			return errAdminTarget
		}
		game.ResetProgress(&user)
		return tx.Save(&user).Error
	})

	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.Error(ctx, http.StatusNotFound, 40401, "user not found")
		return
	case errors.Is(err, errAdminTarget):
		utils.Error(ctx, http.StatusForbidden, 40303, "admin accounts cannot be reset")
		return
	default:
		utils.Error(ctx, http.StatusInternalServerError, 50015, "failed to reset progress")
		return
	}

	DailyCacheInvalidateAll(targetID)

	actorID, actorName := sessionActor(ctx)
	utils.AuditAdminAction("reset_user_progress", actorID, actorName, targetID)

	utils.Success(ctx, user)
}

var errAdminTarget = errors.New("target account has admin role")

// ExportUser returns a full account snapshot for data requests. The password
// hash is replaced with a placeholder and admin accounts are refused.
func (a *AdminController) ExportUser(ctx *gin.Context) {
	targetID, ok := parseTargetID(ctx)
	if !ok {
		return
	}

	var user models.User
	if err := a.db.First(&user, targetID).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40401, "user not found")
		return
	}

	if user.IsAdmin() {
		utils.Error(ctx, http.StatusForbidden, 40304, "admin accounts cannot be exported")
		return
	}

	actorID, actorName := sessionActor(ctx)
	utils.AuditAdminAction("export_user", actorID, actorName, targetID)

	utils.Success(ctx, gin.H{
		"exported_at": time.Now().UTC().Format(time.RFC3339),
		"user":        user,
		"password":    "[PROTECTED]",
	})
}

// Stats returns an aggregate snapshot of the user base.
func (a *AdminController) Stats(ctx *gin.Context) {
	var total int64
	if err := a.db.Model(&models.User{}).
		Where("role = ?", models.RoleUser).
		Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50016, "failed to compute stats")
		return
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	var active int64
	if err := a.db.Model(&models.User{}).
		Where("role = ? AND last_login >= ?", models.RoleUser, weekAgo).
		Count(&active).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50016, "failed to compute stats")
		return
	}

	type aggregates struct {
		TotalCompleted int64
		AvgLevel       float64
	}
	var agg aggregates
	if err := a.db.Model(&models.User{}).
		Where("role = ?", models.RoleUser).
		Select("COALESCE(SUM(completed_challenges), 0) AS total_completed, COALESCE(AVG(level), 0) AS avg_level").
		Scan(&agg).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50016, "failed to compute stats")
		return
	}

	utils.Success(ctx, gin.H{
		"total_users":          total,
		"active_last_7_days":   active,
		"total_completions":    agg.TotalCompleted,
		"average_level":        fmt.Sprintf("%.2f", agg.AvgLevel),
		"catalog_challenges":   game.CatalogSize(),
		"challenge_categories": len(game.Categories()),
	})
}
