package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/levelupirl/levelup/game"
	"github.com/levelupirl/levelup/middleware"
	"github.com/levelupirl/levelup/models"
	"github.com/levelupirl/levelup/utils"
)

// PathController serves the development path catalog and selection.
type PathController struct {
	db *gorm.DB
}

// NewPathController creates a PathController.
func NewPathController(db *gorm.DB) *PathController {
	return &PathController{db: db}
}

// List returns the development path catalog. Public, no session required.
func (p *PathController) List(ctx *gin.Context) {
	utils.Success(ctx, game.Paths())
}

// Select assigns a development path to the authenticated user. The path's
// category set replaces any manual selection, and the cached daily set is
// dropped so the next fetch reflects the new categories.
func (p *PathController) Select(ctx *gin.Context) {
	userID, ok := middleware.SessionUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
		return
	}

	type request struct {
		Key string `json:"key" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40008, "path key is required")
		return
	}

	path, err := game.FindPath(req.Key)
	if errors.Is(err, game.ErrUnknownPath) {
		utils.Error(ctx, http.StatusNotFound, 40403, "unknown development path")
		return
	}

	var user models.User
	if err := p.db.First(&user, userID).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40401, "user not found")
		return
	}

	now := time.Now()
	user.SelectedCategories = append(models.StringList{}, path.Categories...)
	user.DevelopmentPath = &models.PathSelection{
		Key:        path.Key,
		Name:       path.Name,
		SelectedAt: now,
	}

	if err := p.db.Save(&user).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50010, "failed to save path selection")
		return
	}

	DailyCacheInvalidate(userID, now)
	utils.Success(ctx, gin.H{"path": path, "user": user})
}
