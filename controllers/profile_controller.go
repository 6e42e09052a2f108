package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/levelupirl/levelup/game"
	"github.com/levelupirl/levelup/middleware"
	"github.com/levelupirl/levelup/models"
	"github.com/levelupirl/levelup/utils"
)

// ProfileController exposes the user's own progression data and category
// preferences.
type ProfileController struct {
	db *gorm.DB
}

// NewProfileController creates a ProfileController.
func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{db: db}
}

// UpdateCategories replaces the user's manually selected categories. Every
// entry must name a known category; selecting manually clears any active
// development path.
func (p *ProfileController) UpdateCategories(ctx *gin.Context) {
	userID, ok := middleware.SessionUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
		return
	}

	type request struct {
		Categories []string `json:"categories"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40009, "invalid request payload")
		return
	}

	for _, id := range req.Categories {
		if !game.ValidCategory(id) {
			utils.Error(ctx, http.StatusBadRequest, 40010, fmt.Sprintf("unknown category: %s", id))
			return
		}
	}

	var user models.User
	if err := p.db.First(&user, userID).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40401, "user not found")
		return
	}

	now := time.Now()
	user.SelectedCategories = append(models.StringList{}, req.Categories...)
	user.DevelopmentPath = nil

	if err := p.db.Save(&user).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50011, "failed to save categories")
		return
	}

	DailyCacheInvalidate(userID, now)
	utils.Success(ctx, user)
}

// Stats returns the progression summary for the authenticated user.
func (p *ProfileController) Stats(ctx *gin.Context) {
	userID, ok := middleware.SessionUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
		return
	}

	var user models.User
	if err := p.db.First(&user, userID).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40401, "user not found")
		return
	}

	daysActive := int(time.Since(user.JoinDate).Hours()/24) + 1
	if daysActive < 1 {
		daysActive = 1
	}

	utils.Success(ctx, gin.H{
		"level":                user.Level,
		"xp":                   user.XP,
		"total_xp":             user.TotalXP,
		"xp_to_next_level":     game.XPToNextLevel(user.XP),
		"streak":               user.Streak,
		"best_streak":          user.BestStreak,
		"completed_challenges": user.CompletedChallenges,
		"badges":               user.Badges,
		"category_counts":      user.CategoryCounts,
		"development_path":     user.DevelopmentPath,
		"days_active":          daysActive,
		"avg_xp_per_day":       float64(user.TotalXP) / float64(daysActive),
	})
}

// History returns the rolling progress snapshots, oldest first.
func (p *ProfileController) History(ctx *gin.Context) {
	userID, ok := middleware.SessionUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
		return
	}

	var user models.User
	if err := p.db.First(&user, userID).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40401, "user not found")
		return
	}

	history := user.ProgressHistory
	if history == nil {
		history = models.ProgressHistory{}
	}
	utils.Success(ctx, history)
}
