package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/levelupirl/levelup/game"
	"github.com/levelupirl/levelup/middleware"
	"github.com/levelupirl/levelup/models"
	"github.com/levelupirl/levelup/utils"
)

// ChallengeController serves the daily challenge set and records completions.
type ChallengeController struct {
	db *gorm.DB
}

// NewChallengeController creates a ChallengeController.
func NewChallengeController(db *gorm.DB) *ChallengeController {
	return &ChallengeController{db: db}
}

func dailyCacheKey(userID uint, day time.Time) string {
	return fmt.Sprintf("cache:daily:%d:%s", userID, day.Format("2006-01-02"))
}

// DailyCacheInvalidate drops the cached challenge set for a user on the given
// day. Called when the user's category selection changes mid-day.
func DailyCacheInvalidate(userID uint, now time.Time) {
	utils.CacheDelete(dailyCacheKey(userID, now))
}

// DailyCacheInvalidateAll drops every cached challenge set for a user,
// regardless of date. Used when the account is deleted or its progress reset.
func DailyCacheInvalidateAll(userID uint) {
	utils.InvalidateByPrefix(fmt.Sprintf("cache:daily:%d:", userID))
}

// Daily returns the user's challenge set for the current day. The set is
// picked once per day and cached until midnight; challenges the user has
// already completed today are filtered out of the response.
func (c *ChallengeController) Daily(ctx *gin.Context) {
	userID, ok := middleware.SessionUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
		return
	}

	var user models.User
	if err := c.db.First(&user, userID).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40401, "user not found")
		return
	}

	now := time.Now()
	if game.ResetDaily(&user, now) {
		if err := c.db.Save(&user).Error; err != nil {
			utils.Error(ctx, http.StatusInternalServerError, 50008, "failed to roll over daily state")
			return
		}
	}

	if len(user.SelectedCategories) == 0 {
		utils.Success(ctx, gin.H{
			"challenges": []game.Challenge{},
			"message":    "select categories or a development path to receive challenges",
		})
		return
	}

	key := dailyCacheKey(userID, now)
	if raw, ok := utils.CacheGetBytes(key); ok {
		var cached []game.Challenge
		if err := json.Unmarshal(raw, &cached); err == nil {
			utils.Success(ctx, gin.H{"challenges": filterCompleted(cached, user.CompletedToday)})
			return
		}
	}

	rng := rand.New(rand.NewSource(now.UnixNano()))
	picks := game.SelectDaily(user.SelectedCategories, user.CompletedToday, rng)

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	utils.CacheSetJSON(key, picks, time.Until(midnight))

	utils.Success(ctx, gin.H{"challenges": picks})
}

func filterCompleted(challenges []game.Challenge, completed models.StringList) []game.Challenge {
	out := make([]game.Challenge, 0, len(challenges))
	for _, ch := range challenges {
		if !completed.Contains(ch.ID) {
			out = append(out, ch)
		}
	}
	return out
}

// Complete records a challenge completion for the authenticated user. The row
// is locked for the duration of the transaction so concurrent completions for
// the same account serialize and the double-completion check holds.
func (c *ChallengeController) Complete(ctx *gin.Context) {
	userID, ok := middleware.SessionUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
		return
	}

	challengeID := ctx.Param("id")
	ch, err := game.FindChallenge(challengeID)
	if err != nil {
		utils.Error(ctx, http.StatusNotFound, 40402, "challenge not found")
		return
	}

	var user models.User
	var result game.CompletionResult

	err = c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error; err != nil {
			return err
		}

		now := time.Now()
		game.ResetDaily(&user, now)

		r, err := game.ApplyCompletion(&user, ch, now)
		if err != nil {
			return err
		}
		result = r

		return tx.Save(&user).Error
	})

	switch {
	case err == nil:
	case errors.Is(err, game.ErrAlreadyCompleted):
		utils.Error(ctx, http.StatusConflict, 40903, "challenge already completed today")
		return
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.Error(ctx, http.StatusNotFound, 40401, "user not found")
		return
	default:
		utils.Error(ctx, http.StatusInternalServerError, 50009, "failed to record completion")
		return
	}

	utils.Success(ctx, gin.H{
		"xp_awarded": result.XPAwarded,
		"leveled_up": result.LeveledUp,
		"new_badges": result.NewBadges,
		"user":       user,
	})
}

// Categories lists every challenge category with its catalog size.
func (c *ChallengeController) Categories(ctx *gin.Context) {
	type categoryInfo struct {
		ID         string `json:"id"`
		Challenges int    `json:"challenges"`
	}

	cats := game.Categories()
	out := make([]categoryInfo, 0, len(cats))
	for _, id := range cats {
		out = append(out, categoryInfo{ID: id, Challenges: len(game.ChallengesByCategory(id))})
	}
	utils.Success(ctx, out)
}
