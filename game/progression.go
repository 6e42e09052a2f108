package game

import (
	"errors"
	"time"

	"github.com/levelupirl/levelup/models"
)

const (
	xpPerLevel   = 100
	historyLimit = 30
)

// Badge identifiers and their award thresholds.
const (
	Badge7DayStreak       = "7-day-streak"
	BadgeDedicatedLearner = "dedicated-learner"
	BadgeLevelMaster      = "level-master"
	BadgeFitnessWarrior   = "fitness-warrior"
	BadgeKnowledgeSeeker  = "knowledge-seeker"

	streakBadgeThreshold    = 7
	dedicatedBadgeThreshold = 10
	levelBadgeThreshold     = 5
	categoryBadgeThreshold  = 5
)

var ErrAlreadyCompleted = errors.New("challenge already completed today")

// CompletionResult reports the outcome of a single challenge completion.
type CompletionResult struct {
	LeveledUp bool     `json:"leveled_up"`
	XPAwarded int      `json:"xp_awarded"`
	NewBadges []string `json:"new_badges"`
}

// LevelForXP derives the level tier from current XP.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/xpPerLevel + 1
}

// XPToNextLevel reports how much XP remains until the next level tier.
func XPToNextLevel(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xpPerLevel - xp%xpPerLevel
}

// ApplyCompletion records one challenge completion on the profile: today's
// set, lifetime and per-category counters, XP, the derived level, streak,
// badges and the bounded progress history, in that order. All mutations are
// applied together; the caller persists the whole row in one transaction.
func ApplyCompletion(u *models.User, ch Challenge, now time.Time) (CompletionResult, error) {
	if u.CompletedToday.Contains(ch.ID) {
		return CompletionResult{}, ErrAlreadyCompleted
	}

	u.CompletedToday = append(u.CompletedToday, ch.ID)
	u.CompletedChallenges++
	if u.CategoryCounts == nil {
		u.CategoryCounts = models.CountMap{}
	}
	u.CategoryCounts[ch.Category]++

	u.XP += ch.XPReward
	u.TotalXP += ch.XPReward

	oldLevel := u.Level
	u.Level = LevelForXP(u.XP)

	advanceStreak(u, now)
	newBadges := awardBadges(u)
	appendSnapshot(u, now)

	return CompletionResult{
		LeveledUp: u.Level > oldLevel,
		XPAwarded: ch.XPReward,
		NewBadges: newBadges,
	}, nil
}

// advanceStreak applies the calendar-day streak policy. A nil last completion
// date (the very first completion) starts the streak at 1.
func advanceStreak(u *models.User, now time.Time) {
	today := dateOf(now)

	switch {
	case u.LastCompletionDate == nil:
		u.Streak = 1
	default:
		switch gap := daysBetween(*u.LastCompletionDate, today); {
		case gap == 0:
			// already completed something today, streak unchanged
		case gap == 1:
			u.Streak++
		default:
			u.Streak = 1
		}
	}

	if u.Streak > u.BestStreak {
		u.BestStreak = u.Streak
	}
	u.LastCompletionDate = &today
}

// awardBadges evaluates every badge rule independently and returns the badges
// earned by this evaluation. Badges are additive only.
func awardBadges(u *models.User) []string {
	var earned []string
	grant := func(id string, ok bool) {
		if ok && !u.Badges.Contains(id) {
			u.Badges = append(u.Badges, id)
			earned = append(earned, id)
		}
	}

	grant(Badge7DayStreak, u.Streak >= streakBadgeThreshold)
	grant(BadgeDedicatedLearner, u.CompletedChallenges >= dedicatedBadgeThreshold)
	grant(BadgeLevelMaster, u.Level >= levelBadgeThreshold)
	grant(BadgeFitnessWarrior, u.CategoryCounts[CategoryFitness] >= categoryBadgeThreshold)
	grant(BadgeKnowledgeSeeker, u.CategoryCounts[CategoryIntelligence] >= categoryBadgeThreshold)

	return earned
}

func appendSnapshot(u *models.User, now time.Time) {
	u.ProgressHistory = append(u.ProgressHistory, models.ProgressSnapshot{
		Date:   now,
		Level:  u.Level,
		XP:     u.XP,
		Streak: u.Streak,
	})
	if n := len(u.ProgressHistory); n > historyLimit {
		u.ProgressHistory = append(models.ProgressHistory{}, u.ProgressHistory[n-historyLimit:]...)
	}
}

// ResetDaily clears today's completion set once the day has rolled over. It
// never touches XP or streak. Returns true when the profile changed.
func ResetDaily(u *models.User, now time.Time) bool {
	if u.LastCompletionDate != nil && daysBetween(*u.LastCompletionDate, dateOf(now)) == 0 {
		return false
	}
	if len(u.CompletedToday) == 0 {
		return false
	}
	u.CompletedToday = models.StringList{}
	return true
}

// ResetProgress zeroes the progression state of an account while preserving
// identity, email, join date and the path selection. Admin-invoked only.
func ResetProgress(u *models.User) {
	u.Level = 1
	u.XP = 0
	u.TotalXP = 0
	u.Streak = 0
	u.BestStreak = 0
	u.CompletedChallenges = 0
	u.CompletedToday = models.StringList{}
	u.LastCompletionDate = nil
	u.Badges = models.StringList{models.BadgeGettingStarted}
	u.CategoryCounts = models.CountMap{}
	u.ProgressHistory = models.ProgressHistory{}
}

// dateOf truncates t to midnight in its own location.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween counts whole calendar days from a to b. Rounding absorbs DST
// shifted days that are not exactly 24h long.
func daysBetween(a, b time.Time) int {
	hours := dateOf(b).Sub(dateOf(a)).Hours()
	if hours >= 0 {
		return int(hours/24 + 0.5)
	}
	return -int(-hours/24 + 0.5)
}
