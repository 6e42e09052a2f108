package game

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levelupirl/levelup/models"
)

func newTestUser() models.User {
	return models.NewUser("tester", "tester@example.com", "hash")
}

func testChallenge(id, category string, xp int) Challenge {
	return Challenge{ID: id, Category: category, Title: id, XPReward: xp, Difficulty: 1}
}

func TestLevelForXP(t *testing.T) {
	cases := []struct {
		xp    int
		level int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{250, 3},
		{499, 5},
		{500, 6},
		{-10, 1},
	}
	for _, c := range cases {
		assert.Equal(t, c.level, LevelForXP(c.xp), "xp=%d", c.xp)
	}
}

func TestXPToNextLevel(t *testing.T) {
	assert.Equal(t, 100, XPToNextLevel(0))
	assert.Equal(t, 1, XPToNextLevel(99))
	assert.Equal(t, 100, XPToNextLevel(100))
	assert.Equal(t, 75, XPToNextLevel(125))
}

func TestApplyCompletionAwardsXPAndLevel(t *testing.T) {
	u := newTestUser()
	u.XP = 90
	u.TotalXP = 90

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	result, err := ApplyCompletion(&u, testChallenge("fit_x", CategoryFitness, 25), now)
	require.NoError(t, err)

	assert.Equal(t, 25, result.XPAwarded)
	assert.True(t, result.LeveledUp)
	assert.Equal(t, 115, u.XP)
	assert.Equal(t, 115, u.TotalXP)
	assert.Equal(t, 2, u.Level)
	assert.Equal(t, LevelForXP(u.XP), u.Level)
	assert.Equal(t, 1, u.CompletedChallenges)
	assert.Equal(t, 1, u.CategoryCounts[CategoryFitness])
	assert.True(t, u.CompletedToday.Contains("fit_x"))
}

func TestApplyCompletionRejectsSecondSameDay(t *testing.T) {
	u := newTestUser()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	_, err := ApplyCompletion(&u, testChallenge("soc_x", CategorySocial, 20), now)
	require.NoError(t, err)

	before := u
	_, err = ApplyCompletion(&u, testChallenge("soc_x", CategorySocial, 20), now.Add(time.Hour))
	require.ErrorIs(t, err, ErrAlreadyCompleted)

	assert.Equal(t, before.XP, u.XP)
	assert.Equal(t, before.CompletedChallenges, u.CompletedChallenges)
	assert.Equal(t, before.Streak, u.Streak)
	assert.Len(t, u.ProgressHistory, len(before.ProgressHistory))
}

func TestStreakStartsAtOne(t *testing.T) {
	u := newTestUser()
	require.Nil(t, u.LastCompletionDate)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	_, err := ApplyCompletion(&u, testChallenge("a", CategoryFitness, 10), now)
	require.NoError(t, err)

	assert.Equal(t, 1, u.Streak)
	assert.Equal(t, 1, u.BestStreak)
	require.NotNil(t, u.LastCompletionDate)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), *u.LastCompletionDate)
}

func TestStreakConsecutiveDays(t *testing.T) {
	u := newTestUser()
	day := time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		ts := day.AddDate(0, 0, i)
		ResetDaily(&u, ts)
		_, err := ApplyCompletion(&u, testChallenge(fmt.Sprintf("c%d", i), CategoryFitness, 10), ts)
		require.NoError(t, err)
	}

	assert.Equal(t, 3, u.Streak)
	assert.Equal(t, 3, u.BestStreak)
}

func TestStreakSameDaySecondChallengeUnchanged(t *testing.T) {
	u := newTestUser()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	_, err := ApplyCompletion(&u, testChallenge("a", CategoryFitness, 10), now)
	require.NoError(t, err)
	_, err = ApplyCompletion(&u, testChallenge("b", CategorySocial, 10), now.Add(2*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, 1, u.Streak)
}

func TestStreakBreaksAfterGap(t *testing.T) {
	u := newTestUser()
	day1 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	day4 := day1.AddDate(0, 0, 3)

	_, err := ApplyCompletion(&u, testChallenge("a", CategoryFitness, 10), day1)
	require.NoError(t, err)
	ResetDaily(&u, day2)
	_, err = ApplyCompletion(&u, testChallenge("b", CategoryFitness, 10), day2)
	require.NoError(t, err)

	assert.Equal(t, 2, u.Streak)

	ResetDaily(&u, day4)
	_, err = ApplyCompletion(&u, testChallenge("c", CategoryFitness, 10), day4)
	require.NoError(t, err)

	assert.Equal(t, 1, u.Streak, "streak restarts after a missed day")
	assert.Equal(t, 2, u.BestStreak, "best streak survives the break")
}

func TestStreakBadgeAtSevenDays(t *testing.T) {
	u := newTestUser()
	day := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		ts := day.AddDate(0, 0, i)
		ResetDaily(&u, ts)
		result, err := ApplyCompletion(&u, testChallenge(fmt.Sprintf("s%d", i), CategoryMindfulness, 5), ts)
		require.NoError(t, err)
		if i < 6 {
			assert.NotContains(t, result.NewBadges, Badge7DayStreak)
		} else {
			assert.Contains(t, result.NewBadges, Badge7DayStreak)
		}
	}
	assert.True(t, u.Badges.Contains(Badge7DayStreak))
}

func TestDedicatedLearnerBadgeAtTenCompletions(t *testing.T) {
	u := newTestUser()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 10; i++ {
		result, err := ApplyCompletion(&u, testChallenge(fmt.Sprintf("d%d", i), CategoryCreativity, 5), now)
		require.NoError(t, err)
		if i == 9 {
			assert.Contains(t, result.NewBadges, BadgeDedicatedLearner)
		} else {
			assert.NotContains(t, result.NewBadges, BadgeDedicatedLearner)
		}
	}
}

func TestCategoryBadges(t *testing.T) {
	u := newTestUser()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		result, err := ApplyCompletion(&u, testChallenge(fmt.Sprintf("f%d", i), CategoryFitness, 5), now)
		require.NoError(t, err)
		if i == 4 {
			assert.Contains(t, result.NewBadges, BadgeFitnessWarrior)
		}
	}

	for i := 0; i < 5; i++ {
		result, err := ApplyCompletion(&u, testChallenge(fmt.Sprintf("i%d", i), CategoryIntelligence, 5), now)
		require.NoError(t, err)
		if i == 4 {
			assert.Contains(t, result.NewBadges, BadgeKnowledgeSeeker)
		}
	}
}

func TestLevelMasterBadge(t *testing.T) {
	u := newTestUser()
	u.XP = 395
	u.TotalXP = 395
	u.Level = LevelForXP(u.XP)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	result, err := ApplyCompletion(&u, testChallenge("big", CategoryLeadership, 10), now)
	require.NoError(t, err)

	assert.Equal(t, 5, u.Level)
	assert.Contains(t, result.NewBadges, BadgeLevelMaster)
}

func TestBadgesAreNotReissued(t *testing.T) {
	u := newTestUser()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 12; i++ {
		result, err := ApplyCompletion(&u, testChallenge(fmt.Sprintf("r%d", i), CategorySocial, 5), now)
		require.NoError(t, err)
		if i > 9 {
			assert.NotContains(t, result.NewBadges, BadgeDedicatedLearner)
		}
	}

	count := 0
	for _, b := range u.Badges {
		if b == BadgeDedicatedLearner {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestHistoryCappedAtThirtyEntries(t *testing.T) {
	u := newTestUser()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 35; i++ {
		_, err := ApplyCompletion(&u, testChallenge(fmt.Sprintf("h%d", i), CategoryProductivity, 10), now)
		require.NoError(t, err)
	}

	require.Len(t, u.ProgressHistory, 30)
	// oldest five were evicted; the newest entry reflects final state
	last := u.ProgressHistory[len(u.ProgressHistory)-1]
	assert.Equal(t, u.XP, last.XP)
	assert.Equal(t, u.Level, last.Level)
}

func TestResetDaily(t *testing.T) {
	u := newTestUser()
	day1 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	_, err := ApplyCompletion(&u, testChallenge("a", CategoryFitness, 10), day1)
	require.NoError(t, err)

	assert.False(t, ResetDaily(&u, day1.Add(3*time.Hour)), "same day keeps the completed set")
	assert.True(t, u.CompletedToday.Contains("a"))

	assert.True(t, ResetDaily(&u, day1.AddDate(0, 0, 1)))
	assert.Empty(t, u.CompletedToday)
	assert.Equal(t, 10, u.XP, "rollover never touches XP")
	assert.Equal(t, 1, u.Streak, "rollover never touches streak")

	assert.False(t, ResetDaily(&u, day1.AddDate(0, 0, 1)), "second rollover is a no-op")
}

func TestResetProgress(t *testing.T) {
	u := newTestUser()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		_, err := ApplyCompletion(&u, testChallenge(fmt.Sprintf("p%d", i), CategoryFitness, 25), now)
		require.NoError(t, err)
	}
	u.SelectedCategories = models.StringList{CategoryFitness, CategorySocial}
	u.DevelopmentPath = &models.PathSelection{Key: "warrior", Name: "The Warrior", SelectedAt: now}

	ResetProgress(&u)

	assert.Equal(t, 1, u.Level)
	assert.Zero(t, u.XP)
	assert.Zero(t, u.TotalXP)
	assert.Zero(t, u.Streak)
	assert.Zero(t, u.BestStreak)
	assert.Zero(t, u.CompletedChallenges)
	assert.Empty(t, u.CompletedToday)
	assert.Nil(t, u.LastCompletionDate)
	assert.Equal(t, models.StringList{models.BadgeGettingStarted}, u.Badges)
	assert.Empty(t, u.CategoryCounts)
	assert.Empty(t, u.ProgressHistory)

	assert.Equal(t, "tester", u.Name)
	assert.Equal(t, "tester@example.com", u.Email)
	assert.Equal(t, models.StringList{CategoryFitness, CategorySocial}, u.SelectedCategories)
	require.NotNil(t, u.DevelopmentPath)
	assert.Equal(t, "warrior", u.DevelopmentPath.Key)
}
