package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIntegrity(t *testing.T) {
	seen := map[string]bool{}
	total := 0

	for _, category := range Categories() {
		challenges := ChallengesByCategory(category)
		assert.NotEmpty(t, challenges, "category %s has no challenges", category)

		for _, ch := range challenges {
			total++
			assert.False(t, seen[ch.ID], "duplicate challenge id %s", ch.ID)
			seen[ch.ID] = true

			assert.Equal(t, category, ch.Category)
			assert.NotEmpty(t, ch.Title)
			assert.NotEmpty(t, ch.Description)
			assert.Greater(t, ch.XPReward, 0)
			assert.GreaterOrEqual(t, ch.Difficulty, 1)
			assert.LessOrEqual(t, ch.Difficulty, 3)
		}
	}

	assert.Equal(t, total, CatalogSize())
}

func TestValidCategory(t *testing.T) {
	for _, category := range Categories() {
		assert.True(t, ValidCategory(category))
	}
	assert.False(t, ValidCategory("astrology"))
	assert.False(t, ValidCategory(""))
}

func TestFindChallenge(t *testing.T) {
	pool := ChallengesByCategory(CategoryFitness)
	require.NotEmpty(t, pool)

	ch, err := FindChallenge(pool[0].ID)
	require.NoError(t, err)
	assert.Equal(t, pool[0].ID, ch.ID)
	assert.Equal(t, CategoryFitness, ch.Category)

	_, err = FindChallenge("nope")
	assert.ErrorIs(t, err, ErrChallengeNotFound)
}

func TestPathsCatalog(t *testing.T) {
	paths := Paths()
	require.NotEmpty(t, paths)

	seen := map[string]bool{}
	for _, p := range paths {
		assert.False(t, seen[p.Key], "duplicate path key %s", p.Key)
		seen[p.Key] = true

		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Categories)
		for _, category := range p.Categories {
			assert.True(t, ValidCategory(category), "path %s references unknown category %s", p.Key, category)
		}
	}
}

func TestFindPath(t *testing.T) {
	p, err := FindPath("warrior")
	require.NoError(t, err)
	assert.Equal(t, "warrior", p.Key)

	_, err = FindPath("wizard")
	assert.ErrorIs(t, err, ErrUnknownPath)
}
