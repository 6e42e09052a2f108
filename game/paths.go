package game

import "errors"

// Path is a named preset bundle of focus categories. Selecting one seeds the
// user's selected categories in a single step.
type Path struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
}

var ErrUnknownPath = errors.New("unknown development path")

var paths = []Path{
	{
		Key:         "warrior",
		Name:        "The Warrior",
		Description: "Build physical and mental resilience. Master your body and mind through discipline and challenge.",
		Categories:  []string{CategoryFitness, CategoryConfidence, CategoryMindfulness},
	},
	{
		Key:         "scholar",
		Name:        "The Scholar",
		Description: "Pursue knowledge and intellectual growth. Become a master of learning and critical thinking.",
		Categories:  []string{CategoryIntelligence, CategoryCreativity, CategoryProductivity},
	},
	{
		Key:         "leader",
		Name:        "The Leader",
		Description: "Develop influence and inspire others. Build the skills to guide teams and create positive change.",
		Categories:  []string{CategoryLeadership, CategorySocial, CategoryConfidence},
	},
	{
		Key:         "artist",
		Name:        "The Artist",
		Description: "Unlock your creative potential. Express yourself and see the world through new perspectives.",
		Categories:  []string{CategoryCreativity, CategoryMindfulness, CategoryConfidence},
	},
	{
		Key:         "achiever",
		Name:        "The Achiever",
		Description: "Maximize productivity and goal attainment. Become a master of efficiency and results.",
		Categories:  []string{CategoryProductivity, CategoryLeadership, CategoryIntelligence},
	},
	{
		Key:         "sage",
		Name:        "The Sage",
		Description: "Find inner peace and wisdom. Develop emotional mastery and spiritual awareness.",
		Categories:  []string{CategoryMindfulness, CategoryIntelligence, CategorySocial},
	},
}

// Paths returns the fixed development path catalog.
func Paths() []Path {
	return paths
}

// FindPath resolves a development path by key.
func FindPath(key string) (Path, error) {
	for _, p := range paths {
		if p.Key == key {
			return p, nil
		}
	}
	return Path{}, ErrUnknownPath
}
