package game

import "errors"

// Challenge is a static catalog entry. The catalog is defined in code and is
// not user-mutable; clients store challenge ids, so keep the ids stable.
type Challenge struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	XPReward    int    `json:"xp_reward"`
	Difficulty  int    `json:"difficulty"`
}

var ErrChallengeNotFound = errors.New("challenge not found")

// Category identifiers referenced by badges and development paths.
const (
	CategoryFitness      = "fitness"
	CategoryIntelligence = "intelligence"
	CategorySocial       = "social"
	CategoryProductivity = "productivity"
	CategoryConfidence   = "confidence"
	CategoryCreativity   = "creativity"
	CategoryLeadership   = "leadership"
	CategoryMindfulness  = "mindfulness"
)

var catalog = map[string][]Challenge{
	CategoryFitness: {
		{ID: "fitness_1", Title: "Morning Energy Boost", Description: "Do 20 push-ups as soon as you wake up", XPReward: 25, Difficulty: 1},
		{ID: "fitness_2", Title: "Hydration Hero", Description: "Drink 8 glasses of water throughout the day", XPReward: 15, Difficulty: 1},
		{ID: "fitness_3", Title: "Step Counter", Description: "Walk 10,000 steps today", XPReward: 30, Difficulty: 2},
		{ID: "fitness_4", Title: "Flexibility Focus", Description: "Do a 15-minute stretching routine", XPReward: 20, Difficulty: 1},
		{ID: "fitness_5", Title: "Plank Power", Description: "Hold a plank for 2 minutes total (can be broken up)", XPReward: 25, Difficulty: 2},
	},
	CategoryIntelligence: {
		{ID: "intel_1", Title: "Learning Sprint", Description: "Spend 30 minutes learning something new on Khan Academy or similar", XPReward: 35, Difficulty: 2},
		{ID: "intel_2", Title: "Memory Palace", Description: "Memorize and recite a 10-item grocery list without looking", XPReward: 25, Difficulty: 2},
		{ID: "intel_3", Title: "Speed Reader", Description: "Read for 45 minutes straight without distractions", XPReward: 30, Difficulty: 2},
		{ID: "intel_4", Title: "Puzzle Master", Description: "Complete a challenging sudoku or crossword puzzle", XPReward: 20, Difficulty: 1},
		{ID: "intel_5", Title: "Curiosity Quest", Description: "Research and explain a random Wikipedia article to someone", XPReward: 25, Difficulty: 1},
	},
	CategorySocial: {
		{ID: "social_1", Title: "Conversation Starter", Description: "Start a meaningful conversation with a stranger", XPReward: 40, Difficulty: 3},
		{ID: "social_2", Title: "Compliment Giver", Description: "Give 3 genuine compliments to different people", XPReward: 20, Difficulty: 1},
		{ID: "social_3", Title: "Active Listener", Description: "Have a 20-minute conversation where you ask more questions than you make statements", XPReward: 25, Difficulty: 2},
		{ID: "social_4", Title: "Network Builder", Description: "Reach out to someone you haven't talked to in months", XPReward: 30, Difficulty: 2},
		{ID: "social_5", Title: "Public Speaker", Description: "Record yourself giving a 2-minute speech on any topic", XPReward: 35, Difficulty: 3},
	},
	CategoryProductivity: {
		{ID: "prod_1", Title: "Time Blocker", Description: "Plan your entire day in time blocks and stick to it", XPReward: 30, Difficulty: 2},
		{ID: "prod_2", Title: "Distraction Destroyer", Description: "Work for 2 hours without checking social media or phone", XPReward: 35, Difficulty: 3},
		{ID: "prod_3", Title: "Task Terminator", Description: "Complete your 3 most important tasks before noon", XPReward: 40, Difficulty: 3},
		{ID: "prod_4", Title: "Email Zero", Description: "Clear your email inbox completely", XPReward: 20, Difficulty: 1},
		{ID: "prod_5", Title: "Future Self", Description: "Prepare everything for tomorrow tonight (clothes, meals, schedule)", XPReward: 25, Difficulty: 2},
	},
	CategoryConfidence: {
		{ID: "conf_1", Title: "Power Pose", Description: "Do confident power poses for 5 minutes in front of a mirror", XPReward: 15, Difficulty: 1},
		{ID: "conf_2", Title: "Fear Facer", Description: "Do something that makes you slightly uncomfortable", XPReward: 35, Difficulty: 3},
		{ID: "conf_3", Title: "Affirmation Station", Description: "Write down 5 things you're proud of accomplishing", XPReward: 20, Difficulty: 1},
		{ID: "conf_4", Title: "Comfort Zone Exit", Description: "Try a new activity or hobby for 30 minutes", XPReward: 30, Difficulty: 2},
		{ID: "conf_5", Title: "Self Advocate", Description: "Ask for something you want (raise, favor, opportunity)", XPReward: 45, Difficulty: 3},
	},
	CategoryCreativity: {
		{ID: "creat_1", Title: "Idea Generator", Description: "Write down 20 ideas for anything (they can be terrible)", XPReward: 25, Difficulty: 1},
		{ID: "creat_2", Title: "Art Attack", Description: "Create something artistic for 30 minutes (draw, write, compose)", XPReward: 30, Difficulty: 2},
		{ID: "creat_3", Title: "Problem Solver", Description: "Find 5 creative solutions to a current problem in your life", XPReward: 35, Difficulty: 2},
		{ID: "creat_4", Title: "Story Spinner", Description: "Write a 500-word short story about your day from your pet's perspective", XPReward: 25, Difficulty: 2},
		{ID: "creat_5", Title: "Innovation Station", Description: "Design an improvement to something you use daily", XPReward: 30, Difficulty: 2},
	},
	CategoryLeadership: {
		{ID: "lead_1", Title: "Decision Maker", Description: "Make 3 decisions you've been putting off", XPReward: 30, Difficulty: 2},
		{ID: "lead_2", Title: "Team Builder", Description: "Organize a group activity or help coordinate a team project", XPReward: 40, Difficulty: 3},
		{ID: "lead_3", Title: "Mentor Mode", Description: "Teach someone a skill you're good at", XPReward: 35, Difficulty: 2},
		{ID: "lead_4", Title: "Initiative Taker", Description: "Volunteer to lead on something at work or in your community", XPReward: 45, Difficulty: 3},
		{ID: "lead_5", Title: "Feedback Giver", Description: "Give constructive feedback to someone in a helpful way", XPReward: 25, Difficulty: 2},
	},
	CategoryMindfulness: {
		{ID: "mind_1", Title: "Meditation Master", Description: "Meditate for 15 minutes without guidance", XPReward: 25, Difficulty: 2},
		{ID: "mind_2", Title: "Gratitude List", Description: "Write down 10 specific things you're grateful for", XPReward: 15, Difficulty: 1},
		{ID: "mind_3", Title: "Breath Focus", Description: "Practice deep breathing for 10 minutes during a stressful moment", XPReward: 20, Difficulty: 1},
		{ID: "mind_4", Title: "Digital Detox", Description: "Go 4 hours without any screens", XPReward: 35, Difficulty: 3},
		{ID: "mind_5", Title: "Nature Connection", Description: "Spend 30 minutes outside without devices, just observing", XPReward: 25, Difficulty: 2},
	},
}

var challengesByID map[string]Challenge

func init() {
	challengesByID = make(map[string]Challenge)
	for category, list := range catalog {
		for i := range list {
			catalog[category][i].Category = category
			challengesByID[list[i].ID] = catalog[category][i]
		}
	}
}

// Categories returns all category identifiers in the catalog, sorted for stable output.
func Categories() []string {
	return []string{
		CategoryFitness,
		CategoryIntelligence,
		CategorySocial,
		CategoryProductivity,
		CategoryConfidence,
		CategoryCreativity,
		CategoryLeadership,
		CategoryMindfulness,
	}
}

// ValidCategory reports whether the given id names a catalog category.
func ValidCategory(id string) bool {
	_, ok := catalog[id]
	return ok
}

// ChallengesByCategory returns the catalog entries for a category.
func ChallengesByCategory(category string) []Challenge {
	return catalog[category]
}

// CatalogSize returns the total number of challenges across all categories.
func CatalogSize() int {
	return len(challengesByID)
}

// FindChallenge resolves a challenge by id.
func FindChallenge(id string) (Challenge, error) {
	ch, ok := challengesByID[id]
	if !ok {
		return Challenge{}, ErrChallengeNotFound
	}
	return ch, nil
}
