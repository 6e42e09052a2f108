package models

import (
	"time"

	"gorm.io/gorm"
)

// Roles an account can carry. The routing decision between the admin and the
// user surface is made by callers inspecting Role, never inside auth itself.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Badge granted to every account at registration.
const BadgeGettingStarted = "getting-started"

// User is the account plus progression profile aggregate. Identity columns are
// immutable once created; email is unique across all accounts. Passwords are
// stored as bcrypt hashes only. Deletion is a hard delete: the unique email
// index has no notion of a tombstone, so a deleted account must release its
// email for re-registration.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:64;not null" json:"name"`
	Email        string    `gorm:"size:255;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	Role         string    `gorm:"size:16;default:user" json:"role"`
	Provider     string    `gorm:"size:32" json:"provider,omitempty"`
	ProviderID   string    `gorm:"size:255" json:"-"`
	JoinDate     time.Time `json:"join_date"`
	LastLogin    time.Time `json:"last_login"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Progression profile. Level is always derived from XP, never set directly.
	Level               int              `gorm:"default:1" json:"level"`
	XP                  int              `gorm:"default:0" json:"xp"`
	TotalXP             int              `gorm:"default:0" json:"total_xp"`
	Streak              int              `gorm:"default:0" json:"streak"`
	BestStreak          int              `gorm:"default:0" json:"best_streak"`
	CompletedChallenges int              `gorm:"default:0" json:"completed_challenges"`
	CompletedToday      StringList       `gorm:"type:json" json:"completed_today"`
	LastCompletionDate  *time.Time       `json:"last_completion_date"`
	Badges              StringList       `gorm:"type:json" json:"badges"`
	SelectedCategories  StringList       `gorm:"type:json" json:"selected_categories"`
	CategoryCounts      CountMap         `gorm:"type:json" json:"category_counts"`
	DevelopmentPath     *PathSelection   `gorm:"type:json" json:"development_path"`
	ProgressHistory     ProgressHistory  `gorm:"type:json" json:"progress_history"`
}

// NewUser builds an account with the mandatory profile defaults applied
// exactly once, at creation.
func NewUser(name, email, passwordHash string) User {
	now := time.Now()
	return User{
		Name:               name,
		Email:              email,
		PasswordHash:       passwordHash,
		Role:               RoleUser,
		JoinDate:           now,
		LastLogin:          now,
		Level:              1,
		Badges:             StringList{BadgeGettingStarted},
		CompletedToday:     StringList{},
		SelectedCategories: StringList{},
		CategoryCounts:     CountMap{},
		ProgressHistory:    ProgressHistory{},
	}
}

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// BeforeCreate hook ensures timestamps are set even when not provided.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.JoinDate.IsZero() {
		u.JoinDate = now
	}
	u.UpdatedAt = now
	return nil
}

// BeforeUpdate ensures the UpdatedAt timestamp is refreshed.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}
