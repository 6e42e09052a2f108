package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// The profile's set and sequence fields are persisted as JSON columns so the
// whole account aggregate round-trips through a single row.

// StringList is a JSON-encoded list of string identifiers (badges, categories, challenge ids).
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// Contains reports whether id is present in the list.
func (l StringList) Contains(id string) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// CountMap is a JSON-encoded counter map keyed by category id.
type CountMap map[string]int

func (m CountMap) Value() (driver.Value, error) {
	if m == nil {
		m = CountMap{}
	}
	return json.Marshal(m)
}

func (m *CountMap) Scan(src interface{}) error {
	return scanJSON(src, m)
}

// PathSelection records the development path a user committed to.
type PathSelection struct {
	Key        string    `json:"key"`
	Name       string    `json:"name"`
	SelectedAt time.Time `json:"selected_at"`
}

func (p *PathSelection) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

func (p *PathSelection) Scan(src interface{}) error {
	return scanJSON(src, p)
}

// ProgressSnapshot is one entry of the bounded progress history.
type ProgressSnapshot struct {
	Date   time.Time `json:"date"`
	Level  int       `json:"level"`
	XP     int       `json:"xp"`
	Streak int       `json:"streak"`
}

// ProgressHistory is the ordered, bounded history of progress snapshots.
type ProgressHistory []ProgressSnapshot

func (h ProgressHistory) Value() (driver.Value, error) {
	if h == nil {
		h = ProgressHistory{}
	}
	return json.Marshal(h)
}

func (h *ProgressHistory) Scan(src interface{}) error {
	return scanJSON(src, h)
}

func scanJSON(src, dst interface{}) error {
	if src == nil {
		return nil
	}
	switch v := src.(type) {
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dst)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dst)
	default:
		return errors.New("unsupported source type for JSON column")
	}
}
