package domain

import (
	"maps"
	"strings"
	"time"
)

// StorageKey is the key-value slot holding the persisted schedule record.
const StorageKey = "schedule"

// Schedule is the single live planner record. Timeline is sparse: an absent key means no note.
type Schedule struct {
	Timeline    map[string]string `json:"timeline"`
	LastUpdated time.Time         `json:"lastUpdated"`
}

// NewSchedule returns the reset value for the day containing now.
func NewSchedule(now time.Time) Schedule {
	return Schedule{Timeline: map[string]string{}, LastUpdated: now}
}

// SameDay compares calendar dates in the location of now, not elapsed time.
func SameDay(stamp, now time.Time) bool {
	stamp = stamp.In(now.Location())
	y1, m1, d1 := stamp.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// StaleAt reports whether the schedule belongs to a calendar day other than now's.
func (s Schedule) StaleAt(now time.Time) bool {
	return !SameDay(s.LastUpdated, now)
}

func (s Schedule) Get(key string) (string, bool) {
	text, ok := s.Timeline[key]
	return text, ok
}

// Set stores text under key. Blank text removes an existing entry and is a no-op otherwise.
func (s *Schedule) Set(key, text string) Change {
	if s.Timeline == nil {
		s.Timeline = map[string]string{}
	}
	prev, exists := s.Timeline[key]
	if strings.TrimSpace(text) == "" {
		if !exists {
			return ChangeNone
		}
		delete(s.Timeline, key)
		return ChangeRemoved
	}
	if exists && prev == text {
		return ChangeNone
	}
	s.Timeline[key] = text
	return ChangeStored
}

func (s Schedule) Clone() Schedule {
	out := Schedule{LastUpdated: s.LastUpdated, Timeline: make(map[string]string, len(s.Timeline))}
	maps.Copy(out.Timeline, s.Timeline)
	return out
}

type Change string

const (
	ChangeNone    Change = "unchanged"
	ChangeStored  Change = "stored"
	ChangeRemoved Change = "removed"
)
