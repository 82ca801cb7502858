package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrMalformedRecord = errors.New("malformed schedule record")

type record struct {
	Timeline    map[string]string `json:"timeline"`
	LastUpdated *string           `json:"lastUpdated"`
}

// EncodeRecord renders the persisted form: {"timeline": {...}, "lastUpdated": "<RFC 3339>"}.
func EncodeRecord(s Schedule) (string, error) {
	timeline := s.Timeline
	if timeline == nil {
		timeline = map[string]string{}
	}
	stamp := s.LastUpdated.Format(time.RFC3339Nano)
	raw, err := json.Marshal(record{Timeline: timeline, LastUpdated: &stamp})
	if err != nil {
		return "", fmt.Errorf("encode schedule: %w", err)
	}
	return string(raw), nil
}

// DecodeRecord parses a persisted record, rejecting anything without a timeline object
// and a parseable lastUpdated timestamp.
func DecodeRecord(raw string) (Schedule, error) {
	rec := record{}
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return Schedule{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if rec.Timeline == nil {
		return Schedule{}, fmt.Errorf("%w: missing timeline", ErrMalformedRecord)
	}
	if rec.LastUpdated == nil {
		return Schedule{}, fmt.Errorf("%w: missing lastUpdated", ErrMalformedRecord)
	}
	stamp, err := time.Parse(time.RFC3339Nano, *rec.LastUpdated)
	if err != nil {
		return Schedule{}, fmt.Errorf("%w: lastUpdated: %v", ErrMalformedRecord, err)
	}
	return Schedule{Timeline: rec.Timeline, LastUpdated: stamp}, nil
}
