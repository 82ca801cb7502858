package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const slotKeyPrefix = "hour-"

// SlotKey maps a 24-hour hour-of-day to its timeline key, e.g. 9 -> "hour-9".
func SlotKey(hour int) string {
	return slotKeyPrefix + strconv.Itoa(hour)
}

// ParseSlotKey inverts SlotKey. Only canonical keys for hours 0..23 are accepted.
func ParseSlotKey(key string) (int, error) {
	raw, ok := strings.CutPrefix(key, slotKeyPrefix)
	if !ok || raw == "" {
		return 0, fmt.Errorf("slot key %q: missing %q prefix", key, slotKeyPrefix)
	}
	hour, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("slot key %q: %w", key, err)
	}
	if hour < 0 || hour > 23 || SlotKey(hour) != key {
		return 0, fmt.Errorf("slot key %q: not a canonical hour", key)
	}
	return hour, nil
}

type Phase string

const (
	PhasePast    Phase = "past"
	PhasePresent Phase = "present"
	PhaseFuture  Phase = "future"
)

func Classify(hour, currentHour int) Phase {
	switch {
	case hour < currentHour:
		return PhasePast
	case hour > currentHour:
		return PhaseFuture
	default:
		return PhasePresent
	}
}

type Meridiem string

const (
	AM Meridiem = "AM"
	PM Meridiem = "PM"
)

// ToStandard converts a 24-hour value to 12-hour form. Midnight is 12AM and noon is 12PM.
func ToStandard(hour int) (int, Meridiem) {
	meridiem := AM
	if hour >= 12 {
		meridiem = PM
	}
	switch {
	case hour == 0:
		return 12, meridiem
	case hour <= 12:
		return hour, meridiem
	default:
		return hour - 12, meridiem
	}
}

// Label renders an hour as it appears beside a slot, e.g. "9AM".
func Label(hour int) string {
	h, m := ToStandard(hour)
	return strconv.Itoa(h) + string(m)
}
