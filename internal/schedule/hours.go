package schedule

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"
)

// Range is one open/close window in 24h "HH:MM" strings. A close time
// numerically earlier than its open time wraps past midnight.
type Range struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// BusinessHours maps a three-letter day key (sun..sat) to that day's
// open ranges. Days without an entry are closed.
type BusinessHours map[string][]Range

var dayKeys = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

func isDayKey(key string) bool {
	for _, d := range dayKeys {
		if d == key {
			return true
		}
	}
	return false
}

// clockMinutes parses "HH:MM" into minutes since midnight.
func clockMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h*60 + m, nil
}

// Validate checks every day key and every range of the mapping.
func Validate(hours BusinessHours) error {
	if hours == nil {
		return errors.New("business hours not set")
	}
	for day, ranges := range hours {
		if !isDayKey(day) {
			return fmt.Errorf("unknown day key %q", day)
		}
		for _, r := range ranges {
			if _, err := clockMinutes(r.Open); err != nil {
				return fmt.Errorf("day %s: %w", day, err)
			}
			if _, err := clockMinutes(r.Close); err != nil {
				return fmt.Errorf("day %s: %w", day, err)
			}
		}
	}
	return nil
}

// IsOpenAt reports whether the business is open at the given instant.
// Invalid hours fail closed: the answer is false, never an error.
// Only the instant's own weekday entry is consulted; a wrapping range
// (close < open) matches late-evening and after-midnight minutes of
// that same entry.
func IsOpenAt(hours BusinessHours, when time.Time) bool {
	if err := Validate(hours); err != nil {
		log.Printf("invalid business hours, treating as closed: %v", err)
		return false
	}

	day := dayKeys[int(when.Weekday())]
	m := when.Hour()*60 + when.Minute()

	for _, r := range hours[day] {
		open, _ := clockMinutes(r.Open)
		close, _ := clockMinutes(r.Close)
		if close < open {
			// Overnight range.
			if m >= open || m <= close {
				return true
			}
			continue
		}
		if m >= open && m <= close {
			return true
		}
	}
	return false
}

// IsOpenNow is IsOpenAt against the wall clock.
func IsOpenNow(hours BusinessHours) bool {
	return IsOpenAt(hours, time.Now())
}

// NextValidSlots walks forward from `from` in step-minute increments,
// emitting every instant at which the business is open, until `count`
// slots are found or a week of lookahead is exhausted. The start is
// first rounded up to the next multiple of step minutes.
func NextValidSlots(hours BusinessHours, step, count int, from time.Time) ([]time.Time, error) {
	if step < 1 || step > 60 {
		return nil, fmt.Errorf("step must be between 1 and 60 minutes, got %d", step)
	}
	if count < 1 || count > 100 {
		return nil, fmt.Errorf("count must be between 1 and 100, got %d", count)
	}
	if err := Validate(hours); err != nil {
		log.Printf("invalid business hours, no slots: %v", err)
		return []time.Time{}, nil
	}

	t := from.Truncate(time.Minute)
	if rem := t.Minute() % step; rem != 0 {
		t = t.Add(time.Duration(step-rem) * time.Minute)
	}

	slots := make([]time.Time, 0, count)
	maxSteps := 7 * 24 * 60 / step // one week of lookahead
	for i := 0; i <= maxSteps && len(slots) < count; i++ {
		if IsOpenAt(hours, t) {
			slots = append(slots, t)
		}
		t = t.Add(time.Duration(step) * time.Minute)
	}
	return slots, nil
}
