package pickup

import (
	"iter"
	"time"

	domainErrors "github.com/plateful/takeaway/internal/domain/errors"
)

// Daily service window: first bookable slot starts at 11:00, the last at
// 21:45 (final slot before the 22:00 close), in 15-minute increments.
const (
	openHour    = 11
	lastHour    = 21
	lastMinute  = 45
	slotStep    = 15 * time.Minute
	leadTime    = 30 * time.Minute
	horizonDays = 7
)

// Slots returns the valid pickup times for the given calendar date, in
// ascending order. The current moment is injected rather than read from
// the clock. For the current date, every slot at or before now+leadTime
// is excluded; an empty sequence is a valid result and means checkout
// cannot be confirmed for that date. The sequence is restartable: each
// range loop walks the window again.
func Slots(date, now time.Time) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		year, month, day := date.Date()
		loc := date.Location()
		sameDay := sameDate(date, now)
		cutoff := now.Add(leadTime)

		start := time.Date(year, month, day, openHour, 0, 0, 0, loc)
		end := time.Date(year, month, day, lastHour, lastMinute, 0, 0, loc)

		for slot := start; !slot.After(end); slot = slot.Add(slotStep) {
			if sameDay && !slot.After(cutoff) {
				continue
			}
			if !yield(slot) {
				return
			}
		}
	}
}

// ValidateDate enforces the date-picking precondition: the candidate
// date must be today or within the booking horizon. Dates in the past or
// more than horizonDays ahead are not selectable.
func ValidateDate(date, now time.Time) error {
	today := midnight(now)
	candidate := midnight(date)
	if candidate.Before(today) {
		return domainErrors.ErrPastPickup
	}
	if candidate.After(today.AddDate(0, 0, horizonDays)) {
		return domainErrors.ErrPickupTooFar
	}
	return nil
}

// ValidMoment reports whether the exact pickup moment is one of the
// slots the generator would offer for its date.
func ValidMoment(pickup, now time.Time) bool {
	for slot := range Slots(pickup, now) {
		if slot.Equal(pickup) {
			return true
		}
	}
	return false
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
