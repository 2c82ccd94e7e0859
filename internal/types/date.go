package types

import (
	"fmt"
	"time"
)

// NextBillingDate calculates the next billing date from the current period
// date for the given interval. For month based intervals the anchor day is
// the day of month billing should land on: when the target month is shorter
// than the anchor the date clamps to the last valid day, and a later month
// that is long enough re-expands back to the anchor.
// For example with anchor 31:
// - Jan 31 -> Feb 28 (clamped)
// - Feb 28 -> Mar 31 (re-expanded to the anchor)
// Day based intervals (weekly, biweekly, custom) ignore the anchor and add
// a fixed number of days. This function leverages time.AddDate style
// arithmetic via AddClampedDate, which properly handles leap years and
// month-boundary issues.
func NextBillingDate(current time.Time, anchorDay int, interval ScheduleInterval, customDays int) (time.Time, error) {
	switch interval {
	case ScheduleIntervalWeekly:
		return AddClampedDate(current, 0, 0, 7), nil
	case ScheduleIntervalBiweekly:
		return AddClampedDate(current, 0, 0, 14), nil
	case ScheduleIntervalCustomDays:
		if customDays <= 0 {
			return current, fmt.Errorf("custom interval days must be a positive integer, got %d", customDays)
		}
		return AddClampedDate(current, 0, 0, customDays), nil
	case ScheduleIntervalMonthly:
		return nextAnchoredDate(current, anchorDay, 1), nil
	case ScheduleIntervalQuarterly:
		return nextAnchoredDate(current, anchorDay, 3), nil
	case ScheduleIntervalYearly:
		return nextAnchoredDate(current, anchorDay, 12), nil
	default:
		return current, fmt.Errorf("invalid schedule interval: %s", interval)
	}
}

// nextAnchoredDate advances by the given number of months and lands on the
// anchor day, clamped to the length of the target month. An anchor of 0
// falls back to the current day of month.
func nextAnchoredDate(current time.Time, anchorDay int, months int) time.Time {
	if anchorDay <= 0 {
		anchorDay = current.Day()
	}

	y, m, _ := current.Date()
	h, min, sec := current.Clock()

	newY := y
	newM := time.Month(int(m) + months)
	for newM > 12 {
		newM -= 12
		newY++
	}

	newD := anchorDay
	if last := LastDayOfMonth(newY, newM, current.Location()); newD > last {
		newD = last
	}

	return time.Date(newY, newM, newD, h, min, sec, current.Nanosecond(), current.Location())
}

// AddClampedDate adds the given years, months and days to t, clamping the
// resulting day of month to the last valid day instead of overflowing into
// the next month the way time.AddDate does.
func AddClampedDate(t time.Time, years, months, days int) time.Time {
	y, m, d := t.Date()
	h, min, sec := t.Clock()

	newY := y + years
	newM := time.Month(int(m) + months)

	// If we move beyond December, it adjusts correctly,
	// for example adding 2 months to November will land on January next year.
	for newM > 12 {
		newM -= 12
		newY++
	}
	for newM < 1 {
		newM += 12
		newY--
	}

	newD := d
	if last := LastDayOfMonth(newY, newM, t.Location()); newD > last {
		newD = last
	}

	return time.Date(newY, newM, newD, h, min, sec, t.Nanosecond(), t.Location()).AddDate(0, 0, days)
}

// LastDayOfMonth returns the number of days in the given month.
func LastDayOfMonth(year int, month time.Month, loc *time.Location) int {
	firstOfNextMonth := time.Date(year, month+1, 1, 0, 0, 0, 0, loc)
	return firstOfNextMonth.AddDate(0, 0, -1).Day()
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of calendar days from start to end, with
// end read in start's location. The dates are re-anchored in UTC before
// subtracting so a DST transition inside the range cannot shift the count.
func DaysBetween(start, end time.Time) int {
	e := end.In(start.Location())
	sd := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	ed := time.Date(e.Year(), e.Month(), e.Day(), 0, 0, 0, 0, time.UTC)
	return int(ed.Sub(sd).Hours() / 24)
}
