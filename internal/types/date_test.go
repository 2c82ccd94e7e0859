package types

import (
	"testing"
	"time"
)

var ist = time.FixedZone("IST", 5*60*60)

func TestNextBillingDate_Anchored(t *testing.T) {
	tests := []struct {
		name      string
		current   time.Time
		anchorDay int
		interval  ScheduleInterval
		want      time.Time
	}{
		{
			name:      "monthly mid month",
			current:   time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			anchorDay: 15,
			interval:  ScheduleIntervalMonthly,
			want:      time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "monthly anchor 31 clamps into February",
			current:   time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
			anchorDay: 31,
			interval:  ScheduleIntervalMonthly,
			want:      time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "monthly anchor 31 re-expands after clamped February",
			current:   time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
			anchorDay: 31,
			interval:  ScheduleIntervalMonthly,
			want:      time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "monthly anchor 31 clamps in leap February",
			current:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
			anchorDay: 31,
			interval:  ScheduleIntervalMonthly,
			want:      time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "monthly anchor 30 clamps then re-expands",
			current:   time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
			anchorDay: 30,
			interval:  ScheduleIntervalMonthly,
			want:      time.Date(2025, time.March, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "monthly crosses year boundary",
			current:   time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC),
			anchorDay: 15,
			interval:  ScheduleIntervalMonthly,
			want:      time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "quarterly lands on anchor",
			current:   time.Date(2024, time.November, 30, 0, 0, 0, 0, time.UTC),
			anchorDay: 31,
			interval:  ScheduleIntervalQuarterly,
			want:      time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "yearly from leap day clamps",
			current:   time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
			anchorDay: 29,
			interval:  ScheduleIntervalYearly,
			want:      time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "zero anchor falls back to current day",
			current:   time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
			anchorDay: 0,
			interval:  ScheduleIntervalMonthly,
			want:      time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "preserves time of day and location",
			current:   time.Date(2024, time.January, 31, 9, 30, 0, 0, ist),
			anchorDay: 31,
			interval:  ScheduleIntervalMonthly,
			want:      time.Date(2024, time.February, 29, 9, 30, 0, 0, ist),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextBillingDate(tt.current, tt.anchorDay, tt.interval, 0)
			if err != nil {
				t.Fatalf("NextBillingDate() error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("NextBillingDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextBillingDate_DayBased(t *testing.T) {
	tests := []struct {
		name       string
		current    time.Time
		interval   ScheduleInterval
		customDays int
		want       time.Time
		wantErr    bool
	}{
		{
			name:     "weekly",
			current:  time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
			interval: ScheduleIntervalWeekly,
			want:     time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "weekly crosses month boundary",
			current:  time.Date(2024, time.March, 28, 0, 0, 0, 0, time.UTC),
			interval: ScheduleIntervalWeekly,
			want:     time.Date(2024, time.April, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "biweekly",
			current:  time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
			interval: ScheduleIntervalBiweekly,
			want:     time.Date(2024, time.March, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "custom days",
			current:    time.Date(2024, time.December, 29, 0, 0, 0, 0, time.UTC),
			interval:   ScheduleIntervalCustomDays,
			customDays: 5,
			want:       time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "custom days requires positive count",
			current:    time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
			interval:   ScheduleIntervalCustomDays,
			customDays: 0,
			wantErr:    true,
		},
		{
			name:     "unknown interval",
			current:  time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
			interval: ScheduleInterval("hourly"),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextBillingDate(tt.current, 0, tt.interval, tt.customDays)
			if tt.wantErr {
				if err == nil {
					t.Fatal("NextBillingDate() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NextBillingDate() error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("NextBillingDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddClampedDate(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		years  int
		months int
		days   int
		want   time.Time
	}{
		{
			name:   "plain month add",
			start:  time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "jan 31 plus one month clamps instead of overflowing",
			start:  time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "month add across year boundary",
			start:  time.Date(2024, time.November, 30, 0, 0, 0, 0, time.UTC),
			months: 2,
			want:   time.Date(2025, time.January, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "day add used for payment terms",
			start: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			days:  30,
			want:  time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "leap day plus a year clamps",
			start: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
			years: 1,
			want:  time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddClampedDate(tt.start, tt.years, tt.months, tt.days)
			if !got.Equal(tt.want) {
				t.Errorf("AddClampedDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			name:  "same day",
			start: time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC),
			end:   time.Date(2024, time.March, 10, 23, 0, 0, 0, time.UTC),
			want:  0,
		},
		{
			name:  "full month",
			start: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
			want:  31,
		},
		{
			name:  "leap february",
			start: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			want:  29,
		},
		{
			name:  "ignores time of day",
			start: time.Date(2024, time.March, 10, 23, 30, 0, 0, time.UTC),
			end:   time.Date(2024, time.March, 12, 0, 30, 0, 0, time.UTC),
			want:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.start, tt.end); got != tt.want {
				t.Errorf("DaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDaysBetween_DST(t *testing.T) {
	nyc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation() error = %v", err)
	}

	// March loses an hour to spring-forward, November gains one; the
	// calendar day count must not move either way
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, nyc)
	end := time.Date(2025, time.April, 1, 0, 0, 0, 0, nyc)
	if got := DaysBetween(start, end); got != 31 {
		t.Errorf("DaysBetween() across spring forward = %d, want 31", got)
	}

	start = time.Date(2025, time.November, 1, 0, 0, 0, 0, nyc)
	end = time.Date(2025, time.December, 1, 0, 0, 0, 0, nyc)
	if got := DaysBetween(start, end); got != 30 {
		t.Errorf("DaysBetween() across fall back = %d, want 30", got)
	}
}

func TestLastDayOfMonth(t *testing.T) {
	if got := LastDayOfMonth(2024, time.February, time.UTC); got != 29 {
		t.Errorf("LastDayOfMonth(2024, February) = %d, want 29", got)
	}
	if got := LastDayOfMonth(2025, time.February, time.UTC); got != 28 {
		t.Errorf("LastDayOfMonth(2025, February) = %d, want 28", got)
	}
	if got := LastDayOfMonth(2024, time.April, time.UTC); got != 30 {
		t.Errorf("LastDayOfMonth(2024, April) = %d, want 30", got)
	}
}
