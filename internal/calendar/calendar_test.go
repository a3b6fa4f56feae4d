package calendar

import (
	"testing"
	"time"
)

func TestWeekDatesStartsMonday(t *testing.T) {
	dates := WeekDates(2024, 1)
	if dates[0].Weekday() != time.Monday {
		t.Fatalf("expected Monday, got %s", dates[0].Weekday())
	}
	if got := FormatTaskDate(dates[0]); got != "2024-01-01" {
		t.Fatalf("expected 2024-01-01, got %s", got)
	}
}

func TestWeekDatesConsecutive(t *testing.T) {
	dates := WeekDates(2024, 10)
	for i := 1; i < len(dates); i++ {
		if !dates[i].Equal(dates[i-1].AddDate(0, 0, 1)) {
			t.Fatalf("dates not consecutive at index %d: %v then %v", i, dates[i-1], dates[i])
		}
	}
	if dates[5].Weekday() != time.Saturday {
		t.Fatalf("expected Saturday last, got %s", dates[5].Weekday())
	}
}

func TestWeekDatesYearBoundary(t *testing.T) {
	// ISO week 1 of 2021 starts in calendar year 2021; week 53 of 2020
	// starts Monday 2020-12-28.
	dates := WeekDates(2020, 53)
	if got := FormatTaskDate(dates[0]); got != "2020-12-28" {
		t.Fatalf("expected 2020-12-28, got %s", got)
	}
	dates = WeekDates(2021, 1)
	if got := FormatTaskDate(dates[0]); got != "2021-01-04" {
		t.Fatalf("expected 2021-01-04, got %s", got)
	}
}

func TestFormatWeekRange(t *testing.T) {
	if got := FormatWeekRange(2024, 1); got != "Jan 1 - Jan 6, 2024" {
		t.Fatalf("unexpected range: %q", got)
	}
}

func TestDayName(t *testing.T) {
	cases := map[int]string{0: "Monday", 2: "Wednesday", 5: "Saturday"}
	for idx, want := range cases {
		if got := DayName(idx); got != want {
			t.Fatalf("DayName(%d) = %q, want %q", idx, got, want)
		}
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range index")
		}
	}()
	DayName(6)
}

func TestTaskDateRoundTrip(t *testing.T) {
	for _, s := range []string{"2024-03-06", "2020-12-28", "1999-01-01"} {
		d, err := ParseTaskDate(s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		if got := FormatTaskDate(d); got != s {
			t.Fatalf("round trip %q -> %q", s, got)
		}
	}
	if _, err := ParseTaskDate("03/06/2024"); err == nil {
		t.Fatal("expected error for non-canonical date")
	}
}

func TestWeeksInYear(t *testing.T) {
	cases := map[int]int{2020: 53, 2021: 52, 2023: 52, 2024: 52, 2026: 53}
	for year, want := range cases {
		if got := WeeksInYear(year); got != want {
			t.Fatalf("WeeksInYear(%d) = %d, want %d", year, got, want)
		}
	}
}

func TestWeekNavigation(t *testing.T) {
	cases := []struct {
		name                 string
		fn                   func(int, int) (int, int)
		year, week           int
		wantYear, wantWeek   int
	}{
		{"prev mid-year", PreviousWeek, 2024, 26, 2024, 25},
		{"prev across year", PreviousWeek, 2024, 1, 2023, 52},
		{"prev into 53-week year", PreviousWeek, 2021, 1, 2020, 53},
		{"next mid-year", NextWeek, 2024, 26, 2024, 27},
		{"next across year", NextWeek, 2024, 52, 2025, 1},
		{"next within 53-week year", NextWeek, 2020, 52, 2020, 53},
		{"next out of 53-week year", NextWeek, 2020, 53, 2021, 1},
	}
	for _, tc := range cases {
		gotYear, gotWeek := tc.fn(tc.year, tc.week)
		if gotYear != tc.wantYear || gotWeek != tc.wantWeek {
			t.Fatalf("%s: got (%d, %d), want (%d, %d)", tc.name, gotYear, gotWeek, tc.wantYear, tc.wantWeek)
		}
	}
}
