// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dekatrian

import (
	"strconv"
	"time"
)

// Weekday is a Gregorian weekday numbered 1 through 7, starting at
// Sunday. The Gregorian week is the shared reference frame for both
// calendars.
type Weekday int

const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

func (w Weekday) String() string {
	return time.Weekday(w - 1).String()
}

// WeekdayPosition is a position within the repeating 7-day Dekatrian
// week, 1 through 7. NoWeekday (0) marks the intercalary days, which
// sit outside the weekly cycle.
type WeekdayPosition int

const NoWeekday WeekdayPosition = 0

func (p WeekdayPosition) String() string {
	if p == NoWeekday {
		return "none"
	}
	return strconv.Itoa(int(p))
}

// floorMod returns x mod m with the sign of m, so that negative
// operands behave as they do under floored division rather than Go's
// truncated division.
func floorMod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

// NewYearWeekday returns the Weekday of the first day of the given
// year, ie. of January 1st and equally of the Achronian. The
// closed-form congruence folds in the 4, 100 and 400 year corrections
// of the Gregorian leap cycle; the Dekatrian-to-Gregorian weekday
// mapping depends on this exact congruence, so it must not be replaced
// by time package calendar arithmetic.
func NewYearWeekday(year int) Weekday {
	n := 1 + 5*floorMod(year, 4) + 4*floorMod(year, 100) + 6*floorMod(year, 400)
	return Weekday(floorMod(n, 7) + 1)
}

// WeekdayPosition returns the position of the date within the
// Dekatrian week, or NoWeekday for intercalary days. Since 28 is a
// multiple of 7 every month starts on the same position, so neither
// the month (beyond the intercalary check) nor the year matters.
func (d Date) WeekdayPosition() WeekdayPosition {
	if d.Month == Intercalary {
		return NoWeekday
	}
	return WeekdayPosition((d.Day-1)%7 + 1)
}

// Weekday returns the Gregorian weekday the Dekatrian date falls on.
// Intercalary days sit immediately before the weekday that opens the
// year and are computed against that anchor rather than the weekly
// cycle, an intentional asymmetry of the calendar.
func (cd CalendarDate) Weekday() Weekday {
	base := floorMod(int(NewYearWeekday(cd.Year))+int(cd.Date().WeekdayPosition())-2, 7) + 1
	if cd.Month == Intercalary {
		return Weekday(floorMod(base-3+cd.Day, 7) + 1)
	}
	return Weekday(base)
}
