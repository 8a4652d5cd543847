// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dekatrian

import (
	"fmt"
	"time"

	"cloudeng.io/errors"
)

var (
	// ErrInvalidDate is returned when a day, month or year is outside
	// the range allowed by its calendar.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidDayOfYear is returned for a day of the year outside
	// the range 1-365, or 1-366 in leap years.
	ErrInvalidDayOfYear = errors.New("invalid day of year")
)

// Validate checks that the date exists in the Dekatrian calendar:
// the month must be 0-13 and the day 1-28, or, for the intercalary
// pseudo-month, no greater than the number of intercalary days in the
// year. All violations are reported, not just the first.
func (cd CalendarDate) Validate() error {
	errs := &errors.M{}
	if cd.Month < Intercalary || cd.Month > MonthsInYear {
		errs.Append(fmt.Errorf("month %d is outside the range 0-%d: %w", cd.Month, MonthsInYear, ErrInvalidDate))
	}
	if cd.Month == Intercalary {
		if n := IntercalaryDays(cd.Year); cd.Day < 1 || cd.Day > n {
			errs.Append(fmt.Errorf("intercalary day %d is outside the range 1-%d for year %d: %w", cd.Day, n, cd.Year, ErrInvalidDate))
		}
	} else if cd.Day < 1 || cd.Day > DaysPerMonth {
		errs.Append(fmt.Errorf("day %d is outside the range 1-%d: %w", cd.Day, DaysPerMonth, ErrInvalidDate))
	}
	return errs.Err()
}

// Validate checks that the date exists in the Gregorian calendar.
func (g GregorianDate) Validate() error {
	if g.Month < time.January || g.Month > time.December {
		return fmt.Errorf("month %d is outside the range 1-12: %w", g.Month, ErrInvalidDate)
	}
	if n := GregorianDaysInMonth(g.Year, g.Month); g.Day < 1 || g.Day > n {
		return fmt.Errorf("day %d is outside the range 1-%d for %s %d: %w", g.Day, n, g.Month, g.Year, ErrInvalidDate)
	}
	return nil
}

// Gregorian returns the Gregorian date the Dekatrian date falls on.
// Both calendars share year numbers and year boundaries, so the year
// is carried over unchanged and the conversion is a matter of mapping
// the day of the year.
func (cd CalendarDate) Gregorian() (GregorianDate, error) {
	if err := cd.Validate(); err != nil {
		return GregorianDate{}, err
	}
	return gregorianDateFromDayOfYear(cd.Year, cd.DayOfYear()), nil
}

// Dekatrian returns the Dekatrian date the Gregorian date falls on.
// It is the exact inverse of CalendarDate.Gregorian: both directions
// route through the same day-of-year representation.
func (g GregorianDate) Dekatrian() (CalendarDate, error) {
	if err := g.Validate(); err != nil {
		return CalendarDate{}, err
	}
	return calendarDateFromDayOfYear(g.Year, g.DayOfYear()), nil
}
