// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package dekatrian provides support for working with dates in the
// Dekatrian calendar and for converting them to and from their
// Gregorian equivalents.
//
// A Dekatrian year has 13 months of exactly 28 days each, preceded by
// one intercalary day (the Achronian) or, in leap years, two (the
// Achronian and the Sinchronian). Intercalary days belong to no month
// and no week. Both calendars share the same year numbering, the same
// year boundaries and the same proleptic Gregorian leap rule, so every
// Dekatrian year holds exactly 365 or 366 days.
package dekatrian

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month is a Dekatrian month in the range 1-13. Month 0 is not a real
// month: it is the Intercalary sentinel under which the Achronian
// (day 1) and, in leap years, the Sinchronian (day 2) are filed.
type Month int

// Intercalary is the pseudo-month holding the intercalary days.
const Intercalary Month = 0

func (m Month) String() string {
	if m == Intercalary {
		return "intercalary"
	}
	return strconv.Itoa(int(m))
}

// Date as Dekatrian Month and Day, without a year. Use CalendarDate to
// specify a year; a year is needed to decide whether day 2 of the
// intercalary pseudo-month exists.
type Date struct {
	Month Month
	Day   int
}

// String returns the date in the day\month notation used by the
// Dekatrian calendar.
func (d Date) String() string {
	return fmt.Sprintf(`%02d\%02d`, d.Day, d.Month)
}

// Parse a date in the numeric day\month form, eg. '28\13'. A forward
// slash is accepted in place of the backslash. The day is checked
// against the fixed 28-day month length; for the intercalary
// pseudo-month only days 1 and 2 are accepted since leap-ness cannot
// be determined without a year.
func (d *Date) Parse(val string) error {
	parts := strings.Split(strings.ReplaceAll(val, `\`, "/"), "/")
	if len(parts) != 2 {
		return fmt.Errorf(`invalid value %q, expected format 'day\month'`, val)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("invalid day: %s", parts[0])
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("invalid month: %s", parts[1])
	}
	if month < int(Intercalary) || month > MonthsInYear {
		return fmt.Errorf("invalid month: %d", month)
	}
	limit := DaysPerMonth
	if Month(month) == Intercalary {
		limit = 2
	}
	if day < 1 || day > limit {
		return fmt.Errorf("invalid day for month %d: %d", month, day)
	}
	d.Month, d.Day = Month(month), day
	return nil
}

// CalendarDate represents a Dekatrian date with a year, month and day.
type CalendarDate struct {
	Year  int
	Month Month
	Day   int
}

// Date returns the Date for the CalendarDate.
func (cd CalendarDate) Date() Date {
	return Date{cd.Month, cd.Day}
}

// String returns the date in the day\month\year notation used by the
// Dekatrian calendar, eg. '28\13\2015'.
func (cd CalendarDate) String() string {
	return fmt.Sprintf(`%02d\%02d\%04d`, cd.Day, cd.Month, cd.Year)
}

// Parse a date in the numeric day\month\year form, eg. '28\13\2015'.
// A forward slash is accepted in place of the backslash. The parsed
// date is validated as per Validate.
func (cd *CalendarDate) Parse(val string) error {
	parts := strings.Split(strings.ReplaceAll(val, `\`, "/"), "/")
	if len(parts) != 3 {
		return fmt.Errorf(`invalid value %q, expected format 'day\month\year'`, val)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("invalid day: %s", parts[0])
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("invalid month: %s", parts[1])
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return fmt.Errorf("invalid year: %s", parts[2])
	}
	ncd := CalendarDate{Year: year, Month: Month(month), Day: day}
	if err := ncd.Validate(); err != nil {
		return err
	}
	*cd = ncd
	return nil
}

// IsIntercalary returns true if the date is an Achronian or Sinchronian
// day, ie. a day outside any month.
func (cd CalendarDate) IsIntercalary() bool {
	return cd.Month == Intercalary
}

// Achronian returns the first intercalary day of the given year, which
// is also the first day of the Dekatrian year.
func Achronian(year int) CalendarDate {
	return CalendarDate{year, Intercalary, 1}
}

// Sinchronian returns the second intercalary day of the given year.
// Only leap years have one.
func Sinchronian(year int) (CalendarDate, error) {
	if !IsLeap(year) {
		return CalendarDate{}, fmt.Errorf("year %d is not a leap year and has no Sinchronian: %w", year, ErrInvalidDate)
	}
	return CalendarDate{year, Intercalary, 2}, nil
}

// DayOfYear returns the day of the year for the date as 1-365 for
// non-leap years and 1-366 for leap years. The Achronian is day 1,
// the Sinchronian day 2, and the months follow.
func (cd CalendarDate) DayOfYear() int {
	if cd.Month == Intercalary {
		return cd.Day
	}
	return IntercalaryDays(cd.Year) + (int(cd.Month)-1)*DaysPerMonth + cd.Day
}

func calendarDateFromDayOfYear(year, doy int) CalendarDate {
	ic := IntercalaryDays(year)
	if doy <= ic {
		return CalendarDate{year, Intercalary, doy}
	}
	doy -= ic
	return CalendarDate{year, Month((doy-1)/DaysPerMonth + 1), (doy-1)%DaysPerMonth + 1}
}

// CalendarDateFromDayOfYear returns the CalendarDate for the given day
// of the year. Days 1 and, in leap years, 2 are the intercalary days.
func CalendarDateFromDayOfYear(year, doy int) (CalendarDate, error) {
	if doy < 1 || doy > DaysInYear(year) {
		return CalendarDate{}, fmt.Errorf("day of year %d is outside the range 1-%d for year %d: %w", doy, DaysInYear(year), year, ErrInvalidDayOfYear)
	}
	return calendarDateFromDayOfYear(year, doy), nil
}

// Tomorrow returns the date of the next day. The last day of the year,
// 28\13, wraps to the Achronian of the following year; the last
// intercalary day is followed by 1\01.
func (cd CalendarDate) Tomorrow() CalendarDate {
	switch {
	case cd.Month == Intercalary && cd.Day < IntercalaryDays(cd.Year):
		return CalendarDate{cd.Year, Intercalary, cd.Day + 1}
	case cd.Month == Intercalary:
		return CalendarDate{cd.Year, 1, 1}
	case cd.Day < DaysPerMonth:
		return CalendarDate{cd.Year, cd.Month, cd.Day + 1}
	case cd.Month < MonthsInYear:
		return CalendarDate{cd.Year, cd.Month + 1, 1}
	default:
		return Achronian(cd.Year + 1)
	}
}

// Yesterday returns the date of the previous day. The Achronian wraps
// to 28\13 of the previous year.
func (cd CalendarDate) Yesterday() CalendarDate {
	switch {
	case cd.Month == Intercalary && cd.Day > 1:
		return CalendarDate{cd.Year, Intercalary, cd.Day - 1}
	case cd.Month == Intercalary:
		return CalendarDate{cd.Year - 1, MonthsInYear, DaysPerMonth}
	case cd.Day > 1:
		return CalendarDate{cd.Year, cd.Month, cd.Day - 1}
	case cd.Month > 1:
		return CalendarDate{cd.Year, cd.Month - 1, DaysPerMonth}
	default:
		return CalendarDate{cd.Year, Intercalary, IntercalaryDays(cd.Year)}
	}
}

// CalendarDateFromTime returns the CalendarDate for the given time in
// its location.
func CalendarDateFromTime(t time.Time) CalendarDate {
	g := GregorianDate{t.Year(), t.Month(), t.Day()}
	return calendarDateFromDayOfYear(g.Year, g.DayOfYear())
}

// Time returns the time.Time for midnight on the Gregorian equivalent
// of the date in the specified location.
func (cd CalendarDate) Time(loc *time.Location) (time.Time, error) {
	g, err := cd.Gregorian()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(g.Year, g.Month, g.Day, 0, 0, 0, 0, loc), nil
}
