// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dekatrian

import (
	"fmt"
	"time"
)

// GregorianDate represents a Gregorian date with a year, month and day.
type GregorianDate struct {
	Year  int
	Month time.Month
	Day   int
}

func (g GregorianDate) String() string {
	return fmt.Sprintf("%s %02d %04d", g.Month, g.Day, g.Year)
}

// GregorianDateFromTime returns the GregorianDate for the given time
// in its location.
func GregorianDateFromTime(t time.Time) GregorianDate {
	return GregorianDate{t.Year(), t.Month(), t.Day()}
}

// Time returns the time.Time for midnight on the date in the specified
// location.
func (g GregorianDate) Time(loc *time.Location) time.Time {
	return time.Date(g.Year, g.Month, g.Day, 0, 0, 0, 0, loc)
}

// DayOfYear returns the day of the year for the date as 1-365 for
// non-leap years and 1-366 for leap years.
func (g GregorianDate) DayOfYear() int {
	if IsLeap(g.Year) {
		return gregorianDayOfYearLeap[g.Month-1] + g.Day
	}
	return gregorianDayOfYear[g.Month-1] + g.Day
}

func gregorianDateFromDayOfYear(year, doy int) GregorianDate {
	daysInMonths := gregorianDaysInMonthForYear(year)
	for month := 0; month < 11; month++ {
		if doy <= daysInMonths[month] {
			return GregorianDate{year, time.Month(month + 1), doy}
		}
		doy -= daysInMonths[month]
	}
	return GregorianDate{year, time.December, doy}
}

// GregorianDateFromDayOfYear returns the GregorianDate for the given
// day of the year.
func GregorianDateFromDayOfYear(year, doy int) (GregorianDate, error) {
	if doy < 1 || doy > DaysInYear(year) {
		return GregorianDate{}, fmt.Errorf("day of year %d is outside the range 1-%d for year %d: %w", doy, DaysInYear(year), year, ErrInvalidDayOfYear)
	}
	return gregorianDateFromDayOfYear(year, doy), nil
}
