// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dekatrian

import "time"

// The fixed shape of the Dekatrian year: 13 months of 28 days plus the
// intercalary day(s), for a total of 365 or 366 days.
const (
	MonthsInYear = 13
	DaysPerMonth = 28
)

var (
	gregorianDayOfYear        []int // per month cumulative days in year so [0, 31, 59 etc]
	gregorianDayOfYearLeap    []int // per month cumulative days in leap year [0, 31, 60 etc]
	gregorianDaysInMonths     []int // days in each month
	gregorianDaysInMonthsLeap []int
)

func gregorianDaysInMonthInit(year, month int) int {
	switch month {
	case 2:
		return DaysInFeb(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	gregorianDaysInMonths = make([]int, 12)
	gregorianDaysInMonthsLeap = make([]int, 12)
	gregorianDayOfYear = make([]int, 12)
	gregorianDayOfYearLeap = make([]int, 12)

	for i := 0; i < 12; i++ {
		gregorianDaysInMonths[i] = gregorianDaysInMonthInit(2023, i+1)
		gregorianDaysInMonthsLeap[i] = gregorianDaysInMonthInit(2024, i+1)
	}
	for i := 0; i < 11; i++ {
		gregorianDayOfYear[i+1] += gregorianDayOfYear[i] + gregorianDaysInMonths[i]
		gregorianDayOfYearLeap[i+1] += gregorianDayOfYearLeap[i] + gregorianDaysInMonthsLeap[i]
	}
}

// IsLeap returns true if the given year is a leap year under the
// proleptic Gregorian rule. Both calendars share this predicate since
// the Dekatrian year layers over the Gregorian year length.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInYear returns the total number of days in the given year, which
// is the same in both calendars.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// IntercalaryDays returns the number of intercalary days in the given
// Dekatrian year: 2 in leap years, 1 otherwise.
func IntercalaryDays(year int) int {
	if IsLeap(year) {
		return 2
	}
	return 1
}

// DaysInMonth returns the number of days in the given Dekatrian month
// for the given year. Every real month has 28 days; for the
// Intercalary pseudo-month it returns the number of intercalary days.
func DaysInMonth(year int, month Month) int {
	if month == Intercalary {
		return IntercalaryDays(year)
	}
	return DaysPerMonth
}

// GregorianDaysInMonth returns the number of days in the given
// Gregorian month for the given year.
func GregorianDaysInMonth(year int, month time.Month) int {
	if IsLeap(year) {
		return gregorianDaysInMonthsLeap[month-1]
	}
	return gregorianDaysInMonths[month-1]
}

func gregorianDaysInMonthForYear(year int) []int {
	if IsLeap(year) {
		return gregorianDaysInMonthsLeap
	}
	return gregorianDaysInMonths
}
