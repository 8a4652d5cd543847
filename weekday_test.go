// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dekatrian_test

import (
	"testing"

	"cloudeng.io/dekatrian"
)

func TestNewYearWeekday(t *testing.T) {
	for _, tc := range []struct {
		year int
		wd   dekatrian.Weekday
	}{
		{2015, 6},
		{2016, 1},
		{2017, 2},
		{2023, 2},
		{2000, 2},
		{1900, 3},
		{0, 2},
		{-1, 7},
	} {
		if got, want := dekatrian.NewYearWeekday(tc.year), tc.wd; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}
}

func TestWeekdayPosition(t *testing.T) {
	for _, tc := range []struct {
		day, month int
		pos        dekatrian.WeekdayPosition
	}{
		{1, 0, dekatrian.NoWeekday},
		{2, 0, dekatrian.NoWeekday},
		{1, 1, 1},
		{7, 1, 7},
		{8, 1, 1},
		{15, 5, 1},
		{28, 13, 7},
	} {
		d := dekatrian.Date{Month: dekatrian.Month(tc.month), Day: tc.day}
		if got, want := d.WeekdayPosition(), tc.pos; got != want {
			t.Errorf("%v: got %v, want %v", d, got, want)
		}
	}

	// Every month starts on the same position since 28 is a multiple
	// of 7, so the position never depends on the month.
	for day := 1; day <= 28; day++ {
		want := dekatrian.Date{Month: 1, Day: day}.WeekdayPosition()
		for month := dekatrian.Month(2); month <= dekatrian.MonthsInYear; month++ {
			if got := (dekatrian.Date{Month: month, Day: day}).WeekdayPosition(); got != want {
				t.Errorf("%v\\%v: got %v, want %v", day, month, got, want)
			}
		}
	}
}

func TestCalendarDateWeekday(t *testing.T) {
	for _, tc := range []struct {
		day, month, year int
		wd               dekatrian.Weekday
	}{
		{28, 13, 2015, 5},
		{1, 0, 2016, 6},
		{2, 0, 2016, 7},
		{1, 1, 2016, 1},
		{1, 0, 2017, 7},
		{1, 1, 2017, 2},
		{28, 13, 2016, 7},
	} {
		cd := newCalendarDate(tc.year, tc.month, tc.day)
		if got, want := cd.Weekday(), tc.wd; got != want {
			t.Errorf("%v: got %v, want %v", cd, got, want)
		}
	}
}

func TestWeekdayString(t *testing.T) {
	if got, want := dekatrian.Sunday.String(), "Sunday"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := dekatrian.Saturday.String(), "Saturday"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
