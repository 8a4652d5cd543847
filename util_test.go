// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dekatrian_test

import (
	"time"

	"cloudeng.io/dekatrian"
)

func newCalendarDate(y, m, d int) dekatrian.CalendarDate {
	return dekatrian.CalendarDate{Year: y, Month: dekatrian.Month(m), Day: d}
}

func newGregorianDate(y, m, d int) dekatrian.GregorianDate {
	return dekatrian.GregorianDate{Year: y, Month: time.Month(m), Day: d}
}
