package spec

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian calendar.
//
// RFC 3339 Appendix C
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var daysInMonth = [MaxMonth + 1]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in the given month (1-12) of year, or 0 if month is out of range.
//
// RFC 3339 §5.7
func DaysInMonth(year, month int) int {
	if month < 1 || month > MaxMonth {
		return 0
	}

	if month == 2 && IsLeapYear(year) {
		return 29
	}

	return daysInMonth[month]
}
