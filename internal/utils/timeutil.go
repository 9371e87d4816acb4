package utils

import "time"

// ReferenceTimezone is the fixed timezone all date/time context is anchored to
const ReferenceTimezone = "Europe/Vienna"

var viennaLocation = mustLoadVienna()

func mustLoadVienna() *time.Location {
	loc, err := time.LoadLocation(ReferenceTimezone)
	if err != nil {
		// time/tzdata is linked into the binary, so this only happens
		// when the zone name itself is wrong
		panic(err)
	}
	return loc
}

// ViennaLocation returns the fixed reference timezone
func ViennaLocation() *time.Location {
	return viennaLocation
}

// FormatViennaDate renders t as YYYY-MM-DD in the reference timezone
func FormatViennaDate(t time.Time) string {
	return t.In(viennaLocation).Format("2006-01-02")
}

// FormatViennaTime renders t as HH:MM in the reference timezone
func FormatViennaTime(t time.Time) string {
	return t.In(viennaLocation).Format("15:04")
}
