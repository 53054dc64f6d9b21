package model

// Timings maps a prayer name ("Fajr", "Dhuhr", ...) to a time-of-day
// string like "05:12" as returned by the upstream API.
type Timings map[string]string

// CalendarDay is one day of the monthly calendar, kept in upstream order.
type CalendarDay struct {
	Date    string
	Timings Timings
}

type Location struct {
	City    string
	Country string
}

type TimingsPageData struct {
	City    string
	Country string
	Date    string // "05 August 2025"
	Timings Timings
	Error   string // non-empty when the upstream call failed
}

type CalendarPageData struct {
	City    string
	Country string
	Month   string // "August"
	Year    int
	Days    []CalendarDay
	Error   string // non-empty when the upstream call failed
}
