package datetimeparse

// LocalDate is a calendar day with no attached timezone
type LocalDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// LocalTime is a time of day with millisecond precision and no attached timezone. Second may be 60 to represent a
// leap second.
type LocalTime struct {
	Hour        int `json:"hour"`
	Minute      int `json:"minute"`
	Second      int `json:"second"`
	Millisecond int `json:"millisecond"`
}

// LocalDateTime is a date and time of day with no attached timezone. Any offset present in the parsed input has been
// validated but not applied.
type LocalDateTime struct {
	LocalDate
	LocalTime
}
