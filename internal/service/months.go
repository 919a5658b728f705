package service

import (
	"strconv"
	"time"
)

// MonthOption is one entry of the statistics page's month selector.
type MonthOption struct {
	Month int    `json:"month"`
	Year  int    `json:"year"`
	Label string `json:"label"`
}

var monthNames = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

func MonthName(month int) string {
	return monthNames[month-1]
}

// AvailableMonths lists the last monthCount months ending at now,
// newest first.
func AvailableMonths(now time.Time, monthCount int) []MonthOption {
	options := make([]MonthOption, 0, monthCount)

	month := int(now.Month())
	year := now.Year()

	for i := 0; i < monthCount; i++ {
		options = append(options, MonthOption{
			Month: month,
			Year:  year,
			Label: MonthName(month) + " " + strconv.Itoa(year),
		})

		month--
		if month < 1 {
			month = 12
			year--
		}
	}

	return options
}

// MonthDateRange returns the [start, end) window covering one calendar
// month of ticket statistics.
func MonthDateRange(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 1, 0, 0, 0, time.UTC)

	nextMonth := month + 1
	nextYear := year
	if nextMonth > 12 {
		nextMonth = 1
		nextYear++
	}
	end := time.Date(nextYear, time.Month(nextMonth), 1, 1, 0, 0, 0, time.UTC)

	return start, end
}
