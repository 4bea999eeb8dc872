package kpi

import (
	"github.com/mediflow/mediflow-api/internal/model"
)

const (
	MetricOccupancyRate = "occupancy_rate"
	MetricReadmissions  = "readmissions"

	MinTrendDays     = 1
	MaxTrendDays     = 365
	DefaultTrendDays = 30
)

// TrendWindow returns the first and last day of a trend of the given length.
// The window starts days before today and ends the day before today.
func TrendWindow(today model.Date, days int) (first, last model.Date) {
	first = today.AddDays(-days)
	return first, first.AddDays(days - 1)
}

// OccupancyTrend produces one point per day of the window. Each point is
// (admissions on or before the day - discharges on or before the day) over
// totalBeds, counting from the beginning of the record rather than the
// window. admissions and discharges must be sorted by day.
func OccupancyTrend(today model.Date, days, totalBeds int, admissions, discharges []model.DayCount) []model.TrendPoint {
	first, _ := TrendWindow(today, days)
	points := make([]model.TrendPoint, 0, days)

	var admitted, discharged, ai, di int
	for i := 0; i < days; i++ {
		day := first.AddDays(i)
		for ai < len(admissions) && !admissions[ai].Day.After(day) {
			admitted += admissions[ai].Count
			ai++
		}
		for di < len(discharges) && !discharges[di].Day.After(day) {
			discharged += discharges[di].Count
			di++
		}
		points = append(points, model.TrendPoint{
			Date:       day,
			Value:      Rate(admitted-discharged, totalBeds),
			MetricName: MetricOccupancyRate,
		})
	}
	return points
}

// ReadmissionTrend produces the number of readmissions dated exactly on
// each day of the window. Days without readmissions report 0.
func ReadmissionTrend(today model.Date, days int, perDay []model.DayCount) []model.TrendPoint {
	first, _ := TrendWindow(today, days)

	byDay := make(map[string]int, len(perDay))
	for _, c := range perDay {
		byDay[c.Day.String()] += c.Count
	}

	points := make([]model.TrendPoint, 0, days)
	for i := 0; i < days; i++ {
		day := first.AddDays(i)
		points = append(points, model.TrendPoint{
			Date:       day,
			Value:      float64(byDay[day.String()]),
			MetricName: MetricReadmissions,
		})
	}
	return points
}
