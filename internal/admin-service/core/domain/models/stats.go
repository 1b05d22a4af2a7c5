package models

// Stats is the dashboard overview block.
type Stats struct {
	TotalTrips      int64   `json:"total_trips"`
	ActiveDrivers   int64   `json:"active_drivers"`
	Revenue         float64 `json:"revenue"`
	PendingPayments float64 `json:"pending_payments"`
}

// DayCount is one bar of the trips-per-weekday chart.
type DayCount struct {
	Day   string `json:"day"`
	Trips int64  `json:"trips"`
}

// DayRevenue is one bar of the revenue-per-weekday chart.
type DayRevenue struct {
	Day     string  `json:"day"`
	Revenue float64 `json:"revenue"`
}
