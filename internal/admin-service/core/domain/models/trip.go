package models

import "time"

type Trip struct {
	Id              int64     `json:"id"`
	CustomerId      int64     `json:"customer_id"`
	DriverId        *int64    `json:"driver_id"` // nil means unassigned
	PickupLocation  string    `json:"pickup_location"`
	DropoffLocation string    `json:"dropoff_location"`
	VehicleType     string    `json:"vehicle_type"`
	Status          string    `json:"status"`
	Price           float64   `json:"price"`
	Distance        *float64  `json:"distance,omitempty"`
	EstimatedTime   *int64    `json:"estimated_time,omitempty"`
	ActualTime      *int64    `json:"actual_time,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// RecentTrip is the dashboard row for the latest trips widget.
type RecentTrip struct {
	Id            int64   `json:"id"`
	DriverName    *string `json:"driver_name"`
	PickupAddress string  `json:"pickup_address"`
	Status        string  `json:"status"`
}
