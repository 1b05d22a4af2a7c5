package dto

type TripCreateRequest struct {
	CustomerId      int64    `json:"customer_id"`
	DriverId        *int64   `json:"driver_id"`
	PickupLocation  string   `json:"pickup_location"`
	DropoffLocation string   `json:"dropoff_location"`
	VehicleType     string   `json:"vehicle_type"`
	Price           float64  `json:"price"`
	Distance        *float64 `json:"distance"`
	EstimatedTime   *int64   `json:"estimated_time"`
}

type TripUpdateRequest struct {
	PickupLocation  string  `json:"pickup_location"`
	DropoffLocation string  `json:"dropoff_location"`
	Status          string  `json:"status"`
	Price           float64 `json:"price"`
}
