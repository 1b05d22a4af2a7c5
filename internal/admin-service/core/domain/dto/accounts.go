package dto

// AccountUpdateRequest carries the mutable account fields. Role is fixed at
// creation and deliberately absent here.
type AccountUpdateRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	VehicleType *string `json:"vehicle_type"`
}
