package vehicle

import "fmt"

// VehicleCreateRequest represents the request payload for registering a vehicle
type VehicleCreateRequest struct {
	VehicleID      string `json:"vehicleId"`
	VehicleName    string `json:"vehicleName"`
	VehicleModel   string `json:"vehicleModel"`
	RegistrationNo string `json:"registration_no"`
}

func (v VehicleCreateRequest) Validate() error {
	if v.VehicleID == "" {
		return fmt.Errorf("vehicleId is required")
	}
	if v.VehicleName == "" {
		return fmt.Errorf("vehicleName is required")
	}
	return nil
}
