package driver

import "fmt"

// DriverCreateRequest represents the request payload for registering a driver
type DriverCreateRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"license_number"`
}

func (d DriverCreateRequest) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	if d.LicenseNumber == "" {
		return fmt.Errorf("license_number is required")
	}
	return nil
}
