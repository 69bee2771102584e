package station

import "fmt"

// StationCreateRequest represents the request payload for creating a station
type StationCreateRequest struct {
	StationName string `json:"station_name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
}

func (s StationCreateRequest) Validate() error {
	if s.StationName == "" {
		return fmt.Errorf("station_name is required")
	}
	return nil
}
