package customer

import "fmt"

// CustomerCreateRequest represents the request payload for creating a customer
type CustomerCreateRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (c CustomerCreateRequest) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if c.Phone == "" {
		return fmt.Errorf("phone is required")
	}
	return nil
}
