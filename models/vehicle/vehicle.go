package vehicle

import "time"

// Vehicle represents a courier vehicle. VehicleID is the business identifier
// printed on assignment forms and is distinct from the storage primary key.
type Vehicle struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	VehicleID      string    `gorm:"type:varchar(50);not null;unique" json:"vehicleId"`
	VehicleName    string    `gorm:"type:varchar(255);not null" json:"vehicleName"`
	VehicleModel   string    `gorm:"type:varchar(255)" json:"vehicleModel"`
	RegistrationNo string    `gorm:"type:varchar(50)" json:"registration_no"`
	InService      bool      `gorm:"default:true" json:"in_service"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
