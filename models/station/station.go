package station

import "time"

// Station represents a depot a parcel travels between
type Station struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	StationName string    `gorm:"type:varchar(255);not null;unique" json:"station_name"`
	Address     string    `gorm:"type:text" json:"address"`
	Phone       string    `gorm:"type:varchar(20)" json:"phone"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
