package database

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bps-backoffice/logger"
	"bps-backoffice/models/booking"
	"bps-backoffice/models/customer"
	"bps-backoffice/models/delivery"
	"bps-backoffice/models/driver"
	logModel "bps-backoffice/models/log"
	"bps-backoffice/models/quotation"
	"bps-backoffice/models/station"
	"bps-backoffice/models/vehicle"
)

var DB *gorm.DB

// InitDB initializes the database connection with auto migration and indexing
func InitDB() (*gorm.DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Warning("No .env file found, relying on environment variables")
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")

	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslmode)

	var err error
	// TranslateError turns unique-index violations into gorm.ErrDuplicatedKey,
	// which the delivery service maps to a conflict.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createForeignKeyConstraints(); err != nil {
		logger.Error("Failed to create foreign key constraints", err)
		return nil, err
	}

	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return DB, nil
}

// autoMigrate runs auto migration for all models in dependency order
func autoMigrate() error {
	// Stage 1: models without foreign keys
	stage1Models := []interface{}{
		&station.Station{},
		&customer.Customer{},
		&vehicle.Vehicle{},
		&driver.Driver{},
	}

	for _, model := range stage1Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: models referencing stage 1
	stage2Models := []interface{}{
		&booking.Booking{},
		&quotation.Quotation{},
	}

	for _, model := range stage2Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: deliveries reference bookings, quotations and vehicles
	if err := DB.AutoMigrate(&delivery.Delivery{}); err != nil {
		return fmt.Errorf("failed to migrate %T: %w", &delivery.Delivery{}, err)
	}

	// Logging
	if err := DB.AutoMigrate(&logModel.Log{}); err != nil {
		return fmt.Errorf("failed to migrate %T: %w", &logModel.Log{}, err)
	}

	return nil
}

// createIndexes creates additional indexes for better performance. The two
// partial unique indexes on deliveries enforce at-most-one-delivery-per-source
// even when concurrent assignment requests pass the service's pre-check.
func createIndexes() error {
	if err := DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uidx_deliveries_booking_id
		ON deliveries(booking_id) WHERE booking_id IS NOT NULL`).Error; err != nil {
		return fmt.Errorf("failed to create delivery booking_id unique index: %w", err)
	}
	if err := DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uidx_deliveries_quotation_id
		ON deliveries(quotation_id) WHERE quotation_id IS NOT NULL`).Error; err != nil {
		return fmt.Errorf("failed to create delivery quotation_id unique index: %w", err)
	}

	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_deliveries_status ON deliveries(status)").Error; err != nil {
		return fmt.Errorf("failed to create delivery status index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_deliveries_delivery_type ON deliveries(delivery_type)").Error; err != nil {
		return fmt.Errorf("failed to create delivery delivery_type index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_deliveries_created_at ON deliveries(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create delivery created_at index: %w", err)
	}

	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_booking_id ON bookings(booking_id)").Error; err != nil {
		return fmt.Errorf("failed to create booking booking_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_quotations_booking_id ON quotations(booking_id)").Error; err != nil {
		return fmt.Errorf("failed to create quotation booking_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_vehicles_vehicle_id ON vehicles(vehicle_id)").Error; err != nil {
		return fmt.Errorf("failed to create vehicle vehicle_id index: %w", err)
	}

	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_status_code ON logs(status_code)").Error; err != nil {
		return fmt.Errorf("failed to create log status_code index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create log created_at index: %w", err)
	}

	return nil
}

// createForeignKeyConstraints creates foreign key constraints after auto migration
func createForeignKeyConstraints() error {
	constraints := []struct {
		name string
		sql  string
	}{
		{
			name: "fk_deliveries_booking",
			sql: `ALTER TABLE deliveries ADD CONSTRAINT fk_deliveries_booking
				  FOREIGN KEY (booking_id) REFERENCES bookings(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_deliveries_quotation",
			sql: `ALTER TABLE deliveries ADD CONSTRAINT fk_deliveries_quotation
				  FOREIGN KEY (quotation_id) REFERENCES quotations(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_deliveries_vehicle",
			sql: `ALTER TABLE deliveries ADD CONSTRAINT fk_deliveries_vehicle
				  FOREIGN KEY (vehicle_id) REFERENCES vehicles(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_bookings_start_station",
			sql: `ALTER TABLE bookings ADD CONSTRAINT fk_bookings_start_station
				  FOREIGN KEY (start_station_id) REFERENCES stations(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_bookings_end_station",
			sql: `ALTER TABLE bookings ADD CONSTRAINT fk_bookings_end_station
				  FOREIGN KEY (end_station_id) REFERENCES stations(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_quotations_start_station",
			sql: `ALTER TABLE quotations ADD CONSTRAINT fk_quotations_start_station
				  FOREIGN KEY (start_station_id) REFERENCES stations(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
	}

	for _, constraint := range constraints {
		var exists bool
		checkSQL := `
			SELECT EXISTS (
				SELECT 1 FROM information_schema.table_constraints
				WHERE constraint_name = $1
			)
		`

		err := DB.Raw(checkSQL, constraint.name).Scan(&exists).Error
		if err != nil {
			logger.Warning(fmt.Sprintf("Failed to check constraint existence: %s - Error: %v", constraint.name, err))
			continue
		}

		if !exists {
			if err := DB.Exec(constraint.sql).Error; err != nil {
				logger.Warning(fmt.Sprintf("Failed to create constraint: %s - Error: %v", constraint.name, err))
			}
		}
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
