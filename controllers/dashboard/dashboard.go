package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"

	"bps-backoffice/logger"
	bookingModel "bps-backoffice/models/booking"
	deliveryModel "bps-backoffice/models/delivery"
	driverModel "bps-backoffice/models/driver"
	vehicleModel "bps-backoffice/models/vehicle"
	"bps-backoffice/types"
	"bps-backoffice/utils"
)

// DashboardController serves the summary cards of the admin console
type DashboardController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *DashboardController {
	return &DashboardController{
		DB:     db,
		Logger: asyncLogger,
	}
}

func (dc *DashboardController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	dc.Logger.Log(utils.CreateLogEntry(c, status))
	return result
}

// Summary returns the totals shown on the dashboard cards plus the number of
// deliveries finalized since the beginning of today.
func (dc *DashboardController) Summary(c *fiber.Ctx) error {
	var (
		bookings       int64
		deliveries     int64
		vehicles       int64
		drivers        int64
		finalizedToday int64
	)

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&bookingModel.Booking{}, &bookings},
		{&deliveryModel.Delivery{}, &deliveries},
		{&vehicleModel.Vehicle{}, &vehicles},
		{&driverModel.Driver{}, &drivers},
	}

	for _, count := range counts {
		if err := dc.DB.Model(count.model).Count(count.dest).Error; err != nil {
			logger.Error("Failed to count dashboard totals", err)
			return dc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Failed to build dashboard summary",
				Data:    nil,
			})
		}
	}

	err := dc.DB.Model(&deliveryModel.Delivery{}).
		Where("status = ? AND updated_at >= ?", deliveryModel.StatusFinalDelivery, now.BeginningOfDay()).
		Count(&finalizedToday).Error
	if err != nil {
		logger.Error("Failed to count deliveries finalized today", err)
		return dc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to build dashboard summary",
			Data:    nil,
		})
	}

	return dc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Dashboard summary fetched successfully.",
		Data: fiber.Map{
			"totalBookings":  bookings,
			"deliveries":     deliveries,
			"vehicles":       vehicles,
			"drivers":        drivers,
			"finalizedToday": finalizedToday,
		},
	})
}
