package driver

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bps-backoffice/logger"
	driverModel "bps-backoffice/models/driver"
	"bps-backoffice/types"
	driverTypes "bps-backoffice/types/driver"
	"bps-backoffice/utils"
)

// DriverController handles driver-related HTTP requests
type DriverController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewDriverController creates a new driver controller
func NewDriverController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *DriverController {
	return &DriverController{
		DB:     db,
		Logger: asyncLogger,
	}
}

func (dc *DriverController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	dc.Logger.Log(utils.CreateLogEntry(c, status))
	return result
}

// Store registers a new driver
func (dc *DriverController) Store(c *fiber.Ctx) error {
	var req driverTypes.DriverCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return dc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return dc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	driver := driverModel.Driver{
		Name:          req.Name,
		Phone:         req.Phone,
		LicenseNumber: req.LicenseNumber,
		Active:        true,
	}

	if err := dc.DB.Create(&driver).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Driver already exists with this license number.",
				Data:    nil,
			})
		}
		logger.Error("Failed to create driver", err)
		return dc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create driver",
			Data:    nil,
		})
	}

	return dc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Driver created successfully.",
		Data:    driver,
	})
}

// List returns all drivers
func (dc *DriverController) List(c *fiber.Ctx) error {
	var drivers []driverModel.Driver
	if err := dc.DB.Order("name").Find(&drivers).Error; err != nil {
		logger.Error("Failed to list drivers", err)
		return dc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list drivers",
			Data:    nil,
		})
	}

	return dc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Drivers fetched successfully.",
		Data:    drivers,
	})
}

// Delete removes a driver by its storage id
func (dc *DriverController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return dc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid driver id",
			Data:    nil,
		})
	}

	var driver driverModel.Driver
	if err := dc.DB.First(&driver, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Driver not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to fetch driver", err)
		return dc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	if err := dc.DB.Delete(&driver).Error; err != nil {
		logger.Error("Failed to delete driver", err)
		return dc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete driver",
			Data:    nil,
		})
	}

	return dc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Driver deleted successfully.",
		Data:    nil,
	})
}
