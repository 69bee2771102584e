package vehicle

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bps-backoffice/logger"
	vehicleModel "bps-backoffice/models/vehicle"
	"bps-backoffice/types"
	vehicleTypes "bps-backoffice/types/vehicle"
	"bps-backoffice/utils"
)

// VehicleController handles vehicle-related HTTP requests
type VehicleController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewVehicleController creates a new vehicle controller
func NewVehicleController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *VehicleController {
	return &VehicleController{
		DB:     db,
		Logger: asyncLogger,
	}
}

func (vc *VehicleController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	vc.Logger.Log(utils.CreateLogEntry(c, status))
	return result
}

// Store registers a new vehicle; InService defaults to true
func (vc *VehicleController) Store(c *fiber.Ctx) error {
	var req vehicleTypes.VehicleCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return vc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return vc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	vehicle := vehicleModel.Vehicle{
		VehicleID:      req.VehicleID,
		VehicleName:    req.VehicleName,
		VehicleModel:   req.VehicleModel,
		RegistrationNo: req.RegistrationNo,
		InService:      true,
	}

	if err := vc.DB.Create(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return vc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Vehicle already exists with this vehicleId.",
				Data:    nil,
			})
		}
		logger.Error("Failed to create vehicle", err)
		return vc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create vehicle",
			Data:    nil,
		})
	}

	return vc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Vehicle created successfully.",
		Data:    vehicle,
	})
}

// List returns all vehicles
func (vc *VehicleController) List(c *fiber.Ctx) error {
	var vehicles []vehicleModel.Vehicle
	if err := vc.DB.Order("created_at").Find(&vehicles).Error; err != nil {
		logger.Error("Failed to list vehicles", err)
		return vc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list vehicles",
			Data:    nil,
		})
	}

	return vc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Vehicles fetched successfully.",
		Data:    vehicles,
	})
}

// Update modifies a vehicle by its business id
func (vc *VehicleController) Update(c *fiber.Ctx) error {
	vehicleID := c.Params("vehicleId")

	var vehicle vehicleModel.Vehicle
	if err := vc.DB.Where("vehicle_id = ?", vehicleID).First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return vc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Vehicle not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to fetch vehicle", err)
		return vc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	var req vehicleTypes.VehicleCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return vc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if req.VehicleName != "" {
		vehicle.VehicleName = req.VehicleName
	}
	if req.VehicleModel != "" {
		vehicle.VehicleModel = req.VehicleModel
	}
	if req.RegistrationNo != "" {
		vehicle.RegistrationNo = req.RegistrationNo
	}

	if err := vc.DB.Save(&vehicle).Error; err != nil {
		logger.Error("Failed to update vehicle", err)
		return vc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update vehicle",
			Data:    nil,
		})
	}

	return vc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Vehicle updated successfully.",
		Data:    vehicle,
	})
}

// Delete removes a vehicle by its business id
func (vc *VehicleController) Delete(c *fiber.Ctx) error {
	vehicleID := c.Params("vehicleId")

	var vehicle vehicleModel.Vehicle
	if err := vc.DB.Where("vehicle_id = ?", vehicleID).First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return vc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Vehicle not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to fetch vehicle", err)
		return vc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	if err := vc.DB.Delete(&vehicle).Error; err != nil {
		logger.Error("Failed to delete vehicle", err)
		return vc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete vehicle",
			Data:    nil,
		})
	}

	return vc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Vehicle deleted successfully.",
		Data:    nil,
	})
}
