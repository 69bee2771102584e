package station

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bps-backoffice/logger"
	stationModel "bps-backoffice/models/station"
	"bps-backoffice/types"
	stationTypes "bps-backoffice/types/station"
	"bps-backoffice/utils"
)

// StationController handles station-related HTTP requests
type StationController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewStationController creates a new station controller
func NewStationController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *StationController {
	return &StationController{
		DB:     db,
		Logger: asyncLogger,
	}
}

func (sc *StationController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	sc.Logger.Log(utils.CreateLogEntry(c, status))
	return result
}

// Store creates a new station
func (sc *StationController) Store(c *fiber.Ctx) error {
	var req stationTypes.StationCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return sc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return sc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	station := stationModel.Station{
		StationName: req.StationName,
		Address:     req.Address,
		Phone:       req.Phone,
	}

	if err := sc.DB.Create(&station).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return sc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Station already exists with this name.",
				Data:    nil,
			})
		}
		logger.Error("Failed to create station", err)
		return sc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create station",
			Data:    nil,
		})
	}

	return sc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Station created successfully.",
		Data:    station,
	})
}

// List returns all stations
func (sc *StationController) List(c *fiber.Ctx) error {
	var stations []stationModel.Station
	if err := sc.DB.Order("station_name").Find(&stations).Error; err != nil {
		logger.Error("Failed to list stations", err)
		return sc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list stations",
			Data:    nil,
		})
	}

	return sc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Stations fetched successfully.",
		Data:    stations,
	})
}

// Delete removes a station by its storage id
func (sc *StationController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return sc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid station id",
			Data:    nil,
		})
	}

	var station stationModel.Station
	if err := sc.DB.First(&station, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return sc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Station not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to fetch station", err)
		return sc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	if err := sc.DB.Delete(&station).Error; err != nil {
		logger.Error("Failed to delete station", err)
		return sc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete station",
			Data:    nil,
		})
	}

	return sc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Station deleted successfully.",
		Data:    nil,
	})
}
