package booking

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bps-backoffice/logger"
	bookingModel "bps-backoffice/models/booking"
	"bps-backoffice/types"
	bookingTypes "bps-backoffice/types/booking"
	"bps-backoffice/utils"
)

// BookingController handles booking-related HTTP requests
type BookingController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewBookingController creates a new booking controller
func NewBookingController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *BookingController {
	return &BookingController{
		DB:     db,
		Logger: asyncLogger,
	}
}

func (bc *BookingController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	bc.Logger.Log(utils.CreateLogEntry(c, status))
	return result
}

// Store creates a new booking
func (bc *BookingController) Store(c *fiber.Ctx) error {
	var req bookingTypes.BookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return bc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return bc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	// Check if a booking with the same business id already exists
	var existing bookingModel.Booking
	err := bc.DB.Where("booking_id = ?", req.BookingID).First(&existing).Error
	if err == nil {
		logger.Info(fmt.Sprintf("Booking with bookingId %s already exists", req.BookingID))
		return bc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Booking already exists with this bookingId.",
			Data:    existing,
		})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Database error while checking existing booking", err)
		return bc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	booking := bookingModel.Booking{
		BookingID:      req.BookingID,
		SenderName:     req.SenderName,
		ReceiverName:   req.ReceiverName,
		StartStationID: req.StartStationID,
		EndStationID:   req.EndStationID,
	}

	if err := bc.DB.Create(&booking).Error; err != nil {
		logger.Error("Failed to create booking", err)
		return bc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create booking",
			Data:    nil,
		})
	}

	return bc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Booking created successfully.",
		Data:    booking,
	})
}

// List returns all bookings with their stations preloaded
func (bc *BookingController) List(c *fiber.Ctx) error {
	var bookings []bookingModel.Booking
	if err := bc.DB.Preload("StartStation").Preload("EndStation").Order("created_at").Find(&bookings).Error; err != nil {
		logger.Error("Failed to list bookings", err)
		return bc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list bookings",
			Data:    nil,
		})
	}

	return bc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Bookings fetched successfully.",
		Data:    bookings,
	})
}

// Show returns a single booking by its business id
func (bc *BookingController) Show(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	var booking bookingModel.Booking
	err := bc.DB.Preload("StartStation").Preload("EndStation").
		Where("booking_id = ?", bookingID).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return bc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Booking not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to fetch booking", err)
		return bc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	return bc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking fetched successfully.",
		Data:    booking,
	})
}

// Update modifies the mutable fields of a booking
func (bc *BookingController) Update(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	var booking bookingModel.Booking
	if err := bc.DB.Where("booking_id = ?", bookingID).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return bc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Booking not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to fetch booking", err)
		return bc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	var req bookingTypes.BookingUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return bc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if req.SenderName != "" {
		booking.SenderName = req.SenderName
	}
	if req.ReceiverName != "" {
		booking.ReceiverName = req.ReceiverName
	}
	if req.StartStationID != 0 {
		booking.StartStationID = req.StartStationID
	}
	if req.EndStationID != 0 {
		booking.EndStationID = req.EndStationID
	}

	if err := bc.DB.Save(&booking).Error; err != nil {
		logger.Error("Failed to update booking", err)
		return bc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update booking",
			Data:    nil,
		})
	}

	return bc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking updated successfully.",
		Data:    booking,
	})
}

// Delete removes a booking by its business id
func (bc *BookingController) Delete(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	var booking bookingModel.Booking
	if err := bc.DB.Where("booking_id = ?", bookingID).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return bc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Booking not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to fetch booking", err)
		return bc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	if err := bc.DB.Delete(&booking).Error; err != nil {
		logger.Error("Failed to delete booking", err)
		return bc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete booking",
			Data:    nil,
		})
	}

	return bc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking deleted successfully.",
		Data:    nil,
	})
}
