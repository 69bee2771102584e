package quotation

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bps-backoffice/logger"
	quotationModel "bps-backoffice/models/quotation"
	"bps-backoffice/types"
	quotationTypes "bps-backoffice/types/quotation"
	"bps-backoffice/utils"
)

// QuotationController handles quotation-related HTTP requests
type QuotationController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewQuotationController creates a new quotation controller
func NewQuotationController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *QuotationController {
	return &QuotationController{
		DB:     db,
		Logger: asyncLogger,
	}
}

func (qc *QuotationController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	qc.Logger.Log(utils.CreateLogEntry(c, status))
	return result
}

// Store creates a new quotation
func (qc *QuotationController) Store(c *fiber.Ctx) error {
	var req quotationTypes.QuotationCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return qc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return qc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	var existing quotationModel.Quotation
	err := qc.DB.Where("booking_id = ?", req.BookingID).First(&existing).Error
	if err == nil {
		return qc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Quotation already exists with this bookingId.",
			Data:    existing,
		})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Database error while checking existing quotation", err)
		return qc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	quotation := quotationModel.Quotation{
		BookingID:        req.BookingID,
		FromCustomerName: req.FromCustomerName,
		ToCustomerName:   req.ToCustomerName,
		StartStationID:   req.StartStationID,
		EndStation:       req.EndStation,
		QuotationDate:    req.QuotationDate,
	}

	if err := qc.DB.Create(&quotation).Error; err != nil {
		logger.Error("Failed to create quotation", err)
		return qc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create quotation",
			Data:    nil,
		})
	}

	return qc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Quotation created successfully.",
		Data:    quotation,
	})
}

// List returns all quotations with their start station preloaded
func (qc *QuotationController) List(c *fiber.Ctx) error {
	var quotations []quotationModel.Quotation
	if err := qc.DB.Preload("StartStation").Order("created_at").Find(&quotations).Error; err != nil {
		logger.Error("Failed to list quotations", err)
		return qc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list quotations",
			Data:    nil,
		})
	}

	return qc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Quotations fetched successfully.",
		Data:    quotations,
	})
}

// Delete removes a quotation by its business id
func (qc *QuotationController) Delete(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	var quotation quotationModel.Quotation
	if err := qc.DB.Where("booking_id = ?", bookingID).First(&quotation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return qc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Quotation not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to fetch quotation", err)
		return qc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	if err := qc.DB.Delete(&quotation).Error; err != nil {
		logger.Error("Failed to delete quotation", err)
		return qc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete quotation",
			Data:    nil,
		})
	}

	return qc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Quotation deleted successfully.",
		Data:    nil,
	})
}
