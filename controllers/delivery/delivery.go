package delivery

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"bps-backoffice/apperr"
	"bps-backoffice/logger"
	deliveryService "bps-backoffice/services/delivery"
	"bps-backoffice/types"
	deliveryTypes "bps-backoffice/types/delivery"
	"bps-backoffice/utils"
)

// DeliveryController handles delivery-related HTTP requests
type DeliveryController struct {
	Service *deliveryService.Service
	Logger  *logger.AsyncLogger
}

// NewDeliveryController creates a new delivery controller
func NewDeliveryController(svc *deliveryService.Service, asyncLogger *logger.AsyncLogger) *DeliveryController {
	return &DeliveryController{
		Service: svc,
		Logger:  asyncLogger,
	}
}

// Helper function to send response and log in one call
func (dc *DeliveryController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	dc.Logger.Log(utils.CreateLogEntry(c, status))
	return result
}

// respondError is the single translator from service error kinds to HTTP
// statuses. Unrecognized errors become a generic 500.
func (dc *DeliveryController) respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, apperr.ErrValidation):
		status = fiber.StatusBadRequest
		message = err.Error()
	case errors.Is(err, apperr.ErrNotFound):
		status = fiber.StatusNotFound
		message = err.Error()
	case errors.Is(err, apperr.ErrConflict):
		status = fiber.StatusBadRequest
		message = err.Error()
	default:
		logger.Error("Delivery request failed", err)
	}

	return dc.sendResponseWithLog(c, status, types.ApiResponse{
		Status:  status,
		Message: message,
		Data:    nil,
	})
}

// Assign assigns a delivery to a booking or quotation
func (dc *DeliveryController) Assign(c *fiber.Ctx) error {
	var req deliveryTypes.AssignDeliveryRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return dc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	created, err := dc.Service.Assign(req)
	if err != nil {
		return dc.respondError(c, err)
	}

	return dc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Delivery assigned successfully.",
		Data:    created,
	})
}

// ListBookingDeliveries lists active booking-sourced deliveries
func (dc *DeliveryController) ListBookingDeliveries(c *fiber.Ctx) error {
	rows, err := dc.Service.ListBookingDeliveries()
	if err != nil {
		return dc.respondError(c, err)
	}

	return dc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking deliveries fetched successfully.",
		Data:    rows,
	})
}

// ListQuotationDeliveries lists active quotation-sourced deliveries
func (dc *DeliveryController) ListQuotationDeliveries(c *fiber.Ctx) error {
	rows, err := dc.Service.ListQuotationDeliveries()
	if err != nil {
		return dc.respondError(c, err)
	}

	return dc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Quotation deliveries fetched successfully.",
		Data:    rows,
	})
}

// CountBookingDeliveries counts active booking-sourced deliveries
func (dc *DeliveryController) CountBookingDeliveries(c *fiber.Ctx) error {
	count, err := dc.Service.CountBookingDeliveries()
	if err != nil {
		return dc.respondError(c, err)
	}

	return dc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking deliveries count fetched successfully.",
		Data:    fiber.Map{"count": count},
	})
}

// CountQuotationDeliveries counts active quotation-sourced deliveries
func (dc *DeliveryController) CountQuotationDeliveries(c *fiber.Ctx) error {
	count, err := dc.Service.CountQuotationDeliveries()
	if err != nil {
		return dc.respondError(c, err)
	}

	return dc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Quotation deliveries count fetched successfully.",
		Data:    fiber.Map{"count": count},
	})
}

// CountFinalDeliveries counts finalized deliveries
func (dc *DeliveryController) CountFinalDeliveries(c *fiber.Ctx) error {
	count, err := dc.Service.CountFinalDeliveries()
	if err != nil {
		return dc.respondError(c, err)
	}

	return dc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Final deliveries counted successfully.",
		Data:    fiber.Map{"finalDeliveries": count},
	})
}

// ListFinalDeliveries lists finalized deliveries
func (dc *DeliveryController) ListFinalDeliveries(c *fiber.Ctx) error {
	rows, err := dc.Service.ListFinalDeliveries()
	if err != nil {
		return dc.respondError(c, err)
	}

	return dc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Final delivery list fetched successfully.",
		Data:    rows,
	})
}

// Finalize marks a delivery as Final Delivery by its order id
func (dc *DeliveryController) Finalize(c *fiber.Ctx) error {
	orderID := c.Params("orderId")

	result, err := dc.Service.Finalize(orderID)
	if err != nil {
		return dc.respondError(c, err)
	}

	return dc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Delivery marked as final.",
		Data:    result,
	})
}
