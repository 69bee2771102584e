package customer

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bps-backoffice/logger"
	customerModel "bps-backoffice/models/customer"
	"bps-backoffice/types"
	customerTypes "bps-backoffice/types/customer"
	"bps-backoffice/utils"
)

// CustomerController handles customer-related HTTP requests
type CustomerController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewCustomerController creates a new customer controller
func NewCustomerController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *CustomerController {
	return &CustomerController{
		DB:     db,
		Logger: asyncLogger,
	}
}

func (cc *CustomerController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	cc.Logger.Log(utils.CreateLogEntry(c, status))
	return result
}

// Store creates a new customer
func (cc *CustomerController) Store(c *fiber.Ctx) error {
	var req customerTypes.CustomerCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return cc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return cc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	customer := customerModel.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}

	if err := cc.DB.Create(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return cc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Customer already exists with this email.",
				Data:    nil,
			})
		}
		logger.Error("Failed to create customer", err)
		return cc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create customer",
			Data:    nil,
		})
	}

	return cc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Customer created successfully.",
		Data:    customer,
	})
}

// List returns all customers
func (cc *CustomerController) List(c *fiber.Ctx) error {
	var customers []customerModel.Customer
	if err := cc.DB.Order("name").Find(&customers).Error; err != nil {
		logger.Error("Failed to list customers", err)
		return cc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list customers",
			Data:    nil,
		})
	}

	return cc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Customers fetched successfully.",
		Data:    customers,
	})
}

// Delete removes a customer by its storage id
func (cc *CustomerController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return cc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid customer id",
			Data:    nil,
		})
	}

	var customer customerModel.Customer
	if err := cc.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Customer not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to fetch customer", err)
		return cc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	if err := cc.DB.Delete(&customer).Error; err != nil {
		logger.Error("Failed to delete customer", err)
		return cc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete customer",
			Data:    nil,
		})
	}

	return cc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Customer deleted successfully.",
		Data:    nil,
	})
}
