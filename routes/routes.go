package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookingController "bps-backoffice/controllers/booking"
	customerController "bps-backoffice/controllers/customer"
	dashboardController "bps-backoffice/controllers/dashboard"
	deliveryController "bps-backoffice/controllers/delivery"
	driverController "bps-backoffice/controllers/driver"
	quotationController "bps-backoffice/controllers/quotation"
	stationController "bps-backoffice/controllers/station"
	vehicleController "bps-backoffice/controllers/vehicle"
	"bps-backoffice/logger"
	"bps-backoffice/middleware"
	deliveryService "bps-backoffice/services/delivery"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)

	deliverySvc := deliveryService.NewService(deliveryService.NewStore(db))

	deliveries := deliveryController.NewDeliveryController(deliverySvc, asyncLogger)
	bookings := bookingController.NewBookingController(db, asyncLogger)
	quotations := quotationController.NewQuotationController(db, asyncLogger)
	vehicles := vehicleController.NewVehicleController(db, asyncLogger)
	drivers := driverController.NewDriverController(db, asyncLogger)
	stations := stationController.NewStationController(db, asyncLogger)
	customers := customerController.NewCustomerController(db, asyncLogger)
	dashboard := dashboardController.NewDashboardController(db, asyncLogger)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	api := app.Group("/api")

	/*=============================================================================
	| Delivery Routes
	===============================================================================*/
	deliveryGroup := api.Group("/delivery")
	deliveryGroup.Post("/assign", deliveries.Assign)
	deliveryGroup.Get("/booking", deliveries.ListBookingDeliveries)
	deliveryGroup.Get("/quotation", deliveries.ListQuotationDeliveries)
	deliveryGroup.Get("/booking/count", deliveries.CountBookingDeliveries)
	deliveryGroup.Get("/quotation/count", deliveries.CountQuotationDeliveries)
	deliveryGroup.Get("/final/count", deliveries.CountFinalDeliveries)
	deliveryGroup.Get("/final/list", deliveries.ListFinalDeliveries)
	deliveryGroup.Put("/finalize/:orderId", deliveries.Finalize)

	/*=============================================================================
	| Admin CRUD Routes (token issued by the external auth service)
	===============================================================================*/
	bookingGroup := api.Group("/booking").Use(middleware.RequireAuthentication())
	bookingGroup.Post("/", bookings.Store)
	bookingGroup.Get("/", bookings.List)
	bookingGroup.Get("/:bookingId", bookings.Show)
	bookingGroup.Put("/:bookingId", bookings.Update)
	bookingGroup.Delete("/:bookingId", bookings.Delete)

	quotationGroup := api.Group("/quotation").Use(middleware.RequireAuthentication())
	quotationGroup.Post("/", quotations.Store)
	quotationGroup.Get("/", quotations.List)
	quotationGroup.Delete("/:bookingId", quotations.Delete)

	vehicleGroup := api.Group("/vehicle").Use(middleware.RequireAuthentication())
	vehicleGroup.Post("/", vehicles.Store)
	vehicleGroup.Get("/", vehicles.List)
	vehicleGroup.Put("/:vehicleId", vehicles.Update)
	vehicleGroup.Delete("/:vehicleId", vehicles.Delete)

	driverGroup := api.Group("/driver").Use(middleware.RequireAuthentication())
	driverGroup.Post("/", drivers.Store)
	driverGroup.Get("/", drivers.List)
	driverGroup.Delete("/:id", drivers.Delete)

	stationGroup := api.Group("/station").Use(middleware.RequireAuthentication())
	stationGroup.Post("/", stations.Store)
	stationGroup.Get("/", stations.List)
	stationGroup.Delete("/:id", stations.Delete)

	customerGroup := api.Group("/customer").Use(middleware.RequireAuthentication())
	customerGroup.Post("/", customers.Store)
	customerGroup.Get("/", customers.List)
	customerGroup.Delete("/:id", customers.Delete)

	/*=============================================================================
	| Dashboard Routes
	===============================================================================*/
	dashboardGroup := api.Group("/dashboard").Use(middleware.RequireAuthentication())
	dashboardGroup.Get("/summary", dashboard.Summary)
}
