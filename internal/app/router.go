// internal/app/router.go
package app

import (
	catalogHandler "transporte-service/internal/handlers/catalog"
	inspectionHandler "transporte-service/internal/handlers/inspection"
	vehicleHandler "transporte-service/internal/handlers/vehicle"
	"transporte-service/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	VehicleHandler    *vehicleHandler.VehicleHandler
	CatalogHandler    *catalogHandler.CatalogHandler
	InspectionHandler *inspectionHandler.InspectionHandler
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, h *Handlers) {
	r.Use(middleware.RequestID())
	r.Use(middleware.RecoveryMiddleware(logger))
	r.Use(middleware.ActingUser())

	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== Vehicles ====================
	vehicles := api.Group("/vehiculos")
	{
		vehicles.GET("", h.VehicleHandler.SearchVehicles)
		vehicles.GET("/:serie", h.VehicleHandler.GetVehicle)
		vehicles.PUT("/:serie", h.VehicleHandler.ModifyVehicle)
	}

	// ==================== Catalogs ====================
	api.GET("/catalogos/:catalogo", h.CatalogHandler.ListCatalog)

	// ==================== Inspections ====================
	inspections := api.Group("/inspecciones")
	{
		inspections.POST("", h.InspectionHandler.CreateInspection)
		inspections.GET("/:folio", h.InspectionHandler.GetInspection)
		inspections.POST("/:folio/fotos", h.InspectionHandler.AttachPhoto)
		inspections.POST("/:folio/imprimir", h.InspectionHandler.PrintInspection)
		inspections.POST("/:folio/finalizar", h.InspectionHandler.FinalizeInspection)
	}
}
