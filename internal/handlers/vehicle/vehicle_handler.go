// internal/handlers/vehicle/vehicle_handler.go
package vehicle

import (
	"net/http"
	"strconv"

	"transporte-service/internal/domain/vehicle"
	"transporte-service/internal/middleware"
	xerrors "transporte-service/internal/pkg/errors"
	"transporte-service/internal/pkg/response"
	modservice "transporte-service/internal/service/modification"
	searchservice "transporte-service/internal/service/search"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	modService    *modservice.Service
	searchService *searchservice.Service
}

func NewVehicleHandler(modService *modservice.Service, searchService *searchservice.Service) *VehicleHandler {
	return &VehicleHandler{
		modService:    modService,
		searchService: searchService,
	}
}

// ModifyVehicle applies a vehicle/insurance modification. The vehicle and
// insurance outcomes are reported independently: on a partial success the
// response still carries vehicle_updated=true.
func (h *VehicleHandler) ModifyVehicle(c *gin.Context) {
	var req vehicle.ModifyVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}
	req.Attributes.Serial = c.Param("serie")

	userID := middleware.GetActingUserID(c)
	result, err := h.modService.ModifyVehicle(c.Request.Context(), userID, &req)

	switch {
	case err == nil:
		response.Success(c, http.StatusOK, "vehicle and insurance updated", result)
	case xerrors.Is(err, xerrors.ErrInsurancePartial):
		response.PartialSuccess(c, "vehicle updated, insurance upsert failed", result, err)
	case xerrors.Is(err, xerrors.ErrInvalidInput):
		response.ValidationError(c, "invalid request", err)
	case xerrors.Is(err, xerrors.ErrNotFound):
		response.NotFound(c, "vehicle not found", err)
	default:
		response.Internal(c, "failed to modify vehicle", err)
	}
}

// GetVehicle returns one vehicle by serial.
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	v, err := h.searchService.FindBySerial(c.Request.Context(), c.Param("serie"))
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "vehicle not found", err)
			return
		}
		response.Internal(c, "failed to load vehicle", err)
		return
	}
	response.Success(c, http.StatusOK, "vehicle retrieved", v)
}

// SearchVehicles dispatches one of the search variants based on which filter
// is present.
func (h *VehicleHandler) SearchVehicles(c *gin.Context) {
	var concessionID int64
	if raw := c.Query("concesion"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.ValidationError(c, "invalid concesion filter", err)
			return
		}
		concessionID = id
	}

	page := searchservice.Page{
		Number: intQuery(c, "page", 1),
		Size:   intQuery(c, "page_size", 20),
	}

	query, err := searchservice.ParseQuery(concessionID, c.Query("placa"), page)
	if err != nil {
		response.ValidationError(c, "invalid search filters", err)
		return
	}

	result, err := h.searchService.Search(c.Request.Context(), query)
	if err != nil {
		response.Internal(c, "search failed", err)
		return
	}
	response.Success(c, http.StatusOK, "vehicles retrieved", result)
}

func intQuery(c *gin.Context, key string, fallback int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}
