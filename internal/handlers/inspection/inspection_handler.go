// internal/handlers/inspection/inspection_handler.go
package inspection

import (
	"net/http"

	"transporte-service/internal/domain/inspection"
	"transporte-service/internal/middleware"
	xerrors "transporte-service/internal/pkg/errors"
	"transporte-service/internal/pkg/response"
	inspsvc "transporte-service/internal/service/inspections"

	"github.com/gin-gonic/gin"
)

type InspectionHandler struct {
	inspectionService *inspsvc.Service
}

func NewInspectionHandler(inspectionService *inspsvc.Service) *InspectionHandler {
	return &InspectionHandler{inspectionService: inspectionService}
}

// CreateInspection opens an inspection for an existing vehicle.
func (h *InspectionHandler) CreateInspection(c *gin.Context) {
	var req inspection.CreateInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	in, err := h.inspectionService.Create(c.Request.Context(), middleware.GetActingUserID(c), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "inspection created", in)
}

// GetInspection returns one inspection by folio.
func (h *InspectionHandler) GetInspection(c *gin.Context) {
	in, err := h.inspectionService.Get(c.Request.Context(), c.Param("folio"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "inspection retrieved", in)
}

// AttachPhoto adds one photo URL to the inspection.
func (h *InspectionHandler) AttachPhoto(c *gin.Context) {
	var req inspection.AttachPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	in, err := h.inspectionService.AttachPhoto(c.Request.Context(), c.Param("folio"), req.PhotoURL)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "photo attached", in)
}

// PrintInspection marks the report as printed.
func (h *InspectionHandler) PrintInspection(c *gin.Context) {
	in, err := h.inspectionService.Print(c.Request.Context(), c.Param("folio"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "inspection printed", in)
}

// FinalizeInspection closes the inspection.
func (h *InspectionHandler) FinalizeInspection(c *gin.Context) {
	in, err := h.inspectionService.Finalize(c.Request.Context(), c.Param("folio"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "inspection finalized", in)
}

func (h *InspectionHandler) writeError(c *gin.Context, err error) {
	switch {
	case xerrors.Is(err, xerrors.ErrInvalidInput):
		response.ValidationError(c, "invalid request", err)
	case xerrors.Is(err, xerrors.ErrNotFound):
		response.NotFound(c, "inspection or vehicle not found", err)
	case xerrors.Is(err, xerrors.ErrConflict):
		response.Error(c, http.StatusConflict, "inspection state does not allow this operation", err)
	default:
		response.Internal(c, "inspection operation failed", err)
	}
}
