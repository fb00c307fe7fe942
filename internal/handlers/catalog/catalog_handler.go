// internal/handlers/catalog/catalog_handler.go
package catalog

import (
	"net/http"

	"transporte-service/internal/domain/catalog"
	xerrors "transporte-service/internal/pkg/errors"
	"transporte-service/internal/pkg/response"
	catalogsvc "transporte-service/internal/service/catalogs"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService *catalogsvc.Service
}

func NewCatalogHandler(catalogService *catalogsvc.Service) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListCatalog returns every entry of the named catalog.
func (h *CatalogHandler) ListCatalog(c *gin.Context) {
	kind := catalog.Kind(c.Param("catalogo"))

	entries, err := h.catalogService.List(c.Request.Context(), kind)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrInvalidInput) {
			response.ValidationError(c, "unknown catalog", err)
			return
		}
		response.Internal(c, "failed to list catalog", err)
		return
	}
	response.Success(c, http.StatusOK, "catalog retrieved", entries)
}
