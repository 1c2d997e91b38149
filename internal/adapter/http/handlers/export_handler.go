package handlers

import (
	"log"
	"net/http"

	"rids_ngo/internal/usecase"
	"rids_ngo/pkg"

	"github.com/gin-gonic/gin"
)

// ExportHandler streams admin data exports.

type ExportHandler struct {
	usecase usecase.IDonationUseCase
}

func NewExportHandler(uc usecase.IDonationUseCase) *ExportHandler {
	return &ExportHandler{usecase: uc}
}

// ExportDonations streams all donation records as CSV.
func (h *ExportHandler) ExportDonations(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=donations.csv")

	if err := h.usecase.ExportCSV(c.Request.Context(), c.Writer); err != nil {
		// Headers may already be on the wire; log and abort.
		log.Printf("[donation][handler] export failed err=%v", err)
		appErr := pkg.NewDomainError("EXPORT_FAILED", "Failed to export donations", err, http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusOK)
}
