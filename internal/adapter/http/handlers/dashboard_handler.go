package handlers

import (
	"errors"
	"net/http"

	response "research_hub/internal/adapter/http/dto/response"
	"research_hub/internal/domain/entities"
	"research_hub/internal/usecase"
	"research_hub/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the read-only dashboard projections.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// ListByStatus returns submissions in one review state, oldest first.
func (h *DashboardHandler) ListByStatus(c *gin.Context) {
	status := entities.SubmissionStatus(c.Query("status"))

	subs, err := h.usecase.ListByStatus(c.Request.Context(), status)
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSubmissions(subs))
}

// ListPayable returns the author's submissions awaiting payment, each with
// its open invoice.
func (h *DashboardHandler) ListPayable(c *gin.Context) {
	items, err := h.usecase.ListPayable(c.Request.Context(), c.Query("author"))
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayableItems(items))
}

// ListResubmittable returns the author's rejected submissions that have no
// resubmission yet.
func (h *DashboardHandler) ListResubmittable(c *gin.Context) {
	subs, err := h.usecase.ListResubmittable(c.Request.Context(), c.Query("author"))
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSubmissions(subs))
}

func mapDashboardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStatusFilter), errors.Is(err, usecase.ErrInvalidAuthorEmail):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
