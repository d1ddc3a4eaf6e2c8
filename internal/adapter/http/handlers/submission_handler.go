package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "research_hub/internal/adapter/http/dto/request"
	response "research_hub/internal/adapter/http/dto/response"
	"research_hub/internal/domain/entities"
	"research_hub/internal/usecase"
	"research_hub/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSubmissionPayload = pkg.NewDomainErrorSimple("INVALID_SUBMISSION_INPUT", "Invalid submission payload", http.StatusBadRequest)

// SubmissionHandler handles HTTP requests for the submission lifecycle:
// draft intake, review transitions and resubmission.

type SubmissionHandler struct {
	usecase usecase.ISubmissionUseCase
}

func NewSubmissionHandler(uc usecase.ISubmissionUseCase) *SubmissionHandler {
	return &SubmissionHandler{usecase: uc}
}

// CreateSubmission accepts a raw form draft and creates a submitted record.
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	var payload request.SubmissionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSubmissionPayload.HTTPStatus, errInvalidSubmissionPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), payload.ToDraft())
	if err != nil {
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSubmission(created))
}

// GetSubmission returns one submission by id.
func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	s, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSubmission(s))
}

func (h *SubmissionHandler) StartReview(c *gin.Context) {
	h.transition(c, entities.SubmissionStatusUnderReview)
}

func (h *SubmissionHandler) AcceptSubmission(c *gin.Context) {
	h.transition(c, entities.SubmissionStatusAccepted)
}

func (h *SubmissionHandler) RejectSubmission(c *gin.Context) {
	h.transition(c, entities.SubmissionStatusRejected)
}

func (h *SubmissionHandler) PublishSubmission(c *gin.Context) {
	h.transition(c, entities.SubmissionStatusPublished)
}

func (h *SubmissionHandler) transition(c *gin.Context, target entities.SubmissionStatus) {
	id := c.Param("id")
	log.Printf("[submission][handler] transition start submission_id=%s target=%s", id, target)

	updated, err := h.usecase.Transition(c.Request.Context(), id, target)
	if err != nil {
		log.Printf("[submission][handler] transition failed submission_id=%s target=%s err=%v", id, target, err)
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubmission(updated))
}

// ResubmitSubmission creates a new linked submission for a rejected original.
func (h *SubmissionHandler) ResubmitSubmission(c *gin.Context) {
	id := c.Param("id")

	var payload request.SubmissionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSubmissionPayload.HTTPStatus, errInvalidSubmissionPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Resubmit(c.Request.Context(), id, payload.ToDraft())
	if err != nil {
		log.Printf("[submission][handler] resubmit failed submission_id=%s err=%v", id, err)
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSubmission(created))
}

func mapSubmissionError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR",
			"Missing or invalid fields: "+strings.Join(verr.Fields, ", "), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSubmissionID), errors.Is(err, usecase.ErrInvalidTargetStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubmissionNotFound):
		return pkg.NewDomainErrorSimple("SUBMISSION_NOT_FOUND", "Submission not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotResubmittable):
		return pkg.NewDomainErrorSimple("NOT_RESUBMITTABLE", "Only rejected submissions can be resubmitted", http.StatusConflict)
	case errors.Is(err, usecase.ErrResubmissionExists):
		return pkg.NewDomainErrorSimple("RESUBMISSION_EXISTS", "Submission already has a resubmission", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
