package handlers

import (
	"context"
	request "course_enrollment/internal/adapter/http/dto/request"
	response "course_enrollment/internal/adapter/http/dto/response"
	"course_enrollment/internal/domain/entities"
	"course_enrollment/internal/usecase"
	"course_enrollment/pkg"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBatchPayload = pkg.NewDomainErrorSimple("INVALID_BATCH_INPUT", "Invalid batch payload", http.StatusBadRequest)
)

// AdminEnrollmentHandler serves the admin-only enrollment routes.

type AdminEnrollmentHandler struct {
	enrollments usecase.IEnrollmentUseCase
	batch       usecase.IAdminBatchUseCase
}

func NewAdminEnrollmentHandler(enrollments usecase.IEnrollmentUseCase, batch usecase.IAdminBatchUseCase) *AdminEnrollmentHandler {
	return &AdminEnrollmentHandler{enrollments: enrollments, batch: batch}
}

// ListAll godoc
// @Summary      All enrollments
// @Tags         admin
// @Produce      json
// @Success      200  {array}   response.EnrollmentResponse
// @Failure      403  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/enrollments [get]
func (h *AdminEnrollmentHandler) ListAll(c *gin.Context) {
	list, err := h.enrollments.ListAll(c.Request.Context())
	if err != nil {
		log.Printf("[admin][handler] list-all failed err=%v", err)
		appErr := mapEnrollmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEnrollments(list))
}

// Approve godoc
// @Summary      Approve an enrollment
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Enrollment id"
// @Success      200  {object}  response.EnrollmentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/enrollments/{id}/approve [put]
func (h *AdminEnrollmentHandler) Approve(c *gin.Context) {
	h.transition(c, "approve", h.enrollments.Approve)
}

// Reject godoc
// @Summary      Reject an enrollment
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Enrollment id"
// @Success      200  {object}  response.EnrollmentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/enrollments/{id}/reject [put]
func (h *AdminEnrollmentHandler) Reject(c *gin.Context) {
	h.transition(c, "reject", h.enrollments.Reject)
}

// BatchApprove godoc
// @Summary      Approve many enrollments
// @Description  Best effort: each id is processed independently.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      request.BatchEnrollmentRequest  true  "Enrollment ids"
// @Success      200   {object}  response.BatchEnrollmentResponse
// @Security     Bearer
// @Router       /admin/enrollments/batch-approve [post]
func (h *AdminEnrollmentHandler) BatchApprove(c *gin.Context) {
	h.batchTransition(c, "approval", h.batch.BatchApprove)
}

// BatchReject godoc
// @Summary      Reject many enrollments
// @Description  Best effort: each id is processed independently.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      request.BatchEnrollmentRequest  true  "Enrollment ids"
// @Success      200   {object}  response.BatchEnrollmentResponse
// @Security     Bearer
// @Router       /admin/enrollments/batch-reject [post]
func (h *AdminEnrollmentHandler) BatchReject(c *gin.Context) {
	h.batchTransition(c, "rejection", h.batch.BatchReject)
}

func (h *AdminEnrollmentHandler) transition(
	c *gin.Context,
	action string,
	updater func(ctx context.Context, enrollmentID string) (entities.Enrollment, error),
) {
	enrollmentID := c.Param("id")
	log.Printf("[admin][handler] %s start enrollment_id=%s", action, enrollmentID)

	updated, err := updater(c.Request.Context(), enrollmentID)
	if err != nil {
		log.Printf("[admin][handler] %s failed enrollment_id=%s err=%v", action, enrollmentID, err)
		appErr := mapEnrollmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEnrollment(updated))
}

func (h *AdminEnrollmentHandler) batchTransition(
	c *gin.Context,
	action string,
	apply func(ctx context.Context, ids []string) entities.BatchResult,
) {
	var payload request.BatchEnrollmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBatchPayload.HTTPStatus, errInvalidBatchPayload.ToHTTPError())
		return
	}

	result := apply(c.Request.Context(), payload.IDs)
	log.Printf("[admin][handler] batch %s done submitted=%d succeeded=%d failed=%d", action, result.Submitted, len(result.Succeeded), len(result.Failed))

	c.JSON(http.StatusOK, response.FromBatchResult(action, result))
}
