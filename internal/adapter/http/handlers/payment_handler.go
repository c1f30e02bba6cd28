package handlers

import (
	request "course_enrollment/internal/adapter/http/dto/request"
	response "course_enrollment/internal/adapter/http/dto/response"
	"course_enrollment/internal/usecase"
	"course_enrollment/pkg"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
)

// PaymentHandler handles the simulated payment routes.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// Initiate godoc
// @Summary      Generate a payment artifact for the caller's pending enrollment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      request.EnrollRequest  true  "Course being paid"
// @Success      200   {object}  response.PaymentArtifactResponse
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /payment/initiate [post]
func (h *PaymentHandler) Initiate(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var payload request.EnrollRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	courseID := payload.ResolveCourseID()
	log.Printf("[payment][handler] initiate start user_id=%s course_id=%s", userID, courseID)

	artifact, err := h.usecase.Initiate(c.Request.Context(), userID, courseID)
	if err != nil {
		log.Printf("[payment][handler] initiate failed user_id=%s course_id=%s err=%v", userID, courseID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] initiate success enrollment_id=%s transaction_id=%s", artifact.EnrollmentID, artifact.TransactionID)

	c.JSON(http.StatusOK, response.FromPaymentArtifact(artifact))
}

// EnrollAndInitiate godoc
// @Summary      Enroll in a course and generate its payment artifact
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      request.EnrollRequest  true  "Course to enroll in"
// @Success      201   {object}  response.EnrollAndInitiateResponse
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /payment/enroll-and-initiate [post]
func (h *PaymentHandler) EnrollAndInitiate(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var payload request.EnrollRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	courseID := payload.ResolveCourseID()

	enrollment, artifact, err := h.usecase.EnrollAndInitiate(c.Request.Context(), userID, courseID)
	if err != nil {
		log.Printf("[payment][handler] enroll-and-initiate failed user_id=%s course_id=%s err=%v", userID, courseID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEnrollAndInitiate(enrollment, artifact))
}

// Simulate godoc
// @Summary      Mark an enrollment as paid
// @Description  Idempotent: confirming an approved enrollment returns the already-completed message.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      request.SimulatePaymentRequest  true  "Enrollment to confirm"
// @Success      200   {object}  response.MessageResponse
// @Failure      404   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /payment/simulate [post]
func (h *PaymentHandler) Simulate(c *gin.Context) {
	var payload request.SimulatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	enrollmentID := payload.ResolveEnrollmentID()
	log.Printf("[payment][handler] simulate start enrollment_id=%s", enrollmentID)

	msg, err := h.usecase.Confirm(c.Request.Context(), enrollmentID)
	if err != nil {
		log.Printf("[payment][handler] simulate failed enrollment_id=%s err=%v", enrollmentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: msg})
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPaymentProviderNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentProviderInvalidReply):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider returned an invalid reply", err, http.StatusBadGateway)
	default:
		return mapEnrollmentError(err)
	}
}
