package handlers

import (
	request "course_enrollment/internal/adapter/http/dto/request"
	response "course_enrollment/internal/adapter/http/dto/response"
	"course_enrollment/internal/adapter/http/middleware"
	"course_enrollment/internal/usecase"
	"course_enrollment/pkg"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEnrollmentPayload = pkg.NewDomainErrorSimple("INVALID_ENROLLMENT_INPUT", "Invalid enrollment payload", http.StatusBadRequest)
	errUnauthenticated          = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid bearer token", http.StatusUnauthorized)
)

// EnrollmentHandler serves the user-facing enrollment routes. The caller is
// always the user resolved by the auth middleware.

type EnrollmentHandler struct {
	usecase usecase.IEnrollmentUseCase
}

func NewEnrollmentHandler(uc usecase.IEnrollmentUseCase) *EnrollmentHandler {
	return &EnrollmentHandler{usecase: uc}
}

// Enroll godoc
// @Summary      Request enrollment in a course
// @Tags         enrollments
// @Accept       json
// @Produce      json
// @Param        body  body      request.EnrollRequest  true  "Course to enroll in"
// @Success      201   {object}  response.EnrollResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /enroll [post]
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var payload request.EnrollRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEnrollmentPayload.HTTPStatus, errInvalidEnrollmentPayload.ToHTTPError())
		return
	}
	courseID := payload.ResolveCourseID()
	log.Printf("[enrollment][handler] enroll start user_id=%s course_id=%s", userID, courseID)

	enrollment, err := h.usecase.Enroll(c.Request.Context(), userID, courseID)
	if err != nil {
		log.Printf("[enrollment][handler] enroll failed user_id=%s course_id=%s err=%v", userID, courseID, err)
		appErr := mapEnrollmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[enrollment][handler] enroll success enrollment_id=%s", enrollment.ID)

	c.JSON(http.StatusCreated, response.FromEnrollCreated(enrollment))
}

// GetStatus godoc
// @Summary      Enrollment status of the caller for a course
// @Tags         enrollments
// @Produce      json
// @Param        course_id  query     string  true  "Course id"
// @Success      200        {object}  response.EnrollmentStatusResponse
// @Failure      400        {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /enrollment-status [get]
func (h *EnrollmentHandler) GetStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	courseID := strings.TrimSpace(c.Query("course_id"))

	status, err := h.usecase.StatusOf(c.Request.Context(), userID, courseID)
	if err != nil {
		log.Printf("[enrollment][handler] status failed user_id=%s course_id=%s err=%v", userID, courseID, err)
		appErr := mapEnrollmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.EnrollmentStatusResponse{CourseID: courseID, Status: string(status)})
}

// ListMine godoc
// @Summary      Enrollments of the caller
// @Tags         enrollments
// @Produce      json
// @Success      200  {array}  response.EnrollmentResponse
// @Security     Bearer
// @Router       /enrollments/me [get]
func (h *EnrollmentHandler) ListMine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	list, err := h.usecase.ListByUser(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[enrollment][handler] list failed user_id=%s err=%v", userID, err)
		appErr := mapEnrollmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEnrollments(list))
}

// ListMyApproved godoc
// @Summary      Approved enrollments of the caller
// @Tags         enrollments
// @Produce      json
// @Success      200  {array}  response.EnrollmentResponse
// @Security     Bearer
// @Router       /enrollments/me/approved [get]
func (h *EnrollmentHandler) ListMyApproved(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	list, err := h.usecase.ListApprovedByUser(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[enrollment][handler] list-approved failed user_id=%s err=%v", userID, err)
		appErr := mapEnrollmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEnrollments(list))
}

func requireUserID(c *gin.Context) (string, bool) {
	userID := middleware.CurrentUserID(c)
	if userID == "" {
		c.JSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
		return "", false
	}
	return userID, true
}

func mapEnrollmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidCourseID), errors.Is(err, usecase.ErrInvalidEnrollmentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEnrollmentStatus):
		return pkg.NewDomainErrorSimple("INVALID_ENROLLMENT_STATUS", "Invalid enrollment status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCourseNotFound):
		return pkg.NewDomainErrorSimple("COURSE_NOT_FOUND", "Course not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEnrollmentNotFound):
		return pkg.NewDomainErrorSimple("ENROLLMENT_NOT_FOUND", "Enrollment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEnrollmentExists):
		return pkg.NewDomainErrorSimple("ENROLLMENT_EXISTS", "Enrollment already exists for this course", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyPaid):
		return pkg.NewDomainErrorSimple("ALREADY_PAID", "Payment already completed for this enrollment", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
