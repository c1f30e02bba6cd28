package handlers

import (
	request "course_enrollment/internal/adapter/http/dto/request"
	response "course_enrollment/internal/adapter/http/dto/response"
	"course_enrollment/internal/usecase"
	"course_enrollment/pkg"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidWebhookPayload = pkg.NewDomainErrorSimple("INVALID_WEBHOOK_PAYLOAD", "Invalid webhook payload", http.StatusBadRequest)
)

// WebhookHandler receives payment provider callbacks. The route is not
// authenticated and the sender is not verified.

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// HandlePayment godoc
// @Summary      Payment provider webhook
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        body  body      request.WebhookPaymentRequest  true  "Settled transaction"
// @Success      200   {object}  response.EnrollmentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /webhook/payment [post]
func (h *WebhookHandler) HandlePayment(c *gin.Context) {
	var payload request.WebhookPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[webhook][handler] invalid payload err=%v", err)
		c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
		return
	}
	log.Printf("[webhook][handler] received enrollment_id=%s transaction_id=%s status=%s", payload.EnrollmentID, payload.TransactionID, payload.Status)

	updated, err := h.usecase.Reconcile(c.Request.Context(), payload.EnrollmentID, payload.TransactionID, payload.Status)
	if err != nil {
		log.Printf("[webhook][handler] reconcile failed enrollment_id=%s err=%v", payload.EnrollmentID, err)
		appErr := mapEnrollmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEnrollment(updated))
}
