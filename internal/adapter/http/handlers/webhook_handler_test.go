package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	request "course_enrollment/internal/adapter/http/dto/request"
	"course_enrollment/internal/adapter/http/handlers/mocks"
	"course_enrollment/internal/domain/entities"
	"course_enrollment/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWebhookHandler_HandlePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	if err := request.RegisterValidations(); err != nil {
		t.Fatalf("register validations: %v", err)
	}

	t.Run("invalid status rejected at binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewWebhookHandler(mocks.NewMockIWebhookUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/webhook/payment", h.HandlePayment)

		w := serve(r, http.MethodPost, "/v1/webhook/payment", `{"enrollment_id":"e-1","transaction_id":"T1","status":"PAID"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown enrollment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.POST("/v1/webhook/payment", h.HandlePayment)

		uc.EXPECT().Reconcile(gomock.Any(), "999", "T1", "APPROVED").Return(entities.Enrollment{}, usecase.ErrEnrollmentNotFound)

		w := serve(r, http.MethodPost, "/v1/webhook/payment", `{"enrollment_id":"999","transaction_id":"T1","status":"APPROVED"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.POST("/v1/webhook/payment", h.HandlePayment)

		uc.EXPECT().Reconcile(gomock.Any(), "e-1", "T1", "rejected").Return(entities.Enrollment{ID: "e-1", Status: entities.EnrollmentStatusRejected, LastTransactionID: "T1"}, nil)

		w := serve(r, http.MethodPost, "/v1/webhook/payment", `{"enrollment_id":"e-1","transaction_id":"T1","status":"rejected"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "REJECTED" || body["last_transaction_id"] != "T1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
