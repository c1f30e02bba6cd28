package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"course_enrollment/internal/adapter/http/handlers/mocks"
	"course_enrollment/internal/domain/entities"
	"course_enrollment/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_Initiate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payment/initiate", asUser("1"), h.Initiate)

		uc.EXPECT().Initiate(gomock.Any(), "1", "10").Return(entities.PaymentArtifact{}, usecase.ErrAlreadyPaid)

		if w := serve(r, http.MethodPost, "/v1/payment/initiate", `{"course_id":"10"}`); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("not enrolled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payment/initiate", asUser("1"), h.Initiate)

		uc.EXPECT().Initiate(gomock.Any(), "1", "10").Return(entities.PaymentArtifact{}, usecase.ErrEnrollmentNotFound)

		if w := serve(r, http.MethodPost, "/v1/payment/initiate", `{"course_id":"10"}`); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("provider missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payment/initiate", asUser("1"), h.Initiate)

		uc.EXPECT().Initiate(gomock.Any(), "1", "10").Return(entities.PaymentArtifact{}, usecase.ErrPaymentProviderNotConfigured)

		if w := serve(r, http.MethodPost, "/v1/payment/initiate", `{"course_id":"10"}`); w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payment/initiate", asUser("1"), h.Initiate)

		uc.EXPECT().Initiate(gomock.Any(), "1", "10").Return(entities.PaymentArtifact{EnrollmentID: "e-1", TransactionID: "TXN-e-1-1", ArtifactURL: "https://qr", Message: "scan"}, nil)

		w := serve(r, http.MethodPost, "/v1/payment/initiate", `{"course_id":"10"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["transaction_id"] != "TXN-e-1-1" || body["artifact_url"] != "https://qr" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_EnrollAndInitiate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc)

	r := gin.New()
	r.POST("/v1/payment/enroll-and-initiate", asUser("1"), h.EnrollAndInitiate)

	uc.EXPECT().EnrollAndInitiate(gomock.Any(), "1", "10").Return(
		entities.Enrollment{ID: "e-1", Status: entities.EnrollmentStatusPending},
		entities.PaymentArtifact{EnrollmentID: "e-1", TransactionID: "T1", ArtifactURL: "u"},
		nil,
	)
	uc.EXPECT().EnrollAndInitiate(gomock.Any(), "1", "11").Return(entities.Enrollment{}, entities.PaymentArtifact{}, usecase.ErrEnrollmentExists)

	w := serve(r, http.MethodPost, "/v1/payment/enroll-and-initiate", `{"course_id":"10"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["enrollment_id"] != "e-1" || body["transaction_id"] != "T1" || body["status"] != "PENDING" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	if w := serve(r, http.MethodPost, "/v1/payment/enroll-and-initiate", `{"course_id":"11"}`); w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestPaymentHandler_Simulate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewPaymentHandler(mocks.NewMockIPaymentUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/payment/simulate", h.Simulate)

		if w := serve(r, http.MethodPost, "/v1/payment/simulate", "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown enrollment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payment/simulate", h.Simulate)

		uc.EXPECT().Confirm(gomock.Any(), "999").Return("", usecase.ErrEnrollmentNotFound)

		if w := serve(r, http.MethodPost, "/v1/payment/simulate", `{"enrollment_id":"999"}`); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payment/simulate", h.Simulate)

		uc.EXPECT().Confirm(gomock.Any(), "e-1").Return("Payment already completed for enrollment ID: e-1", nil)

		w := serve(r, http.MethodPost, "/v1/payment/simulate", `{"enrollment_id":" e-1 "}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "Payment already completed for enrollment ID: e-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
