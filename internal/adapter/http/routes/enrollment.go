package routes

import (
	"course_enrollment/internal/adapter/http/handlers"
	"course_enrollment/internal/adapter/http/middleware"
	"course_enrollment/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments         = "/payment"
	PathEnrollments      = "/enrollments"
	PathAdminEnrollments = "/admin/enrollments"
)

type enrollmentHandlers struct {
	enrollment *handlers.EnrollmentHandler
	payment    *handlers.PaymentHandler
	webhook    *handlers.WebhookHandler
	admin      *handlers.AdminEnrollmentHandler
}

func addEnrollmentRoutes(rg *gin.RouterGroup, h enrollmentHandlers, auth gin.HandlerFunc) {
	// Called by the payment provider; no bearer token.
	rg.POST("/webhook/payment", h.webhook.HandlePayment)

	authed := rg.Group("", auth)
	{
		authed.POST("/enroll", h.enrollment.Enroll)
		authed.GET("/enrollment-status", h.enrollment.GetStatus)
		authed.GET(PathEnrollments+"/me", h.enrollment.ListMine)
		authed.GET(PathEnrollments+"/me/approved", h.enrollment.ListMyApproved)
	}

	payments := authed.Group(PathPayments)
	{
		payments.POST("/initiate", h.payment.Initiate)
		payments.POST("/enroll-and-initiate", h.payment.EnrollAndInitiate)
		payments.POST("/simulate", h.payment.Simulate)
	}

	admin := authed.Group(PathAdminEnrollments, middleware.RequireRole(entities.UserRoleAdmin))
	{
		admin.GET("", h.admin.ListAll)
		admin.PUT("/:id/approve", h.admin.Approve)
		admin.PUT("/:id/reject", h.admin.Reject)
		admin.POST("/batch-approve", h.admin.BatchApprove)
		admin.POST("/batch-reject", h.admin.BatchReject)
	}
}
