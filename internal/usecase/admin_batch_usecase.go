package usecase

import (
	"context"
	"course_enrollment/internal/domain/entities"
	"log"
	"strings"
)

// IAdminBatchUseCase applies admin transitions to many enrollments.
//
// A batch is best effort: one failing id never stops the others, and failures
// are reported per id instead of as an error.

//go:generate mockgen -source=admin_batch_usecase.go -destination=../adapter/http/handlers/mocks/mock_admin_batch_usecase.go -package=mocks

type IAdminBatchUseCase interface {
	BatchApprove(ctx context.Context, ids []string) entities.BatchResult
	BatchReject(ctx context.Context, ids []string) entities.BatchResult
}

type AdminBatchUseCase struct {
	enrollments IEnrollmentUseCase
}

var _ IAdminBatchUseCase = (*AdminBatchUseCase)(nil)

func NewAdminBatchUseCase(enrollments IEnrollmentUseCase) *AdminBatchUseCase {
	return &AdminBatchUseCase{enrollments: enrollments}
}

func (u *AdminBatchUseCase) BatchApprove(ctx context.Context, ids []string) entities.BatchResult {
	return u.apply(ctx, "approve", ids, u.enrollments.Approve)
}

func (u *AdminBatchUseCase) BatchReject(ctx context.Context, ids []string) entities.BatchResult {
	return u.apply(ctx, "reject", ids, u.enrollments.Reject)
}

func (u *AdminBatchUseCase) apply(
	ctx context.Context,
	action string,
	ids []string,
	transition func(ctx context.Context, enrollmentID string) (entities.Enrollment, error),
) entities.BatchResult {
	res := entities.BatchResult{
		Submitted: len(ids),
		Succeeded: make([]string, 0, len(ids)),
		Failed:    map[string]string{},
	}
	log.Printf("[admin][usecase] batch-%s start submitted=%d", action, len(ids))

	for _, raw := range ids {
		id := strings.TrimSpace(raw)
		if id == "" {
			res.Failed[raw] = ErrInvalidEnrollmentID.Error()
			continue
		}
		if _, err := transition(ctx, id); err != nil {
			log.Printf("[admin][usecase] batch-%s item failed enrollment_id=%s err=%v", action, id, err)
			res.Failed[id] = err.Error()
			continue
		}
		res.Succeeded = append(res.Succeeded, id)
	}

	log.Printf("[admin][usecase] batch-%s done submitted=%d succeeded=%d failed=%d", action, res.Submitted, len(res.Succeeded), len(res.Failed))
	return res
}
