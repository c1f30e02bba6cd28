package usecase

import (
	"context"
	"errors"
	"testing"

	"course_enrollment/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func TestAdminBatchUseCase_BatchApprove(t *testing.T) {
	enrollments, m := newEnrollmentUseCaseWithMocks(t)
	uc := NewAdminBatchUseCase(enrollments)

	m.repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Enrollment{ID: "e-1", Status: entities.EnrollmentStatusPending}, nil)
	m.repo.EXPECT().GetByID(gomock.Any(), "999").Return(entities.Enrollment{}, nil)
	m.repo.EXPECT().GetByID(gomock.Any(), "e-2").Return(entities.Enrollment{}, errors.New("db"))
	m.repo.EXPECT().GetByID(gomock.Any(), "e-3").Return(entities.Enrollment{ID: "e-3", Status: entities.EnrollmentStatusRejected}, nil)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.Enrollment) (entities.Enrollment, error) {
		if e.Status != entities.EnrollmentStatusApproved {
			t.Fatalf("expected APPROVED write, got %s", e.Status)
		}
		return e, nil
	}).Times(2)

	res := uc.BatchApprove(context.Background(), []string{"e-1", "999", "e-2", " ", "e-3"})

	if res.Submitted != 5 {
		t.Fatalf("expected 5 submitted, got %d", res.Submitted)
	}
	if len(res.Succeeded) != 2 || res.Succeeded[0] != "e-1" || res.Succeeded[1] != "e-3" {
		t.Fatalf("unexpected succeeded: %+v", res.Succeeded)
	}
	if len(res.Failed) != 3 {
		t.Fatalf("expected 3 failures, got %+v", res.Failed)
	}
	if res.Failed["999"] != ErrEnrollmentNotFound.Error() {
		t.Fatalf("unexpected failure for 999: %q", res.Failed["999"])
	}
	if res.Failed["e-2"] != "db" {
		t.Fatalf("unexpected failure for e-2: %q", res.Failed["e-2"])
	}
	if res.Failed[" "] != ErrInvalidEnrollmentID.Error() {
		t.Fatalf("unexpected failure for blank id: %q", res.Failed[" "])
	}
}

func TestAdminBatchUseCase_BatchReject(t *testing.T) {
	enrollments, m := newEnrollmentUseCaseWithMocks(t)
	uc := NewAdminBatchUseCase(enrollments)

	m.repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Enrollment{ID: "e-1", Status: entities.EnrollmentStatusApproved}, nil)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.Enrollment) (entities.Enrollment, error) {
		return e, nil
	})

	res := uc.BatchReject(context.Background(), []string{"e-1"})
	if res.Submitted != 1 || len(res.Succeeded) != 1 || len(res.Failed) != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestAdminBatchUseCase_Empty(t *testing.T) {
	uc := NewAdminBatchUseCase(NewEnrollmentUseCase(nil, nil, nil))
	res := uc.BatchApprove(context.Background(), nil)
	if res.Submitted != 0 || len(res.Succeeded) != 0 || len(res.Failed) != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}
