package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"course_enrollment/internal/domain/entities"
	"course_enrollment/internal/usecase/interfaces"
	mock_interfaces "course_enrollment/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type enrollmentMocks struct {
	repo    *mock_interfaces.MockIEnrollmentRepository
	users   *mock_interfaces.MockIUserDirectory
	courses *mock_interfaces.MockICourseCatalog
}

func newEnrollmentUseCaseWithMocks(t *testing.T) (*EnrollmentUseCase, enrollmentMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := enrollmentMocks{
		repo:    mock_interfaces.NewMockIEnrollmentRepository(ctrl),
		users:   mock_interfaces.NewMockIUserDirectory(ctrl),
		courses: mock_interfaces.NewMockICourseCatalog(ctrl),
	}
	uc := NewEnrollmentUseCase(m.repo, m.users, m.courses)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	uc.now = func() time.Time { return fixed }
	return uc, m
}

func TestEnrollmentUseCase_Enroll(t *testing.T) {
	t.Run("invalid ids", func(t *testing.T) {
		uc := NewEnrollmentUseCase(nil, nil, nil)
		if _, err := uc.Enroll(context.Background(), " ", "c-1"); !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
		if _, err := uc.Enroll(context.Background(), "u-1", ""); !errors.Is(err, ErrInvalidCourseID) {
			t.Fatalf("expected ErrInvalidCourseID, got %v", err)
		}
	})

	t.Run("already exists in any status", func(t *testing.T) {
		for _, status := range []entities.EnrollmentStatus{entities.EnrollmentStatusPending, entities.EnrollmentStatusApproved, entities.EnrollmentStatusRejected} {
			uc, m := newEnrollmentUseCaseWithMocks(t)
			m.repo.EXPECT().GetByUserAndCourse(gomock.Any(), "u-1", "c-1").Return(entities.Enrollment{ID: "e-1", Status: status}, nil)

			_, err := uc.Enroll(context.Background(), "u-1", "c-1")
			if !errors.Is(err, ErrEnrollmentExists) {
				t.Fatalf("status %s: expected ErrEnrollmentExists, got %v", status, err)
			}
		}
	})

	t.Run("user not found", func(t *testing.T) {
		uc, m := newEnrollmentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByUserAndCourse(gomock.Any(), "u-1", "c-1").Return(entities.Enrollment{}, nil)
		m.users.EXPECT().FindByID(gomock.Any(), "u-1").Return(entities.User{}, nil)

		_, err := uc.Enroll(context.Background(), "u-1", "c-1")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("course not found", func(t *testing.T) {
		uc, m := newEnrollmentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByUserAndCourse(gomock.Any(), "u-1", "c-1").Return(entities.Enrollment{}, nil)
		m.users.EXPECT().FindByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1"}, nil)
		m.courses.EXPECT().FindByID(gomock.Any(), "c-1").Return(entities.Course{}, nil)

		_, err := uc.Enroll(context.Background(), "u-1", "c-1")
		if !errors.Is(err, ErrCourseNotFound) {
			t.Fatalf("expected ErrCourseNotFound, got %v", err)
		}
	})

	t.Run("directory error", func(t *testing.T) {
		uc, m := newEnrollmentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByUserAndCourse(gomock.Any(), "u-1", "c-1").Return(entities.Enrollment{}, nil)
		m.users.EXPECT().FindByID(gomock.Any(), "u-1").Return(entities.User{}, errors.New("db"))

		_, err := uc.Enroll(context.Background(), "u-1", "c-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("store conflict maps to exists", func(t *testing.T) {
		uc, m := newEnrollmentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByUserAndCourse(gomock.Any(), "u-1", "c-1").Return(entities.Enrollment{}, nil)
		m.users.EXPECT().FindByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1"}, nil)
		m.courses.EXPECT().FindByID(gomock.Any(), "c-1").Return(entities.Course{ID: "c-1"}, nil)
		m.repo.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any()).Return(entities.Enrollment{}, interfaces.ErrEnrollmentConflict)

		_, err := uc.Enroll(context.Background(), "u-1", "c-1")
		if !errors.Is(err, ErrEnrollmentExists) {
			t.Fatalf("expected ErrEnrollmentExists, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newEnrollmentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByUserAndCourse(gomock.Any(), "u-1", "c-1").Return(entities.Enrollment{}, nil)
		m.users.EXPECT().FindByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1"}, nil)
		m.courses.EXPECT().FindByID(gomock.Any(), "c-1").Return(entities.Course{ID: "c-1"}, nil)
		m.repo.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.Enrollment) (entities.Enrollment, error) {
			return e, nil
		})

		e, err := uc.Enroll(context.Background(), " u-1 ", " c-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.ID == "" || e.UserID != "u-1" || e.CourseID != "c-1" {
			t.Fatalf("unexpected enrollment: %+v", e)
		}
		if e.Status != entities.EnrollmentStatusPending {
			t.Fatalf("expected PENDING, got %s", e.Status)
		}
		if !e.RequestedAt.Equal(uc.now()) {
			t.Fatalf("unexpected requested_at: %v", e.RequestedAt)
		}
	})
}

func TestEnrollmentUseCase_ApproveReject(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewEnrollmentUseCase(nil, nil, nil)
		if _, err := uc.Approve(context.Background(), " "); !errors.Is(err, ErrInvalidEnrollmentID) {
			t.Fatalf("expected ErrInvalidEnrollmentID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newEnrollmentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Enrollment{}, nil)

		_, err := uc.Reject(context.Background(), "e-1")
		if !errors.Is(err, ErrEnrollmentNotFound) {
			t.Fatalf("expected ErrEnrollmentNotFound, got %v", err)
		}
	})

	t.Run("record vanished before update", func(t *testing.T) {
		uc, m := newEnrollmentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Enrollment{ID: "e-1", Status: entities.EnrollmentStatusPending}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Enrollment{}, interfaces.ErrEnrollmentMissing)

		_, err := uc.Approve(context.Background(), "e-1")
		if !errors.Is(err, ErrEnrollmentNotFound) {
			t.Fatalf("expected ErrEnrollmentNotFound, got %v", err)
		}
	})

	t.Run("approve twice is not an error", func(t *testing.T) {
		uc, m := newEnrollmentUseCaseWithMocks(t)
		stored := entities.Enrollment{ID: "e-1", UserID: "u-1", CourseID: "c-1", Status: entities.EnrollmentStatusPending}
		m.repo.EXPECT().GetByID(gomock.Any(), "e-1").DoAndReturn(func(context.Context, string) (entities.Enrollment, error) {
			return stored, nil
		}).Times(2)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.Enrollment) (entities.Enrollment, error) {
			stored = e
			return e, nil
		}).Times(2)

		for i := 0; i < 2; i++ {
			e, err := uc.Approve(context.Background(), "e-1")
			if err != nil {
				t.Fatalf("call %d: unexpected error: %v", i, err)
			}
			if e.Status != entities.EnrollmentStatusApproved {
				t.Fatalf("call %d: expected APPROVED, got %s", i, e.Status)
			}
		}
		if stored.UserID != "u-1" || stored.CourseID != "c-1" {
			t.Fatalf("update must replace the whole record, got %+v", stored)
		}
	})

	t.Run("reject approved", func(t *testing.T) {
		uc, m := newEnrollmentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Enrollment{ID: "e-1", Status: entities.EnrollmentStatusApproved}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.Enrollment) (entities.Enrollment, error) {
			return e, nil
		})

		e, err := uc.Reject(context.Background(), "e-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Status != entities.EnrollmentStatusRejected {
			t.Fatalf("expected REJECTED, got %s", e.Status)
		}
	})
}

func TestEnrollmentUseCase_UpdateStatus(t *testing.T) {
	t.Run("not storable", func(t *testing.T) {
		uc := NewEnrollmentUseCase(nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "e-1", entities.EnrollmentStatusNotEnrolled, "")
		if !errors.Is(err, ErrInvalidEnrollmentStatus) {
			t.Fatalf("expected ErrInvalidEnrollmentStatus, got %v", err)
		}
	})

	t.Run("keeps transaction reference", func(t *testing.T) {
		uc, m := newEnrollmentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Enrollment{ID: "e-1", Status: entities.EnrollmentStatusPending}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.Enrollment) (entities.Enrollment, error) {
			return e, nil
		})

		e, err := uc.UpdateStatus(context.Background(), "e-1", entities.EnrollmentStatusApproved, " T1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.LastTransactionID != "T1" || !e.UpdatedAt.Equal(uc.now()) {
			t.Fatalf("unexpected enrollment: %+v", e)
		}
	})
}

func TestEnrollmentUseCase_Lookups(t *testing.T) {
	t.Run("status of missing pair", func(t *testing.T) {
		uc, m := newEnrollmentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByUserAndCourse(gomock.Any(), "u-1", "c-1").Return(entities.Enrollment{}, nil)

		status, err := uc.StatusOf(context.Background(), "u-1", "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != entities.EnrollmentStatusNotEnrolled {
			t.Fatalf("expected NOT_ENROLLED, got %s", status)
		}
	})

	t.Run("status of existing pair", func(t *testing.T) {
		uc, m := newEnrollmentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByUserAndCourse(gomock.Any(), "u-1", "c-1").Return(entities.Enrollment{ID: "e-1", Status: entities.EnrollmentStatusRejected}, nil)

		status, err := uc.StatusOf(context.Background(), "u-1", "c-1")
		if err != nil || status != entities.EnrollmentStatusRejected {
			t.Fatalf("expected REJECTED, got %s (%v)", status, err)
		}
	})

	t.Run("is approved", func(t *testing.T) {
		cases := []struct {
			name   string
			stored entities.Enrollment
			want   bool
		}{
			{name: "missing", stored: entities.Enrollment{}, want: false},
			{name: "pending", stored: entities.Enrollment{ID: "e-1", Status: entities.EnrollmentStatusPending}, want: false},
			{name: "approved", stored: entities.Enrollment{ID: "e-1", Status: entities.EnrollmentStatusApproved}, want: true},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc, m := newEnrollmentUseCaseWithMocks(t)
				m.repo.EXPECT().GetByUserAndCourse(gomock.Any(), "u-1", "c-1").Return(tc.stored, nil)

				got, err := uc.IsApproved(context.Background(), "u-1", "c-1")
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tc.want {
					t.Fatalf("expected %v, got %v", tc.want, got)
				}
			})
		}
	})

	t.Run("get by pair not found", func(t *testing.T) {
		uc, m := newEnrollmentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByUserAndCourse(gomock.Any(), "u-1", "c-1").Return(entities.Enrollment{}, nil)

		_, err := uc.GetByUserAndCourse(context.Background(), "u-1", "c-1")
		if !errors.Is(err, ErrEnrollmentNotFound) {
			t.Fatalf("expected ErrEnrollmentNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, m := newEnrollmentUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Enrollment{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "e-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("list approved by user", func(t *testing.T) {
		uc, m := newEnrollmentUseCaseWithMocks(t)
		m.repo.EXPECT().FindByUserAndStatus(gomock.Any(), "u-1", entities.EnrollmentStatusApproved).Return([]entities.Enrollment{{ID: "e-1"}}, nil)

		items, err := uc.ListApprovedByUser(context.Background(), "u-1")
		if err != nil || len(items) != 1 {
			t.Fatalf("unexpected result: %+v (%v)", items, err)
		}
	})

	t.Run("list by user invalid id", func(t *testing.T) {
		uc := NewEnrollmentUseCase(nil, nil, nil)
		if _, err := uc.ListByUser(context.Background(), ""); !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})
}
