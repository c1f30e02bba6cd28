package usecase

import (
	"context"
	"course_enrollment/internal/domain/entities"
	"course_enrollment/internal/usecase/interfaces"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEnrollmentNotFound      = errors.New("enrollment not found")
	ErrEnrollmentExists        = errors.New("enrollment already exists")
	ErrUserNotFound            = errors.New("user not found")
	ErrCourseNotFound          = errors.New("course not found")
	ErrInvalidUserID           = errors.New("invalid user_id")
	ErrInvalidCourseID         = errors.New("invalid course_id")
	ErrInvalidEnrollmentID     = errors.New("invalid enrollment id")
	ErrInvalidEnrollmentStatus = entities.ErrInvalidEnrollmentStatus
)

// IEnrollmentUseCase owns every legal status transition of an enrollment.
//
// Operations:
//   - "enroll" => Enroll() creates a PENDING record, one per (user, course)
//   - admin approve/reject => Approve() / Reject()
//   - webhook status => UpdateStatus()
//   - content gating => StatusOf() / IsApproved()

//go:generate mockgen -source=enrollment_usecase.go -destination=../adapter/http/handlers/mocks/mock_enrollment_usecase.go -package=mocks

type IEnrollmentUseCase interface {
	Enroll(ctx context.Context, userID, courseID string) (entities.Enrollment, error)
	Approve(ctx context.Context, enrollmentID string) (entities.Enrollment, error)
	Reject(ctx context.Context, enrollmentID string) (entities.Enrollment, error)
	UpdateStatus(ctx context.Context, enrollmentID string, status entities.EnrollmentStatus, transactionID string) (entities.Enrollment, error)
	StatusOf(ctx context.Context, userID, courseID string) (entities.EnrollmentStatus, error)
	IsApproved(ctx context.Context, userID, courseID string) (bool, error)
	GetByID(ctx context.Context, enrollmentID string) (entities.Enrollment, error)
	GetByUserAndCourse(ctx context.Context, userID, courseID string) (entities.Enrollment, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Enrollment, error)
	ListApprovedByUser(ctx context.Context, userID string) ([]entities.Enrollment, error)
	ListAll(ctx context.Context) ([]entities.Enrollment, error)
}

type EnrollmentUseCase struct {
	repo    interfaces.IEnrollmentRepository
	users   interfaces.IUserDirectory
	courses interfaces.ICourseCatalog
	now     func() time.Time
}

var _ IEnrollmentUseCase = (*EnrollmentUseCase)(nil)

func NewEnrollmentUseCase(repo interfaces.IEnrollmentRepository, users interfaces.IUserDirectory, courses interfaces.ICourseCatalog) *EnrollmentUseCase {
	return &EnrollmentUseCase{
		repo:    repo,
		users:   users,
		courses: courses,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (u *EnrollmentUseCase) Enroll(ctx context.Context, userID, courseID string) (entities.Enrollment, error) {
	userID = strings.TrimSpace(userID)
	courseID = strings.TrimSpace(courseID)
	if userID == "" {
		return entities.Enrollment{}, ErrInvalidUserID
	}
	if courseID == "" {
		return entities.Enrollment{}, ErrInvalidCourseID
	}
	log.Printf("[enrollment][usecase] enroll start user_id=%s course_id=%s", userID, courseID)

	// Enforce: 1 enrollment per (user, course), whatever its status.
	if existing, err := u.repo.GetByUserAndCourse(ctx, userID, courseID); err != nil {
		return entities.Enrollment{}, err
	} else if existing.ID != "" {
		log.Printf("[enrollment][usecase] enrollment exists user_id=%s course_id=%s enrollment_id=%s status=%s", userID, courseID, existing.ID, existing.Status)
		return entities.Enrollment{}, ErrEnrollmentExists
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return entities.Enrollment{}, err
	}
	if user.ID == "" {
		return entities.Enrollment{}, ErrUserNotFound
	}
	course, err := u.courses.FindByID(ctx, courseID)
	if err != nil {
		return entities.Enrollment{}, err
	}
	if course.ID == "" {
		return entities.Enrollment{}, ErrCourseNotFound
	}

	now := u.now()
	e := entities.Enrollment{
		ID:          uuid.NewString(),
		UserID:      userID,
		CourseID:    courseID,
		Status:      entities.EnrollmentStatusPending,
		RequestedAt: now,
		UpdatedAt:   now,
	}
	created, err := u.repo.InsertIfAbsent(ctx, e)
	if err != nil {
		if errors.Is(err, interfaces.ErrEnrollmentConflict) {
			log.Printf("[enrollment][usecase] lost enroll race user_id=%s course_id=%s", userID, courseID)
			return entities.Enrollment{}, ErrEnrollmentExists
		}
		log.Printf("[enrollment][usecase] enroll failed user_id=%s course_id=%s err=%v", userID, courseID, err)
		return entities.Enrollment{}, err
	}
	log.Printf("[enrollment][usecase] enroll success user_id=%s course_id=%s enrollment_id=%s", userID, courseID, created.ID)
	return created, nil
}

func (u *EnrollmentUseCase) Approve(ctx context.Context, enrollmentID string) (entities.Enrollment, error) {
	return u.UpdateStatus(ctx, enrollmentID, entities.EnrollmentStatusApproved, "")
}

func (u *EnrollmentUseCase) Reject(ctx context.Context, enrollmentID string) (entities.Enrollment, error) {
	return u.UpdateStatus(ctx, enrollmentID, entities.EnrollmentStatusRejected, "")
}

// UpdateStatus writes status unconditionally. Re-applying the current status
// succeeds. A non-empty transactionID is kept as the audit reference.
func (u *EnrollmentUseCase) UpdateStatus(ctx context.Context, enrollmentID string, status entities.EnrollmentStatus, transactionID string) (entities.Enrollment, error) {
	if !status.Storable() {
		return entities.Enrollment{}, ErrInvalidEnrollmentStatus
	}
	e, err := u.GetByID(ctx, enrollmentID)
	if err != nil {
		return entities.Enrollment{}, err
	}

	prev := e.Status
	e.Status = status
	e.UpdatedAt = u.now()
	if tx := strings.TrimSpace(transactionID); tx != "" {
		e.LastTransactionID = tx
	}

	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		if errors.Is(err, interfaces.ErrEnrollmentMissing) {
			return entities.Enrollment{}, ErrEnrollmentNotFound
		}
		log.Printf("[enrollment][usecase] status update failed enrollment_id=%s status=%s err=%v", e.ID, status, err)
		return entities.Enrollment{}, err
	}
	log.Printf("[enrollment][usecase] status updated enrollment_id=%s from=%s to=%s", e.ID, prev, status)
	return updated, nil
}

func (u *EnrollmentUseCase) StatusOf(ctx context.Context, userID, courseID string) (entities.EnrollmentStatus, error) {
	e, err := u.lookupPair(ctx, userID, courseID)
	if err != nil {
		return "", err
	}
	if e.ID == "" {
		return entities.EnrollmentStatusNotEnrolled, nil
	}
	return e.Status, nil
}

func (u *EnrollmentUseCase) IsApproved(ctx context.Context, userID, courseID string) (bool, error) {
	e, err := u.lookupPair(ctx, userID, courseID)
	if err != nil {
		return false, err
	}
	return e.ID != "" && e.IsApproved(), nil
}

func (u *EnrollmentUseCase) GetByID(ctx context.Context, enrollmentID string) (entities.Enrollment, error) {
	enrollmentID = strings.TrimSpace(enrollmentID)
	if enrollmentID == "" {
		return entities.Enrollment{}, ErrInvalidEnrollmentID
	}

	e, err := u.repo.GetByID(ctx, enrollmentID)
	if err != nil {
		return entities.Enrollment{}, err
	}
	if e.ID == "" {
		return entities.Enrollment{}, ErrEnrollmentNotFound
	}
	return e, nil
}

func (u *EnrollmentUseCase) GetByUserAndCourse(ctx context.Context, userID, courseID string) (entities.Enrollment, error) {
	e, err := u.lookupPair(ctx, userID, courseID)
	if err != nil {
		return entities.Enrollment{}, err
	}
	if e.ID == "" {
		return entities.Enrollment{}, ErrEnrollmentNotFound
	}
	return e, nil
}

func (u *EnrollmentUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Enrollment, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.FindByUser(ctx, userID)
}

func (u *EnrollmentUseCase) ListApprovedByUser(ctx context.Context, userID string) ([]entities.Enrollment, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.FindByUserAndStatus(ctx, userID, entities.EnrollmentStatusApproved)
}

func (u *EnrollmentUseCase) ListAll(ctx context.Context) ([]entities.Enrollment, error) {
	return u.repo.ListAll(ctx)
}

// lookupPair returns a zero-value Enrollment when the pair has no record.
func (u *EnrollmentUseCase) lookupPair(ctx context.Context, userID, courseID string) (entities.Enrollment, error) {
	userID = strings.TrimSpace(userID)
	courseID = strings.TrimSpace(courseID)
	if userID == "" {
		return entities.Enrollment{}, ErrInvalidUserID
	}
	if courseID == "" {
		return entities.Enrollment{}, ErrInvalidCourseID
	}
	return u.repo.GetByUserAndCourse(ctx, userID, courseID)
}
