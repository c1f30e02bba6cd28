package interfaces

import (
	"context"
	"course_enrollment/internal/domain/entities"
	"errors"
)

//go:generate mockgen -source=enrollment_repository_interface.go -destination=mocks/mock_enrollment_repository.go -package=mock_interfaces

var (
	// ErrEnrollmentConflict is returned by InsertIfAbsent when the (user, course)
	// slot is already taken. The store is the final authority on uniqueness.
	ErrEnrollmentConflict = errors.New("enrollment already exists for user and course")
	// ErrEnrollmentMissing is returned by Update when the id is not stored.
	ErrEnrollmentMissing = errors.New("enrollment does not exist")
)

// IEnrollmentRepository abstracts durable storage of enrollments.
//
// The enrollment-service must be able to:
//   - create a record only when no record exists for the (user, course) pair
//   - replace a whole record by id (never partial field merges)
//   - look records up by id, by pair, by user and by user+status
//
// Lookups return a zero-value Enrollment (empty ID) when nothing matches.

type IEnrollmentRepository interface {
	InsertIfAbsent(ctx context.Context, e entities.Enrollment) (entities.Enrollment, error)
	GetByID(ctx context.Context, id string) (entities.Enrollment, error)
	GetByUserAndCourse(ctx context.Context, userID, courseID string) (entities.Enrollment, error)
	Update(ctx context.Context, e entities.Enrollment) (entities.Enrollment, error)
	FindByUser(ctx context.Context, userID string) ([]entities.Enrollment, error)
	FindByUserAndStatus(ctx context.Context, userID string, status entities.EnrollmentStatus) ([]entities.Enrollment, error)
	ListAll(ctx context.Context) ([]entities.Enrollment, error)
}
