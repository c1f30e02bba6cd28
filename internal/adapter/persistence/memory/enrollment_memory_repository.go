package memory

import (
	"context"
	"sort"
	"sync"

	"course_enrollment/internal/domain/entities"
	"course_enrollment/internal/usecase/interfaces"
)

// EnrollmentMemoryRepository keeps enrollments in process memory.
//
// It is used by tests and by local runs with ENROLLMENT_STORE=memory. One
// mutex serializes every write, so the (user, course) check-and-insert is
// atomic and updates replace whole records.
type EnrollmentMemoryRepository struct {
	mu     sync.Mutex
	byID   map[string]entities.Enrollment
	byPair map[string]string
}

var _ interfaces.IEnrollmentRepository = (*EnrollmentMemoryRepository)(nil)

func NewEnrollmentMemoryRepository() *EnrollmentMemoryRepository {
	return &EnrollmentMemoryRepository{
		byID:   make(map[string]entities.Enrollment),
		byPair: make(map[string]string),
	}
}

func pairKey(userID, courseID string) string {
	return userID + "#" + courseID
}

func (r *EnrollmentMemoryRepository) InsertIfAbsent(_ context.Context, e entities.Enrollment) (entities.Enrollment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey(e.UserID, e.CourseID)
	if _, taken := r.byPair[key]; taken {
		return entities.Enrollment{}, interfaces.ErrEnrollmentConflict
	}
	if _, taken := r.byID[e.ID]; taken {
		return entities.Enrollment{}, interfaces.ErrEnrollmentConflict
	}
	r.byID[e.ID] = e
	r.byPair[key] = e.ID
	return e, nil
}

func (r *EnrollmentMemoryRepository) GetByID(_ context.Context, id string) (entities.Enrollment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.byID[id], nil
}

func (r *EnrollmentMemoryRepository) GetByUserAndCourse(_ context.Context, userID, courseID string) (entities.Enrollment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byPair[pairKey(userID, courseID)]
	if !ok {
		return entities.Enrollment{}, nil
	}
	return r.byID[id], nil
}

func (r *EnrollmentMemoryRepository) Update(_ context.Context, e entities.Enrollment) (entities.Enrollment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[e.ID]
	if !ok {
		return entities.Enrollment{}, interfaces.ErrEnrollmentMissing
	}
	// The pair is immutable once created.
	e.UserID = current.UserID
	e.CourseID = current.CourseID
	r.byID[e.ID] = e
	return e, nil
}

func (r *EnrollmentMemoryRepository) FindByUser(_ context.Context, userID string) ([]entities.Enrollment, error) {
	return r.filter(func(e entities.Enrollment) bool { return e.UserID == userID }), nil
}

func (r *EnrollmentMemoryRepository) FindByUserAndStatus(_ context.Context, userID string, status entities.EnrollmentStatus) ([]entities.Enrollment, error) {
	return r.filter(func(e entities.Enrollment) bool { return e.UserID == userID && e.Status == status }), nil
}

func (r *EnrollmentMemoryRepository) ListAll(_ context.Context) ([]entities.Enrollment, error) {
	return r.filter(func(entities.Enrollment) bool { return true }), nil
}

// filter returns matches ordered by request time, oldest first.
func (r *EnrollmentMemoryRepository) filter(keep func(entities.Enrollment) bool) []entities.Enrollment {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]entities.Enrollment, 0, len(r.byID))
	for _, e := range r.byID {
		if keep(e) {
			items = append(items, e)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].RequestedAt.Equal(items[j].RequestedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].RequestedAt.Before(items[j].RequestedAt)
	})
	return items
}
