package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"course_enrollment/internal/domain/entities"
	"course_enrollment/internal/usecase/interfaces"
)

func TestEnrollmentMemoryRepository_InsertIfAbsent(t *testing.T) {
	repo := NewEnrollmentMemoryRepository()
	ctx := context.Background()

	first := entities.Enrollment{ID: "e-1", UserID: "u-1", CourseID: "c-1", Status: entities.EnrollmentStatusPending}
	if _, err := repo.InsertIfAbsent(ctx, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := repo.InsertIfAbsent(ctx, entities.Enrollment{ID: "e-2", UserID: "u-1", CourseID: "c-1"})
	if !errors.Is(err, interfaces.ErrEnrollmentConflict) {
		t.Fatalf("expected ErrEnrollmentConflict, got %v", err)
	}

	got, _ := repo.GetByUserAndCourse(ctx, "u-1", "c-1")
	if got.ID != "e-1" {
		t.Fatalf("expected e-1, got %+v", got)
	}
	missing, _ := repo.GetByUserAndCourse(ctx, "u-1", "c-2")
	if missing.ID != "" {
		t.Fatalf("expected zero value, got %+v", missing)
	}
}

func TestEnrollmentMemoryRepository_ConcurrentInsert(t *testing.T) {
	repo := NewEnrollmentMemoryRepository()
	ctx := context.Background()

	const workers = 32
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.InsertIfAbsent(ctx, entities.Enrollment{ID: fmt.Sprintf("e-%d", i), UserID: "u-1", CourseID: "c-1"})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	ok, conflicts := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, interfaces.ErrEnrollmentConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 || conflicts != workers-1 {
		t.Fatalf("expected 1 success and %d conflicts, got %d/%d", workers-1, ok, conflicts)
	}
}

func TestEnrollmentMemoryRepository_Update(t *testing.T) {
	repo := NewEnrollmentMemoryRepository()
	ctx := context.Background()

	if _, err := repo.Update(ctx, entities.Enrollment{ID: "nope"}); !errors.Is(err, interfaces.ErrEnrollmentMissing) {
		t.Fatalf("expected ErrEnrollmentMissing, got %v", err)
	}

	_, _ = repo.InsertIfAbsent(ctx, entities.Enrollment{ID: "e-1", UserID: "u-1", CourseID: "c-1", Status: entities.EnrollmentStatusPending})
	updated, err := repo.Update(ctx, entities.Enrollment{ID: "e-1", UserID: "other", CourseID: "other", Status: entities.EnrollmentStatusApproved})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.UserID != "u-1" || updated.CourseID != "c-1" || updated.Status != entities.EnrollmentStatusApproved {
		t.Fatalf("unexpected record: %+v", updated)
	}
}

func TestEnrollmentMemoryRepository_Queries(t *testing.T) {
	repo := NewEnrollmentMemoryRepository()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_, _ = repo.InsertIfAbsent(ctx, entities.Enrollment{ID: "e-2", UserID: "u-1", CourseID: "c-2", Status: entities.EnrollmentStatusApproved, RequestedAt: base.Add(time.Hour)})
	_, _ = repo.InsertIfAbsent(ctx, entities.Enrollment{ID: "e-1", UserID: "u-1", CourseID: "c-1", Status: entities.EnrollmentStatusPending, RequestedAt: base})
	_, _ = repo.InsertIfAbsent(ctx, entities.Enrollment{ID: "e-3", UserID: "u-2", CourseID: "c-1", Status: entities.EnrollmentStatusApproved, RequestedAt: base})

	byUser, _ := repo.FindByUser(ctx, "u-1")
	if len(byUser) != 2 || byUser[0].ID != "e-1" || byUser[1].ID != "e-2" {
		t.Fatalf("unexpected by-user result: %+v", byUser)
	}

	approved, _ := repo.FindByUserAndStatus(ctx, "u-1", entities.EnrollmentStatusApproved)
	if len(approved) != 1 || approved[0].ID != "e-2" {
		t.Fatalf("unexpected by-status result: %+v", approved)
	}

	all, _ := repo.ListAll(ctx)
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
}
