package interfaces

import (
	"context"
	"course_enrollment/internal/domain/entities"
)

//go:generate mockgen -source=directory_interface.go -destination=mocks/mock_directory.go -package=mock_interfaces

// IUserDirectory resolves users owned by the account service.
// A zero-value User (empty ID) means not found.

type IUserDirectory interface {
	FindByID(ctx context.Context, id string) (entities.User, error)
	FindByUsername(ctx context.Context, username string) (entities.User, error)
}

// ICourseCatalog resolves courses owned by the catalog service.
// A zero-value Course (empty ID) means not found.

type ICourseCatalog interface {
	FindByID(ctx context.Context, id string) (entities.Course, error)
}
