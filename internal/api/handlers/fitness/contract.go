package fitness

import (
	"context"

	"github.com/m04kA/SMC-ResortService/internal/service/fitness/models"
)

type FitnessService interface {
	ListCourses(ctx context.Context, onlyActive bool) ([]models.CourseResponse, error)
	GetCourse(ctx context.Context, id int64, includeInactive bool) (*models.CourseResponse, error)
	Register(ctx context.Context, courseID int64, req *models.RegisterRequest) (*models.RegistrationResponse, error)
	CreateMembership(ctx context.Context, req *models.MembershipRequest) (*models.MembershipResponse, error)

	CreateCourse(ctx context.Context, req *models.CourseRequest) (*models.CourseResponse, error)
	UpdateCourse(ctx context.Context, id int64, req *models.CourseRequest) (*models.CourseResponse, error)
	DeleteCourse(ctx context.Context, id int64) error
	ListRegistrations(ctx context.Context, courseID int64) ([]models.RegistrationResponse, error)
	UpdateRegistrationStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error
	ListMemberships(ctx context.Context, status *string) ([]models.MembershipResponse, error)
	UpdateMembershipStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
