package server

//go:generate mockgen -source=$GOFILE -destination=deps_mocks_test.go -package=server_test

import (
	"context"

	"github.com/2beens/fitsync/internal/fitness"
	"github.com/2beens/fitsync/internal/progress"
	"github.com/2beens/fitsync/internal/session"
)

type catalogService interface {
	GetAllCourses(ctx context.Context) ([]fitness.Course, error)
	GetCourse(ctx context.Context, courseID string) (*fitness.Course, error)
	GetCourseWorkoutsDetailed(ctx context.Context, courseID string) ([]fitness.Workout, error)
}

type courseService interface {
	CurrentUser(ctx context.Context) (*fitness.User, error)
	MyCourses(ctx context.Context) ([]fitness.Course, error)
	MySummaries(ctx context.Context) ([]progress.CourseSummary, error)
	CourseSummary(ctx context.Context, courseID string) (progress.CourseSummary, error)
	CourseProgress(ctx context.Context, courseID string) (*fitness.CourseProgress, error)
	Enroll(ctx context.Context, courseID string) error
	Unenroll(ctx context.Context, courseID string) error
	SaveProgress(ctx context.Context, courseID, workoutID string, counts []int) (*fitness.WorkoutProgress, error)
	ResetWorkoutProgress(ctx context.Context, courseID, workoutID string) error
	ResetCourseProgress(ctx context.Context, courseID string) error
}

type sessionService interface {
	IsAuthenticated() bool
	Identity() (session.Identity, bool)
	TokenInfo() session.TokenInfo
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, email, password, confirm string) error
	Logout() error
}
