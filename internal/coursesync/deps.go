package coursesync

//go:generate mockgen -source=$GOFILE -destination=deps_mocks_test.go -package=coursesync_test

import (
	"context"

	"github.com/2beens/fitsync/internal/fitness"
)

type catalogReader interface {
	GetAllCourses(ctx context.Context) ([]fitness.Course, error)
	GetCourse(ctx context.Context, courseID string) (*fitness.Course, error)
	GetWorkout(ctx context.Context, workoutID string) (*fitness.Workout, error)
	GetCourseWorkoutsDetailed(ctx context.Context, courseID string) ([]fitness.Workout, error)
}

type personalAPI interface {
	GetCurrentUser(ctx context.Context) (*fitness.User, error)
	AddCourseToUser(ctx context.Context, courseID string) error
	RemoveCourseFromUser(ctx context.Context, courseID string) error
	GetUserProgress(ctx context.Context, courseID, workoutID string) (*fitness.CourseProgress, error)
	SaveWorkoutProgress(ctx context.Context, courseID, workoutID string, progressData []int) error
	ResetWorkoutProgress(ctx context.Context, courseID, workoutID string) error
	ResetCourseProgress(ctx context.Context, courseID string) error
}

type sessionState interface {
	IsAuthenticated() bool
	Invalidate(reason string) bool
}
