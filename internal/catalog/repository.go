package catalog

//go:generate mockgen -source=$GOFILE -destination=repository_mocks_test.go -package=catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/fitsync/internal/fitness"
	"github.com/2beens/fitsync/internal/telemetry/metrics"
	"github.com/2beens/fitsync/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultCourseTTL  = 5 * time.Minute
	DefaultWorkoutTTL = 10 * time.Minute
)

type catalogAPI interface {
	GetAllCourses(ctx context.Context) ([]fitness.Course, error)
	GetCourse(ctx context.Context, courseID string) (*fitness.Course, error)
	GetCourseWorkouts(ctx context.Context, courseID string) ([]fitness.Workout, error)
	GetWorkout(ctx context.Context, workoutID string) (*fitness.Workout, error)
}

type RepositoryParams struct {
	API               catalogAPI
	Store             Store
	CourseTTL         time.Duration
	WorkoutTTL        time.Duration
	DetailConcurrency int
	MetricsManager    *metrics.Manager
}

// Repository caches the course catalog. The catalog is the same for every user,
// so the key space is shared and entries expire by age only.
type Repository struct {
	api               catalogAPI
	store             Store
	courseTTL         time.Duration
	workoutTTL        time.Duration
	detailConcurrency int
	metricsManager    *metrics.Manager
	group             singleflight.Group

	// Now is replaceable in tests.
	Now func() time.Time
}

func NewRepository(params RepositoryParams) *Repository {
	r := &Repository{
		api:               params.API,
		store:             params.Store,
		courseTTL:         params.CourseTTL,
		workoutTTL:        params.WorkoutTTL,
		detailConcurrency: params.DetailConcurrency,
		metricsManager:    params.MetricsManager,
		Now:               time.Now,
	}
	if r.courseTTL <= 0 {
		r.courseTTL = DefaultCourseTTL
	}
	if r.workoutTTL <= 0 {
		r.workoutTTL = DefaultWorkoutTTL
	}
	if r.detailConcurrency <= 0 {
		r.detailConcurrency = 4
	}
	return r
}

func (r *Repository) GetAllCourses(ctx context.Context) (courses []fitness.Course, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.getAllCourses")
	defer tracing.EndSpanWithErrCheck(span, &err)

	return cached(ctx, r, "courses", "courses", r.courseTTL, r.api.GetAllCourses)
}

func (r *Repository) GetCourse(ctx context.Context, courseID string) (course *fitness.Course, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.getCourse")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.String("course.id", courseID))

	return cached(ctx, r, "course", "course:"+courseID, r.courseTTL, func(ctx context.Context) (*fitness.Course, error) {
		return r.api.GetCourse(ctx, courseID)
	})
}

func (r *Repository) GetWorkout(ctx context.Context, workoutID string) (workout *fitness.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.getWorkout")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.String("workout.id", workoutID))

	return cached(ctx, r, "workout", "workout:"+workoutID, r.workoutTTL, func(ctx context.Context) (*fitness.Workout, error) {
		return r.api.GetWorkout(ctx, workoutID)
	})
}

func (r *Repository) getCourseWorkouts(ctx context.Context, courseID string) ([]fitness.Workout, error) {
	workouts, err := cached(ctx, r, "course_workouts", "course_workouts:"+courseID, r.courseTTL, func(ctx context.Context) ([]fitness.Workout, error) {
		return r.api.GetCourseWorkouts(ctx, courseID)
	})
	if err == nil {
		return workouts, nil
	}

	// the course itself still lists the workout ids
	course, courseErr := r.GetCourse(ctx, courseID)
	if courseErr != nil {
		return nil, multierr.Combine(err, courseErr)
	}
	log.Warnf("catalog: workout list of course [%s] unavailable, using course workout ids: %s", courseID, err)

	workouts = make([]fitness.Workout, 0, len(course.Workouts))
	for _, id := range course.Workouts {
		workouts = append(workouts, fitness.Workout{ID: id})
	}
	return workouts, nil
}

// GetCourseWorkoutsDetailed returns the workouts of a course, each with its exercises,
// in course order. A workout whose detail cannot be fetched keeps whatever the
// list returned for it (usually no exercises) instead of failing the batch.
func (r *Repository) GetCourseWorkoutsDetailed(ctx context.Context, courseID string) (_ []fitness.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.getCourseWorkoutsDetailed")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.String("course.id", courseID))

	list, err := r.getCourseWorkouts(ctx, courseID)
	if err != nil {
		return nil, err
	}

	detailed := make([]fitness.Workout, len(list))
	var (
		mu        sync.Mutex
		detailErr error
		g         errgroup.Group
	)
	g.SetLimit(r.detailConcurrency)

	for i, w := range list {
		detailed[i] = w
		if detailed[i].Exercises == nil {
			detailed[i].Exercises = []fitness.Exercise{}
		}

		g.Go(func() error {
			full, err := r.GetWorkout(ctx, w.ID)
			if err != nil {
				mu.Lock()
				detailErr = multierr.Append(detailErr, fmt.Errorf("workout %s: %w", w.ID, err))
				mu.Unlock()
				return nil
			}
			detailed[i] = *full
			if detailed[i].Exercises == nil {
				detailed[i].Exercises = []fitness.Exercise{}
			}
			return nil
		})
	}
	_ = g.Wait()

	if detailErr != nil {
		span.SetAttributes(attribute.Int("workouts.degraded", len(multierr.Errors(detailErr))))
		log.Warnf("catalog: course [%s] has degraded workouts: %s", courseID, detailErr)
	}

	return detailed, nil
}

// Invalidate drops the whole catalog.
func (r *Repository) Invalidate(ctx context.Context) error {
	return r.store.Clear(ctx)
}

type fetchResult[T any] struct {
	value T
	entry Entry
}

func cached[T any](
	ctx context.Context,
	r *Repository,
	kind, key string,
	ttl time.Duration,
	fetch func(context.Context) (T, error),
) (T, error) {
	var (
		zero     T
		stale    T
		hasStale bool
	)

	entry, err := r.store.Get(ctx, key)
	switch {
	case err == nil:
		var value T
		if err := json.Unmarshal(entry.Payload, &value); err != nil {
			log.Errorf("catalog: unmarshal cached %s: %s", key, err)
			break
		}
		if r.Now().Sub(entry.FetchedAt) < ttl {
			r.countHit(kind)
			return value, nil
		}
		stale, hasStale = value, true
	case errors.Is(err, ErrNotCached):
	default:
		log.Warnf("catalog: read %s from cache: %s", key, err)
	}
	r.countMiss(kind)

	// the fetch outlives any single caller: others may be waiting on it
	flightCtx := context.WithoutCancel(ctx)
	ch := r.group.DoChan(key, func() (any, error) {
		value, err := fetch(flightCtx)
		if err != nil {
			return nil, err
		}

		payload, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", key, err)
		}
		e := Entry{Payload: payload, FetchedAt: r.Now()}
		if err := r.store.Set(flightCtx, key, e); err != nil {
			log.Errorf("catalog: write %s to cache: %s", key, err)
		}
		return fetchResult[T]{value: value, entry: e}, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res = <-ch:
	}
	if res.Shared {
		log.Tracef("catalog: shared in-flight fetch of %s", key)
	}

	if res.Err != nil {
		if hasStale {
			log.Warnf("catalog: fetch %s failed, serving stale copy: %s", key, res.Err)
			r.countStale(kind)
			return stale, nil
		}
		return zero, res.Err
	}

	return res.Val.(fetchResult[T]).value, nil
}

func (r *Repository) countHit(kind string) {
	if r.metricsManager != nil {
		r.metricsManager.CounterCacheHits.WithLabelValues(kind).Inc()
	}
}

func (r *Repository) countMiss(kind string) {
	if r.metricsManager != nil {
		r.metricsManager.CounterCacheMisses.WithLabelValues(kind).Inc()
	}
}

func (r *Repository) countStale(kind string) {
	if r.metricsManager != nil {
		r.metricsManager.CounterCacheStale.WithLabelValues(kind).Inc()
	}
}
