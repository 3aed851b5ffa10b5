package coursesync

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/fitsync/internal/events"
	"github.com/2beens/fitsync/internal/fitapi"
	"github.com/2beens/fitsync/internal/fitness"
	"github.com/2beens/fitsync/internal/progress"
	"github.com/2beens/fitsync/internal/session"
	"github.com/2beens/fitsync/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultUserCacheTTL = time.Minute
	summaryConcurrency  = 4
)

type ServiceParams struct {
	Catalog      catalogReader
	API          personalAPI
	Session      sessionState
	Bus          *events.Bus
	UserCacheTTL time.Duration
}

// Service serves the personal side of the engine: enrollment and progress of
// the signed in user, combined with the shared catalog.
type Service struct {
	catalog catalogReader
	api     personalAPI
	session sessionState
	bus     *events.Bus
	userTTL time.Duration
	group   singleflight.Group

	mu            sync.Mutex
	user          *fitness.User
	userFetchedAt time.Time
	// bumped whenever the snapshot is dropped, so a fetch started earlier is not cached
	userGeneration uint64

	unsubscribe func()

	// Now is replaceable in tests.
	Now func() time.Time
}

func NewService(params ServiceParams) *Service {
	s := &Service{
		catalog: params.Catalog,
		api:     params.API,
		session: params.Session,
		bus:     params.Bus,
		userTTL: params.UserCacheTTL,
		Now:     time.Now,
	}
	if s.userTTL <= 0 {
		s.userTTL = DefaultUserCacheTTL
	}

	if s.bus != nil {
		s.unsubscribe = s.bus.Subscribe(func(e events.Event) {
			log.Tracef("coursesync: dropping user snapshot on %s", e)
			s.dropUser()
		}, events.AllSignals...)
	}

	return s
}

// Close stops listening to the bus.
func (s *Service) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

func (s *Service) dropUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.userGeneration++
}

func (s *Service) publish(e events.Event) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
	s.dropUser()
}

// authFailed invalidates the session when err says the API no longer accepts it.
func (s *Service) authFailed(err error) bool {
	if !errors.Is(err, fitapi.ErrUnauthorized) {
		return false
	}
	s.session.Invalidate(err.Error())
	return true
}

// dedup collapses identical concurrent reads. The key carries the user
// generation, so a read that starts after a mutation never joins a flight
// started before it. The flight runs detached from any single caller: a
// cancelled caller stops waiting, the others still get the result.
func dedup[T any](ctx context.Context, s *Service, key string, fetch func(context.Context) (T, error)) (T, error) {
	s.mu.Lock()
	key = fmt.Sprintf("%s#%d", key, s.userGeneration)
	s.mu.Unlock()

	flightCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key, func() (any, error) {
		return fetch(flightCtx)
	})

	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		if res.Shared {
			log.Tracef("coursesync: shared in-flight request %s", key)
		}
		return res.Val.(T), nil
	}
}

// CurrentUser returns the signed in user, or nil when nobody is signed in.
func (s *Service) CurrentUser(ctx context.Context) (user *fitness.User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coursesync.currentUser")
	defer tracing.EndSpanWithErrCheck(span, &err)

	if !s.session.IsAuthenticated() {
		return nil, nil
	}

	s.mu.Lock()
	if s.user != nil && s.Now().Sub(s.userFetchedAt) < s.userTTL {
		user = s.user
		s.mu.Unlock()
		return user, nil
	}
	generation := s.userGeneration
	s.mu.Unlock()

	user, err = dedup(ctx, s, "GET /users/me", s.api.GetCurrentUser)
	if err != nil {
		if s.authFailed(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get current user: %w", err)
	}

	s.mu.Lock()
	if generation == s.userGeneration {
		s.user = user
		s.userFetchedAt = s.Now()
	}
	s.mu.Unlock()

	return user, nil
}

// EnrolledCourseIDs returns the ids of the courses the user is enrolled in.
// Anonymous callers get an empty list.
func (s *Service) EnrolledCourseIDs(ctx context.Context) ([]string, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return []string{}, nil
	}
	return append([]string{}, user.SelectedCourses...), nil
}

func (s *Service) IsEnrolled(ctx context.Context, courseID string) (bool, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return false, err
	}
	return user.IsEnrolled(courseID), nil
}

// MyCourses returns the courses the user is enrolled in, in catalog order.
func (s *Service) MyCourses(ctx context.Context) (courses []fitness.Course, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coursesync.myCourses")
	defer tracing.EndSpanWithErrCheck(span, &err)

	ids, err := s.EnrolledCourseIDs(ctx)
	if err != nil {
		return nil, err
	}
	courses = []fitness.Course{}
	if len(ids) == 0 {
		return courses, nil
	}

	enrolled := make(map[string]bool, len(ids))
	for _, id := range ids {
		enrolled[id] = true
	}

	all, err := s.catalog.GetAllCourses(ctx)
	if err == nil {
		for _, c := range all {
			if enrolled[c.ID] {
				courses = append(courses, c)
			}
		}
		return courses, nil
	}

	log.Warnf("coursesync: catalog unavailable, fetching %d enrolled courses one by one: %s", len(ids), err)
	for _, id := range ids {
		c, err := s.catalog.GetCourse(ctx, id)
		if err != nil {
			log.Warnf("coursesync: skipping course [%s]: %s", id, err)
			continue
		}
		courses = append(courses, *c)
	}
	return courses, nil
}

func emptyProgress(courseID string) *fitness.CourseProgress {
	return &fitness.CourseProgress{
		CourseID:         courseID,
		WorkoutsProgress: []fitness.WorkoutProgress{},
	}
}

// CourseProgress returns the recorded progress of a course. Anonymous callers,
// and users that never touched the course, get an empty progress.
func (s *Service) CourseProgress(ctx context.Context, courseID string) (cp *fitness.CourseProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coursesync.courseProgress")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.String("course.id", courseID))

	return s.progress(ctx, courseID, "")
}

// WorkoutProgress returns the progress of a single workout, nil if nothing was recorded.
func (s *Service) WorkoutProgress(ctx context.Context, courseID, workoutID string) (wp *fitness.WorkoutProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coursesync.workoutProgress")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.String("course.id", courseID), attribute.String("workout.id", workoutID))

	cp, err := s.progress(ctx, courseID, workoutID)
	if err != nil {
		return nil, err
	}
	return cp.Workout(workoutID), nil
}

func (s *Service) progress(ctx context.Context, courseID, workoutID string) (*fitness.CourseProgress, error) {
	if !s.session.IsAuthenticated() {
		return emptyProgress(courseID), nil
	}

	key := fmt.Sprintf("GET /users/me/progress?courseId=%s&workoutId=%s", courseID, workoutID)
	cp, err := dedup(ctx, s, key, func(ctx context.Context) (*fitness.CourseProgress, error) {
		return s.api.GetUserProgress(ctx, courseID, workoutID)
	})
	switch {
	case err == nil:
		// cp may be shared with concurrent callers
		out := *cp
		if out.WorkoutsProgress == nil {
			out.WorkoutsProgress = []fitness.WorkoutProgress{}
		}
		return &out, nil
	case errors.Is(err, fitapi.ErrNotFound):
		return emptyProgress(courseID), nil
	case s.authFailed(err):
		return emptyProgress(courseID), nil
	default:
		return nil, fmt.Errorf("get progress of course %s: %w", courseID, err)
	}
}

// mutate runs a personal write. Writes never go out without a session, and a
// rejected session ends up as ErrNotAuthenticated.
func (s *Service) mutate(ctx context.Context, call func(context.Context) error) error {
	if !s.session.IsAuthenticated() {
		return session.ErrNotAuthenticated
	}
	if err := call(ctx); err != nil {
		if s.authFailed(err) {
			return fmt.Errorf("%w: %w", session.ErrNotAuthenticated, err)
		}
		return err
	}
	return nil
}

func (s *Service) Enroll(ctx context.Context, courseID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coursesync.enroll")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.String("course.id", courseID))

	err = s.mutate(ctx, func(ctx context.Context) error {
		err := s.api.AddCourseToUser(ctx, courseID)
		if errors.Is(err, fitapi.ErrConflict) {
			log.Debugf("coursesync: course [%s] already added", courseID)
			return nil
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("enroll in %s: %w", courseID, err)
	}

	log.Debugf("coursesync: enrolled in course [%s]", courseID)
	s.publish(events.CourseAdded(courseID))
	return nil
}

// Unenroll removes the course from the user. The course progress is reset first,
// a failed reset does not stop the removal.
func (s *Service) Unenroll(ctx context.Context, courseID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coursesync.unenroll")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.String("course.id", courseID))

	err = s.mutate(ctx, func(ctx context.Context) error {
		if err := s.api.ResetCourseProgress(ctx, courseID); err != nil {
			if errors.Is(err, fitapi.ErrUnauthorized) {
				return err
			}
			log.Warnf("coursesync: reset progress before removing course [%s]: %s", courseID, err)
		}
		return s.api.RemoveCourseFromUser(ctx, courseID)
	})
	if err != nil {
		return fmt.Errorf("unenroll from %s: %w", courseID, err)
	}

	log.Debugf("coursesync: removed course [%s]", courseID)
	s.publish(events.CourseRemoved(courseID))
	return nil
}

// SaveProgress stores the per exercise counts of a workout, clamped to the
// exercise quantities, and returns what was stored.
func (s *Service) SaveProgress(ctx context.Context, courseID, workoutID string, counts []int) (wp *fitness.WorkoutProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coursesync.saveProgress")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.String("course.id", courseID), attribute.String("workout.id", workoutID))

	if !s.session.IsAuthenticated() {
		return nil, session.ErrNotAuthenticated
	}

	workout, err := s.catalog.GetWorkout(ctx, workoutID)
	if err != nil {
		return nil, fmt.Errorf("load workout %s: %w", workoutID, err)
	}
	normalized := progress.Normalize(*workout, counts)

	err = s.mutate(ctx, func(ctx context.Context) error {
		return s.api.SaveWorkoutProgress(ctx, courseID, workoutID, normalized)
	})
	if err != nil {
		return nil, fmt.Errorf("save progress of workout %s: %w", workoutID, err)
	}

	s.publish(events.ProgressSaved(courseID, workoutID))

	return &fitness.WorkoutProgress{
		WorkoutID:        workoutID,
		WorkoutCompleted: progress.IsWorkoutComplete(*workout, normalized),
		ProgressData:     normalized,
	}, nil
}

func (s *Service) ResetWorkoutProgress(ctx context.Context, courseID, workoutID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coursesync.resetWorkoutProgress")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.String("course.id", courseID), attribute.String("workout.id", workoutID))

	err = s.mutate(ctx, func(ctx context.Context) error {
		return s.api.ResetWorkoutProgress(ctx, courseID, workoutID)
	})
	if err != nil {
		return fmt.Errorf("reset workout %s: %w", workoutID, err)
	}

	s.publish(events.ProgressReset(courseID, workoutID))
	return nil
}

func (s *Service) ResetCourseProgress(ctx context.Context, courseID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coursesync.resetCourseProgress")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.String("course.id", courseID))

	err = s.mutate(ctx, func(ctx context.Context) error {
		return s.api.ResetCourseProgress(ctx, courseID)
	})
	if err != nil {
		return fmt.Errorf("reset course %s: %w", courseID, err)
	}

	s.publish(events.ProgressReset(courseID, ""))
	return nil
}

// CourseSummary combines a course, its detailed workouts and the user's progress.
// Missing workout details fall back to the coarse percentage, missing progress to 0%.
func (s *Service) CourseSummary(ctx context.Context, courseID string) (summary progress.CourseSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coursesync.courseSummary")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.String("course.id", courseID))

	course, err := s.catalog.GetCourse(ctx, courseID)
	if err != nil {
		return progress.CourseSummary{}, fmt.Errorf("get course %s: %w", courseID, err)
	}
	return s.summarize(ctx, *course), nil
}

func (s *Service) summarize(ctx context.Context, course fitness.Course) progress.CourseSummary {
	workouts, err := s.catalog.GetCourseWorkoutsDetailed(ctx, course.ID)
	if err != nil {
		log.Warnf("coursesync: workouts of course [%s] unavailable: %s", course.ID, err)
		workouts = nil
	}

	cp, err := s.CourseProgress(ctx, course.ID)
	if err != nil {
		log.Warnf("coursesync: progress of course [%s] unavailable: %s", course.ID, err)
		cp = nil
	}

	return progress.Summarize(course, workouts, cp)
}

// MySummaries returns a summary for every enrolled course, in catalog order.
func (s *Service) MySummaries(ctx context.Context) (summaries []progress.CourseSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coursesync.mySummaries")
	defer tracing.EndSpanWithErrCheck(span, &err)

	courses, err := s.MyCourses(ctx)
	if err != nil {
		return nil, err
	}

	summaries = make([]progress.CourseSummary, len(courses))
	var g errgroup.Group
	g.SetLimit(summaryConcurrency)
	for i, c := range courses {
		g.Go(func() error {
			summaries[i] = s.summarize(ctx, c)
			return nil
		})
	}
	_ = g.Wait()

	span.SetAttributes(attribute.Int("courses.count", len(summaries)))
	return summaries, nil
}
