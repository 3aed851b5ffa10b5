package fitapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/2beens/fitsync/internal/fitness"
)

type messageResponse struct {
	Message string `json:"message"`
}

func (c *Client) GetAllCourses(ctx context.Context) ([]fitness.Course, error) {
	var courses []fitness.Course
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/courses",
		endpoint: "GET /courses",
	}, &courses)
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *Client) GetCourse(ctx context.Context, courseID string) (*fitness.Course, error) {
	course := &fitness.Course{}
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/courses/" + url.PathEscape(courseID),
		endpoint: "GET /courses/{id}",
	}, course)
	if err != nil {
		return nil, err
	}
	return course, nil
}

// GetCourseWorkouts returns the workout list of a course. Depending on the API
// version the entries may come without exercises.
func (c *Client) GetCourseWorkouts(ctx context.Context, courseID string) ([]fitness.Workout, error) {
	var workouts []fitness.Workout
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/courses/" + url.PathEscape(courseID) + "/workouts",
		endpoint: "GET /courses/{id}/workouts",
		auth:     c.token() != "",
	}, &workouts)
	if err != nil {
		return nil, err
	}
	return workouts, nil
}

func (c *Client) GetWorkout(ctx context.Context, workoutID string) (*fitness.Workout, error) {
	workout := &fitness.Workout{}
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/workouts/" + url.PathEscape(workoutID),
		endpoint: "GET /workouts/{id}",
		auth:     c.token() != "",
	}, workout)
	if err != nil {
		return nil, err
	}
	return workout, nil
}

func (c *Client) GetCurrentUser(ctx context.Context) (*fitness.User, error) {
	var raw json.RawMessage
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/users/me",
		endpoint: "GET /users/me",
		auth:     true,
	}, &raw)
	if err != nil {
		return nil, err
	}

	// the user comes wrapped in {"user": {...}}, older deployments send it bare
	var wrapped struct {
		User *fitness.User `json:"user"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.User != nil {
		return wrapped.User, nil
	}

	user := &fitness.User{}
	if err := json.Unmarshal(raw, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Client) AddCourseToUser(ctx context.Context, courseID string) error {
	return c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/users/me/courses",
		endpoint: "POST /users/me/courses",
		body:     map[string]string{"courseId": courseID},
		auth:     true,
	}, &messageResponse{})
}

func (c *Client) RemoveCourseFromUser(ctx context.Context, courseID string) error {
	return c.do(ctx, request{
		method:   http.MethodDelete,
		path:     "/users/me/courses/" + url.PathEscape(courseID),
		endpoint: "DELETE /users/me/courses/{id}",
		auth:     true,
	}, &messageResponse{})
}

// GetUserProgress returns the progress of a course. When workoutID is set the
// API narrows the response down to that workout.
func (c *Client) GetUserProgress(ctx context.Context, courseID, workoutID string) (*fitness.CourseProgress, error) {
	query := url.Values{}
	query.Set("courseId", courseID)
	if workoutID != "" {
		query.Set("workoutId", workoutID)
	}

	progress := &fitness.CourseProgress{}
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/users/me/progress",
		endpoint: "GET /users/me/progress",
		query:    query,
		auth:     true,
	}, progress)
	if err != nil {
		return nil, err
	}
	if progress.CourseID == "" {
		progress.CourseID = courseID
	}
	return progress, nil
}

func (c *Client) SaveWorkoutProgress(ctx context.Context, courseID, workoutID string, progressData []int) error {
	if progressData == nil {
		progressData = []int{}
	}
	return c.do(ctx, request{
		method:   http.MethodPatch,
		path:     "/courses/" + url.PathEscape(courseID) + "/workouts/" + url.PathEscape(workoutID),
		endpoint: "PATCH /courses/{id}/workouts/{wid}",
		body:     map[string][]int{"progressData": progressData},
		auth:     true,
	}, &messageResponse{})
}

func (c *Client) ResetWorkoutProgress(ctx context.Context, courseID, workoutID string) error {
	return c.do(ctx, request{
		method:   http.MethodPatch,
		path:     "/courses/" + url.PathEscape(courseID) + "/workouts/" + url.PathEscape(workoutID) + "/reset",
		endpoint: "PATCH /courses/{id}/workouts/{wid}/reset",
		auth:     true,
	}, &messageResponse{})
}

func (c *Client) ResetCourseProgress(ctx context.Context, courseID string) error {
	return c.do(ctx, request{
		method:   http.MethodPatch,
		path:     "/courses/" + url.PathEscape(courseID) + "/reset",
		endpoint: "PATCH /courses/{id}/reset",
		auth:     true,
	}, &messageResponse{})
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/auth/login",
		endpoint: "POST /auth/login",
		body:     map[string]string{"email": email, "password": password},
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", &APIError{
			StatusCode: http.StatusOK,
			Method:     http.MethodPost,
			Path:       "/auth/login",
			Message:    "no token in login response",
		}
	}
	return resp.Token, nil
}

func (c *Client) Register(ctx context.Context, email, password string) error {
	return c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/auth/register",
		endpoint: "POST /auth/register",
		body:     map[string]string{"email": email, "password": password},
	}, &messageResponse{})
}
