package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/2beens/fitsync/internal/session"
	"github.com/2beens/fitsync/internal/telemetry/tracing"
	"github.com/2beens/fitsync/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const maxBodyBytes = 64 << 10

type Handler struct {
	catalog catalogService
	courses courseService
	session sessionService
}

func NewHandler(catalog catalogService, courses courseService, session sessionService) *Handler {
	return &Handler{
		catalog: catalog,
		courses: courses,
		session: session,
	}
}

type tokenView struct {
	Status       string     `json:"status"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
	ExpiringSoon bool       `json:"expiringSoon"`
}

type meResponse struct {
	Authenticated   bool       `json:"authenticated"`
	Email           string     `json:"email,omitempty"`
	Login           string     `json:"login,omitempty"`
	Token           *tokenView `json:"token,omitempty"`
	SelectedCourses []string   `json:"selectedCourses"`
}

type enrollmentResponse struct {
	CourseID string `json:"courseId"`
	Enrolled bool   `json:"enrolled"`
}

type credentialsRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type progressRequest struct {
	ProgressData []int `json:"progressData"`
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		log.Debugf("%s %s: decode body: %s", r.Method, r.URL.Path, err)
		pkg.WriteJSONError(w, "Bad request. Check the entered data.", http.StatusBadRequest)
		return false
	}
	return true
}

func (handler *Handler) handleGetCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := handler.catalog.GetAllCourses(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	pkg.WriteJSONOK(w, courses)
}

func (handler *Handler) handleGetCourse(w http.ResponseWriter, r *http.Request) {
	course, err := handler.catalog.GetCourse(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	pkg.WriteJSONOK(w, course)
}

func (handler *Handler) handleGetCourseWorkouts(w http.ResponseWriter, r *http.Request) {
	workouts, err := handler.catalog.GetCourseWorkoutsDetailed(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	pkg.WriteJSONOK(w, workouts)
}

func (handler *Handler) handleGetCourseSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := handler.courses.CourseSummary(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	pkg.WriteJSONOK(w, summary)
}

func (handler *Handler) handleGetCourseProgress(w http.ResponseWriter, r *http.Request) {
	cp, err := handler.courses.CourseProgress(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	pkg.WriteJSONOK(w, cp)
}

func (handler *Handler) me(r *http.Request) (meResponse, error) {
	resp := meResponse{SelectedCourses: []string{}}

	identity, ok := handler.session.Identity()
	if !ok {
		return resp, nil
	}
	resp.Authenticated = true
	resp.Email = identity.Email
	resp.Login = identity.Login

	info := handler.session.TokenInfo()
	resp.Token = &tokenView{
		Status:       info.Status.String(),
		ExpiringSoon: info.ExpiringSoon,
	}
	if !info.ExpiresAt.IsZero() {
		resp.Token.ExpiresAt = &info.ExpiresAt
	}

	user, err := handler.courses.CurrentUser(r.Context())
	if err != nil {
		return resp, err
	}
	if user == nil {
		// the API rejected the session meanwhile
		return meResponse{SelectedCourses: []string{}}, nil
	}
	if user.SelectedCourses != nil {
		resp.SelectedCourses = user.SelectedCourses
	}
	return resp, nil
}

func (handler *Handler) handleGetMe(w http.ResponseWriter, r *http.Request) {
	resp, err := handler.me(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	pkg.WriteJSONOK(w, resp)
}

func (handler *Handler) handleGetMyCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := handler.courses.MyCourses(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	pkg.WriteJSONOK(w, courses)
}

func (handler *Handler) handleGetMySummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := handler.courses.MySummaries(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	pkg.WriteJSONOK(w, summaries)
}

func (handler *Handler) handleEnroll(w http.ResponseWriter, r *http.Request) {
	courseID := mux.Vars(r)["id"]
	if err := handler.courses.Enroll(r.Context(), courseID); err != nil {
		writeError(w, r, err)
		return
	}
	pkg.WriteJSON(w, enrollmentResponse{CourseID: courseID, Enrolled: true}, http.StatusCreated)
}

func (handler *Handler) handleUnenroll(w http.ResponseWriter, r *http.Request) {
	courseID := mux.Vars(r)["id"]
	if err := handler.courses.Unenroll(r.Context(), courseID); err != nil {
		writeError(w, r, err)
		return
	}
	pkg.WriteJSONOK(w, enrollmentResponse{CourseID: courseID})
}

func (handler *Handler) handleSaveProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.saveProgress")
	defer span.End()

	vars := mux.Vars(r)
	span.SetAttributes(attribute.String("course.id", vars["id"]), attribute.String("workout.id", vars["wid"]))

	var req progressRequest
	if !decodeBody(w, r, &req) {
		return
	}

	wp, err := handler.courses.SaveProgress(ctx, vars["id"], vars["wid"], req.ProgressData)
	if err != nil {
		writeError(w, r, err)
		return
	}
	pkg.WriteJSONOK(w, wp)
}

func (handler *Handler) handleResetWorkout(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := handler.courses.ResetWorkoutProgress(r.Context(), vars["id"], vars["wid"]); err != nil {
		writeError(w, r, err)
		return
	}
	pkg.WriteJSONOK(w, map[string]string{"message": "workout progress reset"})
}

func (handler *Handler) handleResetCourse(w http.ResponseWriter, r *http.Request) {
	if err := handler.courses.ResetCourseProgress(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	pkg.WriteJSONOK(w, map[string]string{"message": "course progress reset"})
}

func (handler *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.login")
	defer span.End()

	var req credentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := handler.session.Login(ctx, req.Email, req.Password); err != nil {
		writeError(w, r, err)
		return
	}
	handler.handleGetMe(w, r)
}

func (handler *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.register")
	defer span.End()

	var req credentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ConfirmPassword == "" {
		req.ConfirmPassword = req.Password
	}

	if err := handler.session.Register(ctx, req.Email, req.Password, req.ConfirmPassword); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := handler.me(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	pkg.WriteJSON(w, resp, http.StatusCreated)
}

func (handler *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := handler.session.Logout(); err != nil {
		// the session is gone from memory either way
		log.Errorf("logout: %s", err)
	}
	pkg.WriteJSONOK(w, meResponse{SelectedCourses: []string{}})
}

var _ sessionService = (*session.Manager)(nil)
