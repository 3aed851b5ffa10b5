//go:build integration

package integration_testing

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/2beens/fitsync/internal/fitness"

	"github.com/gorilla/mux"
)

const (
	testEmail    = "runner@example.com"
	testPassword = "secret123"
	testToken    = "opaque-test-token"
)

// fakeAPI is an in-memory stand-in for the remote fitness API, holding one user.
type fakeAPI struct {
	mu       sync.Mutex
	courses  []fitness.Course
	workouts map[string]fitness.Workout
	selected []string
	progress map[string]map[string][]int

	courseListRequests atomic.Int64
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		courses: []fitness.Course{
			{ID: "yoga", NameRU: "Йога", Difficulty: "начальный", DurationInDays: 25, Workouts: []string{"w1", "w2"}},
			{ID: "stretch", NameRU: "Стретчинг", Difficulty: "средний", DurationInDays: 25, Workouts: []string{"w3"}},
		},
		workouts: map[string]fitness.Workout{
			"w1": {ID: "w1", Name: "Утренняя практика", Exercises: []fitness.Exercise{{Name: "Наклоны", Quantity: 10}, {Name: "Скручивания", Quantity: 10}}},
			"w2": {ID: "w2", Name: "Красота и здоровье"},
			"w3": {ID: "w3", Name: "Растяжка", Exercises: []fitness.Exercise{{Name: "Выпады", Quantity: 20}}},
		},
		progress: make(map[string]map[string][]int),
	}
}

func (f *fakeAPI) router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/courses", f.handleCourses).Methods("GET")
	r.HandleFunc("/courses/{id}", f.handleCourse).Methods("GET")
	r.HandleFunc("/courses/{id}/workouts", f.handleCourseWorkouts).Methods("GET")
	r.HandleFunc("/workouts/{id}", f.handleWorkout).Methods("GET")
	r.HandleFunc("/auth/login", f.handleLogin).Methods("POST")
	r.Handle("/users/me", f.authorized(f.handleMe)).Methods("GET")
	r.Handle("/users/me/courses", f.authorized(f.handleAddCourse)).Methods("POST")
	r.Handle("/users/me/courses/{id}", f.authorized(f.handleRemoveCourse)).Methods("DELETE")
	r.Handle("/users/me/progress", f.authorized(f.handleProgress)).Methods("GET")
	r.Handle("/courses/{id}/workouts/{wid}", f.authorized(f.handleSaveProgress)).Methods("PATCH")
	r.Handle("/courses/{id}/workouts/{wid}/reset", f.authorized(f.handleResetWorkout)).Methods("PATCH")
	r.Handle("/courses/{id}/reset", f.authorized(f.handleResetCourse)).Methods("PATCH")
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func message(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func (f *fakeAPI) authorized(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			message(w, http.StatusUnauthorized, "Нет авторизации")
			return
		}
		next(w, r)
	})
}

func (f *fakeAPI) course(id string) (fitness.Course, bool) {
	for _, c := range f.courses {
		if c.ID == id {
			return c, true
		}
	}
	return fitness.Course{}, false
}

func (f *fakeAPI) handleCourses(w http.ResponseWriter, r *http.Request) {
	f.courseListRequests.Add(1)
	writeJSON(w, http.StatusOK, f.courses)
}

func (f *fakeAPI) handleCourse(w http.ResponseWriter, r *http.Request) {
	c, ok := f.course(mux.Vars(r)["id"])
	if !ok {
		message(w, http.StatusNotFound, "Курс не найден")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (f *fakeAPI) handleCourseWorkouts(w http.ResponseWriter, r *http.Request) {
	c, ok := f.course(mux.Vars(r)["id"])
	if !ok {
		message(w, http.StatusNotFound, "Курс не найден")
		return
	}
	// list entries come without exercises
	list := make([]fitness.Workout, 0, len(c.Workouts))
	for _, id := range c.Workouts {
		list = append(list, fitness.Workout{ID: id, Name: f.workouts[id].Name})
	}
	writeJSON(w, http.StatusOK, list)
}

func (f *fakeAPI) handleWorkout(w http.ResponseWriter, r *http.Request) {
	wo, ok := f.workouts[mux.Vars(r)["id"]]
	if !ok {
		message(w, http.StatusNotFound, "Тренировка не найдена")
		return
	}
	writeJSON(w, http.StatusOK, wo)
}

func (f *fakeAPI) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	body, _ := io.ReadAll(r.Body)
	if err := json.Unmarshal(body, &creds); err != nil {
		message(w, http.StatusBadRequest, "Некорректный запрос")
		return
	}
	if creds.Email != testEmail || creds.Password != testPassword {
		message(w, http.StatusUnauthorized, "Пароль введен неверно, попробуйте еще раз")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": testToken})
}

func (f *fakeAPI) handleMe(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]fitness.User{
		"user": {ID: "u1", Email: testEmail, SelectedCourses: append([]string{}, f.selected...)},
	})
}

func (f *fakeAPI) handleAddCourse(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CourseID string `json:"courseId"`
	}
	body, _ := io.ReadAll(r.Body)
	if err := json.Unmarshal(body, &req); err != nil {
		message(w, http.StatusBadRequest, "Некорректный запрос")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range f.selected {
		if id == req.CourseID {
			message(w, http.StatusConflict, "Курс уже добавлен")
			return
		}
	}
	f.selected = append(f.selected, req.CourseID)
	message(w, http.StatusCreated, "Курс успешно добавлен!")
}

func (f *fakeAPI) handleRemoveCourse(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.selected[:0]
	for _, s := range f.selected {
		if s != id {
			kept = append(kept, s)
		}
	}
	f.selected = kept
	message(w, http.StatusOK, "Курс успешно удален!")
}

func (f *fakeAPI) handleProgress(w http.ResponseWriter, r *http.Request) {
	courseID := r.URL.Query().Get("courseId")

	f.mu.Lock()
	defer f.mu.Unlock()
	cp := fitness.CourseProgress{CourseID: courseID, WorkoutsProgress: []fitness.WorkoutProgress{}}
	for wid, data := range f.progress[courseID] {
		cp.WorkoutsProgress = append(cp.WorkoutsProgress, fitness.WorkoutProgress{WorkoutID: wid, ProgressData: data})
	}
	writeJSON(w, http.StatusOK, cp)
}

func (f *fakeAPI) handleSaveProgress(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req struct {
		ProgressData []int `json:"progressData"`
	}
	body, _ := io.ReadAll(r.Body)
	if err := json.Unmarshal(body, &req); err != nil {
		message(w, http.StatusBadRequest, "Некорректный запрос")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.progress[vars["id"]] == nil {
		f.progress[vars["id"]] = make(map[string][]int)
	}
	f.progress[vars["id"]][vars["wid"]] = req.ProgressData
	message(w, http.StatusOK, "Прогресс сохранен!")
}

func (f *fakeAPI) handleResetWorkout(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.progress[vars["id"]], vars["wid"])
	message(w, http.StatusOK, "Прогресс тренировки сброшен!")
}

func (f *fakeAPI) handleResetCourse(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.progress, mux.Vars(r)["id"])
	message(w, http.StatusOK, "Прогресс курса сброшен!")
}
