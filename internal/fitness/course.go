package fitness

type DailyDuration struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type Course struct {
	ID                     string        `json:"_id"`
	NameRU                 string        `json:"nameRU"`
	NameEN                 string        `json:"nameEN"`
	Description            string        `json:"description,omitempty"`
	Directions             []string      `json:"directions"`
	Fitting                []string      `json:"fitting"`
	Difficulty             string        `json:"difficulty"`
	DurationInDays         int           `json:"durationInDays"`
	DailyDurationInMinutes DailyDuration `json:"dailyDurationInMinutes"`
	Workouts               []string      `json:"workouts"`
}

// Name prefers the russian name, as the API always fills it in.
func (c Course) Name() string {
	if c.NameRU != "" {
		return c.NameRU
	}
	return c.NameEN
}

func (c Course) DifficultyLevel() int {
	return DifficultyLevel(c.Difficulty)
}

type Exercise struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type Workout struct {
	ID        string     `json:"_id"`
	Name      string     `json:"name"`
	Video     string     `json:"video"`
	Exercises []Exercise `json:"exercises"`
}

type WorkoutProgress struct {
	ID               string `json:"_id,omitempty"`
	WorkoutID        string `json:"workoutId"`
	WorkoutCompleted bool   `json:"workoutCompleted"`
	ProgressData     []int  `json:"progressData"`
}

type CourseProgress struct {
	ID               string            `json:"_id,omitempty"`
	CourseID         string            `json:"courseId"`
	CourseCompleted  bool              `json:"courseCompleted"`
	WorkoutsProgress []WorkoutProgress `json:"workoutsProgress"`
}

// Workout returns the progress entry recorded for the given workout, or nil.
func (cp *CourseProgress) Workout(workoutID string) *WorkoutProgress {
	if cp == nil {
		return nil
	}
	for i := range cp.WorkoutsProgress {
		if cp.WorkoutsProgress[i].WorkoutID == workoutID {
			return &cp.WorkoutsProgress[i]
		}
	}
	return nil
}

type User struct {
	ID              string           `json:"_id"`
	Email           string           `json:"email"`
	SelectedCourses []string         `json:"selectedCourses"`
	CourseProgress  []CourseProgress `json:"courseProgress,omitempty"`
	CreatedAt       string           `json:"createdAt,omitempty"`
	UpdatedAt       string           `json:"updatedAt,omitempty"`
}

func (u *User) IsEnrolled(courseID string) bool {
	if u == nil {
		return false
	}
	for _, id := range u.SelectedCourses {
		if id == courseID {
			return true
		}
	}
	return false
}
