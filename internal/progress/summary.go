package progress

import "github.com/2beens/fitsync/internal/fitness"

type WorkoutSummary struct {
	WorkoutID  string `json:"workoutId"`
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
	Completed  bool   `json:"completed"`
}

type CourseSummary struct {
	CourseID         string           `json:"courseId"`
	Name             string           `json:"name"`
	DifficultyLevel  int              `json:"difficultyLevel"`
	Percentage       int              `json:"percentage"`
	CoarsePercentage int              `json:"coarsePercentage"`
	Completed        bool             `json:"completed"`
	Workouts         []WorkoutSummary `json:"workouts"`
}

// Summarize computes every percentage shown for a course in one pass.
// Workouts are reported in the order they are given.
func Summarize(course fitness.Course, workouts []fitness.Workout, cp *fitness.CourseProgress) CourseSummary {
	summary := CourseSummary{
		CourseID:         course.ID,
		Name:             course.Name(),
		DifficultyLevel:  course.DifficultyLevel(),
		Percentage:       CoursePercentage(workouts, cp),
		CoarsePercentage: CoarseCoursePercentage(cp),
		Workouts:         make([]WorkoutSummary, 0, len(workouts)),
	}

	for _, w := range workouts {
		wp := cp.Workout(w.ID)
		pct := WorkoutPercentage(w, wp)
		summary.Workouts = append(summary.Workouts, WorkoutSummary{
			WorkoutID:  w.ID,
			Name:       w.Name,
			Percentage: pct,
			Completed:  pct == 100 || (wp != nil && wp.WorkoutCompleted),
		})
	}

	summary.Completed = summary.Percentage == 100 || (cp != nil && cp.CourseCompleted)

	return summary
}
