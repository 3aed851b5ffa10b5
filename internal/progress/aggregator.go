package progress

import (
	"math"

	"github.com/2beens/fitsync/internal/fitness"
)

// ExercisePercentage returns the completion of a single exercise in [0, 100].
// A non-positive quantity counts as 0%.
func ExercisePercentage(completed, quantity int) int {
	if quantity <= 0 || completed <= 0 {
		return 0
	}
	pct := int(math.Round(float64(completed) / float64(quantity) * 100))
	return min(pct, 100)
}

// WorkoutPercentage averages the exercise percentages of a workout.
// Missing progress entries count as zero, extra ones are ignored.
func WorkoutPercentage(workout fitness.Workout, wp *fitness.WorkoutProgress) int {
	if wp == nil || len(workout.Exercises) == 0 {
		return 0
	}

	sum := 0
	for i, ex := range workout.Exercises {
		sum += ExercisePercentage(countAt(wp.ProgressData, i), ex.Quantity)
	}

	return int(math.Round(float64(sum) / float64(len(workout.Exercises))))
}

// CoarseCoursePercentage is the share of completed workouts among the recorded ones.
// It does not need workout definitions.
func CoarseCoursePercentage(cp *fitness.CourseProgress) int {
	if cp == nil || len(cp.WorkoutsProgress) == 0 {
		return 0
	}

	completed := 0
	for _, wp := range cp.WorkoutsProgress {
		if wp.WorkoutCompleted {
			completed++
		}
	}

	return int(math.Round(100 * float64(completed) / float64(len(cp.WorkoutsProgress))))
}

// DetailedCoursePercentage sums fractional exercise completion over every workout
// that has both a definition and a progress entry.
func DetailedCoursePercentage(workouts []fitness.Workout, cp *fitness.CourseProgress) int {
	if cp == nil {
		return 0
	}

	totalExercises := 0
	completedUnits := 0.0
	for _, w := range workouts {
		wp := cp.Workout(w.ID)
		if wp == nil {
			continue
		}
		totalExercises += len(w.Exercises)
		for i, ex := range w.Exercises {
			completedUnits += exerciseUnit(countAt(wp.ProgressData, i), ex.Quantity)
		}
	}

	if totalExercises == 0 {
		return 0
	}

	pct := int(math.Round(100 * completedUnits / float64(totalExercises)))
	return min(pct, 100)
}

// CoursePercentage is the canonical course completion figure: detailed when
// workout definitions are known, coarse otherwise.
func CoursePercentage(workouts []fitness.Workout, cp *fitness.CourseProgress) int {
	if cp == nil {
		return 0
	}
	if len(workouts) == 0 {
		return CoarseCoursePercentage(cp)
	}
	return DetailedCoursePercentage(workouts, cp)
}

// Normalize returns counts aligned with the workout exercises: padded with zeros
// or truncated, each value clamped to [0, quantity]. The input is not modified.
func Normalize(workout fitness.Workout, counts []int) []int {
	normalized := make([]int, len(workout.Exercises))
	for i, ex := range workout.Exercises {
		normalized[i] = clamp(countAt(counts, i), 0, max(ex.Quantity, 0))
	}
	return normalized
}

// IsWorkoutComplete reports whether every exercise reached its target quantity.
func IsWorkoutComplete(workout fitness.Workout, counts []int) bool {
	if len(workout.Exercises) == 0 {
		return false
	}
	for i, ex := range workout.Exercises {
		if countAt(counts, i) < ex.Quantity {
			return false
		}
	}
	return true
}

func exerciseUnit(completed, quantity int) float64 {
	if quantity <= 0 || completed <= 0 {
		return 0
	}
	return math.Min(float64(completed)/float64(quantity), 1)
}

func countAt(counts []int, i int) int {
	if i < len(counts) {
		return counts[i]
	}
	return 0
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
