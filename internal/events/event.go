package events

import (
	"time"

	"github.com/google/uuid"
)

// Signal is the broadcast name UI views listen for. The values are part of the
// integration contract and must not change.
type Signal string

const (
	SignalAuthStateChanged   Signal = "authStateChanged"
	SignalCourseStateChanged Signal = "courseStateChanged"
	SignalUserDataUpdated    Signal = "userDataUpdated"
)

var AllSignals = []Signal{
	SignalAuthStateChanged,
	SignalCourseStateChanged,
	SignalUserDataUpdated,
}

type Kind string

const (
	KindAuthChanged   Kind = "AuthChanged"
	KindCourseAdded   Kind = "CourseAdded"
	KindCourseRemoved Kind = "CourseRemoved"
	KindProgressSaved Kind = "ProgressSaved"
	KindProgressReset Kind = "ProgressReset"
)

type Event struct {
	ID            string    `json:"id"`
	Kind          Kind      `json:"kind"`
	CourseID      string    `json:"courseId,omitempty"`
	WorkoutID     string    `json:"workoutId,omitempty"`
	Authenticated bool      `json:"authenticated"`
	At            time.Time `json:"at"`
}

func newEvent(kind Kind) Event {
	return Event{
		ID:   uuid.NewString(),
		Kind: kind,
		At:   time.Now(),
	}
}

func AuthChanged(authenticated bool) Event {
	e := newEvent(KindAuthChanged)
	e.Authenticated = authenticated
	return e
}

func CourseAdded(courseID string) Event {
	e := newEvent(KindCourseAdded)
	e.CourseID = courseID
	e.Authenticated = true
	return e
}

func CourseRemoved(courseID string) Event {
	e := newEvent(KindCourseRemoved)
	e.CourseID = courseID
	e.Authenticated = true
	return e
}

func ProgressSaved(courseID, workoutID string) Event {
	e := newEvent(KindProgressSaved)
	e.CourseID = courseID
	e.WorkoutID = workoutID
	e.Authenticated = true
	return e
}

// ProgressReset with an empty workoutID means the whole course was reset.
func ProgressReset(courseID, workoutID string) Event {
	e := newEvent(KindProgressReset)
	e.CourseID = courseID
	e.WorkoutID = workoutID
	e.Authenticated = true
	return e
}

// Signals returns the broadcast signals an event is announced under.
func (e Event) Signals() []Signal {
	switch e.Kind {
	case KindAuthChanged:
		return []Signal{SignalAuthStateChanged}
	case KindCourseAdded, KindCourseRemoved, KindProgressSaved, KindProgressReset:
		return []Signal{SignalCourseStateChanged, SignalUserDataUpdated}
	default:
		return nil
	}
}

func (e Event) HasSignal(s Signal) bool {
	for _, es := range e.Signals() {
		if es == s {
			return true
		}
	}
	return false
}
