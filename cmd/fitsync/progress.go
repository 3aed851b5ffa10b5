package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/2beens/fitsync/internal/progress"

	"github.com/spf13/cobra"
)

var enrollCmd = &cobra.Command{
	Use:   "enroll <courseId>",
	Short: "Add a course to your courses",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(cmd.Context(), func(e *engine) error {
			if err := e.courses.Enroll(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "enrolled in %s\n", args[0])
			return nil
		})
	},
}

var unenrollCmd = &cobra.Command{
	Use:   "unenroll <courseId>",
	Short: "Remove a course and its progress from your courses",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(cmd.Context(), func(e *engine) error {
			if err := e.courses.Unenroll(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "left %s\n", args[0])
			return nil
		})
	},
}

var progressCmd = &cobra.Command{
	Use:   "progress [courseId]",
	Short: "Show progress of one course, or of all your courses",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(cmd.Context(), func(e *engine) error {
			if len(args) == 1 {
				summary, err := e.courses.CourseSummary(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printSummary(cmd.OutOrStdout(), summary)
			}

			summaries, err := e.courses.MySummaries(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "COURSE\tNAME\tPROGRESS\tDONE")
			for _, s := range summaries {
				fmt.Fprintf(w, "%s\t%s\t%d%%\t%t\n", s.CourseID, s.Name, s.Percentage, s.Completed)
			}
			return w.Flush()
		})
	},
}

var saveProgressCmd = &cobra.Command{
	Use:   "save-progress <courseId> <workoutId> <count>...",
	Short: "Record how many repetitions of each exercise you did",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		counts := make([]int, 0, len(args)-2)
		for _, a := range args[2:] {
			n, err := strconv.Atoi(a)
			if err != nil {
				return fmt.Errorf("count %q is not a number", a)
			}
			counts = append(counts, n)
		}

		return withEngine(cmd.Context(), func(e *engine) error {
			wp, err := e.courses.SaveProgress(cmd.Context(), args[0], args[1], counts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %v, workout completed: %t\n", wp.ProgressData, wp.WorkoutCompleted)
			return nil
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset <courseId> [workoutId]",
	Short: "Reset progress of a whole course, or of one workout",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(cmd.Context(), func(e *engine) error {
			if len(args) == 2 {
				if err := e.courses.ResetWorkoutProgress(cmd.Context(), args[0], args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "workout %s reset\n", args[1])
				return nil
			}
			if err := e.courses.ResetCourseProgress(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "course %s reset\n", args[0])
			return nil
		})
	},
}

func printSummary(out io.Writer, s progress.CourseSummary) error {
	fmt.Fprintf(out, "%s: %d%% (workouts marked done: %d%%)\n", s.Name, s.Percentage, s.CoarsePercentage)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WORKOUT\tNAME\tPROGRESS\tDONE")
	for _, ws := range s.Workouts {
		fmt.Fprintf(w, "%s\t%s\t%d%%\t%t\n", ws.WorkoutID, ws.Name, ws.Percentage, ws.Completed)
	}
	return w.Flush()
}

func init() {
	rootCmd.AddCommand(enrollCmd, unenrollCmd, progressCmd, saveProgressCmd, resetCmd)
}
