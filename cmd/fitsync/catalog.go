package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/2beens/fitsync/internal/fitness"

	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List all courses of the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(cmd.Context(), func(e *engine) error {
			courses, err := e.catalog.GetAllCourses(cmd.Context())
			if err != nil {
				return err
			}
			printCourses(cmd.OutOrStdout(), courses)
			return nil
		})
	},
}

var courseCmd = &cobra.Command{
	Use:   "course <courseId>",
	Short: "Show a course and its workouts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(cmd.Context(), func(e *engine) error {
			course, err := e.catalog.GetCourse(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			workouts, err := e.catalog.GetCourseWorkoutsDetailed(cmd.Context(), course.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", course.Name(), course.ID)
			if course.Description != "" {
				fmt.Fprintln(out, course.Description)
			}
			fmt.Fprintf(out, "difficulty: %d/5, %d days, %d-%d min a day\n",
				course.DifficultyLevel(), course.DurationInDays,
				course.DailyDurationInMinutes.From, course.DailyDurationInMinutes.To)
			if len(course.Directions) > 0 {
				fmt.Fprintf(out, "directions: %s\n", strings.Join(course.Directions, ", "))
			}
			fmt.Fprintln(out)

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "WORKOUT\tNAME\tEXERCISES")
			for _, wo := range workouts {
				fmt.Fprintf(w, "%s\t%s\t%d\n", wo.ID, wo.Name, len(wo.Exercises))
			}
			return w.Flush()
		})
	},
}

var myCoursesCmd = &cobra.Command{
	Use:   "my-courses",
	Short: "List the courses you are enrolled in",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(cmd.Context(), func(e *engine) error {
			courses, err := e.courses.MyCourses(cmd.Context())
			if err != nil {
				return err
			}
			if len(courses) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no courses yet")
				return nil
			}
			printCourses(cmd.OutOrStdout(), courses)
			return nil
		})
	},
}

func printCourses(out io.Writer, courses []fitness.Course) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDIFFICULTY\tDAYS")
	for _, c := range courses {
		fmt.Fprintf(w, "%s\t%s\t%d/5\t%d\n", c.ID, c.Name(), c.DifficultyLevel(), c.DurationInDays)
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(coursesCmd, courseCmd, myCoursesCmd)
}
