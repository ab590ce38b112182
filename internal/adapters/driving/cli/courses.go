package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	courseName        string
	courseDescription string
	courseKeywords    string
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Manage the course catalog",
	Long:  `List catalog courses or add new ones.`,
	RunE:  runCoursesList,
}

var coursesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all courses",
	RunE:  runCoursesList,
}

var coursesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a course to the catalog",
	Long: `Adds a course with a name, description and optional comma-separated
keyword tags. Keywords sharpen matching; the description is searched
as well.`,
	RunE: runCoursesAdd,
}

func init() {
	coursesAddCmd.Flags().StringVarP(&courseName, "name", "n", "", "course name (required)")
	coursesAddCmd.Flags().StringVarP(&courseDescription, "description", "d", "", "course description (required)")
	coursesAddCmd.Flags().StringVarP(&courseKeywords, "keywords", "k", "", "comma-separated keyword tags")

	coursesCmd.AddCommand(coursesListCmd)
	coursesCmd.AddCommand(coursesAddCmd)
	rootCmd.AddCommand(coursesCmd)
}

func runCoursesList(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	courses, err := catalogService.ListCourses(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list courses: %w", err)
	}

	if len(courses) == 0 {
		cmd.Println("No courses in the catalog. Run 'courserec init' to install the sample catalog.")
		return nil
	}

	cmd.Println(headingStyle.Render("Courses"))
	cmd.Println()
	for _, c := range courses {
		cmd.Printf("  %s\n", titleStyle.Render(c.Name))
		cmd.Printf("    %s\n", c.Description)
		if c.Keywords != "" {
			cmd.Printf("    %s\n", mutedStyle.Render("tags: "+c.Keywords))
		}
		cmd.Println()
	}
	cmd.Printf("Total: %d courses\n", len(courses))

	return nil
}

func runCoursesAdd(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	course, err := catalogService.AddCourse(
		context.Background(), courseName, courseDescription, courseKeywords)
	if err != nil {
		return fmt.Errorf("failed to add course: %w", err)
	}

	cmd.Printf("%s Added course %q (id %d).\n", successStyle.Render("ok"), course.Name, course.ID)
	return nil
}
