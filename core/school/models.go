package school

import "context"

type (
	School struct {
		ID            string `json:"id" firestore:"-"`
		Name          string `json:"name" firestore:"name"`
		Address       string `json:"address" firestore:"address"`
		Contact       string `json:"contact" firestore:"contact"`
		Type          string `json:"type" firestore:"type"`
		StudentsCount int    `json:"students_count" firestore:"students_count"`
	}

	Faculty struct {
		ID          string `json:"id" firestore:"-"`
		Name        string `json:"name" firestore:"name"`
		Description string `json:"description" firestore:"description"`
		Head        string `json:"head" firestore:"head"`
	}

	Department struct {
		ID        string `json:"id" firestore:"-"`
		FacultyID string `json:"faculty_id" firestore:"faculty_id"`
		Name      string `json:"name" firestore:"name"`
	}

	Course struct {
		ID   string `json:"id" firestore:"-"`
		Name string `json:"name" firestore:"name"`
	}

	Repository interface {
		QueryAllSchools(ctx context.Context) ([]School, error)
		QueryAllFaculties(ctx context.Context) ([]Faculty, error)
		QueryAllDepartments(ctx context.Context) ([]Department, error)
		QueryAllCourses(ctx context.Context) ([]Course, error)

		CreateSchool(ctx context.Context, s School) (School, error)
		CreateFaculty(ctx context.Context, f Faculty) (Faculty, error)
		CreateDepartment(ctx context.Context, d Department) (Department, error)
		CreateCourse(ctx context.Context, c Course) (Course, error)
	}
)
