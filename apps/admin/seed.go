package main

import (
	"context"

	"github.com/childguard/app/core/school"
)

// seed loads a starter set of reference documents so the registration form
// pickers are not empty on a fresh project. Existing documents are left
// alone; seeding twice duplicates nothing critical but is not idempotent.
func (cli *commandLine) seed() error {
	ctx := context.Background()

	schools := []school.School{
		{Name: "Greenfield Primary", Address: "12 Hill Road", Contact: "+243 970 000 001", Type: "primary"},
		{Name: "Riverside Secondary", Address: "3 River Lane", Contact: "+243 970 000 002", Type: "secondary"},
	}
	for _, s := range schools {
		if _, err := cli.schoolRepo.CreateSchool(ctx, s); err != nil {
			return err
		}
	}

	faculties := []school.Faculty{
		{Name: "Sciences", Description: "Natural and formal sciences", Head: "Dr. N. Kalume"},
		{Name: "Humanities", Description: "Languages and social studies", Head: "Prof. A. Mwamba"},
	}
	facultyIDs := make([]string, 0, len(faculties))
	for _, f := range faculties {
		created, err := cli.schoolRepo.CreateFaculty(ctx, f)
		if err != nil {
			return err
		}
		facultyIDs = append(facultyIDs, created.ID)
	}

	departments := []school.Department{
		{FacultyID: facultyIDs[0], Name: "Mathematics"},
		{FacultyID: facultyIDs[0], Name: "Biology"},
		{FacultyID: facultyIDs[1], Name: "French"},
		{FacultyID: facultyIDs[1], Name: "History"},
	}
	for _, d := range departments {
		if _, err := cli.schoolRepo.CreateDepartment(ctx, d); err != nil {
			return err
		}
	}

	courses := []school.Course{
		{Name: "Algebra"}, {Name: "Geometry"}, {Name: "Botany"},
		{Name: "Grammar"}, {Name: "World History"},
	}
	for _, c := range courses {
		if _, err := cli.schoolRepo.CreateCourse(ctx, c); err != nil {
			return err
		}
	}
	return nil
}
