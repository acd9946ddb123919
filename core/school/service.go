package school

import "context"

// Service serves the registration form's reference pickers. All four
// collections are small and read in full; department filtering happens
// client-side on the loaded list.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Schools(ctx context.Context) ([]School, error) {
	return svc.repo.QueryAllSchools(ctx)
}

func (svc *Service) Faculties(ctx context.Context) ([]Faculty, error) {
	return svc.repo.QueryAllFaculties(ctx)
}

// Departments returns the departments of one faculty; with an empty
// facultyID it returns all of them.
func (svc *Service) Departments(ctx context.Context, facultyID string) ([]Department, error) {
	all, err := svc.repo.QueryAllDepartments(ctx)
	if err != nil {
		return nil, err
	}
	if facultyID == "" {
		return all, nil
	}
	deps := make([]Department, 0, len(all))
	for _, d := range all {
		if d.FacultyID == facultyID {
			deps = append(deps, d)
		}
	}
	return deps, nil
}

func (svc *Service) Courses(ctx context.Context) ([]Course, error) {
	return svc.repo.QueryAllCourses(ctx)
}
