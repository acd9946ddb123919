package main

import (
	"context"
	"testing"

	"github.com/childguard/app/core"
	"github.com/childguard/app/core/teacher"
	authdummy "github.com/childguard/app/services/auth/dummy"
	dummydb "github.com/childguard/app/storage/dummy"
)

func setup(t *testing.T) (*commandLine, teacher.Repository) {
	t.Helper()

	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("dummydb.Open() failed, %v", err)
	}
	repo := dummydb.NewTeacherRepository(db)
	return &commandLine{
		teacherRepo: repo,
		schoolRepo:  dummydb.NewSchoolRepository(db),
		auth:        authdummy.NewAuthService("test"),
	}, repo
}

type cliTest struct {
	name    string
	args    []string // without program name
	wantErr error
	pwd     string
}

func Test_commandLine_addTeacher(t *testing.T) {
	cli, repo := setup(t)

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no args", args: []string{"addteacher"}, wantErr: errHelp},
		{name: "email but no name", args: []string{"addteacher", "-email", "jm@test.cd"}, wantErr: errHelp},
		{name: "email and name but no password", args: []string{"addteacher", "-email", "jm@test.cd", "-name", "Jeanne M."}, wantErr: errHelp},
		{name: "ok", args: []string{"addteacher", "-email", "jm@test.cd", "-name", "Jeanne M."}, pwd: "s3cret"},
		{name: "duplicate email", args: []string{"addteacher", "-email", "jm@test.cd", "-name", "Jeanne M."}, pwd: "s3cret", wantErr: core.ErrEmailTaken},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			return []byte(tt.pwd), nil
		}

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				created, err := repo.GetTeacherByEmail(context.Background(), "jm@test.cd")
				if err != nil {
					t.Fatalf("GetTeacherByEmail() failed, %v", err)
				}
				if created.Name != "Jeanne M." {
					t.Errorf("teacher name = %s, want Jeanne M.", created.Name)
				}
			}
		})
	}
}

func Test_commandLine_seed(t *testing.T) {
	cli, _ := setup(t)

	if err := cli.run([]string{"admin", "seed"}); err != nil {
		t.Fatalf("cli.run() unexpected error = %v", err)
	}

	ctx := context.Background()
	schools, err := cli.schoolRepo.QueryAllSchools(ctx)
	if err != nil {
		t.Fatalf("QueryAllSchools() failed, %v", err)
	}
	if len(schools) == 0 {
		t.Error("no schools seeded")
	}
	deps, err := cli.schoolRepo.QueryAllDepartments(ctx)
	if err != nil {
		t.Fatalf("QueryAllDepartments() failed, %v", err)
	}
	for _, d := range deps {
		if d.FacultyID == "" {
			t.Errorf("department %s has no faculty", d.Name)
		}
	}
}
