package main

import (
	"context"
	"log"
	"os"

	"github.com/childguard/app/core"
	authsvc "github.com/childguard/app/services/auth"
	authdummy "github.com/childguard/app/services/auth/dummy"
	dummydb "github.com/childguard/app/storage/dummy"
	firestoredb "github.com/childguard/app/storage/firestore"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	conf := core.NewConfig(core.Getwd())
	ctx := context.Background()

	cli, cleanup, err := setupCLI(ctx, conf)
	errAndDie(err)
	defer cleanup()

	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

// setupCLI wires the real document store, or the in-memory one when no
// project is configured (local development).
func setupCLI(ctx context.Context, conf *core.Config) (*commandLine, func(), error) {
	if conf.Firebase.ProjectID == "" {
		db, err := dummydb.Open()
		if err != nil {
			return nil, nil, err
		}
		return &commandLine{
			teacherRepo: dummydb.NewTeacherRepository(db),
			schoolRepo:  dummydb.NewSchoolRepository(db),
			auth:        authdummy.NewAuthService("childguard-admin"),
		}, func() {}, nil
	}

	db, err := firestoredb.Open(ctx, conf)
	if err != nil {
		return nil, nil, err
	}
	return &commandLine{
		teacherRepo: firestoredb.NewTeacherRepository(db),
		schoolRepo:  firestoredb.NewSchoolRepository(db),
		auth:        authsvc.NewFirebaseService(conf, core.NewStdLogger(logger)),
	}, func() { _ = db.Close() }, nil
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
