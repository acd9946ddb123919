package main

import (
	"github.com/childguard/app/core"
)

func main() {
	conf := core.NewConfig(core.Getwd())

	app := NewServer(conf, &Options{
		Address:     ":8000",
		TokenSecret: "dev-only-secret",
		ParentAccounts: map[string]string{
			"parent@test.cd": "s3cret",
		},
	})
	app.Start()
}
