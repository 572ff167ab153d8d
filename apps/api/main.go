package main

import (
	"log"
	"os"

	"github.com/cnam2653/canvas-assignment-calendar/apps/api/echo"
	"github.com/cnam2653/canvas-assignment-calendar/core"
	"github.com/cnam2653/canvas-assignment-calendar/core/course"
	"github.com/cnam2653/canvas-assignment-calendar/services/canvas"
	"github.com/cnam2653/canvas-assignment-calendar/services/logger"
	"github.com/cnam2653/canvas-assignment-calendar/storage/inmem"
)

func main() {
	std := log.New(os.Stdout, core.Conf.AppName+" : ", log.LstdFlags|log.Lshortfile)

	// set up logging
	var appLogger core.Logger
	if !core.Conf.Debug && core.Conf.Rollbar.Token != "" {
		appLogger = logsvc.NewRollbarLogger(std, core.Conf)
	} else {
		appLogger = logsvc.NewConsoleLogger(std)
	}

	// set up the in-memory credential store
	db, err := inmemdb.Open()
	errAndDie(err)
	defer db.Close()
	credRepo := inmemdb.NewCredentialRepository(db)

	// set up the aggregation service
	client := canvas.NewClient(core.Conf)
	courseSvc := course.NewService(core.Conf, client, credRepo, course.NewTermSelector(), appLogger)

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Address:        core.Conf.Server.Addr,
			CourseSvc:      courseSvc,
			CredentialRepo: credRepo,
			Logger:         appLogger,
		},
	)
	app.Start()
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
