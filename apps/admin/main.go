package main

import (
	"log"
	"os"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/task"
	"github.com/trezcool/darasa/storage/database"
	"github.com/trezcool/darasa/storage/database/mongodb"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.NewConfig()
	errAndDie(err)

	// set up DB
	client, err := database.Open(conf)
	errAndDie(err)
	defer func() { _ = database.Close(client, conf) }()

	// set up validation
	validate, translator := core.NewValidator()
	task.RegisterValidators(validate, translator)

	// start CLI
	cli := commandLine{
		taskSvc:           task.NewService(mongorepos.NewTaskRepository(client, conf), validate),
		ensureIndexesFunc: func() error { return mongorepos.EnsureIndexes(client, conf) },
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
