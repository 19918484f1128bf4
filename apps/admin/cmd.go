package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/trezcool/darasa/core/task"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	taskSvc           *task.Service
	ensureIndexesFunc func() error
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  ensureindexes - create the task collection indexes")
	fmt.Println("  seed -count N - insert N sample tasks (default 5)")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	seedCount := seedCmd.Int("count", 5, "Number of sample tasks to insert.")

	switch args[1] {
	case "ensureindexes":
		return cli.ensureIndexesFunc()
	case "seed":
		if err := seedCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *seedCount < 1 {
			seedCmd.Usage()
			return errHelp
		}
		return cli.seed(*seedCount)
	default:
		cli.printUsage()
		return errHelp
	}
}
