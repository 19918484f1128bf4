package dummydb

import (
	"sync"

	"github.com/trezcool/darasa/core/task"
)

type (
	DB struct {
		task *taskTable
	}

	taskTable struct {
		sync.RWMutex
		table map[string]*task.Task
	}
)

func Open() (*DB, error) {
	db := &DB{
		task: &taskTable{table: make(map[string]*task.Task)},
	}
	return db, nil
}
