package dummydb

import (
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/trezcool/darasa/core/task"
)

type taskRepository struct {
	db *taskTable
}

var _ task.Repository = (*taskRepository)(nil) // interface compliance check

func NewTaskRepository(db *DB) task.Repository {
	return &taskRepository{db: db.task}
}

func (repo *taskRepository) query() []task.Task {
	tasks := make([]task.Task, 0, len(repo.db.table))
	for _, t := range repo.db.table {
		tasks = append(tasks, *t)
	}
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].Date != tasks[j].Date {
			return tasks[i].Date < tasks[j].Date
		}
		return tasks[i].StartTime < tasks[j].StartTime
	})
	return tasks
}

func (repo *taskRepository) CreateTask(t task.Task) (task.Task, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if t.ID == "" {
		t.ID = primitive.NewObjectID().Hex()
	}
	repo.db.table[t.ID] = &t
	return t, nil
}

func (repo *taskRepository) QueryAllTasks() ([]task.Task, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *taskRepository) GetTaskByID(id string) (task.Task, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if t, ok := repo.db.table[id]; ok {
		return *t, nil
	}
	return task.Task{}, task.ErrNotFound
}

func (repo *taskRepository) UpdateTask(t task.Task, notificationTime *int) (task.Task, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	orig, ok := repo.db.table[t.ID]
	if !ok {
		return task.Task{}, task.ErrNotFound
	}

	if t.Title != "" {
		orig.Title = t.Title
	}
	if t.Type != "" {
		orig.Type = t.Type
	}
	if t.Date != "" {
		orig.Date = t.Date
	}
	if t.StartTime != "" {
		orig.StartTime = t.StartTime
	}
	if t.EndTime != "" {
		orig.EndTime = t.EndTime
	}
	if notificationTime != nil {
		orig.NotificationTime = *notificationTime
	}
	orig.UpdatedAt = t.UpdatedAt
	return *orig, nil
}

func (repo *taskRepository) DeleteTask(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return task.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}
