package task_test

import (
	"testing"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/task"
	"github.com/trezcool/darasa/storage/database/dummy"
)

func setup(t *testing.T) (*task.Service, task.Repository) {
	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	repo := dummydb.NewTaskRepository(db)
	validate, _ := newValidator()
	return task.NewService(repo, validate), repo
}

func newValidator() (*validator.Validate, ut.Translator) {
	validate, translator := core.NewValidator()
	task.RegisterValidators(validate, translator)
	return validate, translator
}

func createTask(t *testing.T, repo task.Repository, title, typ, date, start, end string) task.Task {
	tstamp := time.Now().UTC()
	tsk := task.Task{
		Title:            title,
		Type:             typ,
		Date:             date,
		StartTime:        start,
		EndTime:          end,
		NotificationTime: task.DefaultNotificationLead,
		CreatedAt:        tstamp,
		UpdatedAt:        tstamp,
	}
	tsk, err := repo.CreateTask(tsk)
	require.NoError(t, err, "createTask() failed")
	return tsk
}

// recordLogger captures warnings for assertions and swallows everything else.
type recordLogger struct {
	warnings []string
}

func (l *recordLogger) Debug(msg string, args ...interface{}) {}
func (l *recordLogger) Info(msg string, args ...interface{})  {}
func (l *recordLogger) Warn(msg string, args ...interface{})  { l.warnings = append(l.warnings, msg) }
func (l *recordLogger) Error(msg string, args ...interface{}) {}
func (l *recordLogger) Fatal(msg string, args ...interface{}) {}
