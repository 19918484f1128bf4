package echoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/task"
	"github.com/trezcool/darasa/storage/database/dummy"
)

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Warn(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Fatal(msg string, args ...interface{}) {}

// failingRepo stands in for a task store that cannot be reached.
type failingRepo struct{}

var _ task.Repository = (*failingRepo)(nil)

func (failingRepo) storeDown() error {
	return core.NewConnectionError(errors.New("connection refused"))
}
func (r failingRepo) CreateTask(task.Task) (task.Task, error) { return task.Task{}, r.storeDown() }
func (r failingRepo) QueryAllTasks() ([]task.Task, error)     { return nil, r.storeDown() }
func (r failingRepo) GetTaskByID(string) (task.Task, error)   { return task.Task{}, r.storeDown() }
func (r failingRepo) UpdateTask(task.Task, *int) (task.Task, error) {
	return task.Task{}, r.storeDown()
}
func (r failingRepo) DeleteTask(string) error { return r.storeDown() }

func newTestServer(t *testing.T, repo task.Repository, healthErr error) Server {
	t.Helper()

	validate, translator := core.NewValidator()
	task.RegisterValidators(validate, translator)

	return NewServer(
		&Options{
			DisableReqLogs: true,
			Conf:           &core.Config{AppName: "Darasa", TestMode: true},
			Logger:         nopLogger{},
			Translator:     translator,
			TaskSvc:        task.NewService(repo, validate),
			HealthCheck:    func(context.Context) error { return healthErr },
		},
		nil, /* shutdown */
	)
}

func setupAPI(t *testing.T) (Server, task.Repository) {
	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("setupAPI() failed: %v", err)
	}
	repo := dummydb.NewTaskRepository(db)
	return newTestServer(t, repo, nil), repo
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
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

func marshal(t *testing.T, v interface{}) []byte {
	data, err := json.Marshal(v)
	require.NoError(t, err, "marshal() failed")
	return data
}

func decodeTask(t *testing.T, body []byte) task.Task {
	var tsk task.Task
	require.NoError(t, json.Unmarshal(body, &tsk), "decodeTask() failed")
	return tsk
}
