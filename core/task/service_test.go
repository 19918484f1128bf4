package task_test

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/darasa/core/task"
)

func TestService_Create(t *testing.T) {
	svc, _ := setup(t)

	nt := task.NewTask{
		Title:     "  Revise algebra  ",
		Date:      "2025-06-01",
		StartTime: "10:00",
		EndTime:   "11:00",
	}
	created, err := svc.Create(nt)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Revise algebra", created.Title)
	assert.Equal(t, task.TypeTask, created.Type) // defaulted
	assert.Equal(t, "2025-06-01", created.Date)
	assert.Equal(t, "10:00", created.StartTime)
	assert.Equal(t, "11:00", created.EndTime)
	assert.Equal(t, task.DefaultNotificationLead, created.NotificationTime)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	// Create followed by List returns the created task intact.
	tasks, err := svc.QueryAll()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, created, tasks[0])
}

func TestService_Create_customLead(t *testing.T) {
	svc, _ := setup(t)

	lead := 30
	created, err := svc.Create(task.NewTask{
		Title:            "Standup",
		Type:             task.TypeMeeting,
		Date:             "2025-06-01",
		StartTime:        "09:00",
		EndTime:          "09:15",
		NotificationTime: &lead,
	})
	require.NoError(t, err)
	assert.Equal(t, task.TypeMeeting, created.Type)
	assert.Equal(t, 30, created.NotificationTime)
}

// A zero lead is persisted as given on both create and update;
// NotificationLead() still falls back to the default at read time.
func TestService_zeroLeadStoredAsGiven(t *testing.T) {
	svc, _ := setup(t)

	lead := 0
	created, err := svc.Create(task.NewTask{
		Title:            "Standup",
		Type:             task.TypeMeeting,
		Date:             "2025-06-01",
		StartTime:        "09:00",
		EndTime:          "09:15",
		NotificationTime: &lead,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, created.NotificationTime)
	assert.Equal(t, time.Duration(task.DefaultNotificationLead)*time.Minute, created.NotificationLead())

	updated, err := svc.Update(created.ID, task.UpdateTask{NotificationTime: &lead})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.NotificationTime)

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.NotificationTime)
}

func TestService_Create_validation(t *testing.T) {
	svc, _ := setup(t)

	valid := task.NewTask{
		Title:     "Read chapter 4",
		Date:      "2025-06-01",
		StartTime: "10:00",
		EndTime:   "11:00",
	}

	tests := []struct {
		name      string
		mutate    func(nt *task.NewTask)
		wantField string
	}{
		{"missing title", func(nt *task.NewTask) { nt.Title = "" }, "title"},
		{"whitespace title", func(nt *task.NewTask) { nt.Title = "   " }, "title"},
		{"missing date", func(nt *task.NewTask) { nt.Date = "" }, "date"},
		{"impossible date", func(nt *task.NewTask) { nt.Date = "2025-02-30" }, "date"},
		{"unpadded date", func(nt *task.NewTask) { nt.Date = "2025-6-1" }, "date"},
		{"missing startTime", func(nt *task.NewTask) { nt.StartTime = "" }, "startTime"},
		{"invalid startTime", func(nt *task.NewTask) { nt.StartTime = "24:00" }, "startTime"},
		{"unpadded startTime", func(nt *task.NewTask) { nt.StartTime = "9:00" }, "startTime"},
		{"missing endTime", func(nt *task.NewTask) { nt.EndTime = "" }, "endTime"},
		{"unknown type", func(nt *task.NewTask) { nt.Type = "Exam" }, "type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nt := valid
			tt.mutate(&nt)

			_, err := svc.Create(nt)
			var vErrs validator.ValidationErrors
			require.ErrorAs(t, err, &vErrs)
			require.Len(t, vErrs, 1)
			assert.Equal(t, tt.wantField, vErrs[0].Field())
		})
	}

	// nothing was persisted
	tasks, err := svc.QueryAll()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestService_QueryAll_ordering(t *testing.T) {
	svc, repo := setup(t)

	// inserted out of order on purpose
	createTask(t, repo, "C", task.TypeTask, "2025-01-02", "08:00", "09:00")
	createTask(t, repo, "B", task.TypeTask, "2025-01-01", "15:00", "16:00")
	createTask(t, repo, "A", task.TypeTask, "2025-01-01", "09:00", "10:00")
	createTask(t, repo, "D", task.TypeMeeting, "2025-01-02", "10:30", "11:00")

	tasks, err := svc.QueryAll()
	require.NoError(t, err)
	require.Len(t, tasks, 4)

	titles := make([]string, 0, len(tasks))
	for _, tsk := range tasks {
		titles = append(titles, tsk.Title)
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, titles)
}

func TestService_Update(t *testing.T) {
	svc, repo := setup(t)
	orig := createTask(t, repo, "Physics review", task.TypeTask, "2025-06-01", "10:00", "11:00")

	updated, err := svc.Update(orig.ID, task.UpdateTask{Title: "Physics mock exam"})
	require.NoError(t, err)

	// only the supplied field changed
	assert.Equal(t, orig.ID, updated.ID)
	assert.Equal(t, "Physics mock exam", updated.Title)
	assert.Equal(t, orig.Type, updated.Type)
	assert.Equal(t, orig.Date, updated.Date)
	assert.Equal(t, orig.StartTime, updated.StartTime)
	assert.Equal(t, orig.EndTime, updated.EndTime)
	assert.Equal(t, orig.NotificationTime, updated.NotificationTime)
	assert.Equal(t, orig.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(orig.UpdatedAt) || updated.UpdatedAt.Equal(orig.UpdatedAt))
}

func TestService_Update_reschedule(t *testing.T) {
	svc, repo := setup(t)
	orig := createTask(t, repo, "Group study", task.TypeMeeting, "2025-06-01", "10:00", "11:00")

	lead := 20
	updated, err := svc.Update(orig.ID, task.UpdateTask{
		Date:             "2025-06-02",
		StartTime:        "14:00",
		EndTime:          "15:30",
		NotificationTime: &lead,
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-06-02", updated.Date)
	assert.Equal(t, "14:00", updated.StartTime)
	assert.Equal(t, "15:30", updated.EndTime)
	assert.Equal(t, 20, updated.NotificationTime)
	assert.Equal(t, orig.Title, updated.Title)
}

func TestService_Update_notFound(t *testing.T) {
	svc, repo := setup(t)
	orig := createTask(t, repo, "Essay draft", task.TypeTask, "2025-06-01", "10:00", "11:00")

	_, err := svc.Update("64a000000000000000000000", task.UpdateTask{Title: "nope"})
	assert.Equal(t, task.ErrNotFound, err)

	// store unchanged
	tasks, err := svc.QueryAll()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, orig, tasks[0])
}

func TestService_Update_validation(t *testing.T) {
	svc, repo := setup(t)
	orig := createTask(t, repo, "Essay draft", task.TypeTask, "2025-06-01", "10:00", "11:00")

	_, err := svc.Update(orig.ID, task.UpdateTask{Date: "not-a-date"})
	var vErrs validator.ValidationErrors
	require.ErrorAs(t, err, &vErrs)
	assert.Equal(t, "date", vErrs[0].Field())
}

func TestService_Delete(t *testing.T) {
	svc, repo := setup(t)
	tsk := createTask(t, repo, "Flashcards", task.TypeTask, "2025-06-01", "10:00", "11:00")

	require.NoError(t, svc.Delete(tsk.ID))

	tasks, err := svc.QueryAll()
	require.NoError(t, err)
	assert.Empty(t, tasks)

	// deleting twice yields success then not-found
	assert.Equal(t, task.ErrNotFound, svc.Delete(tsk.ID))
}
