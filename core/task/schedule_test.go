package task_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/darasa/core/task"
)

// fixed instant threaded into every classifier call
var now = time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local)

func newTask(title, typ, date, start string) task.Task {
	return task.Task{
		ID:               title,
		Title:            title,
		Type:             typ,
		Date:             date,
		StartTime:        start,
		EndTime:          "23:59",
		NotificationTime: task.DefaultNotificationLead,
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		date       string
		startTime  string
		wantStatus task.Status
	}{
		{"earlier today", "2025-06-01", "09:00", task.StatusCompleted},
		{"this very minute", "2025-06-01", "10:00", task.StatusOngoing},
		{"later today", "2025-06-01", "11:00", task.StatusUpcoming},
		{"yesterday, early", "2025-05-31", "06:00", task.StatusCompleted},
		{"yesterday, late", "2025-05-31", "23:30", task.StatusCompleted},
		{"tomorrow, early", "2025-06-02", "00:00", task.StatusUpcoming},
		{"tomorrow, late", "2025-06-02", "23:00", task.StatusUpcoming},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := new(recordLogger)
			classified := task.Classify([]task.Task{newTask("t", task.TypeTask, tt.date, tt.startTime)}, now, log)
			require.Len(t, classified, 1)
			assert.Equal(t, tt.wantStatus, classified[0].Status)
			assert.Empty(t, log.warnings)
		})
	}
}

func TestUpcomingWork_dropsCompleted(t *testing.T) {
	tasks := []task.Task{
		newTask("done", task.TypeTask, "2025-05-31", "09:00"),
		newTask("ongoing", task.TypeTask, "2025-06-01", "10:00"),
		newTask("upcoming", task.TypeTask, "2025-06-01", "11:00"),
	}

	upcoming := task.UpcomingWork(tasks, now, new(recordLogger))
	require.Len(t, upcoming, 2)
	assert.Equal(t, "ongoing", upcoming[0].Title)
	assert.Equal(t, task.StatusOngoing, upcoming[0].Status)
	assert.Equal(t, "upcoming", upcoming[1].Title)
	assert.Equal(t, task.StatusUpcoming, upcoming[1].Status)
}

func TestNotifications_meetings(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		start    string
		lead     int
		included bool
	}{
		{"starts within lead", "2025-06-01", "10:05", 0, true},
		{"starts at lead boundary", "2025-06-01", "10:10", 0, true},
		{"starts beyond lead", "2025-06-01", "10:15", 0, false},
		{"starting right now", "2025-06-01", "10:00", 0, true},
		{"custom lead pulls it in", "2025-06-01", "10:25", 30, true},
		// no lower bound: overdue meetings never leave the set
		{"already started", "2025-06-01", "09:30", 0, true},
		{"days overdue", "2025-05-20", "08:00", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mtg := newTask("m", task.TypeMeeting, tt.date, tt.start)
			mtg.NotificationTime = tt.lead

			got := task.Notifications([]task.Task{mtg}, now, new(recordLogger))
			if tt.included {
				require.Len(t, got, 1)
				assert.Equal(t, "m", got[0].Title)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestNotifications_tasks(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		start    string
		included bool
	}{
		{"today, already past", "2025-06-01", "00:01", true}, // time of day is irrelevant for Tasks
		{"today, later", "2025-06-01", "23:59", true},
		{"tomorrow", "2025-06-02", "08:00", true},
		{"yesterday", "2025-05-31", "08:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := task.Notifications([]task.Task{newTask("t", task.TypeTask, tt.date, tt.start)}, now, new(recordLogger))
			if tt.included {
				require.Len(t, got, 1)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestNotifications_ordering(t *testing.T) {
	tasks := []task.Task{
		newTask("m1", task.TypeMeeting, "2025-06-01", "10:05"),
		newTask("t1", task.TypeTask, "2025-06-01", "14:00"),
		newTask("t2", task.TypeTask, "2025-06-02", "09:00"),
		newTask("m2", task.TypeMeeting, "2025-05-30", "10:00"),
	}

	got := task.Notifications(tasks, now, new(recordLogger))
	require.Len(t, got, 4)

	// tasks first, then meetings; each sublist in store order
	titles := []string{got[0].Title, got[1].Title, got[2].Title, got[3].Title}
	assert.Equal(t, []string{"t1", "t2", "m1", "m2"}, titles)
}

func TestClassify_malformedRecords(t *testing.T) {
	tasks := []task.Task{
		newTask("bad date", task.TypeTask, "junk", "10:00"),
		newTask("bad time", task.TypeTask, "2025-06-01", "later"),
		newTask("good", task.TypeTask, "2025-06-01", "11:00"),
	}

	log := new(recordLogger)
	classified := task.Classify(tasks, now, log)

	// malformed records are skipped, the rest still classified
	require.Len(t, classified, 1)
	assert.Equal(t, "good", classified[0].Title)
	assert.Len(t, log.warnings, 2)
}

func TestNotifications_malformedRecords(t *testing.T) {
	tasks := []task.Task{
		newTask("bad date", task.TypeMeeting, "06/01/2025", "09:55"),
		newTask("good", task.TypeTask, "2025-06-01", "11:00"),
	}

	log := new(recordLogger)
	got := task.Notifications(tasks, now, log)

	require.Len(t, got, 1)
	assert.Equal(t, "good", got[0].Title)
	assert.Len(t, log.warnings, 1)
}
