package task

import (
	"time"

	"github.com/trezcool/darasa/core"
)

// Status is a task's derived label relative to current time.
type Status string

const (
	StatusCompleted Status = "Completed"
	StatusOngoing   Status = "Ongoing"
	StatusUpcoming  Status = "Upcoming"
)

// ClassifiedTask is a Task annotated with its derived Status.
type ClassifiedTask struct {
	Task
	Status Status `json:"status"`
}

// Classify labels each task Completed, Ongoing or Upcoming relative to `now`.
// Date comparison is at calendar-day granularity and time comparison at minute
// granularity, both in now's location; the stored values are taken as already
// being in the viewer's local frame.
// A task whose Date or StartTime does not parse is skipped with a warning;
// it never aborts classification of the rest.
func Classify(tasks []Task, now time.Time, log core.Logger) []ClassifiedTask {
	today := now.Format(core.DateLayout)
	nowHM := now.Format(core.TimeLayout)

	classified := make([]ClassifiedTask, 0, len(tasks))
	for _, t := range tasks {
		if !scheduleOK(t, log) {
			continue
		}

		var status Status
		switch {
		case t.Date < today || (t.Date == today && t.StartTime < nowHM):
			status = StatusCompleted
		case t.Date == today && t.StartTime == nowHM:
			status = StatusOngoing
		default:
			status = StatusUpcoming
		}
		classified = append(classified, ClassifiedTask{Task: t, Status: status})
	}
	return classified
}

// UpcomingWork classifies `tasks` and drops the Completed ones.
func UpcomingWork(tasks []Task, now time.Time, log core.Logger) []ClassifiedTask {
	classified := Classify(tasks, now, log)
	upcoming := make([]ClassifiedTask, 0, len(classified))
	for _, ct := range classified {
		if ct.Status != StatusCompleted {
			upcoming = append(upcoming, ct)
		}
	}
	return upcoming
}

// Notifications computes the "relevant now" view: tasks dated today or later,
// followed by meetings starting within their notification lead time.
// The meeting filter has no lower bound: a meeting already started, or long
// past, stays in the set.
// Malformed records are skipped with a warning, like in Classify.
func Notifications(tasks []Task, now time.Time, log core.Logger) []Task {
	today := now.Format(core.DateLayout)

	todays := make([]Task, 0, len(tasks))
	var meetings []Task
	for _, t := range tasks {
		if !scheduleOK(t, log) {
			continue
		}

		switch t.Type {
		case TypeTask:
			if t.Date >= today {
				todays = append(todays, t)
			}
		case TypeMeeting:
			startsAt, err := t.StartsAt()
			if err != nil {
				continue
			}
			if !startsAt.After(now.Add(t.NotificationLead())) {
				meetings = append(meetings, t)
			}
		}
	}
	return append(todays, meetings...)
}

// scheduleOK fails closed on records whose schedule values cannot be parsed.
func scheduleOK(t Task, log core.Logger) bool {
	if !core.ValidDateOnly(t.Date) {
		log.Warn("task has an unparseable date; skipping it",
			map[string]interface{}{"id": t.ID, "date": t.Date})
		return false
	}
	if !core.ValidHHMM(t.StartTime) {
		log.Warn("task has an unparseable start time; skipping it",
			map[string]interface{}{"id": t.ID, "startTime": t.StartTime})
		return false
	}
	return true
}
