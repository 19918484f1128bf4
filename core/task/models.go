package task

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/darasa/core"
)

// Task types
const (
	TypeTask    = "Task"
	TypeMeeting = "Meeting"
)

var AllTypes = []string{TypeTask, TypeMeeting}

// DefaultNotificationLead is the lead time (in minutes) before a meeting
// starts counting as notification-worthy, when a task does not carry its own.
const DefaultNotificationLead = 10

// Task is a stored unit of schedulable work with a date and time range.
// Date and times are kept as plain local strings; the store never converts
// them across timezones.
type Task struct {
	ID               string    `json:"id" bson:"_id,omitempty"`
	Title            string    `json:"title" bson:"title"`
	Type             string    `json:"type" bson:"type"`
	Date             string    `json:"date" bson:"date"`           // YYYY-MM-DD
	StartTime        string    `json:"startTime" bson:"startTime"` // HH:mm
	EndTime          string    `json:"endTime" bson:"endTime"`     // HH:mm
	NotificationTime int       `json:"notificationTime" bson:"notificationTime"` // minutes
	CreatedAt        time.Time `json:"createdAt" bson:"createdAt"`               // UTC
	UpdatedAt        time.Time `json:"updatedAt" bson:"updatedAt"`               // UTC
}

func (t *Task) IsMeeting() bool {
	return t.Type == TypeMeeting
}

// StartsAt combines Date and StartTime into a local time.Time.
func (t *Task) StartsAt() (time.Time, error) {
	return time.ParseInLocation(core.DateLayout+"T"+core.TimeLayout, t.Date+"T"+t.StartTime, time.Local)
}

// NotificationLead returns the task's notification lead time.
func (t *Task) NotificationLead() time.Duration {
	lead := t.NotificationTime
	if lead <= 0 {
		lead = DefaultNotificationLead
	}
	return time.Duration(lead) * time.Minute
}

// NewTask contains information needed to create a new Task.
type NewTask struct {
	Title            string `json:"title" validate:"required"`
	Type             string `json:"type" validate:"omitempty,tasktype"`
	Date             string `json:"date" validate:"required,dateonly"`
	StartTime        string `json:"startTime" validate:"required,hhmm"`
	EndTime          string `json:"endTime" validate:"required,hhmm"`
	NotificationTime *int   `json:"notificationTime" validate:"omitempty,gte=0"`
}

func (nt *NewTask) Validate(validate *validator.Validate) error {
	nt.Title = core.CleanString(nt.Title)
	nt.Type = core.CleanString(nt.Type)
	return validate.Struct(nt)
}

// UpdateTask defines what information may be provided to modify an existing Task.
// ID, CreatedAt and UpdatedAt are never client-writable; fields absent from
// the request body keep their stored values.
type UpdateTask struct {
	Title            string `json:"title"`
	Type             string `json:"type" validate:"omitempty,tasktype"`
	Date             string `json:"date" validate:"omitempty,dateonly"`
	StartTime        string `json:"startTime" validate:"omitempty,hhmm"`
	EndTime          string `json:"endTime" validate:"omitempty,hhmm"`
	NotificationTime *int   `json:"notificationTime" validate:"omitempty,gte=0"`
}

func (ut *UpdateTask) Validate(validate *validator.Validate) error {
	ut.Title = core.CleanString(ut.Title)
	ut.Type = core.CleanString(ut.Type)
	return validate.Struct(ut)
}
