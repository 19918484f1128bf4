package task

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

var ErrNotFound = errors.New("task not found")

type (
	Repository interface {
		CreateTask(t Task) (Task, error)
		// QueryAllTasks returns all tasks ordered by Date ascending,
		// then StartTime ascending.
		QueryAllTasks() ([]Task, error)
		GetTaskByID(id string) (Task, error)
		// UpdateTask merges the non-empty fields of `t` into the stored record.
		UpdateTask(t Task, notificationTime *int) (Task, error)
		DeleteTask(id string) error
	}

	Service struct {
		repo     Repository
		validate *validator.Validate
	}
)

func NewService(repo Repository, validate *validator.Validate) *Service {
	return &Service{repo: repo, validate: validate}
}

func (svc *Service) Create(nt NewTask) (Task, error) {
	if err := nt.Validate(svc.validate); err != nil {
		return Task{}, err
	}

	now := time.Now().UTC()
	t := Task{
		Title:            nt.Title,
		Type:             nt.Type,
		Date:             nt.Date,
		StartTime:        nt.StartTime,
		EndTime:          nt.EndTime,
		NotificationTime: DefaultNotificationLead,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if t.Type == "" {
		t.Type = TypeTask
	}
	// stored as given; NotificationLead() falls back to the default for values <= 0
	if nt.NotificationTime != nil {
		t.NotificationTime = *nt.NotificationTime
	}
	return svc.repo.CreateTask(t)
}

func (svc *Service) QueryAll() ([]Task, error) {
	return svc.repo.QueryAllTasks()
}

func (svc *Service) GetByID(id string) (Task, error) {
	return svc.repo.GetTaskByID(id)
}

func (svc *Service) Update(id string, ut UpdateTask) (Task, error) {
	if err := ut.Validate(svc.validate); err != nil {
		return Task{}, err
	}

	t := Task{
		ID:        id,
		Title:     ut.Title,
		Type:      ut.Type,
		Date:      ut.Date,
		StartTime: ut.StartTime,
		EndTime:   ut.EndTime,
		UpdatedAt: time.Now().UTC(),
	}
	return svc.repo.UpdateTask(t, ut.NotificationTime)
}

func (svc *Service) Delete(id string) error {
	return svc.repo.DeleteTask(id)
}
