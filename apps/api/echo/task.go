package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/task"
)

type (
	SuccessResponse struct {
		Success string `json:"success"`
	}

	NotificationsResponse struct {
		Tasks []task.Task `json:"tasks"`
	}
)

type taskApi struct {
	svc *task.Service
	log core.Logger
	now func() time.Time
}

func registerTaskAPI(g *echo.Group, svc *task.Service, logger core.Logger) {
	api := taskApi{
		svc: svc,
		log: logger,
		now: time.Now,
	}

	tg := g.Group("/tasks")
	tg.GET("", api.query)
	tg.POST("", api.create)
	tg.GET("/upcoming", api.upcomingWork)

	// detail endpoints
	dg := tg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PATCH("", api.update)
	dg.DELETE("", api.destroy)

	g.GET("/notifications", api.notifications)
}

// Handlers

func (api *taskApi) create(ctx echo.Context) error {
	var data task.NewTask
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTask")
	}

	t, err := api.svc.Create(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, t)
}

func (api *taskApi) query(ctx echo.Context) error {
	tasks, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying tasks")
	}
	return ctx.JSON(http.StatusOK, tasks)
}

func (api *taskApi) retrieve(ctx echo.Context) error {
	t, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api *taskApi) update(ctx echo.Context) error {
	var data task.UpdateTask
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateTask")
	}

	t, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api *taskApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "Task deleted successfully."})
}

// upcomingWork returns all tasks labeled with their status, minus the
// Completed ones.
func (api *taskApi) upcomingWork(ctx echo.Context) error {
	tasks, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying tasks")
	}
	return ctx.JSON(http.StatusOK, task.UpcomingWork(tasks, api.now(), api.log))
}

// notifications returns tasks dated today or later plus meetings starting
// within their notification lead time.
func (api *taskApi) notifications(ctx echo.Context) error {
	tasks, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying tasks")
	}
	return ctx.JSON(http.StatusOK, NotificationsResponse{Tasks: task.Notifications(tasks, api.now(), api.log)})
}
