package mongorepos

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/task"
)

const taskCollection = "tasks"

type taskRepository struct {
	coll      *mongo.Collection
	opTimeout time.Duration
}

var _ task.Repository = (*taskRepository)(nil) // interface compliance check

func NewTaskRepository(client *mongo.Client, conf *core.Config) task.Repository {
	return &taskRepository{
		coll:      client.Database(conf.Database.Name).Collection(taskCollection),
		opTimeout: conf.Database.OpTimeout,
	}
}

// EnsureIndexes creates the index backing the (date, startTime) list ordering.
func EnsureIndexes(client *mongo.Client, conf *core.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), conf.Database.OpTimeout)
	defer cancel()

	coll := client.Database(conf.Database.Name).Collection(taskCollection)
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}},
	})
	if err != nil {
		return wrapErr(err, "creating task indexes")
	}
	return nil
}

func (repo *taskRepository) opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), repo.opTimeout)
}

func (repo *taskRepository) CreateTask(t task.Task) (task.Task, error) {
	ctx, cancel := repo.opCtx()
	defer cancel()

	t.ID = primitive.NewObjectID().Hex()
	if _, err := repo.coll.InsertOne(ctx, t); err != nil {
		return task.Task{}, wrapErr(err, "inserting task")
	}
	return t, nil
}

func (repo *taskRepository) QueryAllTasks() ([]task.Task, error) {
	ctx, cancel := repo.opCtx()
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}})
	cur, err := repo.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, wrapErr(err, "querying tasks")
	}

	tasks := make([]task.Task, 0)
	if err = cur.All(ctx, &tasks); err != nil {
		return nil, wrapErr(err, "decoding tasks")
	}
	return tasks, nil
}

func (repo *taskRepository) GetTaskByID(id string) (task.Task, error) {
	ctx, cancel := repo.opCtx()
	defer cancel()

	var t task.Task
	if err := repo.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return task.Task{}, task.ErrNotFound
		}
		return task.Task{}, wrapErr(err, "getting task")
	}
	return t, nil
}

func (repo *taskRepository) UpdateTask(t task.Task, notificationTime *int) (task.Task, error) {
	ctx, cancel := repo.opCtx()
	defer cancel()

	set := bson.M{"updatedAt": t.UpdatedAt}
	if t.Title != "" {
		set["title"] = t.Title
	}
	if t.Type != "" {
		set["type"] = t.Type
	}
	if t.Date != "" {
		set["date"] = t.Date
	}
	if t.StartTime != "" {
		set["startTime"] = t.StartTime
	}
	if t.EndTime != "" {
		set["endTime"] = t.EndTime
	}
	if notificationTime != nil {
		set["notificationTime"] = *notificationTime
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated task.Task
	err := repo.coll.FindOneAndUpdate(ctx, bson.M{"_id": t.ID}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return task.Task{}, task.ErrNotFound
		}
		return task.Task{}, wrapErr(err, "updating task")
	}
	return updated, nil
}

func (repo *taskRepository) DeleteTask(id string) error {
	ctx, cancel := repo.opCtx()
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return wrapErr(err, "deleting task")
	}
	if res.DeletedCount == 0 {
		return task.ErrNotFound
	}
	return nil
}

// wrapErr folds driver connectivity failures into core.ConnectionError so
// callers can tell retryable store outages from the rest.
func wrapErr(err error, msg string) error {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return core.NewConnectionError(errors.Wrap(err, msg))
	}
	return errors.Wrap(err, msg)
}
