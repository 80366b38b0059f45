package service

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/taskhive-dev/taskhive/internal/domain"
	"github.com/taskhive-dev/taskhive/internal/errors"
)

type TaskService interface {
	Create(data domain.NewTaskData, identity domain.Identity) (domain.Task, error)
	List(identity domain.Identity) ([]domain.Task, error)
	GetById(id domain.TaskId, identity domain.Identity) (domain.Task, error)
	Update(id domain.TaskId, patch domain.TaskPatch, identity domain.Identity) (domain.Task, error)
	Delete(id domain.TaskId, identity domain.Identity) error
}

// TaskStorage queries always carry the owner id. A task that exists but
// belongs to someone else is reported exactly like a task that does not
// exist at all.
type TaskStorage interface {
	SaveTask(task domain.Task) error
	Task(id domain.TaskId, owner domain.UserId) (domain.Task, error)
	TasksByOwner(owner domain.UserId) ([]domain.Task, error)
	UpdateTask(task domain.Task) error
	DeleteTask(id domain.TaskId, owner domain.UserId) error
}

type Task struct {
	storage TaskStorage
}

func NewTask(storage TaskStorage) *Task {
	return &Task{storage: storage}
}

// Create stamps the task with the caller's identity. Any owner the caller
// may have supplied in the request body never reaches this point.
func (t *Task) Create(data domain.NewTaskData, identity domain.Identity) (domain.Task, error) {
	now := time.Now().UTC()
	task := domain.Task{
		Id:          uuid.New().String(),
		Title:       data.Title,
		Description: data.Description,
		Status:      domain.StatusPending,
		OwnerId:     identity.UserId,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := t.storage.SaveTask(task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (t *Task) List(identity domain.Identity) ([]domain.Task, error) {
	return t.storage.TasksByOwner(identity.UserId)
}

func (t *Task) GetById(id domain.TaskId, identity domain.Identity) (domain.Task, error) {
	return t.storage.Task(id, identity.UserId)
}

// Update applies the present patch fields on top of the stored task. Absent
// fields are left unchanged.
func (t *Task) Update(id domain.TaskId, patch domain.TaskPatch, identity domain.Identity) (domain.Task, error) {
	task, err := t.storage.Task(id, identity.UserId)
	if err != nil {
		return domain.Task{}, err
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		if !domain.ValidStatus(*patch.Status) {
			return domain.Task{}, &errors.ErrorWithStatusCode{Message: "Invalid task status", StatusCode: http.StatusBadRequest}
		}
		task.Status = *patch.Status
	}
	task.UpdatedAt = time.Now().UTC()

	if err := t.storage.UpdateTask(task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// Delete removes the task. Deleting an already deleted task is a 404, not a
// silent success.
func (t *Task) Delete(id domain.TaskId, identity domain.Identity) error {
	if _, err := t.storage.Task(id, identity.UserId); err != nil {
		return err
	}
	return t.storage.DeleteTask(id, identity.UserId)
}
