package pg

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive-dev/taskhive/internal/domain"
	internal_errors "github.com/taskhive-dev/taskhive/internal/errors"
)

var taskColumns = []string{"id", "title", "description", "status", "owner_id", "created_at", "updated_at"}

func sampleTask() domain.Task {
	now := time.Now().UTC()
	return domain.Task{
		Id:          "task-1",
		Title:       "X",
		Description: "",
		Status:      domain.StatusPending,
		OwnerId:     "owner-1",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestSaveTask(t *testing.T) {
	storage, mock := newMockStorage(t)
	task := sampleTask()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO tasks`).
		WithArgs(task.Id, task.Title, task.Description, task.Status, task.OwnerId, task.CreatedAt, task.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, storage.SaveTask(task))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskQuery(t *testing.T) {
	query := regexp.QuoteMeta("FROM tasks WHERE id = $1 AND owner_id = $2")

	t.Run("found for owner", func(t *testing.T) {
		storage, mock := newMockStorage(t)
		want := sampleTask()

		mock.ExpectQuery(query).
			WithArgs(want.Id, want.OwnerId).
			WillReturnRows(sqlmock.NewRows(taskColumns).
				AddRow(want.Id, want.Title, want.Description, want.Status, want.OwnerId, want.CreatedAt, want.UpdatedAt))

		task, err := storage.Task(want.Id, want.OwnerId)
		require.NoError(t, err)
		assert.Equal(t, want, task)
	})

	t.Run("owned by someone else is not found", func(t *testing.T) {
		storage, mock := newMockStorage(t)

		mock.ExpectQuery(query).
			WithArgs("task-1", "other-owner").
			WillReturnRows(sqlmock.NewRows(taskColumns))

		_, err := storage.Task("task-1", "other-owner")
		require.Error(t, err)
		assert.True(t, internal_errors.IsNotFound(err))
	})
}

func TestTasksByOwner(t *testing.T) {
	query := regexp.QuoteMeta("FROM tasks WHERE owner_id = $1 ORDER BY created_at")

	t.Run("returns only the owner's tasks", func(t *testing.T) {
		storage, mock := newMockStorage(t)
		want := sampleTask()

		mock.ExpectQuery(query).
			WithArgs(want.OwnerId).
			WillReturnRows(sqlmock.NewRows(taskColumns).
				AddRow(want.Id, want.Title, want.Description, want.Status, want.OwnerId, want.CreatedAt, want.UpdatedAt))

		tasks, err := storage.TasksByOwner(want.OwnerId)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, want, tasks[0])
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		storage, mock := newMockStorage(t)

		mock.ExpectQuery(query).
			WithArgs("owner-2").
			WillReturnRows(sqlmock.NewRows(taskColumns))

		tasks, err := storage.TasksByOwner("owner-2")
		require.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)
	})
}

func TestUpdateTask(t *testing.T) {
	task := sampleTask()

	t.Run("success", func(t *testing.T) {
		storage, mock := newMockStorage(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE tasks SET`).
			WithArgs(task.Title, task.Description, task.Status, task.UpdatedAt, task.Id, task.OwnerId).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, storage.UpdateTask(task))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no matching row is not found", func(t *testing.T) {
		storage, mock := newMockStorage(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE tasks SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := storage.UpdateTask(task)
		require.Error(t, err)
		assert.True(t, internal_errors.IsNotFound(err))
	})
}

func TestDeleteTask(t *testing.T) {
	query := regexp.QuoteMeta("DELETE FROM tasks WHERE id = $1 AND owner_id = $2")

	t.Run("success", func(t *testing.T) {
		storage, mock := newMockStorage(t)

		mock.ExpectBegin()
		mock.ExpectExec(query).
			WithArgs("task-1", "owner-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, storage.DeleteTask("task-1", "owner-1"))
	})

	t.Run("already deleted is not found", func(t *testing.T) {
		storage, mock := newMockStorage(t)

		mock.ExpectBegin()
		mock.ExpectExec(query).
			WithArgs("task-1", "owner-1").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := storage.DeleteTask("task-1", "owner-1")
		require.Error(t, err)
		assert.True(t, internal_errors.IsNotFound(err))
	})
}
