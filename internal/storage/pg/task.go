package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/taskhive-dev/taskhive/internal/domain"
	internal_errors "github.com/taskhive-dev/taskhive/internal/errors"
)

// Every task query carries the owner id in its WHERE clause. A task owned by
// someone else therefore scans as sql.ErrNoRows, exactly like a missing one.

var errTaskNotFound = &internal_errors.ErrorWithStatusCode{Message: "Task not found", StatusCode: http.StatusNotFound}

// =========================================================================
// Public Methods (satisfy the service.TaskStorage interface)
// =========================================================================

func (s *Storage) SaveTask(task domain.Task) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.saveTask(tx, task)
	})
}

func (s *Storage) Task(id domain.TaskId, owner domain.UserId) (domain.Task, error) {
	return s.task(s.db, id, owner)
}

func (s *Storage) TasksByOwner(owner domain.UserId) ([]domain.Task, error) {
	return s.tasksByOwner(s.db, owner)
}

func (s *Storage) UpdateTask(task domain.Task) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.updateTask(tx, task)
	})
}

func (s *Storage) DeleteTask(id domain.TaskId, owner domain.UserId) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.deleteTask(tx, id, owner)
	})
}

// =========================================================================
// Internal Methods (Core Database Logic)
// =========================================================================

func (s *Storage) saveTask(q Querier, task domain.Task) error {
	_, err := q.Exec(`INSERT INTO tasks(id, title, description, status, owner_id, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, $7)`,
		task.Id, task.Title, task.Description, task.Status, task.OwnerId, task.CreatedAt, task.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}
	return nil
}

func (s *Storage) task(q Querier, id domain.TaskId, owner domain.UserId) (domain.Task, error) {
	var task domain.Task
	err := q.QueryRow(`SELECT id, title, description, status, owner_id, created_at, updated_at
		FROM tasks WHERE id = $1 AND owner_id = $2`, id, owner).
		Scan(&task.Id, &task.Title, &task.Description, &task.Status, &task.OwnerId, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, errTaskNotFound
		}
		return domain.Task{}, fmt.Errorf("failed to query task: %w", err)
	}
	return task, nil
}

func (s *Storage) tasksByOwner(q Querier, owner domain.UserId) ([]domain.Task, error) {
	rows, err := q.Query(`SELECT id, title, description, status, owner_id, created_at, updated_at
		FROM tasks WHERE owner_id = $1 ORDER BY created_at`, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(&task.Id, &task.Title, &task.Description, &task.Status, &task.OwnerId, &task.CreatedAt, &task.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}
	return tasks, nil
}

func (s *Storage) updateTask(q Querier, task domain.Task) error {
	res, err := q.Exec(`UPDATE tasks SET title = $1, description = $2, status = $3, updated_at = $4
		WHERE id = $5 AND owner_id = $6`,
		task.Title, task.Description, task.Status, task.UpdatedAt, task.Id, task.OwnerId)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return errTaskNotFound
	}
	return nil
}

func (s *Storage) deleteTask(q Querier, id domain.TaskId, owner domain.UserId) error {
	res, err := q.Exec("DELETE FROM tasks WHERE id = $1 AND owner_id = $2", id, owner)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return errTaskNotFound
	}
	return nil
}
