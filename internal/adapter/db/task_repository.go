package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"planboard/internal/core/domain"
	"planboard/internal/core/ports"
)

const selectTaskColumns = `
id, board_id, column_id, code, title, description, task_type,
start_date, due_date, completed_at, dependencies, checklist,
completion_percentage, position, created_at, updated_at
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID                   string          `db:"id"`
	BoardID              string          `db:"board_id"`
	ColumnID             string          `db:"column_id"`
	Code                 sql.NullString  `db:"code"`
	Title                string          `db:"title"`
	Description          sql.NullString  `db:"description"`
	TaskType             string          `db:"task_type"`
	StartDate            sql.NullTime    `db:"start_date"`
	DueDate              sql.NullTime    `db:"due_date"`
	CompletedAt          sql.NullTime    `db:"completed_at"`
	Dependencies         json.RawMessage `db:"dependencies"`
	Checklist            json.RawMessage `db:"checklist"`
	CompletionPercentage int             `db:"completion_percentage"`
	Position             int             `db:"position"`
	CreatedAt            time.Time       `db:"created_at"`
	UpdatedAt            time.Time       `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (domain.Task, error) {
	var row taskRow
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE id = ?", selectTaskColumns)
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRow(row)
}

func (r *TaskRepository) ListByBoard(ctx context.Context, boardID string) ([]domain.Task, error) {
	var rows []taskRow
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE board_id = ? ORDER BY column_id, position", selectTaskColumns)
	if err := r.db.SelectContext(ctx, &rows, query, boardID); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := mapTaskRow(row)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) error {
	return insertTask(ctx, r.db, task)
}

func (r *TaskRepository) Update(ctx context.Context, task domain.Task) error {
	deps, checklist, err := marshalTaskJSON(task)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, `
UPDATE tasks SET
  board_id = ?, column_id = ?, code = ?, title = ?, description = ?,
  task_type = ?, start_date = ?, due_date = ?, completed_at = ?,
  dependencies = ?, checklist = ?, completion_percentage = ?, position = ?,
  updated_at = ?
WHERE id = ?`,
		task.BoardID, task.ColumnID, nullString(task.Code), task.Title, task.Description,
		string(task.TaskType), task.StartDate, task.DueDate, task.CompletedAt,
		deps, checklist, task.CompletionPercentage, task.Order,
		task.UpdatedAt, task.ID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// RowsAffected is also 0 for no-op updates; confirm existence.
		var exists int
		if err := r.db.GetContext(ctx, &exists, "SELECT COUNT(*) FROM tasks WHERE id = ?", task.ID); err != nil {
			return err
		}
		if exists == 0 {
			return domain.ErrTaskNotFound
		}
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertTask(ctx context.Context, e execer, task domain.Task) error {
	deps, checklist, err := marshalTaskJSON(task)
	if err != nil {
		return err
	}

	_, err = e.ExecContext(ctx, `
INSERT INTO tasks (
  id, board_id, column_id, code, title, description, task_type,
  start_date, due_date, completed_at, dependencies, checklist,
  completion_percentage, position, created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.BoardID, task.ColumnID, nullString(task.Code), task.Title, task.Description,
		string(task.TaskType), task.StartDate, task.DueDate, task.CompletedAt,
		deps, checklist, task.CompletionPercentage, task.Order,
		task.CreatedAt, task.UpdatedAt,
	)
	return err
}

func marshalTaskJSON(task domain.Task) ([]byte, []byte, error) {
	deps, err := json.Marshal(emptyIfNilDeps(task.Dependencies))
	if err != nil {
		return nil, nil, fmt.Errorf("marshal dependencies: %w", err)
	}
	checklist, err := json.Marshal(emptyIfNilChecklist(task.Checklist))
	if err != nil {
		return nil, nil, fmt.Errorf("marshal checklist: %w", err)
	}
	return deps, checklist, nil
}

func mapTaskRow(row taskRow) (domain.Task, error) {
	task := domain.Task{
		ID:                   row.ID,
		BoardID:              row.BoardID,
		ColumnID:             row.ColumnID,
		Title:                row.Title,
		TaskType:             domain.TaskType(row.TaskType),
		CompletionPercentage: row.CompletionPercentage,
		Order:                row.Position,
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            row.UpdatedAt,
	}

	if row.Code.Valid {
		task.Code = row.Code.String
	}
	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}
	if row.StartDate.Valid {
		value := row.StartDate.Time
		task.StartDate = &value
	}
	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}
	if row.CompletedAt.Valid {
		value := row.CompletedAt.Time
		task.CompletedAt = &value
	}

	if len(row.Dependencies) > 0 {
		if err := json.Unmarshal(row.Dependencies, &task.Dependencies); err != nil {
			return domain.Task{}, fmt.Errorf("unmarshal dependencies of task %s: %w", row.ID, err)
		}
	}
	if len(row.Checklist) > 0 {
		if err := json.Unmarshal(row.Checklist, &task.Checklist); err != nil {
			return domain.Task{}, fmt.Errorf("unmarshal checklist of task %s: %w", row.ID, err)
		}
	}
	return task, nil
}

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

func emptyIfNilDeps(deps []domain.Dependency) []domain.Dependency {
	if deps == nil {
		return []domain.Dependency{}
	}
	return deps
}

func emptyIfNilChecklist(items []domain.ChecklistItem) []domain.ChecklistItem {
	if items == nil {
		return []domain.ChecklistItem{}
	}
	return items
}
