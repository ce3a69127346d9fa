package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"planboard/internal/core/domain"
	"planboard/internal/core/ports"
	"planboard/internal/core/scheduling"
)

type BoardService struct {
	boards  ports.BoardRepository
	columns ports.ColumnRepository
	tasks   ports.TaskRepository
	events  ports.EventPublisher
	phases  []domain.PhaseTemplate
	now     func() time.Time
}

func NewBoardService(
	boards ports.BoardRepository,
	columns ports.ColumnRepository,
	tasks ports.TaskRepository,
	events ports.EventPublisher,
) *BoardService {
	return &BoardService{
		boards:  boards,
		columns: columns,
		tasks:   tasks,
		events:  events,
		phases:  domain.DefaultProjectPhases,
		now:     time.Now,
	}
}

var _ ports.BoardService = (*BoardService)(nil)

func (s *BoardService) CreateBoard(ctx context.Context, input domain.CreateBoardInput) (domain.Board, error) {
	now := s.now()
	board := domain.Board{
		ID:            uuid.NewString(),
		Name:          input.Name,
		IsGlobal:      input.IsGlobal,
		Projektnummer: input.Projektnummer,
		DefaultView:   input.DefaultView,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if board.DefaultView == "" {
		board.DefaultView = domain.BoardViewKanban
	}

	var columns []domain.Column
	var tasks []domain.Task
	if board.IsGlobal || input.Projektnummer == nil {
		columns = s.defaultColumns(board.ID, now)
	} else {
		columns, tasks = s.instantiateTemplate(board.ID, now)
	}
	for _, c := range columns {
		board.ColumnIDs = append(board.ColumnIDs, c.ID)
	}

	if err := s.boards.CreateWithContents(ctx, board, columns, tasks); err != nil {
		return domain.Board{}, fmt.Errorf("create board: %w", err)
	}

	s.publish(domain.EventBoardCreated, board.ID, board)
	return board, nil
}

func (s *BoardService) defaultColumns(boardID string, now time.Time) []domain.Column {
	columns := make([]domain.Column, 0, len(domain.DefaultGlobalColumns))
	for i, name := range domain.DefaultGlobalColumns {
		columns = append(columns, domain.Column{
			ID:        uuid.NewString(),
			BoardID:   boardID,
			Name:      name,
			Order:     i,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return columns
}

// instantiateTemplate builds one column per phase and one task per template
// entry. Task ids are generated in a first pass that also records the
// code-to-id map; dependencies are resolved in a second pass, so template
// entries may reference codes from any phase, earlier or later.
func (s *BoardService) instantiateTemplate(boardID string, now time.Time) ([]domain.Column, []domain.Task) {
	anchor := scheduling.TruncateDay(now)

	var columns []domain.Column
	var tasks []domain.Task
	codeToID := make(map[string]string)

	for phaseIdx, phase := range s.phases {
		column := domain.Column{
			ID:        uuid.NewString(),
			BoardID:   boardID,
			Name:      phase.Name,
			Order:     phaseIdx,
			CreatedAt: now,
			UpdatedAt: now,
		}

		for taskIdx, tpl := range phase.Tasks {
			start := scheduling.AddDays(anchor, tpl.StartOffsetDays)
			due := start
			if tpl.Type != domain.TaskTypeMilestone {
				due = scheduling.AddDays(start, tpl.DurationDays)
			}

			task := domain.Task{
				ID:        uuid.NewString(),
				Code:      tpl.Code,
				Title:     tpl.Title,
				TaskType:  tpl.Type,
				StartDate: &start,
				DueDate:   &due,
				ColumnID:  column.ID,
				BoardID:   boardID,
				Order:     taskIdx,
				CreatedAt: now,
				UpdatedAt: now,
			}
			codeToID[tpl.Code] = task.ID
			column.TaskIDs = append(column.TaskIDs, task.ID)
			tasks = append(tasks, task)
		}
		columns = append(columns, column)
	}

	// Second pass: template dependencies persist the generated ids, not the
	// codes they were written with.
	taskIdx := 0
	for _, phase := range s.phases {
		for _, tpl := range phase.Tasks {
			for _, code := range tpl.PredecessorCodes {
				predID, ok := codeToID[code]
				if !ok {
					continue
				}
				tasks[taskIdx].Dependencies = append(tasks[taskIdx].Dependencies, domain.Dependency{
					PredecessorRef: predID,
					Type:           domain.DependencyFinishToStart,
				})
			}
			taskIdx++
		}
	}

	return columns, tasks
}

func (s *BoardService) GetBoard(ctx context.Context, id string) (domain.Board, error) {
	return s.boards.GetByID(ctx, id)
}

func (s *BoardService) ListBoards(ctx context.Context) ([]domain.Board, error) {
	return s.boards.List(ctx)
}

func (s *BoardService) UpdateBoard(ctx context.Context, id string, input domain.UpdateBoardInput) (domain.Board, error) {
	board, err := s.boards.GetByID(ctx, id)
	if err != nil {
		return domain.Board{}, fmt.Errorf("load board %s: %w", id, err)
	}

	if input.Name != nil {
		board.Name = *input.Name
	}
	if input.DefaultView != nil {
		board.DefaultView = *input.DefaultView
	}
	board.UpdatedAt = s.now()

	if err := s.boards.Update(ctx, board); err != nil {
		return domain.Board{}, fmt.Errorf("update board %s: %w", id, err)
	}

	s.publish(domain.EventBoardUpdated, board.ID, board)
	return board, nil
}

func (s *BoardService) DeleteBoard(ctx context.Context, id string) error {
	if _, err := s.boards.GetByID(ctx, id); err != nil {
		return fmt.Errorf("load board %s: %w", id, err)
	}
	if err := s.boards.DeleteCascade(ctx, id); err != nil {
		return fmt.Errorf("delete board %s: %w", id, err)
	}
	s.publish(domain.EventBoardDeleted, id, map[string]string{"id": id})
	return nil
}

func (s *BoardService) CreateColumn(ctx context.Context, boardID string, input domain.CreateColumnInput) (domain.Column, error) {
	board, err := s.boards.GetByID(ctx, boardID)
	if err != nil {
		return domain.Column{}, fmt.Errorf("load board %s: %w", boardID, err)
	}

	now := s.now()
	column := domain.Column{
		ID:        uuid.NewString(),
		BoardID:   boardID,
		Name:      input.Name,
		Order:     len(board.ColumnIDs),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.columns.Create(ctx, column); err != nil {
		return domain.Column{}, fmt.Errorf("create column: %w", err)
	}

	board.ColumnIDs = append(board.ColumnIDs, column.ID)
	board.UpdatedAt = now
	if err := s.boards.Update(ctx, board); err != nil {
		return domain.Column{}, fmt.Errorf("attach column to board %s: %w", boardID, err)
	}

	s.publish(domain.EventColumnCreated, boardID, column)
	return column, nil
}

func (s *BoardService) UpdateColumn(ctx context.Context, id string, input domain.UpdateColumnInput) (domain.Column, error) {
	column, err := s.columns.GetByID(ctx, id)
	if err != nil {
		return domain.Column{}, fmt.Errorf("load column %s: %w", id, err)
	}

	if input.Name != nil {
		column.Name = *input.Name
	}
	column.UpdatedAt = s.now()

	if err := s.columns.Update(ctx, column); err != nil {
		return domain.Column{}, fmt.Errorf("update column %s: %w", id, err)
	}

	s.publish(domain.EventColumnUpdated, column.BoardID, column)
	return column, nil
}

// ReorderColumns replaces the board's column list wholesale and rewrites
// each column's order to its new list position.
func (s *BoardService) ReorderColumns(ctx context.Context, boardID string, columnIDs []string) error {
	board, err := s.boards.GetByID(ctx, boardID)
	if err != nil {
		return fmt.Errorf("load board %s: %w", boardID, err)
	}

	board.ColumnIDs = columnIDs
	board.UpdatedAt = s.now()
	if err := s.boards.Update(ctx, board); err != nil {
		return fmt.Errorf("update board %s: %w", boardID, err)
	}

	for position, columnID := range columnIDs {
		column, err := s.columns.GetByID(ctx, columnID)
		if err != nil {
			return fmt.Errorf("load column %s: %w", columnID, err)
		}
		if column.Order == position {
			continue
		}
		column.Order = position
		if err := s.columns.Update(ctx, column); err != nil {
			return fmt.Errorf("reorder column %s: %w", columnID, err)
		}
	}

	s.publish(domain.EventBoardUpdated, boardID, board)
	return nil
}

func (s *BoardService) DeleteColumn(ctx context.Context, id string, migrateTo *string) error {
	column, err := s.columns.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load column %s: %w", id, err)
	}
	board, err := s.boards.GetByID(ctx, column.BoardID)
	if err != nil {
		return fmt.Errorf("load board %s: %w", column.BoardID, err)
	}

	if migrateTo != nil {
		if err := s.migrateTasks(ctx, column, *migrateTo); err != nil {
			return err
		}
	}
	// With tasks migrated away the cascade only removes the column row.
	if err := s.columns.DeleteCascade(ctx, id); err != nil {
		return fmt.Errorf("delete column %s: %w", id, err)
	}

	board.ColumnIDs = remove(board.ColumnIDs, id)
	board.UpdatedAt = s.now()
	if err := s.boards.Update(ctx, board); err != nil {
		return fmt.Errorf("detach column from board %s: %w", board.ID, err)
	}
	for position, columnID := range board.ColumnIDs {
		c, err := s.columns.GetByID(ctx, columnID)
		if err != nil {
			return fmt.Errorf("load column %s: %w", columnID, err)
		}
		if c.Order == position {
			continue
		}
		c.Order = position
		if err := s.columns.Update(ctx, c); err != nil {
			return fmt.Errorf("reorder column %s: %w", columnID, err)
		}
	}

	s.publish(domain.EventColumnDeleted, board.ID, map[string]string{"id": id})
	return nil
}

// migrateTasks appends the column's tasks to the target column and empties
// the source so the following cascade deletes no task rows.
func (s *BoardService) migrateTasks(ctx context.Context, source domain.Column, targetID string) error {
	target, err := s.columns.GetByID(ctx, targetID)
	if err != nil {
		return fmt.Errorf("load target column %s: %w", targetID, err)
	}

	offset := len(target.TaskIDs)
	for i, taskID := range source.TaskIDs {
		task, err := s.tasks.GetByID(ctx, taskID)
		if err != nil {
			return fmt.Errorf("load task %s: %w", taskID, err)
		}
		task.ColumnID = target.ID
		task.Order = offset + i
		task.UpdatedAt = s.now()
		if err := s.tasks.Update(ctx, task); err != nil {
			return fmt.Errorf("move task %s: %w", taskID, err)
		}
		target.TaskIDs = append(target.TaskIDs, taskID)
	}

	target.UpdatedAt = s.now()
	if err := s.columns.Update(ctx, target); err != nil {
		return fmt.Errorf("update target column %s: %w", targetID, err)
	}

	source.TaskIDs = nil
	if err := s.columns.Update(ctx, source); err != nil {
		return fmt.Errorf("empty source column %s: %w", source.ID, err)
	}
	return nil
}

func (s *BoardService) ListColumns(ctx context.Context, boardID string) ([]domain.Column, error) {
	if _, err := s.boards.GetByID(ctx, boardID); err != nil {
		return nil, fmt.Errorf("load board %s: %w", boardID, err)
	}
	return s.columns.ListByBoard(ctx, boardID)
}

func (s *BoardService) ListTasks(ctx context.Context, boardID string) ([]domain.Task, error) {
	if _, err := s.boards.GetByID(ctx, boardID); err != nil {
		return nil, fmt.Errorf("load board %s: %w", boardID, err)
	}
	return s.tasks.ListByBoard(ctx, boardID)
}

func (s *BoardService) publish(eventType domain.EventType, boardID string, payload any) {
	if s.events == nil {
		return
	}
	s.events.Publish(domain.Event{Type: eventType, BoardID: boardID, Payload: payload})
}
