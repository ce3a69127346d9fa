package mapper

import (
	"time"

	"planboard/internal/adapter/http/dto"
	"planboard/internal/core/domain"
)

func ToBoardItems(boards []domain.Board) []dto.BoardItem {
	items := make([]dto.BoardItem, 0, len(boards))
	for _, board := range boards {
		items = append(items, ToBoardItem(board))
	}
	return items
}

func ToBoardItem(board domain.Board) dto.BoardItem {
	item := dto.BoardItem{
		ID:          board.ID,
		Name:        board.Name,
		IsGlobal:    board.IsGlobal,
		ColumnIDs:   board.ColumnIDs,
		DefaultView: string(board.DefaultView),
		CreatedAt:   board.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   board.UpdatedAt.Format(time.RFC3339),
	}
	if item.ColumnIDs == nil {
		item.ColumnIDs = []string{}
	}

	if board.Projektnummer != nil {
		value := *board.Projektnummer
		item.Projektnummer = &value
	}

	return item
}

func ToColumnItems(columns []domain.Column) []dto.ColumnItem {
	items := make([]dto.ColumnItem, 0, len(columns))
	for _, column := range columns {
		items = append(items, ToColumnItem(column))
	}
	return items
}

func ToColumnItem(column domain.Column) dto.ColumnItem {
	item := dto.ColumnItem{
		ID:        column.ID,
		BoardID:   column.BoardID,
		Name:      column.Name,
		Order:     column.Order,
		TaskIDs:   column.TaskIDs,
		CreatedAt: column.CreatedAt.Format(time.RFC3339),
		UpdatedAt: column.UpdatedAt.Format(time.RFC3339),
	}
	if item.TaskIDs == nil {
		item.TaskIDs = []string{}
	}
	return item
}
