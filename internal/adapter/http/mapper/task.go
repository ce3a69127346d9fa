package mapper

import (
	"time"

	"planboard/internal/adapter/http/dto"
	"planboard/internal/core/domain"
)

const dateLayout = "2006-01-02"

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:                   task.ID,
		Code:                 task.Code,
		Title:                task.Title,
		TaskType:             string(task.TaskType),
		CompletionPercentage: task.CompletionPercentage,
		ColumnID:             task.ColumnID,
		BoardID:              task.BoardID,
		Order:                task.Order,
		CreatedAt:            task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.StartDate != nil {
		value := task.StartDate.Format(dateLayout)
		item.StartDate = &value
	}

	if task.DueDate != nil {
		value := task.DueDate.Format(dateLayout)
		item.DueDate = &value
	}

	if task.CompletedAt != nil {
		value := task.CompletedAt.Format(dateLayout)
		item.CompletedAt = &value
	}

	if len(task.Dependencies) > 0 {
		item.Dependencies = make([]dto.DependencyItem, 0, len(task.Dependencies))
		for _, dep := range task.Dependencies {
			item.Dependencies = append(item.Dependencies, dto.DependencyItem{
				PredecessorID: dep.PredecessorRef,
				Type:          string(dep.Type),
				LagDays:       dep.LagDays,
			})
		}
	}

	if len(task.Checklist) > 0 {
		item.Checklist = make([]dto.ChecklistEntry, 0, len(task.Checklist))
		for _, entry := range task.Checklist {
			item.Checklist = append(item.Checklist, dto.ChecklistEntry{
				ID:    entry.ID,
				Title: entry.Title,
				Done:  entry.Done,
			})
		}
	}

	return item
}

func ToCommentItems(comments []domain.Comment) []dto.CommentItem {
	items := make([]dto.CommentItem, 0, len(comments))
	for _, comment := range comments {
		items = append(items, ToCommentItem(comment))
	}
	return items
}

func ToCommentItem(comment domain.Comment) dto.CommentItem {
	return dto.CommentItem{
		ID:        comment.ID,
		TaskID:    comment.TaskID,
		Author:    comment.Author,
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
	}
}
