package domain

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrColumnNotFound  = errors.New("column not found")
	ErrBoardNotFound   = errors.New("board not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrDependencyCycle = errors.New("dependency cycle")
)
