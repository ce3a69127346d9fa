package domain

type EventType string

const (
	EventTaskCreated    EventType = "task.created"
	EventTaskUpdated    EventType = "task.updated"
	EventTaskDeleted    EventType = "task.deleted"
	EventColumnCreated  EventType = "column.created"
	EventColumnUpdated  EventType = "column.updated"
	EventColumnDeleted  EventType = "column.deleted"
	EventBoardCreated   EventType = "board.created"
	EventBoardUpdated   EventType = "board.updated"
	EventBoardDeleted   EventType = "board.deleted"
	EventCommentCreated EventType = "comment.created"
)

// Event is pushed to live subscribers of the board it belongs to.
type Event struct {
	Type    EventType `json:"type"`
	BoardID string    `json:"board_id"`
	Payload any       `json:"data,omitempty"`
}
