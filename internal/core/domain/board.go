package domain

import "time"

type BoardView string

const (
	BoardViewKanban BoardView = "kanban"
	BoardViewGantt  BoardView = "gantt"
	BoardViewList   BoardView = "list"
)

type Board struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	IsGlobal      bool      `json:"is_global"`
	Projektnummer *string   `json:"projektnummer,omitempty"`
	ColumnIDs     []string  `json:"column_ids"`
	DefaultView   BoardView `json:"default_view"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Column mirrors its tasks twice: TaskIDs holds them in display order, and
// each task carries a matching ColumnID + Order. Both views must be written
// together on every move.
type Column struct {
	ID        string    `json:"id"`
	BoardID   string    `json:"board_id"`
	Name      string    `json:"name"`
	Order     int       `json:"order"`
	TaskIDs   []string  `json:"task_ids"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateBoardInput struct {
	Name          string
	IsGlobal      bool
	Projektnummer *string
	DefaultView   BoardView
}

type UpdateBoardInput struct {
	Name        *string
	DefaultView *BoardView
}

type CreateColumnInput struct {
	Name string
}

type UpdateColumnInput struct {
	Name *string
}

type Comment struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// DefaultGlobalColumns are the five fixed columns a global board starts with.
var DefaultGlobalColumns = []string{"Backlog", "To Do", "In Progress", "Review", "Done"}
