package model

import (
	"strings"
	"time"
)

// Status is the lifecycle state of a todo.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// ParseStatus maps a status string to a Status. Unrecognized or empty input
// falls back to PENDING; callers rely on this never failing.
func ParseStatus(s string) Status {
	switch Status(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending
	case StatusInProgress:
		return StatusInProgress
	case StatusCompleted:
		return StatusCompleted
	default:
		return StatusPending
	}
}

// SearchType selects which todo fields a search matches against.
type SearchType string

const (
	SearchAll         SearchType = "ALL"
	SearchTitle       SearchType = "TITLE"
	SearchDescription SearchType = "DESCRIPTION"
)

// ParseSearchType maps a search type string to a SearchType. Unrecognized or
// empty input falls back to ALL; callers rely on this never failing.
func ParseSearchType(s string) SearchType {
	switch SearchType(strings.ToUpper(strings.TrimSpace(s))) {
	case SearchAll:
		return SearchAll
	case SearchTitle:
		return SearchTitle
	case SearchDescription:
		return SearchDescription
	default:
		return SearchAll
	}
}

// Todo represents a todo item. UserID is the owning account and is set from
// the authenticated identity, never from request input.
type Todo struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TodoCreateRequest represents a todo creation request.
type TodoCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// TodoModifyRequest represents a partial todo update. Blank title or
// description leave the stored value untouched. Status is a pointer so an
// omitted field can be told apart from a present one: when present it is
// always applied, even when tolerant parsing falls back to the default.
type TodoModifyRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      *string `json:"status"`
}

// PageSize is the fixed page size for todo lists and searches.
const PageSize = 10

// TodoPage is a single page of todos plus paging metadata.
type TodoPage struct {
	Content       []Todo `json:"content"`
	Page          int    `json:"page"`
	Size          int    `json:"size"`
	TotalElements int64  `json:"totalElements"`
	TotalPages    int    `json:"totalPages"`
}

// NewTodoPage assembles a TodoPage from a result slice and a total count.
func NewTodoPage(todos []Todo, page int, total int64) TodoPage {
	if todos == nil {
		todos = []Todo{}
	}
	totalPages := int((total + PageSize - 1) / PageSize)
	return TodoPage{
		Content:       todos,
		Page:          page,
		Size:          PageSize,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}
