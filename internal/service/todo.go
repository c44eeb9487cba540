package service

import (
	"context"
	"strings"

	"github.com/taskdeck/taskdeck-go/internal/model"
)

// TodoStore is the persistence surface the todo service needs.
// *repository.TodoRepository satisfies it; tests substitute an in-memory fake.
type TodoStore interface {
	Create(ctx context.Context, todo *model.Todo) error
	GetByIDAndUser(ctx context.Context, id int64, userID string) (*model.Todo, error)
	ListByUser(ctx context.Context, userID string, page, size int) ([]model.Todo, int64, error)
	Update(ctx context.Context, todo *model.Todo) error
	DeleteByIDAndUser(ctx context.Context, id int64, userID string) error
	Search(ctx context.Context, userID string, searchType model.SearchType, word string, page, size int) ([]model.Todo, int64, error)
}

// TodoService handles todo business logic. The authenticated user id is the
// implicit scope key of every operation: ownership comes from the verified
// identity, never from request input, and a todo owned by someone else is
// reported exactly like a todo that does not exist.
type TodoService struct {
	repo TodoStore
}

// NewTodoService creates a new TodoService.
func NewTodoService(repo TodoStore) *TodoService {
	return &TodoService{repo: repo}
}

// Create registers a new todo owned by the caller. The status string is
// parsed tolerantly: missing or unrecognized values become PENDING.
func (s *TodoService) Create(ctx context.Context, userID string, req model.TodoCreateRequest) (*model.Todo, error) {
	todo := &model.Todo{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      model.ParseStatus(req.Status),
	}

	if err := s.repo.Create(ctx, todo); err != nil {
		return nil, err
	}

	return todo, nil
}

// List returns the first page of the caller's todos, most recently created
// first. Page and size are fixed by the current contract.
func (s *TodoService) List(ctx context.Context, userID string) (model.TodoPage, error) {
	todos, total, err := s.repo.ListByUser(ctx, userID, 0, model.PageSize)
	if err != nil {
		return model.TodoPage{}, err
	}

	return model.NewTodoPage(todos, 0, total), nil
}

// Get retrieves one of the caller's todos by id.
func (s *TodoService) Get(ctx context.Context, userID string, id int64) (*model.Todo, error) {
	return s.repo.GetByIDAndUser(ctx, id, userID)
}

// Modify partially updates one of the caller's todos. Blank title or
// description leave the stored value untouched; a present status field is
// always applied, including when tolerant parsing falls back to PENDING.
func (s *TodoService) Modify(ctx context.Context, userID string, id int64, req model.TodoModifyRequest) (*model.Todo, error) {
	todo, err := s.repo.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Title) != "" {
		todo.Title = req.Title
	}
	if strings.TrimSpace(req.Description) != "" {
		todo.Description = req.Description
	}
	if req.Status != nil {
		todo.Status = model.ParseStatus(*req.Status)
	}

	if err := s.repo.Update(ctx, todo); err != nil {
		return nil, err
	}

	return todo, nil
}

// Delete removes one of the caller's todos and returns the pre-delete
// snapshot. The ownership-checked fetch guarantees the delete statement only
// ever targets the caller's own row.
func (s *TodoService) Delete(ctx context.Context, userID string, id int64) (*model.Todo, error) {
	todo, err := s.repo.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeleteByIDAndUser(ctx, id, userID); err != nil {
		return nil, err
	}

	return todo, nil
}

// Search returns the first page of the caller's todos containing the search
// word. The search type is parsed tolerantly: blank or unrecognized values
// search both title and description.
func (s *TodoService) Search(ctx context.Context, userID, searchType, searchWord string) (model.TodoPage, error) {
	st := model.ParseSearchType(searchType)

	todos, total, err := s.repo.Search(ctx, userID, st, searchWord, 0, model.PageSize)
	if err != nil {
		return model.TodoPage{}, err
	}

	return model.NewTodoPage(todos, 0, total), nil
}
