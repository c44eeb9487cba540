package service

// In-memory UserStore and TodoStore fakes. They mirror the repository
// contracts closely enough for service-level tests: sentinel errors,
// id-descending ordering, paging and substring search.

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/taskdeck/taskdeck-go/internal/model"
	"github.com/taskdeck/taskdeck-go/internal/repository"
)

type memUserStore struct {
	users map[string]model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]model.User)}
}

func (s *memUserStore) Create(_ context.Context, user *model.User) error {
	if _, ok := s.users[user.UserID]; ok {
		return repository.ErrDuplicateUserID
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.UserID] = *user
	return nil
}

func (s *memUserStore) GetByUserID(_ context.Context, userID string) (*model.User, error) {
	user, ok := s.users[userID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &user, nil
}

func (s *memUserStore) Update(_ context.Context, user *model.User) error {
	if _, ok := s.users[user.UserID]; !ok {
		return repository.ErrUserNotFound
	}
	user.UpdatedAt = time.Now()
	s.users[user.UserID] = *user
	return nil
}

func (s *memUserStore) Delete(_ context.Context, userID string) error {
	if _, ok := s.users[userID]; !ok {
		return repository.ErrUserNotFound
	}
	delete(s.users, userID)
	return nil
}

type memTodoStore struct {
	nextID int64
	todos  map[int64]model.Todo
}

func newMemTodoStore() *memTodoStore {
	return &memTodoStore{todos: make(map[int64]model.Todo)}
}

func (s *memTodoStore) Create(_ context.Context, todo *model.Todo) error {
	s.nextID++
	now := time.Now()
	todo.ID = s.nextID
	todo.CreatedAt = now
	todo.UpdatedAt = now
	s.todos[todo.ID] = *todo
	return nil
}

func (s *memTodoStore) GetByIDAndUser(_ context.Context, id int64, userID string) (*model.Todo, error) {
	todo, ok := s.todos[id]
	if !ok || todo.UserID != userID {
		return nil, repository.ErrTodoNotFound
	}
	return &todo, nil
}

func (s *memTodoStore) ListByUser(_ context.Context, userID string, page, size int) ([]model.Todo, int64, error) {
	matched := s.owned(userID, func(model.Todo) bool { return true })
	return paginate(matched, page, size), int64(len(matched)), nil
}

func (s *memTodoStore) Update(_ context.Context, todo *model.Todo) error {
	existing, ok := s.todos[todo.ID]
	if !ok || existing.UserID != todo.UserID {
		return repository.ErrTodoNotFound
	}
	todo.UpdatedAt = time.Now()
	s.todos[todo.ID] = *todo
	return nil
}

func (s *memTodoStore) DeleteByIDAndUser(_ context.Context, id int64, userID string) error {
	todo, ok := s.todos[id]
	if !ok || todo.UserID != userID {
		return repository.ErrTodoNotFound
	}
	delete(s.todos, id)
	return nil
}

func (s *memTodoStore) Search(_ context.Context, userID string, searchType model.SearchType, word string, page, size int) ([]model.Todo, int64, error) {
	matched := s.owned(userID, func(t model.Todo) bool {
		switch searchType {
		case model.SearchTitle:
			return strings.Contains(t.Title, word)
		case model.SearchDescription:
			return strings.Contains(t.Description, word)
		default:
			return strings.Contains(t.Title, word) || strings.Contains(t.Description, word)
		}
	})
	return paginate(matched, page, size), int64(len(matched)), nil
}

// owned returns the user's todos passing the filter, id descending.
func (s *memTodoStore) owned(userID string, keep func(model.Todo) bool) []model.Todo {
	var matched []model.Todo
	for _, t := range s.todos {
		if t.UserID == userID && keep(t) {
			matched = append(matched, t)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })
	return matched
}

func paginate(todos []model.Todo, page, size int) []model.Todo {
	start := page * size
	if start >= len(todos) {
		return nil
	}
	end := start + size
	if end > len(todos) {
		end = len(todos)
	}
	return todos[start:end]
}
