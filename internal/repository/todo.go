package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/taskdeck/taskdeck-go/internal/model"
)

var ErrTodoNotFound = errors.New("todo not found")

// TodoRepository handles todo persistence operations. Every query is keyed
// by the owning user id, so a row belonging to another user is
// indistinguishable from a row that does not exist.
type TodoRepository struct {
	db *sql.DB
}

// NewTodoRepository creates a new TodoRepository.
func NewTodoRepository(db *sql.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

const todoColumns = `id, user_id, title, description, status, created_at, updated_at`

// Create inserts a new todo and sets the generated id and timestamps on the
// todo struct.
func (r *TodoRepository) Create(ctx context.Context, todo *model.Todo) error {
	query := `INSERT INTO todos (user_id, title, description, status) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		todo.UserID, todo.Title, todo.Description, string(todo.Status),
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	todo.ID = id

	return r.db.QueryRowContext(ctx,
		`SELECT created_at, updated_at FROM todos WHERE id = ?`, id,
	).Scan(&todo.CreatedAt, &todo.UpdatedAt)
}

// GetByIDAndUser retrieves a todo matching both id and owner.
func (r *TodoRepository) GetByIDAndUser(ctx context.Context, id int64, userID string) (*model.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = ? AND user_id = ?`

	todo := &model.Todo{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&todo.ID, &todo.UserID, &todo.Title, &todo.Description,
		&todo.Status, &todo.CreatedAt, &todo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTodoNotFound
		}
		return nil, err
	}

	return todo, nil
}

// ListByUser retrieves one page of a user's todos ordered by id descending,
// along with the total row count for page metadata.
func (r *TodoRepository) ListByUser(ctx context.Context, userID string, page, size int) ([]model.Todo, int64, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE user_id = ?
		ORDER BY id DESC LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, userID, size, page*size)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	todos, err := scanTodos(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM todos WHERE user_id = ?`, userID,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	return todos, total, nil
}

// Update overwrites a todo's mutable fields, keyed by (id, user_id).
func (r *TodoRepository) Update(ctx context.Context, todo *model.Todo) error {
	query := `UPDATE todos SET title = ?, description = ?, status = ?,
		updated_at = CURRENT_TIMESTAMP WHERE id = ? AND user_id = ?`

	if _, err := r.db.ExecContext(ctx, query,
		todo.Title, todo.Description, string(todo.Status), todo.ID, todo.UserID,
	); err != nil {
		return err
	}

	return r.db.QueryRowContext(ctx,
		`SELECT updated_at FROM todos WHERE id = ?`, todo.ID,
	).Scan(&todo.UpdatedAt)
}

// DeleteByIDAndUser removes a todo keyed by (id, user_id).
func (r *TodoRepository) DeleteByIDAndUser(ctx context.Context, id int64, userID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM todos WHERE id = ? AND user_id = ?`, id, userID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTodoNotFound
	}

	return nil
}

// Search retrieves one page of a user's todos whose title and/or description
// contain the search word, depending on the search type. Matching is a
// case-sensitive substring match, same ordering and paging as ListByUser.
func (r *TodoRepository) Search(ctx context.Context, userID string, searchType model.SearchType, word string, page, size int) ([]model.Todo, int64, error) {
	where, args := searchWhere(userID, searchType, word)

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+todoColumns+` FROM todos `+where+` ORDER BY id DESC LIMIT ? OFFSET ?`,
		append(args, size, page*size)...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	todos, err := scanTodos(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM todos `+where, args...,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	return todos, total, nil
}

func searchWhere(userID string, searchType model.SearchType, word string) (string, []any) {
	pattern := "%" + word + "%"
	switch searchType {
	case model.SearchTitle:
		return `WHERE user_id = ? AND title LIKE ? COLLATE utf8mb4_bin`,
			[]any{userID, pattern}
	case model.SearchDescription:
		return `WHERE user_id = ? AND description LIKE ? COLLATE utf8mb4_bin`,
			[]any{userID, pattern}
	default:
		return `WHERE user_id = ? AND (title LIKE ? COLLATE utf8mb4_bin OR description LIKE ? COLLATE utf8mb4_bin)`,
			[]any{userID, pattern, pattern}
	}
}

func scanTodos(rows *sql.Rows) ([]model.Todo, error) {
	var todos []model.Todo
	for rows.Next() {
		var t model.Todo
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Title, &t.Description,
			&t.Status, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}
