package repository

import (
	"testing"

	"github.com/taskdeck/taskdeck-go/internal/model"
)

func TestNewTodoRepository(t *testing.T) {
	repo := NewTodoRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil TodoRepository")
	}
}

func TestSearchWhere(t *testing.T) {
	tests := []struct {
		searchType model.SearchType
		wantArgs   int
	}{
		{model.SearchTitle, 2},
		{model.SearchDescription, 2},
		{model.SearchAll, 3},
	}

	for _, tt := range tests {
		where, args := searchWhere("user01", tt.searchType, "w")
		if len(args) != tt.wantArgs {
			t.Errorf("searchWhere(%s) args = %d, want %d", tt.searchType, len(args), tt.wantArgs)
		}
		if where == "" {
			t.Errorf("searchWhere(%s) returned empty clause", tt.searchType)
		}
		if args[0] != "user01" {
			t.Errorf("searchWhere(%s) first arg = %v, want owner id", tt.searchType, args[0])
		}
		if args[1] != "%w%" {
			t.Errorf("searchWhere(%s) pattern = %v, want %%w%%", tt.searchType, args[1])
		}
	}
}
