package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/taskdeck/taskdeck-go/internal/middleware"
	"github.com/taskdeck/taskdeck-go/internal/model"
	"github.com/taskdeck/taskdeck-go/internal/service"
)

// TodoHandler handles HTTP requests for todo operations. Every route sits
// behind the auth middleware, so the caller identity is always in context.
type TodoHandler struct {
	service *service.TodoService
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{service: svc}
}

// HandleCreate handles POST /todos requests.
func (h *TodoHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeErrorStatus(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req model.TodoCreateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	todo, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		writeError(w, err)
		return
	}

	respond(w, http.StatusOK, "todo created", todo)
}

// HandleList handles GET /todos requests.
func (h *TodoHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeErrorStatus(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	page, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	message := "todo list retrieved"
	if len(page.Content) == 0 {
		message = "no todos found"
	}
	respond(w, http.StatusOK, message, page)
}

// HandleGet handles GET /todos/{id} requests.
func (h *TodoHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeErrorStatus(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, ok := todoID(w, r)
	if !ok {
		return
	}

	todo, err := h.service.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	respond(w, http.StatusOK, "todo retrieved", todo)
}

// HandleModify handles PUT /todos/{id} requests.
func (h *TodoHandler) HandleModify(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeErrorStatus(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, ok := todoID(w, r)
	if !ok {
		return
	}

	var req model.TodoModifyRequest
	if !decodeBody(w, r, &req) {
		return
	}

	todo, err := h.service.Modify(r.Context(), userID, id, req)
	if err != nil {
		writeError(w, err)
		return
	}

	respond(w, http.StatusOK, "todo updated", todo)
}

// HandleDelete handles DELETE /todos/{id} requests.
func (h *TodoHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeErrorStatus(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, ok := todoID(w, r)
	if !ok {
		return
	}

	todo, err := h.service.Delete(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	respond(w, http.StatusOK, "todo deleted", todo)
}

// HandleSearch handles GET /todos/search requests. searchWord is required;
// searchType is optional and falls back to searching both fields.
func (h *TodoHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeErrorStatus(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	query := r.URL.Query()
	if !query.Has("searchWord") {
		writeErrorStatus(w, http.StatusBadRequest, "searchWord is required")
		return
	}

	page, err := h.service.Search(r.Context(), userID, query.Get("searchType"), query.Get("searchWord"))
	if err != nil {
		writeError(w, err)
		return
	}

	message := "todo search results"
	if len(page.Content) == 0 {
		message = "no todos found"
	}
	respond(w, http.StatusOK, message, page)
}

func todoID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeErrorStatus(w, http.StatusBadRequest, "invalid todo id")
		return 0, false
	}
	return id, true
}
