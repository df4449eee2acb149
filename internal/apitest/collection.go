package apitest

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// envelope wraps packing payloads the way the production service does.
type envelope struct {
	Data any `json:"data"`
}

// mountCollection wires the standard five CRUD routes for one per-user
// collection of T mutated by inputs of type I. build constructs a new item
// from an input; apply folds an input into an existing item.
func mountCollection[T any, I any](
	r chi.Router,
	s *Server,
	path string,
	updateMethod string,
	wrapped bool,
	rows map[int64]map[int64]T,
	build func(id, userID int64, ts string, in I) T,
	apply func(item T, ts string, in I) T,
) {
	respond := func(w http.ResponseWriter, status int, v any) {
		if wrapped {
			writeJSON(w, status, envelope{Data: v})
			return
		}
		writeJSON(w, status, v)
	}

	userRows := func(userID int64) map[int64]T {
		m, ok := rows[userID]
		if !ok {
			m = make(map[int64]T)
			rows[userID] = m
		}
		return m
	}

	itemID := func(r *http.Request) (int64, bool) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		return id, err == nil && id > 0
	}

	r.Get(path, func(w http.ResponseWriter, r *http.Request) {
		userID, _ := userIDFromContext(r.Context())

		s.mu.Lock()
		m := userRows(userID)
		ids := make([]int64, 0, len(m))
		for id := range m {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		items := make([]T, 0, len(ids))
		for _, id := range ids {
			items = append(items, m[id])
		}
		s.mu.Unlock()

		respond(w, http.StatusOK, items)
	})

	r.Post(path, func(w http.ResponseWriter, r *http.Request) {
		userID, _ := userIDFromContext(r.Context())

		var in I
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
			return
		}

		s.mu.Lock()
		id := s.allocID()
		item := build(id, userID, now(), in)
		userRows(userID)[id] = item
		s.mu.Unlock()

		respond(w, http.StatusCreated, item)
	})

	r.Get(path+"/{id}", func(w http.ResponseWriter, r *http.Request) {
		userID, _ := userIDFromContext(r.Context())
		id, ok := itemID(r)
		if !ok {
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid id"))
			return
		}

		s.mu.Lock()
		item, found := userRows(userID)[id]
		s.mu.Unlock()

		if !found {
			writeJSON(w, http.StatusNotFound, errorResponse("item not found"))
			return
		}
		respond(w, http.StatusOK, item)
	})

	r.MethodFunc(updateMethod, path+"/{id}", func(w http.ResponseWriter, r *http.Request) {
		userID, _ := userIDFromContext(r.Context())
		id, ok := itemID(r)
		if !ok {
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid id"))
			return
		}

		var in I
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
			return
		}

		s.mu.Lock()
		m := userRows(userID)
		item, found := m[id]
		if found {
			item = apply(item, now(), in)
			m[id] = item
		}
		s.mu.Unlock()

		if !found {
			writeJSON(w, http.StatusNotFound, errorResponse("item not found"))
			return
		}
		respond(w, http.StatusOK, item)
	})

	r.Delete(path+"/{id}", func(w http.ResponseWriter, r *http.Request) {
		userID, _ := userIDFromContext(r.Context())
		id, ok := itemID(r)
		if !ok {
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid id"))
			return
		}

		s.mu.Lock()
		m := userRows(userID)
		_, found := m[id]
		delete(m, id)
		s.mu.Unlock()

		if !found {
			writeJSON(w, http.StatusNotFound, errorResponse("item not found"))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}
