package apitest

import (
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/travelplan/travelplan-go/internal/model"
)

// addUser creates an account record. Caller holds s.mu. bcrypt.MinCost keeps
// the test double fast; nothing here guards real credentials.
func (s *Server) addUser(email, password, name string) int64 {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	id := s.allocID()
	ts := now()
	s.users[id] = &userRecord{
		user: model.User{ID: id, Username: name, Email: email, CreatedAt: ts, UpdatedAt: ts},
		hash: hash,
	}
	s.usersByEmail[email] = id
	return id
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}
	if req.Email == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("email is required"))
		return
	}
	if req.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("password is required"))
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("name is required"))
		return
	}

	s.mu.Lock()
	if _, taken := s.usersByEmail[req.Email]; taken {
		s.mu.Unlock()
		writeJSON(w, http.StatusConflict, errorResponse("email already taken"))
		return
	}
	id := s.addUser(req.Email, req.Password, req.Name)
	user := s.users[id].user
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, model.AuthResponse{Token: s.TokenFor(id), User: user})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	s.mu.Lock()
	id, ok := s.usersByEmail[req.Email]
	var rec *userRecord
	if ok {
		rec = s.users[id]
	}
	s.mu.Unlock()

	if rec == nil || bcrypt.CompareHashAndPassword(rec.hash, []byte(req.Password)) != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse("invalid email or password"))
		return
	}

	writeJSON(w, http.StatusOK, model.AuthResponse{Token: s.TokenFor(id), User: rec.user})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	s.mu.Lock()
	rec := s.users[userID]
	s.mu.Unlock()

	if rec == nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unknown user"))
		return
	}
	writeJSON(w, http.StatusOK, rec.user)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
