// Package apitest is an in-process, in-memory fake of the travel-planner
// REST service. It implements the wire contract the client depends on
// (bearer-token auth, per-user collections, the packing data envelope) so
// package tests can run against a live HTTP surface without a real backend.
package apitest

import (
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/travelplan/travelplan-go/internal/crypto"
	"github.com/travelplan/travelplan-go/internal/model"
)

const (
	tokenSecret = "apitest-secret"
	tokenExpiry = time.Hour
)

// Server holds the fake service's state. All storage is in-memory; every
// test starts clean.
type Server struct {
	mu     sync.Mutex
	nextID int64

	users        map[int64]*userRecord
	usersByEmail map[string]int64

	posts     map[int64]map[int64]model.Post
	budget    map[int64]map[int64]model.BudgetItem
	packing   map[int64]map[int64]model.PackingItem
	itinerary map[int64]map[int64]model.ItineraryItem
	culinary  map[int64]map[int64]model.CulinaryItem

	router      chi.Router
	authRPS     float64
	authBurst   int
	tokenExpiry time.Duration
}

type userRecord struct {
	user model.User
	hash []byte
}

// Option configures the fake service.
type Option func(*Server)

// WithAuthRateLimit overrides the auth-route limiter. The default is
// generous enough that tests never trip it; tighten it to exercise 429
// handling.
func WithAuthRateLimit(rps float64, burst int) Option {
	return func(s *Server) {
		s.authRPS = rps
		s.authBurst = burst
	}
}

// WithTokenExpiry overrides how long minted tokens live. Useful for
// exercising the expired-session path.
func WithTokenExpiry(d time.Duration) Option {
	return func(s *Server) {
		s.tokenExpiry = d
	}
}

// NewServer creates an empty fake service.
func NewServer(opts ...Option) *Server {
	s := &Server{
		users:        make(map[int64]*userRecord),
		usersByEmail: make(map[string]int64),
		posts:        make(map[int64]map[int64]model.Post),
		budget:       make(map[int64]map[int64]model.BudgetItem),
		packing:      make(map[int64]map[int64]model.PackingItem),
		itinerary:    make(map[int64]map[int64]model.ItineraryItem),
		culinary:     make(map[int64]map[int64]model.CulinaryItem),
		authRPS:      100,
		authBurst:    100,
		tokenExpiry:  tokenExpiry,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	return s
}

func (s *Server) allocID() int64 {
	s.nextID++
	return s.nextID
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// SeedUser creates an account directly and returns its id, bypassing the
// registration endpoint.
func (s *Server) SeedUser(email, password, name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addUser(email, password, name)
}

// TokenFor mints a valid bearer token for an existing user.
func (s *Server) TokenFor(userID int64) string {
	token, err := crypto.GenerateToken(userID, tokenSecret, s.tokenExpiry)
	if err != nil {
		panic(err)
	}
	return token
}
