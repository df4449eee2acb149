package apitest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/travelplan/travelplan-go/internal/model"
)

// Handler returns the fake service's HTTP handler, rooted at /api.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	root := chi.NewRouter()
	root.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(rateLimit(s.authRPS, s.authBurst))
			r.Post("/auth/register", s.handleRegister)
			r.Post("/auth/login", s.handleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(bearerAuth)
			r.Get("/auth/profile", s.handleProfile)

			mountCollection(r, s, "/posts", http.MethodPut, false, s.posts,
				func(id, userID int64, ts string, in model.PostInput) model.Post {
					return model.Post{ID: id, Title: in.Title, Content: in.Content, CreatedAt: ts, UpdatedAt: ts}
				},
				func(item model.Post, ts string, in model.PostInput) model.Post {
					item.Title = in.Title
					item.Content = in.Content
					item.UpdatedAt = ts
					return item
				})

			mountCollection(r, s, "/budget", http.MethodPut, false, s.budget,
				func(id, userID int64, ts string, in model.BudgetInput) model.BudgetItem {
					return model.BudgetItem{ID: id, Category: in.Category, Quantity: in.Quantity, UnitCost: in.UnitCost, Description: in.Description}
				},
				func(item model.BudgetItem, ts string, in model.BudgetInput) model.BudgetItem {
					item.Category = in.Category
					item.Quantity = in.Quantity
					item.UnitCost = in.UnitCost
					item.Description = in.Description
					return item
				})

			mountCollection(r, s, "/packing", http.MethodPut, true, s.packing,
				func(id, userID int64, ts string, in model.PackingInput) model.PackingItem {
					return model.PackingItem{ID: id, Name: in.Name, Category: in.Category, Quantity: in.Quantity, IsPacked: in.IsPacked, UserID: userID, CreatedAt: ts, UpdatedAt: ts}
				},
				func(item model.PackingItem, ts string, in model.PackingInput) model.PackingItem {
					item.Name = in.Name
					item.Category = in.Category
					item.Quantity = in.Quantity
					item.IsPacked = in.IsPacked
					item.UpdatedAt = ts
					return item
				})

			mountCollection(r, s, "/itineraries", http.MethodPatch, false, s.itinerary,
				func(id, userID int64, ts string, in model.ItineraryInput) model.ItineraryItem {
					return model.ItineraryItem{ID: id, Title: in.Title, Description: in.Description, Location: in.Location, StartTime: in.StartTime, EndTime: in.EndTime, Date: in.Date, UserID: userID, CreatedAt: ts, UpdatedAt: ts}
				},
				func(item model.ItineraryItem, ts string, in model.ItineraryInput) model.ItineraryItem {
					item.Title = in.Title
					item.Description = in.Description
					item.Location = in.Location
					item.StartTime = in.StartTime
					item.EndTime = in.EndTime
					item.Date = in.Date
					item.UpdatedAt = ts
					return item
				})

			mountCollection(r, s, "/culinary", http.MethodPatch, false, s.culinary,
				func(id, userID int64, ts string, in model.CulinaryInput) model.CulinaryItem {
					return model.CulinaryItem{ID: id, Name: in.Name, Description: in.Description, Location: in.Location, PriceRange: in.PriceRange, CuisineType: in.CuisineType, Rating: in.Rating, Notes: in.Notes, UserID: userID, CreatedAt: ts, UpdatedAt: ts}
				},
				func(item model.CulinaryItem, ts string, in model.CulinaryInput) model.CulinaryItem {
					item.Name = in.Name
					item.Description = in.Description
					item.Location = in.Location
					item.PriceRange = in.PriceRange
					item.CuisineType = in.CuisineType
					item.Rating = in.Rating
					item.Notes = in.Notes
					item.UpdatedAt = ts
					return item
				})
		})
	})
	s.router = root
}
