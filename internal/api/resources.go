package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/travelplan/travelplan-go/internal/model"
)

// Posts: GET/POST /posts, GET/PUT/DELETE /posts/{id}.

func (c *Client) ListPosts(ctx context.Context) ([]model.Post, error) {
	var items []model.Post
	err := c.do(ctx, http.MethodGet, "/posts", nil, &items)
	return items, err
}

func (c *Client) GetPost(ctx context.Context, id int64) (model.Post, error) {
	var item model.Post
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/posts/%d", id), nil, &item)
	return item, err
}

func (c *Client) CreatePost(ctx context.Context, in model.PostInput) (model.Post, error) {
	var item model.Post
	err := c.do(ctx, http.MethodPost, "/posts", in, &item)
	return item, err
}

func (c *Client) UpdatePost(ctx context.Context, id int64, in model.PostInput) (model.Post, error) {
	var item model.Post
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/posts/%d", id), in, &item)
	return item, err
}

func (c *Client) DeletePost(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/posts/%d", id), nil, nil)
}

// Budget: GET/POST /budget, GET/PUT/DELETE /budget/{id}.

func (c *Client) ListBudget(ctx context.Context) ([]model.BudgetItem, error) {
	var items []model.BudgetItem
	err := c.do(ctx, http.MethodGet, "/budget", nil, &items)
	return items, err
}

func (c *Client) GetBudgetItem(ctx context.Context, id int64) (model.BudgetItem, error) {
	var item model.BudgetItem
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/budget/%d", id), nil, &item)
	return item, err
}

func (c *Client) CreateBudgetItem(ctx context.Context, in model.BudgetInput) (model.BudgetItem, error) {
	var item model.BudgetItem
	err := c.do(ctx, http.MethodPost, "/budget", in, &item)
	return item, err
}

func (c *Client) UpdateBudgetItem(ctx context.Context, id int64, in model.BudgetInput) (model.BudgetItem, error) {
	var item model.BudgetItem
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/budget/%d", id), in, &item)
	return item, err
}

func (c *Client) DeleteBudgetItem(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/budget/%d", id), nil, nil)
}

// Packing: GET/POST /packing, GET/PUT/DELETE /packing/{id}. The packing
// endpoints wrap every payload in a {"data": ...} envelope.

type packingItemEnvelope struct {
	Data model.PackingItem `json:"data"`
}

type packingListEnvelope struct {
	Data []model.PackingItem `json:"data"`
}

func (c *Client) ListPacking(ctx context.Context) ([]model.PackingItem, error) {
	var env packingListEnvelope
	err := c.do(ctx, http.MethodGet, "/packing", nil, &env)
	return env.Data, err
}

func (c *Client) GetPackingItem(ctx context.Context, id int64) (model.PackingItem, error) {
	var env packingItemEnvelope
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/packing/%d", id), nil, &env)
	return env.Data, err
}

func (c *Client) CreatePackingItem(ctx context.Context, in model.PackingInput) (model.PackingItem, error) {
	var env packingItemEnvelope
	err := c.do(ctx, http.MethodPost, "/packing", in, &env)
	return env.Data, err
}

func (c *Client) UpdatePackingItem(ctx context.Context, id int64, in model.PackingInput) (model.PackingItem, error) {
	var env packingItemEnvelope
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/packing/%d", id), in, &env)
	return env.Data, err
}

func (c *Client) DeletePackingItem(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/packing/%d", id), nil, nil)
}

// Itinerary: GET/POST /itineraries, GET/PATCH/DELETE /itineraries/{id}.

func (c *Client) ListItinerary(ctx context.Context) ([]model.ItineraryItem, error) {
	var items []model.ItineraryItem
	err := c.do(ctx, http.MethodGet, "/itineraries", nil, &items)
	return items, err
}

func (c *Client) GetItineraryItem(ctx context.Context, id int64) (model.ItineraryItem, error) {
	var item model.ItineraryItem
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/itineraries/%d", id), nil, &item)
	return item, err
}

func (c *Client) CreateItineraryItem(ctx context.Context, in model.ItineraryInput) (model.ItineraryItem, error) {
	var item model.ItineraryItem
	err := c.do(ctx, http.MethodPost, "/itineraries", in, &item)
	return item, err
}

func (c *Client) UpdateItineraryItem(ctx context.Context, id int64, in model.ItineraryInput) (model.ItineraryItem, error) {
	var item model.ItineraryItem
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/itineraries/%d", id), in, &item)
	return item, err
}

func (c *Client) DeleteItineraryItem(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/itineraries/%d", id), nil, nil)
}

// Culinary: GET/POST /culinary, GET/PATCH/DELETE /culinary/{id}.

func (c *Client) ListCulinary(ctx context.Context) ([]model.CulinaryItem, error) {
	var items []model.CulinaryItem
	err := c.do(ctx, http.MethodGet, "/culinary", nil, &items)
	return items, err
}

func (c *Client) GetCulinaryItem(ctx context.Context, id int64) (model.CulinaryItem, error) {
	var item model.CulinaryItem
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/culinary/%d", id), nil, &item)
	return item, err
}

func (c *Client) CreateCulinaryItem(ctx context.Context, in model.CulinaryInput) (model.CulinaryItem, error) {
	var item model.CulinaryItem
	err := c.do(ctx, http.MethodPost, "/culinary", in, &item)
	return item, err
}

func (c *Client) UpdateCulinaryItem(ctx context.Context, id int64, in model.CulinaryInput) (model.CulinaryItem, error) {
	var item model.CulinaryItem
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/culinary/%d", id), in, &item)
	return item, err
}

func (c *Client) DeleteCulinaryItem(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/culinary/%d", id), nil, nil)
}
