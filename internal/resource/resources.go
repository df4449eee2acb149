package resource

import (
	"context"
	"errors"

	"github.com/travelplan/travelplan-go/internal/api"
	"github.com/travelplan/travelplan-go/internal/cache"
	"github.com/travelplan/travelplan-go/internal/model"
)

// Cache tags, one per remote collection.
const (
	TagPosts     = "posts"
	TagBudget    = "budget"
	TagPacking   = "packing"
	TagItinerary = "itinerary"
	TagCulinary  = "culinary"
)

var (
	ErrItemNotFound = errors.New("item not found")
)

// Resources bundles the five collection synchronizers.
type Resources struct {
	Posts     *Collection[model.Post, model.PostInput]
	Budget    *Collection[model.BudgetItem, model.BudgetInput]
	Packing   *Collection[model.PackingItem, model.PackingInput]
	Itinerary *Collection[model.ItineraryItem, model.ItineraryInput]
	Culinary  *Collection[model.CulinaryItem, model.CulinaryInput]
}

// New wires every collection to its API calls and the shared cache.
func New(client *api.Client, store *cache.Store) *Resources {
	return &Resources{
		Posts: NewCollection(TagPosts, store,
			client.ListPosts, client.CreatePost, client.UpdatePost, client.DeletePost),
		Budget: NewCollection(TagBudget, store,
			client.ListBudget, client.CreateBudgetItem, client.UpdateBudgetItem, client.DeleteBudgetItem),
		Packing: NewCollection(TagPacking, store,
			client.ListPacking, client.CreatePackingItem, client.UpdatePackingItem, client.DeletePackingItem),
		Itinerary: NewCollection(TagItinerary, store,
			client.ListItinerary, client.CreateItineraryItem, client.UpdateItineraryItem, client.DeleteItineraryItem),
		Culinary: NewCollection(TagCulinary, store,
			client.ListCulinary, client.CreateCulinaryItem, client.UpdateCulinaryItem, client.DeleteCulinaryItem),
	}
}

// TogglePacked flips one packing item's packed flag, resubmitting every other
// field unchanged. Bypasses the edit form.
func (r *Resources) TogglePacked(ctx context.Context, id int64) (model.PackingItem, error) {
	items, err := r.Packing.List(ctx)
	if err != nil {
		return model.PackingItem{}, err
	}
	for _, item := range items {
		if item.ID != id {
			continue
		}
		return r.Packing.Update(ctx, id, model.PackingInput{
			Name:     item.Name,
			Category: item.Category,
			Quantity: item.Quantity,
			IsPacked: !item.IsPacked,
		})
	}
	return model.PackingItem{}, ErrItemNotFound
}
