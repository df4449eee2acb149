// Package view turns fetched collections into what the screens show:
// grouped, sorted, with derived values. Shaping is pure; rendering writes
// plain text.
package view

import (
	"sort"

	"github.com/travelplan/travelplan-go/internal/model"
)

// BudgetTotal is the sum of quantity x unit cost over all loaded items.
func BudgetTotal(items []model.BudgetItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Amount()
	}
	return total
}

// ItineraryDay is one date's activities, in ascending start-time order.
type ItineraryDay struct {
	Date  string
	Items []model.ItineraryItem
}

// GroupItinerary sorts activities ascending by date plus start time and
// groups them by date. The raw date string is the group key; items with an
// empty date end up in an empty-string group.
func GroupItinerary(items []model.ItineraryItem) []ItineraryDay {
	sorted := make([]model.ItineraryItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		a := sorted[i].Date + "T" + sorted[i].StartTime
		b := sorted[j].Date + "T" + sorted[j].StartTime
		return a < b
	})

	var days []ItineraryDay
	for _, item := range sorted {
		if n := len(days); n > 0 && days[n-1].Date == item.Date {
			days[n-1].Items = append(days[n-1].Items, item)
			continue
		}
		days = append(days, ItineraryDay{Date: item.Date, Items: []model.ItineraryItem{item}})
	}
	return days
}

// CuisineGroup is one cuisine type's experiences.
type CuisineGroup struct {
	CuisineType string
	Items       []model.CulinaryItem
}

// GroupCulinary groups experiences by cuisine type, groups in first-seen
// order. The raw string is the key.
func GroupCulinary(items []model.CulinaryItem) []CuisineGroup {
	index := make(map[string]int)
	var groups []CuisineGroup
	for _, item := range items {
		i, ok := index[item.CuisineType]
		if !ok {
			i = len(groups)
			index[item.CuisineType] = i
			groups = append(groups, CuisineGroup{CuisineType: item.CuisineType})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// PackingGroup is one category of packing items with its packed tally.
type PackingGroup struct {
	Category string
	Items    []model.PackingItem
	Packed   int
}

// GroupPacking groups items by category, groups in first-seen order.
func GroupPacking(items []model.PackingItem) []PackingGroup {
	index := make(map[string]int)
	var groups []PackingGroup
	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, PackingGroup{Category: item.Category})
		}
		groups[i].Items = append(groups[i].Items, item)
		if item.IsPacked {
			groups[i].Packed++
		}
	}
	return groups
}

// PackedCount tallies packed items across the whole list.
func PackedCount(items []model.PackingItem) int {
	var n int
	for _, item := range items {
		if item.IsPacked {
			n++
		}
	}
	return n
}

// SortPosts returns posts newest-first by creation timestamp.
func SortPosts(items []model.Post) []model.Post {
	sorted := make([]model.Post, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt > sorted[j].CreatedAt
	})
	return sorted
}

// DashboardCounts holds the four collection sizes plus the budget total.
// The counts are fetched independently and carry no cross-resource
// consistency guarantee.
type DashboardCounts struct {
	Budget      int
	Packing     int
	Itinerary   int
	Culinary    int
	BudgetTotal float64
}
