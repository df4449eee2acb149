package view

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelplan/travelplan-go/internal/model"
)

func TestBudgetTotal(t *testing.T) {
	items := []model.BudgetItem{
		{Quantity: 2, UnitCost: 10},
		{Quantity: 1, UnitCost: 5},
	}
	assert.Equal(t, "$25.00", fmt.Sprintf("$%.2f", BudgetTotal(items)))
	assert.Zero(t, BudgetTotal(nil))
}

func TestRenderBudgetTotalLine(t *testing.T) {
	var buf bytes.Buffer
	RenderBudget(&buf, []model.BudgetItem{
		{ID: 1, Category: "Food", Quantity: 2, UnitCost: 10, Description: "Dinner"},
		{ID: 2, Category: "Transportation", Quantity: 1, UnitCost: 5, Description: "Bus"},
	})
	assert.Contains(t, buf.String(), "Total Expenses: $25.00")
}

func TestGroupItinerarySortsWithinDate(t *testing.T) {
	items := []model.ItineraryItem{
		{ID: 1, Title: "Lunch", Date: "2026-09-01", StartTime: "14:00"},
		{ID: 2, Title: "Museum", Date: "2026-09-01", StartTime: "09:00"},
	}
	days := GroupItinerary(items)
	require.Len(t, days, 1)
	require.Len(t, days[0].Items, 2)
	assert.Equal(t, "Museum", days[0].Items[0].Title, "09:00 renders before 14:00")
	assert.Equal(t, "Lunch", days[0].Items[1].Title)
}

func TestGroupItineraryOrdersDates(t *testing.T) {
	items := []model.ItineraryItem{
		{Title: "Later", Date: "2026-09-02", StartTime: "08:00"},
		{Title: "Earlier", Date: "2026-09-01", StartTime: "22:00"},
		{Title: "Same day", Date: "2026-09-02", StartTime: "10:00"},
	}
	days := GroupItinerary(items)
	require.Len(t, days, 2)
	assert.Equal(t, "2026-09-01", days[0].Date)
	assert.Equal(t, "2026-09-02", days[1].Date)
	assert.Len(t, days[1].Items, 2)
}

func TestGroupCulinaryEmptyKeyBucket(t *testing.T) {
	items := []model.CulinaryItem{
		{Name: "Ramen", CuisineType: "Japanese"},
		{Name: "Unknown", CuisineType: ""},
		{Name: "Sushi", CuisineType: "Japanese"},
	}
	groups := GroupCulinary(items)
	require.Len(t, groups, 2)
	assert.Equal(t, "Japanese", groups[0].CuisineType)
	assert.Len(t, groups[0].Items, 2)
	assert.Equal(t, "", groups[1].CuisineType, "missing key groups under empty string")
}

func TestGroupPackingCounts(t *testing.T) {
	items := []model.PackingItem{
		{Name: "Socks", Category: "Clothes", IsPacked: true},
		{Name: "Shirt", Category: "Clothes"},
		{Name: "Charger", Category: "Electronics", IsPacked: true},
	}
	groups := GroupPacking(items)
	require.Len(t, groups, 2)
	assert.Equal(t, 1, groups[0].Packed)
	assert.Len(t, groups[0].Items, 2)
	assert.Equal(t, 2, PackedCount(items))
}

func TestSortPostsNewestFirst(t *testing.T) {
	posts := []model.Post{
		{Title: "Old", CreatedAt: "2026-01-01T00:00:00Z"},
		{Title: "New", CreatedAt: "2026-02-01T00:00:00Z"},
	}
	sorted := SortPosts(posts)
	assert.Equal(t, "New", sorted[0].Title)
	assert.Equal(t, "Old", posts[0].Title, "input slice untouched")
}

func TestFormatDateFallback(t *testing.T) {
	assert.Equal(t, "Tuesday, September 1, 2026", formatDate("2026-09-01"))
	assert.Equal(t, "not-a-date", formatDate("not-a-date"))
}
