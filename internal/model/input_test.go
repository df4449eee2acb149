package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldOf(t *testing.T, err error) string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	return verr.Field
}

func TestPostInputValidate(t *testing.T) {
	assert.NoError(t, PostInput{Title: "Day one", Content: "We landed."}.Validate())
	assert.Equal(t, "title", fieldOf(t, PostInput{Content: "x"}.Validate()))
	assert.Equal(t, "content", fieldOf(t, PostInput{Title: "x"}.Validate()))
}

func TestBudgetInputValidate(t *testing.T) {
	valid := BudgetInput{Category: "Food", Quantity: 2, UnitCost: 10, Description: "Dinner"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name  string
		in    BudgetInput
		field string
	}{
		{"missing category", BudgetInput{Quantity: 1, UnitCost: 1, Description: "x"}, "category"},
		{"zero quantity", BudgetInput{Category: "Food", Quantity: 0, UnitCost: 1, Description: "x"}, "quantity"},
		{"negative unit cost", BudgetInput{Category: "Food", Quantity: 1, UnitCost: -1, Description: "x"}, "unitCost"},
		{"missing description", BudgetInput{Category: "Food", Quantity: 1, UnitCost: 1}, "description"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.field, fieldOf(t, tt.in.Validate()))
		})
	}
}

func TestPackingInputValidate(t *testing.T) {
	assert.NoError(t, PackingInput{Name: "Socks", Category: "Clothes", Quantity: 4}.Validate())
	assert.Equal(t, "name", fieldOf(t, PackingInput{Category: "Clothes", Quantity: 1}.Validate()))
	assert.Equal(t, "category", fieldOf(t, PackingInput{Name: "Socks", Quantity: 1}.Validate()))
	assert.Equal(t, "quantity", fieldOf(t, PackingInput{Name: "Socks", Category: "Clothes"}.Validate()))
}

func TestItineraryInputValidate(t *testing.T) {
	valid := ItineraryInput{
		Title: "Museum", Description: "Modern art", Location: "Downtown",
		Date: "2026-09-01", StartTime: "09:00", EndTime: "11:00",
	}
	assert.NoError(t, valid.Validate())

	missingStart := valid
	missingStart.StartTime = ""
	assert.Equal(t, "start_time", fieldOf(t, missingStart.Validate()))

	missingDate := valid
	missingDate.Date = ""
	assert.Equal(t, "date", fieldOf(t, missingDate.Validate()))
}

func TestCulinaryInputValidate(t *testing.T) {
	valid := CulinaryInput{
		Name: "Ramen bar", Description: "Late night spot", Location: "Shinjuku",
		PriceRange: "$$", CuisineType: "Japanese", Rating: 5,
	}
	assert.NoError(t, valid.Validate())

	for _, rating := range []int{0, 6, -1} {
		in := valid
		in.Rating = rating
		assert.Equal(t, "rating", fieldOf(t, in.Validate()), "rating %d", rating)
	}
}

func TestBudgetItemAmount(t *testing.T) {
	item := BudgetItem{Quantity: 3, UnitCost: 12.5}
	assert.InDelta(t, 37.5, item.Amount(), 0.0001)
}
