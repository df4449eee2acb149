package model

import "fmt"

// ValidationError reports a single form field that failed pre-submission
// validation. Validation happens before anything reaches the wire.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func required(field string) error {
	return &ValidationError{Field: field, Message: "is required"}
}

// PostInput is the create/edit form shape for posts.
type PostInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (in PostInput) Validate() error {
	if in.Title == "" {
		return required("title")
	}
	if in.Content == "" {
		return required("content")
	}
	return nil
}

// BudgetInput is the create/edit form shape for budget items.
type BudgetInput struct {
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	UnitCost    float64 `json:"unitCost"`
	Description string  `json:"description"`
}

func (in BudgetInput) Validate() error {
	if in.Category == "" {
		return required("category")
	}
	if in.Quantity < 1 {
		return &ValidationError{Field: "quantity", Message: "must be at least 1"}
	}
	if in.UnitCost < 0 {
		return &ValidationError{Field: "unitCost", Message: "must be positive"}
	}
	if in.Description == "" {
		return required("description")
	}
	return nil
}

// PackingInput is the create/edit form shape for packing items. IsPacked is
// carried so a toggle can resubmit the full item with only the flag flipped.
type PackingInput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
	IsPacked bool   `json:"is_packed"`
}

func (in PackingInput) Validate() error {
	if in.Name == "" {
		return required("name")
	}
	if in.Category == "" {
		return required("category")
	}
	if in.Quantity < 1 {
		return &ValidationError{Field: "quantity", Message: "must be at least 1"}
	}
	return nil
}

// ItineraryInput is the create/edit form shape for itinerary activities.
type ItineraryInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Date        string `json:"date"`
}

func (in ItineraryInput) Validate() error {
	if in.Title == "" {
		return required("title")
	}
	if in.Description == "" {
		return required("description")
	}
	if in.Location == "" {
		return required("location")
	}
	if in.Date == "" {
		return required("date")
	}
	if in.StartTime == "" {
		return required("start_time")
	}
	if in.EndTime == "" {
		return required("end_time")
	}
	return nil
}

// CulinaryInput is the create/edit form shape for culinary experiences.
type CulinaryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	PriceRange  string `json:"price_range"`
	CuisineType string `json:"cuisine_type"`
	Rating      int    `json:"rating"`
	Notes       string `json:"notes"`
}

func (in CulinaryInput) Validate() error {
	if in.Name == "" {
		return required("name")
	}
	if in.Description == "" {
		return required("description")
	}
	if in.Location == "" {
		return required("location")
	}
	if in.PriceRange == "" {
		return required("price_range")
	}
	if in.CuisineType == "" {
		return required("cuisine_type")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return &ValidationError{Field: "rating", Message: "must be between 1 and 5"}
	}
	return nil
}
