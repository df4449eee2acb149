package model

// Post represents a travel journal post.
type Post struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// BudgetItem represents one planned expense line.
type BudgetItem struct {
	ID          int64   `json:"id"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	UnitCost    float64 `json:"unitCost"`
	Description string  `json:"description"`
}

// Amount is the line total, quantity times unit cost. Computed client-side.
func (b BudgetItem) Amount() float64 {
	return float64(b.Quantity) * b.UnitCost
}

// PackingItem represents one item on the packing list.
type PackingItem struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Quantity  int    `json:"quantity"`
	IsPacked  bool   `json:"is_packed"`
	UserID    int64  `json:"user_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ItineraryItem represents one scheduled activity. Date is "2006-01-02",
// start and end times are "15:04".
type ItineraryItem struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Date        string `json:"date"`
	UserID      int64  `json:"user_id"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// CulinaryItem represents a food experience worth remembering.
type CulinaryItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	PriceRange  string `json:"price_range"`
	CuisineType string `json:"cuisine_type"`
	Rating      int    `json:"rating"`
	Notes       string `json:"notes"`
	UserID      int64  `json:"user_id"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
