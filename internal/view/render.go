package view

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/travelplan/travelplan-go/internal/model"
)

// formatDate renders a "2006-01-02" date as a long date, falling back to the
// raw string when it doesn't parse.
func formatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}

// RenderBudget lists budget items with per-line amounts and a grand total.
func RenderBudget(w io.Writer, items []model.BudgetItem) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCATEGORY\tQTY\tUNIT\tAMOUNT\tDESCRIPTION")
	for _, item := range items {
		fmt.Fprintf(tw, "%d\t%s\t%d\t$%.2f\t$%.2f\t%s\n",
			item.ID, item.Category, item.Quantity, item.UnitCost, item.Amount(), item.Description)
	}
	tw.Flush()
	fmt.Fprintf(w, "Total Expenses: $%.2f\n", BudgetTotal(items))
}

// RenderItinerary prints activities grouped by date, earliest start first.
func RenderItinerary(w io.Writer, items []model.ItineraryItem) {
	for _, day := range GroupItinerary(items) {
		fmt.Fprintf(w, "%s\n", formatDate(day.Date))
		for _, item := range day.Items {
			fmt.Fprintf(w, "  [%d] %s - %s  %s\n", item.ID, item.StartTime, item.EndTime, item.Title)
			fmt.Fprintf(w, "      %s (%s)\n", item.Description, item.Location)
		}
	}
}

// RenderCulinary prints experiences grouped by cuisine type.
func RenderCulinary(w io.Writer, items []model.CulinaryItem) {
	for _, group := range GroupCulinary(items) {
		fmt.Fprintf(w, "%s\n", group.CuisineType)
		for _, item := range group.Items {
			fmt.Fprintf(w, "  [%d] %s  %s  Rating: %d/5\n", item.ID, item.Name, item.PriceRange, item.Rating)
			fmt.Fprintf(w, "      %s (%s)\n", item.Description, item.Location)
			if item.Notes != "" {
				fmt.Fprintf(w, "      Notes: %s\n", item.Notes)
			}
		}
	}
}

// RenderPacking prints items grouped by category with packed tallies.
func RenderPacking(w io.Writer, items []model.PackingItem) {
	for _, group := range GroupPacking(items) {
		fmt.Fprintf(w, "%s (%d/%d packed)\n", group.Category, group.Packed, len(group.Items))
		for _, item := range group.Items {
			mark := "[ ]"
			if item.IsPacked {
				mark = "[x]"
			}
			fmt.Fprintf(w, "  %s [%d] %s x%d\n", mark, item.ID, item.Name, item.Quantity)
		}
	}
	fmt.Fprintf(w, "Total Items: %d (%d packed)\n", len(items), PackedCount(items))
}

// RenderPosts prints posts newest first.
func RenderPosts(w io.Writer, items []model.Post) {
	for _, post := range SortPosts(items) {
		fmt.Fprintf(w, "[%d] %s (%s)\n", post.ID, post.Title, post.CreatedAt)
		fmt.Fprintf(w, "    %s\n", post.Content)
	}
}

// RenderDashboard prints the four collection counts and the budget total.
func RenderDashboard(w io.Writer, c DashboardCounts) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Budget Items\t%d\n", c.Budget)
	fmt.Fprintf(tw, "Packing Items\t%d\n", c.Packing)
	fmt.Fprintf(tw, "Itinerary Items\t%d\n", c.Itinerary)
	fmt.Fprintf(tw, "Culinary Items\t%d\n", c.Culinary)
	fmt.Fprintf(tw, "Total Expenses\t$%.2f\n", c.BudgetTotal)
	tw.Flush()
}
