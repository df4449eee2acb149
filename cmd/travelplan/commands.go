package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/travelplan/travelplan-go/internal/model"
	"github.com/travelplan/travelplan-go/internal/resource"
	"github.com/travelplan/travelplan-go/internal/view"
)

func (a *app) dashboard(ctx context.Context) error {
	var counts view.DashboardCounts

	// Four independent reads; a failed one just shows as zero. The counts
	// carry no cross-resource consistency guarantee.
	if items, err := a.resources.Budget.List(ctx); err == nil {
		counts.Budget = len(items)
		counts.BudgetTotal = view.BudgetTotal(items)
	} else {
		slog.Warn("budget fetch failed", "error", err)
	}
	if items, err := a.resources.Packing.List(ctx); err == nil {
		counts.Packing = len(items)
	} else {
		slog.Warn("packing fetch failed", "error", err)
	}
	if items, err := a.resources.Itinerary.List(ctx); err == nil {
		counts.Itinerary = len(items)
	} else {
		slog.Warn("itinerary fetch failed", "error", err)
	}
	if items, err := a.resources.Culinary.List(ctx); err == nil {
		counts.Culinary = len(items)
	} else {
		slog.Warn("culinary fetch failed", "error", err)
	}

	view.RenderDashboard(a.stdout, counts)
	return nil
}

// confirm asks before a destructive action. Anything but yes is a no.
func (a *app) confirm(prompt string) bool {
	fmt.Fprintf(a.stdout, "%s [y/N]: ", prompt)
	line, _ := a.stdin.ReadString('\n')
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes"
}

func splitAction(args []string) (string, []string) {
	if len(args) == 0 {
		return "list", nil
	}
	return args[0], args[1:]
}

func newFlagSet(a *app, name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

// deleteItem runs the shared confirm-then-delete flow for any collection.
func deleteItem[T any, I resource.Input](ctx context.Context, a *app, c *resource.Collection[T, I], id int64, what string) error {
	confirmed := a.confirm(fmt.Sprintf("Delete %s %d?", what, id))
	err := c.Delete(ctx, id, confirmed)
	if errors.Is(err, resource.ErrNotConfirmed) {
		fmt.Fprintln(a.stdout, "Aborted.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Deleted %s %d\n", what, id)
	return nil
}

func (a *app) postsCmd(ctx context.Context, args []string) error {
	action, rest := splitAction(args)
	switch action {
	case "list":
		items, err := a.resources.Posts.List(ctx)
		if err != nil {
			return err
		}
		view.RenderPosts(a.stdout, items)
		return nil
	case "add", "edit":
		fs := newFlagSet(a, "posts "+action)
		id := fs.Int64("id", 0, "Post id (edit only)")
		title := fs.String("title", "", "Title")
		content := fs.String("content", "", "Content")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		in := model.PostInput{Title: *title, Content: *content}
		if action == "add" {
			post, err := a.resources.Posts.Create(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Created post %d\n", post.ID)
			return nil
		}
		post, err := a.resources.Posts.Update(ctx, *id, in)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "Updated post %d\n", post.ID)
		return nil
	case "delete":
		fs := newFlagSet(a, "posts delete")
		id := fs.Int64("id", 0, "Post id")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		return deleteItem(ctx, a, a.resources.Posts, *id, "post")
	default:
		return fmt.Errorf("unknown posts action %q", action)
	}
}

func (a *app) budgetCmd(ctx context.Context, args []string) error {
	action, rest := splitAction(args)
	switch action {
	case "list":
		items, err := a.resources.Budget.List(ctx)
		if err != nil {
			return err
		}
		view.RenderBudget(a.stdout, items)
		return nil
	case "add", "edit":
		fs := newFlagSet(a, "budget "+action)
		id := fs.Int64("id", 0, "Item id (edit only)")
		category := fs.String("category", "", "Category")
		quantity := fs.Int("quantity", 1, "Quantity")
		unitCost := fs.Float64("unit-cost", 0, "Unit cost")
		description := fs.String("description", "", "Description")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		in := model.BudgetInput{Category: *category, Quantity: *quantity, UnitCost: *unitCost, Description: *description}
		if action == "add" {
			item, err := a.resources.Budget.Create(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Created budget item %d ($%.2f)\n", item.ID, item.Amount())
			return nil
		}
		item, err := a.resources.Budget.Update(ctx, *id, in)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "Updated budget item %d ($%.2f)\n", item.ID, item.Amount())
		return nil
	case "delete":
		fs := newFlagSet(a, "budget delete")
		id := fs.Int64("id", 0, "Item id")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		return deleteItem(ctx, a, a.resources.Budget, *id, "budget item")
	default:
		return fmt.Errorf("unknown budget action %q", action)
	}
}

func (a *app) packingCmd(ctx context.Context, args []string) error {
	action, rest := splitAction(args)
	switch action {
	case "list":
		items, err := a.resources.Packing.List(ctx)
		if err != nil {
			return err
		}
		view.RenderPacking(a.stdout, items)
		return nil
	case "add", "edit":
		fs := newFlagSet(a, "packing "+action)
		id := fs.Int64("id", 0, "Item id (edit only)")
		name := fs.String("name", "", "Item name")
		category := fs.String("category", "", "Category")
		quantity := fs.Int("quantity", 1, "Quantity")
		packed := fs.Bool("packed", false, "Packed")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		in := model.PackingInput{Name: *name, Category: *category, Quantity: *quantity, IsPacked: *packed}
		if action == "add" {
			item, err := a.resources.Packing.Create(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Created packing item %d\n", item.ID)
			return nil
		}
		item, err := a.resources.Packing.Update(ctx, *id, in)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "Updated packing item %d\n", item.ID)
		return nil
	case "toggle":
		fs := newFlagSet(a, "packing toggle")
		id := fs.Int64("id", 0, "Item id")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		item, err := a.resources.TogglePacked(ctx, *id)
		if err != nil {
			return err
		}
		state := "unpacked"
		if item.IsPacked {
			state = "packed"
		}
		fmt.Fprintf(a.stdout, "%s is now %s\n", item.Name, state)
		return nil
	case "delete":
		fs := newFlagSet(a, "packing delete")
		id := fs.Int64("id", 0, "Item id")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		return deleteItem(ctx, a, a.resources.Packing, *id, "packing item")
	default:
		return fmt.Errorf("unknown packing action %q", action)
	}
}

func (a *app) itineraryCmd(ctx context.Context, args []string) error {
	action, rest := splitAction(args)
	switch action {
	case "list":
		items, err := a.resources.Itinerary.List(ctx)
		if err != nil {
			return err
		}
		view.RenderItinerary(a.stdout, items)
		return nil
	case "add", "edit":
		fs := newFlagSet(a, "itinerary "+action)
		id := fs.Int64("id", 0, "Activity id (edit only)")
		title := fs.String("title", "", "Title")
		description := fs.String("description", "", "Description")
		location := fs.String("location", "", "Location")
		date := fs.String("date", "", "Date (2006-01-02)")
		start := fs.String("start", "", "Start time (15:04)")
		end := fs.String("end", "", "End time (15:04)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		in := model.ItineraryInput{Title: *title, Description: *description, Location: *location, Date: *date, StartTime: *start, EndTime: *end}
		if action == "add" {
			item, err := a.resources.Itinerary.Create(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Created activity %d\n", item.ID)
			return nil
		}
		item, err := a.resources.Itinerary.Update(ctx, *id, in)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "Updated activity %d\n", item.ID)
		return nil
	case "delete":
		fs := newFlagSet(a, "itinerary delete")
		id := fs.Int64("id", 0, "Activity id")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		return deleteItem(ctx, a, a.resources.Itinerary, *id, "activity")
	default:
		return fmt.Errorf("unknown itinerary action %q", action)
	}
}

func (a *app) culinaryCmd(ctx context.Context, args []string) error {
	action, rest := splitAction(args)
	switch action {
	case "list":
		items, err := a.resources.Culinary.List(ctx)
		if err != nil {
			return err
		}
		view.RenderCulinary(a.stdout, items)
		return nil
	case "add", "edit":
		fs := newFlagSet(a, "culinary "+action)
		id := fs.Int64("id", 0, "Experience id (edit only)")
		name := fs.String("name", "", "Name")
		description := fs.String("description", "", "Description")
		location := fs.String("location", "", "Location")
		priceRange := fs.String("price", "", "Price range")
		cuisine := fs.String("cuisine", "", "Cuisine type")
		rating := fs.Int("rating", 0, "Rating (1-5)")
		notes := fs.String("notes", "", "Notes")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		in := model.CulinaryInput{Name: *name, Description: *description, Location: *location, PriceRange: *priceRange, CuisineType: *cuisine, Rating: *rating, Notes: *notes}
		if action == "add" {
			item, err := a.resources.Culinary.Create(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Created experience %d\n", item.ID)
			return nil
		}
		item, err := a.resources.Culinary.Update(ctx, *id, in)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "Updated experience %d\n", item.ID)
		return nil
	case "delete":
		fs := newFlagSet(a, "culinary delete")
		id := fs.Int64("id", 0, "Experience id")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		return deleteItem(ctx, a, a.resources.Culinary, *id, "experience")
	default:
		return fmt.Errorf("unknown culinary action %q", action)
	}
}
