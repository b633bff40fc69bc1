package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/foodgramapp/foodgram-server/internal/domain"
	"github.com/foodgramapp/foodgram-server/internal/metrics"
	"github.com/foodgramapp/foodgram-server/internal/store"
)

// Changes summarizes the association rows a reconciliation wrote.
type Changes struct {
	TagsAdded     int
	TagsRemoved   int
	LinesInserted int
	LinesUpdated  int
	LinesDeleted  int
}

// Writes returns the total number of rows touched.
func (c Changes) Writes() int {
	return c.TagsAdded + c.TagsRemoved + c.LinesInserted + c.LinesUpdated + c.LinesDeleted
}

// IsZero reports whether the persisted state already matched.
func (c Changes) IsZero() bool {
	return c.Writes() == 0
}

func (c Changes) counts() metrics.CompositionCounts {
	return metrics.CompositionCounts{
		TagsAdded:     c.TagsAdded,
		TagsRemoved:   c.TagsRemoved,
		LinesInserted: c.LinesInserted,
		LinesUpdated:  c.LinesUpdated,
		LinesDeleted:  c.LinesDeleted,
	}
}

// CompositionPlan is the minimal set of batches that moves a recipe's
// persisted associations to a desired state.
type CompositionPlan struct {
	AddTags     []domain.TagLink
	RemoveTags  []domain.TagLink
	InsertLines []domain.IngredientLine
	UpdateLines []domain.IngredientLine
	DeleteLines []domain.IngredientLine
}

// Changes returns the row counts of the plan.
func (p CompositionPlan) Changes() Changes {
	return Changes{
		TagsAdded:     len(p.AddTags),
		TagsRemoved:   len(p.RemoveTags),
		LinesInserted: len(p.InsertLines),
		LinesUpdated:  len(p.UpdateLines),
		LinesDeleted:  len(p.DeleteLines),
	}
}

// PlanComposition diffs the existing associations of recipeID against desired.
//
// Duplicate tag IDs collapse to one link. Duplicate ingredient IDs collapse
// to the last amount given, keeping the position of the first occurrence.
// New rows are stamped with now.
func PlanComposition(
	recipeID string,
	existingTags []domain.TagLink,
	existingLines []domain.IngredientLine,
	desired domain.RecipeComposition,
	now time.Time,
) CompositionPlan {
	var plan CompositionPlan

	// Tags.
	wantTags := make(map[string]struct{}, len(desired.TagIDs))
	for _, tagID := range desired.TagIDs {
		wantTags[tagID] = struct{}{}
	}
	haveTags := make(map[string]struct{}, len(existingTags))
	for _, link := range existingTags {
		haveTags[link.TagID] = struct{}{}
		if _, keep := wantTags[link.TagID]; !keep {
			plan.RemoveTags = append(plan.RemoveTags, domain.TagLink{RecipeID: recipeID, TagID: link.TagID})
		}
	}
	for _, tagID := range desired.TagIDs {
		if _, ok := haveTags[tagID]; ok {
			continue
		}
		haveTags[tagID] = struct{}{}
		plan.AddTags = append(plan.AddTags, domain.TagLink{RecipeID: recipeID, TagID: tagID, CreatedAt: now})
	}

	// Ingredient lines, last amount wins.
	order := make([]string, 0, len(desired.Ingredients))
	amounts := make(map[string]int, len(desired.Ingredients))
	for _, ia := range desired.Ingredients {
		if _, seen := amounts[ia.IngredientID]; !seen {
			order = append(order, ia.IngredientID)
		}
		amounts[ia.IngredientID] = ia.Amount
	}

	haveLines := make(map[string]domain.IngredientLine, len(existingLines))
	for _, line := range existingLines {
		haveLines[line.IngredientID] = line
	}

	for _, ingredientID := range order {
		amount := amounts[ingredientID]
		line, ok := haveLines[ingredientID]
		switch {
		case !ok:
			plan.InsertLines = append(plan.InsertLines, domain.IngredientLine{
				RecipeID:     recipeID,
				IngredientID: ingredientID,
				Amount:       amount,
				CreatedAt:    now,
			})
		case line.Amount != amount:
			line.Amount = amount
			plan.UpdateLines = append(plan.UpdateLines, line)
		}
	}

	for _, line := range existingLines {
		if _, keep := amounts[line.IngredientID]; !keep {
			plan.DeleteLines = append(plan.DeleteLines, line)
		}
	}

	return plan
}

// Reconciler applies recipe compositions with the fewest association writes.
type Reconciler struct {
	store  store.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewReconciler creates a new reconciler.
func NewReconciler(store store.Store, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Reconcile makes the persisted tags and ingredient lines of recipeID match
// desired in one transaction. On error nothing is written.
func (r *Reconciler) Reconcile(ctx context.Context, recipeID string, desired domain.RecipeComposition) (Changes, error) {
	var changes Changes
	err := r.store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		changes, err = r.Apply(ctx, tx, recipeID, desired)
		return err
	})
	metrics.RecordReconciliation(changes.counts(), err)
	if err != nil {
		return Changes{}, err
	}
	return changes, nil
}

// Apply reconciles inside a caller-owned transaction so the recipe row and
// its associations commit together.
func (r *Reconciler) Apply(ctx context.Context, tx store.Tx, recipeID string, desired domain.RecipeComposition) (Changes, error) {
	tagLinks := tx.TagLinks()
	lines := tx.IngredientLines()

	existingTags, err := tagLinks.Find(ctx, recipeID)
	if err != nil {
		return Changes{}, fmt.Errorf("load tag links: %w", err)
	}
	existingLines, err := lines.Find(ctx, recipeID)
	if err != nil {
		return Changes{}, fmt.Errorf("load ingredient lines: %w", err)
	}

	plan := PlanComposition(recipeID, existingTags, existingLines, desired, r.now())

	if len(plan.RemoveTags) > 0 {
		if err := tagLinks.Delete(ctx, plan.RemoveTags); err != nil {
			return Changes{}, fmt.Errorf("remove tags: %w", err)
		}
	}
	if len(plan.AddTags) > 0 {
		if err := tagLinks.BulkInsert(ctx, plan.AddTags); err != nil {
			return Changes{}, fmt.Errorf("add tags: %w", err)
		}
	}
	if len(plan.DeleteLines) > 0 {
		if err := lines.Delete(ctx, plan.DeleteLines); err != nil {
			return Changes{}, fmt.Errorf("delete lines: %w", err)
		}
	}
	if len(plan.UpdateLines) > 0 {
		if err := lines.BulkUpdate(ctx, plan.UpdateLines); err != nil {
			return Changes{}, fmt.Errorf("update lines: %w", err)
		}
	}
	if len(plan.InsertLines) > 0 {
		if err := lines.BulkInsert(ctx, plan.InsertLines); err != nil {
			return Changes{}, fmt.Errorf("insert lines: %w", err)
		}
	}

	changes := plan.Changes()
	if !changes.IsZero() {
		r.logger.Debug("recipe composition reconciled",
			"recipe_id", recipeID,
			"tags_added", changes.TagsAdded,
			"tags_removed", changes.TagsRemoved,
			"lines_inserted", changes.LinesInserted,
			"lines_updated", changes.LinesUpdated,
			"lines_deleted", changes.LinesDeleted,
		)
	}
	return changes, nil
}
