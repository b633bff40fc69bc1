package service

//go:generate mockgen -source=shopping.go -destination=../mocks/mock_shopping.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/foodgramapp/foodgram-server/internal/domain"
	"github.com/foodgramapp/foodgram-server/internal/metrics"
)

// CartLineSource yields every ingredient line of every recipe in a user's
// cart, in cart insertion order and then line insertion order.
type CartLineSource interface {
	GetCartLines(ctx context.Context, userID string) ([]domain.CartLine, error)
}

// ShoppingList is a rendered shopping cart export.
type ShoppingList struct {
	Filename string
	Content  []byte
	Items    []domain.ShoppingItem
}

// ShoppingListService aggregates shopping carts into downloadable lists.
type ShoppingListService struct {
	lines    CartLineSource
	logger   *slog.Logger
	filename func() string
}

// NewShoppingListService creates a new shopping list service.
func NewShoppingListService(lines CartLineSource, logger *slog.Logger) *ShoppingListService {
	return &ShoppingListService{
		lines:    lines,
		logger:   logger,
		filename: func() string { return "shopping_cart_" + uuid.NewString() + ".txt" },
	}
}

// AggregateLines folds cart lines by ingredient, summing amounts.
// Items appear in the order their ingredient was first seen.
func AggregateLines(lines []domain.CartLine) []domain.ShoppingItem {
	items := make([]domain.ShoppingItem, 0, len(lines))
	index := make(map[string]int, len(lines))
	for _, line := range lines {
		if i, ok := index[line.IngredientID]; ok {
			items[i].Amount += line.Amount
			continue
		}
		index[line.IngredientID] = len(items)
		items = append(items, domain.ShoppingItem{
			IngredientID: line.IngredientID,
			Name:         line.Name,
			Unit:         line.Unit,
			Amount:       line.Amount,
		})
	}
	return items
}

// Aggregate returns the user's summed shopping list. An empty cart yields
// an empty, non-nil slice.
func (s *ShoppingListService) Aggregate(ctx context.Context, userID string) ([]domain.ShoppingItem, error) {
	lines, err := s.lines.GetCartLines(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart lines: %w", err)
	}
	return AggregateLines(lines), nil
}

// Render writes one "<name> (<unit>) - <total>" line per item.
func Render(items []domain.ShoppingItem) []byte {
	var buf bytes.Buffer
	for _, item := range items {
		buf.WriteString(item.String())
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Export aggregates the cart and renders it as a plain text file with a
// unique name.
func (s *ShoppingListService) Export(ctx context.Context, userID string) (*ShoppingList, error) {
	items, err := s.Aggregate(ctx, userID)
	if err != nil {
		return nil, err
	}

	list := &ShoppingList{
		Filename: s.filename(),
		Content:  Render(items),
		Items:    items,
	}
	if list.Content == nil {
		list.Content = []byte{}
	}

	metrics.RecordShoppingList(len(items))
	s.logger.Info("shopping list exported",
		"user_id", userID,
		"items", len(items),
		"filename", list.Filename,
	)
	return list, nil
}
