package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/foodgramapp/foodgram-server/internal/domain"
	"github.com/foodgramapp/foodgram-server/internal/dto"
	domainerrors "github.com/foodgramapp/foodgram-server/internal/errors"
	"github.com/foodgramapp/foodgram-server/internal/store"
)

// FollowService manages subscriptions to authors.
type FollowService struct {
	store    store.Store
	enricher *dto.Enricher
	logger   *slog.Logger
}

// NewFollowService creates a new follow service.
func NewFollowService(store store.Store, enricher *dto.Enricher, logger *slog.Logger) *FollowService {
	return &FollowService{
		store:    store,
		enricher: enricher,
		logger:   logger,
	}
}

// Subscribe makes userID follow authorID and returns the author card.
// Subscribing twice is not an error.
func (s *FollowService) Subscribe(ctx context.Context, userID, authorID string, recipesLimit int) (*dto.Subscription, error) {
	if userID == authorID {
		return nil, domainerrors.Validation("cannot subscribe to yourself")
	}

	author, err := s.getAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}

	err = s.store.CreateFollow(ctx, &domain.Follow{
		UserID:    userID,
		AuthorID:  authorID,
		CreatedAt: time.Now(),
	})
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		// Already subscribed.
	case err != nil:
		return nil, fmt.Errorf("create follow: %w", err)
	default:
		s.logger.Info("user subscribed", "user_id", userID, "author_id", authorID)
	}

	return s.enricher.EnrichSubscription(ctx, userID, author, recipesLimit)
}

// Unsubscribe stops userID following authorID.
func (s *FollowService) Unsubscribe(ctx context.Context, userID, authorID string) error {
	if _, err := s.getAuthor(ctx, authorID); err != nil {
		return err
	}

	if err := s.store.DeleteFollow(ctx, userID, authorID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domainerrors.NotFound("not subscribed to this author")
		}
		return fmt.Errorf("delete follow: %w", err)
	}

	s.logger.Info("user unsubscribed", "user_id", userID, "author_id", authorID)
	return nil
}

// Subscriptions returns a page of followed authors, most recent first, each
// with up to recipesLimit recipes. A non-positive limit includes all recipes.
func (s *FollowService) Subscriptions(ctx context.Context, userID string, params store.PageParams, recipesLimit int) (*store.Page[*dto.Subscription], error) {
	params.Validate()

	page, err := s.store.ListFollowedAuthors(ctx, userID, params)
	if err != nil {
		return nil, fmt.Errorf("list followed authors: %w", err)
	}

	subs := make([]*dto.Subscription, 0, len(page.Items))
	for _, author := range page.Items {
		sub, err := s.enricher.EnrichSubscription(ctx, userID, author, recipesLimit)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return store.NewPage(subs, page.Count, params), nil
}

func (s *FollowService) getAuthor(ctx context.Context, authorID string) (*domain.User, error) {
	author, err := s.store.GetUser(ctx, authorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("user not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return author, nil
}
