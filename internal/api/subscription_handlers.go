package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/foodgramapp/foodgram-server/internal/dto"
	"github.com/foodgramapp/foodgram-server/internal/store"
)

func (s *Server) registerSubscriptionRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listSubscriptions",
		Method:      http.MethodGet,
		Path:        "/api/users/subscriptions",
		Summary:     "List subscriptions",
		Description: "Returns the authors the current user follows, each with a preview of their recipes",
		Tags:        []string{"Subscriptions"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleListSubscriptions)

	huma.Register(s.api, huma.Operation{
		OperationID:   "subscribe",
		Method:        http.MethodPost,
		Path:          "/api/users/{id}/subscribe",
		Summary:       "Follow author",
		Description:   "Follows an author. Following an already followed author succeeds without change.",
		Tags:          []string{"Subscriptions"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
	}, s.handleSubscribe)

	huma.Register(s.api, huma.Operation{
		OperationID:   "unsubscribe",
		Method:        http.MethodDelete,
		Path:          "/api/users/{id}/subscribe",
		Summary:       "Unfollow author",
		Description:   "Stops following an author",
		Tags:          []string{"Subscriptions"},
		DefaultStatus: http.StatusNoContent,
		Security:      []map[string][]string{{"bearer": {}}},
	}, s.handleUnsubscribe)
}

// === DTOs ===

// ListSubscriptionsInput contains pagination and preview size parameters.
type ListSubscriptionsInput struct {
	PaginationInput
	RecipesLimit int `query:"recipes_limit" minimum:"0" doc:"Maximum recipes shown per author (0 shows all)"`
}

// ListSubscriptionsOutput wraps a page of followed authors for Huma.
type ListSubscriptionsOutput struct {
	Body *store.Page[*dto.Subscription]
}

// SubscribeInput identifies the author and preview size.
type SubscribeInput struct {
	ID           string `path:"id" doc:"Author user ID"`
	RecipesLimit int    `query:"recipes_limit" minimum:"0" doc:"Maximum recipes shown (0 shows all)"`
}

// SubscriptionOutput wraps a followed author for Huma.
type SubscriptionOutput struct {
	Body *dto.Subscription
}

// UnsubscribeInput identifies the author to unfollow.
type UnsubscribeInput struct {
	ID string `path:"id" doc:"Author user ID"`
}

// === Handlers ===

func (s *Server) handleListSubscriptions(ctx context.Context, input *ListSubscriptionsInput) (*ListSubscriptionsOutput, error) {
	me, err := RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	page, err := s.services.Follows.Subscriptions(ctx, me.ID, input.PageParams(), input.RecipesLimit)
	if err != nil {
		return nil, err
	}
	return &ListSubscriptionsOutput{Body: page}, nil
}

func (s *Server) handleSubscribe(ctx context.Context, input *SubscribeInput) (*SubscriptionOutput, error) {
	me, err := RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	sub, err := s.services.Follows.Subscribe(ctx, me.ID, input.ID, input.RecipesLimit)
	if err != nil {
		return nil, err
	}
	return &SubscriptionOutput{Body: sub}, nil
}

func (s *Server) handleUnsubscribe(ctx context.Context, input *UnsubscribeInput) (*struct{}, error) {
	me, err := RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.services.Follows.Unsubscribe(ctx, me.ID, input.ID); err != nil {
		return nil, err
	}
	return nil, nil
}
