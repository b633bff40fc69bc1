package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/foodgramapp/foodgram-server/internal/authz"
	"github.com/foodgramapp/foodgram-server/internal/domain"
	domainerrors "github.com/foodgramapp/foodgram-server/internal/errors"
	"github.com/foodgramapp/foodgram-server/internal/id"
	"github.com/foodgramapp/foodgram-server/internal/store"
	"github.com/foodgramapp/foodgram-server/internal/util"
)

// TagService manages the tag catalog. Reads are public; writes are for admins.
type TagService struct {
	store  store.Store
	authz  *authz.Enforcer
	logger *slog.Logger
}

// NewTagService creates a new tag service.
func NewTagService(store store.Store, enforcer *authz.Enforcer, logger *slog.Logger) *TagService {
	return &TagService{
		store:  store,
		authz:  enforcer,
		logger: logger,
	}
}

// CreateTagRequest describes a new tag. Slug defaults to the name.
type CreateTagRequest struct {
	Name  string          `json:"name" validate:"required,max=200"`
	Color domain.TagColor `json:"color" validate:"required,tagcolor"`
	Slug  string          `json:"slug,omitempty" validate:"max=200"`
}

// UpdateTagRequest changes the fields that are set.
type UpdateTagRequest struct {
	Name  *string          `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Color *domain.TagColor `json:"color,omitempty" validate:"omitempty,tagcolor"`
	Slug  *string          `json:"slug,omitempty" validate:"omitempty,min=1,max=200"`
}

// ListTags returns every tag ordered by name.
func (s *TagService) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	return s.store.ListTags(ctx)
}

// GetTag returns a tag by ID.
func (s *TagService) GetTag(ctx context.Context, tagID string) (*domain.Tag, error) {
	tag, err := s.store.GetTag(ctx, tagID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, domainerrors.NotFound("tag not found")
	}
	return tag, err
}

// CreateTag adds a tag to the catalog.
func (s *TagService) CreateTag(ctx context.Context, actor *domain.User, req CreateTagRequest) (*domain.Tag, error) {
	if err := s.authz.Authorize(actor, authz.ObjectTag, authz.ActionCreate, ""); err != nil {
		return nil, err
	}
	if err := validate.Validate(req); err != nil {
		return nil, err
	}

	source := req.Slug
	if source == "" {
		source = req.Name
	}
	slug, err := tagSlug(source)
	if err != nil {
		return nil, err
	}

	tagID, err := id.Generate(id.PrefixTag)
	if err != nil {
		return nil, fmt.Errorf("generate tag ID: %w", err)
	}

	now := time.Now()
	tag := &domain.Tag{
		ID:        tagID,
		Name:      req.Name,
		Color:     req.Color,
		Slug:      slug,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.CreateTag(ctx, tag); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, domainerrors.AlreadyExists("tag name, color or slug already in use")
		}
		return nil, fmt.Errorf("create tag: %w", err)
	}

	s.logger.Info("tag created",
		"tag_id", tag.ID,
		"tag_slug", tag.Slug,
		"user_id", actor.ID,
	)
	return tag, nil
}

// UpdateTag changes a tag's name, color or slug.
func (s *TagService) UpdateTag(ctx context.Context, actor *domain.User, tagID string, req UpdateTagRequest) (*domain.Tag, error) {
	if err := s.authz.Authorize(actor, authz.ObjectTag, authz.ActionUpdate, ""); err != nil {
		return nil, err
	}
	if err := validate.Validate(req); err != nil {
		return nil, err
	}

	tag, err := s.GetTag(ctx, tagID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		tag.Name = *req.Name
	}
	if req.Color != nil {
		tag.Color = *req.Color
	}
	if req.Slug != nil {
		if tag.Slug, err = tagSlug(*req.Slug); err != nil {
			return nil, err
		}
	}
	tag.Touch()

	if err := s.store.UpdateTag(ctx, tag); err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			return nil, domainerrors.AlreadyExists("tag name, color or slug already in use")
		case errors.Is(err, store.ErrNotFound):
			return nil, domainerrors.NotFound("tag not found")
		}
		return nil, fmt.Errorf("update tag: %w", err)
	}

	s.logger.Info("tag updated", "tag_id", tag.ID, "user_id", actor.ID)
	return tag, nil
}

// DeleteTag removes a tag and detaches it from every recipe.
func (s *TagService) DeleteTag(ctx context.Context, actor *domain.User, tagID string) error {
	if err := s.authz.Authorize(actor, authz.ObjectTag, authz.ActionDelete, ""); err != nil {
		return err
	}

	if err := s.store.DeleteTag(ctx, tagID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domainerrors.NotFound("tag not found")
		}
		return fmt.Errorf("delete tag: %w", err)
	}

	s.logger.Info("tag deleted", "tag_id", tagID, "user_id", actor.ID)
	return nil
}

// tagSlug normalizes input and rejects names that fold to nothing,
// such as purely Cyrillic ones without an explicit slug.
func tagSlug(input string) (string, error) {
	slug := util.NormalizeTagSlug(input)
	if slug == "" {
		return "", domainerrors.ValidationWithDetails("validation failed", map[string]string{
			"slug": "must contain latin letters or digits",
		})
	}
	return slug, nil
}
