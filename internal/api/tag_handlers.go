package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/foodgramapp/foodgram-server/internal/domain"
	"github.com/foodgramapp/foodgram-server/internal/service"
)

func (s *Server) registerTagRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listTags",
		Method:      http.MethodGet,
		Path:        "/api/tags",
		Summary:     "List tags",
		Description: "Returns every tag ordered by name",
		Tags:        []string{"Tags"},
	}, s.handleListTags)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createTag",
		Method:        http.MethodPost,
		Path:          "/api/tags",
		Summary:       "Create tag",
		Description:   "Creates a tag. Admin only.",
		Tags:          []string{"Tags"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
	}, s.handleCreateTag)

	huma.Register(s.api, huma.Operation{
		OperationID: "getTag",
		Method:      http.MethodGet,
		Path:        "/api/tags/{id}",
		Summary:     "Get tag",
		Description: "Returns a tag by ID",
		Tags:        []string{"Tags"},
	}, s.handleGetTag)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateTag",
		Method:      http.MethodPatch,
		Path:        "/api/tags/{id}",
		Summary:     "Update tag",
		Description: "Changes the fields that are set. Admin only.",
		Tags:        []string{"Tags"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUpdateTag)

	huma.Register(s.api, huma.Operation{
		OperationID:   "deleteTag",
		Method:        http.MethodDelete,
		Path:          "/api/tags/{id}",
		Summary:       "Delete tag",
		Description:   "Deletes a tag and detaches it from every recipe. Admin only.",
		Tags:          []string{"Tags"},
		DefaultStatus: http.StatusNoContent,
		Security:      []map[string][]string{{"bearer": {}}},
	}, s.handleDeleteTag)
}

// === DTOs ===

// TagInput identifies a tag by path.
type TagInput struct {
	ID string `path:"id" doc:"Tag ID"`
}

// CreateTagRequest is the request body for creating a tag.
type CreateTagRequest struct {
	Name  string          `json:"name" doc:"Tag name"`
	Color domain.TagColor `json:"color" enum:"#E26C2D,#49B64E,#8775D2" doc:"Tag color"`
	Slug  string          `json:"slug,omitempty" doc:"URL slug (derived from the name when omitted)"`
}

// CreateTagInput wraps the create tag request for Huma.
type CreateTagInput struct {
	Body CreateTagRequest
}

// UpdateTagRequest is the request body for updating a tag.
type UpdateTagRequest struct {
	Name  *string          `json:"name,omitempty" doc:"New tag name"`
	Color *domain.TagColor `json:"color,omitempty" enum:"#E26C2D,#49B64E,#8775D2" doc:"New tag color"`
	Slug  *string          `json:"slug,omitempty" doc:"New URL slug"`
}

// UpdateTagInput wraps the update tag request for Huma.
type UpdateTagInput struct {
	ID   string `path:"id" doc:"Tag ID"`
	Body UpdateTagRequest
}

// TagOutput wraps a tag for Huma.
type TagOutput struct {
	Body *domain.Tag
}

// ListTagsOutput wraps the tag list for Huma.
type ListTagsOutput struct {
	Body []*domain.Tag
}

// === Handlers ===

func (s *Server) handleListTags(ctx context.Context, _ *struct{}) (*ListTagsOutput, error) {
	tags, err := s.services.Tags.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []*domain.Tag{}
	}
	return &ListTagsOutput{Body: tags}, nil
}

func (s *Server) handleGetTag(ctx context.Context, input *TagInput) (*TagOutput, error) {
	tag, err := s.services.Tags.GetTag(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &TagOutput{Body: tag}, nil
}

func (s *Server) handleCreateTag(ctx context.Context, input *CreateTagInput) (*TagOutput, error) {
	actor, err := RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	tag, err := s.services.Tags.CreateTag(ctx, actor, service.CreateTagRequest{
		Name:  input.Body.Name,
		Color: input.Body.Color,
		Slug:  input.Body.Slug,
	})
	if err != nil {
		return nil, err
	}
	return &TagOutput{Body: tag}, nil
}

func (s *Server) handleUpdateTag(ctx context.Context, input *UpdateTagInput) (*TagOutput, error) {
	actor, err := RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	tag, err := s.services.Tags.UpdateTag(ctx, actor, input.ID, service.UpdateTagRequest{
		Name:  input.Body.Name,
		Color: input.Body.Color,
		Slug:  input.Body.Slug,
	})
	if err != nil {
		return nil, err
	}
	return &TagOutput{Body: tag}, nil
}

func (s *Server) handleDeleteTag(ctx context.Context, input *TagInput) (*struct{}, error) {
	actor, err := RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.services.Tags.DeleteTag(ctx, actor, input.ID); err != nil {
		return nil, err
	}
	return nil, nil
}
