package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/foodgramapp/foodgram-server/internal/dto"
	"github.com/foodgramapp/foodgram-server/internal/service"
	"github.com/foodgramapp/foodgram-server/internal/store"
)

func (s *Server) registerUserRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID:   "registerUser",
		Method:        http.MethodPost,
		Path:          "/api/users",
		Summary:       "Register user",
		Description:   "Creates an account. The first account on a fresh instance becomes an admin.",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusCreated,
	}, s.handleRegisterUser)

	huma.Register(s.api, huma.Operation{
		OperationID: "listUsers",
		Method:      http.MethodGet,
		Path:        "/api/users",
		Summary:     "List users",
		Description: "Returns a page of users with the viewer's subscription flag",
		Tags:        []string{"Users"},
	}, s.handleListUsers)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCurrentUser",
		Method:      http.MethodGet,
		Path:        "/api/users/me",
		Summary:     "Get current user",
		Description: "Returns the authenticated user's profile",
		Tags:        []string{"Users"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleGetCurrentUser)

	huma.Register(s.api, huma.Operation{
		OperationID:   "setPassword",
		Method:        http.MethodPost,
		Path:          "/api/users/set_password",
		Summary:       "Change password",
		Description:   "Changes the caller's password and revokes their existing tokens",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusNoContent,
		Security:      []map[string][]string{{"bearer": {}}},
	}, s.handleSetPassword)

	huma.Register(s.api, huma.Operation{
		OperationID: "getUser",
		Method:      http.MethodGet,
		Path:        "/api/users/{id}",
		Summary:     "Get user",
		Description: "Returns a user's public profile",
		Tags:        []string{"Users"},
	}, s.handleGetUser)
}

// === DTOs ===

// RegisterUserRequest is the request body for registration.
type RegisterUserRequest struct {
	Email     string `json:"email" doc:"Email address"`
	Username  string `json:"username" doc:"Unique username (letters, digits and @.+-_)"`
	FirstName string `json:"first_name" doc:"First name"`
	LastName  string `json:"last_name" doc:"Last name"`
	Password  string `json:"password" doc:"Password (at least 8 characters)"`
}

// RegisterUserInput wraps the registration request for Huma.
type RegisterUserInput struct {
	Body RegisterUserRequest
}

// UserOutput wraps a user profile for Huma.
type UserOutput struct {
	Body *dto.User
}

// ListUsersInput contains pagination parameters for listing users.
type ListUsersInput struct {
	PaginationInput
}

// ListUsersOutput wraps a page of users for Huma.
type ListUsersOutput struct {
	Body *store.Page[dto.User]
}

// GetUserInput identifies a user by path.
type GetUserInput struct {
	ID string `path:"id" doc:"User ID"`
}

// SetPasswordRequest is the request body for a password change.
type SetPasswordRequest struct {
	CurrentPassword string `json:"current_password" doc:"Current password"`
	NewPassword     string `json:"new_password" doc:"New password (at least 8 characters)"`
}

// SetPasswordInput wraps the password change request for Huma.
type SetPasswordInput struct {
	Body SetPasswordRequest
}

// === Handlers ===

func (s *Server) handleRegisterUser(ctx context.Context, input *RegisterUserInput) (*UserOutput, error) {
	user, err := s.services.Users.Register(ctx, service.RegisterRequest{
		Email:     input.Body.Email,
		Username:  input.Body.Username,
		FirstName: input.Body.FirstName,
		LastName:  input.Body.LastName,
		Password:  input.Body.Password,
	})
	if err != nil {
		return nil, err
	}
	return &UserOutput{Body: user}, nil
}

func (s *Server) handleListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error) {
	page, err := s.services.Users.List(ctx, viewerID(ctx), input.PageParams())
	if err != nil {
		return nil, err
	}
	return &ListUsersOutput{Body: page}, nil
}

func (s *Server) handleGetCurrentUser(ctx context.Context, _ *struct{}) (*UserOutput, error) {
	me, err := RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.services.Users.Get(ctx, me.ID, me.ID)
	if err != nil {
		return nil, err
	}
	return &UserOutput{Body: user}, nil
}

func (s *Server) handleGetUser(ctx context.Context, input *GetUserInput) (*UserOutput, error) {
	user, err := s.services.Users.Get(ctx, viewerID(ctx), input.ID)
	if err != nil {
		return nil, err
	}
	return &UserOutput{Body: user}, nil
}

func (s *Server) handleSetPassword(ctx context.Context, input *SetPasswordInput) (*struct{}, error) {
	me, err := RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	err = s.services.Users.SetPassword(ctx, me.ID, service.SetPasswordRequest{
		CurrentPassword: input.Body.CurrentPassword,
		NewPassword:     input.Body.NewPassword,
	})
	if err != nil {
		return nil, err
	}
	return nil, nil
}
