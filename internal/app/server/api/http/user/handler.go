package user

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"bookmarkhub/internal/app/server/api/http/middleware/auth"
	"bookmarkhub/internal/domain/session"
	"bookmarkhub/internal/domain/user"
)

type Handler struct {
	service        user.Servicer
	session        session.Servicer
	log            *slog.Logger
	middleware     huma.Middlewares
	authMiddleware huma.Middlewares
}

// NewHandler принимает два набора middleware: для публичных операций и для
// операций, требующих токен.
func NewHandler(service user.Servicer, session session.Servicer, log *slog.Logger, public, authed huma.Middlewares) *Handler {
	return &Handler{
		service:        service,
		session:        session,
		log:            log.With("component", "auth_handler"),
		middleware:     public,
		authMiddleware: authed,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.signupOp(), h.signup)
	huma.Register(api, h.signinOp(), h.signin)
	huma.Register(api, h.signoutOp(), h.signout)
	huma.Register(api, h.currentUserOp(), h.currentUser)
}

func (h *Handler) signup(ctx context.Context, input *credentialsInput) (*sessionOutput, error) {
	u, err := h.service.Register(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, authError(err)
	}
	return h.issue(ctx, u)
}

func (h *Handler) signin(ctx context.Context, input *credentialsInput) (*sessionOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, authError(err)
	}
	return h.issue(ctx, u)
}

func (h *Handler) issue(ctx context.Context, u user.User) (*sessionOutput, error) {
	token, err := h.session.Create(ctx, u.ID)
	if err != nil {
		h.log.Error("failed to create session", "user_id", u.ID, "error", err)
		return nil, huma.Error500InternalServerError("failed to create session")
	}

	return &sessionOutput{
		Body: SessionResponse{
			AccessToken: token.Value,
			ExpiresAt:   token.ExpiresAt,
			User:        toResponse(u),
		},
	}, nil
}

func (h *Handler) signout(ctx context.Context, _ *struct{}) (*logoutOutput, error) {
	token, ok := auth.GetToken(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}
	if err := h.session.Revoke(ctx, token); err != nil {
		h.log.Error("failed to revoke session", "error", err)
		return nil, huma.Error500InternalServerError("failed to sign out")
	}
	return &logoutOutput{}, nil
}

func (h *Handler) currentUser(ctx context.Context, _ *struct{}) (*userOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	u, err := h.service.Find(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, huma.Error401Unauthorized("session user no longer exists")
		}
		h.log.Error("failed to load session user", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("failed to load user")
	}
	return &userOutput{Body: toResponse(u)}, nil
}

func toResponse(u user.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, AvatarURL: u.AvatarURL}
}

// authError отдаёт клиенту текст ошибки как есть: его показывают пользователю.
func authError(err error) error {
	switch {
	case errors.Is(err, user.ErrInvalidAuth):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, user.ErrInvalidInput):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, user.ErrAlreadyExists):
		return huma.Error409Conflict(err.Error())
	default:
		return huma.Error500InternalServerError("authentication service error")
	}
}
