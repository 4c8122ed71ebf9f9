package handlers

import (
	"errors"

	"paydesk/internal/core/domain"
	"paydesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// translateError maps core error types onto HTTP responses. Anything outside
// the taxonomy is a 500 with no internals leaked.
func translateError(c *fiber.Ctx, err error) error {
	var (
		validationErr  *domain.ValidationError
		notFoundErr    *domain.NotFoundError
		referentialErr *domain.ReferentialIntegrityError
		conflictErr    *domain.ConflictError
		transitionErr  *domain.TransitionError
	)

	switch {
	case errors.As(err, &validationErr):
		return response.ValidationFailed(c, validationErr.Fields)
	case errors.As(err, &notFoundErr):
		return response.NotFound(c, notFoundErr.Error())
	case errors.As(err, &referentialErr):
		return response.NotFound(c, referentialErr.Error())
	case errors.As(err, &conflictErr):
		return response.Conflict(c, conflictErr.Error())
	case errors.As(err, &transitionErr):
		return response.UnprocessableEntity(c, transitionErr.Error())
	default:
		return response.InternalServerError(c, "internal server error")
	}
}

// parseID parses the :id route parameter as a positive integer
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
