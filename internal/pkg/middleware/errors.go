package middleware

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/enternet/portal/app/repository"
	"github.com/enternet/portal/internal/pkg/apperror"
	"github.com/enternet/portal/internal/pkg/env"
	"github.com/enternet/portal/internal/pkg/usercontext"
	"github.com/enternet/portal/internal/pkg/viewmodel"
)

// ToAppError maps any handler error onto an AppError
func ToAppError(err error) *apperror.AppError {
	if appErr, ok := apperror.As(err); ok {
		return appErr
	}
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NewNotFoundError("record not found")
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		switch fiberErr.Code {
		case fiber.StatusNotFound:
			return apperror.NewNotFoundError(fiberErr.Message)
		case fiber.StatusBadRequest:
			return apperror.NewBadRequestError(fiberErr.Message)
		}
		return &apperror.AppError{Type: apperror.ErrorTypeBadRequest, Message: fiberErr.Message, Code: fiberErr.Code}
	}

	return apperror.NewInternalError("internal server error")
}

// ErrorHandler is the fiber error handler. API requests get a JSON body,
// page requests the error template.
func ErrorHandler(c *fiber.Ctx, err error) error {
	appErr := ToAppError(err)
	if appErr.Code >= fiber.StatusInternalServerError {
		slog.ErrorContext(c.UserContext(), "Request failed", "method", c.Method(), "path", c.Path(), "error", err)
	}

	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(appErr.Code).JSON(fiber.Map{"error": appErr})
	}

	page := viewmodel.ErrorPage{
		Layout: viewmodel.Layout{
			Page:         "error",
			Title:        "Error",
			CustomerName: usercontext.GetCustomerName(c),
			IsDev:        env.IsDev(),
		},
		Code:    appErr.Code,
		Message: viewmodel.ErrorMessage(appErr.Code),
	}
	c.Status(appErr.Code)
	if renderErr := c.Render("error", page, "layouts/main"); renderErr != nil {
		return c.Status(appErr.Code).SendString(page.Message)
	}
	return nil
}
