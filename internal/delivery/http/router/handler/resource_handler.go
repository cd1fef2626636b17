// Package handler contains the HTTP handlers for the application.
package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"stockroom/internal/delivery/http/response"
	"stockroom/internal/domain/entity"
	"stockroom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ResourceHandler serves the CRUD surface of one document collection. The
// items and out-of-stock controllers are the same handler instantiated with
// different record types.
type ResourceHandler[T any] struct {
	uc     usecase.ResourceUsecase[T]
	label  string
	logger *slog.Logger
}

// NewItemHandler is the constructor for the items handler, injected by Fx.
func NewItemHandler(uc usecase.ResourceUsecase[entity.Item], logger *slog.Logger) *ResourceHandler[entity.Item] {
	return &ResourceHandler[entity.Item]{uc: uc, label: "Item", logger: logger}
}

// NewOutOfStockHandler is the constructor for the out-of-stock handler, injected by Fx.
func NewOutOfStockHandler(uc usecase.ResourceUsecase[entity.OutOfStockRequest], logger *slog.Logger) *ResourceHandler[entity.OutOfStockRequest] {
	return &ResourceHandler[entity.OutOfStockRequest]{uc: uc, label: "Out-of-stock request", logger: logger}
}

// ListAll handles GET on the collection.
func (h *ResourceHandler[T]) ListAll(c echo.Context) error {
	records, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "")
}

// GetByID handles GET on a single record.
func (h *ResourceHandler[T]) GetByID(c echo.Context) error {
	record, err := h.uc.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "")
}

// Create handles POST on the collection. Validation failures prevent any
// persistence attempt.
func (h *ResourceHandler[T]) Create(c echo.Context) error {
	payload := new(T)
	if err := c.Bind(payload); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(payload); err != nil {
		return err
	}

	id, err := h.uc.Create(c.Request().Context(), payload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": id}, fmt.Sprintf("%s created", h.label))
}

// Replace handles PUT on a single record with full-replace semantics.
func (h *ResourceHandler[T]) Replace(c echo.Context) error {
	payload := new(T)
	if err := c.Bind(payload); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(payload); err != nil {
		return err
	}

	if err := h.uc.Replace(c.Request().Context(), c.Param("id"), payload); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, fmt.Sprintf("%s updated", h.label))
}

// Delete handles DELETE on a single record.
func (h *ResourceHandler[T]) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, fmt.Sprintf("%s deleted", h.label))
}
