package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/utils"
)

// statusFor maps a business error kind to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, entities.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrDuplicateResource), errors.Is(err, entities.ErrInsufficientStock):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// writeServiceError answers with the business error as is, or with a generic
// 500 whose detail only goes to the log.
func writeServiceError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, err error, msg string) {
	if code := entities.ErrorCode(err); code != "" {
		utils.WriteCodedError(w, err.Error(), code, statusFor(err))
		return
	}

	logger.ErrorContext(ctx, msg, slog.Any("error", err))
	utils.WriteError(w, "internal server error", http.StatusInternalServerError)
}
