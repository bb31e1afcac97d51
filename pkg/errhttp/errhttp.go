// Package errhttp translates domain failures to HTTP status codes and the
// uniform response envelope. Add a case to classify for each new failure kind.
package errhttp

import (
	"context"
	"errors"
	"net/http"

	"github.com/ghuser/itemsvc/pkg/httpx"
	"github.com/ghuser/itemsvc/pkg/logger"
	itemdomain "github.com/ghuser/itemsvc/services/item/domain"
)

// WriteError maps err to an HTTP status and writes a failure envelope.
// Uses errors.Is/errors.As so wrapped errors are matched correctly.
// Unclassified failures become a generic 500; their detail is logged
// server-side and never sent to the client.
func WriteError(ctx context.Context, w http.ResponseWriter, log logger.Logger, err error) {
	status, message := classify(err)
	if status == http.StatusInternalServerError && log != nil {
		log.ErrorContext(ctx, "unhandled error", "error", err)
	}
	httpx.Fail(w, status, message)
}

func classify(err error) (int, string) {
	var ve *itemdomain.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Error()
	case errors.Is(err, itemdomain.ErrEmptyUpdate):
		return http.StatusBadRequest, "At least one field (name, description, or price) must be provided for update"
	case errors.Is(err, itemdomain.ErrMalformedItemID):
		return http.StatusBadRequest, "Invalid item ID format"
	case errors.Is(err, itemdomain.ErrItemNotFound):
		return http.StatusNotFound, "Item not found"
	case errors.Is(err, itemdomain.ErrItemNameExists):
		return http.StatusConflict, "Item name already exists."
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}
