package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/itemsvc/pkg/errhttp"
	"github.com/ghuser/itemsvc/pkg/httpx"
	"github.com/ghuser/itemsvc/pkg/logger"
	appsvcs "github.com/ghuser/itemsvc/services/item/application/services"
)

// DeleteItemHandler handles DELETE /api/items/{id} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services, log logger.Logger) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc, log: log}
}

// Execute permanently deletes an item. Deletion is immediate; there is no
// soft-delete.
//
//	@Summary		Delete item
//	@Description	Deletes the item with the given id
//	@Tags			items
//	@Produce		json
//	@Param			id	path		string	true	"Item ID"
//	@Success		200	{object}	httpx.Envelope
//	@Failure		400	{object}	httpx.Envelope
//	@Failure		404	{object}	httpx.Envelope
//	@Router			/items/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Item.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		errhttp.WriteError(r.Context(), w, h.log, err)
		return
	}

	httpx.OK(w, http.StatusOK, "Item deleted successfully", nil)
}
