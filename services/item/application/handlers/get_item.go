package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/itemsvc/pkg/errhttp"
	"github.com/ghuser/itemsvc/pkg/httpx"
	"github.com/ghuser/itemsvc/pkg/logger"
	appsvcs "github.com/ghuser/itemsvc/services/item/application/services"
)

// GetItemHandler handles GET /api/items/{id} requests.
type GetItemHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services, log logger.Logger) *GetItemHandler {
	return &GetItemHandler{svc: svc, log: log}
}

// Execute fetches a single item by id.
//
//	@Summary		Get item
//	@Description	Returns the item with the given 24-character hex id
//	@Tags			items
//	@Produce		json
//	@Param			id	path		string	true	"Item ID"
//	@Success		200	{object}	httpx.Envelope{data=ItemResponse}
//	@Failure		400	{object}	httpx.Envelope
//	@Failure		404	{object}	httpx.Envelope
//	@Router			/items/{id} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.Item.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		errhttp.WriteError(r.Context(), w, h.log, err)
		return
	}

	httpx.OK(w, http.StatusOK, "Item retrieved successfully", toItemResponse(item))
}
