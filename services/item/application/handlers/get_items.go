package handlers

import (
	"net/http"

	"github.com/ghuser/itemsvc/pkg/errhttp"
	"github.com/ghuser/itemsvc/pkg/httpx"
	"github.com/ghuser/itemsvc/pkg/logger"
	appsvcs "github.com/ghuser/itemsvc/services/item/application/services"
)

// GetItemsHandler handles GET /api/items requests, with optional search.
type GetItemsHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetItemsHandler returns a GetItemsHandler backed by the given services.
func NewGetItemsHandler(svc *appsvcs.Services, log logger.Logger) *GetItemsHandler {
	return &GetItemsHandler{svc: svc, log: log}
}

// Execute lists items, newest first. A non-empty search query filters by
// case-insensitive substring match on the name.
//
//	@Summary		List items
//	@Description	Returns all items, or those whose name contains the search term
//	@Tags			items
//	@Produce		json
//	@Param			search	query		string	false	"Case-insensitive name substring"
//	@Success		200		{object}	httpx.Envelope{data=[]ItemResponse}
//	@Router			/items [get]
func (h *GetItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Item.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		errhttp.WriteError(r.Context(), w, h.log, err)
		return
	}

	httpx.OK(w, http.StatusOK, "Items retrieved successfully", toItemResponses(items))
}
