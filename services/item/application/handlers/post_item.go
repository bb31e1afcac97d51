package handlers

import (
	"net/http"

	"github.com/ghuser/itemsvc/pkg/errhttp"
	"github.com/ghuser/itemsvc/pkg/httpx"
	"github.com/ghuser/itemsvc/pkg/logger"
	appsvcs "github.com/ghuser/itemsvc/services/item/application/services"
	domainsvcs "github.com/ghuser/itemsvc/services/item/domain/services"
)

// PostItemHandler handles POST /api/items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services, log logger.Logger) *PostItemHandler {
	return &PostItemHandler{svc: svc, log: log}
}

// Execute creates a new item.
//
//	@Summary		Create item
//	@Description	Creates a new item; the name must be unique across all items
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		handlers.itemBody	true	"Item creation request"
//	@Success		201		{object}	httpx.Envelope{data=ItemResponse}
//	@Failure		400		{object}	httpx.Envelope
//	@Failure		409		{object}	httpx.Envelope
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Create(r.Context(), domainsvcs.CreateItemInput{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
	})
	if err != nil {
		errhttp.WriteError(r.Context(), w, h.log, err)
		return
	}

	httpx.OK(w, http.StatusCreated, "Item created successfully", toItemResponse(item))
}
