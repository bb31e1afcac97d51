package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/itemsvc/pkg/errhttp"
	"github.com/ghuser/itemsvc/pkg/httpx"
	"github.com/ghuser/itemsvc/pkg/logger"
	appsvcs "github.com/ghuser/itemsvc/services/item/application/services"
	domainsvcs "github.com/ghuser/itemsvc/services/item/domain/services"
)

// PutItemHandler handles PUT /api/items/{id} requests.
type PutItemHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPutItemHandler returns a PutItemHandler backed by the given services.
func NewPutItemHandler(svc *appsvcs.Services, log logger.Logger) *PutItemHandler {
	return &PutItemHandler{svc: svc, log: log}
}

// Execute applies a partial update to an item. At least one of name,
// description, or price must be present.
//
//	@Summary		Update item
//	@Description	Partially updates an item; absent fields are left unchanged
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Item ID"
//	@Param			request	body		handlers.itemBody	true	"Fields to update"
//	@Success		200		{object}	httpx.Envelope{data=ItemResponse}
//	@Failure		400		{object}	httpx.Envelope
//	@Failure		404		{object}	httpx.Envelope
//	@Failure		409		{object}	httpx.Envelope
//	@Router			/items/{id} [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Update(r.Context(), chi.URLParam(r, "id"), domainsvcs.UpdateItemInput{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
	})
	if err != nil {
		errhttp.WriteError(r.Context(), w, h.log, err)
		return
	}

	httpx.OK(w, http.StatusOK, "Item updated successfully", toItemResponse(item))
}
