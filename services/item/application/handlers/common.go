package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ghuser/itemsvc/pkg/httpx"
	itemdomain "github.com/ghuser/itemsvc/services/item/domain"
	"github.com/ghuser/itemsvc/services/item/domain/models"
)

// ItemResponse is the JSON projection of an item used by every endpoint.
type ItemResponse struct {
	ID          string    `json:"id"          example:"507f1f77bcf86cd799439011"`
	Name        string    `json:"name"        example:"Laptop"`
	Description string    `json:"description" example:"High-performance laptop with 16GB RAM"`
	Price       float64   `json:"price"       example:"999.99"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
} // @name ItemResponse

func toItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func toItemResponses(items []*models.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = toItemResponse(item)
	}
	return out
}

// itemBody is the raw request body for create and update. Pointer fields
// distinguish absent fields from zero values so partial updates work.
type itemBody struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

// fieldTypes maps JSON field names to the wrong-type violation message.
var fieldTypes = map[string]string{
	"name":        "Item name must be a string",
	"description": "Item description must be a string",
	"price":       "Item price must be a number",
}

// decodeBody parses the request body into an itemBody, translating JSON type
// mismatches into the same accumulated ValidationError shape the domain
// validator produces. Returns false after writing the response on failure.
func decodeBody(w http.ResponseWriter, r *http.Request) (itemBody, bool) {
	var body itemBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			reason, known := fieldTypes[typeErr.Field]
			if !known {
				reason = fmt.Sprintf("must not be a %s", typeErr.Value)
			}
			ve := (&itemdomain.ValidationError{}).Add(typeErr.Field, reason)
			httpx.Fail(w, http.StatusBadRequest, ve.Error())
			return itemBody{}, false
		}
		httpx.Fail(w, http.StatusBadRequest, "Invalid JSON payload")
		return itemBody{}, false
	}
	return body, true
}
