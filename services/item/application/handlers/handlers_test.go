package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/itemsvc/pkg/httpx"
	"github.com/ghuser/itemsvc/pkg/logger"
	appsvcs "github.com/ghuser/itemsvc/services/item/application/services"
	itemdomain "github.com/ghuser/itemsvc/services/item/domain"
	"github.com/ghuser/itemsvc/services/item/domain/models"
)

// fakeRepo is a minimal in-memory ItemRepository backing the HTTP tests.
type fakeRepo struct {
	items []*models.Item
}

func (f *fakeRepo) Insert(_ context.Context, params models.NewItemParams) (*models.Item, error) {
	for _, it := range f.items {
		if it.Name == params.Name {
			return nil, itemdomain.ErrItemNameExists
		}
	}
	now := time.Now().UTC()
	item := &models.Item{
		ID:          models.NewItemID(),
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakeRepo) FindByID(_ context.Context, id models.ItemID) (*models.Item, error) {
	for _, it := range f.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, itemdomain.ErrItemNotFound
}

func (f *fakeRepo) FindByName(_ context.Context, name string) (*models.Item, error) {
	for _, it := range f.items {
		if it.Name == name {
			return it, nil
		}
	}
	return nil, itemdomain.ErrItemNotFound
}

func (f *fakeRepo) UpdateByID(_ context.Context, id models.ItemID, patch models.ItemPatch) (*models.Item, error) {
	for i, it := range f.items {
		if it.ID == id {
			updated := patch.Apply(*it)
			updated.UpdatedAt = time.Now().UTC()
			f.items[i] = &updated
			return &updated, nil
		}
	}
	return nil, itemdomain.ErrItemNotFound
}

func (f *fakeRepo) DeleteByID(_ context.Context, id models.ItemID) error {
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return itemdomain.ErrItemNotFound
}

func (f *fakeRepo) ListAll(_ context.Context) ([]*models.Item, error) {
	out := make([]*models.Item, 0, len(f.items))
	for i := len(f.items) - 1; i >= 0; i-- {
		out = append(out, f.items[i])
	}
	return out, nil
}

func (f *fakeRepo) SearchByName(_ context.Context, term string) ([]*models.Item, error) {
	lower := strings.ToLower(term)
	var out []*models.Item
	for i := len(f.items) - 1; i >= 0; i-- {
		if strings.Contains(strings.ToLower(f.items[i].Name), lower) {
			out = append(out, f.items[i])
		}
	}
	return out, nil
}

// newTestRouter mounts the item endpoints under /api/items the way cmd/api does,
// backed by the fake repository.
func newTestRouter() *chi.Mux {
	log := logger.New("error")
	svcs := &appsvcs.Services{Item: appsvcs.NewItemService(&fakeRepo{})}

	r := chi.NewRouter()
	r.NotFound(httpx.NotFoundHandler())
	r.Route("/api/items", func(r chi.Router) {
		r.Post("/", NewPostItemHandler(svcs, log).Execute)
		r.Get("/", NewGetItemsHandler(svcs, log).Execute)
		r.Get("/{id}", NewGetItemHandler(svcs, log).Execute)
		r.Put("/{id}", NewPutItemHandler(svcs, log).Execute)
		r.Delete("/{id}", NewDeleteItemHandler(svcs, log).Execute)
	})
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) (int, envelope) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: non-envelope body %q: %v", method, path, rec.Body.String(), err)
	}
	return rec.Code, env
}

func TestItemEndpoints_Lifecycle(t *testing.T) {
	r := newTestRouter()

	// Create
	status, env := doJSON(t, r, http.MethodPost, "/api/items",
		`{"name":"Laptop","description":"High-performance laptop","price":999.99}`)
	if status != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", status)
	}
	if !env.Success || env.Message != "Item created successfully" {
		t.Fatalf("create envelope = %+v", env)
	}
	var created ItemResponse
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("create data: %v", err)
	}
	if created.ID == "" || created.Name != "Laptop" || created.Price != 999.99 {
		t.Fatalf("created item = %+v", created)
	}

	// Duplicate name
	status, env = doJSON(t, r, http.MethodPost, "/api/items",
		`{"name":"Laptop","description":"another","price":1}`)
	if status != http.StatusConflict {
		t.Fatalf("duplicate status = %d, want 409", status)
	}
	if env.Success || env.Message != "Item name already exists." {
		t.Fatalf("duplicate envelope = %+v", env)
	}

	// Search
	status, env = doJSON(t, r, http.MethodGet, "/api/items?search=lap", "")
	if status != http.StatusOK {
		t.Fatalf("search status = %d, want 200", status)
	}
	if env.Message != "Items retrieved successfully" {
		t.Fatalf("search message = %q", env.Message)
	}
	var list []ItemResponse
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("search data: %v", err)
	}
	if len(list) != 1 || list[0].ID != created.ID {
		t.Fatalf("search result = %+v", list)
	}

	// Partial update: price only, name untouched
	status, env = doJSON(t, r, http.MethodPut, "/api/items/"+created.ID, `{"price":1099.99}`)
	if status != http.StatusOK {
		t.Fatalf("update status = %d, want 200", status)
	}
	if env.Message != "Item updated successfully" {
		t.Fatalf("update message = %q", env.Message)
	}
	var updated ItemResponse
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		t.Fatalf("update data: %v", err)
	}
	if updated.Price != 1099.99 || updated.Name != "Laptop" {
		t.Fatalf("updated item = %+v", updated)
	}

	// Delete
	status, env = doJSON(t, r, http.MethodDelete, "/api/items/"+created.ID, "")
	if status != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", status)
	}
	if env.Message != "Item deleted successfully" || string(env.Data) != "null" {
		t.Fatalf("delete envelope = %+v data=%s", env, env.Data)
	}

	// Gone
	status, env = doJSON(t, r, http.MethodGet, "/api/items/"+created.ID, "")
	if status != http.StatusNotFound {
		t.Fatalf("get-after-delete status = %d, want 404", status)
	}
	if env.Success || env.Message != "Item not found" {
		t.Fatalf("get-after-delete envelope = %+v", env)
	}
}

func TestItemEndpoints_Validation(t *testing.T) {
	r := newTestRouter()

	t.Run("missing fields accumulate", func(t *testing.T) {
		status, env := doJSON(t, r, http.MethodPost, "/api/items", `{}`)
		if status != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", status)
		}
		for _, want := range []string{"Item name is required", "Item description is required", "Item price is required"} {
			if !strings.Contains(env.Message, want) {
				t.Errorf("message %q missing %q", env.Message, want)
			}
		}
		if !strings.HasPrefix(env.Message, "Validation Error: ") {
			t.Errorf("message %q lacks prefix", env.Message)
		}
	})

	t.Run("wrong type for price", func(t *testing.T) {
		status, env := doJSON(t, r, http.MethodPost, "/api/items",
			`{"name":"Laptop","description":"x","price":"cheap"}`)
		if status != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", status)
		}
		if !strings.Contains(env.Message, "Item price must be a number") {
			t.Errorf("message = %q", env.Message)
		}
	})

	t.Run("malformed JSON", func(t *testing.T) {
		status, env := doJSON(t, r, http.MethodPost, "/api/items", `{"name":`)
		if status != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", status)
		}
		if env.Message != "Invalid JSON payload" {
			t.Errorf("message = %q", env.Message)
		}
	})

	t.Run("zero price rejected distinctly", func(t *testing.T) {
		_, env := doJSON(t, r, http.MethodPost, "/api/items",
			`{"name":"Laptop","description":"x","price":0}`)
		if !strings.Contains(env.Message, "Price must be greater than 0") {
			t.Errorf("message = %q", env.Message)
		}
	})

	t.Run("negative price rejected distinctly", func(t *testing.T) {
		_, env := doJSON(t, r, http.MethodPost, "/api/items",
			`{"name":"Laptop","description":"x","price":-5}`)
		if !strings.Contains(env.Message, "Price cannot be negative") {
			t.Errorf("message = %q", env.Message)
		}
	})

	t.Run("empty update body", func(t *testing.T) {
		status, env := doJSON(t, r, http.MethodPut, "/api/items/507f1f77bcf86cd799439011", `{}`)
		if status != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", status)
		}
		if env.Message != "At least one field (name, description, or price) must be provided for update" {
			t.Errorf("message = %q", env.Message)
		}
	})
}

func TestItemEndpoints_MalformedID(t *testing.T) {
	r := newTestRouter()

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		status, env := doJSON(t, r, method, "/api/items/abc", "")
		if status != http.StatusBadRequest {
			t.Fatalf("%s status = %d, want 400", method, status)
		}
		if env.Message != "Invalid item ID format" {
			t.Errorf("%s message = %q", method, env.Message)
		}
	}

	status, env := doJSON(t, r, http.MethodPut, "/api/items/abc", `{"price":1}`)
	if status != http.StatusBadRequest {
		t.Fatalf("PUT status = %d, want 400", status)
	}
	if env.Message != "Invalid item ID format" {
		t.Errorf("PUT message = %q", env.Message)
	}
}

func TestItemEndpoints_UnknownRoute(t *testing.T) {
	r := newTestRouter()

	status, env := doJSON(t, r, http.MethodGet, "/api/unknown", "")
	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
	if env.Success || env.Message != "Route not found" {
		t.Fatalf("envelope = %+v", env)
	}
}
