package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"dealwish-backend/auth"
	"dealwish-backend/middleware"
	"dealwish-backend/models"
	"dealwish-backend/repository"
	"dealwish-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore backs the deal, wishlist and analytics repositories in memory
type memStore struct {
	mu      sync.Mutex
	deals   map[uuid.UUID]*models.Deal
	entries []*models.WishlistEntry
	events  []models.AnalyticsEvent
}

func (m *memStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Deal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.deals[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (m *memStore) ListAll(ctx context.Context) ([]*models.Deal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.Deal, 0, len(m.deals))
	for _, d := range m.deals {
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

type memWishlist struct{ *memStore }

func (m memWishlist) find(userID, dealID uuid.UUID) int {
	for i, e := range m.entries {
		if e.UserID == userID && e.DealID == dealID {
			return i
		}
	}
	return -1
}

func (m memWishlist) Create(ctx context.Context, entry *models.WishlistEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.find(entry.UserID, entry.DealID) >= 0 {
		return repository.ErrUniqueViolation
	}
	entry.ID = uuid.New()
	entry.CreatedAt = time.Now()
	cp := *entry
	m.entries = append(m.entries, &cp)
	return nil
}

func (m memWishlist) GetByUserAndDeal(ctx context.Context, userID, dealID uuid.UUID) (*models.WishlistEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.find(userID, dealID)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	cp := *m.entries[i]
	return &cp, nil
}

func (m memWishlist) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := []models.WishlistItem{}
	for _, e := range m.entries {
		if e.UserID == userID {
			items = append(items, models.NewWishlistItem(e, m.deals[e.DealID]))
		}
	}
	return items, nil
}

func (m memWishlist) UpdateAlert(ctx context.Context, userID, dealID uuid.UUID, enabled bool) (*models.WishlistEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.find(userID, dealID)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	m.entries[i].AlertEnabled = enabled
	cp := *m.entries[i]
	return &cp, nil
}

func (m memWishlist) DeleteByUserAndDeal(ctx context.Context, userID, dealID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.find(userID, dealID)
	if i < 0 {
		return repository.ErrNotFound
	}
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	return nil
}

type memAnalytics struct{ *memStore }

func (m memAnalytics) Create(ctx context.Context, event *models.AnalyticsEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, *event)
	return nil
}

// tokenVerifier treats the token as the caller's email
type tokenVerifier struct{}

func (tokenVerifier) VerifyToken(ctx context.Context, token string) (*auth.Identity, error) {
	return &auth.Identity{Email: token}, nil
}

type userTable map[string]*models.User

func (u userTable) Resolve(ctx context.Context, email, suggestedName string) (*models.User, error) {
	return u[email], nil
}

type wishlistBody struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   int             `json:"count"`
	Data    json.RawMessage `json:"data"`
}

func call(t *testing.T, r http.Handler, token, method, path, body string) (int, wishlistBody) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out wishlistBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return w.Code, out
}

func TestWishlistScenarios(t *testing.T) {
	deal := &models.Deal{ID: uuid.New(), Title: "KitchenAid Stand Mixer", CurrentPrice: "299.99", IsActive: true}
	other := &models.Deal{ID: uuid.New(), Title: "Nike Air Max 270", CurrentPrice: "89.99", IsActive: true}
	store := &memStore{deals: map[uuid.UUID]*models.Deal{deal.ID: deal, other.ID: other}}

	free := &models.User{ID: uuid.New(), Email: "u@example.com"}
	paid := &models.User{ID: uuid.New(), Email: "s@example.com", IsSubscriber: true}

	svc := service.NewWishlistService(
		service.WithWishlistRepository(memWishlist{store}),
		service.WithDealRepository(store),
		service.WithEventRecorder(service.NewEventRecorder(memAnalytics{store}, nil)),
	)
	authn := middleware.NewAuthenticator(tokenVerifier{}, userTable{free.Email: free, paid.Email: paid}, nil)

	r := gin.New()
	RegisterRoutes(r, authn, NewDealHandler(store, nil), NewWishlistHandler(svc, nil))

	addBody := `{"dealId":"` + deal.ID.String() + `"}`

	// U saves D
	status, res := call(t, r, free.Email, http.MethodPost, "/api/wishlist", addBody)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Deal added to wishlist", res.Message)

	// U saves D again: one row, existing entry returned
	status, res = call(t, r, free.Email, http.MethodPost, "/api/wishlist", addBody)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Deal already in wishlist", res.Message)
	assert.Len(t, store.entries, 1)

	// U asks for an alert on another deal: refused, nothing stored
	status, _ = call(t, r, free.Email, http.MethodPost, "/api/wishlist", `{"dealId":"`+other.ID.String()+`","alertEnabled":true}`)
	require.Equal(t, http.StatusForbidden, status)
	assert.Len(t, store.entries, 1)

	// S saves D with an alert
	status, res = call(t, r, paid.Email, http.MethodPost, "/api/wishlist", `{"dealId":"`+deal.ID.String()+`","alertEnabled":true}`)
	require.Equal(t, http.StatusCreated, status)
	var entry models.WishlistEntry
	require.NoError(t, json.Unmarshal(res.Data, &entry))
	assert.True(t, entry.AlertEnabled)
	assert.Equal(t, paid.ID, entry.UserID)

	// U removes D and no longer sees it
	status, res = call(t, r, free.Email, http.MethodDelete, "/api/wishlist/"+deal.ID.String(), "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Deal removed from wishlist", res.Message)

	status, res = call(t, r, free.Email, http.MethodGet, "/api/wishlist", "")
	require.Equal(t, http.StatusOK, status)
	assert.Zero(t, res.Count)
	assert.JSONEq(t, `[]`, string(res.Data))

	// S still has D
	status, res = call(t, r, paid.Email, http.MethodGet, "/api/wishlist", "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 1, res.Count)
	var items []models.WishlistItem
	require.NoError(t, json.Unmarshal(res.Data, &items))
	assert.Equal(t, deal.ID, items[0].DealID)

	actions := make([]models.AnalyticsAction, 0, len(store.events))
	for _, e := range store.events {
		actions = append(actions, e.Action)
	}
	assert.Equal(t, []models.AnalyticsAction{models.ActionAdd, models.ActionAdd, models.ActionRemove}, actions)
}
