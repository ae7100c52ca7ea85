package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"dealwish-backend/models"
	"dealwish-backend/repository"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*models.User

	// beforeCreate runs inside Create before the uniqueness check,
	// letting a test slip a concurrent insert in.
	beforeCreate func()
	getErr       error
	creates      int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*models.User{}}
}

func (r *fakeUserRepo) put(u *models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byEmail[u.Email] = u
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	u, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if r.beforeCreate != nil {
		r.beforeCreate()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	if _, ok := r.byEmail[user.Email]; ok {
		return repository.ErrUniqueViolation
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	r.byEmail[user.Email] = &cp
	return nil
}

type fakeDealRepo struct {
	deals   map[uuid.UUID]*models.Deal
	listErr error
	getErr  error
}

func newFakeDealRepo(deals ...*models.Deal) *fakeDealRepo {
	r := &fakeDealRepo{deals: map[uuid.UUID]*models.Deal{}}
	for _, d := range deals {
		r.deals[d.ID] = d
	}
	return r
}

func (r *fakeDealRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Deal, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	d, ok := r.deals[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDealRepo) ListAll(ctx context.Context) ([]*models.Deal, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*models.Deal, 0, len(r.deals))
	for _, d := range r.deals {
		cp := *d
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type wishlistKey struct {
	userID uuid.UUID
	dealID uuid.UUID
}

type fakeWishlistRepo struct {
	mu      sync.Mutex
	entries map[wishlistKey]*models.WishlistEntry
	deals   *fakeDealRepo

	// hideOnGet makes GetByUserAndDeal miss, as if a concurrent insert
	// had not yet committed.
	hideOnGet bool
	createErr error
}

func newFakeWishlistRepo(deals *fakeDealRepo) *fakeWishlistRepo {
	return &fakeWishlistRepo{entries: map[wishlistKey]*models.WishlistEntry{}, deals: deals}
}

func (r *fakeWishlistRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *fakeWishlistRepo) Create(ctx context.Context, entry *models.WishlistEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	key := wishlistKey{entry.UserID, entry.DealID}
	if _, ok := r.entries[key]; ok {
		return repository.ErrUniqueViolation
	}
	entry.ID = uuid.New()
	entry.CreatedAt = time.Now().Add(time.Duration(len(r.entries)) * time.Millisecond)
	cp := *entry
	r.entries[key] = &cp
	return nil
}

func (r *fakeWishlistRepo) GetByUserAndDeal(ctx context.Context, userID, dealID uuid.UUID) (*models.WishlistEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[wishlistKey{userID, dealID}]
	if !ok || r.hideOnGet {
		return nil, repository.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeWishlistRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := []models.WishlistItem{}
	for key, e := range r.entries {
		if key.userID != userID {
			continue
		}
		deal := r.deals.deals[e.DealID]
		items = append(items, models.NewWishlistItem(e, deal))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

func (r *fakeWishlistRepo) UpdateAlert(ctx context.Context, userID, dealID uuid.UUID, enabled bool) (*models.WishlistEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[wishlistKey{userID, dealID}]
	if !ok {
		return nil, repository.ErrNotFound
	}
	e.AlertEnabled = enabled
	cp := *e
	return &cp, nil
}

func (r *fakeWishlistRepo) DeleteByUserAndDeal(ctx context.Context, userID, dealID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := wishlistKey{userID, dealID}
	if _, ok := r.entries[key]; !ok {
		return repository.ErrNotFound
	}
	delete(r.entries, key)
	return nil
}

type fakeAnalyticsRepo struct {
	mu     sync.Mutex
	events []models.AnalyticsEvent
	err    error
	ctxErr error
}

func (r *fakeAnalyticsRepo) Create(ctx context.Context, event *models.AnalyticsEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctxErr = ctx.Err()
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, *event)
	return nil
}

func (r *fakeAnalyticsRepo) recorded() []models.AnalyticsEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.AnalyticsEvent(nil), r.events...)
}

type fakeImageResolver struct {
	err error
}

func (f fakeImageResolver) ResolveURL(ctx context.Context, ref string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "https://cdn.test/" + ref, nil
}

var errStore = errors.New("connection reset")

func strPtr(s string) *string { return &s }

func newDeal(title string, created time.Time) *models.Deal {
	return &models.Deal{
		ID:            uuid.New(),
		Title:         title,
		OriginalPrice: "100.00",
		CurrentPrice:  "79.99",
		IsActive:      true,
		CreatedAt:     created,
		UpdatedAt:     created,
	}
}
