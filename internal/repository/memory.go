package repository

import (
	"sync"
	"time"

	"github.com/everafter/gallery-backend/internal/models"
)

// Memory repositories back the API with plain maps, no database required.
// Each keeps secondary indexes for its unique fields and takes a single lock
// around check+insert, so a duplicate username, email or slug can never slip
// in between the check and the write. IDs are per-entity counters that reset
// with the process.

type MemoryAdminRepository struct {
	mu     sync.RWMutex
	admins map[uint]models.Admin
	byName map[string]uint
	order  []uint
	nextID uint
}

func NewMemoryAdminRepository() *MemoryAdminRepository {
	return &MemoryAdminRepository{
		admins: make(map[uint]models.Admin),
		byName: make(map[string]uint),
		nextID: 1,
	}
}

func (r *MemoryAdminRepository) GetByID(id uint) (*models.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	admin, ok := r.admins[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &admin, nil
}

func (r *MemoryAdminRepository) GetByUsername(username string) (*models.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[username]
	if !ok {
		return nil, ErrNotFound
	}
	admin := r.admins[id]
	return &admin, nil
}

func (r *MemoryAdminRepository) Create(admin *models.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byName[admin.Username]; taken {
		return ErrDuplicate
	}
	admin.ID = r.nextID
	r.nextID++
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = time.Now()
	}
	r.admins[admin.ID] = *admin
	r.byName[admin.Username] = admin.ID
	r.order = append(r.order, admin.ID)
	return nil
}

func (r *MemoryAdminRepository) GetAll() ([]models.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	admins := make([]models.Admin, 0, len(r.order))
	for _, id := range r.order {
		admins = append(admins, r.admins[id])
	}
	return admins, nil
}

type MemoryCustomerRepository struct {
	mu        sync.RWMutex
	customers map[uint]models.Customer
	byName    map[string]uint
	byEmail   map[string]uint
	order     []uint
	nextID    uint
}

func NewMemoryCustomerRepository() *MemoryCustomerRepository {
	return &MemoryCustomerRepository{
		customers: make(map[uint]models.Customer),
		byName:    make(map[string]uint),
		byEmail:   make(map[string]uint),
		nextID:    1,
	}
}

func (r *MemoryCustomerRepository) GetByID(id uint) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.customers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &customer, nil
}

func (r *MemoryCustomerRepository) GetByUsername(username string) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[username]
	if !ok {
		return nil, ErrNotFound
	}
	customer := r.customers[id]
	return &customer, nil
}

func (r *MemoryCustomerRepository) GetByEmail(email string) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	customer := r.customers[id]
	return &customer, nil
}

func (r *MemoryCustomerRepository) Create(customer *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byName[customer.Username]; taken {
		return ErrDuplicate
	}
	if _, taken := r.byEmail[customer.Email]; taken {
		return ErrDuplicate
	}
	customer.ID = r.nextID
	r.nextID++
	now := time.Now()
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = now
	}
	customer.UpdatedAt = now
	r.customers[customer.ID] = *customer
	r.byName[customer.Username] = customer.ID
	r.byEmail[customer.Email] = customer.ID
	r.order = append(r.order, customer.ID)
	return nil
}

func (r *MemoryCustomerRepository) Update(customer *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.customers[customer.ID]
	if !ok {
		return ErrNotFound
	}
	// Check both unique fields before touching either index, so a rejected
	// update leaves the store exactly as it was.
	if customer.Username != existing.Username {
		if _, taken := r.byName[customer.Username]; taken {
			return ErrDuplicate
		}
	}
	if customer.Email != existing.Email {
		if _, taken := r.byEmail[customer.Email]; taken {
			return ErrDuplicate
		}
	}
	if customer.Username != existing.Username {
		delete(r.byName, existing.Username)
		r.byName[customer.Username] = customer.ID
	}
	if customer.Email != existing.Email {
		delete(r.byEmail, existing.Email)
		r.byEmail[customer.Email] = customer.ID
	}
	customer.UpdatedAt = time.Now()
	r.customers[customer.ID] = *customer
	return nil
}

func (r *MemoryCustomerRepository) GetAll() ([]models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customers := make([]models.Customer, 0, len(r.order))
	for _, id := range r.order {
		customers = append(customers, r.customers[id])
	}
	return customers, nil
}

type MemorySettingsRepository struct {
	mu         sync.RWMutex
	settings   map[uint]models.CustomerSettings
	byCustomer map[uint]uint
	nextID     uint
}

func NewMemorySettingsRepository() *MemorySettingsRepository {
	return &MemorySettingsRepository{
		settings:   make(map[uint]models.CustomerSettings),
		byCustomer: make(map[uint]uint),
		nextID:     1,
	}
}

func (r *MemorySettingsRepository) GetByCustomerID(customerID uint) (*models.CustomerSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byCustomer[customerID]
	if !ok {
		return nil, ErrNotFound
	}
	settings := r.settings[id]
	return &settings, nil
}

func (r *MemorySettingsRepository) Create(settings *models.CustomerSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byCustomer[settings.CustomerID]; taken {
		return ErrDuplicate
	}
	settings.ID = r.nextID
	r.nextID++
	settings.UpdatedAt = time.Now()
	r.settings[settings.ID] = *settings
	r.byCustomer[settings.CustomerID] = settings.ID
	return nil
}

func (r *MemorySettingsRepository) Update(settings *models.CustomerSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.settings[settings.ID]; !ok {
		return ErrNotFound
	}
	settings.UpdatedAt = time.Now()
	r.settings[settings.ID] = *settings
	return nil
}

type MemoryStatsRepository struct {
	mu         sync.RWMutex
	stats      map[uint]models.UsageStats
	byCustomer map[uint]uint
	nextID     uint
}

func NewMemoryStatsRepository() *MemoryStatsRepository {
	return &MemoryStatsRepository{
		stats:      make(map[uint]models.UsageStats),
		byCustomer: make(map[uint]uint),
		nextID:     1,
	}
}

func (r *MemoryStatsRepository) GetByCustomerID(customerID uint) (*models.UsageStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byCustomer[customerID]
	if !ok {
		return nil, ErrNotFound
	}
	stats := r.stats[id]
	return &stats, nil
}

func (r *MemoryStatsRepository) Create(stats *models.UsageStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byCustomer[stats.CustomerID]; taken {
		return ErrDuplicate
	}
	stats.ID = r.nextID
	r.nextID++
	if stats.LastActivity.IsZero() {
		stats.LastActivity = time.Now()
	}
	r.stats[stats.ID] = *stats
	r.byCustomer[stats.CustomerID] = stats.ID
	return nil
}

func (r *MemoryStatsRepository) Update(stats *models.UsageStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.stats[stats.ID]; !ok {
		return ErrNotFound
	}
	r.stats[stats.ID] = *stats
	return nil
}

type MemoryGalleryRepository struct {
	mu        sync.RWMutex
	galleries map[uint]models.WeddingGallery
	bySlug    map[string]uint
	order     []uint
	nextID    uint
}

func NewMemoryGalleryRepository() *MemoryGalleryRepository {
	return &MemoryGalleryRepository{
		galleries: make(map[uint]models.WeddingGallery),
		bySlug:    make(map[string]uint),
		nextID:    1,
	}
}

func (r *MemoryGalleryRepository) GetByID(id uint) (*models.WeddingGallery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	gallery, ok := r.galleries[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &gallery, nil
}

func (r *MemoryGalleryRepository) GetBySlug(slug string) (*models.WeddingGallery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.bySlug[slug]
	if !ok {
		return nil, ErrNotFound
	}
	gallery := r.galleries[id]
	return &gallery, nil
}

func (r *MemoryGalleryRepository) GetByCustomerID(customerID uint) ([]models.WeddingGallery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	galleries := make([]models.WeddingGallery, 0)
	for _, id := range r.order {
		if gallery := r.galleries[id]; gallery.CustomerID == customerID {
			galleries = append(galleries, gallery)
		}
	}
	return galleries, nil
}

func (r *MemoryGalleryRepository) Create(gallery *models.WeddingGallery) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.bySlug[gallery.Slug]; taken {
		return ErrDuplicate
	}
	gallery.ID = r.nextID
	r.nextID++
	now := time.Now()
	if gallery.CreatedAt.IsZero() {
		gallery.CreatedAt = now
	}
	gallery.UpdatedAt = now
	r.galleries[gallery.ID] = *gallery
	r.bySlug[gallery.Slug] = gallery.ID
	r.order = append(r.order, gallery.ID)
	return nil
}

func (r *MemoryGalleryRepository) Update(gallery *models.WeddingGallery) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.galleries[gallery.ID]
	if !ok {
		return ErrNotFound
	}
	if gallery.Slug != existing.Slug {
		if _, taken := r.bySlug[gallery.Slug]; taken {
			return ErrDuplicate
		}
		delete(r.bySlug, existing.Slug)
		r.bySlug[gallery.Slug] = gallery.ID
	}
	gallery.UpdatedAt = time.Now()
	r.galleries[gallery.ID] = *gallery
	return nil
}

func (r *MemoryGalleryRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	gallery, ok := r.galleries[id]
	if !ok {
		return ErrNotFound
	}
	delete(r.galleries, id)
	delete(r.bySlug, gallery.Slug)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type MemoryUserRepository struct {
	mu     sync.RWMutex
	users  map[uint]models.User
	byName map[string]uint
	nextID uint
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users:  make(map[uint]models.User),
		byName: make(map[string]uint),
		nextID: 1,
	}
}

func (r *MemoryUserRepository) GetByID(id uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (r *MemoryUserRepository) GetByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[username]
	if !ok {
		return nil, ErrNotFound
	}
	user := r.users[id]
	return &user, nil
}

func (r *MemoryUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byName[user.Username]; taken {
		return ErrDuplicate
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = *user
	r.byName[user.Username] = user.ID
	return nil
}
