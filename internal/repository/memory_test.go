package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everafter/gallery-backend/internal/models"
	"github.com/everafter/gallery-backend/internal/repository"
)

func TestMemoryCustomerRepository_CreateAssignsSequentialIDs(t *testing.T) {
	repo := repository.NewMemoryCustomerRepository()

	first := &models.Customer{Username: "alice", Email: "alice@example.com", Password: "x", IsActive: true}
	second := &models.Customer{Username: "bob", Email: "bob@example.com", Password: "x", IsActive: true}

	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestMemoryCustomerRepository_DuplicateCreateIsRejectedAtomically(t *testing.T) {
	repo := repository.NewMemoryCustomerRepository()

	require.NoError(t, repo.Create(&models.Customer{Username: "alice", Email: "alice@example.com", Password: "x"}))

	err := repo.Create(&models.Customer{Username: "alice", Email: "other@example.com", Password: "x"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	err = repo.Create(&models.Customer{Username: "other", Email: "alice@example.com", Password: "x"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemoryCustomerRepository_UpdateMissingDoesNotCreate(t *testing.T) {
	repo := repository.NewMemoryCustomerRepository()

	err := repo.Update(&models.Customer{ID: 42, Username: "ghost", Email: "ghost@example.com"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMemoryCustomerRepository_UpdateMaintainsUniqueIndexes(t *testing.T) {
	repo := repository.NewMemoryCustomerRepository()

	alice := &models.Customer{Username: "alice", Email: "alice@example.com", Password: "x"}
	bob := &models.Customer{Username: "bob", Email: "bob@example.com", Password: "x"}
	require.NoError(t, repo.Create(alice))
	require.NoError(t, repo.Create(bob))

	// Renaming onto a taken username fails.
	bob.Username = "alice"
	assert.ErrorIs(t, repo.Update(bob), repository.ErrDuplicate)

	// Renaming to a free username releases the old one.
	bob.Username = "robert"
	require.NoError(t, repo.Update(bob))

	found, err := repo.GetByUsername("robert")
	require.NoError(t, err)
	assert.Equal(t, bob.ID, found.ID)

	_, err = repo.GetByUsername("bob")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMemoryCustomerRepository_RejectedUpdateLeavesIndexesIntact(t *testing.T) {
	repo := repository.NewMemoryCustomerRepository()

	alice := &models.Customer{Username: "alice", Email: "alice@example.com", Password: "x"}
	bob := &models.Customer{Username: "bob", Email: "bob@example.com", Password: "x"}
	require.NoError(t, repo.Create(alice))
	require.NoError(t, repo.Create(bob))

	// A free username together with a taken email must fail without leaking
	// the username rename into the index.
	changed := *bob
	changed.Username = "robert"
	changed.Email = "alice@example.com"
	assert.ErrorIs(t, repo.Update(&changed), repository.ErrDuplicate)

	found, err := repo.GetByUsername("bob")
	require.NoError(t, err)
	assert.Equal(t, bob.ID, found.ID)
	assert.Equal(t, "bob@example.com", found.Email)

	_, err = repo.GetByUsername("robert")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// Same for the mirror case: taken username with a free email.
	changed = *bob
	changed.Username = "alice"
	changed.Email = "new@example.com"
	assert.ErrorIs(t, repo.Update(&changed), repository.ErrDuplicate)

	found, err = repo.GetByEmail("bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, bob.ID, found.ID)

	_, err = repo.GetByEmail("new@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMemoryCustomerRepository_GetAllPreservesInsertionOrder(t *testing.T) {
	repo := repository.NewMemoryCustomerRepository()

	names := []string{"first", "second", "third"}
	for _, name := range names {
		require.NoError(t, repo.Create(&models.Customer{Username: name, Email: name + "@example.com", Password: "x"}))
	}

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, name := range names {
		assert.Equal(t, name, all[i].Username)
	}
}

func TestMemoryGalleryRepository_SlugUniqueness(t *testing.T) {
	repo := repository.NewMemoryGalleryRepository()

	require.NoError(t, repo.Create(&models.WeddingGallery{CustomerID: 1, Slug: "a-b", Title: "T", CoupleNames: "A & B"}))

	err := repo.Create(&models.WeddingGallery{CustomerID: 2, Slug: "a-b", Title: "Other", CoupleNames: "C & D"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	galleries, err := repo.GetByCustomerID(1)
	require.NoError(t, err)
	assert.Len(t, galleries, 1)
}

func TestMemoryGalleryRepository_DeleteFreesSlug(t *testing.T) {
	repo := repository.NewMemoryGalleryRepository()

	gallery := &models.WeddingGallery{CustomerID: 1, Slug: "a-b", Title: "T", CoupleNames: "A & B"}
	require.NoError(t, repo.Create(gallery))
	require.NoError(t, repo.Delete(gallery.ID))

	_, err := repo.GetBySlug("a-b")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// Slug is reusable after the hard delete.
	require.NoError(t, repo.Create(&models.WeddingGallery{CustomerID: 2, Slug: "a-b", Title: "New", CoupleNames: "C & D"}))
}

func TestMemoryGalleryRepository_DeleteMissing(t *testing.T) {
	repo := repository.NewMemoryGalleryRepository()
	assert.ErrorIs(t, repo.Delete(99), repository.ErrNotFound)
}

func TestMemoryGalleryRepository_UpdateSlugChange(t *testing.T) {
	repo := repository.NewMemoryGalleryRepository()

	one := &models.WeddingGallery{CustomerID: 1, Slug: "one", Title: "One", CoupleNames: "A & B"}
	two := &models.WeddingGallery{CustomerID: 1, Slug: "two", Title: "Two", CoupleNames: "C & D"}
	require.NoError(t, repo.Create(one))
	require.NoError(t, repo.Create(two))

	two.Slug = "one"
	assert.ErrorIs(t, repo.Update(two), repository.ErrDuplicate)

	two.Slug = "two-renamed"
	require.NoError(t, repo.Update(two))

	found, err := repo.GetBySlug("two-renamed")
	require.NoError(t, err)
	assert.Equal(t, two.ID, found.ID)
}

func TestMemorySettingsRepository_OnePerCustomer(t *testing.T) {
	repo := repository.NewMemorySettingsRepository()

	require.NoError(t, repo.Create(&models.CustomerSettings{CustomerID: 1, SiteName: "S"}))

	err := repo.Create(&models.CustomerSettings{CustomerID: 1, SiteName: "Again"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	settings, err := repo.GetByCustomerID(1)
	require.NoError(t, err)
	assert.Equal(t, "S", settings.SiteName)

	_, err = repo.GetByCustomerID(2)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMemoryStatsRepository_UpdateMissing(t *testing.T) {
	repo := repository.NewMemoryStatsRepository()

	err := repo.Update(&models.UsageStats{ID: 7, CustomerID: 1})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMemoryAdminRepository_LookupByUsername(t *testing.T) {
	repo := repository.NewMemoryAdminRepository()

	require.NoError(t, repo.Create(&models.Admin{Username: "admin", Password: "hash"}))

	admin, err := repo.GetByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, uint(1), admin.ID)

	_, err = repo.GetByUsername("nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
