package services_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"flowermarket-backend/services"
)

func newPromotionService(db *gorm.DB) *services.PromotionService {
	return services.NewPromotionService(db, services.NewStoreService(db))
}

var codePattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

func TestPromotions_CreateDefaults(t *testing.T) {
	db := openTestDB(t)
	svc := newPromotionService(db)

	vendor := createUser(t, db, "flora@example.com", "Flora", "vendor")
	store := createStore(t, db, vendor.ID, "Flora's Flowers")
	product := createProduct(t, db, store.ID, "Red Roses", 12.5)

	promo, err := svc.Create(vendor.ID, services.CreatePromotionInput{
		ProductID:       product.ID,
		DiscountPercent: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, "Promotion", promo.Title)
	assert.Regexp(t, codePattern, promo.Code)
	assert.WithinDuration(t, time.Now(), promo.StartAt, 5*time.Second)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), promo.EndAt, 5*time.Second)
}

func TestPromotions_CreateKeepsExplicitValues(t *testing.T) {
	db := openTestDB(t)
	svc := newPromotionService(db)

	vendor := createUser(t, db, "flora@example.com", "Flora", "vendor")
	store := createStore(t, db, vendor.ID, "Flora's Flowers")
	product := createProduct(t, db, store.ID, "Red Roses", 12.5)

	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	promo, err := svc.Create(vendor.ID, services.CreatePromotionInput{
		ProductID:       product.ID,
		Title:           "Autumn sale",
		Code:            "AUTUMN26",
		DiscountPercent: 25,
		StartAt:         start,
		EndAt:           end,
		UsageLimit:      100,
	})
	require.NoError(t, err)

	assert.Equal(t, "Autumn sale", promo.Title)
	assert.Equal(t, "AUTUMN26", promo.Code)
	assert.True(t, promo.StartAt.Equal(start))
	assert.True(t, promo.EndAt.Equal(end))
	assert.Equal(t, 100, promo.UsageLimit)
}

func TestPromotions_CreateForeignProduct(t *testing.T) {
	db := openTestDB(t)
	svc := newPromotionService(db)

	vendor := createUser(t, db, "flora@example.com", "Flora", "vendor")
	createStore(t, db, vendor.ID, "Flora's Flowers")

	rival := createUser(t, db, "rival@example.com", "Rival", "vendor")
	rivalStore := createStore(t, db, rival.ID, "Rival Roses")
	foreign := createProduct(t, db, rivalStore.ID, "Tulips", 5.0)

	_, err := svc.Create(vendor.ID, services.CreatePromotionInput{ProductID: foreign.ID})
	assert.ErrorIs(t, err, services.ErrForeignProduct)
}

func TestPromotions_CreateNoStore(t *testing.T) {
	db := openTestDB(t)
	svc := newPromotionService(db)

	vendor := createUser(t, db, "flora@example.com", "Flora", "vendor")

	_, err := svc.Create(vendor.ID, services.CreatePromotionInput{ProductID: 1})
	assert.ErrorIs(t, err, services.ErrNoStore)
}

func TestPromotions_ListNewestEndingFirst(t *testing.T) {
	db := openTestDB(t)
	svc := newPromotionService(db)

	vendor := createUser(t, db, "flora@example.com", "Flora", "vendor")
	store := createStore(t, db, vendor.ID, "Flora's Flowers")
	product := createProduct(t, db, store.ID, "Red Roses", 12.5)

	early, err := svc.Create(vendor.ID, services.CreatePromotionInput{
		ProductID: product.ID, Title: "Short",
		EndAt: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	late, err := svc.Create(vendor.ID, services.CreatePromotionInput{
		ProductID: product.ID, Title: "Long",
		EndAt: time.Now().Add(30 * 24 * time.Hour),
	})
	require.NoError(t, err)

	promos, err := svc.ListForVendor(vendor.ID)
	require.NoError(t, err)
	require.Len(t, promos, 2)
	assert.Equal(t, late.ID, promos[0].ID)
	assert.Equal(t, early.ID, promos[1].ID)
	assert.Equal(t, "Red Roses", promos[0].ProductName)
}

func TestPromotions_ListNoStore(t *testing.T) {
	db := openTestDB(t)
	svc := newPromotionService(db)

	vendor := createUser(t, db, "flora@example.com", "Flora", "vendor")

	promos, err := svc.ListForVendor(vendor.ID)
	require.NoError(t, err)
	assert.NotNil(t, promos)
	assert.Empty(t, promos)
}

func TestPromotions_UpdateFullFieldContract(t *testing.T) {
	db := openTestDB(t)
	svc := newPromotionService(db)

	vendor := createUser(t, db, "flora@example.com", "Flora", "vendor")
	store := createStore(t, db, vendor.ID, "Flora's Flowers")
	product := createProduct(t, db, store.ID, "Red Roses", 12.5)

	promo, err := svc.Create(vendor.ID, services.CreatePromotionInput{
		ProductID: product.ID, Title: "Before", Code: "KEEPCODE", DiscountPercent: 10,
	})
	require.NoError(t, err)
	originalStart := promo.StartAt

	newEnd := time.Now().Add(14 * 24 * time.Hour)
	updated, err := svc.Update(vendor.ID, promo.ID, services.UpdatePromotionInput{
		Title:           "After",
		Description:     "two weeks",
		DiscountPercent: 30,
		EndAt:           newEnd,
	})
	require.NoError(t, err)

	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, 30.0, updated.DiscountPercent)
	// code and product binding are immutable
	assert.Equal(t, "KEEPCODE", updated.Code)
	assert.Equal(t, product.ID, updated.ProductID)
	// zero start date keeps the stored one
	assert.WithinDuration(t, originalStart, updated.StartAt, time.Second)
	assert.WithinDuration(t, newEnd, updated.EndAt, time.Second)
}

func TestPromotions_UpdateNotOwned(t *testing.T) {
	db := openTestDB(t)
	svc := newPromotionService(db)

	rival := createUser(t, db, "rival@example.com", "Rival", "vendor")
	rivalStore := createStore(t, db, rival.ID, "Rival Roses")
	foreign := createProduct(t, db, rivalStore.ID, "Tulips", 5.0)
	promo, err := svc.Create(rival.ID, services.CreatePromotionInput{ProductID: foreign.ID})
	require.NoError(t, err)

	vendor := createUser(t, db, "flora@example.com", "Flora", "vendor")
	createStore(t, db, vendor.ID, "Flora's Flowers")

	_, err = svc.Update(vendor.ID, promo.ID, services.UpdatePromotionInput{Title: "Hijack"})
	assert.ErrorIs(t, err, services.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(vendor.ID, promo.ID), services.ErrNotFound)
}

func TestPromotions_Delete(t *testing.T) {
	db := openTestDB(t)
	svc := newPromotionService(db)

	vendor := createUser(t, db, "flora@example.com", "Flora", "vendor")
	store := createStore(t, db, vendor.ID, "Flora's Flowers")
	product := createProduct(t, db, store.ID, "Red Roses", 12.5)
	promo, err := svc.Create(vendor.ID, services.CreatePromotionInput{ProductID: product.ID})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(vendor.ID, promo.ID))

	promos, err := svc.ListForVendor(vendor.ID)
	require.NoError(t, err)
	assert.Empty(t, promos)
}
