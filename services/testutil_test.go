package services_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"flowermarket-backend/entity"
)

// openTestDB opens an isolated in-memory database per test.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Store{},
		&entity.Product{},
		&entity.Order{},
		&entity.Promotion{},
		&entity.Review{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email, fullName, role string) entity.User {
	t.Helper()
	user := entity.User{Email: email, Password: "x", FullName: fullName, Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createStore(t *testing.T, db *gorm.DB, vendorID uint, name string) entity.Store {
	t.Helper()
	store := entity.Store{Name: name, VendorID: vendorID}
	require.NoError(t, db.Create(&store).Error)
	return store
}

func createProduct(t *testing.T, db *gorm.DB, storeID uint, name string, price float64) entity.Product {
	t.Helper()
	product := entity.Product{Name: name, Price: price, Stock: 10, IsActive: true, StoreID: storeID}
	require.NoError(t, db.Create(&product).Error)
	return product
}
