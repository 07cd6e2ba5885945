package blobstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoopctl/scoopctl/internal/adapters/outbound/blobstore"
	"github.com/scoopctl/scoopctl/internal/domain"
)

func TestStore_LoadMissingFileYieldsEmpty(t *testing.T) {
	store := blobstore.New(t.TempDir())

	var orders []*domain.Order
	store.Load(domain.OrdersFile, &orders)

	assert.Empty(t, orders)
}

func TestStore_SaveThenLoadRoundTrips(t *testing.T) {
	store := blobstore.New(t.TempDir())

	order := domain.NewOrder("ORD1234", "CUST1")
	order.AddItem("F01", 2)
	order.TotalAmount = 400.0
	saved := []*domain.Order{order}

	require.True(t, store.Save(domain.OrdersFile, saved))

	var loaded []*domain.Order
	store.Load(domain.OrdersFile, &loaded)

	require.Len(t, loaded, 1)
	assert.Equal(t, *order, *loaded[0])
}

func TestStore_SaveCreatesDataDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	store := blobstore.New(dir)

	_, err := os.Stat(dir)
	require.True(t, os.IsNotExist(err), "data directory should not exist before save")

	require.True(t, store.Save(domain.MenuFile, []*domain.MenuItem{}))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStore_LoadCorruptFileYieldsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.CustomersFile), []byte("{{{not json"), 0644))

	store := blobstore.New(dir)

	var customers []*domain.Customer
	store.Load(domain.CustomersFile, &customers)

	assert.Empty(t, customers)
}

func TestStore_SaveFailureReportsFalse(t *testing.T) {
	dir := t.TempDir()
	store := blobstore.New(dir)

	// A directory where the document should go makes the write fail.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, domain.OrdersFile), 0755))

	assert.False(t, store.Save(domain.OrdersFile, []*domain.Order{}))
}
