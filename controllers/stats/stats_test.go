package statsControllers

import (
	"testing"
	"time"

	"github.com/ngocthanh-dev/cafe-admin-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func TestTopProductsRanksByInventoryValue(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Create(&[]models.Product{
		{Name: "A", Price: 10, Stock: 5},  // value 50
		{Name: "B", Price: 100, Stock: 1}, // value 100
	}).Error)

	top := TopProducts(db)
	require.Len(t, top, 2)
	assert.Equal(t, "B", top[0].Name)
	assert.Equal(t, 100.0, top[0].Revenue)
	assert.Equal(t, "A", top[1].Name)
	assert.Equal(t, 50.0, top[1].Revenue)
}

func TestTopProductsLimitsToFive(t *testing.T) {
	db := newTestDB(t)

	products := make([]models.Product, 0, 7)
	for i := 1; i <= 7; i++ {
		products = append(products, models.Product{
			Name:  string(rune('A' + i - 1)),
			Price: float64(i * 1000),
			Stock: 10,
		})
	}
	require.NoError(t, db.Create(&products).Error)

	top := TopProducts(db)
	require.Len(t, top, 5)
	assert.Equal(t, "G", top[0].Name) // highest value first
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Revenue, top[i].Revenue)
	}
}

func TestSummaryTotals(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Create(&[]models.Product{
		{Name: "Cà phê đen", Price: 20000, Stock: 30},
		{Name: "Bạc xỉu", Price: 28000, Stock: 20},
	}).Error)
	require.NoError(t, db.Create(&[]models.User{
		{ID: "NV001", Username: "nv1", Password: "x", Name: "NV Một", Email: "nv1@example.com", Role: models.RoleStaff},
		{ID: "KH001", Username: "kh1", Password: "x", Name: "Khách Một", Email: "kh1@example.com", Role: models.RoleCustomer},
		{ID: "KH002", Username: "kh2", Password: "x", Name: "Khách Hai", Email: "kh2@example.com", Role: models.RoleCustomer},
	}).Error)

	s := Summary(db)
	assert.Equal(t, int64(2), s.TotalProducts)
	assert.Equal(t, int64(50), s.TotalInventory)
	assert.Equal(t, int64(2), s.TotalCustomers) // staff rows are not customers
	assert.Equal(t, 20000.0*30+28000.0*20, s.TotalRevenue)
}

func TestSummaryEmptyStoreIsAllZeros(t *testing.T) {
	db := newTestDB(t)

	s := Summary(db)
	assert.Zero(t, s.TotalProducts)
	assert.Zero(t, s.TotalInventory)
	assert.Zero(t, s.TotalCustomers)
	assert.Zero(t, s.TotalRevenue)

	assert.Empty(t, TopProducts(db))
}

func TestRevenueAndOrderCounts(t *testing.T) {
	db := newTestDB(t)

	now := time.Now()
	require.NoError(t, db.Create(&[]models.Order{
		{CustomerName: "Hôm nay", OrderDate: now, TotalAmount: 40000, Status: models.PaymentCash},
		{CustomerName: "Tháng trước", OrderDate: now.AddDate(0, 0, -40), TotalAmount: 90000, Status: models.PaymentTransfer},
	}).Error)

	assert.Equal(t, 40000.0, DailyRevenue(db))
	assert.Equal(t, 40000.0, MonthlyRevenue(db))
	assert.Equal(t, int64(1), DailyOrders(db))
	assert.Equal(t, int64(2), TotalOrders(db))
}

func TestRevenueWithNoOrdersIsZero(t *testing.T) {
	db := newTestDB(t)

	assert.Zero(t, DailyRevenue(db))
	assert.Zero(t, MonthlyRevenue(db))
	assert.Zero(t, DailyOrders(db))
	assert.Zero(t, TotalOrders(db))
}
