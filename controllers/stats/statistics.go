package statsControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ngocthanh-dev/cafe-admin-api/models"
	"gorm.io/gorm"
)

// ProductRevenue ranks a product by price * stock. That is the value of what
// sits on the shelf, not historical sales; kept as the store has always
// reported it.
type ProductRevenue struct {
	Name    string  `json:"name"`
	Stock   int     `json:"stock"`
	Price   float64 `json:"price"`
	Revenue float64 `json:"revenue"`
}

type StoreSummary struct {
	TotalProducts  int64   `json:"total_products"`
	TotalInventory int64   `json:"total_inventory"`
	TotalCustomers int64   `json:"total_customers"`
	TotalRevenue   float64 `json:"total_revenue"`
}

// TopProducts returns the five highest-valued products, descending.
func TopProducts(db *gorm.DB) []ProductRevenue {
	var rows []ProductRevenue
	err := db.Model(&models.Product{}).
		Select("name, stock, price, price * stock AS revenue").
		Order("revenue DESC").
		Limit(5).
		Scan(&rows).Error
	if err != nil {
		log.Println("top products query failed:", err)
		return nil
	}
	return rows
}

// Summary computes the store-wide totals. Metrics are independent; a failed
// query leaves its field at zero.
func Summary(db *gorm.DB) StoreSummary {
	var s StoreSummary

	var totals struct {
		Count   int64
		Stock   int64
		Revenue float64
	}
	err := db.Model(&models.Product{}).
		Select("COUNT(*) AS count, COALESCE(SUM(stock), 0) AS stock, COALESCE(SUM(price * stock), 0) AS revenue").
		Scan(&totals).Error
	if err != nil {
		log.Println("product totals query failed:", err)
	} else {
		s.TotalProducts = totals.Count
		s.TotalInventory = totals.Stock
		s.TotalRevenue = totals.Revenue
	}

	err = db.Model(&models.User{}).
		Where("role = ?", models.RoleCustomer).
		Count(&s.TotalCustomers).Error
	if err != nil {
		log.Println("customer count query failed:", err)
	}

	return s
}

// GET /stats/summary
func SummaryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"summary":      Summary(db),
			"top_products": TopProducts(db),
		})
	}
}
