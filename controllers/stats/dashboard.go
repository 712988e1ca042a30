package statsControllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ngocthanh-dev/cafe-admin-api/models"
	"gorm.io/gorm"
)

// Dashboard metrics are each individually fault-tolerant: a failed query
// logs and yields zero so the remaining cards still render.

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// DailyRevenue sums total_amount over orders placed today, store-local time.
func DailyRevenue(db *gorm.DB) float64 {
	day := startOfDay(time.Now())
	var total float64
	err := db.Model(&models.Order{}).
		Where("order_date >= ? AND order_date < ?", day, day.AddDate(0, 0, 1)).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	if err != nil {
		log.Println("daily revenue query failed:", err)
		return 0
	}
	return total
}

// MonthlyRevenue sums total_amount over the current calendar month.
func MonthlyRevenue(db *gorm.DB) float64 {
	month := startOfMonth(time.Now())
	var total float64
	err := db.Model(&models.Order{}).
		Where("order_date >= ? AND order_date < ?", month, month.AddDate(0, 1, 0)).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	if err != nil {
		log.Println("monthly revenue query failed:", err)
		return 0
	}
	return total
}

// DailyOrders counts orders placed today.
func DailyOrders(db *gorm.DB) int64 {
	day := startOfDay(time.Now())
	var count int64
	err := db.Model(&models.Order{}).
		Where("order_date >= ? AND order_date < ?", day, day.AddDate(0, 0, 1)).
		Count(&count).Error
	if err != nil {
		log.Println("daily orders query failed:", err)
		return 0
	}
	return count
}

// TotalOrders counts all orders ever placed.
func TotalOrders(db *gorm.DB) int64 {
	var count int64
	if err := db.Model(&models.Order{}).Count(&count).Error; err != nil {
		log.Println("total orders query failed:", err)
		return 0
	}
	return count
}

// GET /stats/dashboard
func DashboardHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"daily_revenue":   DailyRevenue(db),
			"monthly_revenue": MonthlyRevenue(db),
			"daily_orders":    DailyOrders(db),
			"total_orders":    TotalOrders(db),
		})
	}
}
