package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ngocthanh-dev/cafe-admin-api/models"
	"gorm.io/gorm"
)

// -------- Request / Response Structs --------

type PlaceOrderRequest struct {
	CustomerName string           `json:"customer_name" binding:"required"`
	PhoneNumber  string           `json:"phone_number"`
	Status       string           `json:"status" binding:"required"` // payment method
	Items        []PlaceOrderItem `json:"items" binding:"required"`
}

type PlaceOrderItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type OrderFilter struct {
	DateFrom      string // inclusive, "2006-01-02"
	DateTo        string // inclusive of the whole day
	SearchText    string
	PaymentMethod string
}

// OrderList carries the aggregates computed over the same filtered rows.
type OrderList struct {
	Orders       []models.Order `json:"orders"`
	TotalCount   int            `json:"total_count"`
	TotalRevenue float64        `json:"total_revenue"`
}

type OrderItemDetail struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

type OrderDetail struct {
	ID           uint              `json:"id"`
	CustomerName string            `json:"customer_name"`
	PhoneNumber  string            `json:"phone_number"`
	OrderDate    time.Time         `json:"order_date"`
	TotalAmount  float64           `json:"total_amount"`
	Status       string            `json:"status"`
	Items        []OrderItemDetail `json:"items"`
}

// -------- Helpers --------

func mapPaymentMethod(status string) (string, error) {
	switch status {
	case models.PaymentCash, models.PaymentTransfer:
		return status, nil
	default:
		return "", errors.New("invalid payment method")
	}
}

// storageUnless passes through domain errors and wraps everything else.
func storageUnless(op string, err error) error {
	var vErr *models.ValidationError
	if errors.As(err, &vErr) ||
		errors.Is(err, models.ErrProductNotFound) ||
		errors.Is(err, models.ErrOrderNotFound) {
		return err
	}
	return &models.StorageError{Op: op, Err: err}
}

// -------- Core Logic --------

// PlaceOrder checks out a new order: every product's stock is decremented,
// its unit price snapshotted, and the order total accumulated from the same
// snapshots, all inside one transaction.
func PlaceOrder(db *gorm.DB, req PlaceOrderRequest) (uint, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return 0, &models.ValidationError{Message: "customer name is required"}
	}
	if len(req.Items) == 0 {
		return 0, &models.ValidationError{Message: "order must contain at least one item"}
	}
	status, err := mapPaymentMethod(req.Status)
	if err != nil {
		return 0, &models.ValidationError{Message: err.Error()}
	}

	var order models.Order
	err = db.Transaction(func(tx *gorm.DB) error {
		var total float64
		var items []models.OrderItem

		for _, item := range req.Items {
			if item.Quantity <= 0 {
				return &models.ValidationError{Message: "quantity must be positive"}
			}

			var product models.Product
			if err := tx.First(&product, "id = ?", item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return models.ErrProductNotFound
				}
				return err
			}

			// Guarded decrement: the stock check and the deduction are one
			// statement, so two concurrent checkouts cannot oversell.
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", product.ID, item.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return &models.ValidationError{Message: "insufficient stock for product: " + product.Name}
			}

			total += product.Price * float64(item.Quantity)
			items = append(items, models.OrderItem{
				ProductID: product.ID,
				Price:     product.Price,
				Quantity:  item.Quantity,
			})
		}

		order = models.Order{
			CustomerName: strings.TrimSpace(req.CustomerName),
			PhoneNumber:  strings.TrimSpace(req.PhoneNumber),
			OrderDate:    time.Now(),
			TotalAmount:  total,
			Status:       status,
			Items:        items,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return 0, storageUnless("place order", err)
	}

	broadcastNewOrder(order)
	return order.ID, nil
}

// ListOrders returns the filtered orders newest first, with count and
// revenue summed over exactly the rows returned.
func ListOrders(db *gorm.DB, filter OrderFilter) (OrderList, error) {
	query := db.Model(&models.Order{})

	if filter.DateFrom != "" {
		from, err := time.ParseInLocation("2006-01-02", filter.DateFrom, time.Local)
		if err != nil {
			return OrderList{}, &models.ValidationError{Message: "invalid from date, expected YYYY-MM-DD"}
		}
		query = query.Where("order_date >= ?", from)
	}
	if filter.DateTo != "" {
		to, err := time.ParseInLocation("2006-01-02", filter.DateTo, time.Local)
		if err != nil {
			return OrderList{}, &models.ValidationError{Message: "invalid to date, expected YYYY-MM-DD"}
		}
		// widen by one day so the end date covers its full 24 hours
		query = query.Where("order_date < ?", to.AddDate(0, 0, 1))
	}
	if s := strings.TrimSpace(filter.SearchText); s != "" {
		pattern := "%" + strings.ToLower(s) + "%"
		query = query.Where("LOWER(customer_name) LIKE ? OR LOWER(phone_number) LIKE ?", pattern, pattern)
	}
	if m := filter.PaymentMethod; m != "" && m != "all" && m != models.PaymentFilterAll {
		query = query.Where("status = ?", m)
	}

	var orders []models.Order
	if err := query.Order("order_date DESC").Find(&orders).Error; err != nil {
		return OrderList{}, &models.StorageError{Op: "list orders", Err: err}
	}

	list := OrderList{Orders: orders, TotalCount: len(orders)}
	for _, o := range orders {
		list.TotalRevenue += o.TotalAmount
	}
	return list, nil
}

// GetOrderDetail returns the order header plus its items joined with the
// product name; line totals are computed, never stored.
func GetOrderDetail(db *gorm.DB, orderID uint) (OrderDetail, error) {
	var order models.Order
	err := db.First(&order, "id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return OrderDetail{}, models.ErrOrderNotFound
	}
	if err != nil {
		return OrderDetail{}, &models.StorageError{Op: "load order", Err: err}
	}

	var items []OrderItemDetail
	err = db.Model(&models.OrderItem{}).
		Select("order_items.product_id, products.name, order_items.price, order_items.quantity, order_items.price * order_items.quantity AS line_total").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ?", orderID).
		Scan(&items).Error
	if err != nil {
		return OrderDetail{}, &models.StorageError{Op: "load order items", Err: err}
	}

	return OrderDetail{
		ID:           order.ID,
		CustomerName: order.CustomerName,
		PhoneNumber:  order.PhoneNumber,
		OrderDate:    order.OrderDate,
		TotalAmount:  order.TotalAmount,
		Status:       order.Status,
		Items:        items,
	}, nil
}

// DeleteOrder removes the order's items and then the order row, both inside
// one transaction. The schema has no cascading delete.
func DeleteOrder(db *gorm.DB, orderID uint) error {
	var order models.Order
	err := db.First(&order, "id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrOrderNotFound
	}
	if err != nil {
		return &models.StorageError{Op: "load order", Err: err}
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", orderID).Delete(&models.Order{}).Error
	})
	if err != nil {
		return &models.StorageError{Op: "delete order", Err: err}
	}
	return nil
}

// -------- Handlers --------

func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		id, err := PlaceOrder(db, req)
		if err != nil {
			writeOrderError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":  "Order placed successfully",
			"order_id": id,
		})
	}
}

func ListOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := OrderFilter{
			DateFrom:      c.Query("from_date"),
			DateTo:        c.Query("to_date"),
			SearchText:    c.Query("search"),
			PaymentMethod: c.Query("payment_method"),
		}
		list, err := ListOrders(db, filter)
		if err != nil {
			writeOrderError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func GetOrderDetailHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}
		detail, err := GetOrderDetail(db, uint(orderID))
		if err != nil {
			writeOrderError(c, err)
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}

func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}
		if err := DeleteOrder(db, uint(orderID)); err != nil {
			writeOrderError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}

func writeOrderError(c *gin.Context, err error) {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrOrderNotFound), errors.Is(err, models.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Request failed"})
	}
}
