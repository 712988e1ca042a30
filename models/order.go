package models

import "time"

// Order status doubles as the payment method in this schema.
const (
	PaymentCash     = "Tiền mặt"
	PaymentTransfer = "Chuyển khoản"

	// PaymentFilterAll is the combo-box sentinel meaning "no status filter".
	PaymentFilterAll = "Tất cả"
)

type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	CustomerName string      `gorm:"size:100" json:"customer_name"`
	PhoneNumber  string      `gorm:"size:15" json:"phone_number"`
	OrderDate    time.Time   `json:"order_date"`
	TotalAmount  float64     `gorm:"not null" json:"total_amount"`
	Status       string      `gorm:"size:50" json:"status"`
	Items        []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// OrderItem snapshots the unit price at the time of sale. There is no
// cascading delete in the schema; DeleteOrder removes items explicitly.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID uint    `json:"product_id"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}
