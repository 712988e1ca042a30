package models

type Product struct {
	ID    uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string  `gorm:"size:100;not null" json:"name"`
	Price float64 `gorm:"not null" json:"price"`
	Stock int     `json:"stock"`
}
