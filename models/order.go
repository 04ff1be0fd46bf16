package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed at checkout, awaiting fulfillment
	OrderStatusCompleted OrderStatus = "completed" // marked complete by an admin
)

type Order struct {
	ID            uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderRef      string      `gorm:"uniqueIndex;not null" json:"order_ref"`
	UserID        uint        `gorm:"index;not null" json:"user_id"`
	User          *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalPrice    float64     `json:"total_price"`
	Status        OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Address       string      `gorm:"not null" json:"address"`
	Contact       string      `gorm:"not null" json:"contact"`
	PaymentMethod string      `gorm:"not null" json:"payment_method"`
	CheckoutDate  time.Time   `json:"checkout_date"`
}

type OrderItem struct {
	ID        uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint     `gorm:"index" json:"order_id"`
	ProductID uint     `json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int      `json:"quantity"`
	// Price is captured at checkout time. Later edits to the product
	// never change what the order was worth.
	Price float64 `json:"price"`

	// ProductName is filled in by the order detail view; it falls back
	// to a placeholder when the product row no longer exists.
	ProductName string `gorm:"-" json:"product_name,omitempty"`
}
