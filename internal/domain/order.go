package domain

import "time"

// Order statuses.
const (
	OrderStatusReceived      = "received"
	OrderStatusInPreparation = "in_preparation"
	OrderStatusReady         = "ready"
	OrderStatusDelivered     = "delivered"
)

// Order is a customer order submission. PK: order_id.
// Pricing and promotion computation happen elsewhere; this record captures
// what the customer sent.
type Order struct {
	OrderID       string      `json:"order_id" dynamodbav:"order_id"`
	Items         []OrderItem `json:"items" dynamodbav:"items"`
	CustomerPhone string      `json:"customer_phone" dynamodbav:"customer_phone"`
	Street        string      `json:"street" dynamodbav:"street"`
	HouseNumber   string      `json:"house_number" dynamodbav:"house_number"`
	City          string      `json:"city" dynamodbav:"city"`
	Status        string      `json:"status" dynamodbav:"status"`
	CreatedAt     time.Time   `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" dynamodbav:"updated_at"`
}

// OrderItem is a single menu-item line on an order.
type OrderItem struct {
	MenuItemName string `json:"menu_item_name" dynamodbav:"menu_item_name" validate:"required"`
	Size         string `json:"size" dynamodbav:"size"`
	Quantity     int    `json:"quantity" dynamodbav:"quantity" validate:"required,gte=1"`
}

// AddOrderRequest submits a new order.
type AddOrderRequest struct {
	Items         []OrderItem `json:"items" validate:"required,min=1,dive"`
	CustomerPhone string      `json:"customer_phone" validate:"required"`
	Street        string      `json:"street" validate:"required"`
	HouseNumber   string      `json:"house_number" validate:"required"`
	City          string      `json:"city" validate:"required"`
}
