package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
	OrderRefunded   OrderStatus = "refunded"
)

type PaymentMethod string

const (
	PaymentCreditCard     PaymentMethod = "credit_card"
	PaymentDebitCard      PaymentMethod = "debit_card"
	PaymentPaypal         PaymentMethod = "paypal"
	PaymentBankTransfer   PaymentMethod = "bank_transfer"
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

type Address struct {
	FullName string `json:"fullName" bson:"fullName"`
	Address  string `json:"address" bson:"address"`
	City     string `json:"city" bson:"city"`
	State    string `json:"state" bson:"state"`
	ZipCode  string `json:"zipCode" bson:"zipCode"`
	Country  string `json:"country" bson:"country"`
}

type Payment struct {
	Method        PaymentMethod `json:"method" bson:"method"`
	Status        PaymentStatus `json:"status" bson:"status"`
	TransactionID string        `json:"transactionId" bson:"transactionId"`
	Amount        float64       `json:"amount" bson:"amount"`
}

// OrderItem is one purchased line. Subtotal is price*quantity rounded to two
// decimals at build time, never recomputed downstream.
type OrderItem struct {
	ProductID primitive.ObjectID `json:"productId" bson:"productId"`
	SKU       string             `json:"sku" bson:"sku"`
	Name      string             `json:"name" bson:"name"`
	Price     float64            `json:"price" bson:"price"`
	Quantity  int                `json:"quantity" bson:"quantity"`
	Subtotal  float64            `json:"subtotal" bson:"subtotal"`
}

// Order invariants: Subtotal is the exact sum of item subtotals,
// TotalAmount = round(Subtotal+Tax+Shipping-Discount, 2). ShippedDate is set
// only for shipped/delivered orders, DeliveredDate only for delivered ones,
// and DeliveredDate > ShippedDate > OrderDate.
type Order struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id"`
	OrderNumber     string             `json:"orderNumber" bson:"orderNumber"`
	CustomerID      primitive.ObjectID `json:"customerId" bson:"customerId"`
	Items           []OrderItem        `json:"items" bson:"items"`
	ShippingAddress Address            `json:"shippingAddress" bson:"shippingAddress"`
	BillingAddress  Address            `json:"billingAddress" bson:"billingAddress"`
	Payment         Payment            `json:"payment" bson:"payment"`
	Subtotal        float64            `json:"subtotal" bson:"subtotal"`
	Tax             float64            `json:"tax" bson:"tax"`
	Shipping        float64            `json:"shipping" bson:"shipping"`
	Discount        float64            `json:"discount" bson:"discount"`
	TotalAmount     float64            `json:"totalAmount" bson:"totalAmount"`
	Currency        string             `json:"currency" bson:"currency"`
	Status          OrderStatus        `json:"status" bson:"status"`
	OrderDate       time.Time          `json:"orderDate" bson:"orderDate"`
	ShippedDate     *time.Time         `json:"shippedDate" bson:"shippedDate"`
	DeliveredDate   *time.Time         `json:"deliveredDate" bson:"deliveredDate"`
	Notes           string             `json:"notes" bson:"notes"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}
