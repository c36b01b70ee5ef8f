package generators

import (
	"github.com/google/uuid"

	"datagen/faker"
	"datagen/models"
)

var orderStatuses = []string{
	string(models.OrderPending),
	string(models.OrderConfirmed),
	string(models.OrderProcessing),
	string(models.OrderShipped),
	string(models.OrderDelivered),
	string(models.OrderCancelled),
	string(models.OrderRefunded),
}

var paymentMethods = []string{
	string(models.PaymentCreditCard),
	string(models.PaymentDebitCard),
	string(models.PaymentPaypal),
	string(models.PaymentBankTransfer),
	string(models.PaymentCashOnDelivery),
}

var paymentStatuses = []string{
	string(models.PaymentPending),
	string(models.PaymentCompleted),
	string(models.PaymentFailed),
	string(models.PaymentRefunded),
}

// LineSubtotal is the money formula for one line: price*quantity rounded to
// two decimals.
func LineSubtotal(price float64, quantity int) float64 {
	return round2(price * float64(quantity))
}

// NewOrderItem builds one line item for product with a random quantity.
func NewOrderItem(f *faker.Faker, product models.Product) models.OrderItem {
	quantity := f.IntBetween(1, 5)
	return models.OrderItem{
		ProductID: product.ID,
		SKU:       product.SKU,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
		Subtotal:  LineSubtotal(product.Price, quantity),
	}
}

func newAddress(f *faker.Faker) models.Address {
	return models.Address{
		FullName: f.Name(),
		Address:  f.StreetAddress(),
		City:     f.City(),
		State:    f.State(),
		ZipCode:  f.ZipCode(),
		Country:  f.Pick(countries),
	}
}

// NewOrder builds one order for a customer sampled from customerIDs, with
// 1-5 distinct products drawn from products. Subtotal is the exact sum of
// item subtotals; TotalAmount = round(subtotal+tax+shipping-discount, 2).
// ShippedDate is set only for shipped/delivered orders and DeliveredDate
// only for delivered ones, strictly after the shipped date.
func NewOrder(f *faker.Faker, customers []models.User, products []models.Product, orderNumbers *Registry) (models.Order, error) {
	orderNumber, err := NewUniqueCode(OrderNumberFunc(f), orderNumbers)
	if err != nil {
		return models.Order{}, err
	}

	numItems := f.IntBetween(1, 5)
	if numItems > len(products) {
		numItems = len(products)
	}
	perm := f.Perm(len(products))
	items := make([]models.OrderItem, 0, numItems)
	for _, idx := range perm[:numItems] {
		items = append(items, NewOrderItem(f, products[idx]))
	}

	var subtotal float64
	for _, item := range items {
		subtotal += item.Subtotal
	}
	tax := round2(subtotal * f.Float64Between(0, 0.1))
	shipping := round2(f.Float64Between(0, 50))
	discount := round2(subtotal * f.Float64Between(0, 0.2))
	total := round2(subtotal + tax + shipping - discount)

	orderDate := f.PastTime(historyWindow)
	status := models.OrderStatus(f.Pick(orderStatuses))

	o := models.Order{
		ID:              NewID(),
		OrderNumber:     orderNumber,
		CustomerID:      customers[f.Intn(len(customers))].ID,
		Items:           items,
		ShippingAddress: newAddress(f),
		BillingAddress:  newAddress(f),
		Payment: models.Payment{
			Method:        models.PaymentMethod(f.Pick(paymentMethods)),
			Status:        models.PaymentStatus(f.Pick(paymentStatuses)),
			TransactionID: "TXN-" + uuid.NewString(),
			Amount:        total,
		},
		Subtotal:    subtotal,
		Tax:         tax,
		Shipping:    shipping,
		Discount:    discount,
		TotalAmount: total,
		Currency:    f.Pick(currencies),
		Status:      status,
		OrderDate:   orderDate,
		CreatedAt:   orderDate,
		UpdatedAt:   orderDate,
	}

	if status == models.OrderShipped || status == models.OrderDelivered {
		shipped := orderDate.AddDate(0, 0, f.IntBetween(1, 5))
		o.ShippedDate = &shipped
		if status == models.OrderDelivered {
			delivered := shipped.AddDate(0, 0, f.IntBetween(1, 5))
			o.DeliveredDate = &delivered
		}
	}
	if f.Bool() {
		notes := f.Sentence(10)
		if len(notes) > 200 {
			notes = notes[:200]
		}
		o.Notes = notes
	}
	return o, nil
}
