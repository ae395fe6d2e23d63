package services

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"flowermarket-backend/entity"
	"flowermarket-backend/pkg/rabbitmq"
)

// OrderEventPublisher pushes status-change events to interested consumers.
// A nil publisher disables publishing.
type OrderEventPublisher interface {
	PublishOrderStatusChanged(evt rabbitmq.OrderStatusEvent) error
}

type OrderService struct {
	DB     *gorm.DB
	Stores StoreResolver
	Events OrderEventPublisher
	Log    *zap.Logger
}

func NewOrderService(db *gorm.DB, stores StoreResolver, events OrderEventPublisher, log *zap.Logger) *OrderService {
	return &OrderService{DB: db, Stores: stores, Events: events, Log: log}
}

// VendorOrder is the read-only projection the vendor order list returns.
type VendorOrder struct {
	ID            uint      `json:"id"`
	CreatedAt     time.Time `json:"createdAt"`
	Status        string    `json:"status"`
	TotalAmount   float64   `json:"totalAmount"`
	Quantity      int       `json:"quantity"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	ProductName   string    `json:"productName"`
}

// ListForVendor returns the caller's store orders, newest first, enriched
// with customer and product fields. Vendors without a store get an empty list.
func (s *OrderService) ListForVendor(vendorID uint) ([]VendorOrder, error) {
	store, err := s.Stores.StoreFor(vendorID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return []VendorOrder{}, nil
	}

	var rows []struct {
		ID            uint
		CreatedAt     time.Time
		Status        string
		TotalPrice    float64
		Quantity      int
		CustomerName  string
		CustomerEmail string
		ProductName   string
	}
	err = s.DB.Table("orders AS o").
		Select("o.id, o.created_at, o.status, o.total_price, o.quantity, "+
			"u.full_name AS customer_name, u.email AS customer_email, p.name AS product_name").
		Joins("JOIN users u ON u.id = o.user_id").
		Joins("JOIN products p ON p.id = o.product_id").
		Where("o.store_id = ?", store.ID).
		Order("o.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]VendorOrder, 0, len(rows))
	for _, r := range rows {
		out = append(out, VendorOrder{
			ID:            r.ID,
			CreatedAt:     r.CreatedAt,
			Status:        r.Status,
			TotalAmount:   r.TotalPrice,
			Quantity:      r.Quantity,
			CustomerName:  r.CustomerName,
			CustomerEmail: r.CustomerEmail,
			ProductName:   r.ProductName,
		})
	}
	return out, nil
}

// UpdateStatus overwrites the order's free-text status. The new value must
// be non-blank and the order must belong to the caller's store.
func (s *OrderService) UpdateStatus(vendorID, orderID uint, status string) (*entity.Order, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, ErrEmptyStatus
	}

	store, err := s.Stores.StoreFor(vendorID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrNoStore
	}

	var order entity.Order
	err = s.DB.Where("id = ? AND store_id = ?", orderID, store.ID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	order.Status = status
	if err := s.DB.Save(&order).Error; err != nil {
		return nil, err
	}

	if s.Events != nil {
		evt := rabbitmq.OrderStatusEvent{
			OrderID:   order.ID,
			StoreID:   order.StoreID,
			Status:    order.Status,
			ChangedAt: time.Now(),
		}
		if err := s.Events.PublishOrderStatusChanged(evt); err != nil {
			// best effort; the status change itself already committed
			s.Log.Warn("publish order status event failed",
				zap.Uint("orderId", order.ID), zap.Error(err))
		}
	}

	return &order, nil
}

// Place creates a pending order for a customer, denormalising the store id
// from the product for vendor scoping.
func (s *OrderService) Place(userID, productID uint, quantity int) (*entity.Order, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	var product entity.Product
	err := s.DB.First(&product, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		Status:     "pending",
		TotalPrice: product.Price * float64(quantity),
		Quantity:   quantity,
		ProductID:  product.ID,
		UserID:     userID,
		StoreID:    product.StoreID,
	}
	if err := s.DB.Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// CustomerOrder backs the client cart counter and order history.
type CustomerOrder struct {
	ID          uint      `json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	Status      string    `json:"status"`
	TotalPrice  float64   `json:"totalPrice"`
	Quantity    int       `json:"quantity"`
	ProductID   uint      `json:"productId"`
	ProductName string    `json:"productName"`
}

// ListForCustomer returns the caller's own orders, newest first.
func (s *OrderService) ListForCustomer(userID uint) ([]CustomerOrder, error) {
	var rows []CustomerOrder
	err := s.DB.Table("orders AS o").
		Select("o.id, o.created_at, o.status, o.total_price, o.quantity, o.product_id, p.name AS product_name").
		Joins("JOIN products p ON p.id = o.product_id").
		Where("o.user_id = ?", userID).
		Order("o.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []CustomerOrder{}
	}
	return rows, nil
}
