package http

import (
	"time"

	"orderflow/internal/core/application"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/pricing"
)

// ErrorResponse is the error body returned by every failing endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ItemRequest is one priced product line in a placement request.
type ItemRequest struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// BundleRequest is a discounted group of items in a placement request.
type BundleRequest struct {
	Name     string        `json:"name"`
	Discount float64       `json:"discount"`
	Items    []ItemRequest `json:"items"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders. Class selects the
// order class (standard, express, international); empty means standard.
type PlaceOrderRequest struct {
	CustomerID string          `json:"customerId"`
	Class      string          `json:"class,omitempty"`
	Items      []ItemRequest   `json:"items"`
	Bundles    []BundleRequest `json:"bundles,omitempty"`
}

func (r PlaceOrderRequest) orderClass() application.OrderClass {
	if r.Class == "" {
		return application.OrderClassStandard
	}
	return application.OrderClass(r.Class)
}

// components converts the request into the domain component tree.
func (r PlaceOrderRequest) components() ([]pricing.Component, error) {
	components := make([]pricing.Component, 0, len(r.Items)+len(r.Bundles))

	for _, item := range r.Items {
		component, err := pricing.NewItem(item.ProductID, item.Name, item.UnitPrice, item.Quantity)
		if err != nil {
			return nil, err
		}
		components = append(components, component)
	}

	for _, bundleReq := range r.Bundles {
		bundle, err := pricing.NewBundle(bundleReq.Name, bundleReq.Discount)
		if err != nil {
			return nil, err
		}
		for _, item := range bundleReq.Items {
			component, err := pricing.NewItem(item.ProductID, item.Name, item.UnitPrice, item.Quantity)
			if err != nil {
				return nil, err
			}
			bundle.Add(component)
		}
		components = append(components, bundle)
	}

	return components, nil
}

// OrderResponse is the full representation of an order.
type OrderResponse struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"customerId"`
	Status         string    `json:"status"`
	Policy         string    `json:"policy"`
	Subtotal       float64   `json:"subtotal"`
	ShippingCost   float64   `json:"shippingCost"`
	ProcessingFee  float64   `json:"processingFee"`
	TotalAmount    float64   `json:"totalAmount"`
	TrackingNumber string    `json:"trackingNumber,omitempty"`
	Priority       bool      `json:"priority"`
	International  bool      `json:"international"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toOrderResponse(aggregate *order.Order) OrderResponse {
	return OrderResponse{
		ID:             aggregate.ID(),
		CustomerID:     aggregate.CustomerID(),
		Status:         aggregate.Status().String(),
		Policy:         aggregate.Policy().Name(),
		Subtotal:       aggregate.Subtotal(),
		ShippingCost:   aggregate.ShippingCost(),
		ProcessingFee:  aggregate.ProcessingFee(),
		TotalAmount:    aggregate.TotalAmount(),
		TrackingNumber: aggregate.TrackingNumber(),
		Priority:       aggregate.Priority(),
		International:  aggregate.International(),
		CreatedAt:      aggregate.CreatedAt(),
	}
}

// StatusResponse is the body of status and transition endpoints.
type StatusResponse struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// EstimateResponse is the body of the delivery estimate endpoint.
type EstimateResponse struct {
	OrderID           string    `json:"orderId"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
}
