package http

import (
	"time"

	"courier/internal/core/application/usecases/queries"
)

// Response DTOs returned as JSON. Read models from the queries package are
// mapped here so wire field names stay decoupled from the application layer.

type tokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type createdResponse struct {
	ID string `json:"id"`
}

type orderResponse struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customer_id"`
	Barcode         string    `json:"barcode"`
	ReceiverName    string    `json:"receiver_name"`
	ReceiverAddress string    `json:"receiver_address"`
	Amount          string    `json:"amount"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"payment_status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toOrderResponse(item queries.OrderResponse) orderResponse {
	return orderResponse{
		ID:              item.ID.String(),
		CustomerID:      item.CustomerID.String(),
		Barcode:         item.Barcode,
		ReceiverName:    item.ReceiverName,
		ReceiverAddress: item.ReceiverAddress,
		Amount:          item.Amount,
		Status:          item.Status,
		PaymentStatus:   item.PaymentStatus,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

func toOrderResponses(items []queries.OrderResponse) []orderResponse {
	out := make([]orderResponse, len(items))
	for i, item := range items {
		out[i] = toOrderResponse(item)
	}
	return out
}

type deliveryResponse struct {
	ID          string     `json:"id"`
	OrderID     string     `json:"order_id"`
	AgentID     string     `json:"agent_id"`
	Barcode     string     `json:"barcode"`
	Status      string     `json:"status"`
	AssignedAt  time.Time  `json:"assigned_at"`
	PickedUpAt  *time.Time `json:"picked_up_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	Rating      *int       `json:"rating,omitempty"`
	Feedback    string     `json:"feedback,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

func toDeliveryResponse(item queries.DeliveryResponse) deliveryResponse {
	return deliveryResponse{
		ID:          item.ID.String(),
		OrderID:     item.OrderID.String(),
		AgentID:     item.AgentID.String(),
		Barcode:     item.Barcode,
		Status:      item.Status,
		AssignedAt:  item.AssignedAt,
		PickedUpAt:  item.PickedUpAt,
		DeliveredAt: item.DeliveredAt,
		Rating:      item.Rating,
		Feedback:    item.Feedback,
		Notes:       item.Notes,
	}
}

type accountResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func toAccountResponse(item queries.AccountResponse) accountResponse {
	return accountResponse{
		ID:        item.ID.String(),
		Email:     item.Email,
		FirstName: item.FirstName,
		LastName:  item.LastName,
		Role:      item.Role,
		Phone:     item.Phone,
		Address:   item.Address,
		Active:    item.Active,
		CreatedAt: item.CreatedAt,
	}
}

type agentResponse struct {
	ID              string `json:"id"`
	AccountID       string `json:"account_id"`
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	VehicleType     string `json:"vehicle_type"`
	VehicleNumber   string `json:"vehicle_number"`
	LicenseNumber   string `json:"license_number"`
	CurrentLocation string `json:"current_location,omitempty"`
	Available       bool   `json:"available"`
	TotalDeliveries int    `json:"total_deliveries"`
	Rating          string `json:"rating"`
}

func toAgentResponse(item queries.AgentResponse) agentResponse {
	return agentResponse{
		ID:              item.ID.String(),
		AccountID:       item.AccountID.String(),
		Email:           item.Email,
		FirstName:       item.FirstName,
		LastName:        item.LastName,
		VehicleType:     item.VehicleType,
		VehicleNumber:   item.VehicleNumber,
		LicenseNumber:   item.LicenseNumber,
		CurrentLocation: item.CurrentLocation,
		Available:       item.Available,
		TotalDeliveries: item.TotalDeliveries,
		Rating:          item.Rating,
	}
}

// pagedResponse wraps a page of items with the totals the admin console
// needs for pagination controls.
type pagedResponse[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

func toPagedResponse[Q any, T any](items []Q, total int64, page queries.Page, convert func(Q) T) pagedResponse[T] {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = convert(item)
	}
	return pagedResponse[T]{
		Items:    out,
		Total:    total,
		Page:     page.Number,
		PageSize: page.Size,
	}
}

type dashboardStatsResponse struct {
	TotalOrders     int64           `json:"total_orders"`
	DeliveredOrders int64           `json:"delivered_orders"`
	TotalCustomers  int64           `json:"total_customers"`
	TotalAgents     int64           `json:"total_agents"`
	RecentOrders    []orderResponse `json:"recent_orders"`
}
