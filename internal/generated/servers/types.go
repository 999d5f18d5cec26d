package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Defines values for OrderStatus.
const (
	OrderStatusPENDING    OrderStatus = "PENDING"
	OrderStatusCONFIRMED  OrderStatus = "CONFIRMED"
	OrderStatusPROCESSING OrderStatus = "PROCESSING"
	OrderStatusSHIPPED    OrderStatus = "SHIPPED"
	OrderStatusDELIVERED  OrderStatus = "DELIVERED"
	OrderStatusCANCELLED  OrderStatus = "CANCELLED"
)

// Defines values for CustomerRiskLevel.
const (
	CustomerRiskLevelLOW    CustomerRiskLevel = "LOW"
	CustomerRiskLevelMEDIUM CustomerRiskLevel = "MEDIUM"
	CustomerRiskLevelHIGH   CustomerRiskLevel = "HIGH"
)

// Money is a decimal amount serialized as a JSON string.
type Money = decimal.Decimal

// NewOrderItem defines model for NewOrderItem.
type NewOrderItem struct {
	ProductId   string `json:"productId" validate:"required"`
	ProductName string `json:"productName" validate:"required"`
	Quantity    int    `json:"quantity" validate:"gte=1"`
	UnitPrice   Money  `json:"unitPrice"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	CustomerId string         `json:"customerId" validate:"required"`
	Items      []NewOrderItem `json:"items" validate:"required,min=1,dive"`
}

// OrderCreated defines model for OrderCreated.
type OrderCreated struct {
	OrderId openapi_types.UUID `json:"orderId"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	ProductId   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   Money  `json:"unitPrice"`
	Subtotal    Money  `json:"subtotal"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// Order defines model for Order.
type Order struct {
	Id          openapi_types.UUID `json:"id"`
	CustomerId  string             `json:"customerId"`
	Items       []OrderItem        `json:"items"`
	TotalAmount Money              `json:"totalAmount"`
	Status      OrderStatus        `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// StatusChangeRequest defines model for StatusChangeRequest.
type StatusChangeRequest struct {
	Status string `json:"status" validate:"required"`
}

// StatusChange defines model for StatusChange.
type StatusChange struct {
	OrderId        openapi_types.UUID `json:"orderId"`
	PreviousStatus OrderStatus        `json:"previousStatus"`
	NewStatus      OrderStatus        `json:"newStatus"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// PlacementResult defines model for PlacementResult.
type PlacementResult struct {
	OrderId                openapi_types.UUID `json:"orderId"`
	TotalAmount            Money              `json:"totalAmount"`
	Approved               bool               `json:"approved"`
	RequiresManualApproval bool               `json:"requiresManualApproval"`
	RequiredDeposit        Money              `json:"requiredDeposit"`
	Message                string             `json:"message"`
}

// NewCustomer defines model for NewCustomer.
type NewCustomer struct {
	Email       string `json:"email" validate:"required,email"`
	Name        string `json:"name" validate:"required"`
	CreditLimit *Money `json:"creditLimit,omitempty"`
}

// RiskLevelChangeRequest defines model for RiskLevelChangeRequest.
type RiskLevelChangeRequest struct {
	RiskLevel CustomerRiskLevel `json:"riskLevel" validate:"required,oneof=LOW MEDIUM HIGH"`
}

// CustomerCreated defines model for CustomerCreated.
type CustomerCreated struct {
	CustomerId openapi_types.UUID `json:"customerId"`
}

// CustomerRiskLevel defines model for Customer.RiskLevel.
type CustomerRiskLevel string

// Customer defines model for Customer.
type Customer struct {
	Id              openapi_types.UUID `json:"id"`
	Email           string             `json:"email"`
	Name            string             `json:"name"`
	CreditLimit     Money              `json:"creditLimit"`
	IsVerified      bool               `json:"isVerified"`
	RiskLevel       CustomerRiskLevel  `json:"riskLevel"`
	PendingExposure Money              `json:"pendingExposure"`
	TotalOrders     int                `json:"totalOrders"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderId defines model for OrderId.
type OrderId = openapi_types.UUID

// CustomerId defines model for CustomerId.
type CustomerId = openapi_types.UUID

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// PlaceOrderJSONRequestBody defines body for PlaceOrder for application/json ContentType.
type PlaceOrderJSONRequestBody = NewOrder

// ChangeOrderStatusJSONRequestBody defines body for ChangeOrderStatus for application/json ContentType.
type ChangeOrderStatusJSONRequestBody = StatusChangeRequest

// CreateCustomerJSONRequestBody defines body for CreateCustomer for application/json ContentType.
type CreateCustomerJSONRequestBody = NewCustomer

// ChangeCustomerRiskLevelJSONRequestBody defines body for ChangeCustomerRiskLevel for application/json ContentType.
type ChangeCustomerRiskLevelJSONRequestBody = RiskLevelChangeRequest
