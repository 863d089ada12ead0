package http

// Request DTOs bound from JSON bodies. Validation tags are enforced through
// the echo Validator hook before any domain constructor runs.

type registerRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

type tokenRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type createOrderRequest struct {
	ReceiverName    string `json:"receiver_name" validate:"required"`
	ReceiverAddress string `json:"receiver_address" validate:"required"`
	Amount          string `json:"amount" validate:"required"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_transit delivered cancelled"`
}

type changePaymentRequest struct {
	Action string `json:"action" validate:"required,oneof=pay refund"`
}

type createAccountRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Role      string `json:"role" validate:"required,oneof=admin delivery_agent customer"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

type updateAccountRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Role      string `json:"role" validate:"required,oneof=admin delivery_agent customer"`
	Active    bool   `json:"active"`
	Password  string `json:"password" validate:"omitempty,min=8"`
}

type createAgentRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	FirstName     string `json:"first_name" validate:"required"`
	LastName      string `json:"last_name" validate:"required"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	VehicleType   string `json:"vehicle_type" validate:"required,oneof=bike car van truck"`
	VehicleNumber string `json:"vehicle_number" validate:"required"`
	LicenseNumber string `json:"license_number" validate:"required"`
}

type updateAgentRequest struct {
	VehicleType     string `json:"vehicle_type" validate:"required,oneof=bike car van truck"`
	VehicleNumber   string `json:"vehicle_number" validate:"required"`
	LicenseNumber   string `json:"license_number" validate:"required"`
	CurrentLocation string `json:"current_location"`
	Available       bool   `json:"available"`
}

type assignOrderRequest struct {
	AgentID string `json:"agent_id" validate:"required,uuid"`
}

type updateDeliveryStatusRequest struct {
	Status   string `json:"status" validate:"required,oneof=assigned picked_up in_transit delivered failed"`
	Rating   *int   `json:"rating" validate:"omitempty,min=1,max=5"`
	Feedback string `json:"feedback"`
	Notes    string `json:"notes"`
}
