// Package http is the inbound REST adapter. It binds and validates request
// DTOs, translates them into commands and queries, and maps application
// errors onto HTTP status codes.
package http

import (
	"net/http"
	"strconv"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/account"
	"courier/internal/core/domain/model/agent"
	"courier/internal/core/domain/model/delivery"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createAccountHandler        commands.CreateAccountCommandHandler
	updateAccountHandler        commands.UpdateAccountCommandHandler
	deleteAccountHandler        commands.DeleteAccountCommandHandler
	createAgentHandler          commands.CreateAgentCommandHandler
	updateAgentHandler          commands.UpdateAgentCommandHandler
	deleteAgentHandler          commands.DeleteAgentCommandHandler
	createOrderHandler          commands.CreateOrderCommandHandler
	updateOrderStatusHandler    commands.UpdateOrderStatusCommandHandler
	changePaymentHandler        commands.ChangePaymentCommandHandler
	assignDeliveryHandler       commands.AssignDeliveryCommandHandler
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler

	// Query handlers
	authenticateHandler      queries.AuthenticateQueryHandler
	trackOrderHandler        queries.TrackOrderQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	listOrdersHandler        queries.ListOrdersQueryHandler
	listAccountsHandler      queries.ListAccountsQueryHandler
	getAccountHandler        queries.GetAccountQueryHandler
	listAgentsHandler        queries.ListAgentsQueryHandler
	getAgentHandler          queries.GetAgentQueryHandler
	listDeliveriesHandler    queries.ListDeliveriesQueryHandler
	dashboardStatsHandler    queries.GetDashboardStatsQueryHandler

	tokens ports.TokenService
}

// ServerDeps lists everything the server needs. A struct keeps the
// constructor readable with this many handlers.
type ServerDeps struct {
	CreateAccountHandler        commands.CreateAccountCommandHandler
	UpdateAccountHandler        commands.UpdateAccountCommandHandler
	DeleteAccountHandler        commands.DeleteAccountCommandHandler
	CreateAgentHandler          commands.CreateAgentCommandHandler
	UpdateAgentHandler          commands.UpdateAgentCommandHandler
	DeleteAgentHandler          commands.DeleteAgentCommandHandler
	CreateOrderHandler          commands.CreateOrderCommandHandler
	UpdateOrderStatusHandler    commands.UpdateOrderStatusCommandHandler
	ChangePaymentHandler        commands.ChangePaymentCommandHandler
	AssignDeliveryHandler       commands.AssignDeliveryCommandHandler
	UpdateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler

	AuthenticateHandler      queries.AuthenticateQueryHandler
	TrackOrderHandler        queries.TrackOrderQueryHandler
	GetCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	ListOrdersHandler        queries.ListOrdersQueryHandler
	ListAccountsHandler      queries.ListAccountsQueryHandler
	GetAccountHandler        queries.GetAccountQueryHandler
	ListAgentsHandler        queries.ListAgentsQueryHandler
	GetAgentHandler          queries.GetAgentQueryHandler
	ListDeliveriesHandler    queries.ListDeliveriesQueryHandler
	DashboardStatsHandler    queries.GetDashboardStatsQueryHandler

	Tokens ports.TokenService
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		createAccountHandler:        deps.CreateAccountHandler,
		updateAccountHandler:        deps.UpdateAccountHandler,
		deleteAccountHandler:        deps.DeleteAccountHandler,
		createAgentHandler:          deps.CreateAgentHandler,
		updateAgentHandler:          deps.UpdateAgentHandler,
		deleteAgentHandler:          deps.DeleteAgentHandler,
		createOrderHandler:          deps.CreateOrderHandler,
		updateOrderStatusHandler:    deps.UpdateOrderStatusHandler,
		changePaymentHandler:        deps.ChangePaymentHandler,
		assignDeliveryHandler:       deps.AssignDeliveryHandler,
		updateDeliveryStatusHandler: deps.UpdateDeliveryStatusHandler,
		authenticateHandler:         deps.AuthenticateHandler,
		trackOrderHandler:           deps.TrackOrderHandler,
		getCustomerOrdersHandler:    deps.GetCustomerOrdersHandler,
		listOrdersHandler:           deps.ListOrdersHandler,
		listAccountsHandler:         deps.ListAccountsHandler,
		getAccountHandler:           deps.GetAccountHandler,
		listAgentsHandler:           deps.ListAgentsHandler,
		getAgentHandler:             deps.GetAgentHandler,
		listDeliveriesHandler:       deps.ListDeliveriesHandler,
		dashboardStatsHandler:       deps.DashboardStatsHandler,
		tokens:                      deps.Tokens,
	}
}

// RegisterRoutes attaches all routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo, auth *AuthMiddleware) {
	e.Validator = NewRequestValidator()

	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/register", s.Register)
	api.POST("/token", s.IssueToken)
	api.POST("/token/refresh", s.RefreshToken)
	api.GET("/track/:barcode", s.TrackOrder)

	orders := api.Group("/orders", auth.Authenticate)
	orders.GET("", s.GetMyOrders)
	orders.POST("", s.CreateOrder)
	orders.PATCH("/:id/status", s.UpdateOrderStatus)
	orders.PATCH("/:id/payment", s.ChangePayment)

	admin := api.Group("/admin", auth.Authenticate, auth.RequireAdmin)
	admin.GET("/stats", s.GetDashboardStats)
	admin.GET("/accounts", s.ListAccounts)
	admin.POST("/accounts", s.CreateAccount)
	admin.GET("/accounts/:id", s.GetAccount)
	admin.PUT("/accounts/:id", s.UpdateAccount)
	admin.DELETE("/accounts/:id", s.DeleteAccount)
	admin.GET("/agents", s.ListAgents)
	admin.POST("/agents", s.CreateAgent)
	admin.GET("/agents/:id", s.GetAgent)
	admin.PUT("/agents/:id", s.UpdateAgent)
	admin.DELETE("/agents/:id", s.DeleteAgent)
	admin.GET("/orders", s.ListOrders)
	admin.GET("/deliveries", s.ListDeliveries)
	admin.POST("/orders/:id/assign", s.AssignOrder)
	admin.PATCH("/deliveries/:id/status", s.UpdateDeliveryStatus)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// Register handles POST /api/v1/register. Self-registration always creates a
// customer account regardless of what the body claims.
//
//	@Summary	Register a customer account
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body	registerRequest	true	"registration data"
//	@Success	201	{object}	createdResponse
//	@Failure	400	{object}	errorResponse
//	@Failure	409	{object}	errorResponse
//	@Router		/api/v1/register [post]
func (s *Server) Register(ctx echo.Context) error {
	var req registerRequest
	if err := bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	accountID := kernel.NewUUID()
	cmd, err := commands.NewCreateAccountCommand(
		accountID,
		req.Email,
		req.Password,
		req.FirstName,
		req.LastName,
		account.RoleCustomer,
		req.Phone,
		req.Address,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: accountID.String()})
}

// IssueToken handles POST /api/v1/token.
//
//	@Summary	Exchange credentials for a token pair
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body	tokenRequest	true	"credentials"
//	@Success	200	{object}	tokenPairResponse
//	@Failure	401	{object}	errorResponse
//	@Router		/api/v1/token [post]
func (s *Server) IssueToken(ctx echo.Context) error {
	var req tokenRequest
	if err := bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewAuthenticateQuery(req.Email, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	identity, err := s.authenticateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	pair, err := s.tokens.IssuePair(identity.AccountID, identity.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// RefreshToken handles POST /api/v1/token/refresh.
//
//	@Summary	Exchange a refresh token for a new pair
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body	refreshTokenRequest	true	"refresh token"
//	@Success	200	{object}	tokenPairResponse
//	@Failure	401	{object}	errorResponse
//	@Router		/api/v1/token/refresh [post]
func (s *Server) RefreshToken(ctx echo.Context) error {
	var req refreshTokenRequest
	if err := bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	claims, err := s.tokens.VerifyRefresh(req.RefreshToken)
	if err != nil {
		return respondError(ctx, err)
	}

	pair, err := s.tokens.IssuePair(claims.AccountID, claims.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// TrackOrder handles GET /api/v1/track/:barcode. No authentication: the
// barcode itself is the capability.
//
//	@Summary	Track an order by barcode
//	@Tags		tracking
//	@Produce	json
//	@Param		barcode	path	string	true	"order barcode"
//	@Success	200	{object}	queries.TrackOrderQueryResponse
//	@Failure	404	{object}	errorResponse
//	@Router		/api/v1/track/{barcode} [get]
func (s *Server) TrackOrder(ctx echo.Context) error {
	barcode, err := kernel.BarcodeFromString(ctx.Param("barcode"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewTrackOrderQuery(barcode)
	if err != nil {
		return respondError(ctx, err)
	}

	tracking, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tracking)
}

// GetMyOrders handles GET /api/v1/orders. Customers only ever see their own
// orders.
//
//	@Summary	List the caller's orders
//	@Tags		orders
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	orderResponse
//	@Failure	401	{object}	errorResponse
//	@Router		/api/v1/orders [get]
func (s *Server) GetMyOrders(ctx echo.Context) error {
	claims, ok := claimsFrom(ctx)
	if !ok {
		return respondError(ctx, errs.NewUnauthorizedError("missing bearer token"))
	}

	query, err := queries.NewGetCustomerOrdersQuery(claims.AccountID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// CreateOrder handles POST /api/v1/orders.
//
//	@Summary	Create an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body	createOrderRequest	true	"order data"
//	@Success	201	{object}	createdResponse
//	@Failure	400	{object}	errorResponse
//	@Router		/api/v1/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	claims, ok := claimsFrom(ctx)
	if !ok {
		return respondError(ctx, errs.NewUnauthorizedError("missing bearer token"))
	}

	var req createOrderRequest
	if err := bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	amount, err := kernel.NewMoneyFromString(req.Amount)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		claims.AccountID,
		req.ReceiverName,
		req.ReceiverAddress,
		amount,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: orderID.String()})
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status. Customers may
// only transition their own orders; admins may transition any.
//
//	@Summary	Transition an order's status
//	@Tags		orders
//	@Accept		json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"order id"
//	@Param		request	body	updateOrderStatusRequest	true	"target status"
//	@Success	204
//	@Failure	400	{object}	errorResponse
//	@Failure	404	{object}	errorResponse
//	@Router		/api/v1/orders/{id}/status [patch]
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	claims, ok := claimsFrom(ctx)
	if !ok {
		return respondError(ctx, errs.NewUnauthorizedError("missing bearer token"))
	}

	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req updateOrderStatusRequest
	if err := bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(
		orderID,
		claims.AccountID,
		claims.Role == account.RoleAdmin,
		target,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangePayment handles PATCH /api/v1/orders/:id/payment.
//
//	@Summary	Pay or refund an order
//	@Tags		orders
//	@Accept		json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"order id"
//	@Param		request	body	changePaymentRequest	true	"payment action"
//	@Success	204
//	@Failure	400	{object}	errorResponse
//	@Failure	404	{object}	errorResponse
//	@Router		/api/v1/orders/{id}/payment [patch]
func (s *Server) ChangePayment(ctx echo.Context) error {
	claims, ok := claimsFrom(ctx)
	if !ok {
		return respondError(ctx, errs.NewUnauthorizedError("missing bearer token"))
	}

	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req changePaymentRequest
	if err := bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	action, err := commands.PaymentActionFromString(req.Action)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangePaymentCommand(
		orderID,
		claims.AccountID,
		claims.Role == account.RoleAdmin,
		action,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.changePaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDashboardStats handles GET /api/v1/admin/stats.
//
//	@Summary	Dashboard counters
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dashboardStatsResponse
//	@Router		/api/v1/admin/stats [get]
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	stats, err := s.dashboardStatsHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetDashboardStatsQuery(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dashboardStatsResponse{
		TotalOrders:     stats.TotalOrders,
		DeliveredOrders: stats.DeliveredOrders,
		TotalCustomers:  stats.TotalCustomers,
		TotalAgents:     stats.TotalAgents,
		RecentOrders:    toOrderResponses(stats.RecentOrders),
	})
}

// ListAccounts handles GET /api/v1/admin/accounts.
//
//	@Summary	List accounts
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		role	query	string	false	"filter by role"
//	@Param		search	query	string	false	"match against email or name"
//	@Param		page	query	int	false	"page number"
//	@Param		page_size	query	int	false	"page size"
//	@Success	200	{object}	pagedResponse[accountResponse]
//	@Router		/api/v1/admin/accounts [get]
func (s *Server) ListAccounts(ctx echo.Context) error {
	var role *account.Role
	if raw := ctx.QueryParam("role"); raw != "" {
		parsed, err := account.RoleFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		role = &parsed
	}

	page := pageFrom(ctx)
	query, err := queries.NewListAccountsQuery(role, ctx.QueryParam("search"), page)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.listAccountsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPagedResponse(result.Items, result.Total, page, toAccountResponse))
}

// CreateAccount handles POST /api/v1/admin/accounts.
//
//	@Summary	Create an account
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body	createAccountRequest	true	"account data"
//	@Success	201	{object}	createdResponse
//	@Failure	409	{object}	errorResponse
//	@Router		/api/v1/admin/accounts [post]
func (s *Server) CreateAccount(ctx echo.Context) error {
	var req createAccountRequest
	if err := bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	role, err := account.RoleFromString(req.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	accountID := kernel.NewUUID()
	cmd, err := commands.NewCreateAccountCommand(
		accountID,
		req.Email,
		req.Password,
		req.FirstName,
		req.LastName,
		role,
		req.Phone,
		req.Address,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: accountID.String()})
}

// GetAccount handles GET /api/v1/admin/accounts/:id.
//
//	@Summary	Get an account
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"account id"
//	@Success	200	{object}	accountResponse
//	@Failure	404	{object}	errorResponse
//	@Router		/api/v1/admin/accounts/{id} [get]
func (s *Server) GetAccount(ctx echo.Context) error {
	accountID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetAccountQuery(accountID)
	if err != nil {
		return respondError(ctx, err)
	}

	item, err := s.getAccountHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAccountResponse(item))
}

// UpdateAccount handles PUT /api/v1/admin/accounts/:id. Full replacement of
// the mutable profile fields; an empty password leaves the hash untouched.
//
//	@Summary	Update an account
//	@Tags		admin
//	@Accept		json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"account id"
//	@Param		request	body	updateAccountRequest	true	"account data"
//	@Success	204
//	@Failure	404	{object}	errorResponse
//	@Router		/api/v1/admin/accounts/{id} [put]
func (s *Server) UpdateAccount(ctx echo.Context) error {
	accountID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req updateAccountRequest
	if err := bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	role, err := account.RoleFromString(req.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateAccountCommand(
		accountID,
		req.FirstName,
		req.LastName,
		req.Phone,
		req.Address,
		role,
		req.Active,
		req.Password,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteAccount handles DELETE /api/v1/admin/accounts/:id. Admins cannot
// delete their own account.
//
//	@Summary	Delete an account
//	@Tags		admin
//	@Security	BearerAuth
//	@Param		id	path	string	true	"account id"
//	@Success	204
//	@Failure	400	{object}	errorResponse
//	@Failure	404	{object}	errorResponse
//	@Router		/api/v1/admin/accounts/{id} [delete]
func (s *Server) DeleteAccount(ctx echo.Context) error {
	claims, ok := claimsFrom(ctx)
	if !ok {
		return respondError(ctx, errs.NewUnauthorizedError("missing bearer token"))
	}

	accountID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteAccountCommand(accountID, claims.AccountID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListAgents handles GET /api/v1/admin/agents.
//
//	@Summary	List delivery agents
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		available	query	bool	false	"filter by availability"
//	@Param		search	query	string	false	"match against email, name, or vehicle number"
//	@Param		page	query	int	false	"page number"
//	@Param		page_size	query	int	false	"page size"
//	@Success	200	{object}	pagedResponse[agentResponse]
//	@Router		/api/v1/admin/agents [get]
func (s *Server) ListAgents(ctx echo.Context) error {
	var available *bool
	if raw := ctx.QueryParam("available"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("available", err))
		}
		available = &parsed
	}

	page := pageFrom(ctx)
	query := queries.NewListAgentsQuery(available, ctx.QueryParam("search"), page)

	result, err := s.listAgentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPagedResponse(result.Items, result.Total, page, toAgentResponse))
}

// CreateAgent handles POST /api/v1/admin/agents. Creates the account and the
// agent profile in one transaction.
//
//	@Summary	Create a delivery agent
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body	createAgentRequest	true	"agent data"
//	@Success	201	{object}	createdResponse
//	@Failure	409	{object}	errorResponse
//	@Router		/api/v1/admin/agents [post]
func (s *Server) CreateAgent(ctx echo.Context) error {
	var req createAgentRequest
	if err := bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	vehicleType, err := agent.VehicleTypeFromString(req.VehicleType)
	if err != nil {
		return respondError(ctx, err)
	}

	agentID := kernel.NewUUID()
	cmd, err := commands.NewCreateAgentCommand(
		kernel.NewUUID(),
		agentID,
		req.Email,
		req.Password,
		req.FirstName,
		req.LastName,
		req.Phone,
		req.Address,
		vehicleType,
		req.VehicleNumber,
		req.LicenseNumber,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: agentID.String()})
}

// GetAgent handles GET /api/v1/admin/agents/:id.
//
//	@Summary	Get a delivery agent
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"agent id"
//	@Success	200	{object}	agentResponse
//	@Failure	404	{object}	errorResponse
//	@Router		/api/v1/admin/agents/{id} [get]
func (s *Server) GetAgent(ctx echo.Context) error {
	agentID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetAgentQuery(agentID)
	if err != nil {
		return respondError(ctx, err)
	}

	item, err := s.getAgentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAgentResponse(item))
}

// UpdateAgent handles PUT /api/v1/admin/agents/:id.
//
//	@Summary	Update a delivery agent
//	@Tags		admin
//	@Accept		json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"agent id"
//	@Param		request	body	updateAgentRequest	true	"agent data"
//	@Success	204
//	@Failure	404	{object}	errorResponse
//	@Router		/api/v1/admin/agents/{id} [put]
func (s *Server) UpdateAgent(ctx echo.Context) error {
	agentID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req updateAgentRequest
	if err := bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	vehicleType, err := agent.VehicleTypeFromString(req.VehicleType)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateAgentCommand(
		agentID,
		vehicleType,
		req.VehicleNumber,
		req.LicenseNumber,
		req.CurrentLocation,
		req.Available,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteAgent handles DELETE /api/v1/admin/agents/:id. Removes the agent
// profile together with its account.
//
//	@Summary	Delete a delivery agent
//	@Tags		admin
//	@Security	BearerAuth
//	@Param		id	path	string	true	"agent id"
//	@Success	204
//	@Failure	400	{object}	errorResponse
//	@Failure	404	{object}	errorResponse
//	@Router		/api/v1/admin/agents/{id} [delete]
func (s *Server) DeleteAgent(ctx echo.Context) error {
	agentID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteAgentCommand(agentID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListOrders handles GET /api/v1/admin/orders.
//
//	@Summary	List all orders
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		status	query	string	false	"filter by status"
//	@Param		barcode	query	string	false	"match against barcode"
//	@Param		page	query	int	false	"page number"
//	@Param		page_size	query	int	false	"page size"
//	@Success	200	{object}	pagedResponse[orderResponse]
//	@Router		/api/v1/admin/orders [get]
func (s *Server) ListOrders(ctx echo.Context) error {
	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		status = &parsed
	}

	page := pageFrom(ctx)
	query, err := queries.NewListOrdersQuery(status, ctx.QueryParam("barcode"), page)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPagedResponse(result.Items, result.Total, page, toOrderResponse))
}

// ListDeliveries handles GET /api/v1/admin/deliveries.
//
//	@Summary	List delivery assignments
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		status	query	string	false	"filter by status"
//	@Param		agent_id	query	string	false	"filter by agent"
//	@Param		page	query	int	false	"page number"
//	@Param		page_size	query	int	false	"page size"
//	@Success	200	{object}	pagedResponse[deliveryResponse]
//	@Router		/api/v1/admin/deliveries [get]
func (s *Server) ListDeliveries(ctx echo.Context) error {
	var status *delivery.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := delivery.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		status = &parsed
	}

	var agentID *kernel.UUID
	if raw := ctx.QueryParam("agent_id"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("agent_id", err))
		}
		agentID = &parsed
	}

	page := pageFrom(ctx)
	query, err := queries.NewListDeliveriesQuery(status, agentID, page)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.listDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPagedResponse(result.Items, result.Total, page, toDeliveryResponse))
}

// AssignOrder handles POST /api/v1/admin/orders/:id/assign. An order carries
// at most one assignment; a second attempt answers 409.
//
//	@Summary	Assign an order to an agent
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"order id"
//	@Param		request	body	assignOrderRequest	true	"agent to assign"
//	@Success	201	{object}	createdResponse
//	@Failure	400	{object}	errorResponse
//	@Failure	404	{object}	errorResponse
//	@Failure	409	{object}	errorResponse
//	@Router		/api/v1/admin/orders/{id}/assign [post]
func (s *Server) AssignOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req assignOrderRequest
	if err := bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	agentID, err := kernel.UUIDFromString(req.AgentID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("agent_id", err))
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewAssignDeliveryCommand(deliveryID, orderID, agentID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.assignDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: deliveryID.String()})
}

// UpdateDeliveryStatus handles PATCH /api/v1/admin/deliveries/:id/status.
// Rating and feedback only apply on completion, notes on failure.
//
//	@Summary	Transition a delivery's status
//	@Tags		admin
//	@Accept		json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"delivery id"
//	@Param		request	body	updateDeliveryStatusRequest	true	"target status"
//	@Success	204
//	@Failure	400	{object}	errorResponse
//	@Failure	404	{object}	errorResponse
//	@Router		/api/v1/admin/deliveries/{id}/status [patch]
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	deliveryID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req updateDeliveryStatusRequest
	if err := bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	target, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		deliveryID,
		target,
		req.Rating,
		req.Feedback,
		req.Notes,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// bind decodes the JSON body and runs struct-tag validation.
func bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return err
	}
	return ctx.Validate(req)
}

// parseUUIDParam reads a UUID path parameter.
func parseUUIDParam(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// pageFrom reads pagination query parameters, falling back to defaults.
func pageFrom(ctx echo.Context) queries.Page {
	number, _ := strconv.Atoi(ctx.QueryParam("page"))
	size, _ := strconv.Atoi(ctx.QueryParam("page_size"))
	return queries.NewPage(number, size)
}
