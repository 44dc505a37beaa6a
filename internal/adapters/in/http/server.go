// Package http exposes the bidding use cases over a REST API.
//
// Callers authenticate through headers: order owners send X-User-ID (a UUID),
// providers send X-Provider-ID (an opaque provider name). Business failures
// map onto conventional status codes: validation problems are 400, unknown
// objects 404, ownership violations 403, and conflicts with the order
// lifecycle (closed order, stale selection price) 409.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"freightbid/internal/core/application/usecases/commands"
	"freightbid/internal/core/application/usecases/queries"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/order"
	"freightbid/internal/core/domain/model/quote"
	"freightbid/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	userIDHeader     = "X-User-ID"
	providerIDHeader = "X-Provider-ID"

	defaultPageSize = 20
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	updateOrderHandler    commands.UpdateOrderCommandHandler
	closeOrderHandler     commands.CloseOrderCommandHandler
	selectProviderHandler commands.SelectProviderCommandHandler
	submitQuoteHandler    commands.SubmitQuoteCommandHandler

	// Query handlers
	getOrdersHandler         queries.GetOrdersQueryHandler
	getQuotesForOrderHandler queries.GetQuotesForOrderQueryHandler
	getLowestQuoteHandler    queries.GetLowestQuoteQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	closeOrderHandler commands.CloseOrderCommandHandler,
	selectProviderHandler commands.SelectProviderCommandHandler,
	submitQuoteHandler commands.SubmitQuoteCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getQuotesForOrderHandler queries.GetQuotesForOrderQueryHandler,
	getLowestQuoteHandler queries.GetLowestQuoteQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderHandler:       updateOrderHandler,
		closeOrderHandler:        closeOrderHandler,
		selectProviderHandler:    selectProviderHandler,
		submitQuoteHandler:       submitQuoteHandler,
		getOrdersHandler:         getOrdersHandler,
		getQuotesForOrderHandler: getQuotesForOrderHandler,
		getLowestQuoteHandler:    getLowestQuoteHandler,
	}
}

// RegisterRoutes attaches all API routes to the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetOrders)
	v1.PATCH("/orders/:id", s.UpdateOrder)
	v1.POST("/orders/:id/close", s.CloseOrder)
	v1.POST("/orders/:id/select", s.SelectProvider)
	v1.POST("/orders/:id/quotes", s.SubmitQuote)
	v1.GET("/orders/:id/quotes", s.GetQuotesForOrder)
	v1.GET("/orders/:id/quotes/lowest", s.GetLowestQuote)
}

// CreateOrder handles POST /api/v1/orders - posts a new order for bidding.
func (s *Server) CreateOrder(ctx echo.Context) error {
	ownerID, err := userID(ctx)
	if err != nil {
		return badRequest(ctx, "Missing or invalid "+userIDHeader+" header")
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, ownerID, req.Warehouse, req.Goods, req.DeliveryAddress)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return businessError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// UpdateOrder handles PATCH /api/v1/orders/:id - edits fields of an active order.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	ownerID, err := userID(ctx)
	if err != nil {
		return badRequest(ctx, "Missing or invalid "+userIDHeader+" header")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, ownerID, req.Warehouse, req.Goods, req.DeliveryAddress)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return businessError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CloseOrder handles POST /api/v1/orders/:id/close - ends bidding without a winner.
func (s *Server) CloseOrder(ctx echo.Context) error {
	ownerID, err := userID(ctx)
	if err != nil {
		return badRequest(ctx, "Missing or invalid "+userIDHeader+" header")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCloseOrderCommand(orderID, ownerID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.closeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return businessError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SelectProvider handles POST /api/v1/orders/:id/select - awards the order to
// a provider at the quoted price and closes bidding.
func (s *Server) SelectProvider(ctx echo.Context) error {
	ownerID, err := userID(ctx)
	if err != nil {
		return badRequest(ctx, "Missing or invalid "+userIDHeader+" header")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req SelectProviderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewPrice(req.Price)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+err.Error())
	}

	cmd, err := commands.NewSelectProviderCommand(orderID, ownerID, req.Provider, price)
	if err != nil {
		return badRequest(ctx, "Invalid selection data: "+err.Error())
	}

	if handleErr := s.selectProviderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return businessError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitQuote handles POST /api/v1/orders/:id/quotes - submits or revises a
// provider's quote on an active order.
func (s *Server) SubmitQuote(ctx echo.Context) error {
	provider := strings.TrimSpace(ctx.Request().Header.Get(providerIDHeader))
	if provider == "" {
		return badRequest(ctx, "Missing "+providerIDHeader+" header")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req SubmitQuoteRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewPrice(req.Price)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+err.Error())
	}

	// The identifier only takes effect on first submission; a revision keeps
	// the stored quote's identity.
	quoteID := kernel.NewUUID()

	cmd, err := commands.NewSubmitQuoteCommand(quoteID, orderID, provider, price, req.EstimatedDelivery, req.Remarks)
	if err != nil {
		return badRequest(ctx, "Invalid quote data: "+err.Error())
	}

	if handleErr := s.submitQuoteHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return businessError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders - lists orders newest first with
// optional status and owner_id filters. Each entry embeds the current lowest
// quote while bidding is open and the recorded selection after closing.
func (s *Server) GetOrders(ctx echo.Context) error {
	page := 1
	if raw := ctx.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid page")
		}
		page = parsed
	}

	pageSize := defaultPageSize
	if raw := ctx.QueryParam("page_size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid page_size")
		}
		pageSize = parsed
	}

	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid status: "+err.Error())
		}
		status = &parsed
	}

	var ownerID *kernel.UUID
	if raw := ctx.QueryParam("owner_id"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid owner_id")
		}
		ownerID = &parsed
	}

	query, err := queries.NewGetOrdersQuery(page, pageSize, status, ownerID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	ordersResponse, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return businessError(ctx, err)
	}

	response := make([]Order, len(ordersResponse))
	for i, o := range ordersResponse {
		response[i] = orderFromResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetQuotesForOrder handles GET /api/v1/orders/:id/quotes - lists all quotes
// on an order, cheapest first.
func (s *Server) GetQuotesForOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetQuotesForOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	quotesResponse, err := s.getQuotesForOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return businessError(ctx, err)
	}

	response := make([]Quote, len(quotesResponse))
	for i, q := range quotesResponse {
		response[i] = quoteFromOrderResponse(q)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLowestQuote handles GET /api/v1/orders/:id/quotes/lowest - returns the
// current best quote on an order, or 404 when no quotes exist yet.
func (s *Server) GetLowestQuote(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetLowestQuoteQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	lowest, err := s.getLowestQuoteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return businessError(ctx, err)
	}

	if lowest == nil {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "No quotes submitted for this order",
		})
	}

	return ctx.JSON(http.StatusOK, *quoteFromLowestResponse(lowest))
}

// userID extracts the calling user's identity from the X-User-ID header.
func userID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get(userIDHeader))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// businessError translates use-case failures into HTTP responses.
func businessError(ctx echo.Context, err error) error {
	var code int

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, commands.ErrNotOrderOwner):
		code = http.StatusForbidden
	case errors.Is(err, order.ErrOrderClosed),
		errors.Is(err, commands.ErrQuotePriceMismatch):
		code = http.StatusConflict
	case errors.Is(err, quote.ErrDeliveryNotInFuture),
		errors.Is(err, commands.ErrNoFieldsToUpdate),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	default:
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
