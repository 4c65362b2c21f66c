// Package http exposes the coordination core over a JSON API. Handlers
// translate requests into commands and queries; all business rules live in
// the application layer.
package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"moveout/internal/core/application/usecases/commands"
	"moveout/internal/core/application/usecases/queries"
	"moveout/internal/core/domain/model/job"
	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/observability"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	createReturnJobHandler commands.CreateReturnJobCommandHandler
	registerMoverHandler   commands.RegisterMoverCommandHandler
	acceptJobHandler       commands.AcceptJobCommandHandler
	acceptRouteHandler     commands.AcceptRouteCommandHandler
	requestArrivalHandler  commands.RequestArrivalConfirmationCommandHandler
	confirmHandoffHandler  commands.ConfirmHandoffCommandHandler
	completeStorageHandler commands.CompleteStorageDeliveryCommandHandler
	cancelJobHandler       commands.CancelJobCommandHandler

	// Query handlers
	getAvailableJobsHandler queries.GetAvailableJobsQueryHandler
	getMoverJobsHandler     queries.GetMoverJobsQueryHandler
	suggestRouteHandler     queries.SuggestRouteQueryHandler

	metrics *observability.Metrics
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	createReturnJobHandler commands.CreateReturnJobCommandHandler,
	registerMoverHandler commands.RegisterMoverCommandHandler,
	acceptJobHandler commands.AcceptJobCommandHandler,
	acceptRouteHandler commands.AcceptRouteCommandHandler,
	requestArrivalHandler commands.RequestArrivalConfirmationCommandHandler,
	confirmHandoffHandler commands.ConfirmHandoffCommandHandler,
	completeStorageHandler commands.CompleteStorageDeliveryCommandHandler,
	cancelJobHandler commands.CancelJobCommandHandler,
	getAvailableJobsHandler queries.GetAvailableJobsQueryHandler,
	getMoverJobsHandler queries.GetMoverJobsQueryHandler,
	suggestRouteHandler queries.SuggestRouteQueryHandler,
	metrics *observability.Metrics,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		cancelOrderHandler:      cancelOrderHandler,
		createReturnJobHandler:  createReturnJobHandler,
		registerMoverHandler:    registerMoverHandler,
		acceptJobHandler:        acceptJobHandler,
		acceptRouteHandler:      acceptRouteHandler,
		requestArrivalHandler:   requestArrivalHandler,
		confirmHandoffHandler:   confirmHandoffHandler,
		completeStorageHandler:  completeStorageHandler,
		cancelJobHandler:        cancelJobHandler,
		getAvailableJobsHandler: getAvailableJobsHandler,
		getMoverJobsHandler:     getMoverJobsHandler,
		suggestRouteHandler:     suggestRouteHandler,
		metrics:                 metrics,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(s.metricsMiddleware)

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.POST("/orders/:orderId/return", s.CreateReturnJob)

	api.POST("/movers", s.RegisterMover)
	api.GET("/movers/:moverId/jobs", s.GetMoverJobs)

	api.GET("/jobs/available", s.GetAvailableJobs)
	api.POST("/jobs/:jobId/accept", s.AcceptJob)
	api.POST("/jobs/:jobId/request-confirmation", s.RequestArrival)
	api.POST("/jobs/:jobId/confirm", s.ConfirmHandoff)
	api.POST("/jobs/:jobId/complete", s.CompleteStorageDelivery)
	api.POST("/jobs/:jobId/cancel", s.CancelJob)

	api.GET("/routes/smart", s.SuggestRoute)
	api.POST("/routes/accept", s.AcceptRoute)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", s.Health)
}

// Health reports liveness.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - checkout.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	studentID, err := kernel.UUIDFromString(req.StudentID)
	if err != nil {
		return badRequest(ctx, "invalid student_id")
	}
	studentAddress, err := addressToDomain(req.StudentAddress)
	if err != nil {
		return respondError(ctx, err)
	}
	warehouseAddress, err := addressToDomain(req.WarehouseAddress)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), studentID, req.Volume, req.TotalPrice,
		studentAddress, warehouseAddress,
		req.PickupTime, req.ReturnTime, req.IdempotencyKey,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	status := http.StatusCreated
	if result.AlreadyExists {
		status = http.StatusOK
	} else {
		s.metrics.OrdersCreatedTotal.Inc()
	}

	return ctx.JSON(status, CreateOrderResponse{
		OrderID:      result.OrderID.String(),
		StorageJobID: result.StorageJobID.String(),
		TotalPrice:   req.TotalPrice,
	})
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req CancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	studentID, err := kernel.UUIDFromString(req.StudentID)
	if err != nil {
		return badRequest(ctx, "invalid student_id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, studentID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreateReturnJob handles POST /api/v1/orders/:orderId/return.
func (s *Server) CreateReturnJob(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req CreateReturnJobRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	studentID, err := kernel.UUIDFromString(req.StudentID)
	if err != nil {
		return badRequest(ctx, "invalid student_id")
	}

	var returnAddress *kernel.Address
	if req.ReturnAddress != nil {
		addr, addrErr := addressToDomain(*req.ReturnAddress)
		if addrErr != nil {
			return respondError(ctx, addrErr)
		}
		returnAddress = &addr
	}

	actualReturnTime := time.Now().UTC()
	if req.ActualReturnTime != nil {
		actualReturnTime = *req.ActualReturnTime
	}

	cmd, err := commands.NewCreateReturnJobCommand(orderID, studentID, returnAddress, actualReturnTime)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.createReturnJobHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	status := http.StatusCreated
	if result.AlreadyExists {
		status = http.StatusOK
	}

	return ctx.JSON(status, CreateReturnJobResponse{
		ReturnJobID:   result.ReturnJobID.String(),
		AlreadyExists: result.AlreadyExists,
		Refund:        result.Refund,
		LateFee:       result.LateFee,
	})
}

// RegisterMover handles POST /api/v1/movers.
func (s *Server) RegisterMover(ctx echo.Context) error {
	var req RegisterMoverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	location, err := kernel.NewLocation(
		kernel.Coordinate(req.Location.X), kernel.Coordinate(req.Location.Y))
	if err != nil {
		return respondError(ctx, err)
	}

	moverID := kernel.NewUUID()
	cmd, err := commands.NewRegisterMoverCommand(moverID, req.Name, location, req.Availability)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.registerMoverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RegisterMoverResponse{MoverID: moverID.String()})
}

// GetAvailableJobs handles GET /api/v1/jobs/available.
func (s *Server) GetAvailableJobs(ctx echo.Context) error {
	query := queries.NewGetAvailableJobsQuery()
	if raw := ctx.QueryParam("mover_id"); raw != "" {
		moverID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "invalid mover id")
		}
		query, err = queries.NewGetAvailableJobsQueryForMover(moverID)
		if err != nil {
			return respondError(ctx, err)
		}
	}

	jobs, err := s.getAvailableJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Job, len(jobs))
	for i, j := range jobs {
		response[i] = jobFromReadModel(j)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetMoverJobs handles GET /api/v1/movers/:moverId/jobs.
func (s *Server) GetMoverJobs(ctx echo.Context) error {
	moverID, err := kernel.UUIDFromString(ctx.Param("moverId"))
	if err != nil {
		return badRequest(ctx, "invalid mover id")
	}

	query, err := queries.NewGetMoverJobsQuery(moverID)
	if err != nil {
		return respondError(ctx, err)
	}

	jobs, err := s.getMoverJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Job, len(jobs))
	for i, j := range jobs {
		response[i] = jobFromReadModel(j)
	}
	return ctx.JSON(http.StatusOK, response)
}

// SuggestRoute handles GET /api/v1/routes/smart. The route honors the
// mover's availability unless ignore_availability=true is passed.
func (s *Server) SuggestRoute(ctx echo.Context) error {
	moverID, err := kernel.UUIDFromString(ctx.QueryParam("mover_id"))
	if err != nil {
		return badRequest(ctx, "invalid mover_id")
	}

	maxDuration := 0
	if raw := ctx.QueryParam("max_duration_minutes"); raw != "" {
		maxDuration, err = strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "invalid max_duration_minutes")
		}
	}
	ignoreAvailability := ctx.QueryParam("ignore_availability") == "true"

	query, err := queries.NewSuggestRouteQuery(moverID, maxDuration, ignoreAvailability)
	if err != nil {
		return respondError(ctx, err)
	}

	route, err := s.suggestRouteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := SuggestRouteResponse{
		Jobs:          make([]RouteLeg, len(route.Jobs)),
		TotalMinutes:  route.TotalMinutes,
		TotalEarnings: route.TotalEarnings,
	}
	for i, leg := range route.Jobs {
		response.Jobs[i] = RouteLeg{
			Job:                       jobFromReadModel(leg.Job),
			TravelMinutesFromPrevious: leg.TravelMinutesFromPrevious,
			CumulativeMinutes:         leg.CumulativeMinutes,
			CumulativeEarnings:        leg.CumulativeEarnings,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// AcceptJob handles POST /api/v1/jobs/:jobId/accept - a mover claims one
// job. Exactly one of concurrent claimants wins; the rest get a conflict.
func (s *Server) AcceptJob(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("jobId"))
	if err != nil {
		return badRequest(ctx, "invalid job id")
	}

	var req MoverActionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	moverID, err := kernel.UUIDFromString(req.MoverID)
	if err != nil {
		return badRequest(ctx, "invalid mover_id")
	}

	cmd, err := commands.NewAcceptJobCommand(jobID, moverID)
	if err != nil {
		return respondError(ctx, err)
	}

	accepted, err := s.acceptJobHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		s.countAssignment(err)
		return respondError(ctx, err)
	}
	s.countAssignment(nil)

	return ctx.JSON(http.StatusOK, jobFromDomain(accepted))
}

// AcceptRoute handles POST /api/v1/routes/accept - a mover claims a whole
// suggested route. Partial success returns 200 with per-job outcomes.
func (s *Server) AcceptRoute(ctx echo.Context) error {
	var req AcceptRouteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	moverID, err := kernel.UUIDFromString(req.MoverID)
	if err != nil {
		return badRequest(ctx, "invalid mover_id")
	}
	jobIDs := make([]kernel.UUID, len(req.JobIDs))
	for i, raw := range req.JobIDs {
		jobIDs[i], err = kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "invalid job id: "+raw)
		}
	}

	cmd, err := commands.NewAcceptRouteCommand(jobIDs, moverID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.acceptRouteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	response := AcceptRouteResponse{
		Accepted: make([]Job, len(result.Accepted)),
		Rejected: make([]RejectedJob, len(result.Rejected)),
	}
	for i, accepted := range result.Accepted {
		response.Accepted[i] = jobFromDomain(accepted)
		s.metrics.JobsAcceptedTotal.Inc()
	}
	for i, rejected := range result.Rejected {
		response.Rejected[i] = RejectedJob{
			JobID:  rejected.JobID.String(),
			Reason: rejected.Reason,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// RequestArrival handles POST /api/v1/jobs/:jobId/arrival - the assigned
// mover declares arrival and asks the student to confirm the handoff.
func (s *Server) RequestArrival(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("jobId"))
	if err != nil {
		return badRequest(ctx, "invalid job id")
	}

	var req MoverActionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	moverID, err := kernel.UUIDFromString(req.MoverID)
	if err != nil {
		return badRequest(ctx, "invalid mover_id")
	}

	cmd, err := commands.NewRequestArrivalConfirmationCommand(jobID, moverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.requestArrivalHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmHandoff handles POST /api/v1/jobs/:jobId/confirm - the student
// confirms the handoff the mover requested.
func (s *Server) ConfirmHandoff(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("jobId"))
	if err != nil {
		return badRequest(ctx, "invalid job id")
	}

	var req StudentActionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	studentID, err := kernel.UUIDFromString(req.StudentID)
	if err != nil {
		return badRequest(ctx, "invalid student_id")
	}

	cmd, err := commands.NewConfirmHandoffCommand(jobID, studentID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.confirmHandoffHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CompleteStorageDelivery handles POST /api/v1/jobs/:jobId/storage-complete
// - the mover reports the goods delivered to the warehouse.
func (s *Server) CompleteStorageDelivery(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("jobId"))
	if err != nil {
		return badRequest(ctx, "invalid job id")
	}

	var req MoverActionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	moverID, err := kernel.UUIDFromString(req.MoverID)
	if err != nil {
		return badRequest(ctx, "invalid mover_id")
	}

	cmd, err := commands.NewCompleteStorageDeliveryCommand(jobID, moverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.completeStorageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CancelJob handles POST /api/v1/jobs/:jobId/cancel.
func (s *Server) CancelJob(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("jobId"))
	if err != nil {
		return badRequest(ctx, "invalid job id")
	}

	var req CancelJobRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "invalid actor_id")
	}

	cmd, err := commands.NewCancelJobCommand(jobID, actorID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.cancelJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) countAssignment(err error) {
	switch {
	case err == nil:
		s.metrics.JobsAcceptedTotal.Inc()
	case statusFromError(err) == http.StatusConflict:
		s.metrics.AssignmentConflictsTotal.Inc()
	}
}

func jobFromDomain(j *job.Job) Job {
	return Job{
		ID:             j.ID().String(),
		OrderID:        j.OrderID().String(),
		JobType:        j.JobType().String(),
		Status:         j.Status().String(),
		Volume:         j.Volume(),
		Price:          j.Price(),
		PickupAddress:  addressFromDomain(j.PickupAddress()),
		DropoffAddress: addressFromDomain(j.DropoffAddress()),
		ScheduledTime:  j.ScheduledTime(),
	}
}

func addressFromDomain(a kernel.Address) Address {
	return Address{
		Line: a.Line(),
		X:    int16(a.Location().X()),
		Y:    int16(a.Location().Y()),
	}
}

func addressToDomain(a Address) (kernel.Address, error) {
	location, err := kernel.NewLocation(kernel.Coordinate(a.X), kernel.Coordinate(a.Y))
	if err != nil {
		return kernel.Address{}, err
	}
	return kernel.NewAddress(a.Line, location)
}
