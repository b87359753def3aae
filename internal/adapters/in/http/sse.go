package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"campuseats/internal/core/application/usecases/queries"
	"campuseats/internal/notifications"

	"github.com/labstack/echo/v4"
)

// heartbeatInterval keeps idle SSE connections alive through proxies that
// reap quiet streams.
const heartbeatInterval = 25 * time.Second

// StreamPendingOrders handles GET /api/v1/feeds/pending - a live view of the
// available-orders feed.
func (s *Server) StreamPendingOrders(ctx echo.Context) error {
	caller, ok := callerIdentity(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetPendingOrdersQuery(caller.uid)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	return s.streamFeed(ctx, s.hub.SubscribePending(), func(reqCtx context.Context) (any, error) {
		return s.getPendingOrdersHandler.Handle(reqCtx, query)
	})
}

// StreamMyOrders handles GET /api/v1/feeds/orders - a live view of the
// caller's own orders.
func (s *Server) StreamMyOrders(ctx echo.Context) error {
	caller, ok := callerIdentity(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetCustomerOrdersQuery(caller.uid)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	sub := s.hub.SubscribeCustomer(caller.uid.String())
	return s.streamFeed(ctx, sub, func(reqCtx context.Context) (any, error) {
		return s.getCustomerOrdersHandler.Handle(reqCtx, query)
	})
}

// StreamMyDeliveries handles GET /api/v1/feeds/deliveries - a live view of
// the caller's deliveries.
func (s *Server) StreamMyDeliveries(ctx echo.Context) error {
	caller, ok := callerIdentity(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetCourierDeliveriesQuery(caller.uid)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	sub := s.hub.SubscribeCourier(caller.uid.String())
	return s.streamFeed(ctx, sub, func(reqCtx context.Context) (any, error) {
		return s.getCourierDeliveriesHandler.Handle(reqCtx, query)
	})
}

// streamFeed runs one SSE connection: it sends the current feed state
// immediately, then re-fetches and resends whenever the hub signals a change,
// until the client disconnects. Each frame carries the full feed, so clients
// replace rather than patch their state.
func (s *Server) streamFeed(
	ctx echo.Context,
	sub *notifications.Subscription,
	fetch func(context.Context) (any, error),
) error {
	defer sub.Cancel()

	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)

	reqCtx := ctx.Request().Context()

	if err := writeFrame(res, fetch, reqCtx); err != nil {
		return err
	}

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-reqCtx.Done():
			return nil
		case <-sub.C():
			if err := writeFrame(res, fetch, reqCtx); err != nil {
				return err
			}
		case <-heartbeat.C:
			if _, err := fmt.Fprint(res, ": ping\n\n"); err != nil {
				return err
			}
			res.Flush()
		}
	}
}

// writeFrame fetches the feed state and writes it as one SSE data frame.
func writeFrame(res *echo.Response, fetch func(context.Context) (any, error), reqCtx context.Context) error {
	state, err := fetch(reqCtx)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintf(res, "data: %s\n\n", payload); err != nil {
		return err
	}

	res.Flush()
	return nil
}
