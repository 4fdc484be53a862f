package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/casaluna/hotel-pms/internal/core/live"
)

// DefaultHeartbeat is how often an idle event stream sends a keep-alive
// comment.
const DefaultHeartbeat = 15 * time.Second

// recordService is the part every table screen shares.
type recordService[T any] interface {
	List(ctx context.Context, query string) ([]T, error)
	Watch(ctx context.Context, query string) (*live.Subscription[[]T], error)
	Get(ctx context.Context, id string) (*T, error)
	Delete(ctx context.Context, id string)
}

// recordRoutes implements the list, get, delete and stream endpoints of a
// table screen.
type recordRoutes[T any] struct {
	svc       recordService[T]
	heartbeat time.Duration
	log       zerolog.Logger
}

func newRecordRoutes[T any](svc recordService[T], heartbeat time.Duration, log zerolog.Logger) recordRoutes[T] {
	if heartbeat <= 0 {
		heartbeat = DefaultHeartbeat
	}
	return recordRoutes[T]{svc: svc, heartbeat: heartbeat, log: log}
}

func (r recordRoutes[T]) list(c echo.Context) error {
	items, err := r.svc.List(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (r recordRoutes[T]) get(c echo.Context) error {
	doc, err := r.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doc)
}

// remove queues the delete and answers 202 at once; the outcome is never
// reported back.
func (r recordRoutes[T]) remove(c echo.Context) error {
	id := c.Param("id")
	r.svc.Delete(c.Request().Context(), id)
	return c.JSON(http.StatusAccepted, acceptedResponse{ID: id, Status: "queued"})
}

// stream pushes the filtered list as a server-sent "snapshot" event on
// every collection change until the client goes away.
func (r recordRoutes[T]) stream(c echo.Context) error {
	ctx := c.Request().Context()
	sub, err := r.svc.Watch(ctx, c.QueryParam("q"))
	if err != nil {
		return err
	}
	defer sub.Unsubscribe()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	ticker := time.NewTicker(r.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case items, ok := <-sub.C:
			if !ok {
				return nil
			}
			if err := writeEvent(res, "snapshot", items); err != nil {
				r.log.Debug().Err(err).Str("path", c.Path()).Msg("event stream closed")
				return nil
			}
		case <-ticker.C:
			if _, err := fmt.Fprint(res, ": ping\n\n"); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}

func writeEvent(res *echo.Response, name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", name, data); err != nil {
		return err
	}
	res.Flush()
	return nil
}
