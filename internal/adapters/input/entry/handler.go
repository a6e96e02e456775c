package entry

import (
	"context"
	"log/slog"

	"myq-smarthome-adapter/internal/domain/model"
	"myq-smarthome-adapter/internal/ports"
)

// Router produces the response envelope for one directive.
type Router interface {
	Route(ctx context.Context, d model.Directive) *model.Envelope
}

// Callback receives the settled result of Invoke.
type Callback func(err error, resp *model.Envelope)

// Handler is the adapter's entry point. It always settles: panics raised
// while routing are logged and turned into a nil envelope, and the returned
// error is always nil so the caller never sees a raw failure.
type Handler struct {
	router Router
	logger *slog.Logger
}

var _ ports.DirectivePort = (*Handler)(nil)

func NewHandler(router Router, logger *slog.Logger) *Handler {
	return &Handler{router: router, logger: logger}
}

func (h *Handler) Handle(ctx context.Context, d model.Directive) (resp *model.Envelope, err error) {
	h.logger.Info("received directive",
		"namespace", d.Header.Namespace,
		"name", d.Header.Name,
		"message_id", d.Header.MessageID,
	)

	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("directive handling panicked", "panic", r, "name", d.Header.Name)
			resp, err = nil, nil
		}
	}()

	resp = h.router.Route(ctx, d)
	if resp != nil {
		h.logger.Info("responding", "namespace", resp.Header.Namespace, "name", resp.Header.Name)
	}
	return resp, nil
}

// Invoke calls cb exactly once with the settled result of Handle.
func (h *Handler) Invoke(ctx context.Context, d model.Directive, cb Callback) {
	resp, err := h.Handle(ctx, d)
	cb(err, resp)
}
