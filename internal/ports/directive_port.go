package ports

import (
	"context"
	"myq-smarthome-adapter/internal/domain/model"
)

// DirectivePort handles one inbound directive and settles with exactly one
// envelope. The envelope may be nil when nothing could be built.
type DirectivePort interface {
	Handle(ctx context.Context, directive model.Directive) (*model.Envelope, error)
}
