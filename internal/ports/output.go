package ports

import (
	"context"
	"myq-smarthome-adapter/internal/domain/model"
)

// Resource selects the vendor state endpoint a mutation is sent to.
type Resource string

const (
	ResourceDoor  Resource = "door"
	ResourceLight Resource = "light"
)

// VendorPort is the vendor device cloud. Implementations return an error for
// transport failures and unparseable responses; application failures come
// back as a result with a nonzero ReturnCode.
type VendorPort interface {
	ListDevices(ctx context.Context, accessToken string) (*model.VendorResult, error)
	GetDoorState(ctx context.Context, accessToken, applianceID string) (*model.VendorResult, error)
	SetState(ctx context.Context, accessToken string, resource Resource, applianceID string, state int) (*model.VendorResult, error)
}
