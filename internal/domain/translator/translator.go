package translator

import (
	"github.com/amimof/huego"
	"myq-smarthome-adapter/internal/ports"
)

// Translator converts a requested power state into the numeric target state
// the vendor understands for one kind of device.
type Translator interface {
	ToVendor(state *huego.State) (int, error)
	GetMetadata() Metadata
}

// Metadata is what discovery advertises for a kind of device and where its
// mutations are sent.
type Metadata struct {
	ApplianceTypes []string
	Actions        []string
	Resource       ports.Resource
}

// Vendor numeric target states.
const (
	StateOff = 0
	StateOn  = 1
)
