package translator

import (
	"github.com/amimof/huego"
	"myq-smarthome-adapter/internal/domain/model"
	"myq-smarthome-adapter/internal/ports"
)

// doorLocked is the vendor doorState reported for a closed door.
const doorLocked = 2

// DoorStrategy covers garage doors and gates. Doors may be closed but never
// opened: the voice platform cannot carry the PIN confirmation opening needs.
type DoorStrategy struct{}

func (s *DoorStrategy) ToVendor(state *huego.State) (int, error) {
	if state.On {
		return 0, model.ErrUnsupportedOperation
	}
	return StateOff, nil
}

func (s *DoorStrategy) GetMetadata() Metadata {
	return Metadata{
		ApplianceTypes: []string{"SMARTLOCK", "SWITCH"},
		Actions:        []string{"turnOff", "getLockState", "setLockState"},
		Resource:       ports.ResourceDoor,
	}
}

// LockState maps a vendor doorState onto the protocol lock vocabulary.
func LockState(doorState int) string {
	if doorState == doorLocked {
		return model.LockStateLocked
	}
	return model.LockStateUnlocked
}

// PowerState maps a requested lock state onto a power state: LOCKED is off
// (closed), anything else is on.
func PowerState(lockState string) *huego.State {
	return &huego.State{On: lockState != model.LockStateLocked}
}
