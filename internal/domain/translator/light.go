package translator

import (
	"github.com/amimof/huego"
	"myq-smarthome-adapter/internal/ports"
)

type LightStrategy struct{}

func (s *LightStrategy) ToVendor(state *huego.State) (int, error) {
	if state.On {
		return StateOn, nil
	}
	return StateOff, nil
}

func (s *LightStrategy) GetMetadata() Metadata {
	return Metadata{
		ApplianceTypes: []string{"LIGHT"},
		Actions:        []string{"turnOff", "turnOn"},
		Resource:       ports.ResourceLight,
	}
}
