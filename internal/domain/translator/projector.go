package translator

import (
	"fmt"
	"strconv"

	"myq-smarthome-adapter/internal/domain/model"
)

const (
	defaultTypeID   = "Unknown"
	defaultTypeName = "MyQ Device"
	applianceVer    = "1.00"
)

// Projector turns vendor device records into appliance descriptors.
type Projector struct {
	factory      *Factory
	manufacturer string
}

func NewProjector(factory *Factory, manufacturer string) *Projector {
	return &Projector{factory: factory, manufacturer: manufacturer}
}

// projection is the accumulator folded over the device list. nextUnnamed is
// the number handed to the next device that has no name.
type projection struct {
	nextUnnamed int
	out         []model.ApplianceDescriptor
}

// Project is a pure fold over devices. Devices without an id are dropped.
func (p *Projector) Project(devices []model.VendorDevice) []model.ApplianceDescriptor {
	acc := projection{nextUnnamed: 1, out: make([]model.ApplianceDescriptor, 0, len(devices))}
	for _, d := range devices {
		acc = p.step(acc, d)
	}
	return acc.out
}

func (p *Projector) step(acc projection, d model.VendorDevice) projection {
	if d.ID == "" {
		return acc
	}

	name := d.Name
	if name == "" {
		name = fmt.Sprintf("Device %d", acc.nextUnnamed)
		acc.nextUnnamed++
	}
	typeID := defaultTypeID
	if d.HasTypeID {
		typeID = strconv.Itoa(d.TypeID)
	}
	typeName := d.TypeName
	if typeName == "" {
		typeName = defaultTypeName
	}

	meta := p.factory.GetTranslator(typeID).GetMetadata()
	acc.out = append(acc.out, model.ApplianceDescriptor{
		ApplianceID:         d.ID,
		ApplianceTypes:      append([]string(nil), meta.ApplianceTypes...),
		ManufacturerName:    p.manufacturer,
		ModelName:           typeName,
		Version:             applianceVer,
		FriendlyName:        name,
		FriendlyDescription: typeName,
		IsReachable:         d.Online,
		Actions:             append([]string(nil), meta.Actions...),
		AdditionalApplianceDetails: map[string]string{
			"typeId": typeID,
		},
	})
	return acc
}
