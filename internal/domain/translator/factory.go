package translator

// LightTypeID is the vendor typeId of lights, as echoed back in
// additionalApplianceDetails. Every other type is treated as a door.
const LightTypeID = "3"

type Factory struct {
	strategies map[string]Translator
	fallback   Translator
}

func NewFactory() *Factory {
	return &Factory{
		strategies: map[string]Translator{
			LightTypeID: &LightStrategy{},
		},
		fallback: &DoorStrategy{},
	}
}

func (f *Factory) GetTranslator(typeID string) Translator {
	if t, ok := f.strategies[typeID]; ok {
		return t
	}
	return f.fallback
}
