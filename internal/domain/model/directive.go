package model

type Namespace string

const (
	NamespaceDiscovery Namespace = "Alexa.ConnectedHome.Discovery"
	NamespaceControl   Namespace = "Alexa.ConnectedHome.Control"
	NamespaceQuery     Namespace = "Alexa.ConnectedHome.Query"
)

// Request and response directive names.
const (
	RequestDiscover  = "DiscoverAppliancesRequest"
	ResponseDiscover = "DiscoverAppliancesResponse"

	RequestSetLockState  = "SetLockStateRequest"
	ResponseSetLockState = "SetLockStateConfirmation"
	RequestTurnOn        = "TurnOnRequest"
	ResponseTurnOn       = "TurnOnConfirmation"
	RequestTurnOff       = "TurnOffRequest"
	ResponseTurnOff      = "TurnOffConfirmation"

	RequestGetLockState  = "GetLockStateRequest"
	ResponseGetLockState = "GetLockStateResponse"
)

const PayloadVersion = "2"

const (
	LockStateLocked   = "LOCKED"
	LockStateUnlocked = "UNLOCKED"
)

type Header struct {
	Namespace      Namespace `json:"namespace"`
	Name           string    `json:"name"`
	MessageID      string    `json:"messageId"`
	PayloadVersion string    `json:"payloadVersion"`
}

// Directive is an inbound request. The adapter only reads it.
type Directive struct {
	Header  Header                 `json:"header"`
	Payload map[string]interface{} `json:"payload"`
}

// ApplianceRef is the appliance a Control or Query directive targets.
type ApplianceRef struct {
	ApplianceID string
	TypeID      string
}

func (d Directive) AccessToken() string {
	token, _ := d.Payload["accessToken"].(string)
	return token
}

func (d Directive) LockState() string {
	state, _ := d.Payload["lockState"].(string)
	return state
}

// Appliance resolves the targeted appliance. ok is false when the payload
// carries no usable applianceId.
func (d Directive) Appliance() (ApplianceRef, bool) {
	raw, ok := d.Payload["appliance"].(map[string]interface{})
	if !ok {
		return ApplianceRef{}, false
	}
	ref := ApplianceRef{}
	ref.ApplianceID, _ = raw["applianceId"].(string)
	if details, ok := raw["additionalApplianceDetails"].(map[string]interface{}); ok {
		ref.TypeID = stringify(details["typeId"])
	}
	return ref, ref.ApplianceID != ""
}

// Envelope is the header+payload response handed back to the caller.
// It is never mutated after construction.
type Envelope struct {
	Header  Header                 `json:"header"`
	Payload map[string]interface{} `json:"payload"`
}
