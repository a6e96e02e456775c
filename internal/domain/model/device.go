package model

import (
	"encoding/json"
	"strconv"
)

// VendorDevice is a raw device record from the vendor device list. Every
// field is optional on the wire; HasTypeID reports whether typeId was set.
type VendorDevice struct {
	ID        string
	Name      string
	TypeID    int
	HasTypeID bool
	TypeName  string
	Online    bool
}

func (d *VendorDevice) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       interface{} `json:"id"`
		Name     interface{} `json:"name"`
		TypeID   interface{} `json:"typeId"`
		TypeName interface{} `json:"typeName"`
		Online   interface{} `json:"online"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*d = VendorDevice{}
	d.ID = stringify(raw.ID)
	d.Name, _ = raw.Name.(string)
	d.TypeName, _ = raw.TypeName.(string)
	online, ok := raw.Online.(bool)
	d.Online = ok && online

	switch v := raw.TypeID.(type) {
	case float64:
		if v != 0 {
			d.TypeID, d.HasTypeID = int(v), true
		}
	case string:
		if n, err := strconv.Atoi(v); err == nil && n != 0 {
			d.TypeID, d.HasTypeID = n, true
		}
	}
	return nil
}

// VendorResult is the parsed body of any vendor call. ReturnCode 0 is success.
type VendorResult struct {
	ReturnCode int            `json:"returnCode"`
	Devices    []VendorDevice `json:"devices,omitempty"`
	DoorState  int            `json:"doorState,omitempty"`
}

// ApplianceDescriptor is the discovery-time capability model of one device.
type ApplianceDescriptor struct {
	ApplianceID                string            `json:"applianceId"`
	ApplianceTypes             []string          `json:"applianceTypes"`
	ManufacturerName           string            `json:"manufacturerName"`
	ModelName                  string            `json:"modelName"`
	Version                    string            `json:"version"`
	FriendlyName               string            `json:"friendlyName"`
	FriendlyDescription        string            `json:"friendlyDescription"`
	IsReachable                bool              `json:"isReachable"`
	Actions                    []string          `json:"actions"`
	AdditionalApplianceDetails map[string]string `json:"additionalApplianceDetails"`
}

// stringify renders JSON scalars (strings and numbers) as strings. Anything
// else becomes the empty string.
func stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	default:
		return ""
	}
}
