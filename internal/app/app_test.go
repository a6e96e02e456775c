package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"myq-smarthome-adapter/internal/config"
	"myq-smarthome-adapter/internal/domain/model"
)

func newApp(t *testing.T, vendor http.Handler) *App {
	t.Helper()
	srv := httptest.NewServer(vendor)
	t.Cleanup(srv.Close)
	cfg := &config.Config{
		Endpoint:             srv.URL,
		RequestTimeout:       time.Second,
		ManufacturerName:     "Chamberlain/LiftMaster",
		DependentServiceName: "MyQ Service",
	}
	return New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestApp_DiscoveryEndToEnd(t *testing.T) {
	a := newApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/devices", r.URL.Path)
		_, _ = w.Write([]byte(`{"returnCode":0,"devices":[{"id":"7","typeId":3,"typeName":"Lamp","online":true},{"id":"9"}]}`))
	}))

	resp, err := a.Entry.Handle(context.Background(), model.Directive{
		Header:  model.Header{Namespace: model.NamespaceDiscovery, Name: model.RequestDiscover, MessageID: "req"},
		Payload: map[string]interface{}{"accessToken": "token"},
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	appliances := resp.Payload["discoveredAppliances"].([]model.ApplianceDescriptor)
	require.Len(t, appliances, 2)
	assert.Equal(t, "Device 1", appliances[0].FriendlyName)
	assert.Equal(t, "Device 2", appliances[1].FriendlyName)
	assert.Equal(t, "MyQ Device", appliances[1].ModelName)
}

func TestApp_DiscoveryVendorDown(t *testing.T) {
	a := newApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))

	resp, err := a.Entry.Handle(context.Background(), model.Directive{
		Header: model.Header{Namespace: model.NamespaceDiscovery, Name: model.RequestDiscover},
	})
	require.NoError(t, err)
	assert.Equal(t, model.ResponseDiscover, resp.Header.Name)
	assert.Empty(t, resp.Payload["discoveredAppliances"])
}

func TestApp_DoorOpenNeverReachesVendor(t *testing.T) {
	var hits int32
	a := newApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(`{"returnCode":0}`))
	}))

	var got *model.Envelope
	a.Entry.Invoke(context.Background(), model.Directive{
		Header: model.Header{Namespace: model.NamespaceControl, Name: model.RequestTurnOn},
		Payload: map[string]interface{}{
			"accessToken": "token",
			"appliance": map[string]interface{}{
				"applianceId":                "1",
				"additionalApplianceDetails": map[string]interface{}{"typeId": "2"},
			},
		},
	}, func(err error, resp *model.Envelope) {
		assert.NoError(t, err)
		got = resp
	})

	require.NotNil(t, got)
	assert.Equal(t, "UnsupportedOperationError", got.Header.Name)
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
}

func TestApp_VendorTimeout(t *testing.T) {
	a := newApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(1500 * time.Millisecond)
	}))

	resp, err := a.Entry.Handle(context.Background(), model.Directive{
		Header: model.Header{Namespace: model.NamespaceQuery, Name: model.RequestGetLockState},
		Payload: map[string]interface{}{
			"accessToken": "token",
			"appliance":   map[string]interface{}{"applianceId": "1"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "DependentServiceUnavailableError", resp.Header.Name)
	assert.Equal(t, "MyQ Service", resp.Payload["dependentServiceName"])
}
