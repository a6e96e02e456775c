package observability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"myq-smarthome-adapter/internal/domain/model"
	"myq-smarthome-adapter/internal/ports"
)

type stubVendor struct {
	result *model.VendorResult
	err    error
	calls  int
}

func (s *stubVendor) ListDevices(ctx context.Context, accessToken string) (*model.VendorResult, error) {
	s.calls++
	return s.result, s.err
}

func (s *stubVendor) GetDoorState(ctx context.Context, accessToken, applianceID string) (*model.VendorResult, error) {
	s.calls++
	return s.result, s.err
}

func (s *stubVendor) SetState(ctx context.Context, accessToken string, resource ports.Resource, applianceID string, state int) (*model.VendorResult, error) {
	s.calls++
	return s.result, s.err
}

func TestMetrics_DirectiveHandled(t *testing.T) {
	m := NewMetrics()
	m.DirectiveHandled(model.NamespaceControl, model.RequestTurnOn, "success")
	m.DirectiveHandled(model.NamespaceControl, model.RequestTurnOn, "success")
	m.DirectiveHandled(model.NamespaceQuery, model.RequestGetLockState, "InvalidAccessTokenError")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.directives.WithLabelValues(string(model.NamespaceControl), model.RequestTurnOn, "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.directives.WithLabelValues(string(model.NamespaceQuery), model.RequestGetLockState, "InvalidAccessTokenError")))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.DirectiveHandled(model.NamespaceDiscovery, model.RequestDiscover, "success")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "directives_total"))
}

func TestInstrumentVendor_PassesThrough(t *testing.T) {
	m := NewMetrics()
	stub := &stubVendor{result: &model.VendorResult{ReturnCode: 0, DoorState: 2}}
	v := InstrumentVendor(stub, m)

	res, err := v.GetDoorState(context.Background(), "token", "1")
	require.NoError(t, err)
	assert.Equal(t, 2, res.DoorState)

	_, err = v.SetState(context.Background(), "token", ports.ResourceLight, "1", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, stub.calls)
	assert.Equal(t, 2, testutil.CollectAndCount(m.vendorDuration))
}

func TestInstrumentVendor_Errors(t *testing.T) {
	m := NewMetrics()
	stub := &stubVendor{err: errors.New("timeout")}
	v := InstrumentVendor(stub, m)

	res, err := v.ListDevices(context.Background(), "token")
	assert.Nil(t, res)
	assert.EqualError(t, err, "timeout")
}

func TestResultLabel(t *testing.T) {
	assert.Equal(t, "transport_error", resultLabel(nil, errors.New("x")))
	assert.Equal(t, "empty", resultLabel(nil, nil))
	assert.Equal(t, "16", resultLabel(&model.VendorResult{ReturnCode: 16}, nil))
}
