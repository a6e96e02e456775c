package observability

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"myq-smarthome-adapter/internal/domain/model"
	"myq-smarthome-adapter/internal/ports"
)

// instrumentedVendor times and traces every call to the wrapped VendorPort.
type instrumentedVendor struct {
	next    ports.VendorPort
	metrics *Metrics
	tracer  trace.Tracer
}

func InstrumentVendor(next ports.VendorPort, metrics *Metrics) ports.VendorPort {
	return &instrumentedVendor{
		next:    next,
		metrics: metrics,
		tracer:  otel.Tracer("myq-smarthome-adapter/vendor"),
	}
}

func (v *instrumentedVendor) ListDevices(ctx context.Context, accessToken string) (*model.VendorResult, error) {
	ctx, done := v.start(ctx, "list_devices")
	res, err := v.next.ListDevices(ctx, accessToken)
	done(res, err)
	return res, err
}

func (v *instrumentedVendor) GetDoorState(ctx context.Context, accessToken, applianceID string) (*model.VendorResult, error) {
	ctx, done := v.start(ctx, "get_door_state", attribute.String("appliance.id", applianceID))
	res, err := v.next.GetDoorState(ctx, accessToken, applianceID)
	done(res, err)
	return res, err
}

func (v *instrumentedVendor) SetState(ctx context.Context, accessToken string, resource ports.Resource, applianceID string, state int) (*model.VendorResult, error) {
	ctx, done := v.start(ctx, "set_"+string(resource)+"_state",
		attribute.String("appliance.id", applianceID),
		attribute.Int("vendor.target_state", state),
	)
	res, err := v.next.SetState(ctx, accessToken, resource, applianceID, state)
	done(res, err)
	return res, err
}

func (v *instrumentedVendor) start(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, func(*model.VendorResult, error)) {
	began := time.Now()
	ctx, span := v.tracer.Start(ctx, "vendor "+operation, trace.WithAttributes(attrs...))
	return ctx, func(res *model.VendorResult, err error) {
		result := resultLabel(res, err)
		v.metrics.vendorDuration.WithLabelValues(operation, result).Observe(time.Since(began).Seconds())
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "transport failure")
		} else if res != nil {
			span.SetAttributes(attribute.Int("vendor.return_code", res.ReturnCode))
		}
		span.End()
	}
}

func resultLabel(res *model.VendorResult, err error) string {
	switch {
	case err != nil:
		return "transport_error"
	case res == nil:
		return "empty"
	default:
		return strconv.Itoa(res.ReturnCode)
	}
}
