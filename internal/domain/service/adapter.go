package service

import (
	"context"
	"log/slog"

	"github.com/amimof/huego"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"myq-smarthome-adapter/internal/domain/model"
	"myq-smarthome-adapter/internal/domain/translator"
	"myq-smarthome-adapter/internal/ports"
)

const outcomeSuccess = "success"

type Settings struct {
	ManufacturerName     string
	DependentServiceName string
}

// AdapterService routes directives to the vendor and translates the results
// back. It keeps no state between directives.
type AdapterService struct {
	vendor            ports.VendorPort
	observer          ports.Observer
	translatorFactory *translator.Factory
	projector         *translator.Projector
	responses         *ResponseBuilder
	logger            *slog.Logger
	tracer            trace.Tracer
}

func NewAdapterService(vendor ports.VendorPort, observer ports.Observer, logger *slog.Logger, settings Settings) *AdapterService {
	factory := translator.NewFactory()
	return &AdapterService{
		vendor:            vendor,
		observer:          observer,
		translatorFactory: factory,
		projector:         translator.NewProjector(factory, settings.ManufacturerName),
		responses:         NewResponseBuilder(settings.DependentServiceName),
		logger:            logger,
		tracer:            otel.Tracer("myq-smarthome-adapter/service"),
	}
}

// Route dispatches on namespace, then on directive name.
func (s *AdapterService) Route(ctx context.Context, d model.Directive) *model.Envelope {
	ctx, span := s.tracer.Start(ctx, "directive "+d.Header.Name, trace.WithAttributes(
		attribute.String("directive.namespace", string(d.Header.Namespace)),
		attribute.String("directive.name", d.Header.Name),
	))
	defer span.End()

	var resp *model.Envelope
	switch d.Header.Namespace {
	case model.NamespaceDiscovery:
		resp = s.routeDiscovery(ctx, d)
	case model.NamespaceControl:
		resp = s.routeControl(ctx, d)
	case model.NamespaceQuery:
		resp = s.routeQuery(ctx, d)
	default:
		s.logger.Warn("unsupported namespace", "namespace", d.Header.Namespace)
		resp = s.responses.Error(model.ErrorUnexpectedInformation, string(d.Header.Namespace))
	}

	outcome := outcomeSuccess
	if resp.Header.Namespace == model.ErrorNamespace && isErrorName(resp.Header.Name) {
		outcome = resp.Header.Name
		span.SetStatus(codes.Error, outcome)
	}
	if s.observer != nil {
		s.observer.DirectiveHandled(d.Header.Namespace, d.Header.Name, outcome)
	}
	return resp
}

func (s *AdapterService) routeDiscovery(ctx context.Context, d model.Directive) *model.Envelope {
	switch d.Header.Name {
	case model.RequestDiscover:
		return s.discover(ctx, d)
	default:
		return s.unsupported(d)
	}
}

func (s *AdapterService) routeControl(ctx context.Context, d model.Directive) *model.Envelope {
	switch d.Header.Name {
	case model.RequestTurnOn:
		return s.setState(ctx, d, &huego.State{On: true}, model.ResponseTurnOn, nil)
	case model.RequestTurnOff:
		return s.setState(ctx, d, &huego.State{On: false}, model.ResponseTurnOff, nil)
	case model.RequestSetLockState:
		lockState := d.LockState()
		return s.setState(ctx, d, translator.PowerState(lockState), model.ResponseSetLockState,
			map[string]interface{}{"lockState": lockState})
	default:
		return s.unsupported(d)
	}
}

func (s *AdapterService) routeQuery(ctx context.Context, d model.Directive) *model.Envelope {
	switch d.Header.Name {
	case model.RequestGetLockState:
		return s.getLockState(ctx, d)
	default:
		return s.unsupported(d)
	}
}

// discover never reports an error: any failure yields an empty device list.
func (s *AdapterService) discover(ctx context.Context, d model.Directive) *model.Envelope {
	appliances := []model.ApplianceDescriptor{}

	result, err := s.vendor.ListDevices(ctx, d.AccessToken())
	switch {
	case err != nil:
		s.logger.Error("discovery failed", "error", err)
	case result == nil:
		s.logger.Error("discovery returned no result")
	case result.ReturnCode != 0:
		s.logger.Error("discovery rejected", "return_code", result.ReturnCode)
	default:
		appliances = s.projector.Project(result.Devices)
	}

	return s.responses.Build(model.NamespaceDiscovery, model.ResponseDiscover, map[string]interface{}{
		"discoveredAppliances": appliances,
	})
}

func (s *AdapterService) setState(ctx context.Context, d model.Directive, state *huego.State, responseName string, payload map[string]interface{}) *model.Envelope {
	appliance, ok := d.Appliance()
	if !ok {
		return s.reject(model.ErrMissingAppliance, "appliance")
	}
	token := d.AccessToken()
	if token == "" {
		return s.fail(model.ErrorInvalidAccessToken, "")
	}

	t := s.translatorFactory.GetTranslator(appliance.TypeID)
	target, err := t.ToVendor(state)
	if err != nil {
		return s.reject(err, "")
	}

	result, err := s.vendor.SetState(ctx, token, t.GetMetadata().Resource, appliance.ApplianceID, target)
	if kind, failed := translator.Classify(result, err); failed {
		s.logVendorFailure("set state", result, err)
		return s.fail(kind, "")
	}
	return s.responses.Build(model.NamespaceControl, responseName, payload)
}

func (s *AdapterService) getLockState(ctx context.Context, d model.Directive) *model.Envelope {
	appliance, ok := d.Appliance()
	if !ok {
		return s.reject(model.ErrMissingAppliance, "appliance")
	}
	token := d.AccessToken()
	if token == "" {
		return s.fail(model.ErrorInvalidAccessToken, "")
	}

	result, err := s.vendor.GetDoorState(ctx, token, appliance.ApplianceID)
	if kind, failed := translator.Classify(result, err); failed {
		s.logVendorFailure("get state", result, err)
		return s.fail(kind, "")
	}
	return s.responses.Build(model.NamespaceQuery, model.ResponseGetLockState, map[string]interface{}{
		"lockState": translator.LockState(result.DoorState),
	})
}

func (s *AdapterService) unsupported(d model.Directive) *model.Envelope {
	s.logger.Warn("unsupported operation", "namespace", d.Header.Namespace, "name", d.Header.Name)
	return s.responses.Error(model.ErrorUnsupportedOperation, "")
}

func (s *AdapterService) reject(err error, faultingParameter string) *model.Envelope {
	return s.fail(translator.KindOf(err), faultingParameter)
}

func (s *AdapterService) fail(kind model.ErrorKind, faultingParameter string) *model.Envelope {
	s.logger.Warn("directive failed", "kind", kind.String())
	return s.responses.Error(kind, faultingParameter)
}

func (s *AdapterService) logVendorFailure(op string, result *model.VendorResult, err error) {
	switch {
	case err != nil:
		s.logger.Error("vendor call failed", "op", op, "error", err)
	case result == nil:
		s.logger.Error("vendor call returned no result", "op", op)
	default:
		s.logger.Warn("vendor call rejected", "op", op, "return_code", result.ReturnCode)
	}
}

func isErrorName(name string) bool {
	for _, kind := range []model.ErrorKind{
		model.ErrorUnsupportedOperation,
		model.ErrorUnexpectedInformation,
		model.ErrorInvalidAccessToken,
		model.ErrorDependentServiceUnavailable,
	} {
		if kind.DirectiveName() == name {
			return true
		}
	}
	return false
}
