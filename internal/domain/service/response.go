package service

import (
	"github.com/google/uuid"
	"myq-smarthome-adapter/internal/domain/model"
)

// ResponseBuilder wraps payloads into response envelopes. Every envelope gets
// a fresh message id; the request's id is never reused.
type ResponseBuilder struct {
	newMessageID         func() string
	dependentServiceName string
}

func NewResponseBuilder(dependentServiceName string) *ResponseBuilder {
	return &ResponseBuilder{
		newMessageID:         uuid.NewString,
		dependentServiceName: dependentServiceName,
	}
}

func (b *ResponseBuilder) Build(namespace model.Namespace, name string, payload map[string]interface{}) *model.Envelope {
	if payload == nil {
		payload = map[string]interface{}{}
	}
	return &model.Envelope{
		Header: model.Header{
			MessageID:      b.newMessageID(),
			Namespace:      namespace,
			Name:           name,
			PayloadVersion: model.PayloadVersion,
		},
		Payload: payload,
	}
}

// Error builds the error directive for kind. faultingParameter is only
// reported for ErrorUnexpectedInformation.
func (b *ResponseBuilder) Error(kind model.ErrorKind, faultingParameter string) *model.Envelope {
	payload := map[string]interface{}{}
	switch kind {
	case model.ErrorUnexpectedInformation:
		payload["faultingParameter"] = faultingParameter
	case model.ErrorDependentServiceUnavailable:
		payload["dependentServiceName"] = b.dependentServiceName
	}
	return b.Build(model.ErrorNamespace, kind.DirectiveName(), payload)
}
