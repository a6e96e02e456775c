package ports

import "myq-smarthome-adapter/internal/domain/model"

// Observer records the outcome of every routed directive. outcome is
// "success" or the error directive name that was returned.
type Observer interface {
	DirectiveHandled(namespace model.Namespace, name, outcome string)
}
