package model

import "errors"

// ErrorKind is the fixed protocol error vocabulary.
type ErrorKind int

const (
	ErrorUnsupportedOperation ErrorKind = iota + 1
	ErrorUnexpectedInformation
	ErrorInvalidAccessToken
	ErrorDependentServiceUnavailable
)

var errorDirectiveNames = map[ErrorKind]string{
	ErrorUnsupportedOperation:        "UnsupportedOperationError",
	ErrorUnexpectedInformation:       "UnexpectedInformationReceivedError",
	ErrorInvalidAccessToken:          "InvalidAccessTokenError",
	ErrorDependentServiceUnavailable: "DependentServiceUnavailableError",
}

// DirectiveName returns the protocol directive name the kind is reported as.
func (k ErrorKind) DirectiveName() string {
	return errorDirectiveNames[k]
}

func (k ErrorKind) String() string {
	if name, ok := errorDirectiveNames[k]; ok {
		return name
	}
	return "UnknownError"
}

// ErrorNamespace is where every error directive is reported.
const ErrorNamespace = NamespaceControl

var (
	ErrUnsupportedOperation = errors.New("operation not supported for this appliance")
	ErrMissingAppliance     = errors.New("directive does not identify an appliance")
)
