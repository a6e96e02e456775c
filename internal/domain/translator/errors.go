package translator

import (
	"errors"

	"myq-smarthome-adapter/internal/domain/model"
)

// Vendor return codes that all mean the access token was rejected.
var invalidTokenCodes = map[int]struct{}{
	14: {},
	16: {},
	17: {},
}

// TranslateReturnCode maps a nonzero vendor return code onto an error kind.
func TranslateReturnCode(code int) model.ErrorKind {
	if _, ok := invalidTokenCodes[code]; ok {
		return model.ErrorInvalidAccessToken
	}
	return model.ErrorDependentServiceUnavailable
}

// Classify reports the error kind for the outcome of a vendor call, and false
// when the call succeeded.
func Classify(result *model.VendorResult, err error) (model.ErrorKind, bool) {
	if err != nil || result == nil {
		return model.ErrorDependentServiceUnavailable, true
	}
	if result.ReturnCode != 0 {
		return TranslateReturnCode(result.ReturnCode), true
	}
	return 0, false
}

// KindOf maps an adapter-side rejection onto an error kind.
func KindOf(err error) model.ErrorKind {
	switch {
	case errors.Is(err, model.ErrUnsupportedOperation):
		return model.ErrorUnsupportedOperation
	case errors.Is(err, model.ErrMissingAppliance):
		return model.ErrorUnexpectedInformation
	default:
		return model.ErrorDependentServiceUnavailable
	}
}
