package platform

import (
	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/status"
)

// descriptions holds the message of every known platform code.
var descriptions = map[errors.ErrorCode]string{
	CodeOK: "success",

	// Resource errors.
	errors.CodeNotFound:      "requested resource does not exist",
	errors.CodeAlreadyExists: "resource already exists",
	errors.CodeConflict:      "resource state conflict",

	// Permission errors.
	errors.CodeUnauthorized: "missing or invalid authentication credentials",
	errors.CodeForbidden:    "permission denied for the operation",

	// Validation errors.
	errors.CodeInvalidInput:  "invalid or malformed input",
	errors.CodeInvalidConfig: "invalid configuration",
	errors.CodeSchemaFailed:  "schema validation failed",

	// Infrastructure errors.
	errors.CodeDatabase:  "database operation failed",
	errors.CodeNetwork:   "network operation failed",
	errors.CodeTimeout:   "operation timed out",
	errors.CodeRateLimit: "rate limit exceeded",

	// Execution errors.
	errors.CodeExecutionFailed: "execution failed",
	errors.CodeBuildFailed:     "build failed",
	errors.CodePublishFailed:   "publish failed",

	// CUE errors.
	errors.CodeCUELoadFailed:       "CUE loading failed",
	errors.CodeCUEBuildFailed:      "CUE evaluation failed",
	errors.CodeCUEValidationFailed: "CUE validation failed",
	errors.CodeCUEDecodeFailed:     "CUE decoding failed",
	errors.CodeCUEEncodeFailed:     "CUE encoding failed",

	errors.CodeSchemaVersionIncompatible: "incompatible schema version",

	// System errors.
	errors.CodeInternal:       "internal error",
	errors.CodeNotImplemented: "not implemented",
	errors.CodeUnavailable:    "service temporarily unavailable",

	errors.CodeUnknown: "unknown error",
}

// genericPairs maps platform codes to generic conditions. When a condition
// appears more than once the first code is the one FromGeneric returns.
var genericPairs = []struct {
	code errors.ErrorCode
	errc status.Errc
}{
	{CodeOK, status.ErrcSuccess},
	{errors.CodeNotFound, status.ErrcNoSuchFileOrDirectory},
	{errors.CodeAlreadyExists, status.ErrcFileExists},
	{errors.CodeUnauthorized, status.ErrcOperationNotPermitted},
	{errors.CodeForbidden, status.ErrcPermissionDenied},
	{errors.CodeInvalidInput, status.ErrcInvalidArgument},
	{errors.CodeInvalidConfig, status.ErrcInvalidArgument},
	{errors.CodeNetwork, status.ErrcNetworkDown},
	{errors.CodeTimeout, status.ErrcTimedOut},
	{errors.CodeNotImplemented, status.ErrcFunctionNotSupported},
	{errors.CodeUnavailable, status.ErrcResourceUnavailableTryAgain},
}

var toGeneric, fromGeneric = func() (map[errors.ErrorCode]status.Errc, map[status.Errc]errors.ErrorCode) {
	to := make(map[errors.ErrorCode]status.Errc, len(genericPairs))
	from := make(map[status.Errc]errors.ErrorCode, len(genericPairs))
	for _, p := range genericPairs {
		to[p.code] = p.errc
		if _, ok := from[p.errc]; !ok {
			from[p.errc] = p.code
		}
	}
	return to, from
}()

// FromGeneric returns the platform code that best matches a generic
// condition, or CodeUnknown.
func FromGeneric(g status.Errc) errors.ErrorCode {
	if c, ok := fromGeneric[g]; ok {
		return c
	}
	return errors.CodeUnknown
}
