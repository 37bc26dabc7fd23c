package service

import "errors"

// Pre-flight validation and submission errors. All of these are raised before
// any network call is made.
var (
	// ErrNoProductsSelected indicates a bulk operation was attempted with an
	// empty selection
	ErrNoProductsSelected = errors.New("no products selected")
	// ErrValueRequired indicates a required attribute value was empty
	ErrValueRequired = errors.New("value is required")
	// ErrInvalidBooleanValue indicates a stringified boolean attribute value
	// was neither "true" nor "false"
	ErrInvalidBooleanValue = errors.New("value must be \"true\" or \"false\"")
	// ErrUnknownAttributeKey indicates an attribute key this workflow does not write
	ErrUnknownAttributeKey = errors.New("unknown attribute key")
	// ErrSubmissionInFlight indicates a submission was attempted while a prior
	// one was still outstanding. The caller must wait and resubmit.
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	// ErrTransport indicates the batched request never completed; no state is
	// assumed changed and the operation is fully retryable.
	ErrTransport = errors.New("platform request did not complete")
)

// UserErrorFailure reports that the platform rejected one or more entries of a
// batch. The platform returns a flat error list without entry attribution, so
// the first reported message stands for the whole batch. Entries that succeeded
// are not rolled back.
type UserErrorFailure struct {
	Message string
	Code    string
}

func (e *UserErrorFailure) Error() string {
	return e.Message
}
