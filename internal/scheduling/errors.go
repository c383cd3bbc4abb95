package scheduling

import "errors"

// ErrPrecondition signals a caller bug, as opposed to a business-rule violation
var ErrPrecondition = errors.New("scheduling: precondition violated")
