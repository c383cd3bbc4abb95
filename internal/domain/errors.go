package domain

import "errors"

// ErrUnknownPackageType is a precondition fault: a package type outside the closed set reached a lookup
var ErrUnknownPackageType = errors.New("domain: unknown package type")
