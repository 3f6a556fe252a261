// errors/link_errors.go
package errors

import "errors"

var (
	ErrLinkNotFound        = errors.New("link not found")
	ErrStaticLinkProtected = errors.New("cannot remove static service link created during upload")
	ErrServiceNotFound     = errors.New("service not found")
	ErrSubServiceNotFound  = errors.New("sub-service not found")
	ErrInvalidLinkData     = errors.New("invalid link data")
)
