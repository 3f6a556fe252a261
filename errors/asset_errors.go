// errors/asset_errors.go
package errors

import "errors"

var (
	ErrAssetNotFound     = errors.New("asset not found")
	ErrInvalidAssetData  = errors.New("invalid asset data")
	ErrInvalidQCAction   = errors.New("invalid qc action")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrDatabaseOperation = errors.New("database operation failed")
	ErrInternalServer    = errors.New("internal server error")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidPagination = errors.New("invalid pagination parameters")
	ErrConcurrentUpdate  = errors.New("asset was modified concurrently")
	ErrInvalidTransition = errors.New("invalid workflow transition")
)
