// errors/master_errors.go
package errors

import "errors"

var (
	ErrMasterNotFound    = errors.New("master record not found")
	ErrInvalidMasterData = errors.New("invalid master data")
	ErrInvalidWeightage  = errors.New("weightage percentages must sum to 100")
	ErrMasterConflict    = errors.New("master record already exists")
)
