// ================== pkg/errors/errors.go =================
package errors

import "errors"

var (
	ErrNotFound      = errors.New("resource not found")
	ErrValidation    = errors.New("validation failed")
	ErrConnection    = errors.New("database connection failed")
	ErrUninitialized = errors.New("database not initialized, call Connect first")
	ErrPersistence   = errors.New("persistence operation failed")
)
