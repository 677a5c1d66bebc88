package models

import (
	"errors"
)

var (
	ErrTargetLenMismatch = errors.New("target length does not match target rows")
	ErrNoTrainingMatrix  = errors.New("no training matrix")
	ErrNoTargetArray     = errors.New("no target array")
	ErrUnderdetermined   = errors.New("fewer rows than features")
	ErrSingularDesign    = errors.New("design matrix is rank deficient")
)
