package usecase

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("resource not found")
	ErrMatchdayOutOfRange = errors.New("matchday out of range")
	ErrDuplicateTeam      = errors.New("duplicate team name")
	ErrAggregationFailed  = errors.New("matchday aggregation failed")
)
