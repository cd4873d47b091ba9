package models

import (
	"errors"
)

var (
	// ErrProviderNotConfigured means no external completion capability
	// is available (missing credential or provider "none"). For
	// control flow it is treated like any provider failure: go to the
	// template fallback.
	ErrProviderNotConfigured = errors.New("external provider is not configured")

	// ErrEmptyCompletion means the provider answered but the payload
	// held no usable text.
	ErrEmptyCompletion = errors.New("provider returned an empty completion")
)
