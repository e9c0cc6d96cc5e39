package domain

import "errors"

var (
	ErrNoSourceImage     = errors.New("no source image")
	ErrUnreadableImage   = errors.New("unreadable image")
	ErrRateLimited       = errors.New("rate limited")
	ErrEnhancementFailed = errors.New("enhancement failed")
	ErrNoImageInResponse = errors.New("no image in response")
	ErrEnhanceInFlight   = errors.New("enhancement already in flight")
	ErrNoResult          = errors.New("no enhanced result")
)
