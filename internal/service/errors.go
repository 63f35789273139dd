package service

import "errors"

// ErrPairNotProvided indicates the request carried no pair key.
var ErrPairNotProvided = errors.New("pair not provided")

// ErrPairNotFound indicates the pair key is not configured.
var ErrPairNotFound = errors.New("pair not found")

// ErrNotYetAvailable indicates the pair has not been fetched successfully yet.
var ErrNotYetAvailable = errors.New("not yet available")

// ErrInternal indicates an unexpected failure while serving a query.
var ErrInternal = errors.New("internal error")
