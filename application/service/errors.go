package service

import "errors"

// ErrClientClosed indicates the client has been closed.
var ErrClientClosed = errors.New("docsite: client is closed")

// ErrPageNotFound indicates no page metadata exists for the requested slug.
var ErrPageNotFound = errors.New("page not found")

// ErrEntryNotFound indicates no reference entry exists with the requested name.
var ErrEntryNotFound = errors.New("reference entry not found")
