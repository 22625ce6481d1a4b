package server

import "errors"

// errNoServersAreCreated means NewServer got nothing it could serve: no
// HTTP handler or no listen address.
var errNoServersAreCreated = errors.New("server: no HTTP handler or address configured")
