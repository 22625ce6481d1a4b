package handler

import "errors"

var errNoHandlersAreCreated = errors.New("handler: HTTP address is empty, nothing to serve")
