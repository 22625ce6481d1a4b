// Package http serves the wellness REST API on a chi router.
//
// Public routes cover registration, login, service info and health. Every
// /wellness and /chat route, plus /auth/me, sits behind the bearer-token
// middleware, which puts the resolved user into the request context.
// Failures from the service layer are turned into JSON {"detail": ...}
// bodies by the error mapper.
package http
