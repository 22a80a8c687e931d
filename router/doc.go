// Copyright (c) 2026 Markus Weissbach.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires handlers to routes using Go 1.22+ method routing.

Every portal route is wrapped in request logging and a Prometheus request
counter; everything except POST /session, GET /health, GET /metrics and the
root banner additionally sits behind the session gate.
*/
package router
