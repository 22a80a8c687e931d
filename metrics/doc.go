// Copyright (c) 2026 Markus Weissbach.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics exposes Prometheus counters for the portal.

Two counters exist: one for accepted grade submissions (labelled by exam)
and one for served HTTP requests (labelled by method, route pattern and
status code). The router mounts Handler() at GET /metrics.
*/
package metrics
