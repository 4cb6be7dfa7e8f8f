// Package automod implements the moderation core of the gateway: a
// deterministic pre-filter of ordered pattern groups, an orchestrating engine
// which can delegate to an external advisory classifier (failing open when it
// is unavailable), and deferred processing of platform webhook events.
//
// Everything here is request-scoped and stateless; a single Engine may be
// shared across unbounded concurrent requests.
package automod
