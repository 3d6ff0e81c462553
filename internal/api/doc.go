// Package api exposes the request/response workflows the CLI drives.
//
// Each function is a self-contained operation: it validates its request,
// opens the vocabulary store, builds the index, performs the work, and logs
// the outcome under a per-request ID. The scoring core stays pure; everything
// stateful (database access, file I/O, locking) lives here.
package api
