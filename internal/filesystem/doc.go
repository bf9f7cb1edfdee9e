/*
Package filesystem opens files with retry on NFS stale file handle errors.

The catalog file is commonly mounted from network storage into a container.
ESTALE (errno 116) is transient there: the server replaced the file and the
client's handle is briefly invalid. [OpenWithRetry] retries only on
ESTALE, with capped exponential backoff; every other error is
returned immediately.

Defaults: 3 retries, 50ms initial backoff, 500ms cap.

Retry outcomes are reported to the [Observer] installed with [SetObserver].
The metrics package provides the implementation; with none set, nothing is
recorded.
*/
package filesystem
