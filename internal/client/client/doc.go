// Package client talks to the resource API over HTTP/JSON.
//
// # Overview
//
// Every resource kind is served under its own base path with the same
// surface:
//
//	GET    {base}/findAll
//	GET    {base}/findById/{id}
//	GET    {base}/findByName/{name}
//	POST   {base}/save
//	PUT    {base}/update/{id}
//	DELETE {base}/delete/{id}
//
// HTTPClient owns the transport (base URL, timeout, logging, request ids);
// Endpoint[E] binds it to one base path and one record type.
//
// # Error Handling
//
// Failures are returned as *RemoteError. Callers match them with errors.Is
// against common.ErrRemote (non-2xx answer), common.ErrUnavailable (the
// request never got an answer) and common.ErrorNotFound (404).
package client
