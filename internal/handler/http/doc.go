// Package http implements the REST transport of the account service.
//
// It wires chi routes to the auth and account workflows, wraps every request
// with trace ids, access logging and prometheus metrics, and translates
// service error kinds into HTTP statuses and the JSON error envelope.
package http
