// Package utils provides general-purpose helpers shared by the client: the
// resty based HTTP client and request ID generation.
package utils
