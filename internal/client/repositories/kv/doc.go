// Package kv is the local key/value store behind the account and record
// services. Values are opaque byte blobs; the "accounts" key holds the JSON
// account map and "records:<username>" keys hold sealed envelopes.
//
// Get on a missing key returns (nil, nil). Every other failure is wrapped
// with the key name so callers can log it without leaking the value.
package kv
