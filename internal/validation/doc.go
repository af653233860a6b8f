// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

/*
Package validation wraps go-playground/validator v10 for the hub's input types.

A single validator instance is built lazily and shared by every caller; the
validator caches struct metadata, so reusing it keeps repeated checks cheap.
Field names in errors are taken from the struct's json tags, which lets
callers report the same names clients send on the wire.

Usage:

	type AeroCamInput struct {
	    ID string `json:"id" validate:"required"`
	}

	if verr := validation.ValidateStruct(&in); verr != nil {
	    return models.NewValidationError(verr.Fields()[0], verr.Error())
	}

Messages use the deployment's wire language: a missing "id" reads
"id requerido".
*/
package validation
