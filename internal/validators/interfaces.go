// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before the services act on
// them.
//
// Rules are declared as go-playground/validator tags on the request types in
// models. Failures wrap [models.ErrValidation] and carry a client-facing
// message for the first offending field.
package validators

import "context"

// Validator validates an arbitrary value and optionally restricts the check
// to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
