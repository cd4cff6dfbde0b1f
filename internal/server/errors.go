// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated means there is no HTTP handler or address to serve.
var errNoServersAreCreated = errors.New("no servers are created")
