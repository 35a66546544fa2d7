// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package failure classifies errors produced anywhere in the request pipeline.
//
// Every failure that reaches the response layer is normalized to an [*Error]
// carrying a numeric HTTP status and the original error. Producers that know
// the status (the auth guard chain, the not-found handler, the remote token
// decoder) build one with [New] or [Wrap]; everything else goes through
// [Classify], which conceals unclassified errors behind a plain 500 and
// leaves already classified ones untouched.
package failure
