// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package httpheader extracts single HTTP header fields into strongly typed values.

A Header[T] binds a field name to a conversion from the raw header text.
Descriptors are immutable and are typically declared once:

	var rateLimitRemaining = httpheader.Int("X-RateLimit-Remaining")

	remaining, err := rateLimitRemaining.ParseResponse(response)

Parse fails with a *NotFoundError when the field is absent.  Both Parse and
ParseIfPresent fail with a *TypeMismatchError when the field is present but
cannot be converted.

Beyond single descriptors, this package supports aggregate bindings, decoding
a whole header into a struct, and config-driven schemas that integrate with
spf13/viper and uber/fx.
*/
package httpheader
