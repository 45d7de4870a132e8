// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package headerhttp applies typed header descriptors to HTTP clients and servers.

Clients can observe typed headers, such as rate limits, on every response
through an Observe round tripper.  Servers can reject requests whose headers
are absent or malformed with the Require middleware, which is compatible
with justinas/alice and gorilla/mux.
*/
package headerhttp
