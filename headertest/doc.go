/*
Package headertest provides test fixtures for code that parses HTTP headers:
canned responses and a mocked http.RoundTripper.
*/
package headertest
