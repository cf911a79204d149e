/*
Package identity bridges the external identity provider and the voting
service.

Authentication itself (issuing, signing, verifying tokens) happens upstream;
this package only extracts the opaque voter identity from a request and
rejects requests that carry none or carry garbage. It also provides the
salted IP hashing used on vote audit records.
*/
package identity
