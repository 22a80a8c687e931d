// Copyright (c) 2026 Markus Weissbach.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth implements the password gate.

The portal is protected by a single shared credential stored as a bcrypt
hash. The legacy portal compared the password against an unsalted MD5 digest;
that was a known defect, not part of the functional contract, so this
implementation uses bcrypt instead.

Successful logins receive a signed session token (JWT, HS256) with a
configurable lifetime. Sessions are stateless: logout simply discards the
cookie on the client. There is exactly one subject ("portal") because the
system has no user accounts.
*/
package auth
