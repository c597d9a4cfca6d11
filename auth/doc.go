// Package auth implements the session lifecycle: signup, login, refresh, and
// logout. Tokens are self-contained signed credentials; there is no server-side
// session table and no revocation list. Logout only instructs the browser to
// drop the refresh cookie, so a captured refresh token stays valid until its
// natural expiry. Tokens already carry a uuid jti, so a denylist keyed by jti
// could be added later without changing the token format.
package auth
