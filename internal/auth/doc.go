// Package auth provides authentication and authorization for the admin panel.
//
// The package is built around the Authority, which owns the session of one
// browser: the authenticated Identity (if any), the lifecycle state of that
// session and the durable storage key the Identity is mirrored into.
//
// # Session lifecycle
//
// A session starts UNINITIALIZED, moves to LOADING while Restore reads the
// stored Identity and settles as AUTHENTICATED or ANONYMOUS:
//
//	UNINITIALIZED -> LOADING -> AUTHENTICATED | ANONYMOUS
//	AUTHENTICATED -> ANONYMOUS        (Logout)
//	ANONYMOUS     -> LOADING -> ...   (Login)
//
// Corrupt storage never surfaces as an error: the entry is deleted and the
// session degrades to ANONYMOUS. Invalid credentials are reported as a single
// boolean failure so callers cannot tell an unknown email from a wrong
// password.
//
// # Authorization
//
// Every Role maps to a PermissionSet through a PermissionTable. The
// SUPER_ADMIN role holds the wildcard permission and is allowed everything:
//
//	authority.HasPermission(auth.PermWriteNews)
//
// Route guards call Evaluate to decide between rendering a loading state,
// redirecting to the login page, rendering the target or denying access.
//
// Example usage:
//
//	authority := auth.NewAuthority(auth.Config{
//	    Credentials: credentials,
//	    Storage:     storage,
//	    Key:         auth.StorageKey(sessionID),
//	})
//	authority.Restore()
//
//	ok, err := authority.Login(ctx, "editor@teca.org", password)
package auth
