package auth

import (
	"net/url"
	"strings"
)

// DefaultReturnPath is where a successful login lands when no return path was recorded.
const DefaultReturnPath = "/admin"

// ReturnPathParam is the query parameter carrying the originally requested path.
const ReturnPathParam = "from"

// Decision is the outcome of a route guard evaluation.
type Decision int

const (
	// RenderLoading means the session has not settled; show a neutral loading state.
	RenderLoading Decision = iota
	// RedirectToLogin means the session is anonymous.
	RedirectToLogin
	// RenderTarget means the protected page may be rendered.
	RenderTarget
	// AccessDenied means the identity lacks the required permission.
	AccessDenied
)

func (d Decision) String() string {
	switch d {
	case RenderLoading:
		return "render-loading"
	case RedirectToLogin:
		return "redirect-to-login"
	case RenderTarget:
		return "render-target"
	case AccessDenied:
		return "access-denied"
	default:
		return "unknown"
	}
}

// Evaluate decides how a route guarded by required should react to session s.
// An empty required permission only demands authentication.
func Evaluate(s Session, table PermissionTable, required string) Decision {
	switch {
	case s.Loading():
		return RenderLoading
	case !s.Authenticated():
		return RedirectToLogin
	case required == "" || table.Allows(s.Identity.Role, required):
		return RenderTarget
	default:
		return AccessDenied
	}
}

// LoginRedirect returns the login URL remembering original as the return path.
func LoginRedirect(loginPath, original string) string {
	if original == "" {
		return loginPath
	}

	return loginPath + "?" + ReturnPathParam + "=" + url.QueryEscape(original)
}

// SafeReturnPath returns from when it is a local absolute path and
// DefaultReturnPath otherwise, so the login form cannot be used as an open redirect.
func SafeReturnPath(from string) string {
	if from == "" || !strings.HasPrefix(from, "/") {
		return DefaultReturnPath
	}

	if strings.HasPrefix(from, "//") || strings.HasPrefix(from, "/\\") {
		return DefaultReturnPath
	}

	u, err := url.Parse(from)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return DefaultReturnPath
	}

	return from
}

// StorageKey scopes DefaultStorageKey to one browser session.
func StorageKey(sessionID string) string {
	return DefaultStorageKey + ":" + sessionID
}
