package handler

const (
	// BaseLayout is the layout of the public pages.
	BaseLayout = "layouts/base"

	// AdminLayout is the layout of the admin panel.
	AdminLayout = "layouts/admin"

	// RootPath is the root path the route group.
	RootPath = "/"

	// AdminPath is the root of the admin panel.
	AdminPath = RootPath + "admin"

	// LoginPath is the admin login page.
	LoginPath = AdminPath + "/login"

	// LogoutPath ends the admin session.
	LogoutPath = RootPath + "logout"

	// ErrNilEnvFatalLogMsg is used if the app or a handler dependency is nil.
	ErrNilEnvFatalLogMsg = "app, cfg, db, content or sessions is nil"
)
