package main

import (
	"net/http"
	"os"
	"time"

	"github.com/urbanfix/urbanfix"
	"github.com/urbanfix/urbanfix/auth"
	"github.com/urbanfix/urbanfix/crew"
	"github.com/urbanfix/urbanfix/geo"
	"github.com/urbanfix/urbanfix/handler"
	"github.com/urbanfix/urbanfix/http/middleware"
	"github.com/urbanfix/urbanfix/http/req"
	"github.com/urbanfix/urbanfix/http/router"
	"github.com/urbanfix/urbanfix/http/session"
	"github.com/urbanfix/urbanfix/postgres"
)

func main() {
	c, err := boot()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	if err := c.Embark(); err != nil {
		c.EmitLogger().Fatal(err.Error(), nil)
		os.Exit(1)
	}
}

func boot() (*crew.Crew, error) {
	c, err := crew.New()
	if err != nil {
		return nil, err
	}

	env := c.EmitEnv()

	db, err := postgres.Connect(crew.NewPostgresConfig(env), postgres.Migrations(), env)
	if err != nil {
		return nil, err
	}

	tokens, err := auth.NewService(auth.Config{
		SigningKey:         os.Getenv(crew.SigningKeyEnvVar),
		GoogleClientID:     os.Getenv(crew.GoogleClientIDEnvVar),
		GoogleClientSecret: os.Getenv(crew.GoogleClientSecretEnvVar),
	})
	if err != nil {
		return nil, err
	}

	var sessionOpts []session.ServiceOpt
	if redisURI := os.Getenv("REDIS_URL"); redisURI != "" {
		sessionOpts = append(sessionOpts, session.WithRedis(redisURI, os.Getenv("REDIS_PASSWORD")))
	}

	sessions, err := session.NewStoreService(session.Config{
		Env:        env,
		AuthKey:    os.Getenv(crew.SessionAuthKeyEnvVar),
		EncryptKey: os.Getenv(crew.SessionEncryptKeyEnvVar),
	}, sessionOpts...)
	if err != nil {
		return nil, err
	}

	c, err = crew.New(crew.WithDB(db), crew.WithSessionStore(sessions))
	if err != nil {
		return nil, err
	}

	users := postgres.NewUserStore(db)
	reports := postgres.NewReportStore(db)
	points := postgres.NewRecyclePointStore(db)

	locator := geo.Locator(geo.NewNominatimLocator(os.Getenv("NOMINATIM_URL")))
	if env.CanUseServiceStub() && os.Getenv("NOMINATIM_URL") == "" {
		locator = geo.FixedLocator{}
	}

	p := req.NewParser()
	authH := handler.NewAuthHandler(c.Responder, p, tokens, tokens, users, sessions)
	reportsH := handler.NewReportsHandler(c.Responder, p, reports, locator)
	usersH := handler.NewUsersHandler(c.Responder, p, users)
	recycleH := handler.NewRecycleHandler(c.Responder, p, points)
	pagesH := handler.NewPagesHandler(c.Responder, "client")

	if err := register(c, authH, reportsH, usersH, recycleH, pagesH, tokens, users.FindByUsername); err != nil {
		return nil, err
	}

	return c, nil
}

func register(
	c *crew.Crew,
	authH *handler.AuthHandler,
	reportsH *handler.ReportsHandler,
	usersH *handler.UsersHandler,
	recycleH *handler.RecycleHandler,
	pagesH *handler.PagesHandler,
	tokens *auth.Service,
	storer middleware.UserStorer,
) error {
	env := c.EmitEnv()

	c.Router.OnEveryRequest(
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(c.EmitLogger()),
		middleware.ForceHTTPS(env),
		middleware.CORS(c.EmitURL().String()),
		middleware.RateLimit(middleware.NewVisitors()),
		middleware.InjectSession(c.EmitSessionStore()),
	)

	c.Router.ServeStatic("client")

	dedup := middleware.DedupSubmissions(middleware.NewMemorySubmissionCache(30 * time.Second))

	err := c.Router.HandleRoutes([]router.Route{
		// identity
		{Method: http.MethodPost, Path: "/api/users", Handler: authH.Signup},
		{Method: http.MethodPost, Path: "/api/sessions", Handler: authH.Login},
		{Method: http.MethodGet, Path: "/api/me", Handler: authH.CurrentUser},
		{Method: http.MethodPost, Path: "/api/cookie-sessions", Handler: authH.CookieLogin},
		{Method: http.MethodDelete, Path: "/api/cookie-sessions", Handler: authH.CookieLogout},
		{Method: http.MethodGet, Path: "/auth/google", Handler: authH.GoogleRedirect},
		{Method: http.MethodGet, Path: "/auth/google/callback", Handler: authH.GoogleCallback},

		// reports; literal routes are declared ahead of the :id captures
		{Method: http.MethodGet, Path: "/api/reports/count", Handler: reportsH.Count},
		{Method: http.MethodGet, Path: "/api/reports/counties", Handler: reportsH.Counties},
		{Method: http.MethodGet, Path: "/api/reports/export", Handler: reportsH.ExportCSV},
		{Method: http.MethodGet, Path: "/api/reports", Handler: reportsH.List},
		{Method: http.MethodPost, Path: "/api/reports", Handler: reportsH.Create, Middlewares: []middleware.Adapter{dedup}},
		{Method: http.MethodGet, Path: "/api/reports/:id", Handler: reportsH.Get},
		{Method: http.MethodPatch, Path: "/api/reports/:id/status", Handler: reportsH.UpdateStatus},
		{Method: http.MethodDelete, Path: "/api/reports/:id", Handler: reportsH.Delete},

		// recycle points
		{Method: http.MethodGet, Path: "/api/recycle-points", Handler: recycleH.List},
		{Method: http.MethodGet, Path: "/api/recycle-points/:id", Handler: recycleH.Get},
		{Method: http.MethodPost, Path: "/api/recycle-points", Handler: recycleH.Create},
		{Method: http.MethodPut, Path: "/api/recycle-points/:id", Handler: recycleH.Update},
		{Method: http.MethodDelete, Path: "/api/recycle-points/:id", Handler: recycleH.Delete},

		// user management
		{Method: http.MethodGet, Path: "/api/users", Handler: usersH.List},
		{Method: http.MethodGet, Path: "/api/users/:id/role", Handler: usersH.Role},
		{Method: http.MethodPut, Path: "/api/users/:id/role", Handler: usersH.UpdateRole},
		{Method: http.MethodDelete, Path: "/api/users/:id", Handler: usersH.Delete},

		// pages
		{Method: http.MethodGet, Path: "/", Handler: pagesH.Index, Kind: router.Page},
		{Method: http.MethodGet, Path: "/login", Handler: pagesH.Login, Kind: router.Page},
		{Method: http.MethodGet, Path: "/dashboard", Handler: pagesH.Dashboard, Kind: router.Page},
		{Method: http.MethodGet, Path: "/admin", Handler: pagesH.Admin, Kind: router.Page},
	})
	if err != nil {
		return err
	}

	authed := middleware.RequireAuthed(tokens, storer)
	authority := middleware.RequireRole(tokens, storer, urbanfix.RoleAuthority)
	admin := middleware.RequireRole(tokens, storer, urbanfix.RoleAdmin)

	// Page routes ride the legacy cookie sessions instead of bearer tokens.
	pageAuthed := middleware.SessionUser(c.EmitSessionStore(), storer, urbanfix.RoleUser)
	pageAdmin := middleware.SessionUser(c.EmitSessionStore(), storer, urbanfix.RoleAdmin)

	return c.Router.Guard(
		// report aggregates stay public; the :id policies never match them
		router.Policy{Path: "/api/reports/export", Guards: []middleware.Guard{authority}},
		router.Policy{Path: "/api/reports", Method: http.MethodPost, Guards: []middleware.Guard{authed}},
		router.Policy{Path: "/api/reports/:id/status", Guards: []middleware.Guard{authority}},
		router.Policy{Path: "/api/reports/:id", Method: http.MethodDelete, Guards: []middleware.Guard{authority}},
		router.Policy{Path: "/api/me", Guards: []middleware.Guard{authed}},

		// the public map reads recycle points; only writes are guarded
		router.Policy{Path: "/api/recycle-points", Method: http.MethodPost, Guards: []middleware.Guard{authority}},
		router.Policy{Path: "/api/recycle-points/:id", Method: http.MethodPut, Guards: []middleware.Guard{authority}},
		router.Policy{Path: "/api/recycle-points/:id", Method: http.MethodDelete, Guards: []middleware.Guard{authority}},

		// signup is POST /api/users and must stay public, so the admin
		// console endpoints are narrowed to their methods
		router.Policy{Path: "/api/users", Method: http.MethodGet, Guards: []middleware.Guard{admin}},
		router.Policy{Path: "/api/users/:id", Guards: []middleware.Guard{admin}},
		router.Policy{Path: "/api/users/:id/role", Guards: []middleware.Guard{admin}},

		router.Policy{Path: "/dashboard", Guards: []middleware.Guard{pageAuthed}},
		router.Policy{Path: "/admin", Guards: []middleware.Guard{pageAdmin}},
	)
}
