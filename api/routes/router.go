package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/douceurdz/storefront-backend/api/controllers"
	"github.com/douceurdz/storefront-backend/api/middleware"
	"github.com/douceurdz/storefront-backend/internal/cart"
	"github.com/douceurdz/storefront-backend/internal/catalog"
	"github.com/douceurdz/storefront-backend/internal/checkout"
	"github.com/douceurdz/storefront-backend/internal/session"
	"github.com/douceurdz/storefront-backend/pkg/config"
	"github.com/douceurdz/storefront-backend/pkg/logger"
)

// guardedPages are the storefront pages that require a session.
var guardedPages = []string{"/shop", "/traditional", "/festive", "/french", "/order", "/cart"}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	store controllers.Pinger,
	cat *catalog.Catalog,
	sessions *session.Service,
	carts *cart.Service,
	checkoutService *checkout.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(store, logg))
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", controllers.Login(sessions, logg))
		r.Post("/register", controllers.Register(sessions, logg))
		r.Post("/logout", controllers.Logout(sessions, logg))
		r.Post("/password-reset", controllers.PasswordReset(sessions, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RequireSession(sessions, logg))

		r.Get("/products", controllers.ProductList(cat, logg))
		r.Get("/products/{id}", controllers.ProductByID(cat, logg))
		r.Get("/collections/{name}", controllers.CollectionByName(cat, logg))

		r.Get("/cart", controllers.CartQuote(carts, cat, logg))
		r.Post("/cart/items", controllers.CartUpsert(carts, logg))
		r.Delete("/cart/items/{id}", controllers.CartRemove(carts, logg))
		r.Delete("/cart", controllers.CartClear(carts, logg))

		r.Get("/checkout", controllers.CheckoutState(checkoutService, logg))
		r.Post("/checkout", controllers.CheckoutSubmit(checkoutService, logg))

		r.Get("/profile", controllers.ProfileGet(sessions, logg))
		r.Put("/profile", controllers.ProfileUpdate(sessions, logg))
	})

	r.Get("/login", controllers.Page("login", logg))
	for _, page := range guardedPages {
		r.With(middleware.GuardPage(sessions, logg)).Get(page, controllers.Page(page[1:], logg))
	}
	r.NotFound(controllers.PageFallback(sessions, logg))

	return r
}
