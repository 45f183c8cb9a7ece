package handlers

import (
	"net/http"

	_ "github.com/tuanvm/bepxu/docs"
	authhandlers "github.com/tuanvm/bepxu/internal/handlers/auth"
	menuhandlers "github.com/tuanvm/bepxu/internal/handlers/menus"
	videohandlers "github.com/tuanvm/bepxu/internal/handlers/videos"
	wallethandlers "github.com/tuanvm/bepxu/internal/handlers/wallet"
	"github.com/tuanvm/bepxu/internal/service"
	"github.com/tuanvm/bepxu/pkg/auth"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type MenuHandler interface {
	ListMenus(w http.ResponseWriter, r *http.Request)
	GetMenu(w http.ResponseWriter, r *http.Request)
	Purchase(w http.ResponseWriter, r *http.Request)
	SubmitRating(w http.ResponseWriter, r *http.Request)
}

type VideoHandler interface {
	ListVideos(w http.ResponseWriter, r *http.Request)
	Reward(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	GetUnlocks(w http.ResponseWriter, r *http.Request)
	RedeemVoucher(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	MenuHandler   MenuHandler
	VideoHandler  VideoHandler
	WalletHandler WalletHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		MenuHandler:   menuhandlers.New(s.CatalogService, s.UnlockService, s.RatingService),
		VideoHandler:  videohandlers.New(s.CatalogService, s.RewardService),
		WalletHandler: wallethandlers.New(s.WalletService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/menus", func(r chi.Router) {
				r.Get("/", h.MenuHandler.ListMenus)
				r.Get("/{menuID}", h.MenuHandler.GetMenu)
				r.Post("/{menuID}/purchase", h.MenuHandler.Purchase)
				r.Post("/{menuID}/rating", h.MenuHandler.SubmitRating)
			})
			r.Route("/videos", func(r chi.Router) {
				r.Get("/", h.VideoHandler.ListVideos)
				r.Post("/{videoID}/reward", h.VideoHandler.Reward)
			})
			r.Route("/user/wallet", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetWallet)
				r.Get("/unlocks", h.WalletHandler.GetUnlocks)
				r.Post("/voucher", h.WalletHandler.RedeemVoucher)
			})
		})
	})

	return r
}
