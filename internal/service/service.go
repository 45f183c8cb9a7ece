package service

import (
	"github.com/tuanvm/bepxu/internal/config"
	"github.com/tuanvm/bepxu/internal/repo"
	authservice "github.com/tuanvm/bepxu/internal/service/authservice"
	catalogservice "github.com/tuanvm/bepxu/internal/service/catalogservice"
	ratingservice "github.com/tuanvm/bepxu/internal/service/ratingservice"
	rewardservice "github.com/tuanvm/bepxu/internal/service/rewardservice"
	unlockservice "github.com/tuanvm/bepxu/internal/service/unlockservice"
	walletservice "github.com/tuanvm/bepxu/internal/service/walletservice"

	pkgauth "github.com/tuanvm/bepxu/pkg/auth"
)

type Services struct {
	AuthService    *authservice.Service
	CatalogService *catalogservice.Service
	UnlockService  *unlockservice.Service
	RewardService  *rewardservice.Service
	RatingService  *ratingservice.Service
	WalletService  *walletservice.Service
}

func New(repo *repo.Repositories, cfg *config.Config) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{}, cfg.SignupBonus)
	catalogService := catalogservice.New(repo.CatalogRepo, repo.LedgerRepo)
	unlockService := unlockservice.New(repo.CatalogRepo, repo.LedgerRepo)
	rewardService := rewardservice.New(repo.CatalogRepo, repo.LedgerRepo, cfg.RewardAmount, cfg.MinWatchSeconds)
	ratingService := ratingservice.New(repo.CatalogRepo, repo.LedgerRepo, repo.RatingRepo)
	walletService := walletservice.New(repo.LedgerRepo)

	return &Services{
		AuthService:    authService,
		CatalogService: catalogService,
		UnlockService:  unlockService,
		RewardService:  rewardService,
		RatingService:  ratingService,
		WalletService:  walletService,
	}
}
