package repo

import (
	"github.com/tuanvm/bepxu/internal/pg"
	catalogrepo "github.com/tuanvm/bepxu/internal/repo/catalog-repo"
	ledgerrepo "github.com/tuanvm/bepxu/internal/repo/ledger-repo"
	ratingrepo "github.com/tuanvm/bepxu/internal/repo/rating-repo"
	userrepo "github.com/tuanvm/bepxu/internal/repo/user-repo"
	videorepo "github.com/tuanvm/bepxu/internal/repo/video-repo"
)

type Repositories struct {
	UserRepo    *userrepo.Repository
	CatalogRepo *catalogrepo.Repository
	LedgerRepo  *ledgerrepo.Repository
	RatingRepo  *ratingrepo.Repository
	VideoRepo   *videorepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn),
		CatalogRepo: catalogrepo.New(conn),
		LedgerRepo:  ledgerrepo.New(conn, txManager),
		RatingRepo:  ratingrepo.New(conn, txManager),
		VideoRepo:   videorepo.New(conn, txManager),
	}
}
