package catalogservice

import (
	"context"

	"github.com/tuanvm/bepxu/internal/domain"
	"go.uber.org/zap"
)

type CatalogRepo interface {
	GetMenu(ctx context.Context, menuID int) (*domain.Menu, error)
	ListMenus(ctx context.Context) ([]domain.Menu, error)
	GetVideo(ctx context.Context, videoID int) (*domain.Video, error)
	ListVideos(ctx context.Context) ([]domain.Video, error)
}

type LedgerRepo interface {
	UnlockedMenuIDs(ctx context.Context, userID int) (map[int]bool, error)
	HasUnlock(ctx context.Context, userID, menuID int) (bool, error)
}

type Service struct {
	catalogRepo CatalogRepo
	ledgerRepo  LedgerRepo
}

func New(catalogRepo CatalogRepo, ledgerRepo LedgerRepo) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// MenuView is a menu together with whether the requesting user owns it.
type MenuView struct {
	domain.Menu
	Unlocked bool
}

// ListMenus returns the catalog; for an authenticated user (userID > 0) the
// per-menu Unlocked flag reflects their unlock set.
func (s *Service) ListMenus(ctx context.Context, userID int) ([]MenuView, error) {
	menus, err := s.catalogRepo.ListMenus(ctx)
	if err != nil {
		zap.L().Error("failed to list menus", zap.Error(err))
		return nil, err
	}

	unlocked := map[int]bool{}
	if userID > 0 {
		unlocked, err = s.ledgerRepo.UnlockedMenuIDs(ctx, userID)
		if err != nil {
			zap.L().Error("failed to get unlock set", zap.Error(err))
			return nil, err
		}
	}

	views := make([]MenuView, 0, len(menus))
	for _, menu := range menus {
		views = append(views, MenuView{
			Menu:     menu,
			Unlocked: !menu.Locked || unlocked[menu.ID],
		})
	}
	return views, nil
}

// GetMenu returns a single menu view, or nil when it does not exist.
func (s *Service) GetMenu(ctx context.Context, userID, menuID int) (*MenuView, error) {
	menu, err := s.catalogRepo.GetMenu(ctx, menuID)
	if err != nil {
		zap.L().Error("failed to get menu", zap.Error(err))
		return nil, err
	}
	if menu == nil {
		return nil, nil
	}

	view := &MenuView{Menu: *menu, Unlocked: !menu.Locked}
	if menu.Locked && userID > 0 {
		owned, err := s.ledgerRepo.HasUnlock(ctx, userID, menuID)
		if err != nil {
			zap.L().Error("failed to check unlock", zap.Error(err))
			return nil, err
		}
		view.Unlocked = owned
	}
	return view, nil
}

func (s *Service) ListVideos(ctx context.Context) ([]domain.Video, error) {
	videos, err := s.catalogRepo.ListVideos(ctx)
	if err != nil {
		zap.L().Error("failed to list videos", zap.Error(err))
		return nil, err
	}
	return videos, nil
}
