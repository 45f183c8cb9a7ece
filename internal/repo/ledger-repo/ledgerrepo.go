package ledgerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/tuanvm/bepxu/internal/domain"
	"github.com/tuanvm/bepxu/internal/pg"
	"go.uber.org/zap"
)

var (
	// ErrAlreadyApplied the (user, item) fact already exists, nothing was written.
	ErrAlreadyApplied = errors.New("ledger: already applied")
	// ErrBalanceTooLow the debit predicate rejected the update.
	ErrBalanceTooLow = errors.New("ledger: balance too low")
	// ErrNotFound the referenced ledger entity does not exist.
	ErrNotFound = errors.New("ledger: not found")
)

// Repository owns every mutation of a user's balance and of the unlock and
// reward membership sets. All writes carry their precondition in the SQL
// predicate itself, never in a separate read, so two racing requests for the
// same (user, item) cannot both pass the check.
type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) GetBalance(ctx context.Context, userID int) (int64, error) {
	query := `
        SELECT balance
        FROM users
        WHERE id = $1
    `
	var balance int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		zap.L().Error("failed to get balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (r *Repository) GetWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT u.balance,
               (SELECT count(*) FROM menu_unlocks WHERE user_id = u.id),
               (SELECT count(*) FROM video_rewards WHERE user_id = u.id)
        FROM users u
        WHERE u.id = $1
    `
	wallet := domain.Wallet{UserID: userID}
	err := r.db.QueryRow(ctx, query, userID).Scan(&wallet.Balance, &wallet.UnlockCount, &wallet.RewardCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// Unlock debits the menu price and records the unlock as one transaction.
// The membership insert is the idempotency guard: of two concurrent calls
// only one inserts the row, the loser gets ErrAlreadyApplied and the debit
// never runs for it. The debit predicate keeps the balance non-negative.
func (r *Repository) Unlock(ctx context.Context, userID, menuID int, price int64) (int64, error) {
	insertQuery := `
        INSERT INTO menu_unlocks (user_id, menu_id, price)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, menu_id) DO NOTHING
    `
	debitQuery := `
        UPDATE users
        SET balance = balance - $1
        WHERE id = $2 AND balance >= $1
        RETURNING balance
    `
	var newBalance int64
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, insertQuery, userID, menuID, price)
		if err != nil {
			zap.L().Error("can't record unlock", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrAlreadyApplied
		}

		err = r.db.QueryRow(ctx, debitQuery, price, userID).Scan(&newBalance)
		if errors.Is(err, pgx.ErrNoRows) {
			// rolls back the membership insert as well
			return ErrBalanceTooLow
		}
		if err != nil {
			zap.L().Error("can't debit balance", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

// Reward credits the fixed amount for a watched video at most once per
// (user, video), with the same insert-then-apply shape as Unlock.
func (r *Repository) Reward(ctx context.Context, userID, videoID int, amount int64) (int64, error) {
	insertQuery := `
        INSERT INTO video_rewards (user_id, video_id, amount)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, video_id) DO NOTHING
    `
	creditQuery := `
        UPDATE users
        SET balance = balance + $1
        WHERE id = $2
        RETURNING balance
    `
	var newBalance int64
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, insertQuery, userID, videoID, amount)
		if err != nil {
			zap.L().Error("can't record reward", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrAlreadyApplied
		}

		err = r.db.QueryRow(ctx, creditQuery, amount, userID).Scan(&newBalance)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			zap.L().Error("can't credit balance", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

// RedeemVoucher claims the code and credits its amount. The claim predicate
// (redeemed_by IS NULL) makes each code single-use across all users.
func (r *Repository) RedeemVoucher(ctx context.Context, userID int, code string) (int64, int64, error) {
	claimQuery := `
        UPDATE vouchers
        SET redeemed_by = $1, redeemed_at = now()
        WHERE code = $2 AND redeemed_by IS NULL
        RETURNING amount
    `
	creditQuery := `
        UPDATE users
        SET balance = balance + $1
        WHERE id = $2
        RETURNING balance
    `
	existsQuery := `
        SELECT redeemed_by
        FROM vouchers
        WHERE code = $1
    `
	var amount, newBalance int64
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, claimQuery, userID, code).Scan(&amount)
		if errors.Is(err, pgx.ErrNoRows) {
			var redeemedBy *int
			if err := r.db.QueryRow(ctx, existsQuery, code).Scan(&redeemedBy); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return ErrNotFound
				}
				zap.L().Error("can't check voucher", zap.Error(err))
				return err
			}
			return ErrAlreadyApplied
		}
		if err != nil {
			zap.L().Error("can't claim voucher", zap.Error(err))
			return err
		}

		err = r.db.QueryRow(ctx, creditQuery, amount, userID).Scan(&newBalance)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			zap.L().Error("can't credit balance", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return amount, newBalance, nil
}

func (r *Repository) HasUnlock(ctx context.Context, userID, menuID int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM menu_unlocks WHERE user_id = $1 AND menu_id = $2
        )
    `
	var exists bool
	err := r.db.QueryRow(ctx, query, userID, menuID).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check unlock", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) UnlockedMenuIDs(ctx context.Context, userID int) (map[int]bool, error) {
	query := `
        SELECT menu_id
        FROM menu_unlocks
        WHERE user_id = $1
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get unlocked menu ids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	ids := make(map[int]bool)
	for rows.Next() {
		var menuID int
		if err := rows.Scan(&menuID); err != nil {
			zap.L().Error("can't scan unlock row", zap.Error(err))
			return nil, err
		}
		ids[menuID] = true
	}
	return ids, nil
}

func (r *Repository) ListUnlocks(ctx context.Context, userID int) ([]domain.Unlock, error) {
	query := `
        SELECT user_id, menu_id, price, created_at
        FROM menu_unlocks
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get unlocks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var unlocks []domain.Unlock
	for rows.Next() {
		var unlock domain.Unlock
		err := rows.Scan(&unlock.UserID, &unlock.MenuID, &unlock.Price, &unlock.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan unlock row", zap.Error(err))
			return nil, err
		}
		unlocks = append(unlocks, unlock)
	}
	return unlocks, nil
}
