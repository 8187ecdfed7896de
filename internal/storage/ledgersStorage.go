package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/skillotech/ambassador-api/internal/logger"
	"github.com/skillotech/ambassador-api/internal/models"
	"go.uber.org/zap"
)

const (
	// Начисление единиц: создаёт копилку при первом начислении, иначе
	// увеличивает earned. Производные поля пересчитываются тем же запросом.
	CreditLedger = `INSERT INTO LEDGERS (id, ambassador_id, kind, earned, withdrawn, locked, available, amount_left, updated_at)
					VALUES ($1, $2, $3, $4, 0, $5, GREATEST($4 - $5, 0), GREATEST($4 - $5, 0) * $6, NOW())
					ON CONFLICT (ambassador_id, kind) DO UPDATE
					SET earned = LEDGERS.earned + EXCLUDED.earned,
					    available = GREATEST(LEDGERS.earned + EXCLUDED.earned - LEDGERS.withdrawn - LEDGERS.locked, 0),
					    amount_left = GREATEST(LEDGERS.earned + EXCLUDED.earned - LEDGERS.withdrawn - LEDGERS.locked, 0) * $6,
					    updated_at = NOW()
					RETURNING id, ambassador_id, kind, earned, withdrawn, locked, available, amount_left, updated_at;`

	// Блокировка копилки по идентификатору на время корректировки
	LockLedgerByID = `SELECT id, ambassador_id, kind, earned, withdrawn, locked, available, amount_left, updated_at
					  FROM LEDGERS
					  WHERE id = $1 AND kind = $2
					  FOR UPDATE;`

	// Запись пересчитанных счётчиков копилки
	UpdateLedgerCounters = `UPDATE LEDGERS
						    SET earned = $3, available = $4, amount_left = $5, updated_at = NOW()
						    WHERE id = $1 AND kind = $2
						    RETURNING updated_at;`

	GetLedgerByAmbassador = `SELECT l.id, l.ambassador_id, l.kind, l.earned, l.withdrawn, l.locked, l.available, l.amount_left, l.updated_at,
							        a.full_name, a.username, a.email
							 FROM LEDGERS l
							 JOIN AMBASSADORS a ON a.id = l.ambassador_id
							 WHERE l.ambassador_id = $1 AND l.kind = $2;`

	GetLedgerByID = `SELECT l.id, l.ambassador_id, l.kind, l.earned, l.withdrawn, l.locked, l.available, l.amount_left, l.updated_at,
					        a.full_name, a.username, a.email
					 FROM LEDGERS l
					 JOIN AMBASSADORS a ON a.id = l.ambassador_id
					 WHERE l.id = $1 AND l.kind = $2;`

	GetLedgersByKind = `SELECT l.id, l.ambassador_id, l.kind, l.earned, l.withdrawn, l.locked, l.available, l.amount_left, l.updated_at,
					           a.full_name, a.username, a.email
					    FROM LEDGERS l
					    JOIN AMBASSADORS a ON a.id = l.ambassador_id
					    WHERE l.kind = $1
					    ORDER BY l.updated_at DESC;`
)

type LedgerDatabase struct {
	DB *Database
}

// Создание хранилища
func NewLedgersStorage(db *Database) LedgersStorage {
	return &LedgerDatabase{DB: db}
}

// Credit - начисление единиц амбассадору (создаёт копилку при первом начислении)
func (s *LedgerDatabase) Credit(ctx context.Context, ambassadorID string, kind models.LedgerKind, count int) (*models.LedgerData, error) {
	row := s.DB.Pool.QueryRow(ctx, CreditLedger,
		uuid.New().String(), ambassadorID, kind, count, models.DefaultLocked, kind.UnitValue())

	ledger, err := scanLedger(row)
	if err != nil {
		return nil, fmt.Errorf("failed to credit ledger: %w", err)
	}
	return ledger, nil
}

// SetEarned - перезапись заработанного. Строка блокируется, производные
// поля пересчитываются моделью и записываются одной транзакцией.
func (s *LedgerDatabase) SetEarned(ctx context.Context, id string, kind models.LedgerKind, count int) (*models.LedgerData, error) {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				logger.Error("SetEarned. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	ledger, err := scanLedger(tx.QueryRow(ctx, LockLedgerByID, id, kind))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = ErrLedgerNotFound
			return nil, err
		}
		return nil, fmt.Errorf("failed to lock ledger: %w", err)
	}

	ledger.Earned = count
	ledger.Recalc()

	err = tx.QueryRow(ctx, UpdateLedgerCounters,
		ledger.ID, ledger.Kind, ledger.Earned, ledger.Available, ledger.AmountLeft).
		Scan(&ledger.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to set earned: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit failed: %w", err)
	}
	return ledger, nil
}

func (s *LedgerDatabase) GetLedgerByAmbassador(ctx context.Context, ambassadorID string, kind models.LedgerKind) (*models.LedgerData, error) {
	row := s.DB.Pool.QueryRow(ctx, GetLedgerByAmbassador, ambassadorID, kind)

	ledger, err := scanLedgerWithAmbassador(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLedgerNotFound
		}
		return nil, fmt.Errorf("failed to get ledger: %w", err)
	}
	return ledger, nil
}

func (s *LedgerDatabase) GetLedger(ctx context.Context, id string, kind models.LedgerKind) (*models.LedgerData, error) {
	row := s.DB.Pool.QueryRow(ctx, GetLedgerByID, id, kind)

	ledger, err := scanLedgerWithAmbassador(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLedgerNotFound
		}
		return nil, fmt.Errorf("failed to get ledger: %w", err)
	}
	return ledger, nil
}

func (s *LedgerDatabase) GetLedgers(ctx context.Context, kind models.LedgerKind) ([]models.LedgerData, error) {
	var ledgers []models.LedgerData
	rows, err := s.DB.Pool.Query(ctx, GetLedgersByKind, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to get ledgers: %w", err)
	}
	for rows.Next() {
		ledger, err := scanLedgerWithAmbassador(rows)
		if err != nil {
			return ledgers, fmt.Errorf("failed scan ledger data: %w", err)
		}
		ledgers = append(ledgers, *ledger)
	}
	return ledgers, err
}

// scanLedger - чтение строки копилки без данных амбассадора
func scanLedger(row pgx.Row) (*models.LedgerData, error) {
	var (
		id           string
		ambassadorID string
		kind         string
		earned       int
		withdrawn    int
		locked       int
		available    int
		amountLeft   decimal.Decimal
		updatedAt    time.Time
	)
	err := row.Scan(&id, &ambassadorID, &kind, &earned, &withdrawn, &locked, &available, &amountLeft, &updatedAt)
	if err != nil {
		return nil, err
	}
	return &models.LedgerData{
		ID:           id,
		AmbassadorID: ambassadorID,
		Kind:         models.LedgerKind(kind),
		Earned:       earned,
		Withdrawn:    withdrawn,
		Locked:       locked,
		Available:    available,
		AmountLeft:   amountLeft,
		UpdatedAt:    updatedAt,
	}, nil
}

// scanLedgerWithAmbassador - чтение строки копилки вместе с данными амбассадора
func scanLedgerWithAmbassador(row pgx.Row) (*models.LedgerData, error) {
	var (
		id           string
		ambassadorID string
		kind         string
		earned       int
		withdrawn    int
		locked       int
		available    int
		amountLeft   decimal.Decimal
		updatedAt    time.Time
		fullName     string
		username     string
		email        string
	)
	err := row.Scan(&id, &ambassadorID, &kind, &earned, &withdrawn, &locked, &available, &amountLeft, &updatedAt,
		&fullName, &username, &email)
	if err != nil {
		return nil, err
	}
	return &models.LedgerData{
		ID:           id,
		AmbassadorID: ambassadorID,
		Kind:         models.LedgerKind(kind),
		Earned:       earned,
		Withdrawn:    withdrawn,
		Locked:       locked,
		Available:    available,
		AmountLeft:   amountLeft,
		Ambassador:   models.AmbassadorRef{ID: ambassadorID, FullName: fullName, Username: username, Email: email},
		UpdatedAt:    updatedAt,
	}, nil
}
