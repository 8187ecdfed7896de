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
	// Блокировка копилки на время проверки и записи запроса
	LockLedgerForUpdate = `SELECT id, ambassador_id, kind, earned, withdrawn, locked, available, amount_left, updated_at
						   FROM LEDGERS
						   WHERE ambassador_id = $1 AND kind = $2
						   FOR UPDATE;`

	InsertWithdrawal = `INSERT INTO WITHDRAWAL_REQUESTS (id, ambassador_id, kind, requested, amount, status, created_at)
						VALUES ($1, $2, $3, $4, $5, 'pending', NOW())
						RETURNING created_at;`

	LockWithdrawalForUpdate = `SELECT w.id, w.ambassador_id, w.kind, w.requested, w.amount, w.status, w.created_at, w.approved_at
							   FROM WITHDRAWAL_REQUESTS w
							   WHERE w.id = $1
							   FOR UPDATE;`

	// Списание одобренных единиц с пересчётом производных полей
	ApplyWithdrawal = `UPDATE LEDGERS
					   SET withdrawn = withdrawn + $3,
					       available = GREATEST(earned - (withdrawn + $3) - locked, 0),
					       amount_left = GREATEST(earned - (withdrawn + $3) - locked, 0) * $4,
					       updated_at = NOW()
					   WHERE ambassador_id = $1 AND kind = $2
					   RETURNING id, ambassador_id, kind, earned, withdrawn, locked, available, amount_left, updated_at;`

	MarkWithdrawalApproved = `UPDATE WITHDRAWAL_REQUESTS
							  SET status = 'approved', approved_at = NOW()
							  WHERE id = $1
							  RETURNING approved_at;`

	MarkWithdrawalRejected = `UPDATE WITHDRAWAL_REQUESTS
							  SET status = 'rejected'
							  WHERE id = $1;`

	GetPendingByKind = `SELECT w.id, w.ambassador_id, w.kind, w.requested, w.amount, w.status, w.created_at, w.approved_at,
							   a.full_name, a.username, a.email
						FROM WITHDRAWAL_REQUESTS w
						JOIN AMBASSADORS a ON a.id = w.ambassador_id
						WHERE w.status = 'pending' AND w.kind = $1
						ORDER BY w.created_at DESC;`
)

type WithdrawalDatabase struct {
	DB *Database
}

// Создание хранилища
func NewWithdrawalsStorage(db *Database) WithdrawalsStorage {
	return &WithdrawalDatabase{DB: db}
}

// AddWithdrawal - создание запроса на вывод. Проверка политики и запись
// запроса выполняются в одной транзакции: строка копилки блокируется,
// поэтому параллельные запросы к одной копилке не могут оба пройти проверку.
func (s *WithdrawalDatabase) AddWithdrawal(ctx context.Context, ambassadorID string, kind models.LedgerKind, count int) (*models.WithdrawalData, error) {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				logger.Error("AddWithdrawal. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	ledger, err := scanLedger(tx.QueryRow(ctx, LockLedgerForUpdate, ambassadorID, kind))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = ErrLedgerNotFound
			return nil, err
		}
		return nil, fmt.Errorf("failed to lock ledger: %w", err)
	}

	maxWithdrawable := ledger.MaxWithdrawable()

	// Для купонов заблокированный минимум выдаётся отдельной ошибкой,
	// для вознаграждений оба случая сводятся к проверке лимита
	if kind == models.KindCoupon && maxWithdrawable <= 0 {
		err = &NothingAvailableError{Kind: kind, Locked: ledger.Locked}
		return nil, err
	}
	if count > maxWithdrawable {
		err = &WithdrawalLimitError{Kind: kind, Earned: ledger.Earned, Locked: ledger.Locked, Available: maxWithdrawable}
		return nil, err
	}

	withdrawal := models.WithdrawalData{
		ID:           uuid.New().String(),
		AmbassadorID: ambassadorID,
		Kind:         kind,
		Requested:    count,
		Amount:       decimal.NewFromInt(int64(count)).Mul(kind.UnitValue()),
		Status:       models.WithdrawalStatusPending,
	}

	err = tx.QueryRow(ctx, InsertWithdrawal,
		withdrawal.ID, withdrawal.AmbassadorID, withdrawal.Kind, withdrawal.Requested, withdrawal.Amount).
		Scan(&withdrawal.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert withdrawal: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit failed: %w", err)
	}
	return &withdrawal, nil
}

// ApproveWithdrawal - одобрение запроса администратором. Запрос и копилка
// блокируются в одной транзакции, повторное одобрение невозможно. Текущий
// остаток заново не проверяется: одобрение доверяет счётчику из запроса.
func (s *WithdrawalDatabase) ApproveWithdrawal(ctx context.Context, requestID string, kind models.LedgerKind) (*models.WithdrawalData, *models.LedgerData, error) {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				logger.Error("ApproveWithdrawal. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	withdrawal, err := s.lockWithdrawal(ctx, tx, requestID, kind)
	if err != nil {
		return nil, nil, err
	}

	ledger, err := scanLedger(tx.QueryRow(ctx, ApplyWithdrawal,
		withdrawal.AmbassadorID, kind, withdrawal.Requested, kind.UnitValue()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = ErrLedgerNotFound
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("failed to apply withdrawal: %w", err)
	}

	var approvedAt time.Time
	if err = tx.QueryRow(ctx, MarkWithdrawalApproved, requestID).Scan(&approvedAt); err != nil {
		return nil, nil, fmt.Errorf("failed to mark request approved: %w", err)
	}
	withdrawal.Status = models.WithdrawalStatusApproved
	withdrawal.ApprovedAt = &approvedAt

	if err = tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("commit failed: %w", err)
	}
	return withdrawal, ledger, nil
}

// RejectWithdrawal - отклонение запроса администратором, копилка не меняется
func (s *WithdrawalDatabase) RejectWithdrawal(ctx context.Context, requestID string, kind models.LedgerKind) (*models.WithdrawalData, error) {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				logger.Error("RejectWithdrawal. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	withdrawal, err := s.lockWithdrawal(ctx, tx, requestID, kind)
	if err != nil {
		return nil, err
	}

	if _, err = tx.Exec(ctx, MarkWithdrawalRejected, requestID); err != nil {
		return nil, fmt.Errorf("failed to mark request rejected: %w", err)
	}
	withdrawal.Status = models.WithdrawalStatusRejected

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit failed: %w", err)
	}
	return withdrawal, nil
}

// lockWithdrawal - блокировка строки запроса с проверкой статуса и вида
func (s *WithdrawalDatabase) lockWithdrawal(ctx context.Context, tx pgx.Tx, requestID string, kind models.LedgerKind) (*models.WithdrawalData, error) {
	withdrawal, err := scanWithdrawal(tx.QueryRow(ctx, LockWithdrawalForUpdate, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to lock request: %w", err)
	}
	if withdrawal.Status != models.WithdrawalStatusPending {
		return nil, ErrRequestProcessed
	}
	if withdrawal.Kind != kind {
		return nil, ErrKindMismatch
	}
	return withdrawal, nil
}

func (s *WithdrawalDatabase) GetPendingWithdrawals(ctx context.Context, kind models.LedgerKind) ([]models.WithdrawalData, error) {
	var withdrawals []models.WithdrawalData
	rows, err := s.DB.Pool.Query(ctx, GetPendingByKind, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending withdrawals: %w", err)
	}
	for rows.Next() {
		var (
			id           string
			ambassadorID string
			kindValue    string
			requested    int
			amount       decimal.Decimal
			status       string
			createdAt    time.Time
			approvedAt   *time.Time
			fullName     string
			username     string
			email        string
		)
		err := rows.Scan(&id, &ambassadorID, &kindValue, &requested, &amount, &status, &createdAt, &approvedAt,
			&fullName, &username, &email)
		if err != nil {
			return withdrawals, fmt.Errorf("failed scan withdrawal data: %w", err)
		}
		withdrawals = append(withdrawals, models.WithdrawalData{
			ID:           id,
			AmbassadorID: ambassadorID,
			Kind:         models.LedgerKind(kindValue),
			Requested:    requested,
			Amount:       amount,
			Status:       status,
			Ambassador:   models.AmbassadorRef{ID: ambassadorID, FullName: fullName, Username: username, Email: email},
			CreatedAt:    createdAt,
			ApprovedAt:   approvedAt,
		})
	}
	return withdrawals, err
}

// scanWithdrawal - чтение строки запроса на вывод
func scanWithdrawal(row pgx.Row) (*models.WithdrawalData, error) {
	var (
		id           string
		ambassadorID string
		kind         string
		requested    int
		amount       decimal.Decimal
		status       string
		createdAt    time.Time
		approvedAt   *time.Time
	)
	err := row.Scan(&id, &ambassadorID, &kind, &requested, &amount, &status, &createdAt, &approvedAt)
	if err != nil {
		return nil, err
	}
	return &models.WithdrawalData{
		ID:           id,
		AmbassadorID: ambassadorID,
		Kind:         models.LedgerKind(kind),
		Requested:    requested,
		Amount:       amount,
		Status:       status,
		CreatedAt:    createdAt,
		ApprovedAt:   approvedAt,
	}, nil
}
