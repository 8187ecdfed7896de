package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/skillotech/ambassador-api/internal/config"
	"github.com/skillotech/ambassador-api/internal/logger"
	"github.com/skillotech/ambassador-api/internal/models"
	"github.com/skillotech/ambassador-api/internal/storage"
	"github.com/skillotech/ambassador-api/internal/storage/mocks"
	"go.uber.org/mock/gomock"
)

func TestWithdrawalService_Request(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	withdrawals := NewWithdrawal(mockStorage)

	testCases := []struct {
		Name               string
		AmbassadorID       string
		Kind               models.LedgerKind
		Count              int
		SetupMocks         func()
		ExpectedError      error
		ExpectedWithdrawal *models.WithdrawalData
	}{
		{
			Name:          "Error. Zero count #1",
			AmbassadorID:  "amb-1",
			Kind:          models.KindCoupon,
			Count:         0,
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidWithdrawalCount,
		},
		{
			Name:          "Error. Negative count #2",
			AmbassadorID:  "amb-1",
			Kind:          models.KindReward,
			Count:         -3,
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidWithdrawalCount,
		},
		{
			Name:         "Error. Nothing available #3",
			AmbassadorID: "amb-1",
			Kind:         models.KindCoupon,
			Count:        1,
			SetupMocks: func() {
				mockStorage.EXPECT().AddWithdrawal(gomock.Any(), "amb-1", models.KindCoupon, 1).
					Return(nil, &storage.NothingAvailableError{Kind: models.KindCoupon, Locked: 2})
			},
			ExpectedError: errors.New("you cannot withdraw right now, at least 2 coupons must always remain locked"),
		},
		{
			Name:         "Error. Over the limit #4",
			AmbassadorID: "amb-1",
			Kind:         models.KindReward,
			Count:        10,
			SetupMocks: func() {
				mockStorage.EXPECT().AddWithdrawal(gomock.Any(), "amb-1", models.KindReward, 10).
					Return(nil, &storage.WithdrawalLimitError{Kind: models.KindReward, Earned: 7, Locked: 2, Available: 5})
			},
			ExpectedError: errors.New("you have earned 7 rewards, 2 are locked, so you can withdraw only up to 5"),
		},
		{
			Name:         "Error. Ledger not found #5",
			AmbassadorID: "amb-2",
			Kind:         models.KindCoupon,
			Count:        1,
			SetupMocks: func() {
				mockStorage.EXPECT().AddWithdrawal(gomock.Any(), "amb-2", models.KindCoupon, 1).
					Return(nil, storage.ErrLedgerNotFound)
			},
			ExpectedError: storage.ErrLedgerNotFound,
		},
		{
			Name:         "Success. Coupon withdrawal #6",
			AmbassadorID: "amb-1",
			Kind:         models.KindCoupon,
			Count:        3,
			SetupMocks: func() {
				mockStorage.EXPECT().AddWithdrawal(gomock.Any(), "amb-1", models.KindCoupon, 3).
					Return(&models.WithdrawalData{
						ID:           "req-1",
						AmbassadorID: "amb-1",
						Kind:         models.KindCoupon,
						Requested:    3,
						Amount:       decimal.NewFromInt(600),
						Status:       models.WithdrawalStatusPending,
					}, nil)
			},
			ExpectedError: nil,
			ExpectedWithdrawal: &models.WithdrawalData{
				ID:           "req-1",
				AmbassadorID: "amb-1",
				Kind:         models.KindCoupon,
				Requested:    3,
				Amount:       decimal.NewFromInt(600),
				Status:       models.WithdrawalStatusPending,
			},
		},
		{
			Name:         "Success. Reward withdrawal #7",
			AmbassadorID: "amb-1",
			Kind:         models.KindReward,
			Count:        2,
			SetupMocks: func() {
				mockStorage.EXPECT().AddWithdrawal(gomock.Any(), "amb-1", models.KindReward, 2).
					Return(&models.WithdrawalData{
						ID:           "req-2",
						AmbassadorID: "amb-1",
						Kind:         models.KindReward,
						Requested:    2,
						Amount:       decimal.NewFromInt(600),
						Status:       models.WithdrawalStatusPending,
					}, nil)
			},
			ExpectedError: nil,
			ExpectedWithdrawal: &models.WithdrawalData{
				ID:           "req-2",
				AmbassadorID: "amb-1",
				Kind:         models.KindReward,
				Requested:    2,
				Amount:       decimal.NewFromInt(600),
				Status:       models.WithdrawalStatusPending,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			withdrawal, err := withdrawals.Request(ctx, tc.AmbassadorID, tc.Kind, tc.Count)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			diff := cmp.Diff(tc.ExpectedWithdrawal, withdrawal)
			if len(diff) != 0 {
				t.Errorf("expected withdrawal mismatch:\n %s", diff)
			}
		})
	}
}

func TestWithdrawalService_Approve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	withdrawals := NewWithdrawal(mockStorage)

	approvedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		Name               string
		RequestID          string
		Kind               models.LedgerKind
		SetupMocks         func()
		ExpectedError      error
		ExpectedWithdrawal *models.WithdrawalData
		ExpectedLedger     *models.LedgerData
	}{
		{
			Name:      "Error. Request not found #1",
			RequestID: "missing",
			Kind:      models.KindCoupon,
			SetupMocks: func() {
				mockStorage.EXPECT().ApproveWithdrawal(gomock.Any(), "missing", models.KindCoupon).
					Return(nil, nil, storage.ErrRequestNotFound)
			},
			ExpectedError: storage.ErrRequestNotFound,
		},
		{
			Name:      "Error. Already processed #2",
			RequestID: "req-1",
			Kind:      models.KindCoupon,
			SetupMocks: func() {
				mockStorage.EXPECT().ApproveWithdrawal(gomock.Any(), "req-1", models.KindCoupon).
					Return(nil, nil, storage.ErrRequestProcessed)
			},
			ExpectedError: storage.ErrRequestProcessed,
		},
		{
			Name:      "Error. Kind mismatch #3",
			RequestID: "req-2",
			Kind:      models.KindCoupon,
			SetupMocks: func() {
				mockStorage.EXPECT().ApproveWithdrawal(gomock.Any(), "req-2", models.KindCoupon).
					Return(nil, nil, storage.ErrKindMismatch)
			},
			ExpectedError: storage.ErrKindMismatch,
		},
		{
			Name:      "Success. Units deducted #4",
			RequestID: "req-3",
			Kind:      models.KindCoupon,
			SetupMocks: func() {
				mockStorage.EXPECT().ApproveWithdrawal(gomock.Any(), "req-3", models.KindCoupon).
					Return(&models.WithdrawalData{
						ID:           "req-3",
						AmbassadorID: "amb-1",
						Kind:         models.KindCoupon,
						Requested:    3,
						Amount:       decimal.NewFromInt(600),
						Status:       models.WithdrawalStatusApproved,
						ApprovedAt:   &approvedAt,
					}, &models.LedgerData{
						ID:           "led-1",
						AmbassadorID: "amb-1",
						Kind:         models.KindCoupon,
						Earned:       10,
						Withdrawn:    3,
						Locked:       2,
						Available:    5,
						AmountLeft:   decimal.NewFromInt(1000),
					}, nil)
			},
			ExpectedError: nil,
			ExpectedWithdrawal: &models.WithdrawalData{
				ID:           "req-3",
				AmbassadorID: "amb-1",
				Kind:         models.KindCoupon,
				Requested:    3,
				Amount:       decimal.NewFromInt(600),
				Status:       models.WithdrawalStatusApproved,
				ApprovedAt:   &approvedAt,
			},
			ExpectedLedger: &models.LedgerData{
				ID:           "led-1",
				AmbassadorID: "amb-1",
				Kind:         models.KindCoupon,
				Earned:       10,
				Withdrawn:    3,
				Locked:       2,
				Available:    5,
				AmountLeft:   decimal.NewFromInt(1000),
			},
		},
		{
			Name:      "Success. Approves depleted ledger #5",
			RequestID: "req-4",
			Kind:      models.KindReward,
			SetupMocks: func() {
				// баланс упал после подачи запроса, одобрение всё равно
				// проходит, остаток прижимается к нулю
				mockStorage.EXPECT().ApproveWithdrawal(gomock.Any(), "req-4", models.KindReward).
					Return(&models.WithdrawalData{
						ID:           "req-4",
						AmbassadorID: "amb-2",
						Kind:         models.KindReward,
						Requested:    5,
						Amount:       decimal.NewFromInt(1500),
						Status:       models.WithdrawalStatusApproved,
						ApprovedAt:   &approvedAt,
					}, &models.LedgerData{
						ID:           "led-2",
						AmbassadorID: "amb-2",
						Kind:         models.KindReward,
						Earned:       4,
						Withdrawn:    9,
						Locked:       2,
						Available:    0,
						AmountLeft:   decimal.NewFromInt(0),
					}, nil)
			},
			ExpectedError: nil,
			ExpectedWithdrawal: &models.WithdrawalData{
				ID:           "req-4",
				AmbassadorID: "amb-2",
				Kind:         models.KindReward,
				Requested:    5,
				Amount:       decimal.NewFromInt(1500),
				Status:       models.WithdrawalStatusApproved,
				ApprovedAt:   &approvedAt,
			},
			ExpectedLedger: &models.LedgerData{
				ID:           "led-2",
				AmbassadorID: "amb-2",
				Kind:         models.KindReward,
				Earned:       4,
				Withdrawn:    9,
				Locked:       2,
				Available:    0,
				AmountLeft:   decimal.NewFromInt(0),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			withdrawal, ledger, err := withdrawals.Approve(ctx, tc.RequestID, tc.Kind)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			diff := cmp.Diff(tc.ExpectedWithdrawal, withdrawal)
			if len(diff) != 0 {
				t.Errorf("expected withdrawal mismatch:\n %s", diff)
			}
			diff = cmp.Diff(tc.ExpectedLedger, ledger)
			if len(diff) != 0 {
				t.Errorf("expected ledger mismatch:\n %s", diff)
			}
		})
	}
}

func TestWithdrawalService_Reject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	withdrawals := NewWithdrawal(mockStorage)

	testCases := []struct {
		Name               string
		RequestID          string
		Kind               models.LedgerKind
		SetupMocks         func()
		ExpectedError      error
		ExpectedWithdrawal *models.WithdrawalData
	}{
		{
			Name:      "Error. Request not found #1",
			RequestID: "missing",
			Kind:      models.KindCoupon,
			SetupMocks: func() {
				mockStorage.EXPECT().RejectWithdrawal(gomock.Any(), "missing", models.KindCoupon).
					Return(nil, storage.ErrRequestNotFound)
			},
			ExpectedError: storage.ErrRequestNotFound,
		},
		{
			Name:      "Error. Already processed #2",
			RequestID: "req-1",
			Kind:      models.KindCoupon,
			SetupMocks: func() {
				mockStorage.EXPECT().RejectWithdrawal(gomock.Any(), "req-1", models.KindCoupon).
					Return(nil, storage.ErrRequestProcessed)
			},
			ExpectedError: storage.ErrRequestProcessed,
		},
		{
			Name:      "Success. Ledger untouched #3",
			RequestID: "req-2",
			Kind:      models.KindCoupon,
			SetupMocks: func() {
				mockStorage.EXPECT().RejectWithdrawal(gomock.Any(), "req-2", models.KindCoupon).
					Return(&models.WithdrawalData{
						ID:           "req-2",
						AmbassadorID: "amb-1",
						Kind:         models.KindCoupon,
						Requested:    4,
						Amount:       decimal.NewFromInt(800),
						Status:       models.WithdrawalStatusRejected,
					}, nil)
			},
			ExpectedError: nil,
			ExpectedWithdrawal: &models.WithdrawalData{
				ID:           "req-2",
				AmbassadorID: "amb-1",
				Kind:         models.KindCoupon,
				Requested:    4,
				Amount:       decimal.NewFromInt(800),
				Status:       models.WithdrawalStatusRejected,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			withdrawal, err := withdrawals.Reject(ctx, tc.RequestID, tc.Kind)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			diff := cmp.Diff(tc.ExpectedWithdrawal, withdrawal)
			if len(diff) != 0 {
				t.Errorf("expected withdrawal mismatch:\n %s", diff)
			}
		})
	}
}
