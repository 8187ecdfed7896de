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

func TestLedgerService_Credit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	ledgers := NewLedger(mockStorage)

	testCases := []struct {
		Name           string
		Kind           models.LedgerKind
		Request        models.CreditRequest
		SetupMocks     func()
		ExpectedError  error
		ExpectedLedger *models.LedgerData
	}{
		{
			Name:          "Error. Empty email #1",
			Kind:          models.KindCoupon,
			Request:       models.CreditRequest{Count: 5},
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidCreditRequest,
		},
		{
			Name:          "Error. Zero count #2",
			Kind:          models.KindCoupon,
			Request:       models.CreditRequest{Email: "amb@example.com"},
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidCreditRequest,
		},
		{
			Name:    "Error. Ambassador not found #3",
			Kind:    models.KindCoupon,
			Request: models.CreditRequest{Email: "missing@example.com", Count: 5},
			SetupMocks: func() {
				mockStorage.EXPECT().GetAmbassadorByEmail(gomock.Any(), "missing@example.com").
					Return(nil, storage.ErrAmbassadorNotFound)
			},
			ExpectedError: storage.ErrAmbassadorNotFound,
		},
		{
			Name:    "Error. Failed to credit #4",
			Kind:    models.KindCoupon,
			Request: models.CreditRequest{Email: "amb@example.com", Count: 5},
			SetupMocks: func() {
				mockStorage.EXPECT().GetAmbassadorByEmail(gomock.Any(), "amb@example.com").
					Return(&models.AmbassadorData{ID: "amb-1", Email: "amb@example.com"}, nil)
				mockStorage.EXPECT().Credit(gomock.Any(), "amb-1", models.KindCoupon, 5).
					Return(nil, errors.New("failed to credit ledger"))
			},
			ExpectedError: errors.New("failed to credit ledger"),
		},
		{
			Name:    "Success. First credit #5",
			Kind:    models.KindCoupon,
			Request: models.CreditRequest{Email: "amb@example.com", Count: 5},
			SetupMocks: func() {
				mockStorage.EXPECT().GetAmbassadorByEmail(gomock.Any(), "amb@example.com").
					Return(&models.AmbassadorData{ID: "amb-1", FullName: "Amb One", Email: "amb@example.com"}, nil)
				mockStorage.EXPECT().Credit(gomock.Any(), "amb-1", models.KindCoupon, 5).
					Return(&models.LedgerData{
						ID:           "led-1",
						AmbassadorID: "amb-1",
						Kind:         models.KindCoupon,
						Earned:       5,
						Withdrawn:    0,
						Locked:       2,
						Available:    3,
						AmountLeft:   decimal.NewFromInt(600),
					}, nil)
			},
			ExpectedError: nil,
			ExpectedLedger: &models.LedgerData{
				ID:           "led-1",
				AmbassadorID: "amb-1",
				Kind:         models.KindCoupon,
				Earned:       5,
				Withdrawn:    0,
				Locked:       2,
				Available:    3,
				AmountLeft:   decimal.NewFromInt(600),
				Ambassador:   models.AmbassadorRef{ID: "amb-1", FullName: "Amb One", Email: "amb@example.com"},
			},
		},
		{
			Name:    "Success. Reward credit #6",
			Kind:    models.KindReward,
			Request: models.CreditRequest{Email: "amb@example.com", Count: 2},
			SetupMocks: func() {
				mockStorage.EXPECT().GetAmbassadorByEmail(gomock.Any(), "amb@example.com").
					Return(&models.AmbassadorData{ID: "amb-1", FullName: "Amb One", Email: "amb@example.com"}, nil)
				mockStorage.EXPECT().Credit(gomock.Any(), "amb-1", models.KindReward, 2).
					Return(&models.LedgerData{
						ID:           "led-2",
						AmbassadorID: "amb-1",
						Kind:         models.KindReward,
						Earned:       2,
						Withdrawn:    0,
						Locked:       2,
						Available:    0,
						AmountLeft:   decimal.NewFromInt(0),
					}, nil)
			},
			ExpectedError: nil,
			ExpectedLedger: &models.LedgerData{
				ID:           "led-2",
				AmbassadorID: "amb-1",
				Kind:         models.KindReward,
				Earned:       2,
				Withdrawn:    0,
				Locked:       2,
				Available:    0,
				AmountLeft:   decimal.NewFromInt(0),
				Ambassador:   models.AmbassadorRef{ID: "amb-1", FullName: "Amb One", Email: "amb@example.com"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			ledger, err := ledgers.Credit(ctx, tc.Kind, tc.Request)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			diff := cmp.Diff(tc.ExpectedLedger, ledger)
			if len(diff) != 0 {
				t.Errorf("expected ledger mismatch:\n %s", diff)
			}
		})
	}
}

func TestLedgerService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	ledgers := NewLedger(mockStorage)

	newCount := 12
	negativeCount := -1

	testCases := []struct {
		Name           string
		LedgerID       string
		Kind           models.LedgerKind
		Request        models.LedgerUpdateRequest
		SetupMocks     func()
		ExpectedError  error
		ExpectedLedger *models.LedgerData
	}{
		{
			Name:          "Error. Negative count #1",
			LedgerID:      "led-1",
			Kind:          models.KindCoupon,
			Request:       models.LedgerUpdateRequest{Count: &negativeCount},
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidCount,
		},
		{
			Name:     "Error. Ledger not found #2",
			LedgerID: "missing",
			Kind:     models.KindCoupon,
			Request:  models.LedgerUpdateRequest{Count: &newCount},
			SetupMocks: func() {
				mockStorage.EXPECT().GetLedger(gomock.Any(), "missing", models.KindCoupon).
					Return(nil, storage.ErrLedgerNotFound)
			},
			ExpectedError: storage.ErrLedgerNotFound,
		},
		{
			Name:     "Success. Overwrite earned #3",
			LedgerID: "led-1",
			Kind:     models.KindCoupon,
			Request:  models.LedgerUpdateRequest{Count: &newCount},
			SetupMocks: func() {
				mockStorage.EXPECT().GetLedger(gomock.Any(), "led-1", models.KindCoupon).
					Return(&models.LedgerData{ID: "led-1", AmbassadorID: "amb-1", Kind: models.KindCoupon, Earned: 5}, nil)
				mockStorage.EXPECT().SetEarned(gomock.Any(), "led-1", models.KindCoupon, 12).
					Return(&models.LedgerData{
						ID:           "led-1",
						AmbassadorID: "amb-1",
						Kind:         models.KindCoupon,
						Earned:       12,
						Withdrawn:    0,
						Locked:       2,
						Available:    10,
						AmountLeft:   decimal.NewFromInt(2000),
					}, nil)
			},
			ExpectedError: nil,
			ExpectedLedger: &models.LedgerData{
				ID:           "led-1",
				AmbassadorID: "amb-1",
				Kind:         models.KindCoupon,
				Earned:       12,
				Withdrawn:    0,
				Locked:       2,
				Available:    10,
				AmountLeft:   decimal.NewFromInt(2000),
			},
		},
		{
			Name:     "Success. Contact update only #4",
			LedgerID: "led-1",
			Kind:     models.KindCoupon,
			Request:  models.LedgerUpdateRequest{AmbassadorName: "New Name", Email: "new@example.com"},
			SetupMocks: func() {
				mockStorage.EXPECT().GetLedger(gomock.Any(), "led-1", models.KindCoupon).
					Return(&models.LedgerData{ID: "led-1", AmbassadorID: "amb-1", Kind: models.KindCoupon, Earned: 5}, nil)
				mockStorage.EXPECT().UpdateAmbassadorContact(gomock.Any(), "amb-1", "New Name", "new@example.com").
					Return(nil)
				mockStorage.EXPECT().GetLedger(gomock.Any(), "led-1", models.KindCoupon).
					Return(&models.LedgerData{
						ID:           "led-1",
						AmbassadorID: "amb-1",
						Kind:         models.KindCoupon,
						Earned:       5,
						Locked:       2,
						Available:    3,
						AmountLeft:   decimal.NewFromInt(600),
						Ambassador:   models.AmbassadorRef{ID: "amb-1", FullName: "New Name", Email: "new@example.com"},
					}, nil)
			},
			ExpectedError: nil,
			ExpectedLedger: &models.LedgerData{
				ID:           "led-1",
				AmbassadorID: "amb-1",
				Kind:         models.KindCoupon,
				Earned:       5,
				Locked:       2,
				Available:    3,
				AmountLeft:   decimal.NewFromInt(600),
				Ambassador:   models.AmbassadorRef{ID: "amb-1", FullName: "New Name", Email: "new@example.com"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			ledger, err := ledgers.Update(ctx, tc.LedgerID, tc.Kind, tc.Request)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			diff := cmp.Diff(tc.ExpectedLedger, ledger)
			if len(diff) != 0 {
				t.Errorf("expected ledger mismatch:\n %s", diff)
			}
		})
	}
}
