package models

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestLedgerData_MaxWithdrawable(t *testing.T) {
	testCases := []struct {
		Name      string
		Earned    int
		Withdrawn int
		Locked    int
		Expected  int
	}{
		{Name: "Fresh ledger", Earned: 0, Withdrawn: 0, Locked: DefaultLocked, Expected: 0},
		{Name: "Earned equals locked", Earned: 2, Withdrawn: 0, Locked: DefaultLocked, Expected: 0},
		{Name: "Earned above locked", Earned: 5, Withdrawn: 0, Locked: DefaultLocked, Expected: 3},
		{Name: "Partially withdrawn", Earned: 10, Withdrawn: 3, Locked: DefaultLocked, Expected: 5},
		{Name: "Fully withdrawn", Earned: 5, Withdrawn: 3, Locked: DefaultLocked, Expected: 0},
		{Name: "Withdrawn above earned", Earned: 4, Withdrawn: 9, Locked: DefaultLocked, Expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ledger := LedgerData{Earned: tc.Earned, Withdrawn: tc.Withdrawn, Locked: tc.Locked}
			if got := ledger.MaxWithdrawable(); got != tc.Expected {
				t.Errorf("MaxWithdrawable() = %d, want %d", got, tc.Expected)
			}
		})
	}
}

func TestLedgerData_Recalc(t *testing.T) {
	testCases := []struct {
		Name               string
		Kind               LedgerKind
		Earned             int
		Withdrawn          int
		Locked             int
		ExpectedAvailable  int
		ExpectedAmountLeft decimal.Decimal
	}{
		{
			Name:               "Coupons after first credit",
			Kind:               KindCoupon,
			Earned:             5,
			Withdrawn:          0,
			Locked:             DefaultLocked,
			ExpectedAvailable:  3,
			ExpectedAmountLeft: decimal.NewFromInt(600),
		},
		{
			Name:               "Coupons after approved withdrawal",
			Kind:               KindCoupon,
			Earned:             5,
			Withdrawn:          3,
			Locked:             DefaultLocked,
			ExpectedAvailable:  0,
			ExpectedAmountLeft: decimal.NewFromInt(0),
		},
		{
			Name:               "Rewards keep their own unit value",
			Kind:               KindReward,
			Earned:             7,
			Withdrawn:          0,
			Locked:             DefaultLocked,
			ExpectedAvailable:  5,
			ExpectedAmountLeft: decimal.NewFromInt(1500),
		},
		{
			Name:               "Nothing above the locked minimum",
			Kind:               KindCoupon,
			Earned:             2,
			Withdrawn:          0,
			Locked:             DefaultLocked,
			ExpectedAvailable:  0,
			ExpectedAmountLeft: decimal.NewFromInt(0),
		},
		{
			Name:               "Depleted ledger clamps to zero",
			Kind:               KindReward,
			Earned:             4,
			Withdrawn:          9,
			Locked:             DefaultLocked,
			ExpectedAvailable:  0,
			ExpectedAmountLeft: decimal.NewFromInt(0),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ledger := LedgerData{
				Kind:      tc.Kind,
				Earned:    tc.Earned,
				Withdrawn: tc.Withdrawn,
				Locked:    tc.Locked,
				// заведомо устаревшие значения, Recalc обязан их перетереть
				Available:  -1,
				AmountLeft: decimal.NewFromInt(-1),
			}
			ledger.Recalc()

			if ledger.Available != tc.ExpectedAvailable {
				t.Errorf("Available = %d, want %d", ledger.Available, tc.ExpectedAvailable)
			}
			if diff := cmp.Diff(tc.ExpectedAmountLeft, ledger.AmountLeft); diff != "" {
				t.Errorf("AmountLeft mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLedgerKind_UnitValue(t *testing.T) {
	if !KindCoupon.UnitValue().Equal(decimal.NewFromInt(200)) {
		t.Errorf("coupon unit value = %s, want 200", KindCoupon.UnitValue())
	}
	if !KindReward.UnitValue().Equal(decimal.NewFromInt(300)) {
		t.Errorf("reward unit value = %s, want 300", KindReward.UnitValue())
	}
}
