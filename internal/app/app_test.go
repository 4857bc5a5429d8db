package app

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"vending_machine/internal/app/mocks"
	"vending_machine/internal/catalog"
	"vending_machine/internal/models"
	"vending_machine/internal/pkg/logger"
	"vending_machine/internal/pkg/security"
	"vending_machine/internal/vending"
)

func coins(values ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(values))
	for _, v := range values {
		out = append(out, decimal.NewFromInt(v))
	}
	return out
}

func TestApp_NoMachine(t *testing.T) {
	appInstance := NewApp(catalog.Default(), logger.NewNop())

	_, err := appInstance.ActiveMachine()
	assert.ErrorIs(t, err, ErrNoMachine)

	_, err = appInstance.ProcessShowItems()
	assert.ErrorIs(t, err, ErrNoMachine)
	_, err = appInstance.ProcessAddFunds(coins(1))
	assert.ErrorIs(t, err, ErrNoMachine)
	_, err = appInstance.ProcessBuy([]int{1})
	assert.ErrorIs(t, err, ErrNoMachine)
	_, err = appInstance.ProcessSummary()
	assert.ErrorIs(t, err, ErrNoMachine)
	assert.ErrorIs(t, appInstance.ProcessRestock(), ErrNoMachine)
	_, err = appInstance.ProcessChangePrice(1, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrNoMachine)
	_, err = appInstance.ProcessCollect()
	assert.ErrorIs(t, err, ErrNoMachine)
	_, err = appInstance.ProcessReplenish(decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrNoMachine)
}

func TestApp_CreateMachineReplacesPrevious(t *testing.T) {
	appInstance := NewApp(catalog.Default(), logger.NewNop())

	appInstance.CreateMachine(vending.Regular)
	kind, err := appInstance.ActiveMachine()
	require.NoError(t, err)
	assert.Equal(t, vending.Regular, kind)

	_, err = appInstance.ProcessAddFunds(coins(5))
	require.NoError(t, err)
	_, err = appInstance.ProcessBuy([]int{1})
	require.NoError(t, err)

	appInstance.CreateMachine(vending.Special)
	kind, err = appInstance.ActiveMachine()
	require.NoError(t, err)
	assert.Equal(t, vending.Special, kind)

	summary, err := appInstance.ProcessSummary()
	require.NoError(t, err)
	assert.True(t, summary.Funds.IsZero())
	for _, sold := range summary.Sold {
		assert.Zero(t, sold.Sold, sold.Name)
	}

	items, err := appInstance.ProcessShowItems()
	require.NoError(t, err)
	require.Len(t, items, len(catalog.Default()))
	assert.Equal(t, vending.RestockQuantity, items[0].Quantity)
}

func TestApp_SpecialSession(t *testing.T) {
	appInstance := NewApp(catalog.Default(), logger.NewNop())
	appInstance.CreateMachine(vending.Special)

	total, err := appInstance.ProcessAddFunds(coins(2, 1))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(3).Equal(total))

	receipt, err := appInstance.ProcessBuy([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 2, receipt.Vended())
	assert.ErrorIs(t, receipt.Lines[2].Err, vending.ErrInsufficientFunds)
	assert.True(t, receipt.Balance.IsZero())

	_, err = appInstance.ProcessBuy(nil)
	assert.ErrorIs(t, err, vending.ErrEmptyOrder)
}

func TestApp_MaintenanceWithoutPIN(t *testing.T) {
	appInstance := NewApp(catalog.Default(), logger.NewNop())
	appInstance.CreateMachine(vending.Regular)
	assert.False(t, appInstance.OperatorLocked())
	require.NoError(t, appInstance.Unlock("anything"))

	updated, err := appInstance.ProcessChangePrice(1, decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.Equal(t, "Noodles", updated.Name)

	_, err = appInstance.ProcessChangePrice(1, decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, vending.ErrInvalidPrice)

	total, err := appInstance.ProcessReplenish(decimal.NewFromInt(20))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(20).Equal(total))

	_, err = appInstance.ProcessReplenish(decimal.Zero)
	assert.ErrorIs(t, err, vending.ErrInvalidAmount)

	require.NoError(t, appInstance.ProcessRestock())

	collected, err := appInstance.ProcessCollect()
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(20).Equal(collected))
}

func TestApp_OperatorLock(t *testing.T) {
	hash, err := security.HashPIN("2468")
	require.NoError(t, err)

	appInstance := NewApp(catalog.Default(), logger.NewNop(), WithOperatorPIN(hash))
	appInstance.CreateMachine(vending.Regular)
	require.True(t, appInstance.OperatorLocked())

	assert.ErrorIs(t, appInstance.ProcessRestock(), ErrOperatorLocked)
	_, err = appInstance.ProcessChangePrice(1, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrOperatorLocked)
	_, err = appInstance.ProcessCollect()
	assert.ErrorIs(t, err, ErrOperatorLocked)
	_, err = appInstance.ProcessReplenish(decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrOperatorLocked)

	_, err = appInstance.ProcessAddFunds(coins(1))
	assert.NoError(t, err, "customer operations stay open")

	assert.ErrorIs(t, appInstance.Unlock("1357"), ErrWrongPIN)
	assert.True(t, appInstance.OperatorLocked())

	require.NoError(t, appInstance.Unlock("2468"))
	assert.False(t, appInstance.OperatorLocked())
	assert.NoError(t, appInstance.ProcessRestock())

	appInstance.EndSession()
	assert.True(t, appInstance.OperatorLocked())

	require.NoError(t, appInstance.Unlock("2468"))
	appInstance.CreateMachine(vending.Special)
	assert.True(t, appInstance.OperatorLocked())
}

func TestApp_DelegatesToMachine_Gomock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMachine := mocks.NewMockMachine(ctrl)
	var createdKind vending.Kind
	factory := func(kind vending.Kind, items []models.Item) Machine {
		createdKind = kind
		return mockMachine
	}

	core, observed := observer.New(zapcore.DebugLevel)
	appInstance := NewApp(catalog.Default(), &logger.Logger{Logger: zap.New(core)}, WithMachineFactory(factory))
	appInstance.CreateMachine(vending.Special)
	assert.Equal(t, vending.Special, createdKind)

	mockMachine.EXPECT().Purchase([]int{1, 2}).Return(models.Receipt{
		Special: true,
		Lines: []models.PurchaseLine{
			{Slot: 1, Item: "Noodles"},
			{Slot: 2, Item: "Egg", Err: vending.ErrOutOfStock},
		},
		Balance: decimal.NewFromInt(1),
	}, nil)

	receipt, err := appInstance.ProcessBuy([]int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 1, receipt.Vended())

	assert.Equal(t, 1, observed.FilterMessage("Vended Noodles from slot 1").Len())
	assert.Equal(t, 1, observed.FilterMessageSnippet("Slot 2 not vended").Len())

	replenishErr := errors.New("jammed")
	mockMachine.EXPECT().ReplenishMoney(gomock.Any()).Return(decimal.NewFromInt(1), replenishErr)
	_, err = appInstance.ProcessReplenish(decimal.NewFromInt(3))
	assert.ErrorIs(t, err, replenishErr)

	mockMachine.EXPECT().Kind().Return(vending.Special)
	kind, err := appInstance.ActiveMachine()
	require.NoError(t, err)
	assert.Equal(t, vending.Special, kind)
}
