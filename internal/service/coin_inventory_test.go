package service

import (
	"sync"
	"testing"

	"vending-machine/internal/core/domain"
	"vending-machine/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoinInventory_DepositAndRelease(t *testing.T) {
	inv := NewCoinInventory()

	require.NoError(t, inv.Deposit(domain.DenominationOne))
	require.NoError(t, inv.Deposit(domain.DenominationOne))
	assert.Equal(t, 2, inv.Count(domain.DenominationOne))
	assert.True(t, inv.CanRelease(domain.DenominationOne))

	coin, err := inv.Release(domain.DenominationOne)
	require.NoError(t, err)
	assert.Equal(t, domain.DenominationOne, coin)
	assert.Equal(t, 1, inv.Count(domain.DenominationOne))
}

func TestCoinInventory_ReleaseEmptyFails(t *testing.T) {
	inv := NewCoinInventory()

	_, err := inv.Release(domain.DenominationHalf)
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, "COIN_002"))
	assert.Equal(t, 0, inv.Count(domain.DenominationHalf))
}

func TestCoinInventory_UnknownDenomination(t *testing.T) {
	inv := NewCoinInventory()

	err := inv.Deposit(domain.Denomination("0.3"))
	assert.True(t, apperror.HasCode(err, "COIN_001"))

	_, err = inv.Release(domain.Denomination("0.3"))
	assert.True(t, apperror.HasCode(err, "COIN_001"))

	assert.Equal(t, domain.Money(0), inv.Total())
}

func TestCoinInventory_AvailableDenominationsDescending(t *testing.T) {
	inv := NewCoinInventory()
	require.NoError(t, inv.Load(domain.DenominationTenth, 3))
	require.NoError(t, inv.Load(domain.DenominationTwo, 1))
	require.NoError(t, inv.Load(domain.DenominationHalf, 2))

	assert.Equal(t,
		[]domain.Denomination{domain.DenominationTwo, domain.DenominationHalf, domain.DenominationTenth},
		inv.AvailableDenominations(),
	)
	assert.Equal(t, domain.Money(33), inv.Total())
}

func TestCoinInventory_LoadValidation(t *testing.T) {
	inv := NewCoinInventory()

	assert.Error(t, inv.Load(domain.DenominationOne, 0))
	assert.Error(t, inv.Load(domain.Denomination("9.9"), 1))
	assert.Equal(t, 0, inv.Count(domain.DenominationOne))
}

func TestCoinInventory_CountsIncludesZeros(t *testing.T) {
	inv := NewCoinInventory()
	require.NoError(t, inv.Load(domain.DenominationFive, 1))

	counts := inv.Counts()
	assert.Len(t, counts, len(domain.Denominations()))
	assert.Equal(t, 1, counts[domain.DenominationFive])
	assert.Equal(t, 0, counts[domain.DenominationTenth])
}

func TestCoinInventory_Clear(t *testing.T) {
	inv := NewCoinInventory()
	require.NoError(t, inv.Load(domain.DenominationFive, 4))

	inv.Clear()

	assert.Empty(t, inv.AvailableDenominations())
	assert.False(t, inv.CanRelease(domain.DenominationFive))
}

func TestCoinInventory_ConcurrentAccess(t *testing.T) {
	inv := NewCoinInventory()
	require.NoError(t, inv.Load(domain.DenominationOne, 100))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = inv.Deposit(domain.DenominationOne)
		}()
		go func() {
			defer wg.Done()
			_, _ = inv.Release(domain.DenominationOne)
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, inv.Count(domain.DenominationOne))
}
