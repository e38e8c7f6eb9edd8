package ui

import (
	"bufio"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/XtremePrime/ATM-Software-RELOADED/internal/account"
	"github.com/XtremePrime/ATM-Software-RELOADED/internal/types"
	"github.com/XtremePrime/ATM-Software-RELOADED/log2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMachine(t testing.TB, balance uint64) (*Machine, *account.Store) {
	log := log2.NewTest(t, log2.LDebug)
	store := account.NewStore(log)
	db := fmt.Sprintf("1\nRO-49-AAAA-1B31-0075-9384-0000 Ionescu Maria 1234 %d\n", balance)
	require.NoError(t, store.Load(bufio.NewReader(strings.NewReader(db))))
	return NewMachine(log, store, 2*time.Second), store
}

func touch(m *Machine, el types.ElementCode) []Effect {
	return m.Step(types.Event{Kind: types.EventTouch, Element: el})
}

func elapse(m *Machine) []Effect { return m.Step(types.Event{Kind: types.EventElapsed}) }

func done(m *Machine, r types.RoutineKind) []Effect {
	return m.Step(types.Event{Kind: types.EventRoutineDone, Routine: r})
}

func key(n int) types.ElementCode { return types.ElKey0 + types.ElementCode(n) }

func routinesOf(effs []Effect) []types.RoutineKind {
	var rr []types.RoutineKind
	for _, e := range effs {
		if e.Kind == EffectRoutine {
			rr = append(rr, e.Routine)
		}
	}
	return rr
}

func logsOf(effs []Effect) []string {
	var ll []string
	for _, e := range effs {
		if e.Kind == EffectLog || e.Kind == EffectLogRaw {
			ll = append(ll, e.Line)
		}
	}
	return ll
}

func hasSchedule(effs []Effect) bool {
	for _, e := range effs {
		if e.Kind == EffectSchedule {
			return true
		}
	}
	return false
}

func insertCard(t testing.TB, m *Machine) {
	t.Helper()
	touch(m, types.ElCard)
	done(m, types.RoutineCardIn)
	elapse(m)
}

func signIn(t testing.TB, m *Machine) {
	t.Helper()
	insertCard(t, m)
	require.Equal(t, types.StatePinEntry, m.State())
	for _, n := range []int{1, 2, 3, 4} {
		touch(m, key(n))
	}
	touch(m, types.ElOK)
	require.Equal(t, types.StateMainMenu, m.State())
}

func TestCardInsertFlow(t *testing.T) {
	t.Parallel()
	m, _ := testMachine(t, 100)

	require.Equal(t, types.StateInsertCard, m.State())
	effs := touch(m, types.ElCard)
	assert.Equal(t, []types.RoutineKind{types.RoutineCardIn}, routinesOf(effs))
	assert.Equal(t, types.StateCardInAnimating, m.State())
	assert.False(t, m.CardVisible())

	effs = done(m, types.RoutineCardIn)
	assert.Equal(t, []string{"The cardholder inserted a VISA Classic Card"}, logsOf(effs))
	assert.True(t, hasSchedule(effs))
	assert.Equal(t, types.StateProcessingCard, m.State())

	elapse(m)
	assert.Equal(t, types.StatePinEntry, m.State())
}

func TestPinAccumulation(t *testing.T) {
	t.Parallel()
	m, _ := testMachine(t, 100)
	insertCard(t, m)

	// leading zero is ignored, no feedback
	assert.Empty(t, touch(m, key(0)))
	assert.Equal(t, 0, m.Snapshot().PinCount)

	touch(m, key(1))
	touch(m, key(0))
	touch(m, key(0))
	touch(m, key(0))
	assert.Equal(t, 4, m.Snapshot().PinCount)
	assert.True(t, m.Snapshot().AtDigitCap)

	// fifth digit bounces off the cap
	assert.Empty(t, touch(m, key(5)))
	assert.Equal(t, 4, m.Snapshot().PinCount)

	effs := touch(m, types.ElClear)
	assert.Equal(t, []types.RoutineKind{types.RoutineMenuSound}, routinesOf(effs))
	assert.Equal(t, 0, m.Snapshot().PinCount)
}

func TestAuthentication(t *testing.T) {
	t.Parallel()
	m, _ := testMachine(t, 100)
	insertCard(t, m)

	for _, n := range []int{1, 2, 3, 4} {
		touch(m, key(n))
	}
	effs := touch(m, types.ElOK)
	require.Equal(t, types.StateMainMenu, m.State())
	assert.Equal(t, 0, m.SessionIndex())
	logs := logsOf(effs)
	require.Len(t, logs, 3)
	assert.Equal(t, "Cardholder successfully authenticated:", logs[0])
	assert.Contains(t, logs[1], "Ionescu Maria")
	assert.Contains(t, logs[2], "RO-49-AAAA-1B31-0075-9384-0000")
}

func TestWrongPinLockout(t *testing.T) {
	t.Parallel()
	m, _ := testMachine(t, 100)
	insertCard(t, m)

	wrongAttempt := func() []Effect {
		for range [4]struct{}{} {
			touch(m, key(9))
		}
		return touch(m, types.ElOK)
	}

	effs := wrongAttempt()
	assert.Equal(t, types.StateWrongPin, m.State())
	assert.Equal(t, []string{"Cardholder entered a wrong PIN"}, logsOf(effs))
	touch(m, types.ElOK)
	require.Equal(t, types.StatePinEntry, m.State())

	wrongAttempt()
	touch(m, types.ElOK)

	effs = wrongAttempt()
	assert.Equal(t, types.StateSuspended, m.State())
	assert.True(t, m.Blocked())
	logs := logsOf(effs)
	assert.Contains(t, logs, "Cardholder entered a wrong PIN 3 times in a row")
	assert.Contains(t, logs, "ACCOUNT SUSPENDED")

	// OK ejects the card; the block outlives the session
	effs = touch(m, types.ElOK)
	assert.Contains(t, routinesOf(effs), types.RoutineCardOut)
	done(m, types.RoutineCardOut)
	require.Equal(t, types.StateInsertCard, m.State())
	assert.True(t, m.Blocked())

	// a blocked card never reaches PIN entry again
	insertCard(t, m)
	assert.Equal(t, types.StateSuspended, m.State())
}

func TestWithdraw(t *testing.T) {
	t.Parallel()
	m, store := testMachine(t, 100)
	signIn(t, m)

	touch(m, types.ElL1)
	require.Equal(t, types.StateWithdrawAmount, m.State())

	touch(m, key(4))
	touch(m, key(0))
	assert.Equal(t, "40", m.Snapshot().AmountText)
	touch(m, types.ElOK)
	require.Equal(t, types.StateWithdrawConfirm, m.State())

	effs := touch(m, types.ElL1)
	assert.Equal(t, []types.RoutineKind{types.RoutineMenuSound, types.RoutineCashLargeOut}, routinesOf(effs))
	require.Equal(t, types.StateWithdrawDispense, m.State())

	effs = done(m, types.RoutineCashLargeOut)
	assert.Equal(t, []string{"Ionescu Maria withdrew 40 RON"}, logsOf(effs))
	assert.Equal(t, uint64(60), store.Get(0).Balance)
	assert.True(t, m.CashLargeVisible())
	require.Equal(t, types.StateWithdrawReceipt, m.State())

	// the receipt dialog waits until the cash is taken
	assert.Empty(t, touch(m, types.ElL1))
	require.Equal(t, types.StateWithdrawReceipt, m.State())
	touch(m, types.ElCashLarge)
	assert.False(t, m.CashLargeVisible())

	touch(m, types.ElR3)
	require.Equal(t, types.StateWithdrawAnother, m.State())

	effs = touch(m, types.ElR3)
	assert.Contains(t, logsOf(effs), "Ionescu Maria finished the session")
	assert.Contains(t, routinesOf(effs), types.RoutineCardOut)
	effs = done(m, types.RoutineCardOut)
	assert.Equal(t, []string{"The card was ejected"}, logsOf(effs))
	assert.Equal(t, types.StateInsertCard, m.State())
	assert.Equal(t, -1, m.SessionIndex())
	assert.True(t, m.CardVisible())
}

func TestInsufficientFunds(t *testing.T) {
	t.Parallel()
	m, store := testMachine(t, 100)
	signIn(t, m)
	touch(m, types.ElL1)

	touch(m, key(2))
	touch(m, key(0))
	touch(m, key(0))
	touch(m, types.ElOK)
	assert.Equal(t, types.StateInsufficientFunds, m.State())
	assert.Equal(t, uint64(100), store.Get(0).Balance)
	assert.Equal(t, "0", m.Snapshot().AmountText)

	touch(m, types.ElR3)
	assert.Equal(t, types.StateWithdrawAmount, m.State())
}

func TestDeposit(t *testing.T) {
	t.Parallel()
	m, store := testMachine(t, 100)
	signIn(t, m)

	touch(m, types.ElR1)
	require.Equal(t, types.StateDepositAmount, m.State())
	touch(m, key(5))
	touch(m, key(0))
	touch(m, types.ElOK)
	require.Equal(t, types.StateDepositConfirm, m.State())

	touch(m, types.ElL1)
	require.Equal(t, types.StateInsertCash, m.State())
	assert.True(t, m.CashSmallVisible())

	effs := touch(m, types.ElCashSmall)
	assert.Equal(t, []types.RoutineKind{types.RoutineCashSmallIn}, routinesOf(effs))
	assert.False(t, m.CashSmallVisible())

	effs = done(m, types.RoutineCashSmallIn)
	assert.True(t, hasSchedule(effs))
	require.Equal(t, types.StateProcessingDeposit, m.State())

	effs = elapse(m)
	assert.Equal(t, []string{"Ionescu Maria deposited 50 RON"}, logsOf(effs))
	assert.Equal(t, uint64(150), store.Get(0).Balance)
	assert.Equal(t, types.StateDepositReceipt, m.State())
}

func TestBalance(t *testing.T) {
	t.Parallel()
	m, _ := testMachine(t, 100)
	signIn(t, m)

	effs := touch(m, types.ElR3)
	assert.True(t, hasSchedule(effs))
	require.Equal(t, types.StateProcessingBalance, m.State())

	effs = elapse(m)
	assert.Equal(t, []string{"Ionescu Maria's balance is: 100 RON"}, logsOf(effs))
	require.Equal(t, types.StateBalanceNotice, m.State())

	effs = touch(m, types.ElL1)
	assert.Contains(t, routinesOf(effs), types.RoutineReceiptOut)
	require.Equal(t, types.StateBalanceAnother, m.State())
	done(m, types.RoutineReceiptOut)
	assert.True(t, m.ReceiptVisible())

	// answers wait until the receipt is taken
	assert.Empty(t, touch(m, types.ElL1))
	touch(m, types.ElReceipt)
	assert.False(t, m.ReceiptVisible())
	touch(m, types.ElL1)
	assert.Equal(t, types.StateMainMenu, m.State())
}

func TestAmountClearRoundTrip(t *testing.T) {
	t.Parallel()
	m, _ := testMachine(t, 100)
	signIn(t, m)
	touch(m, types.ElL1)

	for _, n := range []int{9, 9, 9, 9, 9, 9, 9} {
		touch(m, key(n))
	}
	assert.Equal(t, "9999999", m.Snapshot().AmountText)
	assert.True(t, m.Snapshot().AtDigitCap)
	assert.Empty(t, touch(m, key(1)))

	touch(m, types.ElClear)
	assert.Equal(t, "0", m.Snapshot().AmountText)
	// OK with no amount entered is refused
	assert.Empty(t, touch(m, types.ElOK))
	assert.Equal(t, types.StateWithdrawAmount, m.State())
}

func TestCancelGating(t *testing.T) {
	t.Parallel()
	m, _ := testMachine(t, 100)

	// no card inside, nothing to cancel
	assert.Empty(t, touch(m, types.ElCancel))

	insertCard(t, m)
	require.Equal(t, types.StatePinEntry, m.State())
	assert.Empty(t, touch(m, types.ElCancel))
	assert.Equal(t, types.StatePinEntry, m.State())

	for _, n := range []int{1, 2, 3, 4} {
		touch(m, key(n))
	}
	touch(m, types.ElOK)
	effs := touch(m, types.ElCancel)
	assert.Contains(t, logsOf(effs), "Ionescu Maria canceled the session")
	assert.Contains(t, routinesOf(effs), types.RoutineCardOut)
	assert.Equal(t, types.StateCardOutAnimating, m.State())
}

func TestExitTouch(t *testing.T) {
	t.Parallel()
	m, _ := testMachine(t, 100)

	effs := touch(m, types.ElExit)
	require.Len(t, effs, 2)
	assert.Equal(t, EffectSound, effs[0].Kind)
	assert.Equal(t, EffectExit, effs[1].Kind)
}
