package ui

import (
	"strconv"
	"time"

	"github.com/XtremePrime/ATM-Software-RELOADED/internal/account"
	"github.com/XtremePrime/ATM-Software-RELOADED/internal/sound"
	"github.com/XtremePrime/ATM-Software-RELOADED/internal/types"
	"github.com/XtremePrime/ATM-Software-RELOADED/log2"
)

const (
	pinDigits    = 4
	amountDigits = 7
)

// Machine is the transaction state machine. Step is the only way state
// advances: it consumes one event, mutates machine-owned data, and returns
// the side effects for the driver to execute in order. Nothing in here
// talks to audio, haptics, journal or the clock directly, which is what
// makes the whole flow table-testable.
type Machine struct {
	log        *log2.Log
	store      *account.Store
	processing time.Duration

	state   types.State
	session int // index into store, -1 while unauthenticated

	pin         uint16
	pinCount    uint8
	pinRetry    uint8
	amount      uint64
	amountCount uint8

	// blocked survives card ejection: a card blocked by three wrong PINs
	// stays blocked until the machine is power cycled.
	blocked       bool
	suspendedOnce bool

	cardVisible      bool
	cashLargeVisible bool
	cashSmallVisible bool
	receiptVisible   bool
}

func NewMachine(log *log2.Log, store *account.Store, processing time.Duration) *Machine {
	m := &Machine{log: log, store: store, processing: processing}
	m.signOut()
	return m
}

// signOut clears all per-session scratch and returns the machine to the
// idle screen. blocked and suspendedOnce deliberately survive.
func (m *Machine) signOut() {
	m.session = -1
	m.pin = 0
	m.pinCount = 0
	m.pinRetry = 0
	m.amount = 0
	m.amountCount = 0
	m.cardVisible = true
	m.cashLargeVisible = false
	m.cashSmallVisible = false
	m.receiptVisible = false
	m.state = types.StateInsertCard
}

func (m *Machine) State() types.State     { return m.state }
func (m *Machine) Blocked() bool          { return m.blocked }
func (m *Machine) SessionIndex() int      { return m.session }
func (m *Machine) CardVisible() bool      { return m.cardVisible }
func (m *Machine) CashLargeVisible() bool { return m.cashLargeVisible }
func (m *Machine) CashSmallVisible() bool { return m.cashSmallVisible }
func (m *Machine) ReceiptVisible() bool   { return m.receiptVisible }

func (m *Machine) Step(ev types.Event) []Effect {
	before := m.state
	var effs []Effect
	switch ev.Kind {
	case types.EventTouch:
		effs = m.stepTouch(ev.Element)
	case types.EventElapsed:
		effs = m.stepElapsed()
	case types.EventRoutineDone:
		effs = m.stepRoutineDone(ev.Routine)
	case types.EventStop:
		m.state = types.StateStop
	}
	if m.state != before {
		m.log.Debugf("ui state %s -> %s", before, m.state)
	}
	return effs
}

func (m *Machine) stepTouch(el types.ElementCode) []Effect {
	var effs []Effect

	switch m.state {
	case types.StateInsertCard:
		if el == types.ElCard && m.cardVisible {
			m.cardVisible = false
			m.suspendedOnce = false
			m.state = types.StateCardInAnimating
			effs = append(effs, routineEffect(types.RoutineCardIn))
		}

	case types.StatePinEntry:
		effs = m.touchPinEntry(el)

	case types.StateWrongPin:
		if el == types.ElOK {
			m.state = types.StatePinEntry
			effs = append(effs, routineEffect(types.RoutineMenuSound))
		}

	case types.StateSuspended:
		if el == types.ElOK {
			m.state = types.StateCardOutAnimating
			effs = append(effs,
				routineEffect(types.RoutineMenuSound),
				routineEffect(types.RoutineCardOut))
		}

	case types.StateMainMenu:
		switch el {
		case types.ElL1:
			m.state = types.StateWithdrawAmount
			effs = append(effs, routineEffect(types.RoutineMenuSound))
		case types.ElR1:
			m.state = types.StateDepositAmount
			effs = append(effs, routineEffect(types.RoutineMenuSound))
		case types.ElR3:
			m.state = types.StateProcessingBalance
			effs = append(effs,
				routineEffect(types.RoutineMenuSound),
				scheduleEffect(m.processing))
		}

	case types.StateWithdrawAmount:
		effs = m.touchAmount(el, true)

	case types.StateWithdrawConfirm:
		switch el {
		case types.ElL1:
			m.state = types.StateWithdrawDispense
			effs = append(effs,
				routineEffect(types.RoutineMenuSound),
				routineEffect(types.RoutineCashLargeOut))
		case types.ElR3:
			m.amount = 0
			m.state = types.StateWithdrawAmount
			effs = append(effs, routineEffect(types.RoutineMenuSound))
		}

	case types.StateWithdrawReceipt:
		// cash must be taken off the tray before the dialog responds
		switch {
		case el == types.ElL1 && !m.cashLargeVisible:
			m.state = types.StateWithdrawAnother
			effs = append(effs,
				routineEffect(types.RoutineMenuSound),
				routineEffect(types.RoutineReceiptOut))
		case el == types.ElR3 && !m.cashLargeVisible:
			m.state = types.StateWithdrawAnother
			effs = append(effs, routineEffect(types.RoutineMenuSound))
		case el == types.ElCashLarge && m.cashLargeVisible:
			m.cashLargeVisible = false
		}

	case types.StateWithdrawAnother, types.StateDepositAnother, types.StateBalanceAnother:
		effs = m.touchAnother(el)

	case types.StateInsufficientFunds:
		if el == types.ElR3 {
			m.state = types.StateWithdrawAmount
			effs = append(effs, routineEffect(types.RoutineMenuSound))
		}

	case types.StateDepositAmount:
		effs = m.touchAmount(el, false)

	case types.StateDepositConfirm:
		switch el {
		case types.ElL1:
			m.cashSmallVisible = true
			m.state = types.StateInsertCash
			effs = append(effs, routineEffect(types.RoutineMenuSound))
		case types.ElR3:
			m.amount = 0
			m.state = types.StateDepositAmount
			effs = append(effs, routineEffect(types.RoutineMenuSound))
		}

	case types.StateInsertCash:
		if el == types.ElCashSmall && m.cashSmallVisible {
			m.cashSmallVisible = false
			m.state = types.StateCashInAnimating
			effs = append(effs, routineEffect(types.RoutineCashSmallIn))
		}

	case types.StateDepositReceipt:
		switch {
		case el == types.ElL1 && !m.cashSmallVisible:
			m.state = types.StateDepositAnother
			effs = append(effs,
				routineEffect(types.RoutineMenuSound),
				routineEffect(types.RoutineReceiptOut))
		case el == types.ElR3 && !m.cashSmallVisible:
			m.state = types.StateDepositAnother
			effs = append(effs, routineEffect(types.RoutineMenuSound))
		}

	case types.StateBalanceNotice:
		switch el {
		case types.ElL1:
			m.state = types.StateBalanceAnother
			effs = append(effs,
				routineEffect(types.RoutineMenuSound),
				routineEffect(types.RoutineReceiptOut))
		case types.ElR3:
			m.state = types.StateBalanceAnother
			effs = append(effs, routineEffect(types.RoutineMenuSound))
		}
	}

	// global elements, evaluated after the per-state handling
	switch el {
	case types.ElCancel:
		effs = append(effs, m.cancel()...)
	case types.ElExit:
		effs = append(effs, soundEffect(sound.ClipClick), Effect{Kind: EffectExit})
	}
	return effs
}

func (m *Machine) touchPinEntry(el types.ElementCode) []Effect {
	if m.pinCount < pinDigits {
		switch {
		case el.IsDigit():
			d := el.Digit()
			// leading zeros are not part of a PIN
			if d == 0 && m.pin == 0 {
				return nil
			}
			m.pin = m.pin*10 + uint16(d)
			m.pinCount++
			return []Effect{routineEffect(types.RoutineKeySound)}
		case el == types.ElClear:
			m.pin = 0
			m.pinCount = 0
			return []Effect{routineEffect(types.RoutineMenuSound)}
		}
		return nil
	}

	switch el {
	case types.ElClear:
		m.pin = 0
		m.pinCount = 0
		return []Effect{routineEffect(types.RoutineMenuSound)}
	case types.ElOK:
		return m.authenticate()
	}
	return nil
}

func (m *Machine) authenticate() []Effect {
	effs := []Effect{routineEffect(types.RoutineMenuSound)}
	idx, ok := m.store.FindByPIN(m.pin)
	m.pin = 0
	m.pinCount = 0
	if ok {
		m.session = idx
		m.pinRetry = 0
		a := m.store.Get(idx)
		m.state = types.StateMainMenu
		return append(effs,
			logEffect("Cardholder successfully authenticated:"),
			rawLogEffect("\t\t\t  Full Name: %s %s", a.LastName, a.FirstName),
			rawLogEffect("\t\t\t  IBAN: %s", a.IBAN))
	}

	m.pinRetry++
	if m.pinRetry >= 3 {
		m.blocked = true
		effs = append(effs, logEffect("Cardholder entered a wrong PIN 3 times in a row"))
		return append(effs, m.enterSuspended()...)
	}
	m.state = types.StateWrongPin
	return append(effs, logEffect("Cardholder entered a wrong PIN"))
}

// enterSuspended journals the suspension once per inserted card.
func (m *Machine) enterSuspended() []Effect {
	m.state = types.StateSuspended
	if m.suspendedOnce {
		return nil
	}
	m.suspendedOnce = true
	return []Effect{logEffect("ACCOUNT SUSPENDED")}
}

func (m *Machine) touchAmount(el types.ElementCode, withdraw bool) []Effect {
	if m.amountCount < amountDigits {
		switch {
		case el.IsDigit():
			d := uint64(el.Digit())
			if d == 0 && m.amount == 0 {
				return nil
			}
			m.amount = m.amount*10 + d
			m.amountCount++
			return []Effect{routineEffect(types.RoutineKeySound)}
		case el == types.ElClear:
			m.amount = 0
			m.amountCount = 0
			return []Effect{routineEffect(types.RoutineMenuSound)}
		case el == types.ElOK:
			return m.confirmAmount(withdraw)
		}
		return nil
	}

	switch el {
	case types.ElClear:
		m.amount = 0
		m.amountCount = 0
		return []Effect{routineEffect(types.RoutineMenuSound)}
	case types.ElOK:
		return m.confirmAmount(withdraw)
	}
	return nil
}

func (m *Machine) confirmAmount(withdraw bool) []Effect {
	if m.amount == 0 {
		return nil
	}
	m.amountCount = 0
	if !withdraw {
		m.state = types.StateDepositConfirm
		return []Effect{routineEffect(types.RoutineMenuSound)}
	}
	if m.amount <= m.store.Get(m.session).Balance {
		m.state = types.StateWithdrawConfirm
	} else {
		m.amount = 0
		m.state = types.StateInsufficientFunds
	}
	return []Effect{routineEffect(types.RoutineMenuSound)}
}

// touchAnother handles the shared "another transaction?" dialog. The
// receipt must be taken off the tray before either answer is accepted.
func (m *Machine) touchAnother(el types.ElementCode) []Effect {
	switch {
	case el == types.ElL1 && !m.receiptVisible:
		m.state = types.StateMainMenu
		return []Effect{routineEffect(types.RoutineMenuSound)}
	case el == types.ElR3 && !m.receiptVisible && !m.cardVisible:
		name := m.store.Get(m.session).FullName()
		m.state = types.StateCardOutAnimating
		return []Effect{
			routineEffect(types.RoutineMenuSound),
			logEffect("%s finished the session", name),
			routineEffect(types.RoutineCardOut),
		}
	case el == types.ElReceipt && m.receiptVisible:
		m.receiptVisible = false
	}
	return nil
}

// cancel ejects the card from any mid-session screen. It is rejected on
// screens without a swallowed card and during card processing.
func (m *Machine) cancel() []Effect {
	if m.cardVisible {
		return nil
	}
	switch m.state {
	case types.StateInsertCard, types.StatePinEntry, types.StateWrongPin,
		types.StateSuspended, types.StateProcessingCard:
		return nil
	}
	effs := []Effect{routineEffect(types.RoutineMenuSound)}
	if m.session >= 0 {
		effs = append(effs, logEffect("%s canceled the session", m.store.Get(m.session).FullName()))
	}
	m.state = types.StateCardOutAnimating
	return append(effs, routineEffect(types.RoutineCardOut))
}

func (m *Machine) stepElapsed() []Effect {
	switch m.state {
	case types.StateProcessingCard:
		if m.blocked {
			return m.enterSuspended()
		}
		m.state = types.StatePinEntry

	case types.StateProcessingDeposit:
		m.store.Credit(m.session, m.amount)
		a := m.store.Get(m.session)
		eff := logEffect("%s deposited %d RON", a.FullName(), m.amount)
		m.amount = 0
		m.state = types.StateDepositReceipt
		return []Effect{eff}

	case types.StateProcessingBalance:
		a := m.store.Get(m.session)
		m.amount = 0
		m.state = types.StateBalanceNotice
		return []Effect{logEffect("%s's balance is: %d RON", a.FullName(), a.Balance)}
	}
	return nil
}

func (m *Machine) stepRoutineDone(r types.RoutineKind) []Effect {
	switch r {
	case types.RoutineCardIn:
		m.state = types.StateProcessingCard
		return []Effect{
			logEffect("The cardholder inserted a VISA Classic Card"),
			scheduleEffect(m.processing),
		}

	case types.RoutineCardOut:
		m.signOut()
		return []Effect{logEffect("The card was ejected")}

	case types.RoutineCashLargeOut:
		m.cashLargeVisible = true
		m.store.Debit(m.session, m.amount)
		a := m.store.Get(m.session)
		eff := logEffect("%s withdrew %d RON", a.FullName(), m.amount)
		m.amount = 0
		m.state = types.StateWithdrawReceipt
		return []Effect{eff}

	case types.RoutineCashSmallIn:
		m.state = types.StateProcessingDeposit
		return []Effect{scheduleEffect(m.processing)}

	case types.RoutineReceiptOut:
		m.receiptVisible = true
	}
	return nil
}

// Snapshot is the read-only view the renderer draws from.
type Snapshot struct {
	State            types.State
	PinCount         int
	AmountText       string
	BalanceText      string
	FullName         string
	IBAN             string
	CardVisible      bool
	CashLargeVisible bool
	CashSmallVisible bool
	ReceiptVisible   bool
	AtDigitCap       bool
}

func (m *Machine) Snapshot() Snapshot {
	s := Snapshot{
		State:            m.state,
		PinCount:         int(m.pinCount),
		AmountText:       strconv.FormatUint(m.amount, 10),
		CardVisible:      m.cardVisible,
		CashLargeVisible: m.cashLargeVisible,
		CashSmallVisible: m.cashSmallVisible,
		ReceiptVisible:   m.receiptVisible,
		AtDigitCap:       m.pinCount >= pinDigits || m.amountCount >= amountDigits,
	}
	if m.session >= 0 {
		a := m.store.Get(m.session)
		s.FullName = a.FullName()
		s.IBAN = a.IBAN
		s.BalanceText = strconv.FormatUint(a.Balance, 10)
	}
	return s
}

func (m *Machine) XXX_testSetState(s types.State) { m.state = s }

func (m *Machine) XXX_testSignIn(idx int) {
	m.session = idx
	m.cardVisible = false
	m.state = types.StateMainMenu
}
