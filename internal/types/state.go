package types

// State numbers the screens of the transaction flow.
type State uint32

const (
	StateDefault State = iota

	StateInsertCard      // 1 idle, card in slot, waiting for tap
	StateCardInAnimating // 2 card-in routine in flight
	StateProcessingCard  // 3 timed delay +elapsed=PinEntry/Suspended
	StatePinEntry        // 4 accumulating PIN digits
	StateWrongPin        // 5 error dialog +OK=PinEntry
	StateSuspended       // 6 terminal for the session +OK=CardOutAnimating

	StateMainMenu // 7 +L1=WithdrawAmount +R1=DepositAmount +R3=ProcessingBalance

	StateWithdrawAmount    // 8 accumulating amount digits
	StateWithdrawConfirm   // 9 yes/no dialog
	StateWithdrawDispense  // 10 cash-out routine in flight
	StateWithdrawReceipt   // 11 yes/no, gated on cash tray taken
	StateWithdrawAnother   // 12 yes/no, gated on receipt taken
	StateInsufficientFunds // 13 +R3=WithdrawAmount

	StateDepositAmount     // 14
	StateDepositConfirm    // 15
	StateInsertCash        // 16 waiting for cash tray tap
	StateCashInAnimating   // 17 cash-in routine in flight
	StateProcessingDeposit // 18 timed delay +elapsed=credit,DepositReceipt
	StateDepositReceipt    // 19
	StateDepositAnother    // 20

	StateProcessingBalance // 21 timed delay +elapsed=BalanceNotice
	StateBalanceNotice     // 22 shows balance, yes/no for receipt
	StateBalanceAnother    // 23

	StateCardOutAnimating // 24 card-out routine in flight +done=InsertCard

	StateStop // 25
)

var stateNames = map[State]string{
	StateDefault:           "Default",
	StateInsertCard:        "InsertCard",
	StateCardInAnimating:   "CardInAnimating",
	StateProcessingCard:    "ProcessingCard",
	StatePinEntry:          "PinEntry",
	StateWrongPin:          "WrongPin",
	StateSuspended:         "Suspended",
	StateMainMenu:          "MainMenu",
	StateWithdrawAmount:    "WithdrawAmount",
	StateWithdrawConfirm:   "WithdrawConfirm",
	StateWithdrawDispense:  "WithdrawDispense",
	StateWithdrawReceipt:   "WithdrawReceipt",
	StateWithdrawAnother:   "WithdrawAnother",
	StateInsufficientFunds: "InsufficientFunds",
	StateDepositAmount:     "DepositAmount",
	StateDepositConfirm:    "DepositConfirm",
	StateInsertCash:        "InsertCash",
	StateCashInAnimating:   "CashInAnimating",
	StateProcessingDeposit: "ProcessingDeposit",
	StateDepositReceipt:    "DepositReceipt",
	StateDepositAnother:    "DepositAnother",
	StateProcessingBalance: "ProcessingBalance",
	StateBalanceNotice:     "BalanceNotice",
	StateBalanceAnother:    "BalanceAnother",
	StateCardOutAnimating:  "CardOutAnimating",
	StateStop:              "Stop",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "?unknown"
}
