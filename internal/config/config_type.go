package config

import (
	"github.com/XtremePrime/ATM-Software-RELOADED/internal/haptic"
	sound_config "github.com/XtremePrime/ATM-Software-RELOADED/internal/sound/config"
	"github.com/hashicorp/hcl/v2"
)

type Config struct {
	Window   WindowStruct        `hcl:"window,block"`
	Database DatabaseStruct      `hcl:"database,block"`
	Journal  JournalStruct       `hcl:"journal,block"`
	Sound    sound_config.Config `hcl:"sound,block"`
	Haptic   haptic.Config       `hcl:"haptic,block"`
	UI       UIStruct            `hcl:"ui,block"`
	Remains  hcl.Body            `hcl:",remain"`
}

type WindowStruct struct {
	Title      string `hcl:"title,optional"`
	ShowCursor bool   `hcl:"show_cursor,optional"`
}

type DatabaseStruct struct {
	Path string `hcl:"path,optional"`
}

type JournalStruct struct {
	Dir     string `hcl:"dir,optional"`
	Console bool   `hcl:"console,optional"`
}

type UIStruct struct {
	LogDebug     bool        `hcl:"log_debug,optional"`
	ProcessingMs int         `hcl:"processing_ms,optional"`
	Front        FrontStruct `hcl:"front,block"`
}

// Fixed message set; defaults carry the Romanian screen texts.
type FrontStruct struct {
	MsgWelcome      string `hcl:"msg_welcome,optional"`
	MsgEnterPin     string `hcl:"msg_enter_pin,optional"`
	MsgWrongPin     string `hcl:"msg_wrong_pin,optional"`
	MsgSuspended    string `hcl:"msg_suspended,optional"`
	MsgMenuWithdraw string `hcl:"msg_menu_withdraw,optional"`
	MsgMenuDeposit  string `hcl:"msg_menu_deposit,optional"`
	MsgMenuBalance  string `hcl:"msg_menu_balance,optional"`
	MsgEnterAmount  string `hcl:"msg_enter_amount,optional"`
	MsgConfirm      string `hcl:"msg_confirm,optional"`
	MsgYes          string `hcl:"msg_yes,optional"`
	MsgNo           string `hcl:"msg_no,optional"`
	MsgReceipt      string `hcl:"msg_receipt,optional"`
	MsgAnotherTxn   string `hcl:"msg_another_txn,optional"`
	MsgInsufficient string `hcl:"msg_insufficient,optional"`
	MsgChangeAmount string `hcl:"msg_change_amount,optional"`
	MsgInsertCash   string `hcl:"msg_insert_cash,optional"`
	MsgProcessing   string `hcl:"msg_processing,optional"`
	MsgPressOK      string `hcl:"msg_press_ok,optional"`
	MsgCurrency     string `hcl:"msg_currency,optional"`
}

// config with presetted default values
var cfgDefault = Config{
	Window: WindowStruct{
		Title: "ATM Software RELOADED | v1.0",
	},
	Database: DatabaseStruct{
		Path: "res/database/database.txt",
	},
	Journal: JournalStruct{
		Dir:     ".",
		Console: true,
	},
	UI: UIStruct{
		ProcessingMs: 2000,
		Front: FrontStruct{
			MsgWelcome:      "    Bun venit!\nIntroduceti cardul",
			MsgEnterPin:     "Introduceti codul PIN",
			MsgWrongPin:     "Ati introdus un PIN incorect\n        OK | Cancel?",
			MsgSuspended:    "3 incercari succesive eronate\n  Contul dvs este suspendat\n      Apasati tasta OK",
			MsgMenuWithdraw: "<--- Retragere",
			MsgMenuDeposit:  "Depunere --->",
			MsgMenuBalance:  "Interogare Sold --->",
			MsgEnterAmount:  "Introduceti suma",
			MsgConfirm:      "Confirmare",
			MsgYes:          "<--- Da",
			MsgNo:           "Nu --->",
			MsgReceipt:      "Doriti bonul aferent tranzactiei?",
			MsgAnotherTxn:   "Doriti sa efectuati\no noua tranzactie?",
			MsgInsufficient: "Sold insuficient",
			MsgChangeAmount: "Modificati suma --->",
			MsgInsertCash:   "Plasati numerarul in bancomat",
			MsgProcessing:   "In curs de procesare...",
			MsgPressOK:      "Apasati OK",
			MsgCurrency:     "RON",
		},
	},
}
