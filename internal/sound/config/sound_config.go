package sound_config

// sound volume use fixed point. 12 = 1.2
type Config struct {
	Disabled      bool   `hcl:"disabled,optional"`
	DefaultVolume int    `hcl:"default_volume,optional"`
	Folder        string `hcl:"folder,optional"`

	Card          string `hcl:"card,optional"`
	CardVolume    int    `hcl:"card_volume,optional"`
	Menu          string `hcl:"menu,optional"`
	MenuVolume    int    `hcl:"menu_volume,optional"`
	Click         string `hcl:"click,optional"`
	ClickVolume   int    `hcl:"click_volume,optional"`
	Key           string `hcl:"key,optional"`
	KeyVolume     int    `hcl:"key_volume,optional"`
	Cash          string `hcl:"cash,optional"`
	CashVolume    int    `hcl:"cash_volume,optional"`
	Receipt       string `hcl:"receipt,optional"`
	ReceiptVolume int    `hcl:"receipt_volume,optional"`
}
