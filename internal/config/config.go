package config

import (
	"os"
	"time"

	"github.com/XtremePrime/ATM-Software-RELOADED/helpers"
	"github.com/XtremePrime/ATM-Software-RELOADED/log2"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
)

// ReadConfig loads the HCL config file over the built-in defaults. A missing
// file is not an error: the defaults describe a complete kiosk.
func ReadConfig(log *log2.Log, fileName string) *Config {
	c := cfgDefault
	src, err := os.ReadFile(fileName)
	if err != nil {
		log.WarningF("config file(%v) not read, using defaults (%v)", fileName, err)
		return &c
	}
	file, diags := hclsyntax.ParseConfig(src, fileName, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		log.Fatalf("parse config file(%v) error(%v)", fileName, diags)
	}
	// absent blocks keep their defaults; gohcl reports them as diagnostics
	if diags = gohcl.DecodeBody(file.Body, nil, &c); diags.HasErrors() {
		log.Debugf("config decode diagnostics(%v)", diags)
	}
	return &c
}

// Parse decodes config from source text. Tests only.
func Parse(log *log2.Log, src string) (*Config, error) {
	c := cfgDefault
	file, diags := hclsyntax.ParseConfig([]byte(src), "inline.hcl", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, diags
	}
	_ = gohcl.DecodeBody(file.Body, nil, &c)
	return &c, nil
}

func (c *Config) ProcessingTime() time.Duration {
	return helpers.IntMillisecondDefault(c.UI.ProcessingMs, 2*time.Second)
}
