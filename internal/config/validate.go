package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var knownOutputs = map[string]bool{"plain": true, "pretty": true, "json": true, "tui": true, "html": true}

var knownLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// CheckConfigValidity reports every problem in the effective config at once.
func CheckConfigValidity(v *viper.Viper) error {
	var errs []error

	domain := strings.TrimSpace(v.GetString("site.domain"))
	if domain == "" {
		errs = append(errs, errors.New("site.domain is required"))
	} else if strings.ContainsAny(domain, " \t?#") {
		errs = append(errs, fmt.Errorf("site.domain %q is not a host name", domain))
	}
	if out := v.GetString("output"); !knownOutputs[out] {
		errs = append(errs, fmt.Errorf("output %q must be one of plain|pretty|json|tui|html", out))
	}
	if v.GetInt("render.word_wrap") < 0 {
		errs = append(errs, errors.New("render.word_wrap must not be negative"))
	}
	if strings.TrimSpace(v.GetString("render.date_format")) == "" {
		errs = append(errs, errors.New("render.date_format is required"))
	}
	if lvl := strings.ToLower(v.GetString("log.level")); !knownLevels[lvl] {
		errs = append(errs, fmt.Errorf("log.level %q must be one of debug|info|warn|error", lvl))
	}
	if v.GetInt("tui.filter_limit") <= 0 {
		errs = append(errs, errors.New("tui.filter_limit must be greater than 0"))
	}
	if strings.TrimSpace(v.GetString("http_addr")) == "" {
		errs = append(errs, errors.New("http_addr is required"))
	}
	return errors.Join(errs...)
}
