package validation

import (
	"fmt"
	"strings"

	"github.com/magni-/trm6-ch3-professional-accounting/internal/config"
	"github.com/magni-/trm6-ch3-professional-accounting/internal/constants"
	"github.com/magni-/trm6-ch3-professional-accounting/internal/ui"
)

// ValidateConfig checks that cfg names a usable source and sane display and
// logging settings.
func ValidateConfig(cfg *config.Config) error {
	if err := ValidateSource(cfg.Account); err != nil {
		return err
	}

	if err := ValidateMinorUnits(cfg.Display.MinorUnits); err != nil {
		return err
	}

	if _, err := ui.ParseLogLevel(cfg.Log.Level); err != nil {
		return err
	}

	return nil
}

func ValidateSource(acc config.AccountConfig) error {
	switch strings.ToLower(strings.TrimSpace(acc.Source)) {
	case constants.SourceJSON:
		if strings.TrimSpace(acc.File) == "" {
			return fmt.Errorf("account file can't be empty")
		}
	case constants.SourceSQLite:
		if strings.TrimSpace(acc.Database) == "" {
			return fmt.Errorf("account database can't be empty")
		}
		if strings.TrimSpace(acc.ID) == "" {
			return fmt.Errorf("account id is required when source is '%s'", constants.SourceSQLite)
		}
	default:
		return fmt.Errorf("invalid account source '%s' (must be %s or %s)",
			acc.Source, constants.SourceJSON, constants.SourceSQLite)
	}
	return nil
}

func ValidateMinorUnits(units int32) error {
	if units < 0 || units > constants.MaxMinorUnits {
		return fmt.Errorf("minor units must be between 0 and %d", constants.MaxMinorUnits)
	}
	return nil
}
