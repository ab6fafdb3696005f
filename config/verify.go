package config

import (
	"fmt"
	"time"
)

type DuplicateTargetName struct {
	Cfg1Path string
	Cfg2Path string
	Name     string
}

func (err *DuplicateTargetName) Error() string {
	return fmt.Sprintf("target name '%s' has been found in %s and %s", err.Name, err.Cfg1Path, err.Cfg2Path)
}

type InvalidTarget struct {
	CfgPath string
	Reason  string
}

func (err *InvalidTarget) Error() string {
	return fmt.Sprintf("invalid target config %s: %s", err.CfgPath, err.Reason)
}

// VerifyConfigs reports every problem it finds instead of stopping
// at the first one, so a config directory can be fixed in one go.
func VerifyConfigs(cfgs []TargetConfig) []error {
	errors := []error{}
	names := make(map[string]int)
	for index, cfg := range cfgs {
		if cfg.Address == "" {
			errors = append(errors, &InvalidTarget{
				CfgPath: cfg.FilePath,
				Reason:  "address is empty",
			})
		}
		for _, field := range []struct {
			name  string
			value string
		}{
			{"dialTimeout", cfg.DialTimeout},
			{"ioDeadline", cfg.IODeadline},
			{"statusCooldown", cfg.StatusCooldown},
			{"stateCooldown", cfg.StateCooldown},
		} {
			if _, err := time.ParseDuration(field.value); err != nil {
				errors = append(errors, &InvalidTarget{
					CfgPath: cfg.FilePath,
					Reason:  fmt.Sprintf("%s is not a duration: %v", field.name, err),
				})
			}
		}
		otherIndex, ok := names[cfg.Name]
		if ok {
			errors = append(errors, &DuplicateTargetName{
				Name:     cfg.Name,
				Cfg1Path: cfg.FilePath,
				Cfg2Path: cfgs[otherIndex].FilePath,
			})
			continue
		}
		names[cfg.Name] = index
	}
	return errors
}
