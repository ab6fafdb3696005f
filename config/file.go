package config

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
)

var ErrNoTargetFiles = errors.New("no target config files found")

// ReadTargetConfigs walks the directory and loads every json file
// except the main config as a target.
func ReadTargetConfigs(path string) ([]TargetConfig, error) {
	var cfgs []TargetConfig
	var filePaths []string
	err := filepath.Walk(path, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".json" {
			return nil
		}
		if info.Name() == MainConfigFileName {
			return nil
		}
		filePaths = append(filePaths, path)
		return nil
	})
	if err != nil {
		return cfgs, err
	}
	if len(filePaths) == 0 {
		return cfgs, ErrNoTargetFiles
	}
	for _, filePath := range filePaths {
		cfg, err := LoadTargetCfgFromPath(filePath)
		if err != nil {
			return nil, err
		}
		cfgs = append(cfgs, cfg)
	}
	return cfgs, nil
}

func LoadTargetCfgFromPath(path string) (TargetConfig, error) {
	bb, err := ioutil.ReadFile(path)
	if err != nil {
		return TargetConfig{}, err
	}
	cfg := DefaultTargetConfig()
	if err := json.Unmarshal(bb, &cfg); err != nil {
		return cfg, err
	}
	cfg.FilePath = path
	if cfg.Name == "" {
		cfg.Name = cfg.Address
	}
	return cfg, nil
}

// ReadMcPingConfig reads the main config file, falling back to the
// defaults when the file doesnt exist.
func ReadMcPingConfig(path string) (McPingConfig, error) {
	cfg := DefaultMcPingConfig()
	bb, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := json.Unmarshal(bb, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
