package common

import (
    "os"
    "log"
    "encoding/json"
    "path/filepath"

    nes "github.com/kazzmir/nescore/lib"
)

const CurrentVersion = 1

type ConfigData struct {
    Version int `json:"version,omitempty"`
    /* print every instruction as it executes */
    Trace bool `json:"trace,omitempty"`
    /* 0 means run until brk */
    MaxSteps uint64 `json:"max-steps,omitempty"`
    CPU nes.Options `json:"cpu"`
}

/* make the directory where the config file lives, which is ~/.config/nescore on linux */
func GetOrCreateConfigDir() (string, error) {
    configDir, err := os.UserConfigDir()
    if err != nil {
        return "", err
    }
    configPath := filepath.Join(configDir, "nescore")
    err = os.MkdirAll(configPath, 0755)
    if err != nil {
        return "", err
    }

    return configPath, nil
}

func DefaultConfigData() ConfigData {
    return ConfigData{
        Version: CurrentVersion,
        MaxSteps: 1000000,
    }
}

func ConfigFile() (string, error) {
    configPath, err := GetOrCreateConfigDir()
    if err != nil {
        return "", err
    }
    return filepath.Join(configPath, "config.json"), nil
}

func LoadConfigData() (ConfigData, error) {
    config, err := ConfigFile()
    if err != nil {
        return DefaultConfigData(), err
    }
    return LoadConfigDataFrom(config)
}

func LoadConfigDataFrom(config string) (ConfigData, error) {
    file, err := os.Open(config)
    if err != nil {
        return DefaultConfigData(), err
    }
    defer file.Close()

    var data ConfigData
    decoder := json.NewDecoder(file)
    err = decoder.Decode(&data)
    if err != nil {
        log.Printf("Could not load config data: %v", err)
        return DefaultConfigData(), err
    }

    if data.Version != CurrentVersion {
        log.Printf("Warning: ignoring config version %v, expected %v", data.Version, CurrentVersion)
        return DefaultConfigData(), nil
    }

    return data, nil
}

func SaveConfigData(data ConfigData) error {
    config, err := ConfigFile()
    if err != nil {
        return err
    }
    return SaveConfigDataTo(config, data)
}

/* write the config as indented json, replacing whatever was there */
func SaveConfigDataTo(config string, data ConfigData) error {
    file, err := os.Create(config)
    if err != nil {
        return err
    }
    defer file.Close()

    data.Version = CurrentVersion

    encoder := json.NewEncoder(file)
    encoder.SetIndent("", "  ")
    return encoder.Encode(data)
}
