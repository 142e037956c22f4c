package config

import (
	"sync"

	"github.com/BurntSushi/toml"
)

const (
	//APP NAME
	AppName = "Dashboard"
	//Usage
	Usage = "Dashboard Usage"
	//Vresion Num
	Version = "0.0.1"
	//Author Nmae
	Author = "VisStack Developer Group"
	//Email Address
	Email = "dev@vistack.io"
)

var (
	mux sync.RWMutex

	// global config
	C Config
)

type Config struct {
	CommonConf CommonConfig `toml:"common"`
	DataConf   DataConfig   `toml:"data"`
	LogConf    LogConfig    `toml:"log"`
	LDAPConf   LDAPConfig   `toml:"ldap"`
	ThemeConf  ThemeConfig  `toml:"theme"`
	ReportConf ReportConfig `toml:"report"`
}

type CommonConfig struct {
	HTTPBind string   `toml:"httpbind"`
	PID      string   `toml:"pid"`
	Admins   []string `toml:"admins"`
}

type DataConfig struct {
	Dir           string `toml:"dir"`
	ClusterBind   string `toml:"clusterbind"`
	ClusterLeader string `toml:"clusterleader"`
}

// LogConfig is log config struct
type LogConfig struct {
	Dir           string `toml:"logdir"`
	Level         string `toml:"loglevel"`
	Logrotatenum  int    `toml:"logrotatenum"`
	Logrotatesize uint64 `toml:"logrotatesize"`
}

// LDAPConfig auths signin user against the company directory.
type LDAPConfig struct {
	Enable   bool   `toml:"enable"`
	Server   string `toml:"server"`
	Binddn   string `toml:"binddn"`
	Password string `toml:"password"`
	Base     string `toml:"base"`
	UID      string `toml:"uid"`
}

// ThemeConfig names the theme loaded at startup.
type ThemeConfig struct {
	Default string `toml:"default"`
}

// ReportConfig controls the usage metrics pushed to monitor ns
// and the event URL pinged after destructive operations.
type ReportConfig struct {
	Enable   bool   `toml:"enable"`
	NS       string `toml:"ns"`
	Interval int    `toml:"interval"`
	PurgeURL string `toml:"purgeurl"`
}

func ParseConfig(path string) error {
	mux.Lock()
	defer mux.Unlock()

	if _, err := toml.DecodeFile(path, &C); err != nil {
		return err
	}
	return nil
}

func GetConfig() Config {
	mux.RLock()
	defer mux.RUnlock()
	return C
}
