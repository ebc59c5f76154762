// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"io/ioutil"

	tml "github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

//Config 节点配置
type Config struct {
	Title   string     `json:"title,omitempty"`
	Log     *Log       `json:"log,omitempty"`
	Store   *Store     `json:"store,omitempty"`
	Metrics *Metrics   `json:"metrics,omitempty"`
	Rps     *Rps       `json:"rps,omitempty"`
	Genesis []*Genesis `json:"genesis,omitempty"`
}

//Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `json:"loglevel,omitempty"`
	LogConsoleLevel string `json:"logConsoleLevel,omitempty"`
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string `json:"logFile,omitempty"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `json:"maxFileSize,omitempty"`
	// 最多保存的历史日志文件个数
	MaxBackups uint32 `json:"maxBackups,omitempty"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge uint32 `json:"maxAge,omitempty"`
	// 日志文件名是否使用本地时间（否则使用UTC时间）
	LocalTime bool `json:"localTime,omitempty"`
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool `json:"compress,omitempty"`
	// 是否打印调用源文件和行号
	CallerFile bool `json:"callerFile,omitempty"`
	// 是否打印调用方法
	CallerFunction bool `json:"callerFunction,omitempty"`
	// 输出格式 terminal/logfmt/json, 为空时控制台使用 terminal, 文件使用 logfmt
	Format string `json:"format,omitempty"`
	// 按模块设置级别, 例如 "execs.rps" = "debug", 子模块继承上级模块的设置
	Module map[string]string `json:"module,omitempty"`
}

//Store 状态数据库配置
type Store struct {
	Name    string `json:"name,omitempty"`
	Driver  string `json:"driver,omitempty"`
	DbPath  string `json:"dbPath,omitempty"`
	DbCache int32  `json:"dbCache,omitempty"`
}

//Metrics 执行指标配置
type Metrics struct {
	EnableMetrics bool `json:"enableMetrics,omitempty"`
	// 目前只支持 log
	DataEmitMode string `json:"dataEmitMode,omitempty"`
	// 输出间隔, 单位秒
	Duration int64 `json:"duration,omitempty"`
}

//Rps 猜拳合约配置
type Rps struct {
	// 单局赌注上限, 0 表示不限制
	MaxWager int64 `json:"maxWager,omitempty"`
}

//Genesis 创世分配, 本地节点第一次启动时写入
type Genesis struct {
	Symbol string `json:"symbol,omitempty"`
	Addr   string `json:"addr,omitempty"`
	Amount int64  `json:"amount,omitempty"`
}

//DefaultConfig 内存数据库的最小配置
func DefaultConfig() *Config {
	cfg := &Config{}
	fillDefault(cfg)
	return cfg
}

func fillDefault(cfg *Config) {
	if cfg.Title == "" {
		cfg.Title = "local"
	}
	if cfg.Log == nil {
		cfg.Log = &Log{Loglevel: "error", LogConsoleLevel: "error"}
	}
	if cfg.Store == nil {
		cfg.Store = &Store{}
	}
	if cfg.Store.Name == "" {
		cfg.Store.Name = "state"
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "memdb"
	}
	if cfg.Store.DbPath == "" {
		cfg.Store.DbPath = "datadir"
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &Metrics{}
	}
	if cfg.Rps == nil {
		cfg.Rps = &Rps{}
	}
}

//ParseCfgString 解析 toml 配置
func ParseCfgString(cfgstring string) (*Config, error) {
	var cfg Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, errors.Wrap(err, "decode toml config")
	}
	fillDefault(&cfg)
	if cfg.Rps.MaxWager < 0 {
		return nil, errors.Wrap(ErrInvalidParam, "rps.maxWager")
	}
	for _, g := range cfg.Genesis {
		if g.Amount <= 0 || g.Symbol == "" || g.Addr == "" {
			return nil, errors.Wrapf(ErrInvalidParam, "genesis %s %s", g.Symbol, g.Addr)
		}
	}
	return &cfg, nil
}

//LoadCfg 从文件读取配置
func LoadCfg(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	return ParseCfgString(string(data))
}

//InitCfgString 初始化配置, 失败 panic
func InitCfgString(cfgstring string) *Config {
	cfg, err := ParseCfgString(cfgstring)
	if err != nil {
		panic(err)
	}
	return cfg
}

// InitCfg 初始化配置
func InitCfg(path string) *Config {
	cfg, err := LoadCfg(path)
	if err != nil {
		panic(err)
	}
	return cfg
}
