// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log 日志相关接口以及函数
package log

import (
	"os"
	"strings"

	"github.com/33cn/rps/types"
	log15 "github.com/inconshreveable/log15"
	"gopkg.in/natefinch/lumberjack.v2"
)

//SetLogLevel 设置控制台日志输出级别
func SetLogLevel(logLevel string) {
	log15.Root().SetHandler(getConsoleLogHandler(&types.Log{LogConsoleLevel: logLevel}))
}

//SetFileLog 设置文件日志和控制台日志信息, 没有日志文件时只输出到控制台
func SetFileLog(log *types.Log) {
	if log == nil {
		log = &types.Log{LogFile: "logs/rps.log"}
	}
	fillDefaultValue(log)
	if log.LogFile == "" {
		log15.Root().SetHandler(getConsoleLogHandler(log))
		return
	}
	log15.Root().SetHandler(log15.MultiHandler(getConsoleLogHandler(log), getFileLogHandler(log)))
}

// 保证默认性况下为error级别，防止打印太多日志
func fillDefaultValue(log *types.Log) {
	if log.Loglevel == "" {
		log.Loglevel = log15.LvlError.String()
	}
	if log.LogConsoleLevel == "" {
		log.LogConsoleLevel = log15.LvlError.String()
	}
}

func isWindows() bool {
	return os.PathSeparator == '\\' && os.PathListSeparator == ';'
}

func getFormat(name string, def log15.Format) log15.Format {
	switch name {
	case "json":
		return log15.JsonFormat()
	case "logfmt":
		return log15.LogfmtFormat()
	case "terminal":
		return log15.TerminalFormat()
	}
	return def
}

func getConsoleLogHandler(log *types.Log) log15.Handler {
	def := log15.TerminalFormat()
	if isWindows() {
		def = log15.LogfmtFormat()
	}
	return levelHandler(log.LogConsoleLevel, log.Module, log15.StreamHandler(os.Stderr, getFormat(log.Format, def)))
}

func getFileLogHandler(log *types.Log) log15.Handler {
	rotateLogger := &lumberjack.Logger{
		Filename:   log.LogFile,
		MaxSize:    int(log.MaxFileSize),
		MaxBackups: int(log.MaxBackups),
		MaxAge:     int(log.MaxAge),
		LocalTime:  log.LocalTime,
		Compress:   log.Compress,
	}

	fileh := levelHandler(log.Loglevel, log.Module, log15.StreamHandler(rotateLogger, getFormat(log.Format, log15.LogfmtFormat())))

	// 增加打印调用源文件、方法和代码行的判断
	if log.CallerFile {
		fileh = log15.CallerFileHandler(fileh)
	}
	if log.CallerFunction {
		fileh = log15.CallerFuncHandler(fileh)
	}
	return fileh
}

// 没有模块设置时只按全局级别过滤
func levelHandler(lvlString string, modules map[string]string, h log15.Handler) log15.Handler {
	maxLvl := getLevel(lvlString)
	if len(modules) == 0 {
		return log15.LvlFilterHandler(maxLvl, h)
	}
	levels := make(map[string]log15.Lvl, len(modules))
	for name, lvl := range modules {
		levels[name] = getLevel(lvl)
	}
	return log15.FilterHandler(func(r *log15.Record) bool {
		return r.Lvl <= moduleLevel(levels, moduleOf(r.Ctx), maxLvl)
	}, h)
}

// execs.rps 没有设置时依次查找 execs
func moduleLevel(levels map[string]log15.Lvl, module string, def log15.Lvl) log15.Lvl {
	for module != "" {
		if lvl, ok := levels[module]; ok {
			return lvl
		}
		i := strings.LastIndexByte(module, '.')
		if i < 0 {
			break
		}
		module = module[:i]
	}
	return def
}

func moduleOf(ctx []interface{}) string {
	for i := 0; i+1 < len(ctx); i += 2 {
		if k, ok := ctx[i].(string); ok && k == "module" {
			v, _ := ctx[i+1].(string)
			return v
		}
	}
	return ""
}

func getLevel(lvlString string) log15.Lvl {
	lvl, err := log15.LvlFromString(lvlString)
	if err != nil {
		// 日志级别配置不正确时默认为error级别
		return log15.LvlError
	}
	return lvl
}

//New new
func New(ctx ...interface{}) log15.Logger {
	return log15.Root().New(ctx...)
}
