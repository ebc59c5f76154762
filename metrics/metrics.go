// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 执行指标的注册以及输出
package metrics

import (
	"fmt"
	"time"

	"github.com/33cn/rps/types"
	log15 "github.com/inconshreveable/log15"
	go_metrics "github.com/rcrowley/go-metrics"
)

var (
	log = log15.New("module", "rps metrics")
)

//NewRegistry 打开指标时使用全局 registry, 否则使用私有 registry
func NewRegistry(cfg *types.Metrics) go_metrics.Registry {
	if cfg != nil && cfg.EnableMetrics {
		return go_metrics.DefaultRegistry
	}
	return go_metrics.NewRegistry()
}

//StartMetrics 根据配置文件相关参数启动指标输出, 返回的 stop 用于结束输出
func StartMetrics(cfg *types.Metrics, r go_metrics.Registry) (stop func()) {
	stop = func() {}
	if cfg == nil || !cfg.EnableMetrics {
		log.Info("Metrics data is not enabled to emit")
		return
	}
	duration := time.Duration(cfg.Duration) * time.Second
	if duration <= 0 {
		duration = time.Minute
	}
	switch cfg.DataEmitMode {
	case "log", "":
		done := make(chan struct{})
		go emit(r, duration, done)
		return func() { close(done) }
	default:
		log.Error("startMetrics", "The dataEmitMode set is not supported now ", cfg.DataEmitMode)
		return
	}
}

func emit(r go_metrics.Registry, duration time.Duration, done chan struct{}) {
	ticker := time.NewTicker(duration)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			for name, value := range Snapshot(r) {
				log.Info("metrics", "name", name, "value", value)
			}
		case <-done:
			return
		}
	}
}

//Snapshot 计数器以及计时器的当前值, 计时器输出次数和平均耗时(纳秒)
func Snapshot(r go_metrics.Registry) map[string]int64 {
	out := make(map[string]int64)
	r.Each(func(name string, i interface{}) {
		switch m := i.(type) {
		case go_metrics.Counter:
			out[name] = m.Count()
		case go_metrics.Timer:
			out[name+".count"] = m.Count()
			out[name+".mean"] = int64(m.Mean())
		case go_metrics.Gauge:
			out[name] = m.Value()
		default:
			out[name] = 0
			log.Debug("Snapshot", "name", name, "type", fmt.Sprintf("%T", i))
		}
	})
	return out
}
