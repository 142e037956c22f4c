package board

import (
	"sync"
	"time"

	"github.com/vistack/dashboard/common"
	"github.com/vistack/dashboard/config"

	m "github.com/lodastack/models"
	"github.com/pquerna/ffjson/ffjson"
)

const usageKey = "usage"

// usageInfo counts the operations served since the counters were
// restored, persisted to the meta bucket on an interval.
type usageInfo struct {
	sync.RWMutex
	Counters map[string]int64
}

func (u *usageInfo) Byte() ([]byte, error) {
	u.RLock()
	defer u.RUnlock()
	return ffjson.Marshal(u.Counters)
}

func (b *Board) incrUsage(op string) {
	b.usage.Lock()
	b.usage.Counters[op]++
	b.usage.Unlock()
}

// GetUsage return a copy of the usage counters.
func (b *Board) GetUsage() map[string]int64 {
	b.usage.RLock()
	defer b.usage.RUnlock()
	out := make(map[string]int64, len(b.usage.Counters))
	for op, count := range b.usage.Counters {
		out[op] = count
	}
	return out
}

func (b *Board) initUsage() error {
	v, err := b.cluster.View([]byte(metaBucket), []byte(usageKey))
	if err != nil {
		return err
	}
	if len(v) == 0 {
		return nil
	}
	counters := make(map[string]int64)
	if err := ffjson.Unmarshal(v, &counters); err != nil {
		b.logger.Error("restore usage fail, start from empty:", err.Error())
		return nil
	}
	b.usage.Lock()
	b.usage.Counters = counters
	b.usage.Unlock()
	return nil
}

func (b *Board) saveUsage() error {
	data, err := b.usage.Byte()
	if err != nil {
		return err
	}
	return b.cluster.Update([]byte(metaBucket), []byte(usageKey), data)
}

// startLoops starts the monitor cache sweep and the usage report loop.
func (b *Board) startLoops() {
	go func() {
		c := time.Tick(time.Minute * 10)
		for {
			select {
			case <-c:
				b.refreshMonitorCaches()
			}
		}
	}()

	go func() {
		if !config.C.ReportConf.Enable || config.C.ReportConf.Interval <= 0 {
			return
		}
		c := time.Tick(time.Duration(config.C.ReportConf.Interval) * time.Minute)
		for {
			select {
			case <-c:
				if err := b.saveUsage(); err != nil {
					b.logger.Error("persist usage fail:", err.Error())
				}
				b.reportUsage()
			}
		}
	}()
}

// reportUsage pushes the usage counters to the monitor ns. The send is
// fire-and-forget, a failure only logs.
func (b *Board) reportUsage() {
	ns := config.C.ReportConf.NS
	if ns == "" {
		return
	}
	snapshot := b.GetUsage()
	if len(snapshot) == 0 {
		return
	}

	now := time.Now().Unix()
	metrics := make([]m.Metric, 0, len(snapshot))
	for op, count := range snapshot {
		metrics = append(metrics, m.Metric{
			Name:      "dashboard." + op,
			Timestamp: now,
			Tags:      map[string]string{"service": "dashboard"},
			Value:     count,
		})
	}
	if err := common.Send(ns, metrics); err != nil {
		b.logger.Error("report usage fail:", err.Error())
	}
}
