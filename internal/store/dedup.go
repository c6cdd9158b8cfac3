package store

import (
	"context"
	"time"
)

const eventKeyPrefix = "holiday-reportbot:webhook-event:"

// EventDeduper 记录已处理的 webhook 事件，平台重投时跳过
type EventDeduper struct {
	kv  KV
	ttl time.Duration
}

func NewEventDeduper(kv KV, ttl time.Duration) *EventDeduper {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &EventDeduper{kv: kv, ttl: ttl}
}

// Claim 第一次见到该事件返回 true；eventID 为空时一律放行
func (d *EventDeduper) Claim(ctx context.Context, eventID string) (bool, error) {
	if eventID == "" {
		return true, nil
	}
	return d.kv.SetNX(ctx, eventKeyPrefix+eventID, time.Now().UTC().Format(time.RFC3339), d.ttl)
}
