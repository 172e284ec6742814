package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// TTL curto: a disponibilidade muda a cada criação/cancelamento e a
// invalidação explícita só cobre as escritas deste processo.
const slotTTL = 60 * time.Second

// SlotCache guarda listas de horários disponíveis por
// (barbeiro, serviço, dia). Com client nil o cache vira no-op —
// a API funciona sem Redis.
type SlotCache struct {
	rdb *redis.Client
}

func NewSlotCache(rdb *redis.Client) *SlotCache {
	return &SlotCache{rdb: rdb}
}

func slotKey(barberID, serviceID uint, day time.Time) string {
	return fmt.Sprintf("slots:%d:%d:%s", barberID, serviceID, day.Format("2006-01-02"))
}

func (c *SlotCache) enabled() bool {
	return c != nil && c.rdb != nil
}

func (c *SlotCache) Get(ctx context.Context, barberID, serviceID uint, day time.Time) ([]string, bool) {
	if !c.enabled() {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, slotKey(barberID, serviceID, day)).Result()
	if err != nil {
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *SlotCache) Set(ctx context.Context, barberID, serviceID uint, day time.Time, slots []string) {
	if !c.enabled() {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	// erro de cache nunca derruba a request
	c.rdb.Set(ctx, slotKey(barberID, serviceID, day), raw, slotTTL)
}

// InvalidateDay derruba o cache de um dia após criar agendamento.
func (c *SlotCache) InvalidateDay(ctx context.Context, barberID uint, day time.Time) {
	c.deleteByPattern(ctx, fmt.Sprintf("slots:%d:*:%s", barberID, day.Format("2006-01-02")))
}

// InvalidateBarber derruba todos os dias de um barbeiro — usado quando
// agenda, pausas ou bloqueios mudam.
func (c *SlotCache) InvalidateBarber(ctx context.Context, barberID uint) {
	c.deleteByPattern(ctx, fmt.Sprintf("slots:%d:*", barberID))
}

func (c *SlotCache) deleteByPattern(ctx context.Context, pattern string) {
	if !c.enabled() {
		return
	}

	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		c.rdb.Del(ctx, iter.Val())
	}
}
