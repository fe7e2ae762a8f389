package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const availabilityTTL = 60 * time.Second

// AvailabilityCache guarda, por profissional+dia, os horários livres de
// cada serviço. TTL curto: toda mutação de agenda invalida o dia, o TTL
// só cobre o que escapar. Sem redis configurado o cache vira no-op.
type AvailabilityCache struct {
	rdb *redis.Client
}

func NewAvailabilityCache(rdb *redis.Client) *AvailabilityCache {
	if rdb == nil {
		return nil
	}
	return &AvailabilityCache{rdb: rdb}
}

func dayKey(professionalID uint, date string) string {
	return fmt.Sprintf("avail:%d:%s", professionalID, date)
}

func (c *AvailabilityCache) Get(
	ctx context.Context,
	professionalID uint,
	serviceID uint,
	date string,
) ([]string, bool) {

	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.HGet(ctx, dayKey(professionalID, date), strconv.Itoa(int(serviceID))).Result()
	if err != nil {
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	professionalID uint,
	serviceID uint,
	date string,
	slots []string,
) {

	if c == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	key := dayKey(professionalID, date)
	pipe := c.rdb.Pipeline()
	pipe.HSet(ctx, key, strconv.Itoa(int(serviceID)), raw)
	pipe.Expire(ctx, key, availabilityTTL)
	_, _ = pipe.Exec(ctx)
}

// InvalidateDay descarta todos os serviços do dia do profissional.
func (c *AvailabilityCache) InvalidateDay(
	ctx context.Context,
	professionalID uint,
	date string,
) {

	if c == nil {
		return
	}
	c.rdb.Del(ctx, dayKey(professionalID, date))
}
