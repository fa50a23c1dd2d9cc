package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/hrsuite/hr-system/internal/core/domain"
)

const guardTTL = 2 * time.Minute

// SubmissionGuard provides duplicate time-record submission checks backed by
// Redis. Key format: trsub:<employee_id>:<date>:<hours>:<description>
type SubmissionGuard struct {
	client *redis.Client
}

// NewSubmissionGuard creates a SubmissionGuard wrapping the given Redis client.
func NewSubmissionGuard(client *redis.Client) *SubmissionGuard {
	return &SubmissionGuard{client: client}
}

// IsDuplicate reports whether an identical submission was seen within the TTL.
func (g *SubmissionGuard) IsDuplicate(ctx context.Context, employeeID int64, date time.Time, hours decimal.Decimal, description string) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(employeeID, date, hours, description)).Result()
	if err != nil {
		return false, fmt.Errorf("submission guard check: %w", err)
	}
	return n > 0, nil
}

// Mark records the submission (expires after guardTTL).
func (g *SubmissionGuard) Mark(ctx context.Context, employeeID int64, date time.Time, hours decimal.Decimal, description string) error {
	return g.client.Set(ctx, g.key(employeeID, date, hours, description), "1", guardTTL).Err()
}

func (g *SubmissionGuard) key(employeeID int64, date time.Time, hours decimal.Decimal, description string) string {
	return fmt.Sprintf("trsub:%d:%s:%s:%s", employeeID, date.Format(domain.DateFormat), hours.String(), description)
}
