package job

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"mapca-proposal/logs"
)

// Purger drops expired hand-off records.
type Purger interface {
	PurgeHandOffs(ctx context.Context) (int64, error)
}

// StartCronJob schedules the hand-off purge on spec (standard five-field
// syntax or descriptors such as "@hourly"). The caller stops the returned cron.
func StartCronJob(spec string, p Purger) (*cron.Cron, error) {
	c := cron.New()

	if _, err := c.AddFunc(spec, func() { PurgeOnce(p) }); err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}

// PurgeOnce runs one purge pass.
func PurgeOnce(p Purger) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	rows, err := p.PurgeHandOffs(ctx)
	if err != nil {
		logs.L().Errorf("[Cron] Error: %v", err)
		return
	}
	logs.L().Infof("[Cron] removidos %d hand-offs expirados", rows)
}
