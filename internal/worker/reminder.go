package worker

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Reminder periodically logs open tasks whose due date has passed. It
// only reads; nothing is claimed or mutated.
type Reminder struct {
	pool     *pgxpool.Pool
	logger   *zap.Logger
	interval time.Duration
	wg       sync.WaitGroup
	stop     chan struct{}
}

func NewReminder(pool *pgxpool.Pool, logger *zap.Logger, interval time.Duration) *Reminder {
	return &Reminder{
		pool:     pool,
		logger:   logger,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (rm *Reminder) Start(ctx context.Context) {
	rm.logger.Info("Starting reminder scanner", zap.Duration("interval", rm.interval))

	rm.wg.Add(1)
	go rm.run(ctx)
}

func (rm *Reminder) Stop() {
	rm.logger.Info("Stopping reminder scanner...")
	close(rm.stop)
	rm.wg.Wait()
	rm.logger.Info("Reminder scanner stopped")
}

func (rm *Reminder) run(ctx context.Context) {
	defer rm.wg.Done()

	ticker := time.NewTicker(rm.interval)
	defer ticker.Stop()

	for {
		select {
		case <-rm.stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := rm.scan(ctx); err != nil {
				rm.logger.Error("reminder scan failed", zap.Error(err))
			}
		}
	}
}

// scan logs every overdue open task and returns how many it found.
func (rm *Reminder) scan(ctx context.Context) (int, error) {
	rows, err := rm.pool.Query(ctx, `
		SELECT id, titulo, dono_id, data_vencimento
		FROM tarefas
		WHERE NOT concluida AND data_vencimento < CURRENT_DATE
		ORDER BY data_vencimento, id
	`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var (
			id, donoID int64
			titulo     string
			vencimento time.Time
		)
		if err := rows.Scan(&id, &titulo, &donoID, &vencimento); err != nil {
			return count, err
		}
		count++

		rm.logger.Warn("tarefa vencida",
			zap.Int64("tarefa_id", id),
			zap.String("titulo", titulo),
			zap.Int64("dono_id", donoID),
			zap.Time("data_vencimento", vencimento),
		)
	}
	return count, rows.Err()
}
