package main

import (
	"context"
	"log"
	"time"

	"github.com/Vivek212004/bake-cart-manager/internal/repositories"
)

const (
	orderSweeperInterval = 15 * time.Minute
	orderSweeperTimeout  = 30 * time.Second
	unpaidOrderMaxAge    = 1 * time.Hour
)

// startOrderSweeper cancels online orders whose payment was never completed,
// so the kitchen queue is not cluttered with abandoned checkouts.
func startOrderSweeper(ctx context.Context, repo *repositories.OrderRepository, infoLog, errorLog *log.Logger) {
	if repo == nil {
		return
	}

	go func() {
		ticker := time.NewTicker(orderSweeperInterval)
		defer ticker.Stop()

		run := func() {
			runCtx, cancel := context.WithTimeout(ctx, orderSweeperTimeout)
			defer cancel()

			cancelled, err := repo.CancelStaleUnpaid(runCtx, time.Now().Add(-unpaidOrderMaxAge))
			if err != nil {
				if errorLog != nil {
					errorLog.Printf("order sweeper: failed to cancel stale unpaid orders: %v", err)
				}
				return
			}
			if cancelled > 0 && infoLog != nil {
				infoLog.Printf("order sweeper: cancelled %d stale unpaid orders", cancelled)
			}
		}

		run()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				run()
			}
		}
	}()
}
