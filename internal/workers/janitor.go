// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wellness/internal/config"
	"github.com/MKhiriev/go-wellness/internal/logger"
	"github.com/MKhiriev/go-wellness/internal/metrics"
	"github.com/MKhiriev/go-wellness/internal/store"
)

// ConversationJanitor periodically drops conversation contexts that have
// been idle for longer than the configured TTL.
type ConversationJanitor struct {
	conversations store.ConversationStore
	interval      time.Duration

	metrics *metrics.Metrics
	now     func() time.Time

	logger *logger.Logger
}

func NewConversationJanitor(conversations store.ConversationStore, cfg config.Chat, m *metrics.Metrics, logger *logger.Logger) *ConversationJanitor {
	return &ConversationJanitor{
		conversations: conversations,
		interval:      cfg.JanitorInterval,
		metrics:       m,
		now:           time.Now,
		logger:        logger,
	}
}

// Run sweeps every interval until ctx is cancelled. A non-positive interval
// disables the janitor.
func (j *ConversationJanitor) Run(ctx context.Context) {
	if j.interval <= 0 {
		j.logger.Warn().Msg("conversation janitor disabled: no interval configured")
		return
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Info().Dur("interval", j.interval).Msg("conversation janitor started")
	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("conversation janitor stopped")
			return
		case <-ticker.C:
			j.sweep()
		}
	}
}

// sweep evicts idle conversations once and reports how many were dropped.
func (j *ConversationJanitor) sweep() int {
	evicted := j.conversations.EvictIdle(j.now())
	live := j.conversations.Len()
	j.metrics.ObserveConversations(live, evicted)

	if evicted > 0 {
		j.logger.Debug().Int("evicted", evicted).Int("live", live).Msg("idle conversations evicted")
	}
	return evicted
}
