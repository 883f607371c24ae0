// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/product-tracker/internal/logger"
	"github.com/MKhiriev/product-tracker/internal/store"
)

// StagingCleaner removes staging directories left behind by an identity
// creation that crashed before its final rename. It holds the creation lock
// so an in-flight creation in another process is never disturbed.
type StagingCleaner struct {
	identities  store.IdentityStore
	lockTimeout time.Duration
	logger      *logger.Logger
}

const defaultLockTimeout = 5 * time.Second

// NewStagingCleaner returns a [StagingCleaner] over identities.
func NewStagingCleaner(identities store.IdentityStore, lockTimeout time.Duration, logger *logger.Logger) *StagingCleaner {
	if lockTimeout <= 0 {
		lockTimeout = defaultLockTimeout
	}

	return &StagingCleaner{
		identities:  identities,
		lockTimeout: lockTimeout,
		logger:      logger,
	}
}

func (s *StagingCleaner) Run(ctx context.Context) {
	lockCtx, cancel := context.WithTimeout(ctx, s.lockTimeout)
	defer cancel()

	unlock, err := s.identities.LockCreation(lockCtx)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "*StagingCleaner.Run").Msg("creation lock busy, skipping staging cleanup")
		return
	}
	defer func() {
		if err := unlock(); err != nil {
			s.logger.Err(err).Str("func", "*StagingCleaner.Run").Msg("error releasing creation lock")
		}
	}()

	removed, err := s.identities.CleanupStaging()
	if err != nil {
		s.logger.Err(err).Str("func", "*StagingCleaner.Run").Int("removed", removed).Msg("error cleaning staging directories")
		return
	}
	if removed > 0 {
		s.logger.Info().Str("func", "*StagingCleaner.Run").Int("removed", removed).Msg("stale staging directories removed")
	}
}
