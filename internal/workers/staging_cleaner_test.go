package workers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/product-tracker/internal/logger"
	"github.com/MKhiriev/product-tracker/internal/mock"
	"github.com/MKhiriev/product-tracker/internal/store"
)

func TestStagingCleaner_Run_RemovesStaleStaging(t *testing.T) {
	root := t.TempDir()
	id := uuid.New()

	stale := filepath.Join(root, "."+id.String()+".tmp-123456")
	require.NoError(t, os.MkdirAll(stale, 0o700))
	identityDir := filepath.Join(root, uuid.NewString())
	require.NoError(t, os.MkdirAll(identityDir, 0o700))

	cleaner := NewStagingCleaner(store.NewIdentityFileStore(root, logger.Nop()), time.Second, logger.Nop())
	cleaner.Run(context.Background())

	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(identityDir)
	assert.NoError(t, err)
}

func TestStagingCleaner_Run_HoldsCreationLock(t *testing.T) {
	ctrl := gomock.NewController(t)
	identities := mock.NewMockIdentityStore(ctrl)

	unlocked := false
	gomock.InOrder(
		identities.EXPECT().LockCreation(gomock.Any()).Return(func() error { unlocked = true; return nil }, nil),
		identities.EXPECT().CleanupStaging().DoAndReturn(func() (int, error) {
			assert.False(t, unlocked)
			return 2, nil
		}),
	)

	NewStagingCleaner(identities, time.Second, logger.Nop()).Run(context.Background())
	assert.True(t, unlocked)
}

func TestStagingCleaner_Run_SkipsWhenLockBusy(t *testing.T) {
	ctrl := gomock.NewController(t)
	identities := mock.NewMockIdentityStore(ctrl)

	identities.EXPECT().LockCreation(gomock.Any()).Return(nil, store.ErrStorageIO)
	identities.EXPECT().CleanupStaging().Times(0)

	NewStagingCleaner(identities, time.Second, logger.Nop()).Run(context.Background())
}

func TestStagingCleaner_Run_CleanupErrorReleasesLock(t *testing.T) {
	ctrl := gomock.NewController(t)
	identities := mock.NewMockIdentityStore(ctrl)

	unlocked := false
	identities.EXPECT().LockCreation(gomock.Any()).Return(func() error { unlocked = true; return nil }, nil)
	identities.EXPECT().CleanupStaging().Return(0, errors.New("permission denied"))

	NewStagingCleaner(identities, time.Second, logger.Nop()).Run(context.Background())
	assert.True(t, unlocked)
}
