package bridge

import (
	"errors"
	"testing"

	"github.com/idmhub/scim-bridge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyTransactionManager records commit/rollback interactions for assertions.
type spyTransactionManager struct {
	commitCalls   int
	rollbackCalls int
	commitErr     error
}

func (s *spyTransactionManager) Commit() error {
	s.commitCalls++
	return s.commitErr
}

func (s *spyTransactionManager) SetRollbackOnly() {
	s.rollbackCalls++
}

func TestFinalize_Success_CommitsOnce(t *testing.T) {
	tm := &spyTransactionManager{}
	f := NewFinalizer(tm)

	err := f.Finalize(models.EngineResponse{Status: 200}, false)

	require.NoError(t, err)
	assert.Equal(t, 1, tm.commitCalls)
	assert.Equal(t, 0, tm.rollbackCalls)
	assert.True(t, f.Finalized())
	assert.False(t, f.RolledBack())
}

func TestFinalize_Error_MarksRollbackOnly(t *testing.T) {
	tm := &spyTransactionManager{}
	f := NewFinalizer(tm)

	err := f.Finalize(models.EngineResponse{Status: 409}, true)

	require.NoError(t, err)
	assert.Equal(t, 0, tm.commitCalls)
	assert.Equal(t, 1, tm.rollbackCalls)
	assert.True(t, f.Finalized())
	assert.True(t, f.RolledBack())
}

func TestFinalize_CommitFailure_SurfacesCauseMessage(t *testing.T) {
	cause := errors.New("deadlock detected")
	tm := &spyTransactionManager{commitErr: cause}
	f := NewFinalizer(tm)

	err := f.Finalize(models.EngineResponse{}, false)

	require.Error(t, err)
	var commitErr *CommitError
	require.ErrorAs(t, err, &commitErr)
	assert.Equal(t, cause.Error(), commitErr.Error())
	assert.ErrorIs(t, err, cause)
}

func TestFinalize_SecondCallIsNoOp(t *testing.T) {
	tm := &spyTransactionManager{}
	f := NewFinalizer(tm)

	require.NoError(t, f.Finalize(models.EngineResponse{}, false))
	require.NoError(t, f.Finalize(models.EngineResponse{}, true))

	assert.Equal(t, 1, tm.commitCalls)
	assert.Equal(t, 0, tm.rollbackCalls)
}

func TestFinalize_RollbackThenCommitAttemptIsNoOp(t *testing.T) {
	tm := &spyTransactionManager{}
	f := NewFinalizer(tm)

	require.NoError(t, f.Finalize(models.EngineResponse{}, true))
	require.NoError(t, f.Finalize(models.EngineResponse{}, false))

	assert.Equal(t, 0, tm.commitCalls)
	assert.Equal(t, 1, tm.rollbackCalls)
}

func TestFinalizer_NotFinalizedInitially(t *testing.T) {
	f := NewFinalizer(&spyTransactionManager{})

	assert.False(t, f.Finalized())
}
