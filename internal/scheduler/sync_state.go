// Package scheduler contém os serviços de agendamento que gravam os snapshots do dashboard
package scheduler

import (
	"errors"
	"sync"
	"time"
)

// ErrSyncAlreadyRunning é devolvido quando um disparo manual encontra a sincronização em execução
var ErrSyncAlreadyRunning = errors.New("sincronização já em execução")

// syncState controla a execução exclusiva de uma sincronização e guarda o histórico da última execução
type syncState struct {
	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

// begin marca a sincronização como em execução; false quando já havia uma em andamento
func (s *syncState) begin(now time.Time) bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = now
	return true
}

func (s *syncState) finish(now time.Time, err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = now
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
}

func (s *syncState) running() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

func (s *syncState) status() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
