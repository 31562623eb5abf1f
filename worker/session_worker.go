package worker

import (
	"claimdesk/service"
	"log"
	"time"
)

// SessionWorker periodically re-validates the operator session against the
// canonical user list, so a deactivated operator is logged out without a restart.
type SessionWorker struct {
	identity *service.IdentityService
	interval time.Duration
	stopChan chan struct{}
	doneChan chan struct{}
	running  bool
}

// NewSessionWorker creates a new session worker
func NewSessionWorker(identity *service.IdentityService, interval time.Duration) *SessionWorker {
	return &SessionWorker{
		identity: identity,
		interval: interval,
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
}

// Start starts the session worker in its own goroutine
func (w *SessionWorker) Start() {
	if w.running {
		log.Println("[session] Worker is already running")
		return
	}
	w.running = true
	log.Printf("[session] Worker started (interval: %v)", w.interval)
	go w.run()
}

// Stop stops the worker and waits for the loop to exit
func (w *SessionWorker) Stop() {
	if !w.running {
		return
	}
	close(w.stopChan)
	<-w.doneChan
	w.running = false
	log.Println("[session] Worker stopped")
}

// run is the main worker loop
func (w *SessionWorker) run() {
	defer close(w.doneChan)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.RunOnce()
		case <-w.stopChan:
			return
		}
	}
}

// RunOnce performs a single re-validation pass. Safe to call at any time.
func (w *SessionWorker) RunOnce() {
	before := w.identity.CurrentUser()
	if before == nil {
		return
	}
	if !w.identity.Revalidate() {
		log.Printf("[session] Session for user %s revoked: account no longer active", before.ID)
	}
}
