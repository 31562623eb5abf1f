package worker

import (
	"claimdesk/repository"
	"claimdesk/service"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func newIdentity(t *testing.T) (*service.IdentityService, *repository.UserRepository) {
	t.Helper()
	users, err := repository.NewUserRepository(repository.DemoUsers(), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewUserRepository: %v", err)
	}
	return service.NewIdentityService(users, nil, []byte("worker-test"), time.Hour), users
}

func TestRunOnceLogsOutDeactivatedUser(t *testing.T) {
	identity, users := newIdentity(t)
	if !identity.Login("analista@jetsmart.com", "password123") {
		t.Fatal("login failed")
	}
	w := NewSessionWorker(identity, time.Hour)

	w.RunOnce()
	if identity.CurrentUser() == nil {
		t.Fatal("active user was logged out")
	}

	if _, err := users.SetActive("3", false); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	w.RunOnce()
	if identity.CurrentUser() != nil {
		t.Error("deactivated user still signed in")
	}
}

func TestRunOnceWithoutSession(t *testing.T) {
	identity, _ := newIdentity(t)
	NewSessionWorker(identity, time.Hour).RunOnce()
	if identity.CurrentUser() != nil {
		t.Error("unexpected session")
	}
}

func TestStartStop(t *testing.T) {
	identity, users := newIdentity(t)
	identity.Login("supervisor@jetsmart.com", "password123")
	users.SetActive("2", false)

	w := NewSessionWorker(identity, 5*time.Millisecond)
	w.Start()
	w.Start()
	deadline := time.Now().Add(2 * time.Second)
	for identity.CurrentUser() != nil && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	w.Stop()
	w.Stop()
	if identity.CurrentUser() != nil {
		t.Error("worker did not revoke the session")
	}
}
