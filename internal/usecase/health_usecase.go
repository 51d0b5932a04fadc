package usecase

import (
	"context"
	"time"
)

const (
	APIName    = "Aagam Shah Portfolio API"
	APIVersion = "1.0.0"
)

// Pinger is satisfied by the database handle.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthUsecase interface {
	Info() map[string]string
	// Check reports static health; with deep set it also pings the database.
	Check(ctx context.Context, deep bool) (map[string]string, bool)
}

type healthUsecase struct {
	db      Pinger
	timeout time.Duration
}

func NewHealthUsecase(db Pinger, timeout time.Duration) HealthUsecase {
	return &healthUsecase{db: db, timeout: timeout}
}

func (u *healthUsecase) Info() map[string]string {
	return map[string]string{
		"message": APIName,
		"version": APIVersion,
		"status":  "active",
	}
}

func (u *healthUsecase) Check(ctx context.Context, deep bool) (map[string]string, bool) {
	if !deep || u.db == nil {
		return map[string]string{"status": "healthy", "database": "connected"}, true
	}

	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	if err := u.db.Ping(ctx); err != nil {
		return map[string]string{"status": "unhealthy", "database": "disconnected"}, false
	}
	return map[string]string{"status": "healthy", "database": "connected"}, true
}
