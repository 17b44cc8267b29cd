package services

import (
	"context"
	"testing"
	"time"

	"budgettracker/internal/models"
	"budgettracker/internal/testutil"
	"budgettracker/internal/uuid"
)

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewSessionService(db, time.Hour)
	user := testutil.CreateTestUser(t, db)

	anon, err := svc.Create(ctx, nil, "")
	testutil.AssertNoError(t, err)
	if anon.UserID != nil {
		t.Error("expected anonymous session")
	}

	testutil.AssertNoError(t, svc.SetReturnTo(ctx, anon.ID, "/budget"))
	got, err := svc.Get(ctx, anon.ID)
	testutil.AssertNoError(t, err)
	if got.ReturnTo != "/budget" {
		t.Errorf("expected return-to /budget, got %q", got.ReturnTo)
	}

	authed, err := svc.Create(ctx, &user.ID, "")
	testutil.AssertNoError(t, err)
	got, err = svc.Get(ctx, authed.ID)
	testutil.AssertNoError(t, err)
	if got.UserID == nil || *got.UserID != user.ID {
		t.Errorf("expected session for %s, got %v", user.ID, got.UserID)
	}

	testutil.AssertNoError(t, svc.Delete(ctx, authed.ID))
	_, err = svc.Get(ctx, authed.ID)
	testutil.AssertAppError(t, err, "SESSION_NOT_FOUND")

	testutil.AssertNoError(t, svc.Delete(ctx, uuid.New()))
}

func TestSessionExpiry(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := &sessionService{db: db, ttl: time.Hour, now: func() time.Time { return now }}

	session, err := svc.Create(ctx, nil, "")
	testutil.AssertNoError(t, err)
	stale, err := svc.Create(ctx, nil, "")
	testutil.AssertNoError(t, err)

	now = now.Add(2 * time.Hour)

	_, err = svc.Get(ctx, session.ID)
	testutil.AssertAppError(t, err, "SESSION_NOT_FOUND")

	var count int64
	db.Model(&models.Session{}).Where("id = ?", session.ID).Count(&count)
	if count != 0 {
		t.Error("expected expired session to be removed on read")
	}

	removed, err := svc.DeleteExpired(ctx)
	testutil.AssertNoError(t, err)
	if removed != 1 {
		t.Errorf("expected 1 purged session (%s), got %d", stale.ID, removed)
	}
}
