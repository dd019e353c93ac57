package service

import (
	"context"
	"errors"
	"testing"

	"socialnet/backend/internal/apperr"
	"socialnet/backend/internal/models"
)

func TestSendRequestCreatesCanonicalRecord(t *testing.T) {
	db := newTestDB(t)
	svc := newRelationshipService(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice") // lower id
	bob := createUser(t, db, "bob")     // higher id

	// bob initiates, so the stored direction is high-to-low.
	if err := svc.SendRequest(ctx, bob.ID, alice.ID); err != nil {
		t.Fatalf("send request: %v", err)
	}

	var rel models.Relationship
	if err := db.First(&rel).Error; err != nil {
		t.Fatalf("load relationship: %v", err)
	}
	if rel.UserLowID != alice.ID || rel.UserHighID != bob.ID {
		t.Fatalf("pair not canonical: low=%d high=%d", rel.UserLowID, rel.UserHighID)
	}
	if rel.State != models.StatePendingHighLow {
		t.Fatalf("unexpected state: %s", rel.State)
	}
}

func TestSendRequestRejectsSelfAndUnknownTarget(t *testing.T) {
	db := newTestDB(t)
	svc := newRelationshipService(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")

	if err := svc.SendRequest(ctx, alice.ID, alice.ID); !errors.Is(err, apperr.ErrInvalidRequest) {
		t.Fatalf("self request: got %v, want invalid request", err)
	}
	if err := svc.SendRequest(ctx, alice.ID, 9999); !errors.Is(err, apperr.ErrInvalidRequest) {
		t.Fatalf("unknown target: got %v, want invalid request", err)
	}
}

func TestSecondRequestForPairFails(t *testing.T) {
	db := newTestDB(t)
	svc := newRelationshipService(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	if err := svc.SendRequest(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("first request: %v", err)
	}
	if err := svc.SendRequest(ctx, bob.ID, alice.ID); !errors.Is(err, apperr.ErrInvalidRequest) {
		t.Fatalf("counter request: got %v, want invalid request", err)
	}
	if err := svc.SendRequest(ctx, alice.ID, bob.ID); !errors.Is(err, apperr.ErrInvalidRequest) {
		t.Fatalf("repeat request: got %v, want invalid request", err)
	}

	var count int64
	db.Model(&models.Relationship{}).Count(&count)
	if count != 1 {
		t.Fatalf("want exactly one record, got %d", count)
	}
}

func TestAcceptOnlyByReceiver(t *testing.T) {
	db := newTestDB(t)
	svc := newRelationshipService(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	if err := svc.SendRequest(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("send request: %v", err)
	}

	// The sender cannot accept their own request.
	if err := svc.AcceptRequest(ctx, alice.ID, bob.ID); !errors.Is(err, apperr.ErrInvalidRequest) {
		t.Fatalf("sender accept: got %v, want invalid request", err)
	}

	if err := svc.AcceptRequest(ctx, bob.ID, alice.ID); err != nil {
		t.Fatalf("receiver accept: %v", err)
	}

	var rel models.Relationship
	if err := db.First(&rel).Error; err != nil {
		t.Fatalf("load relationship: %v", err)
	}
	if rel.State != models.StateFriends {
		t.Fatalf("unexpected state after accept: %s", rel.State)
	}

	// Accepting twice fails: the record is no longer pending.
	if err := svc.AcceptRequest(ctx, bob.ID, alice.ID); !errors.Is(err, apperr.ErrInvalidRequest) {
		t.Fatalf("double accept: got %v, want invalid request", err)
	}
}

func TestCancelOnlyBySender(t *testing.T) {
	db := newTestDB(t)
	svc := newRelationshipService(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	if err := svc.SendRequest(ctx, bob.ID, alice.ID); err != nil {
		t.Fatalf("send request: %v", err)
	}

	// The receiver cannot cancel; only the original sender can.
	if err := svc.CancelRequest(ctx, alice.ID, bob.ID); !errors.Is(err, apperr.ErrInvalidRequest) {
		t.Fatalf("receiver cancel: got %v, want invalid request", err)
	}
	if err := svc.CancelRequest(ctx, bob.ID, alice.ID); err != nil {
		t.Fatalf("sender cancel: %v", err)
	}

	var count int64
	db.Model(&models.Relationship{}).Count(&count)
	if count != 0 {
		t.Fatalf("record not deleted, count=%d", count)
	}
}

func TestDeclineDeletesRecord(t *testing.T) {
	db := newTestDB(t)
	svc := newRelationshipService(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	if err := svc.SendRequest(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("send request: %v", err)
	}

	// The sender cannot decline their own request.
	if err := svc.DeclineRequest(ctx, alice.ID, bob.ID); !errors.Is(err, apperr.ErrInvalidRequest) {
		t.Fatalf("sender decline: got %v, want invalid request", err)
	}
	if err := svc.DeclineRequest(ctx, bob.ID, alice.ID); err != nil {
		t.Fatalf("receiver decline: %v", err)
	}

	var count int64
	db.Model(&models.Relationship{}).Count(&count)
	if count != 0 {
		t.Fatalf("record not deleted, count=%d", count)
	}
}

func TestRemoveFriendAllowsNewRequest(t *testing.T) {
	db := newTestDB(t)
	svc := newRelationshipService(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	makeFriends(t, svc, alice, bob)

	// Either party may remove; here the receiver of the original request.
	if err := svc.RemoveFriend(ctx, bob.ID, alice.ID); err != nil {
		t.Fatalf("remove friend: %v", err)
	}

	var count int64
	db.Model(&models.Relationship{}).Count(&count)
	if count != 0 {
		t.Fatalf("record not deleted, count=%d", count)
	}

	// The pair can start over.
	if err := svc.SendRequest(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("re-request after remove: %v", err)
	}
}

func TestRemoveFriendFailsWhilePending(t *testing.T) {
	db := newTestDB(t)
	svc := newRelationshipService(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	if err := svc.SendRequest(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("send request: %v", err)
	}
	if err := svc.RemoveFriend(ctx, alice.ID, bob.ID); !errors.Is(err, apperr.ErrInvalidRequest) {
		t.Fatalf("remove while pending: got %v, want invalid request", err)
	}
}

func TestListFriendsSortedByUsername(t *testing.T) {
	db := newTestDB(t)
	svc := newRelationshipService(db)
	ctx := context.Background()

	me := createUser(t, db, "me")
	zoe := createUser(t, db, "zoe")
	adam := createUser(t, db, "adam")
	makeFriends(t, svc, me, zoe)
	makeFriends(t, svc, adam, me)

	friends, err := svc.ListFriends(ctx, me.ID)
	if err != nil {
		t.Fatalf("list friends: %v", err)
	}
	if len(friends) != 2 {
		t.Fatalf("want 2 friends, got %d", len(friends))
	}
	if friends[0].Username != "adam" || friends[1].Username != "zoe" {
		t.Fatalf("not sorted by username: %v", friends)
	}
}

func TestListIncomingRequestsOnlyShowsRequestsToUser(t *testing.T) {
	db := newTestDB(t)
	svc := newRelationshipService(db)
	ctx := context.Background()

	me := createUser(t, db, "me")
	sender := createUser(t, db, "sender")
	receiver := createUser(t, db, "receiver")

	// sender -> me shows up; me -> receiver does not.
	if err := svc.SendRequest(ctx, sender.ID, me.ID); err != nil {
		t.Fatalf("send request: %v", err)
	}
	if err := svc.SendRequest(ctx, me.ID, receiver.ID); err != nil {
		t.Fatalf("send request: %v", err)
	}

	incoming, err := svc.ListIncomingRequests(ctx, me.ID)
	if err != nil {
		t.Fatalf("list incoming: %v", err)
	}
	if len(incoming) != 1 || incoming[0].Username != "sender" {
		t.Fatalf("unexpected incoming list: %v", incoming)
	}
}

func TestRelationTo(t *testing.T) {
	db := newTestDB(t)
	svc := newRelationshipService(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	if err := svc.SendRequest(ctx, bob.ID, alice.ID); err != nil {
		t.Fatalf("send request: %v", err)
	}

	cases := []struct {
		name     string
		viewer   uint
		target   uint
		expected RelationSummary
	}{
		{"sender sees sent", bob.ID, alice.ID, RelationSent},
		{"receiver sees received", alice.ID, bob.ID, RelationReceived},
		{"stranger sees none", carol.ID, alice.ID, RelationNone},
	}
	for _, tc := range cases {
		got, err := svc.RelationTo(ctx, tc.viewer, tc.target)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.expected {
			t.Fatalf("%s: got %s, want %s", tc.name, got, tc.expected)
		}
	}

	if err := svc.AcceptRequest(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}
	got, err := svc.RelationTo(ctx, bob.ID, alice.ID)
	if err != nil {
		t.Fatalf("relation after accept: %v", err)
	}
	if got != RelationFriends {
		t.Fatalf("after accept: got %s, want friends", got)
	}
}
