package service

import (
	"context"
	"errors"
	"testing"

	"socialnet/backend/internal/apperr"
)

func TestCreatePostRequiresTextOrImage(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")

	if _, err := svc.Create(ctx, alice.ID, "", ""); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("empty post: got %v, want validation error", err)
	}
	if _, err := svc.Create(ctx, alice.ID, "   ", ""); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("whitespace post: got %v, want validation error", err)
	}

	post, err := svc.Create(ctx, alice.ID, "hello", "")
	if err != nil {
		t.Fatalf("text-only post: %v", err)
	}
	if post.Owner.Username != "alice" {
		t.Fatalf("owner not resolved: %v", post.Owner)
	}

	if _, err := svc.Create(ctx, alice.ID, "", "images/post_images/1/x.jpg"); err != nil {
		t.Fatalf("image-only post: %v", err)
	}
}

func TestFeedIncludesSelfAndFriendsOnly(t *testing.T) {
	db := newTestDB(t)
	posts := newPostService(db)
	rels := newRelationshipService(db)
	ctx := context.Background()

	me := createUser(t, db, "me")
	friend := createUser(t, db, "friend")
	stranger := createUser(t, db, "stranger")
	pending := createUser(t, db, "pending")

	makeFriends(t, rels, me, friend)
	if err := rels.SendRequest(ctx, pending.ID, me.ID); err != nil {
		t.Fatalf("send request: %v", err)
	}

	for _, p := range []struct {
		owner uint
		text  string
	}{
		{me.ID, "mine"},
		{friend.ID, "from friend"},
		{stranger.ID, "from stranger"},
		{pending.ID, "from pending"},
	} {
		if _, err := posts.Create(ctx, p.owner, p.text, ""); err != nil {
			t.Fatalf("create post %q: %v", p.text, err)
		}
	}

	feed, err := posts.Feed(ctx, me.ID)
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("want 2 posts, got %d", len(feed))
	}
	// Newest first.
	if feed[0].Text != "from friend" || feed[1].Text != "mine" {
		t.Fatalf("unexpected feed order: %q, %q", feed[0].Text, feed[1].Text)
	}
}

func TestFeedGrowsAfterAccept(t *testing.T) {
	db := newTestDB(t)
	posts := newPostService(db)
	rels := newRelationshipService(db)
	ctx := context.Background()

	user1 := createUser(t, db, "user1")
	user2 := createUser(t, db, "user2")

	if _, err := posts.Create(ctx, user2.ID, "from user2", ""); err != nil {
		t.Fatalf("create post: %v", err)
	}

	if err := rels.SendRequest(ctx, user1.ID, user2.ID); err != nil {
		t.Fatalf("send request: %v", err)
	}
	feed, err := posts.Feed(ctx, user1.ID)
	if err != nil {
		t.Fatalf("feed while pending: %v", err)
	}
	if len(feed) != 0 {
		t.Fatalf("pending pair must not share feeds, got %d posts", len(feed))
	}

	if err := rels.AcceptRequest(ctx, user2.ID, user1.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}
	feed, err = posts.Feed(ctx, user1.ID)
	if err != nil {
		t.Fatalf("feed after accept: %v", err)
	}
	if len(feed) != 1 || feed[0].Text != "from user2" {
		t.Fatalf("feed missing friend post: %v", feed)
	}
}
