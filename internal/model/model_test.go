package model

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRelations 以内存表模拟外键查询
type stubRelations struct {
	posts     map[uint64][]uint64
	comments  map[uint64][]uint64
	followers map[uint64][]uint64
	following map[uint64][]uint64
	media     map[uint64][]uint64
	err       error
}

func (s *stubRelations) PostIDs(_ context.Context, id uint64) ([]uint64, error) {
	return s.posts[id], s.err
}

func (s *stubRelations) CommentIDs(_ context.Context, id uint64) ([]uint64, error) {
	return s.comments[id], s.err
}

func (s *stubRelations) FollowerIDs(_ context.Context, id uint64) ([]uint64, error) {
	return s.followers[id], s.err
}

func (s *stubRelations) FollowingIDs(_ context.Context, id uint64) ([]uint64, error) {
	return s.following[id], s.err
}

func (s *stubRelations) MediaIDs(_ context.Context, id uint64) ([]uint64, error) {
	return s.media[id], s.err
}

func TestUserSerialize(t *testing.T) {
	u := &User{ID: 7, Username: "alice", Firstname: "Alice", Lastname: "Liddell", Email: "a@x.com"}
	rel := &stubRelations{
		posts:     map[uint64][]uint64{7: {3, 4}},
		comments:  map[uint64][]uint64{7: {9}},
		followers: map[uint64][]uint64{7: {2}},
		following: map[uint64][]uint64{7: {5, 6}},
	}

	out, err := u.Serialize(context.Background(), rel)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"id":        uint64(7),
		"username":  "alice",
		"firstname": "Alice",
		"lastname":  "Liddell",
		"email":     "a@x.com",
		"posts":     []uint64{3, 4},
		"followers": []uint64{2},
		"following": []uint64{5, 6},
		"comments":  []uint64{9},
	}, out)
}

func TestUserSerializeEmptyRelations(t *testing.T) {
	u := &User{ID: 1, Username: "bob"}
	out, err := u.Serialize(context.Background(), &stubRelations{})
	require.NoError(t, err)

	for _, key := range []string{"posts", "followers", "following", "comments"} {
		assert.Equal(t, []uint64{}, out[key], key)
	}
}

func TestUserSerializePropagatesLookupError(t *testing.T) {
	boom := errors.New("connection reset")
	u := &User{ID: 1}
	out, err := u.Serialize(context.Background(), &stubRelations{err: boom})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, boom)
}

func TestPostSerialize(t *testing.T) {
	p := &Post{ID: 3, UserID: 7}
	rel := &stubRelations{
		comments: map[uint64][]uint64{3: {10, 11}},
		media:    map[uint64][]uint64{3: {1}},
	}

	out, err := p.Serialize(context.Background(), rel)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"id":       uint64(3),
		"user_id":  uint64(7),
		"comments": []uint64{10, 11},
		"media":    []uint64{1},
	}, out)
}

func TestPostSerializePropagatesLookupError(t *testing.T) {
	boom := errors.New("connection reset")
	p := &Post{ID: 3, UserID: 7}
	out, err := p.Serialize(context.Background(), &stubRelations{err: boom})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, boom)
}

func TestScalarSerializers(t *testing.T) {
	f := &Follower{ID: 1, UserFromID: 2, UserToID: 1}
	assert.Equal(t, map[string]any{
		"id":           uint64(1),
		"user_from_id": uint64(2),
		"user_to_id":   uint64(1),
	}, f.Serialize())

	c := &Comment{ID: 4, CommentText: "nice", AuthorID: 2, PostID: 3}
	assert.Equal(t, map[string]any{
		"id":           uint64(4),
		"comment_text": "nice",
		"author_id":    uint64(2),
		"post_id":      uint64(3),
	}, c.Serialize())

	m := &Media{ID: 5, Type: MediaTypeImage, URL: "https://cdn.example.com/a.png", PostID: 3}
	assert.Equal(t, map[string]any{
		"id":      uint64(5),
		"type":    "image",
		"url":     "https://cdn.example.com/a.png",
		"post_id": uint64(3),
	}, m.Serialize())
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "user", User{}.TableName())
	assert.Equal(t, "follower", Follower{}.TableName())
	assert.Equal(t, "post", Post{}.TableName())
	assert.Equal(t, "comment", Comment{}.TableName())
	assert.Equal(t, "media", Media{}.TableName())
}
