package main

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memoryStore keeps everything in maps behind one mutex. Same semantics as
// the gorm store; used by tests and for DB-less local runs.
type memoryStore struct {
	mu      sync.Mutex
	users   map[string]*User
	posts   map[string]*Post
	postIDs []string // creation order
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users: map[string]*User{},
		posts: map[string]*Post{},
	}
}

func (s *memoryStore) CreateUser(ctx context.Context, u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return ErrEmailTaken
		}
	}
	now := time.Now().UTC()
	u.ID = uuid.NewString()
	u.CreatedAt = now
	u.UpdatedAt = now
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *memoryStore) UserByEmail(ctx context.Context, email string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryStore) UserByID(ctx context.Context, id string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *memoryStore) UpdateUser(ctx context.Context, u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		return ErrNotFound
	}
	u.UpdatedAt = time.Now().UTC()
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *memoryStore) DeleteUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	delete(s.users, id)
	// cascade to owned posts
	kept := s.postIDs[:0]
	for _, pid := range s.postIDs {
		if s.posts[pid].UserID == id {
			delete(s.posts, pid)
			continue
		}
		kept = append(kept, pid)
	}
	s.postIDs = kept
	return nil
}

func (s *memoryStore) CreatePost(ctx context.Context, p *Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	cp := *p
	cp.Owner = nil
	s.posts[p.ID] = &cp
	s.postIDs = append(s.postIDs, p.ID)
	return nil
}

func (s *memoryStore) AllPosts(ctx context.Context) ([]Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Post, 0, len(s.postIDs))
	// newest first
	for i := len(s.postIDs) - 1; i >= 0; i-- {
		cp := *s.posts[s.postIDs[i]]
		if owner, ok := s.users[cp.UserID]; ok {
			o := *owner
			cp.Owner = &o
		}
		out = append(out, cp)
	}
	return out, nil
}

func (s *memoryStore) PostByOwner(ctx context.Context, id, ownerID string) (*Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok || p.UserID != ownerID {
		return nil, ErrNotFound
	}
	cp := *p
	if owner, ok := s.users[cp.UserID]; ok {
		o := *owner
		cp.Owner = &o
	}
	return &cp, nil
}

func (s *memoryStore) UpdatePost(ctx context.Context, p *Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[p.ID]; !ok {
		return ErrNotFound
	}
	p.UpdatedAt = time.Now().UTC()
	cp := *p
	cp.Owner = nil
	s.posts[p.ID] = &cp
	return nil
}

func (s *memoryStore) DeletePost(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return ErrNotFound
	}
	delete(s.posts, id)
	for i, pid := range s.postIDs {
		if pid == id {
			s.postIDs = append(s.postIDs[:i], s.postIDs[i+1:]...)
			break
		}
	}
	return nil
}
