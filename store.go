package main

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a record does not exist, or exists but is
	// not owned by the caller in owner-scoped lookups.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken is returned by CreateUser on an email uniqueness violation.
	ErrEmailTaken = errors.New("email already registered")
)

// Store is the persistence boundary. The production implementation sits on
// gorm/Postgres (store_gorm.go); tests use the in-memory one (store_memory.go).
type Store interface {
	CreateUser(ctx context.Context, u *User) error
	UserByEmail(ctx context.Context, email string) (*User, error)
	UserByID(ctx context.Context, id string) (*User, error)
	UpdateUser(ctx context.Context, u *User) error
	// DeleteUser hard-deletes the user and every post they own.
	DeleteUser(ctx context.Context, id string) error

	CreatePost(ctx context.Context, p *Post) error
	// AllPosts returns every post system-wide, newest first, with Owner
	// populated. Deliberately not owner-scoped.
	AllPosts(ctx context.Context) ([]Post, error)
	// PostByOwner fetches a post by id only if ownerID owns it; a wrong id
	// and someone else's post are both ErrNotFound.
	PostByOwner(ctx context.Context, id, ownerID string) (*Post, error)
	UpdatePost(ctx context.Context, p *Post) error
	DeletePost(ctx context.Context, id string) error
}
