package main

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// --------- DTOs ---------

type postReq struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type ownerDTO struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

type postDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// postWithOwnerDTO replaces the raw owner id with the owner's identity,
// serialized under the same userId key.
type postWithOwnerDTO struct {
	ID        string    `json:"id"`
	Owner     ownerDTO  `json:"userId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toPostDTO(p *Post) postDTO {
	return postDTO{
		ID:        p.ID,
		UserID:    p.UserID,
		Title:     p.Title,
		Body:      p.Body,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toPostWithOwnerDTO(p *Post) postWithOwnerDTO {
	out := postWithOwnerDTO{
		ID:        p.ID,
		Owner:     ownerDTO{ID: p.UserID},
		Title:     p.Title,
		Body:      p.Body,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Owner != nil {
		out.Owner.Email = p.Owner.Email
		out.Owner.FullName = p.Owner.FullName
	}
	return out
}

// --------- Handlers (all behind requireAuth) ---------

// POST /post
func (a *App) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var in postReq
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" || in.Body == "" {
		errorJSON(w, http.StatusBadRequest, "title and body required")
		return
	}

	p := &Post{
		UserID: userIDFrom(r),
		Title:  in.Title,
		Body:   in.Body,
	}
	if err := a.store.CreatePost(r.Context(), p); err != nil {
		log.Printf("[posts] create: %v", err)
		errorJSON(w, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Post Created Successfully!",
		"post":    toPostDTO(p),
	})
}

// GET /post — every post on the platform, owner identity joined in.
// Deliberately not scoped to the caller.
func (a *App) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := a.store.AllPosts(r.Context())
	if err != nil {
		log.Printf("[posts] list: %v", err)
		errorJSON(w, http.StatusInternalServerError, msgInternal)
		return
	}
	out := make([]postWithOwnerDTO, 0, len(posts))
	for i := range posts {
		out = append(out, toPostWithOwnerDTO(&posts[i]))
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "All Posts: ",
		"posts":   out,
	})
}

// GET /post/{postId} — owner-scoped; a wrong id and someone else's post get
// the same answer so existence never leaks.
func (a *App) handleGetPost(w http.ResponseWriter, r *http.Request) {
	p, err := a.store.PostByOwner(r.Context(), chi.URLParam(r, "postId"), userIDFrom(r))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			errorJSON(w, http.StatusBadRequest, "Invalid Post ID or User ID")
			return
		}
		log.Printf("[posts] get: %v", err)
		errorJSON(w, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Here's Your Post: ",
		"post":    toPostWithOwnerDTO(p),
	})
}

// PATCH /post/{postId} — partial update: an empty or absent field keeps its
// previous value. The fetch-then-write is not atomic; a concurrent delete
// between the two can lose the update (accepted, see DESIGN.md).
func (a *App) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	var in postReq
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}

	p, err := a.store.PostByOwner(r.Context(), chi.URLParam(r, "postId"), userIDFrom(r))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			errorJSON(w, http.StatusBadRequest, "Invalid Post ID or User ID")
			return
		}
		log.Printf("[posts] update fetch: %v", err)
		errorJSON(w, http.StatusInternalServerError, msgInternal)
		return
	}

	if in.Title != "" {
		p.Title = in.Title
	}
	if in.Body != "" {
		p.Body = in.Body
	}
	if err := a.store.UpdatePost(r.Context(), p); err != nil {
		log.Printf("[posts] update: %v", err)
		errorJSON(w, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":     "Post Updated Successfully!",
		"updatedPost": toPostDTO(p),
	})
}

// DELETE /post/{postId} — owner-scoped; responds with the deleted post's
// prior state.
func (a *App) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	p, err := a.store.PostByOwner(r.Context(), chi.URLParam(r, "postId"), userIDFrom(r))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			errorJSON(w, http.StatusBadRequest, "Invalid Post ID or User ID")
			return
		}
		log.Printf("[posts] delete fetch: %v", err)
		errorJSON(w, http.StatusInternalServerError, msgInternal)
		return
	}
	if err := a.store.DeletePost(r.Context(), p.ID); err != nil && !errors.Is(err, ErrNotFound) {
		log.Printf("[posts] delete: %v", err)
		errorJSON(w, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":     "Post Deleted Successfully!",
		"deletedPost": toPostDTO(p),
	})
}
