package service_test

import (
	"context"
	"sort"
	"sync"

	"pdf-share-server/internal/apperrors"
	"pdf-share-server/internal/model"

	"github.com/jmoiron/sqlx"
)

// memoryStore : хранилище в памяти с теми же гарантиями, что и SQL слой:
// один грант на пару документ/пользователь и каскадное удаление комментариев
type memoryStore struct {
	mu        sync.Mutex
	documents map[string]model.Document
	comments  map[string]model.Comment
	users     map[string]model.User
}

func newMemoryStore(users ...model.User) *memoryStore {
	store := &memoryStore{
		documents: map[string]model.Document{},
		comments:  map[string]model.Comment{},
		users:     map[string]model.User{},
	}
	for _, user := range users {
		store.users[user.UUID] = user
	}
	return store
}

func (s *memoryStore) commentsOf(documentUUID string) []model.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []model.Comment
	for _, comment := range s.comments {
		if comment.DocumentUUID == documentUUID {
			result = append(result, comment)
		}
	}
	return result
}

type memoryDocuments struct {
	*memoryStore
}

func (r memoryDocuments) Create(_ context.Context, _ sqlx.ExtContext, document *model.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *document
	copied.Grants = append([]model.Grant{}, document.Grants...)
	r.documents[document.UUID] = copied
	return nil
}

func (r memoryDocuments) GetByUUID(_ context.Context, _ sqlx.ExtContext, documentUUID string) (*model.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	document, ok := r.documents[documentUUID]
	if !ok {
		return nil, apperrors.Clone(apperrors.ErrNotFound, "документ не найден")
	}
	document.Grants = append([]model.Grant{}, document.Grants...)
	return &document, nil
}

func (r memoryDocuments) ListByOwner(_ context.Context, _ sqlx.ExtContext, ownerUUID string) ([]model.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []model.Document{}
	for _, document := range r.documents {
		if document.OwnerUUID == ownerUUID {
			result = append(result, document)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (r memoryDocuments) UpdateTitle(_ context.Context, _ sqlx.ExtContext, documentUUID, title string) error {
	return r.update(documentUUID, func(document *model.Document) { document.Title = title })
}

func (r memoryDocuments) SetPublicToken(_ context.Context, _ sqlx.ExtContext, documentUUID, token string) error {
	return r.update(documentUUID, func(document *model.Document) { document.PublicToken = &token })
}

func (r memoryDocuments) Delete(_ context.Context, _ sqlx.ExtContext, documentUUID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.documents[documentUUID]; !ok {
		return apperrors.Clone(apperrors.ErrNotFound, "документ не найден")
	}
	for uuid, comment := range r.comments {
		if comment.DocumentUUID == documentUUID {
			delete(r.comments, uuid)
		}
	}
	delete(r.documents, documentUUID)
	return nil
}

func (r memoryDocuments) Conn() sqlx.ExtContext {
	return nil
}

func (r memoryDocuments) BeginTX(context.Context) (sqlx.ExtContext, func() error, func() error, error) {
	noop := func() error { return nil }
	return nil, noop, noop, nil
}

func (r memoryDocuments) AddGrant(_ context.Context, _ sqlx.ExtContext, grant *model.Grant) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	document, ok := r.documents[grant.DocumentUUID]
	if !ok {
		return false, apperrors.Clone(apperrors.ErrNotFound, "документ не найден")
	}
	for _, existing := range document.Grants {
		if existing.GranteeUUID == grant.GranteeUUID {
			return false, nil
		}
	}
	document.Grants = append(append([]model.Grant{}, document.Grants...), *grant)
	r.documents[grant.DocumentUUID] = document
	return true, nil
}

func (r memoryDocuments) ListSharedWith(_ context.Context, _ sqlx.ExtContext, userUUID string) ([]model.SharedDocumentRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := []model.SharedDocumentRow{}
	for _, document := range r.documents {
		for _, grant := range document.Grants {
			if grant.GranteeUUID != userUUID {
				continue
			}
			owner := r.users[document.OwnerUUID]
			rows = append(rows, model.SharedDocumentRow{
				DocumentUUID:  document.UUID,
				Title:         document.Title,
				FileReference: document.FileReference,
				FileURL:       document.FileURL,
				CreatedAt:     document.CreatedAt,
				OwnerUUID:     owner.UUID,
				OwnerName:     owner.Name,
				OwnerEmail:    owner.Email,
				GrantedAt:     grant.GrantedAt,
				AccessToken:   grant.AccessToken,
			})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].GrantedAt.After(rows[j].GrantedAt) })
	return rows, nil
}

func (r memoryDocuments) update(documentUUID string, apply func(*model.Document)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	document, ok := r.documents[documentUUID]
	if !ok {
		return apperrors.Clone(apperrors.ErrNotFound, "документ не найден")
	}
	apply(&document)
	r.documents[documentUUID] = document
	return nil
}

type memoryComments struct {
	*memoryStore
}

func (r memoryComments) Create(_ context.Context, _ sqlx.ExtContext, comment *model.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.documents[comment.DocumentUUID]; !ok {
		return apperrors.Clone(apperrors.ErrNotFound, "документ не найден")
	}
	r.comments[comment.UUID] = *comment
	return nil
}

func (r memoryComments) GetByUUID(_ context.Context, _ sqlx.ExtContext, commentUUID string) (*model.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	comment, ok := r.comments[commentUUID]
	if !ok {
		return nil, apperrors.Clone(apperrors.ErrNotFound, "комментарий не найден")
	}
	return &comment, nil
}

func (r memoryComments) ListByDocument(_ context.Context, _ sqlx.ExtContext, documentUUID string) ([]model.CommentWithAuthor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []model.CommentWithAuthor{}
	for _, comment := range r.comments {
		if comment.DocumentUUID != documentUUID {
			continue
		}
		author := r.users[comment.AuthorUUID]
		result = append(result, model.CommentWithAuthor{Comment: comment, AuthorName: author.Name, AuthorEmail: author.Email})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (r memoryComments) UpdateText(_ context.Context, _ sqlx.ExtContext, commentUUID, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	comment, ok := r.comments[commentUUID]
	if !ok {
		return apperrors.Clone(apperrors.ErrNotFound, "комментарий не найден")
	}
	comment.Text = text
	r.comments[commentUUID] = comment
	return nil
}

func (r memoryComments) Delete(_ context.Context, _ sqlx.ExtContext, commentUUID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.comments[commentUUID]; !ok {
		return apperrors.Clone(apperrors.ErrNotFound, "комментарий не найден")
	}
	delete(r.comments, commentUUID)
	return nil
}

func (r memoryComments) Conn() sqlx.ExtContext {
	return nil
}

type memoryUsers struct {
	*memoryStore
}

func (r memoryUsers) CreateUser(_ context.Context, _ sqlx.ExtContext, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, apperrors.Clone(apperrors.ErrConflict, "пользователь с таким email уже существует")
		}
	}
	r.users[user.UUID] = *user
	return user, nil
}

func (r memoryUsers) FindByUUID(_ context.Context, _ sqlx.ExtContext, uuid string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[uuid]
	if !ok {
		return nil, apperrors.Clone(apperrors.ErrNotFound, "пользователь не найден")
	}
	return &user, nil
}

func (r memoryUsers) FindByEmail(_ context.Context, _ sqlx.ExtContext, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, apperrors.Clone(apperrors.ErrNotFound, "пользователь не найден")
}

func (r memoryUsers) ListExcept(_ context.Context, _ sqlx.ExtContext, uuid string) ([]model.UserSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []model.UserSummary{}
	for _, user := range r.users {
		if user.UUID != uuid {
			result = append(result, user.Summary())
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r memoryUsers) Conn() sqlx.ExtContext {
	return nil
}
