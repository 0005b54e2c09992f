package model

import "time"

// Document : метаданные PDF документа, сам файл лежит во внешнем хранилище
type Document struct {
	UUID          string    `db:"uuid" json:"uuid"`
	OwnerUUID     string    `db:"owner_uuid" json:"owner_uuid"`
	Title         string    `db:"title" json:"title"`
	FileReference string    `db:"file_reference" json:"file_reference"`
	FileURL       string    `db:"file_url" json:"file_url"`
	PageCount     int       `db:"page_count" json:"page_count"`
	SizeBytes     int64     `db:"size_bytes" json:"size_bytes"`
	PublicToken   *string   `db:"public_token" json:"public_token,omitempty"`
	Grants        []Grant   `db:"-" json:"grants"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// Grant : доступ конкретного пользователя к документу
// AccessToken хранится для будущего отзыва по ссылке, для авторизации не используется
type Grant struct {
	DocumentUUID string    `db:"document_uuid" json:"-"`
	GranteeUUID  string    `db:"grantee_uuid" json:"grantee_uuid"`
	GranteeEmail string    `db:"grantee_email" json:"grantee_email"`
	AccessToken  string    `db:"access_token" json:"access_token"`
	GrantedAt    time.Time `db:"granted_at" json:"granted_at"`
}

// DocumentView : проекция только для чтения, без грантов и токенов
type DocumentView struct {
	UUID          string    `json:"uuid"`
	Title         string    `json:"title"`
	FileReference string    `json:"file_reference"`
	FileURL       string    `json:"file_url"`
	CreatedAt     time.Time `json:"created_at"`
}

// SharedDocument : документ, которым поделились с пользователем, вместе с данными о гранте
type SharedDocument struct {
	DocumentView
	Owner       UserSummary `json:"owner"`
	SharedAt    time.Time   `json:"shared_at"`
	AccessToken string      `json:"access_token"`
}

// SharedDocumentRow : строка выборки shared-with-me из БД
type SharedDocumentRow struct {
	DocumentUUID  string    `db:"document_uuid"`
	Title         string    `db:"title"`
	FileReference string    `db:"file_reference"`
	FileURL       string    `db:"file_url"`
	CreatedAt     time.Time `db:"created_at"`
	OwnerUUID     string    `db:"owner_uuid"`
	OwnerName     string    `db:"owner_name"`
	OwnerEmail    string    `db:"owner_email"`
	GrantedAt     time.Time `db:"granted_at"`
	AccessToken   string    `db:"access_token"`
}

// View : read-only проекция документа
func (d *Document) View() DocumentView {
	return DocumentView{
		UUID:          d.UUID,
		Title:         d.Title,
		FileReference: d.FileReference,
		FileURL:       d.FileURL,
		CreatedAt:     d.CreatedAt,
	}
}

// ToSharedDocument : конвертирует строку выборки в ответ
func (r SharedDocumentRow) ToSharedDocument() SharedDocument {
	return SharedDocument{
		DocumentView: DocumentView{
			UUID:          r.DocumentUUID,
			Title:         r.Title,
			FileReference: r.FileReference,
			FileURL:       r.FileURL,
			CreatedAt:     r.CreatedAt,
		},
		Owner: UserSummary{
			UUID:  r.OwnerUUID,
			Name:  r.OwnerName,
			Email: r.OwnerEmail,
		},
		SharedAt:    r.GrantedAt,
		AccessToken: r.AccessToken,
	}
}

// StoredFile : результат загрузки файла во внешнее хранилище
type StoredFile struct {
	Reference string
	ViewURL   string
}
