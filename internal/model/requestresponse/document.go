package requestresponse

import (
	"pdf-share-server/internal/model"
	"time"
)

// RenameDocumentRequest : тело запроса на переименование документа
type RenameDocumentRequest struct {
	Title string `json:"title" validate:"required,max=255" example:"Договор аренды.pdf"`
}

// DocumentResponse : документ владельца со всеми данными о шаринге
type DocumentResponse struct {
	UUID          string        `json:"uuid" example:"0b6f6e0e-8d4c-4a8e-9a57-0c1d1b7f6a11"`
	Title         string        `json:"title" example:"Договор аренды.pdf"`
	FileReference string        `json:"file_reference" example:"users/u1/documents/3f2a.pdf"`
	FileURL       string        `json:"file_url" example:"https://drive.google.com/file/d/1AbC/view"`
	PageCount     int           `json:"page_count" example:"12"`
	SizeBytes     int64         `json:"size_bytes" example:"523411"`
	PublicToken   string        `json:"public_token,omitempty" example:"9f86d081884c7d659a2feaa0c55ad015"`
	Grants        []model.Grant `json:"grants"`
	CreatedAt     time.Time     `json:"created_at" example:"2025-08-23T12:34:56Z"`
	UpdatedAt     time.Time     `json:"updated_at" example:"2025-08-23T12:34:56Z"`
}

// DocumentResponseFromModel : конвертирует model.Document в DocumentResponse
func DocumentResponseFromModel(doc *model.Document) DocumentResponse {
	grants := doc.Grants
	if grants == nil {
		grants = []model.Grant{}
	}

	var publicToken string
	if doc.PublicToken != nil {
		publicToken = *doc.PublicToken
	}

	return DocumentResponse{
		UUID:          doc.UUID,
		Title:         doc.Title,
		FileReference: doc.FileReference,
		FileURL:       doc.FileURL,
		PageCount:     doc.PageCount,
		SizeBytes:     doc.SizeBytes,
		PublicToken:   publicToken,
		Grants:        grants,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}
}

// DeleteDocumentResponse : ответ на удаление документа
type DeleteDocumentResponse struct {
	UUID    string `json:"uuid" example:"0b6f6e0e-8d4c-4a8e-9a57-0c1d1b7f6a11"`
	Deleted bool   `json:"deleted" example:"true"`
}
