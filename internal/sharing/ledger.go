// Package sharing содержит правила доступа к документам: гранты, публичный токен
// и предикаты, которые по ним отвечают на вопрос "может ли пользователь X сделать O с документом D".
// Пакет ничего не сохраняет, сохранение делает вызывающий сервис.
package sharing

import (
	"crypto/subtle"
	"time"

	"pdf-share-server/internal/apperrors"
	"pdf-share-server/internal/model"
	"pdf-share-server/internal/util"
)

// ErrDuplicateGrant : у пользователя уже есть грант на документ
var ErrDuplicateGrant = apperrors.Clone(apperrors.ErrAlreadyShared, "у пользователя уже есть доступ к документу")

// TokenGenerator : источник непрозрачных токенов, подменяется в тестах
var TokenGenerator = func() (string, error) {
	return util.GenerateToken(util.TokenLength)
}

// FindGrant : ищет грант пользователя, ничего не меняет
func FindGrant(document *model.Document, granteeUUID string) (*model.Grant, bool) {
	if document == nil || granteeUUID == "" {
		return nil, false
	}
	for i := range document.Grants {
		if document.Grants[i].GranteeUUID == granteeUUID {
			return &document.Grants[i], true
		}
	}
	return nil, false
}

// AddGrant : добавляет грант в конец списка, один пользователь - один грант
func AddGrant(document *model.Document, granteeUUID, granteeEmail string, now time.Time) (model.Grant, error) {
	if _, exists := FindGrant(document, granteeUUID); exists {
		return model.Grant{}, ErrDuplicateGrant
	}

	accessToken, err := TokenGenerator()
	if err != nil {
		return model.Grant{}, err
	}

	grant := model.Grant{
		DocumentUUID: document.UUID,
		GranteeUUID:  granteeUUID,
		GranteeEmail: granteeEmail,
		AccessToken:  accessToken,
		GrantedAt:    now,
	}
	document.Grants = append(document.Grants, grant)

	return grant, nil
}

// IssuePublicToken : выпускает новый публичный токен, старый перестаёт работать
func IssuePublicToken(document *model.Document) (string, error) {
	token, err := TokenGenerator()
	if err != nil {
		return "", err
	}
	document.PublicToken = &token
	return token, nil
}

// TokenMatches : анонимный доступ по публичной ссылке, точное совпадение без срока действия
func TokenMatches(document *model.Document, token string) bool {
	if document == nil || document.PublicToken == nil || *document.PublicToken == "" || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(*document.PublicToken), []byte(token)) == 1
}

// State : состояние шаринга документа, оба измерения независимы
type State struct {
	SharedDirect   bool `json:"shared_direct"`
	PubliclyShared bool `json:"publicly_shared"`
}

func (s State) Private() bool {
	return !s.SharedDirect && !s.PubliclyShared
}

func StateOf(document *model.Document) State {
	return State{
		SharedDirect:   len(document.Grants) > 0,
		PubliclyShared: document.PublicToken != nil && *document.PublicToken != "",
	}
}
