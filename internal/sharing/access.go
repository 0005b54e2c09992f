package sharing

import "pdf-share-server/internal/model"

// IsOwner : владелец документа
func IsOwner(actorUUID string, document *model.Document) bool {
	return document != nil && actorUUID != "" && actorUUID == document.OwnerUUID
}

// HasDirectGrant : пользователю выдан грант на документ
func HasDirectGrant(actorUUID string, document *model.Document) bool {
	_, ok := FindGrant(document, actorUUID)
	return ok
}

// CanView : владелец или грант, публичный токен сюда не входит
func CanView(actorUUID string, document *model.Document) bool {
	return IsOwner(actorUUID, document) || HasDirectGrant(actorUUID, document)
}

// CanManageSharing : гранты, публичные ссылки, переименование и удаление - только владелец
func CanManageSharing(actorUUID string, document *model.Document) bool {
	return IsOwner(actorUUID, document)
}

// CanComment : нужен доступ по личности, анонимный просмотр по ссылке не даёт права комментировать
func CanComment(actorUUID string, document *model.Document) bool {
	return IsOwner(actorUUID, document) || HasDirectGrant(actorUUID, document)
}

// CanModifyComment : только автор, даже владелец документа не может
func CanModifyComment(actorUUID string, comment *model.Comment) bool {
	return comment != nil && actorUUID != "" && actorUUID == comment.AuthorUUID
}
