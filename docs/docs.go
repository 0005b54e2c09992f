// Package docs : swagger описание REST API, отдается через /swagger/*
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "PDF-share-server",
        "description": "REST API для загрузки PDF документов, комментариев и совместного доступа",
        "version": "1.0"
    },
    "host": "localhost:8080",
    "basePath": "/",
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "in": "header", "name": "Authorization"}
    },
    "tags": [
        {"name": "auth", "description": "Регистрация, вход и обновление токенов"},
        {"name": "documents", "description": "PDF документы владельца"},
        {"name": "sharing", "description": "Совместный доступ и публичные ссылки"},
        {"name": "comments", "description": "Комментарии к документам"}
    ],
    "paths": {
        "/api/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Регистрация пользователя",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Session"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Envelope"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Вход по email и паролю",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Session"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/auth/refresh": {
            "post": {
                "tags": ["auth"],
                "summary": "Обновление пары токенов",
                "security": [{"ApiKeyAuth": []}],
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/RefreshTokenRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TokensPair"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/auth/me": {
            "get": {
                "tags": ["auth"],
                "summary": "Текущий пользователь",
                "security": [{"ApiKeyAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/UserSummary"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/auth/{token}": {
            "delete": {
                "tags": ["auth"],
                "summary": "Завершение сессии",
                "parameters": [
                    {"in": "path", "name": "token", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LogoutResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/docs": {
            "get": {
                "tags": ["documents"],
                "summary": "Документы текущего пользователя",
                "security": [{"ApiKeyAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/DocumentResponse"}}}
                }
            },
            "post": {
                "tags": ["documents"],
                "summary": "Загрузка PDF документа",
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"in": "formData", "name": "file", "required": true, "type": "file"},
                    {"in": "formData", "name": "title", "type": "string"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/DocumentResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Envelope"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/docs/shared-with-me": {
            "get": {
                "tags": ["sharing"],
                "summary": "Документы, которыми поделились с пользователем",
                "security": [{"ApiKeyAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/SharedDocument"}}}
                }
            }
        },
        "/api/docs/{doc_id}": {
            "get": {
                "tags": ["documents"],
                "summary": "Документ владельца",
                "security": [{"ApiKeyAuth": []}],
                "parameters": [{"in": "path", "name": "doc_id", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/DocumentResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "put": {
                "tags": ["documents"],
                "summary": "Переименование документа",
                "security": [{"ApiKeyAuth": []}],
                "parameters": [
                    {"in": "path", "name": "doc_id", "required": true, "type": "string"},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/RenameDocumentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/DocumentResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "delete": {
                "tags": ["documents"],
                "summary": "Удаление документа вместе с комментариями",
                "security": [{"ApiKeyAuth": []}],
                "parameters": [{"in": "path", "name": "doc_id", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/DeleteDocumentResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/docs/{doc_id}/share/user": {
            "post": {
                "tags": ["sharing"],
                "summary": "Выдать доступ пользователю",
                "security": [{"ApiKeyAuth": []}],
                "parameters": [
                    {"in": "path", "name": "doc_id", "required": true, "type": "string"},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/GrantAccessRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Grant"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Envelope"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Envelope"}},
                    "409": {"description": "Already shared", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/docs/{doc_id}/share/public": {
            "post": {
                "tags": ["sharing"],
                "summary": "Создать публичную ссылку, старая ссылка перестает работать",
                "security": [{"ApiKeyAuth": []}],
                "parameters": [{"in": "path", "name": "doc_id", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/PublicLinkResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/docs/{doc_id}/external-access": {
            "get": {
                "tags": ["sharing"],
                "summary": "Документ, доступный по прямому гранту",
                "security": [{"ApiKeyAuth": []}],
                "parameters": [{"in": "path", "name": "doc_id", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/DocumentView"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/docs/{doc_id}/comments": {
            "get": {
                "tags": ["comments"],
                "summary": "Комментарии документа, по JWT или публичному токену",
                "parameters": [
                    {"in": "path", "name": "doc_id", "required": true, "type": "string"},
                    {"in": "query", "name": "token", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/CommentWithAuthor"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "post": {
                "tags": ["comments"],
                "summary": "Добавить комментарий",
                "security": [{"ApiKeyAuth": []}],
                "parameters": [
                    {"in": "path", "name": "doc_id", "required": true, "type": "string"},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/CommentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Comment"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/comments/{comment_id}": {
            "put": {
                "tags": ["comments"],
                "summary": "Изменить свой комментарий",
                "security": [{"ApiKeyAuth": []}],
                "parameters": [
                    {"in": "path", "name": "comment_id", "required": true, "type": "string"},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/CommentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Comment"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "delete": {
                "tags": ["comments"],
                "summary": "Удалить свой комментарий",
                "security": [{"ApiKeyAuth": []}],
                "parameters": [{"in": "path", "name": "comment_id", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/DeleteCommentResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/users/share-candidates": {
            "get": {
                "tags": ["sharing"],
                "summary": "Пользователи, с которыми можно поделиться",
                "security": [{"ApiKeyAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/UserSummary"}}}
                }
            }
        },
        "/public/docs/{doc_id}": {
            "get": {
                "tags": ["sharing"],
                "summary": "Документ по публичной ссылке",
                "parameters": [
                    {"in": "path", "name": "doc_id", "required": true, "type": "string"},
                    {"in": "query", "name": "token", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/DocumentView"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        }
    },
    "definitions": {
        "Error": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "FORBIDDEN"},
                "message": {"type": "string"}
            }
        },
        "Envelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "count": {"type": "integer"},
                "error": {"$ref": "#/definitions/Error"}
            }
        },
        "RegisterRequest": {
            "type": "object",
            "required": ["name", "email", "password"],
            "properties": {
                "name": {"type": "string", "example": "Иван Петров"},
                "email": {"type": "string", "example": "ivan@example.com"},
                "password": {"type": "string", "example": "P@ssw0rd!"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string", "example": "ivan@example.com"},
                "password": {"type": "string", "example": "P@ssw0rd123"}
            }
        },
        "RefreshTokenRequest": {
            "type": "object",
            "required": ["refresh_token"],
            "properties": {
                "refresh_token": {"type": "string"}
            }
        },
        "LogoutResponse": {
            "type": "object",
            "properties": {
                "logged_out": {"type": "boolean", "example": true}
            }
        },
        "TokensPair": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "refresh_token": {"type": "string"}
            }
        },
        "UserSummary": {
            "type": "object",
            "properties": {
                "uuid": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "Session": {
            "type": "object",
            "properties": {
                "user": {"$ref": "#/definitions/UserSummary"},
                "tokens": {"$ref": "#/definitions/TokensPair"}
            }
        },
        "Grant": {
            "type": "object",
            "properties": {
                "grantee_uuid": {"type": "string"},
                "grantee_email": {"type": "string"},
                "access_token": {"type": "string"},
                "granted_at": {"type": "string", "format": "date-time"}
            }
        },
        "DocumentResponse": {
            "type": "object",
            "properties": {
                "uuid": {"type": "string"},
                "title": {"type": "string", "example": "Договор аренды.pdf"},
                "file_reference": {"type": "string"},
                "file_url": {"type": "string"},
                "page_count": {"type": "integer", "example": 12},
                "size_bytes": {"type": "integer", "example": 523411},
                "public_token": {"type": "string"},
                "grants": {"type": "array", "items": {"$ref": "#/definitions/Grant"}},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "DocumentView": {
            "type": "object",
            "properties": {
                "uuid": {"type": "string"},
                "title": {"type": "string"},
                "file_reference": {"type": "string"},
                "file_url": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "SharedDocument": {
            "type": "object",
            "properties": {
                "uuid": {"type": "string"},
                "title": {"type": "string"},
                "file_reference": {"type": "string"},
                "file_url": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"},
                "owner": {"$ref": "#/definitions/UserSummary"},
                "shared_at": {"type": "string", "format": "date-time"},
                "access_token": {"type": "string"}
            }
        },
        "RenameDocumentRequest": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "title": {"type": "string"}
            }
        },
        "DeleteDocumentResponse": {
            "type": "object",
            "properties": {
                "uuid": {"type": "string"},
                "deleted": {"type": "boolean"}
            }
        },
        "GrantAccessRequest": {
            "type": "object",
            "required": ["user_uuid", "email"],
            "properties": {
                "user_uuid": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "PublicLinkResponse": {
            "type": "object",
            "properties": {
                "url": {"type": "string"}
            }
        },
        "CommentRequest": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "text": {"type": "string", "maxLength": 5000}
            }
        },
        "Comment": {
            "type": "object",
            "properties": {
                "uuid": {"type": "string"},
                "document_uuid": {"type": "string"},
                "author_uuid": {"type": "string"},
                "text": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "CommentWithAuthor": {
            "type": "object",
            "properties": {
                "uuid": {"type": "string"},
                "document_uuid": {"type": "string"},
                "author_uuid": {"type": "string"},
                "author_name": {"type": "string"},
                "author_email": {"type": "string"},
                "text": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "DeleteCommentResponse": {
            "type": "object",
            "properties": {
                "uuid": {"type": "string"},
                "deleted": {"type": "boolean"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc : отдает swagger документ для http-swagger
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
