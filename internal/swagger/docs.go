// Package swagger serves the OpenAPI document of the API and a swagger-ui page.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/sync-content": {
            "post": {
                "description": "Verifies the GitHub HMAC signature, then publishes every changed episodes/*.md file onto its scheduled episode. Per-file failures never change the response.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Content Webhooks"],
                "summary": "Sync episode content",
                "parameters": [
                    {"type": "string", "description": "sha256=<hex hmac of the body>", "name": "X-Hub-Signature-256", "in": "header", "required": true},
                    {"type": "string", "description": "GitHub event name", "name": "X-GitHub-Event", "in": "header", "required": true},
                    {"type": "string", "description": "GitHub delivery id", "name": "X-GitHub-Delivery", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errmsg._GitHubInvalidPayload"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errmsg._GitHubSignatureInvalid"}}
                }
            }
        },
        "/api/admin/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Admin Auth"],
                "summary": "Admin login",
                "parameters": [
                    {"description": "Username and password", "name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.Admin"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/admin.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errmsg._AdminInvalidPayload"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errmsg._AdminWrongPassword"}}
                }
            }
        },
        "/api/admin/episodes": {
            "get": {
                "security": [{"AdminAuth": []}],
                "produces": ["application/json"],
                "tags": ["Admin Episodes"],
                "summary": "List episodes",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Episode"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errmsg._AdminNoToken"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errmsg._InternalServerError"}}
                }
            },
            "post": {
                "security": [{"AdminAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Admin Episodes"],
                "summary": "Create episode",
                "parameters": [
                    {"description": "Episode to schedule", "name": "episode", "in": "body", "required": true, "schema": {"$ref": "#/definitions/admin.CreateEpisodeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Episode"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errmsg._EpisodeInvalidRequest"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errmsg._AdminNoToken"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errmsg._EpisodeSlugTaken"}}
                }
            }
        },
        "/api/admin/topics": {
            "get": {
                "security": [{"AdminAuth": []}],
                "produces": ["application/json"],
                "tags": ["Admin Topics"],
                "summary": "List topics",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Topic"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errmsg._AdminNoToken"}}
                }
            },
            "post": {
                "security": [{"AdminAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Admin Topics"],
                "summary": "Create topic",
                "parameters": [
                    {"description": "Topic titles", "name": "topic", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.Topic"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Topic"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errmsg._TopicInvalidRequest"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errmsg._AdminNoToken"}}
                }
            }
        },
        "/api/admin/sync/stream": {
            "get": {
                "security": [{"AdminAuth": []}],
                "description": "Websocket. Browsers pass the token as ?authorization=<token>.",
                "tags": ["Admin Sync"],
                "summary": "Stream sync reports",
                "parameters": [
                    {"type": "string", "description": "Admin token", "name": "authorization", "in": "query"}
                ],
                "responses": {
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errmsg._AdminNoToken"}}
                }
            }
        },
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Site"],
                "summary": "Home page",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/site.HomePage"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errmsg._InternalServerError"}}
                }
            }
        },
        "/episodes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Site"],
                "summary": "Episode list",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/site.ListPage"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errmsg._InternalServerError"}}
                }
            }
        },
        "/episodes/{slug}": {
            "get": {
                "tags": ["Site"],
                "summary": "Localized episode redirect",
                "parameters": [
                    {"type": "string", "description": "Episode slug", "name": "slug", "in": "path", "required": true},
                    {"type": "string", "description": "Preferred languages", "name": "Accept-Language", "in": "header"}
                ],
                "responses": {
                    "307": {"description": "Temporary Redirect"}
                }
            }
        },
        "/{lang}/episodes/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Site"],
                "summary": "Episode detail",
                "parameters": [
                    {"enum": ["en", "fa"], "type": "string", "description": "Locale", "name": "lang", "in": "path", "required": true},
                    {"type": "string", "description": "Episode slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/site.EpisodePage"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errmsg._EpisodeNotFound"}}
                }
            }
        },
        "/{lang}/episodes/{slug}/resources": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Site"],
                "summary": "Email episode resources",
                "parameters": [
                    {"enum": ["en", "fa"], "type": "string", "description": "Locale", "name": "lang", "in": "path", "required": true},
                    {"type": "string", "description": "Episode slug", "name": "slug", "in": "path", "required": true},
                    {"description": "Recipient", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/site.ResourcesRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errmsg._ResourcesInvalidRequest"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errmsg._EpisodeNotFound"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/errmsg._ResourcesMailFailed"}}
                }
            }
        },
        "/ping": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["Meta"],
                "summary": "Health check",
                "responses": {"200": {"description": "PONG", "schema": {"type": "string"}}}
            }
        },
        "/version": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["Meta"],
                "summary": "Service version",
                "responses": {"200": {"description": "OK", "schema": {"type": "string"}}}
            }
        }
    },
    "definitions": {
        "site.ResourcesRequest": {
            "type": "object",
            "required": ["email"],
            "properties": {"email": {"type": "string", "example": "listener@example.com"}}
        },
        "errmsg._ResourcesInvalidRequest": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "a valid email address must be provided"},
                "statusCode": {"type": "integer", "example": 400},
                "errors": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}}
            }
        },
        "errmsg._ResourcesMailFailed": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "could not send the resources email"}, "statusCode": {"type": "integer", "example": 502}}
        },
        "utils.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "Sync process completed"}}
        },
        "errmsg._GitHubInvalidPayload": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "invalid webhook payload"}, "statusCode": {"type": "integer", "example": 400}}
        },
        "errmsg._GitHubSignatureInvalid": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "invalid webhook signature"}, "statusCode": {"type": "integer", "example": 401}}
        },
        "errmsg._AdminInvalidPayload": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "username and password must be provided"}, "statusCode": {"type": "integer", "example": 400}}
        },
        "errmsg._AdminWrongPassword": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "username or password is incorrect"}, "statusCode": {"type": "integer", "example": 401}}
        },
        "errmsg._AdminNoToken": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "no token has been provided"}, "statusCode": {"type": "integer", "example": 401}}
        },
        "errmsg._InternalServerError": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "internal server error: connection refused"}, "statusCode": {"type": "integer", "example": 500}}
        },
        "errmsg._EpisodeInvalidRequest": {
            "type": "object",
            "properties": {
                "errors": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}},
                "message": {"type": "string", "example": "validation failed"},
                "statusCode": {"type": "integer", "example": 400}
            }
        },
        "errmsg._EpisodeSlugTaken": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "an episode with this slug already exists"}, "statusCode": {"type": "integer", "example": 409}}
        },
        "errmsg._EpisodeNotFound": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "episode not found"}, "statusCode": {"type": "integer", "example": 404}}
        },
        "errmsg._TopicInvalidRequest": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "topic titles must be provided"}, "statusCode": {"type": "integer", "example": 400}}
        },
        "models.Admin": {
            "type": "object",
            "properties": {"password": {"type": "string"}, "username": {"type": "string"}}
        },
        "admin.LoginResponse": {
            "type": "object",
            "properties": {"admin": {"$ref": "#/definitions/models.Admin"}, "token": {"type": "string"}}
        },
        "admin.CreateEpisodeRequest": {
            "type": "object",
            "properties": {
                "contentName": {"type": "string"},
                "descriptionEn": {"type": "string"},
                "descriptionFa": {"type": "string"},
                "resourcesUrl": {"type": "string"},
                "scheduledAt": {"type": "string"},
                "slug": {"type": "string"},
                "titleEn": {"type": "string"},
                "titleFa": {"type": "string"},
                "topicId": {"type": "integer"}
            }
        },
        "models.Episode": {
            "type": "object",
            "properties": {
                "audioUrl": {"type": "string"},
                "contentName": {"type": "string"},
                "createdAt": {"type": "string"},
                "descriptionEn": {"type": "string"},
                "descriptionFa": {"type": "string"},
                "id": {"type": "integer"},
                "publishedAt": {"type": "string"},
                "resourcesUrl": {"type": "string"},
                "scheduledAt": {"type": "string"},
                "slug": {"type": "string"},
                "status": {"type": "string", "enum": ["upcoming", "published", "archived"]},
                "titleEn": {"type": "string"},
                "titleFa": {"type": "string"},
                "topicId": {"type": "integer"},
                "updatedAt": {"type": "string"}
            }
        },
        "models.Topic": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "titleEn": {"type": "string"}, "titleFa": {"type": "string"}}
        },
        "site.EpisodeSummary": {
            "type": "object",
            "properties": {
                "descriptionEn": {"type": "string"},
                "descriptionFa": {"type": "string"},
                "id": {"type": "integer"},
                "links": {"type": "object", "additionalProperties": {"type": "string"}},
                "publishedAt": {"type": "string"},
                "scheduledAt": {"type": "string"},
                "slug": {"type": "string"},
                "status": {"type": "string"},
                "titleEn": {"type": "string"},
                "titleFa": {"type": "string"}
            }
        },
        "site.HomePage": {
            "type": "object",
            "properties": {
                "recent": {"type": "array", "items": {"$ref": "#/definitions/site.EpisodeSummary"}},
                "upcoming": {"type": "array", "items": {"$ref": "#/definitions/site.EpisodeSummary"}}
            }
        },
        "site.ListPage": {
            "type": "object",
            "properties": {
                "episodes": {"type": "array", "items": {"$ref": "#/definitions/site.EpisodeSummary"}}
            }
        },
        "site.EpisodePage": {
            "type": "object",
            "properties": {
                "alternates": {"type": "object", "additionalProperties": {"type": "string"}},
                "audioUrl": {"type": "string"},
                "descriptionHtml": {"type": "string"},
                "dir": {"type": "string", "enum": ["ltr", "rtl"]},
                "id": {"type": "integer"},
                "lang": {"type": "string"},
                "publishedAt": {"type": "string"},
                "resourcesUrl": {"type": "string"},
                "scheduledAt": {"type": "string"},
                "slug": {"type": "string"},
                "status": {"type": "string"},
                "title": {"type": "string"},
                "topic": {
                    "type": "object",
                    "properties": {"id": {"type": "integer"}, "title": {"type": "string"}}
                }
            }
        }
    },
    "securityDefinitions": {
        "AdminAuth": {
            "description": "Provide the admin bearer token as ` + "`" + `Bearer <token>` + "`" + `.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Podcast Site API",
	Description:      "Content sync webhook, admin scheduling API and cached public pages of the bilingual podcast site.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
