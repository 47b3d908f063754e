// Package docs is generated by swaggo/swag from the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/activity": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "List recorded request activity",
                "parameters": [
                    {"type": "integer", "default": 10, "description": "page size (max 100)", "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "description": "offset", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.ActivityListResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/ask": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "Ask a question about extracted document content",
                "parameters": [
                    {"description": "content and question", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.QARequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AskResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Service health",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HealthResponse"}}
                }
            }
        },
        "/api/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Process statistics and activity totals",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.StatsResponse"}}
                }
            }
        },
        "/upload": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "Upload a document and extract its text",
                "parameters": [
                    {"type": "file", "description": "PDF, XLSX or XLS file (max 10MB)", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.UploadResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.AskMetadata": {
            "type": "object",
            "properties": {
                "questionLength": {"type": "integer"},
                "responseLength": {"type": "integer"},
                "timestamp": {"type": "string"}
            }
        },
        "handler.AskResponse": {
            "type": "object",
            "properties": {
                "answer": {"type": "string"},
                "metadata": {"$ref": "#/definitions/handler.AskMetadata"},
                "success": {"type": "boolean"}
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {"type": "string"},
                "error": {"type": "string"},
                "message": {"type": "string"},
                "request_id": {"type": "string"}
            }
        },
        "handler.HealthResponse": {
            "type": "object",
            "properties": {
                "environment": {"type": "string"},
                "status": {"type": "string"},
                "timestamp": {"type": "string"},
                "uptime": {"type": "number"}
            }
        },
        "handler.MemoryStats": {
            "type": "object",
            "properties": {
                "alloc": {"type": "integer"},
                "heapInuse": {"type": "integer"},
                "numGC": {"type": "integer"},
                "sys": {"type": "integer"},
                "totalAlloc": {"type": "integer"}
            }
        },
        "handler.StatsResponse": {
            "type": "object",
            "properties": {
                "activity": {"$ref": "#/definitions/model.ActivitySummary"},
                "goVersion": {"type": "string"},
                "goroutines": {"type": "integer"},
                "memory": {"$ref": "#/definitions/handler.MemoryStats"},
                "numCPU": {"type": "integer"},
                "platform": {"type": "string"},
                "timestamp": {"type": "string"},
                "uptime": {"type": "number"}
            }
        },
        "handler.UploadMetadata": {
            "type": "object",
            "properties": {
                "contentLength": {"type": "integer"},
                "mimeType": {"type": "string"},
                "originalName": {"type": "string"},
                "size": {"type": "integer"}
            }
        },
        "handler.UploadResponse": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "metadata": {"$ref": "#/definitions/handler.UploadMetadata"},
                "success": {"type": "boolean"}
            }
        },
        "model.Activity": {
            "type": "object",
            "properties": {
                "answer_length": {"type": "integer"},
                "content_length": {"type": "integer"},
                "created_at": {"type": "string"},
                "duration_ms": {"type": "integer"},
                "id": {"type": "string"},
                "kind": {"type": "string"},
                "media_type": {"type": "string"},
                "outcome": {"type": "string"},
                "question_length": {"type": "integer"},
                "size_bytes": {"type": "integer"}
            }
        },
        "model.ActivitySummary": {
            "type": "object",
            "properties": {
                "asks": {"type": "integer"},
                "asks_failed": {"type": "integer"},
                "uploads": {"type": "integer"},
                "uploads_failed": {"type": "integer"}
            }
        },
        "model.QARequest": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "question": {"type": "string"}
            }
        },
        "service.ActivityListResult": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/model.Activity"}},
                "total": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Document Q&A API",
	Description:      "Upload PDF or Excel documents and ask questions about their content.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
