// Package docs registers the swagger specification for the HTTP API.
// Regenerate with: swag init -g cmd/transaction-management/main.go
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
        "/api/v1/transactions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "List transactions",
                "parameters": [
                    {"type": "integer", "default": 0, "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "name": "size", "in": "query"},
                    {"type": "string", "default": "transactionDate", "name": "sortBy", "in": "query"},
                    {"type": "string", "default": "desc", "name": "direction", "in": "query"},
                    {"type": "string", "name": "category", "in": "query"},
                    {"type": "string", "name": "type", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CommonResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.CommonResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Create a new transaction",
                "parameters": [
                    {"description": "Transaction to create", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateTransactionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CommonResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.CommonResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.CommonResponse"}}
                }
            }
        },
        "/api/v1/transactions/reference/{reference}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Get transaction by reference",
                "parameters": [
                    {"type": "string", "name": "reference", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CommonResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.CommonResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Delete a transaction by reference",
                "parameters": [
                    {"type": "string", "name": "reference", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CommonResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.CommonResponse"}}
                }
            }
        },
        "/api/v1/transactions/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Get transaction by ID",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CommonResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.CommonResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Update a transaction",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to update", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateTransactionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CommonResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.CommonResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.CommonResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Delete a transaction",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CommonResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.CommonResponse"}}
                }
            }
        },
        "/api/v1/cache/clear": {
            "post": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Clear transaction caches",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CommonResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CommonResponse": {
            "type": "object",
            "properties": {
                "status": {"$ref": "#/definitions/dto.Status"},
                "result": {}
            }
        },
        "dto.Status": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "dto.CreateTransactionRequest": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "amount": {"type": "number"},
                "type": {"type": "string", "enum": ["DEBIT", "CREDIT"]},
                "category": {"type": "string"},
                "transactionReference": {"type": "string"}
            }
        },
        "dto.UpdateTransactionRequest": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "amount": {"type": "number"},
                "type": {"type": "string", "enum": ["DEBIT", "CREDIT"]},
                "category": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Transaction Management API",
	Description:      "CRUD API for financial transaction records with a read-through, write-invalidate cache.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
