// Package docs registers the API's OpenAPI document with swag under the "api" instance.
// Paths are relative to the /api/v1 server swaggerkit injects
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "openapi": "3.0.3",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "tags": [
        {"name": "Analyze", "description": "Score review texts, profiles and whole pages"},
        {"name": "Results", "description": "Archived result projections"},
        {"name": "Meta", "description": "Health, readiness, build and tuning"}
    ],
    "paths": {
        "/analyze/text": {
            "post": {
                "tags": ["Analyze"],
                "summary": "Score one review text",
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/TextRequest"}}}},
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ItemResult"}}}}}
            }
        },
        "/analyze/profile": {
            "post": {
                "tags": ["Analyze"],
                "summary": "Score one reviewer profile",
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ProfileRequest"}}}},
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ItemResult"}}}}}
            }
        },
        "/analyze/batch": {
            "post": {
                "tags": ["Analyze"],
                "summary": "Score every review of a page",
                "description": "Behavioral signals are computed once across the batch and shared by every item. Items come back in input order.",
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/BatchRequest"}}}},
                "responses": {
                    "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/BatchResult"}}}},
                    "413": {"description": "too many items or body too large", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
                }
            }
        },
        "/score": {
            "post": {
                "tags": ["Analyze"],
                "summary": "Aggregate caller supplied signals",
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ScoreRequest"}}}},
                "responses": {
                    "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ItemResult"}}}},
                    "422": {"description": "score outside [0,1]", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
                }
            }
        },
        "/results/{id}": {
            "get": {
                "tags": ["Results"],
                "summary": "Fetch an archived result",
                "parameters": [{"name": "id", "in": "path", "required": true, "schema": {"type": "string", "format": "uuid"}}],
                "responses": {
                    "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ArchivedResult"}}}},
                    "404": {"description": "unknown id", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}},
                    "503": {"description": "archive disabled", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
                }
            }
        },
        "/meta/health": {
            "get": {"tags": ["Meta"], "summary": "Health check", "responses": {"200": {"description": "ok"}}}
        },
        "/meta/ready": {
            "get": {"tags": ["Meta"], "summary": "Readiness probe with dependency checks", "responses": {"200": {"description": "ok"}}}
        },
        "/meta/version": {
            "get": {"tags": ["Meta"], "summary": "Build and version info", "responses": {"200": {"description": "ok"}}}
        },
        "/meta/service": {
            "get": {"tags": ["Meta"], "summary": "Service info and uptime", "responses": {"200": {"description": "ok"}}}
        },
        "/meta/rules": {
            "get": {"tags": ["Meta"], "summary": "Rule pack and scorer tuning", "responses": {"200": {"description": "ok"}}}
        }
    },
    "components": {
        "schemas": {
            "Signal": {
                "type": "object",
                "nullable": true,
                "properties": {
                    "score": {"type": "number", "nullable": true, "minimum": 0, "maximum": 1},
                    "detail": {"type": "string"}
                }
            },
            "SignalSet": {"type": "object", "additionalProperties": {"$ref": "#/components/schemas/Signal"}},
            "Bundle": {
                "type": "object",
                "description": "category (text, account, behavioral, media) to signal set",
                "additionalProperties": {"$ref": "#/components/schemas/SignalSet"}
            },
            "Profile": {
                "type": "object",
                "properties": {
                    "displayName": {"type": "string"},
                    "avatarUrl": {"type": "string"},
                    "bio": {"type": "string"},
                    "location": {"type": "string"},
                    "accountCreated": {"type": "string", "format": "date-time"},
                    "firstReviewDate": {"type": "string", "format": "date-time"},
                    "reviewDate": {"type": "string", "format": "date-time"},
                    "totalReviews": {"type": "integer"},
                    "helpfulVotes": {"type": "integer"},
                    "ratings": {"type": "array", "items": {"type": "integer"}},
                    "reviewDates": {"type": "array", "items": {"type": "string", "format": "date-time"}},
                    "categories": {"type": "array", "items": {"type": "string"}},
                    "verifiedPurchase": {"type": "boolean"}
                }
            },
            "TextRequest": {
                "type": "object",
                "required": ["text"],
                "properties": {"text": {"type": "string", "maxLength": 20000, "example": "Absolutely amazing product! Highly recommend to everyone!"}}
            },
            "ProfileRequest": {
                "type": "object",
                "required": ["profile"],
                "properties": {"profile": {"$ref": "#/components/schemas/Profile"}}
            },
            "ItemRequest": {
                "type": "object",
                "properties": {
                    "id": {"type": "string", "maxLength": 128},
                    "text": {"type": "string", "maxLength": 20000},
                    "profile": {"$ref": "#/components/schemas/Profile"},
                    "extra": {"$ref": "#/components/schemas/Bundle"}
                }
            },
            "BatchRequest": {
                "type": "object",
                "required": ["items"],
                "properties": {
                    "id": {"type": "string", "maxLength": 128},
                    "items": {"type": "array", "minItems": 1, "items": {"$ref": "#/components/schemas/ItemRequest"}},
                    "ratingHistogram": {"type": "object", "description": "star rating (1-5) to count", "additionalProperties": {"type": "integer", "minimum": 0}}
                }
            },
            "ScoreRequest": {
                "type": "object",
                "required": ["signals"],
                "properties": {"signals": {"$ref": "#/components/schemas/Bundle"}}
            },
            "Issue": {
                "type": "object",
                "properties": {
                    "category": {"type": "string"},
                    "signal": {"type": "string"},
                    "score": {"type": "number"},
                    "detail": {"type": "string"},
                    "severity": {"type": "string", "enum": ["high", "medium"]}
                }
            },
            "Result": {
                "type": "object",
                "properties": {
                    "score": {"type": "number", "nullable": true},
                    "level": {"type": "string", "enum": ["HIGH_TRUST", "MODERATE_TRUST", "LOW_TRUST", "VERY_LOW_TRUST", "INSUFFICIENT_DATA"]},
                    "confidence": {"type": "number"},
                    "message": {"type": "string"},
                    "issues": {"type": "array", "items": {"$ref": "#/components/schemas/Issue"}},
                    "signalCount": {"type": "integer"},
                    "timestamp": {"type": "string", "format": "date-time"}
                }
            },
            "ItemResult": {
                "type": "object",
                "properties": {
                    "id": {"type": "string"},
                    "resultId": {"type": "string", "format": "uuid"},
                    "signals": {"$ref": "#/components/schemas/Bundle"},
                    "result": {"$ref": "#/components/schemas/Result"}
                }
            },
            "BatchResult": {
                "type": "object",
                "properties": {
                    "batchId": {"type": "string"},
                    "behavioral": {"$ref": "#/components/schemas/SignalSet"},
                    "items": {"type": "array", "items": {"$ref": "#/components/schemas/ItemResult"}}
                }
            },
            "ArchivedResult": {
                "type": "object",
                "properties": {
                    "id": {"type": "string", "format": "uuid"},
                    "kind": {"type": "string", "enum": ["text", "profile", "batch", "score"]},
                    "batchId": {"type": "string"},
                    "itemId": {"type": "string"},
                    "result": {"$ref": "#/components/schemas/Result"},
                    "signals": {"$ref": "#/components/schemas/Bundle"},
                    "createdAt": {"type": "string", "format": "date-time"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Title:            "reviewtrust API",
	Description:      "Heuristic authenticity scoring for product reviews",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
