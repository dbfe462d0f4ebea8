// Package docs registers the companion API's OpenAPI document with swag.
// Regenerate with `swag init -g cmd/api/main.go`.
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
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}},
        "/api/v1/auth/login": {"post": {"tags": ["Auth"], "summary": "Log in with email and password", "responses": {"200": {"description": "OK"}, "401": {"description": "Invalid credentials"}}}},
        "/api/v1/auth/google/start": {"get": {"tags": ["Auth"], "summary": "Start Google login", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/auth/google/callback": {"get": {"tags": ["Auth"], "summary": "Complete Google login", "responses": {"200": {"description": "OK"}, "400": {"description": "Unknown or expired state"}}}},
        "/api/v1/auth/me": {"get": {"tags": ["Auth"], "summary": "Current user", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/auth/status": {"get": {"tags": ["Auth"], "summary": "Session status", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/auth/logout": {"post": {"tags": ["Auth"], "summary": "Log out", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/chat/sessions": {"post": {"tags": ["Chat"], "summary": "Start a conversation", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/chat/sessions/{id}": {"delete": {"tags": ["Chat"], "summary": "Close a conversation", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/chat/sessions/{id}/history": {"post": {"tags": ["Chat"], "summary": "Load server history", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "502": {"description": "Backend error"}}}},
        "/api/v1/chat/sessions/{id}/messages": {
            "get": {"tags": ["Chat"], "summary": "Conversation snapshot", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Chat"], "summary": "Send a message", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Chat"], "summary": "Clear history", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/chat/sessions/{id}/messages/voice": {"post": {"tags": ["Chat"], "summary": "Send the committed voice transcript", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Voice busy"}}}},
        "/api/v1/voice/status": {"get": {"tags": ["Voice"], "summary": "Coordinator status", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/voice/toggle": {"post": {"tags": ["Voice"], "summary": "Start or stop capture", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/voice/cancel": {"post": {"tags": ["Voice"], "summary": "Cancel capture", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/voice/speak": {"post": {"tags": ["Voice"], "summary": "Read text aloud", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/voice/voices": {"get": {"tags": ["Voice"], "summary": "Available synthesis voices", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/tasks": {
            "get": {"tags": ["Tasks"], "summary": "List tasks", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Tasks"], "summary": "Create a task", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/tasks/{id}": {
            "get": {"tags": ["Tasks"], "summary": "Task detail", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "put": {"tags": ["Tasks"], "summary": "Update a task", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Tasks"], "summary": "Delete a task", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/tasks/{id}/toggle": {"post": {"tags": ["Tasks"], "summary": "Toggle completion", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/calendar/events": {
            "get": {"tags": ["Calendar"], "summary": "List events", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Calendar"], "summary": "Create an event", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/calendar/upcoming": {"get": {"tags": ["Calendar"], "summary": "Upcoming events", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/calendar/sync": {"post": {"tags": ["Calendar"], "summary": "Sync the calendar", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/email/recent": {"get": {"tags": ["Email"], "summary": "Recent email", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/email/summary": {"get": {"tags": ["Email"], "summary": "Inbox summary", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/email/sync": {"post": {"tags": ["Email"], "summary": "Sync the inbox", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/email/send": {"post": {"tags": ["Email"], "summary": "Send an email", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/email/{id}/replies": {"post": {"tags": ["Email"], "summary": "Suggest replies", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/search": {"get": {"tags": ["Search"], "summary": "Web search", "parameters": [{"type": "string", "name": "q", "in": "query", "required": true}, {"type": "integer", "name": "limit", "in": "query"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/v1/search/suggestions": {"get": {"tags": ["Search"], "summary": "Query suggestions", "parameters": [{"type": "string", "name": "q", "in": "query", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/suggestions": {"get": {"tags": ["Suggestions"], "summary": "List suggestions", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/suggestions/generate": {"post": {"tags": ["Suggestions"], "summary": "Generate suggestions", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/suggestions/{id}/accept": {"post": {"tags": ["Suggestions"], "summary": "Accept a suggestion", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Unknown suggestion"}, "422": {"description": "Accepted but the action failed"}}}},
        "/api/v1/suggestions/{id}/dismiss": {"post": {"tags": ["Suggestions"], "summary": "Dismiss a suggestion", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/dashboard": {"get": {"tags": ["Dashboard"], "summary": "Dashboard side panel", "parameters": [{"type": "string", "name": "window", "in": "query"}, {"type": "boolean", "name": "refresh", "in": "query"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid window"}, "502": {"description": "Every section failed"}}}},
        "/api/v1/dashboard/cache": {"delete": {"tags": ["Dashboard"], "summary": "Drop cached dashboards", "responses": {"200": {"description": "OK"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Productivity Assistant Companion API",
	Description:      "Local companion for the productivity assistant: chat sessions, voice input, tasks, calendar, email, web search and suggestions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
