// Package docs registers the generated swagger spec. Regenerate with
// `swag init -g cmd/main.go`.
package docs

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
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Admin login",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Invalid credentials"}}
            }
        },
        "/leaderboard": {
            "get": {
                "tags": ["Leaderboard"],
                "summary": "Current ranking",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/teams": {
            "get": {
                "tags": ["Teams"],
                "summary": "List registered teams",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Teams"],
                "summary": "Register a team",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created"}, "409": {"description": "Team name already exists"}}
            }
        },
        "/scores": {
            "post": {
                "tags": ["Scores"],
                "summary": "Award points to a team",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Validation error"}, "404": {"description": "Team not found"}}
            }
        },
        "/scores/recent": {
            "get": {
                "tags": ["Scores"],
                "summary": "Recent score history",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/events": {
            "get": {
                "tags": ["Events"],
                "summary": "Audit trail",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Arena Scoreboard API",
	Description:      "Live competition scoring dashboard backend",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
