// Package docs holds the OpenAPI template built from the swag annotations
// on the handlers in api/controllers. Regenerate it with swag init.
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
        "/api/admin/dimensions": {
            "get": {
                "security": [
                    {
                        "AdminToken": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "List the scored dimensions and the track keyword gating each",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.DimensionResponse"
                            }
                        }
                    }
                }
            }
        },
        "/api/admin/ratings/reset": {
            "post": {
                "security": [
                    {
                        "AdminToken": []
                    }
                ],
                "description": "Judges are found in the store, so judges without an open session are reset too",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Delete the ratings of every judge",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.ResetResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ResetResponse"
                        }
                    }
                }
            }
        },
        "/api/admin/sessions": {
            "get": {
                "security": [
                    {
                        "AdminToken": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "List all open judge sessions",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.SessionResponse"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/admin/sessions/{session}": {
            "delete": {
                "security": [
                    {
                        "AdminToken": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Close any judge session",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "session",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MessageResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/jury/aggregate": {
            "get": {
                "description": "Per-dimension averages over judges that scored the dimension, most common tracks and all notes",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "jury"
                ],
                "summary": "Combined ratings of all judges",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Sort field",
                        "name": "sort",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "asc or desc",
                        "name": "dir",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Only teams whose most common track matches",
                        "name": "track",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ratings.AggregateResult"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/jury/aggregate/export.csv": {
            "get": {
                "produces": [
                    "text/csv"
                ],
                "tags": [
                    "jury"
                ],
                "summary": "Download the combined ratings as CSV",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Sort field",
                        "name": "sort",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "asc or desc",
                        "name": "dir",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Only teams whose most common track matches",
                        "name": "track",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/jury/judges": {
            "get": {
                "description": "When the store cannot be listed, judges known only from it are missing and X-Judges-Incomplete is set",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "jury"
                ],
                "summary": "List the judges included in the aggregate",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/jury/sessions": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "jury"
                ],
                "summary": "Open a judge session",
                "parameters": [
                    {
                        "description": "Judge",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.OpenSessionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.SessionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/jury/sessions/{session}": {
            "delete": {
                "description": "Ratings that were only kept locally because the store was unavailable are dropped",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "jury"
                ],
                "summary": "Close a judge session",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "session",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MessageResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/jury/sessions/{session}/export.csv": {
            "get": {
                "produces": [
                    "text/csv"
                ],
                "tags": [
                    "jury"
                ],
                "summary": "Download the judge's rated teams as CSV",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "session",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Sort field",
                        "name": "sort",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "asc or desc",
                        "name": "dir",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Only teams filed under this track",
                        "name": "track",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/jury/sessions/{session}/export.json": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "jury"
                ],
                "summary": "Download the judge's ratings as a backup file",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "session",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/scoring.Snapshot"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/jury/sessions/{session}/import": {
            "post": {
                "description": "Ratings missing from the file are removed. Malformed entries are skipped and reported.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "jury"
                ],
                "summary": "Replace the judge's ratings with a backup file",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "session",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Backup file",
                        "name": "file",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/scoring.Snapshot"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ratings.ImportResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/jury/sessions/{session}/ratings": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "jury"
                ],
                "summary": "List every team with the judge's rating",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "session",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "teamName, projectName, teamNumber, roomNumber, floor, total",
                        "name": "sort",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "asc or desc",
                        "name": "dir",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Only teams filed under this track",
                        "name": "track",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.JudgeRowsResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "jury"
                ],
                "summary": "Delete all ratings of the judge",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "session",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.ModeResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/jury/sessions/{session}/ratings/{teamKey}": {
            "put": {
                "description": "Scores use \"score\" (0 clears, 1..5), track, addOnTrack and notes use \"text\"",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "jury"
                ],
                "summary": "Change one field of a rating",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "session",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Team key",
                        "name": "teamKey",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Field update",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.UpdateFieldRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.RatingResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/jury/teams": {
            "get": {
                "description": "Teams derived from the room directory, one per team name and floor",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "jury"
                ],
                "summary": "List the judged teams",
                "parameters": [
                    {
                        "type": "string",
                        "description": "teamName, projectName, teamNumber, roomNumber, floor",
                        "name": "sort",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "asc or desc",
                        "name": "dir",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.TeamResponse"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/rooms": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Rooms"
                ],
                "summary": "Get all rooms",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Only rooms on this floor",
                        "name": "floor",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.RoomResponse"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "AdminToken": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Rooms"
                ],
                "summary": "Create a room",
                "parameters": [
                    {
                        "description": "Room object",
                        "name": "room",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.RoomCreateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.RoomResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/rooms/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Rooms"
                ],
                "summary": "Get a room by ID",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Room ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.RoomResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "AdminToken": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Rooms"
                ],
                "summary": "Update an existing room",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Room ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Room update object",
                        "name": "room",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.RoomUpdateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.RoomResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "AdminToken": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Rooms"
                ],
                "summary": "Delete a room",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Room ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MessageResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "models.DimensionResponse": {
            "type": "object",
            "properties": {
                "key": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "trackKeyword": {
                    "type": "string"
                }
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        },
        "models.JudgeRowsResponse": {
            "type": "object",
            "properties": {
                "judgeId": {
                    "type": "string"
                },
                "mode": {
                    "type": "string"
                },
                "rows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/scoring.Row"
                    }
                }
            }
        },
        "models.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "models.ModeResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "mode": {
                    "type": "string"
                }
            }
        },
        "models.OpenSessionRequest": {
            "type": "object",
            "properties": {
                "judgeId": {
                    "type": "string"
                }
            }
        },
        "models.RatingResponse": {
            "type": "object",
            "properties": {
                "enabled": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "boolean"
                    }
                },
                "mode": {
                    "type": "string"
                },
                "rating": {
                    "$ref": "#/definitions/scoring.Rating"
                }
            }
        },
        "models.ResetResponse": {
            "type": "object",
            "properties": {
                "failed": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "reset": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "models.RoomCreateRequest": {
            "type": "object",
            "properties": {
                "addOnTrack": {
                    "type": "string"
                },
                "floorId": {
                    "type": "string"
                },
                "height": {
                    "type": "number"
                },
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "projectName": {
                    "type": "string"
                },
                "teamName": {
                    "type": "string"
                },
                "teamNumber": {
                    "type": "string"
                },
                "track": {
                    "type": "string"
                },
                "width": {
                    "type": "number"
                },
                "x": {
                    "type": "number"
                },
                "y": {
                    "type": "number"
                }
            }
        },
        "models.RoomResponse": {
            "type": "object",
            "properties": {
                "addOnTrack": {
                    "type": "string"
                },
                "floorId": {
                    "type": "string"
                },
                "height": {
                    "type": "number"
                },
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "projectName": {
                    "type": "string"
                },
                "teamName": {
                    "type": "string"
                },
                "teamNumber": {
                    "type": "string"
                },
                "track": {
                    "type": "string"
                },
                "width": {
                    "type": "number"
                },
                "x": {
                    "type": "number"
                },
                "y": {
                    "type": "number"
                }
            }
        },
        "models.RoomUpdateRequest": {
            "type": "object",
            "properties": {
                "addOnTrack": {
                    "type": "string"
                },
                "floorId": {
                    "type": "string"
                },
                "height": {
                    "type": "number"
                },
                "name": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "projectName": {
                    "type": "string"
                },
                "teamName": {
                    "type": "string"
                },
                "teamNumber": {
                    "type": "string"
                },
                "track": {
                    "type": "string"
                },
                "width": {
                    "type": "number"
                },
                "x": {
                    "type": "number"
                },
                "y": {
                    "type": "number"
                }
            }
        },
        "models.SessionResponse": {
            "type": "object",
            "properties": {
                "judgeId": {
                    "type": "string"
                },
                "openedAt": {
                    "type": "string"
                },
                "sessionId": {
                    "type": "string"
                }
            }
        },
        "models.TeamResponse": {
            "type": "object",
            "properties": {
                "floorId": {
                    "type": "string"
                },
                "floorLevel": {
                    "type": "integer"
                },
                "projectName": {
                    "type": "string"
                },
                "roomId": {
                    "type": "string"
                },
                "roomNumber": {
                    "type": "string"
                },
                "teamKey": {
                    "type": "string"
                },
                "teamName": {
                    "type": "string"
                },
                "teamNumber": {
                    "type": "string"
                }
            }
        },
        "models.UpdateFieldRequest": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string"
                },
                "score": {
                    "type": "integer"
                },
                "text": {
                    "type": "string"
                }
            }
        },
        "ratings.AggregateResult": {
            "type": "object",
            "properties": {
                "failedJudges": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "judges": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "partial": {
                    "type": "boolean"
                },
                "rows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/scoring.Row"
                    }
                }
            }
        },
        "ratings.ImportResult": {
            "type": "object",
            "properties": {
                "diagnostics": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/scoring.Diagnostic"
                    }
                },
                "imported": {
                    "type": "integer"
                },
                "mode": {
                    "type": "string"
                }
            }
        },
        "scoring.AggregateView": {
            "type": "object",
            "properties": {
                "addOnTrack": {
                    "type": "string"
                },
                "average": {
                    "type": "number"
                },
                "averages": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "number"
                    }
                },
                "judgeCount": {
                    "type": "integer"
                },
                "notes": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/scoring.JudgeNote"
                    }
                },
                "teamKey": {
                    "type": "string"
                },
                "track": {
                    "type": "string"
                }
            }
        },
        "scoring.Diagnostic": {
            "type": "object",
            "properties": {
                "reason": {
                    "type": "string"
                },
                "teamKey": {
                    "type": "string"
                }
            }
        },
        "scoring.JudgeNote": {
            "type": "object",
            "properties": {
                "judgeId": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "scoring.Rating": {
            "type": "object",
            "properties": {
                "addOnTrack": {
                    "type": "string"
                },
                "concept": {
                    "type": "integer"
                },
                "floorId": {
                    "type": "string"
                },
                "handTracking": {
                    "type": "integer"
                },
                "immersiveEntertainment": {
                    "type": "integer"
                },
                "implementation": {
                    "type": "integer"
                },
                "judgeId": {
                    "type": "string"
                },
                "lastUpdated": {
                    "type": "string"
                },
                "mrAndVR": {
                    "type": "integer"
                },
                "notes": {
                    "type": "string"
                },
                "passthroughCameraAPI": {
                    "type": "integer"
                },
                "projectName": {
                    "type": "string"
                },
                "projectUpgrade": {
                    "type": "integer"
                },
                "quality": {
                    "type": "integer"
                },
                "roomNumber": {
                    "type": "string"
                },
                "teamKey": {
                    "type": "string"
                },
                "teamName": {
                    "type": "string"
                },
                "teamNumber": {
                    "type": "string"
                },
                "total": {
                    "type": "number"
                },
                "track": {
                    "type": "string"
                }
            }
        },
        "scoring.Row": {
            "type": "object",
            "properties": {
                "aggregate": {
                    "$ref": "#/definitions/scoring.AggregateView"
                },
                "rating": {
                    "$ref": "#/definitions/scoring.Rating"
                },
                "team": {
                    "$ref": "#/definitions/scoring.Team"
                }
            }
        },
        "scoring.Snapshot": {
            "type": "object",
            "properties": {
                "judgeId": {
                    "type": "string"
                },
                "ratings": {
                    "type": "object",
                    "additionalProperties": {
                        "$ref": "#/definitions/scoring.Rating"
                    }
                }
            }
        },
        "scoring.Team": {
            "type": "object",
            "properties": {
                "floorId": {
                    "type": "string"
                },
                "projectName": {
                    "type": "string"
                },
                "roomId": {
                    "type": "string"
                },
                "roomNumber": {
                    "type": "string"
                },
                "teamKey": {
                    "type": "string"
                },
                "teamName": {
                    "type": "string"
                },
                "teamNumber": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "AdminToken": {
            "type": "apiKey",
            "name": "x-admin-token",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "Floor Finder Jury API",
	Description:      "Backend API for the floor plan rooms and the jury rating tool",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
