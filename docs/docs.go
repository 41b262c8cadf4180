// Package docs holds the generated OpenAPI definition served at /api/swagger.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
        "/auth/me": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Fetch the caller's profile from the identity provider",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Current user profile",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/auth/role": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Store a role (club, agent or player) in the caller's identity-provider metadata",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Assign the caller's role",
                "parameters": [
                    {
                        "description": "Role JSON",
                        "name": "role",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.SetRoleRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/clubs": {
            "post": {
                "description": "Create a club profile bound to an identity-provider user. Name and email must be globally unique.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "clubs"
                ],
                "summary": "Register a club",
                "parameters": [
                    {
                        "description": "Club JSON",
                        "name": "club",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.RegisterClubRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/dashboard/club/stats": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Aggregated posting stats and recent activity for the caller's club",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "dashboard"
                ],
                "summary": "Club dashboard stats",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/jobs": {
            "get": {
                "description": "Paginated job list, filtered by status (published by default). Private blocks are redacted per the posting's privacy settings.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "jobs"
                ],
                "summary": "List job postings",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Page number",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page size",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Status filter",
                        "name": "status",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Create a new vacancy for the caller's club. New postings start as drafts unless a status is supplied.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "jobs"
                ],
                "summary": "Create a job posting",
                "parameters": [
                    {
                        "description": "Job JSON",
                        "name": "job",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.CreateJobRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/jobs/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Fetch one posting and increment its view counter. Non-owners get a redacted document.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "jobs"
                ],
                "summary": "Get job details",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Job ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Partial update of a posting owned by the caller's club. Closed and filled postings cannot change status.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "jobs"
                ],
                "summary": "Update a job posting",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Job ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Partial job JSON",
                        "name": "job",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.UpdateJobRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Permanently delete a posting owned by the caller's club",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "jobs"
                ],
                "summary": "Delete a job posting",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Job ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.Bonuses": {
            "type": "object",
            "properties": {
                "performanceBonuses": {
                    "type": "string"
                },
                "signingBonus": {
                    "type": "number"
                }
            }
        },
        "domain.ClubContactInfo": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                }
            }
        },
        "domain.ClubPrivacySettings": {
            "type": "object",
            "properties": {
                "allowAnonymousPosting": {
                    "type": "boolean"
                },
                "visibleToVerifiedAgentsOnly": {
                    "type": "boolean"
                }
            }
        },
        "domain.Experience": {
            "type": "object",
            "properties": {
                "competitionLevel": {
                    "type": "string"
                },
                "level": {
                    "type": "string"
                },
                "professionalMatches": {
                    "type": "integer"
                }
            }
        },
        "domain.FinancialDetails": {
            "type": "object",
            "properties": {
                "additionalPerks": {
                    "type": "string"
                },
                "benefits": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "bonuses": {
                    "$ref": "#/definitions/domain.Bonuses"
                },
                "contractDuration": {
                    "type": "string"
                },
                "salary": {
                    "$ref": "#/definitions/domain.Salary"
                }
            }
        },
        "domain.JobContactInfo": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "preferredContact": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                }
            }
        },
        "domain.JobPrivacySettings": {
            "type": "object",
            "properties": {
                "hideFinancialDetails": {
                    "type": "boolean"
                },
                "isAnonymous": {
                    "type": "boolean"
                },
                "visibleToVerifiedAgentsOnly": {
                    "type": "boolean"
                }
            }
        },
        "domain.Origin": {
            "type": "object",
            "properties": {
                "continents": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "domain.Salary": {
            "type": "object",
            "properties": {
                "currency": {
                    "type": "string"
                },
                "isNegotiable": {
                    "type": "boolean"
                },
                "range": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                }
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {},
                "message": {
                    "type": "string"
                },
                "request_id": {
                    "type": "string"
                },
                "success": {
                    "type": "boolean"
                }
            }
        },
        "v1.CreateJobRequest": {
            "type": "object",
            "required": [
                "ageRange",
                "clubLevel",
                "contactInfo",
                "country",
                "experience",
                "league",
                "position"
            ],
            "properties": {
                "ageRange": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "benefits": {
                    "description": "Legacy flat financial fields, folded into FinancialDetails when the\nstructured block is absent.",
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "bonuses": {
                    "type": "string"
                },
                "clubLevel": {
                    "type": "string"
                },
                "clubName": {
                    "type": "string"
                },
                "contactInfo": {
                    "$ref": "#/definitions/domain.JobContactInfo"
                },
                "contractDuration": {
                    "type": "string"
                },
                "country": {
                    "type": "string"
                },
                "expiresAt": {
                    "type": "string"
                },
                "experience": {
                    "$ref": "#/definitions/domain.Experience"
                },
                "financialDetails": {
                    "$ref": "#/definitions/domain.FinancialDetails"
                },
                "height": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "league": {
                    "type": "string"
                },
                "origin": {
                    "$ref": "#/definitions/domain.Origin"
                },
                "otherBenefits": {
                    "type": "string"
                },
                "position": {
                    "type": "string"
                },
                "preferredFoot": {
                    "type": "string"
                },
                "privacySettings": {
                    "$ref": "#/definitions/domain.JobPrivacySettings"
                },
                "salary": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "signingBonus": {
                    "type": "number"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "draft",
                        "published",
                        "closed",
                        "filled"
                    ]
                }
            }
        },
        "v1.RegisterClubRequest": {
            "type": "object",
            "required": [
                "clerkUserId",
                "clubSize",
                "contactInfo",
                "country",
                "email",
                "league",
                "name"
            ],
            "properties": {
                "clerkUserId": {
                    "type": "string"
                },
                "clubSize": {
                    "type": "string",
                    "enum": [
                        "small",
                        "medium",
                        "large"
                    ]
                },
                "contactInfo": {
                    "$ref": "#/definitions/domain.ClubContactInfo"
                },
                "country": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "league": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "privacySettings": {
                    "$ref": "#/definitions/domain.ClubPrivacySettings"
                },
                "recentAchievements": {
                    "type": "string"
                }
            }
        },
        "v1.SetRoleRequest": {
            "type": "object",
            "required": [
                "role"
            ],
            "properties": {
                "role": {
                    "type": "string"
                }
            }
        },
        "v1.UpdateJobRequest": {
            "type": "object",
            "properties": {
                "ageRange": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "clubLevel": {
                    "type": "string"
                },
                "clubName": {
                    "type": "string"
                },
                "contactInfo": {
                    "$ref": "#/definitions/domain.JobContactInfo"
                },
                "country": {
                    "type": "string"
                },
                "expiresAt": {
                    "type": "string"
                },
                "experience": {
                    "$ref": "#/definitions/domain.Experience"
                },
                "financialDetails": {
                    "$ref": "#/definitions/domain.FinancialDetails"
                },
                "height": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "league": {
                    "type": "string"
                },
                "origin": {
                    "$ref": "#/definitions/domain.Origin"
                },
                "position": {
                    "type": "string"
                },
                "preferredFoot": {
                    "type": "string"
                },
                "privacySettings": {
                    "$ref": "#/definitions/domain.JobPrivacySettings"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "draft",
                        "published",
                        "closed",
                        "filled"
                    ]
                }
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

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Scoutline Backend API",
	Description:      "Backend for the football recruitment platform. Clubs register and post player vacancies.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
