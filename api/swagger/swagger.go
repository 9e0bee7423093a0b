package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Takwin Landing API",
        "description": "Marketing-site backend: public course/testimonial listings, lead capture and the admin panel API",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Courses", "description": "Public course listings"},
        {"name": "Testimonials", "description": "Public testimonial listings"},
        {"name": "Leads", "description": "Contact-request capture"},
        {"name": "Admin", "description": "Session-authenticated admin panel"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unavailable"}
                }
            }
        },
        "/api/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List active courses, most recent first",
                "responses": {
                    "200": {"description": "Array of courses", "schema": {"type": "array", "items": {"$ref": "#/definitions/Course"}}},
                    "500": {"description": "Storage failure", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/api/testimonials": {
            "get": {
                "tags": ["Testimonials"],
                "summary": "List active testimonials, most recent first",
                "responses": {
                    "200": {"description": "Array of testimonials", "schema": {"type": "array", "items": {"$ref": "#/definitions/Testimonial"}}},
                    "500": {"description": "Storage failure", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/api/leads": {
            "post": {
                "tags": ["Leads"],
                "summary": "Submit a contact request",
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/CreateLeadRequest"}}
                ],
                "responses": {
                    "200": {"description": "Lead captured", "schema": {"$ref": "#/definitions/OkWithID"}},
                    "400": {"description": "Phone missing", "schema": {"$ref": "#/definitions/APIError"}},
                    "500": {"description": "Storage failure", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/admin/login": {
            "post": {
                "tags": ["Admin"],
                "summary": "Login; sets the admin_session cookie",
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Logged in", "schema": {"$ref": "#/definitions/Ok"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/admin/logout": {
            "post": {
                "tags": ["Admin"],
                "summary": "Logout; idempotent, never fails",
                "responses": {
                    "200": {"description": "Logged out", "schema": {"$ref": "#/definitions/Ok"}}
                }
            }
        },
        "/admin/api/courses": {
            "get": {
                "tags": ["Admin"],
                "summary": "List all courses, inactive included",
                "responses": {
                    "200": {"description": "Array of courses", "schema": {"type": "array", "items": {"$ref": "#/definitions/Course"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "post": {
                "tags": ["Admin"],
                "summary": "Create course",
                "responses": {
                    "200": {"description": "Created", "schema": {"$ref": "#/definitions/OkWithID"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/APIError"}},
                    "409": {"description": "Slug already exists", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/admin/api/courses/{id}": {
            "put": {
                "tags": ["Admin"],
                "summary": "Full-replace update, including active flag",
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/OkWithChanges"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "delete": {
                "tags": ["Admin"],
                "summary": "Delete course (idempotent)",
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/Ok"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/admin/api/leads": {
            "get": {
                "tags": ["Admin"],
                "summary": "List captured leads, newest first",
                "responses": {
                    "200": {"description": "Array of leads", "schema": {"type": "array", "items": {"$ref": "#/definitions/Lead"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        }
    },
    "definitions": {
        "Course": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "slug": {"type": "string"},
                "description": {"type": "string"},
                "duration": {"type": "string"},
                "price": {"type": "string"},
                "image": {"type": "string"},
                "active": {"type": "boolean"}
            }
        },
        "Testimonial": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "author": {"type": "string"},
                "content": {"type": "string"},
                "active": {"type": "boolean"}
            }
        },
        "Lead": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "message": {"type": "string"},
                "source": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "CreateLeadRequest": {
            "type": "object",
            "required": ["phone"],
            "properties": {
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "message": {"type": "string"},
                "source": {"type": "string", "default": "landing"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["user", "pass"],
            "properties": {
                "user": {"type": "string"},
                "pass": {"type": "string"}
            }
        },
        "Ok": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"}
            }
        },
        "OkWithID": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "id": {"type": "integer"}
            }
        },
        "OkWithChanges": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "changes": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
