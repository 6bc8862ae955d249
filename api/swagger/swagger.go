package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Counseling Center API",
        "description": "Booking, counselor roster, reviews and notices for the counseling center",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Login, token refresh and account management"},
        {"name": "Consultations", "description": "Consultation bookings"},
        {"name": "Counselors", "description": "Counselor roster"},
        {"name": "Reviews", "description": "Client reviews and moderation"},
        {"name": "Notices", "description": "Center announcements"},
        {"name": "Exports", "description": "Admin data downloads"}
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Database unreachable"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Log in",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TokenPair"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": ["Auth"],
                "summary": "Rotate a refresh token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RefreshRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TokenPair"}},
                    "401": {"description": "Expired or revoked token", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Revoke the current session",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RefreshRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/auth/change-password": {
            "post": {
                "tags": ["Auth"],
                "summary": "Change password",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ChangePasswordRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Old password does not match", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Auth"],
                "summary": "Current user",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}}
                }
            }
        },
        "/consultations": {
            "get": {
                "tags": ["Consultations"],
                "summary": "List consultations",
                "parameters": [
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "contact", "in": "query", "type": "string"},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "offset", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ConsultationList"}}
                }
            },
            "post": {
                "tags": ["Consultations"],
                "summary": "Book a consultation",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateConsultationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/CreatedBody"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/admin/consultations": {
            "get": {
                "tags": ["Consultations"],
                "summary": "List consultations",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "contact", "in": "query", "type": "string"},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "offset", "in": "query", "type": "integer"},
                    {"name": "sort_by", "in": "query", "type": "string"},
                    {"name": "sort_order", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ConsultationList"}}
                }
            }
        },
        "/admin/consultations/{id}": {
            "get": {
                "tags": ["Consultations"],
                "summary": "Get consultation",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Consultation"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "put": {
                "tags": ["Consultations"],
                "summary": "Update consultation",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateConsultationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Consultation"}}
                }
            },
            "delete": {
                "tags": ["Consultations"],
                "summary": "Delete consultation",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/consultations/{id}/status": {
            "patch": {
                "tags": ["Consultations"],
                "summary": "Update consultation status",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Consultation"}},
                    "400": {"description": "Unknown status", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/consultations/{id}": {
            "get": {
                "tags": ["Consultations"],
                "summary": "Get consultation",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Consultation"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/consultations/{id}/cancel": {
            "post": {
                "tags": ["Consultations"],
                "summary": "Cancel a booking",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Consultation"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/counselors": {
            "get": {
                "tags": ["Counselors"],
                "summary": "List active counselors",
                "parameters": [
                    {"name": "online", "in": "query", "type": "boolean"},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "offset", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CounselorList"}}
                }
            }
        },
        "/counselors/{id}": {
            "get": {
                "tags": ["Counselors"],
                "summary": "Get counselor",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Counselor"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/admin/counselors": {
            "get": {
                "tags": ["Counselors"],
                "summary": "List all counselors",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CounselorList"}}
                }
            },
            "post": {
                "tags": ["Counselors"],
                "summary": "Create counselor",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCounselorRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/CreatedBody"}},
                    "409": {"description": "Duplicate email", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/admin/counselors/{id}": {
            "put": {
                "tags": ["Counselors"],
                "summary": "Update counselor",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateCounselorRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Counselor"}}
                }
            },
            "delete": {
                "tags": ["Counselors"],
                "summary": "Delete counselor",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Counselor still has reviews", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/admin/counselors/{id}/toggle": {
            "patch": {
                "tags": ["Counselors"],
                "summary": "Toggle counselor visibility",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/reviews": {
            "get": {
                "tags": ["Reviews"],
                "summary": "List approved reviews",
                "parameters": [
                    {"name": "counselor_id", "in": "query", "type": "string"},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "offset", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ReviewList"}}
                }
            },
            "post": {
                "tags": ["Reviews"],
                "summary": "Submit a review",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateReviewRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/CreatedBody"}},
                    "400": {"description": "Invalid rating or counselor", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/reviews/{id}": {
            "get": {
                "tags": ["Reviews"],
                "summary": "Get review",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Review"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/admin/reviews": {
            "get": {
                "tags": ["Reviews"],
                "summary": "List all reviews",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "approved", "in": "query", "type": "boolean"},
                    {"name": "active", "in": "query", "type": "boolean"},
                    {"name": "counselor_id", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ReviewList"}}
                }
            }
        },
        "/admin/reviews/{id}": {
            "put": {
                "tags": ["Reviews"],
                "summary": "Update review",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateReviewRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Review"}}
                }
            },
            "delete": {
                "tags": ["Reviews"],
                "summary": "Delete review",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/reviews/{id}/approve": {
            "patch": {
                "tags": ["Reviews"],
                "summary": "Approve review",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Review"}}
                }
            }
        },
        "/notices": {
            "get": {
                "tags": ["Notices"],
                "summary": "List published notices",
                "parameters": [
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "offset", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/NoticeList"}}
                }
            }
        },
        "/notices/{id}": {
            "get": {
                "tags": ["Notices"],
                "summary": "Get notice",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Notice"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/admin/notices": {
            "get": {
                "tags": ["Notices"],
                "summary": "List all notices",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "type", "in": "query", "type": "string"},
                    {"name": "status", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/NoticeList"}}
                }
            },
            "post": {
                "tags": ["Notices"],
                "summary": "Create notice",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateNoticeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/CreatedBody"}}
                }
            }
        },
        "/admin/notices/{id}": {
            "put": {
                "tags": ["Notices"],
                "summary": "Update notice",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateNoticeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Notice"}}
                }
            },
            "delete": {
                "tags": ["Notices"],
                "summary": "Delete notice",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/exports/consultations": {
            "get": {
                "tags": ["Exports"],
                "summary": "Export consultations",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "description": "csv or pdf"},
                    {"name": "status", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/admin/exports/reviews": {
            "get": {
                "tags": ["Exports"],
                "summary": "Export reviews",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "description": "csv or pdf"}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        }
    },
    "definitions": {
        "Consultation": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "counselor_id": {"type": "string"},
                "contact_name": {"type": "string"},
                "contact_phone": {"type": "string"},
                "contact_email": {"type": "string"},
                "consultation_type": {"type": "string", "enum": ["individual", "couple", "family", "youth", "trauma"]},
                "method": {"type": "string", "enum": ["online", "offline"]},
                "status": {"type": "string", "enum": ["pending", "confirmed", "completed", "cancelled"]},
                "urgency": {"type": "string", "enum": ["low", "medium", "high", "urgent"]},
                "preferred_date": {"type": "string"},
                "preferred_time": {"type": "string"},
                "description": {"type": "string"},
                "notes": {"type": "string"},
                "is_confidential": {"type": "boolean"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "Counselor": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "specialization": {"type": "string"},
                "experience_years": {"type": "integer"},
                "education": {"type": "string"},
                "certification": {"type": "string"},
                "bio": {"type": "string"},
                "profile_image": {"type": "string"},
                "rating": {"type": "number"},
                "total_reviews": {"type": "integer"},
                "is_online": {"type": "boolean"},
                "is_active": {"type": "boolean"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "Review": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "counselor_id": {"type": "string"},
                "consultation_id": {"type": "string"},
                "author_name": {"type": "string"},
                "rating": {"type": "integer", "minimum": 1, "maximum": 5},
                "title": {"type": "string"},
                "content": {"type": "string"},
                "is_anonymous": {"type": "boolean"},
                "is_approved": {"type": "boolean"},
                "is_active": {"type": "boolean"},
                "image_url": {"type": "string"},
                "view_count": {"type": "integer"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "Notice": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "content": {"type": "string"},
                "notice_type": {"type": "string", "enum": ["general", "important", "event", "maintenance"]},
                "status": {"type": "string", "enum": ["draft", "published", "archived"]},
                "author_name": {"type": "string"},
                "is_pinned": {"type": "boolean"},
                "is_active": {"type": "boolean"},
                "attachment_url": {"type": "string"},
                "view_count": {"type": "integer"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "email": {"type": "string"},
                "full_name": {"type": "string"},
                "phone": {"type": "string"},
                "role": {"type": "string", "enum": ["ADMIN", "CLIENT"]},
                "active": {"type": "boolean"},
                "last_login": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["email", "password"]
        },
        "RefreshRequest": {
            "type": "object",
            "properties": {
                "refresh_token": {"type": "string"}
            },
            "required": ["refresh_token"]
        },
        "ChangePasswordRequest": {
            "type": "object",
            "properties": {
                "old_password": {"type": "string"},
                "new_password": {"type": "string", "minLength": 8}
            },
            "required": ["old_password", "new_password"]
        },
        "TokenPair": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "refresh_token": {"type": "string"},
                "expires_in": {"type": "integer"},
                "issued_at": {"type": "string"},
                "user": {"$ref": "#/definitions/User"}
            }
        },
        "CreateConsultationRequest": {
            "type": "object",
            "properties": {
                "counselor_id": {"type": "string"},
                "contact_name": {"type": "string"},
                "contact_phone": {"type": "string"},
                "contact_email": {"type": "string"},
                "consultation_type": {"type": "string"},
                "method": {"type": "string"},
                "urgency": {"type": "string"},
                "preferred_date": {"type": "string"},
                "preferred_time": {"type": "string"},
                "description": {"type": "string"},
                "notes": {"type": "string"},
                "is_confidential": {"type": "boolean"}
            },
            "required": ["counselor_id", "contact_name", "contact_phone", "consultation_type", "method", "preferred_date", "preferred_time", "description"]
        },
        "UpdateConsultationRequest": {
            "type": "object",
            "properties": {
                "counselor_id": {"type": "string"},
                "contact_name": {"type": "string"},
                "contact_phone": {"type": "string"},
                "contact_email": {"type": "string"},
                "consultation_type": {"type": "string"},
                "method": {"type": "string"},
                "status": {"type": "string"},
                "urgency": {"type": "string"},
                "preferred_date": {"type": "string"},
                "preferred_time": {"type": "string"},
                "description": {"type": "string"},
                "notes": {"type": "string"},
                "is_confidential": {"type": "boolean"}
            },
            "required": ["counselor_id", "contact_name", "contact_phone", "consultation_type", "method", "status", "preferred_date", "preferred_time", "description"]
        },
        "UpdateStatusRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["pending", "confirmed", "completed", "cancelled"]}
            },
            "required": ["status"]
        },
        "CreateCounselorRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "specialization": {"type": "string"},
                "experience_years": {"type": "integer"},
                "education": {"type": "string"},
                "certification": {"type": "string"},
                "bio": {"type": "string"},
                "profile_image": {"type": "string"},
                "is_online": {"type": "boolean"},
                "is_active": {"type": "boolean"}
            },
            "required": ["name", "specialization"]
        },
        "UpdateCounselorRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "specialization": {"type": "string"},
                "experience_years": {"type": "integer"},
                "education": {"type": "string"},
                "certification": {"type": "string"},
                "bio": {"type": "string"},
                "profile_image": {"type": "string"},
                "is_online": {"type": "boolean"},
                "is_active": {"type": "boolean"}
            }
        },
        "CreateReviewRequest": {
            "type": "object",
            "properties": {
                "counselor_id": {"type": "string"},
                "consultation_id": {"type": "string"},
                "author_name": {"type": "string"},
                "rating": {"type": "integer", "minimum": 1, "maximum": 5},
                "title": {"type": "string"},
                "content": {"type": "string"},
                "is_anonymous": {"type": "boolean"},
                "image_url": {"type": "string"}
            },
            "required": ["author_name", "rating", "title", "content"]
        },
        "UpdateReviewRequest": {
            "type": "object",
            "properties": {
                "counselor_id": {"type": "string"},
                "consultation_id": {"type": "string"},
                "author_name": {"type": "string"},
                "rating": {"type": "integer", "minimum": 1, "maximum": 5},
                "title": {"type": "string"},
                "content": {"type": "string"},
                "is_anonymous": {"type": "boolean"},
                "is_approved": {"type": "boolean"},
                "is_active": {"type": "boolean"},
                "image_url": {"type": "string"}
            },
            "required": ["author_name", "rating", "title", "content"]
        },
        "CreateNoticeRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "content": {"type": "string"},
                "notice_type": {"type": "string"},
                "status": {"type": "string"},
                "author_name": {"type": "string"},
                "is_pinned": {"type": "boolean"},
                "is_active": {"type": "boolean"},
                "attachment_url": {"type": "string"}
            },
            "required": ["title", "content"]
        },
        "UpdateNoticeRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "content": {"type": "string"},
                "notice_type": {"type": "string"},
                "status": {"type": "string"},
                "author_name": {"type": "string"},
                "is_pinned": {"type": "boolean"},
                "is_active": {"type": "boolean"},
                "attachment_url": {"type": "string"}
            },
            "required": ["title", "content", "notice_type", "status"]
        },
        "ConsultationList": {
            "type": "object",
            "properties": {
                "consultations": {"type": "array", "items": {"$ref": "#/definitions/Consultation"}},
                "count": {"type": "integer"}
            }
        },
        "CounselorList": {
            "type": "object",
            "properties": {
                "counselors": {"type": "array", "items": {"$ref": "#/definitions/Counselor"}},
                "count": {"type": "integer"}
            }
        },
        "ReviewList": {
            "type": "object",
            "properties": {
                "reviews": {"type": "array", "items": {"$ref": "#/definitions/Review"}},
                "count": {"type": "integer"}
            }
        },
        "NoticeList": {
            "type": "object",
            "properties": {
                "notices": {"type": "array", "items": {"$ref": "#/definitions/Notice"}},
                "count": {"type": "integer"}
            }
        },
        "CreatedBody": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "id": {"type": "string"}
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "code": {"type": "string"}
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
