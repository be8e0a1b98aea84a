package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "NextStopRussia API",
        "description": "Catalog and student inquiry API for the NextStopRussia admissions site",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": ["http", "https"],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Universities", "description": "Partner universities"},
        {"name": "Programs", "description": "Study programs"},
        {"name": "Testimonials", "description": "Student stories"},
        {"name": "Inquiries", "description": "Contact form leads"},
        {"name": "Auth", "description": "Admin tokens for lead access"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "A dependency is unavailable"}
                }
            }
        },
        "/api/universities": {
            "get": {
                "tags": ["Universities"],
                "summary": "List universities",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/University"}}},
                    "500": {"description": "Failed to fetch universities", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/universities/{id}": {
            "get": {
                "tags": ["Universities"],
                "summary": "Get university by id",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/University"}},
                    "404": {"description": "University not found", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Failed to fetch university", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/universities/{id}/verification": {
            "get": {
                "tags": ["Universities"],
                "summary": "Get the verification link printed on a partnership letter",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/UniversityVerification"}},
                    "404": {"description": "University not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/programs": {
            "get": {
                "tags": ["Programs"],
                "summary": "List programs",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Program"}}},
                    "500": {"description": "Failed to fetch programs", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/programs/{id}": {
            "get": {
                "tags": ["Programs"],
                "summary": "Get program by id",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Program"}},
                    "404": {"description": "Program not found", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Failed to fetch program", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/testimonials": {
            "get": {
                "tags": ["Testimonials"],
                "summary": "List testimonials",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Testimonial"}}},
                    "500": {"description": "Failed to fetch testimonials", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/inquiries": {
            "get": {
                "tags": ["Inquiries"],
                "summary": "List student inquiries",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Inquiry"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Failed to fetch inquiries", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["Inquiries"],
                "summary": "Submit a student inquiry",
                "consumes": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateInquiryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/InquirySubmission"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/SubmissionFailure"}},
                    "500": {"description": "Storage failure", "schema": {"$ref": "#/definitions/SubmissionFailure"}}
                }
            }
        },
        "/api/inquiries/export": {
            "get": {
                "tags": ["Inquiries"],
                "summary": "Download student inquiries",
                "produces": ["text/csv", "application/pdf"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download", "schema": {"type": "file"}},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/auth/token": {
            "post": {
                "tags": ["Auth"],
                "summary": "Exchange admin credentials for an access token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TokenResponse"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "University": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "location": {"type": "string"},
                "description": {"type": "string"},
                "programs": {"type": "array", "items": {"type": "string"}},
                "medium": {"type": "string"},
                "established": {"type": "string", "x-nullable": true},
                "ranking": {"type": "string", "x-nullable": true},
                "logoUrl": {"type": "string", "x-nullable": true},
                "authorizationLetterUrl": {"type": "string", "x-nullable": true}
            }
        },
        "UniversityVerification": {
            "type": "object",
            "properties": {
                "universityId": {"type": "string"},
                "name": {"type": "string"},
                "location": {"type": "string"},
                "verified": {"type": "boolean"},
                "verifyUrl": {"type": "string"},
                "authorizationLetterUrl": {"type": "string", "x-nullable": true}
            }
        },
        "Program": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "category": {"type": "string"},
                "title": {"type": "string"},
                "duration": {"type": "string"},
                "medium": {"type": "string"},
                "eligibility": {"type": "string"},
                "tuitionFees": {"type": "string"},
                "admissionIntakes": {"type": "string"},
                "description": {"type": "string", "x-nullable": true}
            }
        },
        "Testimonial": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "studentName": {"type": "string"},
                "country": {"type": "string"},
                "university": {"type": "string"},
                "program": {"type": "string"},
                "quote": {"type": "string"},
                "year": {"type": "integer"},
                "imageUrl": {"type": "string", "x-nullable": true}
            }
        },
        "Inquiry": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "country": {"type": "string"},
                "programInterest": {"type": "string"},
                "educationLevel": {"type": "string"},
                "message": {"type": "string", "x-nullable": true},
                "createdAt": {"type": "string", "format": "date-time"}
            }
        },
        "CreateInquiryRequest": {
            "type": "object",
            "required": ["name", "email", "phone", "country", "programInterest", "educationLevel"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string", "format": "email"},
                "phone": {"type": "string", "minLength": 10},
                "country": {"type": "string"},
                "programInterest": {"type": "string"},
                "educationLevel": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "InquirySubmission": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "inquiry": {
                    "type": "object",
                    "properties": {
                        "id": {"type": "string"},
                        "createdAt": {"type": "string", "format": "date-time"}
                    }
                }
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "TokenResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "expiresAt": {"type": "string", "format": "date-time"}
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "SubmissionFailure": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
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
