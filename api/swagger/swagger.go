package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Project Review API",
        "description": "Rubric forms, evaluation submissions and weighted final results for academic project reviews",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Forms", "description": "Rubric form authoring and retrieval"},
        {"name": "Evaluations", "description": "Panel and guide submission lifecycle"},
        {"name": "Guide", "description": "Guide-specific projections"},
        {"name": "Weightage", "description": "Review round weight configuration"},
        {"name": "Results", "description": "Weighted final result aggregation"},
        {"name": "Students", "description": "Read-only roster"}
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/forms": {
            "get": {
                "tags": ["Forms"],
                "summary": "List rubric forms",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Forms"],
                "summary": "Create rubric form",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateRubricRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Duplicate form title", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/forms/{formTitle}": {
            "get": {
                "tags": ["Forms"],
                "summary": "Get rubric form by title",
                "parameters": [
                    {"name": "formTitle", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/evaluations": {
            "get": {
                "tags": ["Evaluations"],
                "summary": "Student-facing panel evaluation detail",
                "parameters": [
                    {"name": "rollNo", "in": "query", "required": true, "type": "string"},
                    {"name": "reviewType", "in": "query", "required": true, "type": "string", "enum": ["FIRST", "SECOND", "THIRD"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/evaluations/{evaluatorClass}": {
            "post": {
                "tags": ["Evaluations"],
                "summary": "Submit an evaluation (idempotent upsert)",
                "parameters": [
                    {"name": "evaluatorClass", "in": "path", "required": true, "type": "string", "enum": ["panel", "guide"]},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitEvaluationRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated existing submission", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "201": {"description": "Created new submission", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/evaluations/{evaluatorClass}/check": {
            "get": {
                "tags": ["Evaluations"],
                "summary": "Check whether a submission exists",
                "parameters": [
                    {"name": "evaluatorClass", "in": "path", "required": true, "type": "string", "enum": ["panel", "guide"]},
                    {"name": "rollNo", "in": "query", "required": true, "type": "string"},
                    {"name": "reviewType", "in": "query", "required": true, "type": "string", "enum": ["FIRST", "SECOND", "THIRD"]}
                ],
                "responses": {
                    "200": {"description": "Existing submission", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "No submission yet", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/evaluations/{evaluatorClass}/{id}": {
            "put": {
                "tags": ["Evaluations"],
                "summary": "Update an existing submission by id",
                "parameters": [
                    {"name": "evaluatorClass", "in": "path", "required": true, "type": "string", "enum": ["panel", "guide"]},
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitEvaluationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/guide/marks": {
            "get": {
                "tags": ["Guide"],
                "summary": "Guide submission for a student",
                "parameters": [
                    {"name": "rollNo", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/guide/completed": {
            "get": {
                "tags": ["Guide"],
                "summary": "Whether the guide has scored a student",
                "parameters": [
                    {"name": "rollNo", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/weightage": {
            "get": {
                "tags": ["Weightage"],
                "summary": "Get review weightages",
                "parameters": [
                    {"name": "id", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not configured", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Weightage"],
                "summary": "Set review weightages",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SetWeightageRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/results": {
            "get": {
                "tags": ["Results"],
                "summary": "Stored result breakdown (all-null body when absent)",
                "parameters": [
                    {"name": "rollNo", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Results"],
                "summary": "Store a client-computed final result",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FinalResultInput"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/results/{rollNo}": {
            "put": {
                "tags": ["Results"],
                "summary": "Overwrite the stored final result",
                "parameters": [
                    {"name": "rollNo", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FinalResultInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/results/{rollNo}/aggregate": {
            "post": {
                "tags": ["Results"],
                "summary": "Recompute and store the weighted final result",
                "parameters": [
                    {"name": "rollNo", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "412": {"description": "Weightage missing or nothing to aggregate", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/results/exists": {
            "get": {
                "tags": ["Results"],
                "summary": "Check whether a final result is stored",
                "parameters": [
                    {"name": "rollNo", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/results/summary": {
            "get": {
                "tags": ["Results"],
                "summary": "Cohort result summary with ranks",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/results/export": {
            "get": {
                "tags": ["Results"],
                "summary": "Export the ranked result sheet",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Rendered file"}
                }
            }
        },
        "/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List roster students",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "guideName", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{rollNo}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get one roster student",
                "parameters": [
                    {"name": "rollNo", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "SubParameter": {
            "type": "object",
            "properties": {
                "subParameterName": {"type": "string"},
                "subParameterMaxMarks": {"type": "string"}
            }
        },
        "Parameter": {
            "type": "object",
            "properties": {
                "parameterTitle": {"type": "string"},
                "subParameters": {"type": "array", "items": {"$ref": "#/definitions/SubParameter"}},
                "parameterTotalMarks": {"type": "integer"}
            }
        },
        "ParameterMarks": {
            "type": "object",
            "properties": {
                "parameterTitle": {"type": "string"},
                "subParameterMarks": {"type": "array", "items": {"type": "string"}}
            }
        },
        "CreateRubricRequest": {
            "type": "object",
            "required": ["formTitle", "reviewType", "formParameters"],
            "properties": {
                "formTitle": {"type": "string"},
                "reviewType": {"type": "string", "enum": ["FIRST", "SECOND", "THIRD"]},
                "formParameters": {"type": "array", "items": {"$ref": "#/definitions/Parameter"}}
            }
        },
        "SubmitEvaluationRequest": {
            "type": "object",
            "required": ["rollNo", "formTitle", "formParameters", "formValues", "reviewType"],
            "properties": {
                "rollNo": {"type": "string"},
                "studentName": {"type": "string"},
                "formTitle": {"type": "string"},
                "formParameters": {"type": "array", "items": {"$ref": "#/definitions/Parameter"}},
                "formValues": {"type": "array", "items": {"$ref": "#/definitions/ParameterMarks"}},
                "reviewType": {"type": "string", "enum": ["FIRST", "SECOND", "THIRD"]},
                "remarks": {"type": "string"},
                "calculatedTotalMarks": {"type": "integer"}
            }
        },
        "SetWeightageRequest": {
            "type": "object",
            "properties": {
                "firstReview": {"type": "number"},
                "secondReview": {"type": "number"},
                "thirdReview": {"type": "number"},
                "guideMarks": {"type": "number"}
            }
        },
        "FinalResultInput": {
            "type": "object",
            "required": ["studentRollNo"],
            "properties": {
                "studentRollNo": {"type": "string"},
                "firstReview": {"type": "number"},
                "secondReview": {"type": "number"},
                "thirdReview": {"type": "number"},
                "guideMarks": {"type": "number"},
                "totalMarks": {"type": "number"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
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
