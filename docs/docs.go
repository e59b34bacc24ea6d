// Package docs holds the Swagger 2.0 document served under /swagger.
// Keep it in step with the @Router annotations in internal/http/handler.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "Describe the assessment",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Introduction"}}
                }
            }
        },
        "/api/v1/inventory/defaults": {
            "get": {
                "produces": ["application/json"],
                "tags": ["calculate"],
                "summary": "Default inventory and emission factors",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Inventory"}}
                }
            }
        },
        "/api/v1/calculate": {
            "post": {
                "description": "Absent fields take their default values.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["calculate"],
                "summary": "Compute stage emissions of an inventory",
                "parameters": [
                    {"description": "Inventory", "name": "inventory", "in": "body", "schema": {"$ref": "#/definitions/model.Inventory"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.CalculationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/api/v1/analysis": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["calculate"],
                "summary": "Interpret the emissions of an inventory",
                "parameters": [
                    {"description": "Inventory", "name": "inventory", "in": "body", "schema": {"$ref": "#/definitions/model.Inventory"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/lca.Analysis"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/api/v1/breakdown": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["calculate"],
                "summary": "Per-stage emission shares of an inventory",
                "parameters": [
                    {"description": "Inventory", "name": "inventory", "in": "body", "schema": {"$ref": "#/definitions/model.Inventory"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/lca.Breakdown"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/api/v1/report.csv": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["text/csv"],
                "tags": ["calculate"],
                "summary": "Download the CSV report of an inventory",
                "parameters": [
                    {"description": "Inventory", "name": "inventory", "in": "body", "schema": {"$ref": "#/definitions/model.Inventory"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/api/v1/scenarios": {
            "get": {
                "produces": ["application/json"],
                "tags": ["scenarios"],
                "summary": "List scenarios, newest first",
                "parameters": [
                    {"type": "integer", "default": 10, "description": "Page size", "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "description": "Offset", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.ScenarioListResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["scenarios"],
                "summary": "Store a named inventory",
                "parameters": [
                    {"description": "Scenario", "name": "scenario", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ScenarioRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Scenario"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/api/v1/scenarios/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["scenarios"],
                "summary": "Get a scenario",
                "parameters": [
                    {"type": "string", "description": "Scenario ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Scenario"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["scenarios"],
                "summary": "Update name and inventory of a scenario",
                "parameters": [
                    {"type": "string", "description": "Scenario ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "scenario", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ScenarioRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Scenario"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            },
            "delete": {
                "tags": ["scenarios"],
                "summary": "Delete a scenario",
                "parameters": [
                    {"type": "string", "description": "Scenario ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/api/v1/scenarios/{id}/result": {
            "get": {
                "produces": ["application/json"],
                "tags": ["scenarios"],
                "summary": "Stage emissions of a scenario",
                "parameters": [
                    {"type": "string", "description": "Scenario ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.CalculationResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/api/v1/scenarios/{id}/analysis": {
            "get": {
                "produces": ["application/json"],
                "tags": ["scenarios"],
                "summary": "Interpretation of a scenario",
                "parameters": [
                    {"type": "string", "description": "Scenario ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/lca.Analysis"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/api/v1/scenarios/{id}/breakdown": {
            "get": {
                "produces": ["application/json"],
                "tags": ["scenarios"],
                "summary": "Per-stage emission shares of a scenario",
                "parameters": [
                    {"type": "string", "description": "Scenario ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/lca.Breakdown"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/api/v1/scenarios/{id}/reports": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "List the reports of a scenario",
                "parameters": [
                    {"type": "string", "description": "Scenario ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ReportListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            },
            "post": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Generate and store the CSV report of a scenario",
                "parameters": [
                    {"type": "string", "description": "Scenario ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Report"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/api/v1/reports/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Report metadata with a presigned download URL",
                "parameters": [
                    {"type": "string", "description": "Report ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.ReportView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            },
            "delete": {
                "tags": ["reports"],
                "summary": "Delete a report",
                "parameters": [
                    {"type": "string", "description": "Report ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/api/v1/reports/{id}/download": {
            "get": {
                "produces": ["text/csv"],
                "tags": ["reports"],
                "summary": "Download a stored report",
                "parameters": [
                    {"type": "string", "description": "Report ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        }
    },
    "definitions": {
        "handler.Introduction": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "goal": {"type": "string"},
                "system_boundary": {"type": "array", "items": {"type": "string"}},
                "functional_unit": {"type": "string"},
                "footer": {"type": "string"}
            }
        },
        "handler.errorEnvelope": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handler.errorPayload": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string"},
                "error": {"$ref": "#/definitions/handler.errorEnvelope"}
            }
        },
        "lca.Metric": {
            "type": "object",
            "properties": {
                "metric": {"type": "string"},
                "value": {"type": "number"}
            }
        },
        "lca.Result": {
            "type": "object",
            "properties": {
                "stage1": {"type": "number"},
                "stage2": {"type": "number"},
                "stage3": {"type": "number"},
                "stage5": {"type": "number"},
                "total": {"type": "number"}
            }
        },
        "handler.CalculationResponse": {
            "type": "object",
            "properties": {
                "result": {"$ref": "#/definitions/lca.Result"},
                "metrics": {"type": "array", "items": {"$ref": "#/definitions/lca.Metric"}}
            }
        },
        "model.Inventory": {
            "type": "object",
            "properties": {
                "fu_mj": {"type": "number"},
                "wco_volume_l": {"type": "number"},
                "collection_distance_km": {"type": "number"},
                "methanol_l": {"type": "number"},
                "koh_kg": {"type": "number"},
                "reaction_energy_kwh": {"type": "number"},
                "purification_water_l": {"type": "number"},
                "drying_energy_kwh": {"type": "number"},
                "distribution_distance_km": {"type": "number"},
                "load_capacity_l": {"type": "number"},
                "glycerol_kg": {"type": "number"},
                "wastewater_l": {"type": "number"},
                "wco_collection_ef": {"type": "number"},
                "methanol_ef": {"type": "number"},
                "koh_ef": {"type": "number"},
                "energy_ef": {"type": "number"},
                "wastewater_treat_ef": {"type": "number"},
                "glycerol_disposal_ef": {"type": "number"}
            }
        },
        "handler.ScenarioRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "inventory": {"$ref": "#/definitions/model.Inventory"}
            }
        },
        "model.Scenario": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "inventory": {"$ref": "#/definitions/model.Inventory"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "service.ScenarioListResult": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/model.Scenario"}},
                "total": {"type": "integer"}
            }
        },
        "lca.Contribution": {
            "type": "object",
            "properties": {
                "stage": {"type": "string"},
                "emissions": {"type": "number"},
                "share_pct": {"type": "number"}
            }
        },
        "lca.Analysis": {
            "type": "object",
            "properties": {
                "result": {"$ref": "#/definitions/lca.Result"},
                "contributions": {"type": "array", "items": {"$ref": "#/definitions/lca.Contribution"}},
                "findings": {"type": "array", "items": {"type": "string"}},
                "opportunities": {"type": "array", "items": {"type": "string"}}
            }
        },
        "lca.Breakdown": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "slices": {"type": "array", "items": {"$ref": "#/definitions/lca.Contribution"}}
            }
        },
        "handler.ReportListResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/model.Report"}},
                "total": {"type": "integer"}
            }
        },
        "model.Report": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "scenario_id": {"type": "string"},
                "storage_path": {"type": "string"},
                "size": {"type": "integer"},
                "total_kg_co2": {"type": "number"},
                "created_at": {"type": "string"}
            }
        },
        "service.ReportView": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "scenario_id": {"type": "string"},
                "storage_path": {"type": "string"},
                "size": {"type": "integer"},
                "total_kg_co2": {"type": "number"},
                "created_at": {"type": "string"},
                "download_url": {"type": "string"},
                "expires_at": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "LCA API",
	Description:      "Cradle-to-grave CO2 assessment of biofuel from waste cooking oil, FU = 1 MJ.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
