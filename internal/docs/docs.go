// Package docs registra la especificación OpenAPI servida en /swagger.
// Se regenera con: swag init -g cmd/api/main.go -o internal/docs
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
        "/chat/reply": {
            "post": {
                "description": "Devuelve la respuesta enlatada para el texto según palabras clave (en/ta). Nunca vacía.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Respuesta puntual del asistente",
                "parameters": [
                    {"type": "string", "description": "en | ta", "name": "lang", "in": "query"},
                    {"description": "Pregunta", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/chat.replyRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/chat.replyResponse"}},
                    "400": {"description": "invalid json / text required", "schema": {"type": "string"}}
                }
            }
        },
        "/chat/sessions": {
            "post": {
                "description": "Crea una sesión en memoria con el mensaje de bienvenida en el idioma activo.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Iniciar conversación",
                "parameters": [
                    {"description": "Idioma opcional", "name": "payload", "in": "body", "schema": {"$ref": "#/definitions/chat.startSessionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/chat.sessionResponse"}}
                }
            }
        },
        "/chat/sessions/{sessionID}/messages": {
            "post": {
                "description": "Agrega el turno del usuario y la respuesta del asistente a la sesión.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Enviar mensaje",
                "parameters": [
                    {"type": "string", "description": "ID de la sesión", "name": "sessionID", "in": "path", "required": true},
                    {"description": "Mensaje", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/chat.sendRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/chat.exchangeResponse"}},
                    "400": {"description": "invalid json / text required", "schema": {"type": "string"}},
                    "404": {"description": "session not found", "schema": {"type": "string"}}
                }
            }
        },
        "/detections": {
            "post": {
                "description": "Recibe un archivo (multipart \"file\") y devuelve un diagnóstico simulado. Límite 10MB por defecto.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["detections"],
                "summary": "Analizar imagen o video",
                "parameters": [
                    {"type": "file", "description": "Imagen o video", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "description": "dog | cat | poultry | cattle | pig", "name": "category", "in": "formData"},
                    {"type": "string", "description": "en | ta", "name": "lang", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/diagnosis.resultResponse"}},
                    "400": {"description": "file required", "schema": {"type": "string"}},
                    "413": {"description": "file too large", "schema": {"type": "string"}},
                    "415": {"description": "unsupported media type", "schema": {"type": "string"}}
                }
            }
        },
        "/emergency/{category}/{type}": {
            "get": {
                "description": "Búsqueda exacta por (animal, emergencia). Si no hay protocolo devuelve 200 con steps vacío.",
                "produces": ["application/json"],
                "tags": ["emergency"],
                "summary": "Pasos de primeros auxilios",
                "parameters": [
                    {"type": "string", "description": "dog | cat | poultry | cattle | pig", "name": "category", "in": "path", "required": true},
                    {"type": "string", "description": "severe_bleeding | difficulty_breathing | poisoning | ...", "name": "type", "in": "path", "required": true},
                    {"type": "string", "description": "en | ta", "name": "lang", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/emergency.protocolResponse"}}
                }
            }
        },
        "/vets": {
            "get": {
                "description": "Requiere lat/lng. Devuelve el directorio ordenado por distancia.",
                "produces": ["application/json"],
                "tags": ["vets"],
                "summary": "Veterinarios cercanos",
                "parameters": [
                    {"type": "number", "description": "Latitud", "name": "lat", "in": "query", "required": true},
                    {"type": "number", "description": "Longitud", "name": "lng", "in": "query", "required": true},
                    {"type": "boolean", "description": "Solo abiertos", "name": "open_now", "in": "query"},
                    {"type": "boolean", "description": "Solo 24/7", "name": "emergency", "in": "query"},
                    {"type": "string", "description": "en | ta", "name": "lang", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/vets.vetResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/vets.locationErrorResponse"}}
                }
            }
        },
        "/prescriptions": {
            "get": {
                "description": "Búsqueda por condición o animal (q) y filtro por animal (animal=all|dog|cat|...).",
                "produces": ["application/json"],
                "tags": ["prescriptions"],
                "summary": "Listar recetas",
                "parameters": [
                    {"type": "string", "description": "Texto a buscar", "name": "q", "in": "query"},
                    {"type": "string", "description": "all | dog | cat | poultry | cattle | pig", "name": "animal", "in": "query"},
                    {"type": "string", "description": "en | ta", "name": "lang", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/prescriptions.prescriptionResponse"}}}
                }
            }
        }
    },
    "definitions": {
        "chat.replyRequest": {
            "type": "object",
            "properties": {"text": {"type": "string"}}
        },
        "chat.replyResponse": {
            "type": "object",
            "properties": {
                "intent": {"type": "string"},
                "language": {"type": "string"},
                "text": {"type": "string"}
            }
        },
        "chat.startSessionRequest": {
            "type": "object",
            "properties": {"language": {"type": "string"}}
        },
        "chat.sendRequest": {
            "type": "object",
            "properties": {"text": {"type": "string"}}
        },
        "chat.turnResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "intent": {"type": "string"},
                "sender": {"type": "string"},
                "text": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "chat.sessionResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "id": {"type": "string"},
                "language": {"type": "string"},
                "messages": {"type": "array", "items": {"$ref": "#/definitions/chat.turnResponse"}}
            }
        },
        "chat.exchangeResponse": {
            "type": "object",
            "properties": {
                "assistant": {"$ref": "#/definitions/chat.turnResponse"},
                "user": {"$ref": "#/definitions/chat.turnResponse"}
            }
        },
        "diagnosis.resultResponse": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "category_name": {"type": "string"},
                "confidence": {"type": "integer"},
                "created_at": {"type": "string"},
                "disease": {"type": "string"},
                "id": {"type": "string"},
                "language": {"type": "string"},
                "prescription": {
                    "type": "object",
                    "properties": {
                        "dosage": {"type": "string"},
                        "medicine": {"type": "string"},
                        "precautions": {"type": "string"}
                    }
                },
                "recommendations": {"type": "array", "items": {"type": "string"}},
                "severity": {"type": "string", "enum": ["mild", "moderate", "severe"]},
                "severity_name": {"type": "string"},
                "symptoms": {"type": "array", "items": {"type": "string"}},
                "urgency": {"type": "string", "enum": ["low", "medium", "high"]},
                "urgency_name": {"type": "string"}
            }
        },
        "emergency.protocolResponse": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "category_name": {"type": "string"},
                "critical_notice": {"type": "string"},
                "hotline": {
                    "type": "object",
                    "properties": {
                        "label": {"type": "string"},
                        "number": {"type": "string"}
                    }
                },
                "language": {"type": "string"},
                "steps": {"type": "array", "items": {"type": "string"}},
                "type": {"type": "string"},
                "type_name": {"type": "string"},
                "warning": {"type": "string"}
            }
        },
        "vets.vetResponse": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "call_url": {"type": "string"},
                "directions_url": {"type": "string"},
                "distance_km": {"type": "number"},
                "emergency": {"type": "boolean"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "open_now": {"type": "boolean"},
                "phone": {"type": "string"},
                "rating": {"type": "number"},
                "specialties": {"type": "array", "items": {"type": "string"}}
            }
        },
        "vets.locationErrorResponse": {
            "type": "object",
            "properties": {
                "action": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "prescriptions.prescriptionResponse": {
            "type": "object",
            "properties": {
                "animal": {"type": "string"},
                "animal_name": {"type": "string"},
                "condition": {"type": "string"},
                "date_issued": {"type": "string"},
                "follow_up": {"type": "string"},
                "id": {"type": "string"},
                "medicines": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "dosage": {"type": "string"},
                            "duration": {"type": "string"},
                            "instructions": {"type": "string"},
                            "name": {"type": "string"},
                            "precautions": {"type": "string"}
                        }
                    }
                },
                "severity": {"type": "string"},
                "severity_name": {"type": "string"}
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
	Title:            "Vet Care Assistant API",
	Description:      "Asistente veterinario: chat por palabras clave, diagnóstico simulado, primeros auxilios, veterinarios y recetas (en/ta).",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
