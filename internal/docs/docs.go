// Package docs registra la especificación swagger servida en /swagger.
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
        "/health": {
            "get": {
                "tags": [
                    "system"
                ],
                "summary": "Liveness",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/nav": {
            "get": {
                "tags": [
                    "navigation"
                ],
                "summary": "Tabs de navegación inferior",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/home": {
            "get": {
                "tags": [
                    "home"
                ],
                "summary": "Pantalla Home agregada",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/feed": {
            "get": {
                "tags": [
                    "feed"
                ],
                "summary": "Publicaciones del feed",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/notifications/": {
            "get": {
                "tags": [
                    "notifications"
                ],
                "summary": "Notificaciones del viewer",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Viewer; no es autenticación",
                        "name": "X-User-ID",
                        "in": "header"
                    }
                ]
            }
        },
        "/notifications/read-all": {
            "post": {
                "tags": [
                    "notifications"
                ],
                "summary": "Marcar todas como leídas",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Viewer; no es autenticación",
                        "name": "X-User-ID",
                        "in": "header"
                    }
                ]
            }
        },
        "/ask-ai/popular": {
            "get": {
                "tags": [
                    "ask-ai"
                ],
                "summary": "Preguntas populares",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/ask-ai/questions": {
            "get": {
                "tags": [
                    "ask-ai"
                ],
                "summary": "Preguntas de la comunidad",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "post": {
                "tags": [
                    "ask-ai"
                ],
                "summary": "Preguntar a Dog Life AI",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/health-tracker/summary": {
            "get": {
                "tags": [
                    "health"
                ],
                "summary": "Resumen de salud",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/health-tracker/vet-visits": {
            "get": {
                "tags": [
                    "health"
                ],
                "summary": "Visitas al veterinario",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/health-tracker/vaccinations": {
            "get": {
                "tags": [
                    "health"
                ],
                "summary": "Vacunas",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/health-tracker/weight": {
            "get": {
                "tags": [
                    "health"
                ],
                "summary": "Serie de peso",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/health-tracker/behavior": {
            "get": {
                "tags": [
                    "health"
                ],
                "summary": "Serie de comportamiento",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/health-tracker/symptoms/analyze": {
            "post": {
                "tags": [
                    "health"
                ],
                "summary": "Symptom checker",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/services/": {
            "get": {
                "tags": [
                    "services"
                ],
                "summary": "Proveedores de servicios",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/services/categories": {
            "get": {
                "tags": [
                    "services"
                ],
                "summary": "Tipos de filtro",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/services/{serviceID}": {
            "get": {
                "tags": [
                    "services"
                ],
                "summary": "Detalle de proveedor",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del proveedor",
                        "name": "serviceID",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/match/playdates": {
            "get": {
                "tags": [
                    "match"
                ],
                "summary": "Perfiles para playdates",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/match/events": {
            "get": {
                "tags": [
                    "match"
                ],
                "summary": "Eventos",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/thoughts": {
            "post": {
                "tags": [
                    "thoughts"
                ],
                "summary": "Generar pensamiento del perro",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/voice": {
            "post": {
                "tags": [
                    "thoughts"
                ],
                "summary": "Generar voz (modo demo)",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/voiceover/sessions": {
            "post": {
                "tags": [
                    "voiceover"
                ],
                "summary": "Crear sesión de voiceover",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Viewer; no es autenticación",
                        "name": "X-User-ID",
                        "in": "header"
                    }
                ]
            }
        },
        "/voiceover/sessions/{sessionID}": {
            "get": {
                "tags": [
                    "voiceover"
                ],
                "summary": "Estado de la sesión",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID de la sesión",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Viewer; no es autenticación",
                        "name": "X-User-ID",
                        "in": "header"
                    }
                ]
            },
            "delete": {
                "tags": [
                    "voiceover"
                ],
                "summary": "Descartar sesión",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID de la sesión",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Viewer; no es autenticación",
                        "name": "X-User-ID",
                        "in": "header"
                    }
                ]
            }
        },
        "/voiceover/sessions/{sessionID}/generate": {
            "post": {
                "tags": [
                    "voiceover"
                ],
                "summary": "Generar voz del perro",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "202": {
                        "description": "Accepted"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID de la sesión",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Viewer; no es autenticación",
                        "name": "X-User-ID",
                        "in": "header"
                    }
                ]
            }
        },
        "/voiceover/sessions/{sessionID}/acquire": {
            "post": {
                "tags": [
                    "voiceover"
                ],
                "summary": "Cargar un audio",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID de la sesión",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Viewer; no es autenticación",
                        "name": "X-User-ID",
                        "in": "header"
                    }
                ]
            }
        },
        "/voiceover/sessions/{sessionID}/toggle": {
            "post": {
                "tags": [
                    "voiceover"
                ],
                "summary": "Play / pausa",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID de la sesión",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Viewer; no es autenticación",
                        "name": "X-User-ID",
                        "in": "header"
                    }
                ]
            }
        },
        "/voiceover/sessions/{sessionID}/release": {
            "post": {
                "tags": [
                    "voiceover"
                ],
                "summary": "Liberar el audio",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID de la sesión",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Viewer; no es autenticación",
                        "name": "X-User-ID",
                        "in": "header"
                    }
                ]
            }
        }
    }
}`

// SwaggerInfo tiene la info exportada que se puede ajustar en runtime.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Dog Life API",
	Description:      "Backend de la app Dog Life: feed, Ask AI, salud, servicios, match y voiceover.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
