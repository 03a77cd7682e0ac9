// Package docs holds the generated Swagger description of the Dream API.
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
        "/advisor/ask": {
            "post": {
                "summary": "Ask the advisor",
                "description": "Always answers; model failures become an apology",
                "tags": [
                    "advisor"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Question",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Answer in Markdown"
                    },
                    "400": {
                        "description": "Invalid input"
                    }
                }
            }
        },
        "/dashboard/summary": {
            "get": {
                "summary": "Dashboard summary",
                "tags": [
                    "dashboard"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Summary"
                    }
                }
            }
        },
        "/dashboard/days": {
            "get": {
                "summary": "Transactions by day",
                "tags": [
                    "dashboard"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Day groups"
                    }
                }
            }
        },
        "/analytics/budgets": {
            "get": {
                "summary": "Budget progress",
                "tags": [
                    "analytics"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "year",
                        "in": "query",
                        "required": false,
                        "description": "Year (default current)",
                        "type": "integer"
                    },
                    {
                        "name": "month",
                        "in": "query",
                        "required": false,
                        "description": "Month 1-12 (default current)",
                        "type": "integer"
                    },
                    {
                        "name": "include_zero",
                        "in": "query",
                        "required": false,
                        "description": "Include categories with neither budget nor spend",
                        "type": "boolean"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Budget lines"
                    },
                    "400": {
                        "description": "Invalid input"
                    }
                }
            }
        },
        "/analytics/daily": {
            "get": {
                "summary": "Daily spend",
                "tags": [
                    "analytics"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "days",
                        "in": "query",
                        "required": false,
                        "description": "Number of days ending today (default 7)",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Daily totals, oldest first"
                    },
                    "400": {
                        "description": "Invalid input"
                    }
                }
            }
        },
        "/analytics/categories": {
            "get": {
                "summary": "Expense breakdown",
                "tags": [
                    "analytics"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Category totals"
                    }
                }
            }
        },
        "/assets": {
            "get": {
                "summary": "List assets",
                "tags": [
                    "assets"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Assets"
                    }
                }
            }
        },
        "/assets/total": {
            "get": {
                "summary": "Asset total",
                "tags": [
                    "assets"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Total balance"
                    }
                }
            }
        },
        "/assets/{id}": {
            "put": {
                "summary": "Update an asset",
                "description": "Overwrite the balance; name and account number are optional",
                "tags": [
                    "assets"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Asset ID",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "New values",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Asset updated"
                    },
                    "400": {
                        "description": "Invalid input"
                    },
                    "404": {
                        "description": "Asset not found"
                    }
                }
            }
        },
        "/auth/unlock": {
            "post": {
                "summary": "Unlock the ledger",
                "description": "Verify the owner's passcode and get a bearer token",
                "tags": [
                    "auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Passcode",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Token generated"
                    },
                    "400": {
                        "description": "Invalid input"
                    },
                    "401": {
                        "description": "Invalid passcode"
                    },
                    "404": {
                        "description": "Passcode lock not enabled"
                    }
                }
            }
        },
        "/budgets": {
            "get": {
                "summary": "List budgets",
                "tags": [
                    "budgets"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Budgets"
                    }
                }
            },
            "put": {
                "summary": "Set a budget",
                "description": "Set the monthly limit of a top-level expense category",
                "tags": [
                    "budgets"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Budget",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Budget saved"
                    },
                    "400": {
                        "description": "Invalid input or unknown category"
                    }
                }
            }
        },
        "/categories": {
            "get": {
                "summary": "Category tree",
                "tags": [
                    "categories"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "type",
                        "in": "query",
                        "required": false,
                        "description": "income or expense (default expense)",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Top-level nodes with children"
                    },
                    "400": {
                        "description": "Invalid type"
                    }
                }
            }
        },
        "/categories/names": {
            "get": {
                "summary": "Category names",
                "tags": [
                    "categories"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "type",
                        "in": "query",
                        "required": false,
                        "description": "income or expense (default expense)",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Names"
                    },
                    "400": {
                        "description": "Invalid type"
                    }
                }
            }
        },
        "/categories/icon": {
            "get": {
                "summary": "Category icon",
                "tags": [
                    "categories"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "type",
                        "in": "query",
                        "required": false,
                        "description": "income or expense (default expense)",
                        "type": "string"
                    },
                    {
                        "name": "category",
                        "in": "query",
                        "required": true,
                        "description": "Top-level category name",
                        "type": "string"
                    },
                    {
                        "name": "sub_category",
                        "in": "query",
                        "required": false,
                        "description": "Sub-category name",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Icon name"
                    },
                    "400": {
                        "description": "Invalid type"
                    }
                }
            }
        },
        "/entries": {
            "post": {
                "summary": "Open an entry session",
                "description": "With transaction_id the session edits that transaction; otherwise a blank form of the given type (default expense)",
                "tags": [
                    "entries"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Type or transaction to edit",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Session view"
                    },
                    "400": {
                        "description": "Invalid input"
                    },
                    "404": {
                        "description": "Transaction not found"
                    }
                }
            }
        },
        "/entries/{id}": {
            "get": {
                "summary": "Get an entry session",
                "tags": [
                    "entries"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Session ID",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Session view"
                    },
                    "404": {
                        "description": "Session not found"
                    }
                }
            },
            "patch": {
                "summary": "Update form fields",
                "tags": [
                    "entries"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Session ID",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Fields",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Session view"
                    },
                    "400": {
                        "description": "Invalid input"
                    },
                    "404": {
                        "description": "Session not found"
                    }
                }
            },
            "delete": {
                "summary": "Discard an entry",
                "tags": [
                    "entries"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Session ID",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Session discarded"
                    },
                    "404": {
                        "description": "Session not found"
                    }
                }
            }
        },
        "/entries/{id}/type": {
            "post": {
                "summary": "Switch type",
                "description": "Switching to another type resets the category grid and clears the chosen category",
                "tags": [
                    "entries"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Session ID",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Type",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Session view"
                    },
                    "404": {
                        "description": "Session not found"
                    }
                }
            }
        },
        "/entries/{id}/select": {
            "post": {
                "summary": "Select a category",
                "tags": [
                    "entries"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Session ID",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Node",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Session view"
                    },
                    "400": {
                        "description": "Node not visible"
                    },
                    "404": {
                        "description": "Session not found"
                    }
                }
            }
        },
        "/entries/{id}/ascend": {
            "post": {
                "summary": "Go back a level",
                "tags": [
                    "entries"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Session ID",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Session view"
                    },
                    "404": {
                        "description": "Session not found"
                    }
                }
            }
        },
        "/entries/{id}/receipt": {
            "post": {
                "summary": "Scan a receipt",
                "tags": [
                    "entries"
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Session ID",
                        "type": "string"
                    },
                    {
                        "name": "image",
                        "in": "formData",
                        "required": true,
                        "description": "Receipt image",
                        "type": "file"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Session view"
                    },
                    "400": {
                        "description": "Missing image"
                    },
                    "404": {
                        "description": "Session not found"
                    },
                    "422": {
                        "description": "Receipt unreadable"
                    },
                    "503": {
                        "description": "Advisor not configured"
                    }
                }
            }
        },
        "/entries/{id}/submit": {
            "post": {
                "summary": "Submit an entry",
                "description": "Saves the transaction and closes the session. A rejected submission keeps the session open.",
                "tags": [
                    "entries"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Session ID",
                        "type": "string"
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Saved transaction"
                    },
                    "404": {
                        "description": "Session not found"
                    },
                    "422": {
                        "description": "Missing category or invalid amount"
                    }
                }
            }
        },
        "/transactions": {
            "get": {
                "summary": "List transactions",
                "description": "Get a paginated list of transactions, newest first, with optional filters",
                "tags": [
                    "transactions"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "description": "Page number (default 1)",
                        "type": "integer"
                    },
                    {
                        "name": "page_size",
                        "in": "query",
                        "required": false,
                        "description": "Items per page (default 20, max 100)",
                        "type": "integer"
                    },
                    {
                        "name": "type",
                        "in": "query",
                        "required": false,
                        "description": "Filter by transaction type (income, expense)",
                        "type": "string"
                    },
                    {
                        "name": "category",
                        "in": "query",
                        "required": false,
                        "description": "Filter by top-level category name",
                        "type": "string"
                    },
                    {
                        "name": "from",
                        "in": "query",
                        "required": false,
                        "description": "Filter by start date (RFC3339 or YYYY-MM-DD)",
                        "type": "string"
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "required": false,
                        "description": "Filter by end date, inclusive (RFC3339 or YYYY-MM-DD)",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Paginated transactions"
                    },
                    "400": {
                        "description": "Invalid input"
                    },
                    "401": {
                        "description": "Unauthorized"
                    }
                }
            }
        },
        "/transactions/{id}": {
            "get": {
                "summary": "Get a transaction",
                "tags": [
                    "transactions"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Transaction ID",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Transaction"
                    },
                    "404": {
                        "description": "Transaction not found"
                    }
                }
            },
            "put": {
                "summary": "Replace a transaction",
                "tags": [
                    "transactions"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Transaction ID",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Transaction details",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Transaction replaced"
                    },
                    "400": {
                        "description": "Invalid input"
                    },
                    "404": {
                        "description": "Transaction not found"
                    }
                }
            },
            "delete": {
                "summary": "Delete a transaction",
                "tags": [
                    "transactions"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Transaction ID",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Transaction deleted"
                    },
                    "404": {
                        "description": "Transaction not found"
                    }
                }
            }
        },
        "/transactions/export": {
            "get": {
                "summary": "Export transactions",
                "description": "Download every transaction as a CSV file",
                "tags": [
                    "transactions"
                ],
                "produces": [
                    "text/csv"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "CSV file"
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
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
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Dream API",
	Description:      "Dream is a personal ledger: quick expense and income entry over a category tree, budgets, assets and spending analytics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
