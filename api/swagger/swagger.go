package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "BazarHub Admin API",
        "description": "Privileged marketplace administration console backend",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Staff console sessions"},
        {"name": "Orders", "description": "Order interventions"},
        {"name": "Disputes", "description": "Dispute tribunal"},
        {"name": "Payouts", "description": "Payout approvals"},
        {"name": "Appeals", "description": "Suspension appeals"},
        {"name": "Moderation", "description": "User moderation and KYC"},
        {"name": "Staff", "description": "Staff directory management"},
        {"name": "Settings", "description": "Platform configuration"},
        {"name": "Support", "description": "Support tickets"},
        {"name": "Audit", "description": "Compliance exports"}
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
        "/api/v1/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Staff login",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Invalid credentials"},
                    "403": {"description": "Inactive account"}
                }
            }
        },
        "/api/v1/orders/force-status": {
            "post": {
                "tags": ["Orders"],
                "summary": "Force an order into a terminal status",
                "parameters": [
                    {"name": "X-Idempotency-Key", "in": "header", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ForceOrderStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Ack"}},
                    "400": {"description": "Validation failure"},
                    "409": {"description": "State conflict"}
                }
            }
        },
        "/api/v1/disputes/verdict": {
            "post": {
                "tags": ["Disputes"],
                "summary": "Resolve an open dispute with a verdict",
                "parameters": [
                    {"name": "X-Idempotency-Key", "in": "header", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DisputeVerdictRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Ack"}},
                    "409": {"description": "State conflict"}
                }
            }
        },
        "/api/v1/payouts/decision": {
            "post": {
                "tags": ["Payouts"],
                "summary": "Approve or reject a pending payout",
                "parameters": [
                    {"name": "X-Idempotency-Key", "in": "header", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PayoutDecisionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Ack"}},
                    "409": {"description": "State conflict"}
                }
            }
        },
        "/api/v1/appeals/decision": {
            "post": {
                "tags": ["Appeals"],
                "summary": "Rule on a suspension appeal",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AppealDecisionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Ack"}},
                    "409": {"description": "Already decided"}
                }
            }
        },
        "/api/v1/users/account-status": {
            "post": {
                "tags": ["Moderation"],
                "summary": "Suspend or reactivate a marketplace account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AccountStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Ack"}}
                }
            }
        },
        "/api/v1/verifications/decision": {
            "post": {
                "tags": ["Moderation"],
                "summary": "Decide a merchant verification request",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/VerificationDecisionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Ack"}}
                }
            }
        },
        "/api/v1/staff/status": {
            "post": {
                "tags": ["Staff"],
                "summary": "Activate or suspend a staff account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StaffStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Ack"}},
                    "403": {"description": "Protected account"}
                }
            }
        },
        "/api/v1/staff/invite": {
            "post": {
                "tags": ["Staff"],
                "summary": "Grant a console role to a platform user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StaffInviteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Ack"}},
                    "404": {"description": "Platform user not found"}
                }
            }
        },
        "/api/v1/staff/sessions": {
            "get": {
                "tags": ["Staff"],
                "summary": "List staff accounts with their last console activity",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/settings": {
            "get": {
                "tags": ["Settings"],
                "summary": "Read the platform configuration",
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "put": {
                "tags": ["Settings"],
                "summary": "Replace the platform configuration",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SettingsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Ack"}}
                }
            }
        },
        "/api/v1/support/resolve": {
            "post": {
                "tags": ["Support"],
                "summary": "Mark a support ticket resolved",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SupportResolveRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Ack"}}
                }
            }
        },
        "/api/v1/audit/export": {
            "get": {
                "tags": ["Audit"],
                "summary": "Download the audit trail as CSV or PDF",
                "parameters": [
                    {"name": "from", "in": "query", "type": "string"},
                    {"name": "to", "in": "query", "type": "string"},
                    {"name": "action_type", "in": "query", "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        }
    },
    "definitions": {
        "Ack": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "idempotent": {"type": "boolean"}
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
        "ForceOrderStatusRequest": {
            "type": "object",
            "required": ["orderId", "newStatus", "reasonCategory", "reason"],
            "properties": {
                "orderId": {"type": "string"},
                "newStatus": {"type": "string", "enum": ["COMPLETED", "CANCELLED"]},
                "reasonCategory": {"type": "string"},
                "reason": {"type": "string"}
            }
        },
        "DisputeVerdictRequest": {
            "type": "object",
            "required": ["disputeId", "orderId", "verdict", "reasonCategory", "reason"],
            "properties": {
                "disputeId": {"type": "string"},
                "orderId": {"type": "string"},
                "verdict": {"type": "string", "enum": ["refunded_buyer", "released_seller"]},
                "reasonCategory": {"type": "string"},
                "reason": {"type": "string"}
            }
        },
        "PayoutDecisionRequest": {
            "type": "object",
            "required": ["payoutId", "action", "reasonCategory", "reason"],
            "properties": {
                "payoutId": {"type": "string"},
                "action": {"type": "string", "enum": ["approve", "reject"]},
                "reasonCategory": {"type": "string"},
                "reason": {"type": "string"}
            }
        },
        "AppealDecisionRequest": {
            "type": "object",
            "required": ["appealId", "userId", "decision"],
            "properties": {
                "appealId": {"type": "string"},
                "userId": {"type": "string"},
                "decision": {"type": "string", "enum": ["approve", "reject"]},
                "adminNotes": {"type": "string"}
            }
        },
        "AccountStatusRequest": {
            "type": "object",
            "required": ["userId", "accountStatus", "reason"],
            "properties": {
                "userId": {"type": "string"},
                "accountStatus": {"type": "string", "enum": ["active", "suspended"]},
                "reason": {"type": "string"}
            }
        },
        "VerificationDecisionRequest": {
            "type": "object",
            "required": ["requestId", "profileId", "decision"],
            "properties": {
                "requestId": {"type": "string"},
                "profileId": {"type": "string"},
                "decision": {"type": "string", "enum": ["verified", "rejected"]}
            }
        },
        "StaffStatusRequest": {
            "type": "object",
            "required": ["staffId", "isActive"],
            "properties": {
                "staffId": {"type": "string"},
                "isActive": {"type": "boolean"}
            }
        },
        "StaffInviteRequest": {
            "type": "object",
            "required": ["email", "fullName", "role"],
            "properties": {
                "email": {"type": "string"},
                "fullName": {"type": "string"},
                "role": {"type": "string", "enum": ["moderator", "finance", "support", "content"]}
            }
        },
        "SettingsRequest": {
            "type": "object",
            "required": ["maintenance_mode", "min_version_ios", "min_version_android", "support_phone"],
            "properties": {
                "maintenance_mode": {"type": "boolean"},
                "min_version_ios": {"type": "string"},
                "min_version_android": {"type": "string"},
                "support_phone": {"type": "string"}
            }
        },
        "SupportResolveRequest": {
            "type": "object",
            "required": ["ticketId"],
            "properties": {
                "ticketId": {"type": "string"}
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
