package models

// Operation names a privileged admin action subject to the capability table.
type Operation string

const (
	OpOrderForceStatus       Operation = "orders.force_status"
	OpDisputeVerdict         Operation = "disputes.verdict"
	OpPayoutDecision         Operation = "payouts.decision"
	OpAppealDecision         Operation = "appeals.decision"
	OpAccountStatus          Operation = "users.account_status"
	OpStaffStatus            Operation = "staff.status"
	OpStaffInvite            Operation = "staff.invite"
	OpStaffSessions          Operation = "staff.sessions"
	OpVerificationDecision   Operation = "moderation.verification"
	OpSettingsChange         Operation = "settings.change"
	OpAuditExport            Operation = "audit.export"
	OpSupportTicketResolve   Operation = "support.resolve"
)

// capabilities maps each operation to the set of roles permitted to invoke
// it. This table is the single authority consulted by both the API-level
// authorization gate and the route navigation guard, so "can navigate here"
// and "can execute this action" cannot diverge. Immutable at runtime.
var capabilities = map[Operation][]StaffRole{
	OpOrderForceStatus:     {RoleSuperAdmin, RoleFinance, RoleSupport},
	OpDisputeVerdict:       {RoleSuperAdmin, RoleFinance},
	OpPayoutDecision:       {RoleSuperAdmin, RoleFinance},
	OpAppealDecision:       {RoleSuperAdmin, RoleModerator},
	OpAccountStatus:        {RoleSuperAdmin, RoleModerator},
	OpStaffStatus:          {RoleSuperAdmin},
	OpStaffInvite:          {RoleSuperAdmin},
	OpStaffSessions:        {RoleSuperAdmin},
	OpVerificationDecision: {RoleSuperAdmin, RoleModerator},
	OpSettingsChange:       {RoleSuperAdmin},
	OpAuditExport:          {RoleSuperAdmin, RoleAnalyst},
	OpSupportTicketResolve: {RoleSuperAdmin, RoleSupport, RoleModerator},
}

// RolesFor returns the capability set for an operation. Unknown operations
// return an empty set, which denies every caller.
func RolesFor(op Operation) []StaffRole {
	return capabilities[op]
}

// OperationAllows reports whether the role is in the operation's capability
// set.
func OperationAllows(op Operation, role StaffRole) bool {
	for _, allowed := range capabilities[op] {
		if allowed == role {
			return true
		}
	}
	return false
}
