package domain

// Role is the closed set of user roles.
type Role string

const (
	RoleDonor     Role = "donor"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

// ApplicationStatus is the closed set of organizer application states.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// DonationStatus is the closed set of donation states.
type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationCompleted DonationStatus = "completed"
	DonationFailed    DonationStatus = "failed"
)

// WithdrawalStatus is the closed set of withdrawal request states.
type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalApproved WithdrawalStatus = "approved"
	WithdrawalRejected WithdrawalStatus = "rejected"
	WithdrawalPaid     WithdrawalStatus = "paid"
)

// CodePurpose distinguishes one-time code usages.
type CodePurpose string

const (
	CodePurposeEmailVerification CodePurpose = "email_verification"
	CodePurposePasswordReset     CodePurpose = "password_reset"
)

// OrganizerFilter selects a slice of the organizer population.
type OrganizerFilter string

const (
	OrganizerFilterActive  OrganizerFilter = "active"
	OrganizerFilterRevoked OrganizerFilter = "revoked"
	OrganizerFilterPending OrganizerFilter = "pending"
)

const (
	ClosedReasonOrganizerRevoked  = "Organizer account revoked"
	AdminMessageOrganizerRevoked  = "Organizer account has been revoked"
	DefaultRejectionReason        = "Your application did not meet the requirements"
	DefaultWithdrawalRejectReason = "Withdrawal request rejected"
)

const (
	CallerIDCtxKey   = "cw-callerId"
	CallerRoleCtxKey = "cw-callerRole"
)
