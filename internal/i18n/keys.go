// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess       = "success"
	KeyError         = "error"
	KeyInternalError = "internal_error"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthProviderExternal   = "auth.provider_external"

	// Access
	KeyAdminAccessDenied   = "admin.access_denied"
	KeyStudentAccessDenied = "student.access_denied"

	// Students
	KeyStudentNotFound = "student.not_found"

	// Leave applications
	KeyLeaveNotFound         = "leave.not_found"
	KeyLeaveAlreadyReviewed  = "leave.already_reviewed"
	KeyLeaveApproved         = "leave.approved"
	KeyLeaveRejected         = "leave.rejected"
	KeyLeaveRemarksRequired  = "leave.remarks_required"
	KeyLeaveInvalidStatus    = "leave.invalid_status"
	KeyLeaveSubmissionFailed = "leave.submission_failed"

	// Data store
	KeyStorePermissionDenied = "store.permission_denied"
	KeyStoreIndexMissing     = "store.index_missing"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// Rate limiting
	KeyRateLimitExceeded = "rate_limit.exceeded"
)
