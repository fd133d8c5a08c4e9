package authapi

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	IDNumber      string `json:"idNumber"`
	Name          string `json:"name"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phoneNumber,omitempty"`
	Password      string `json:"password"`
	DateOfBirth   string `json:"dateOfBirth,omitempty"` // ISO date (yyyy-MM-dd).
	TermsAccepted bool   `json:"termsAccepted"`
}

// LoginRequest is the payload for password login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleLoginRequest is the payload for Google OAuth login.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken"`
}

// ActivateAccountRequest carries the emailed activation code.
type ActivateAccountRequest struct {
	ActivationCode string `json:"activationCode"`
}

// ResendActivationCodeRequest asks for a new activation code.
type ResendActivationCodeRequest struct {
	Email string `json:"email"`
}

// RequestUnlockRequest asks for an account-unlock code.
type RequestUnlockRequest struct {
	Email string `json:"email"`
}

// VerifyUnlockCodeRequest carries the emailed unlock code.
type VerifyUnlockCodeRequest struct {
	Code string `json:"code"`
}

// ForgotPasswordRequest starts the password recovery flow.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest completes the password recovery flow.
type ResetPasswordRequest struct {
	ResetCode       string `json:"resetCode"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ChangePasswordRequest changes the password of the logged-in account.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// RequestEmailChangeRequest starts the email change flow.
type RequestEmailChangeRequest struct {
	NewEmail             string `json:"newEmail"`
	NewEmailConfirmation string `json:"newEmailConfirmation"`
	CurrentPassword      string `json:"currentPassword"`
}

// VerifyEmailChangeRequest completes the email change flow.
type VerifyEmailChangeRequest struct {
	VerificationCode string `json:"verificationCode"`
}

// UpdateProfileRequest updates mutable profile fields.
type UpdateProfileRequest struct {
	Name        string `json:"name,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// RefreshTokenRequest exchanges a refresh token for a new access token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// AuthResponse is the common success envelope of the authentication API.
// Token fields are present only on operations that issue credentials.
type AuthResponse struct {
	AccessToken  string    `json:"access_token,omitempty"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	TokenType    string    `json:"token_type,omitempty"`
	ExpiresIn    int64     `json:"expires_in,omitempty"`
	UserInfo     *UserInfo `json:"user_info,omitempty"`
	Timestamp    string    `json:"timestamp,omitempty"`
	Message      string    `json:"message,omitempty"`
}

// UserInfo describes the authenticated account.
type UserInfo struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	LastName      string `json:"lastName"`
	FullName      string `json:"fullName,omitempty"`
	Initials      string `json:"initials,omitempty"`
	Role          string `json:"role"`
	Status        string `json:"status"`
	PhoneNumber   string `json:"phoneNumber,omitempty"`
	EmailVerified bool   `json:"emailVerified,omitempty"`
	PhoneVerified bool   `json:"phoneVerified,omitempty"`
	Age           int    `json:"age,omitempty"`
	DateOfBirth   string `json:"dateOfBirth,omitempty"`
	IsMinor       bool   `json:"isMinor,omitempty"`
	LastLogin     string `json:"lastLogin,omitempty"`
	Enabled       bool   `json:"enabled,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
}

// TokenValidation is the result of a server-side token check.
type TokenValidation struct {
	Valid     bool   `json:"valid"`
	Username  string `json:"username,omitempty"`
	ExpiresIn int64  `json:"expires_in,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Message   string `json:"message,omitempty"`
}

// errorResponse is the error envelope returned by the API on non-2xx statuses.
type errorResponse struct {
	Message   string            `json:"message,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
	Status    int               `json:"status,omitempty"`
	Timestamp string            `json:"timestamp,omitempty"`
}
