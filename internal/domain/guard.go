package domain

// Decision is the tagged result of the admin route guard: either the request
// may proceed, or the caller must be sent back to the sign-in entry point.
type Decision struct {
	Allowed  bool   `json:"allowed"`
	Redirect string `json:"redirect,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

func Allowed() Decision {
	return Decision{Allowed: true}
}

func Redirect(target, reason string) Decision {
	return Decision{Allowed: false, Redirect: target, Reason: reason}
}

// RoleAdmin is the only role in the system. user_roles is a closed single-role
// table; any row in it means the first-admin bootstrap already ran.
const RoleAdmin = "admin"

// SignInPath is where denied visitors are redirected.
const SignInPath = "/auth"
