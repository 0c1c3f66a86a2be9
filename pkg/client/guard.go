package client

// Decision is the outcome of a route-guard check. When Authorized is false,
// RedirectTo names the login route for the required role and ReplaceHistory
// asks the caller to replace the current history entry so the back button
// does not bounce through the protected route.
type Decision struct {
	Authorized     bool
	RedirectTo     string
	ReplaceHistory bool
}

func loginRoute(required Role) string {
	if required == RoleAdmin {
		return "/admin/login"
	}
	return "/user/login"
}

func denied(required Role) Decision {
	return Decision{
		Authorized:     false,
		RedirectTo:     loginRoute(required),
		ReplaceHistory: true,
	}
}

// Guard decides whether the stored session may enter a route requiring the
// given role. Missing session, missing token and role mismatch all deny;
// a matching session authorizes with no server round trip. Token validity is
// ultimately enforced server side on the first API call the route makes.
func (c *Client) Guard(required Role) Decision {
	session, err := c.store.Load()
	if err != nil || !session.Valid() {
		return denied(required)
	}
	if session.Role != required {
		return denied(required)
	}
	return Decision{Authorized: true}
}
