package authn

// Well-known role codes. Codes are case-sensitive. A user may also carry
// role codes outside this set; such roles exist but confer no privileges.
const (
	// RoleCodeAdmin is the code of the role that enables principals to do
	// anything an editor can, plus manage users.
	RoleCodeAdmin = "admin"
	// RoleCodeEditor is the code of the role that enables principals to
	// create, update, and delete rustaceans and crates.
	RoleCodeEditor = "editor"
	// RoleCodeViewer is the code of the role that enables principals to read
	// rustaceans and crates. Any authenticated principal can read, so this
	// role is nominal.
	RoleCodeViewer = "viewer"
)
