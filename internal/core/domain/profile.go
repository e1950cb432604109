package domain

import "time"

// Profile is an application user (table profiles).
type Profile struct {
	ID        string      `db:"id" json:"id"`
	Email     *string     `db:"email" json:"email"`
	FullName  *string     `db:"full_name" json:"fullName"`
	Role      ProfileRole `db:"role" json:"role"`
	Team      *string     `db:"team" json:"team"`
	CreatedAt time.Time   `db:"created_at" json:"createdAt"`
}

// ProfileRole is the authorization role of a profile.
type ProfileRole string

const (
	RoleAdmin    ProfileRole = "admin"
	RoleManager  ProfileRole = "manager"
	RoleSalesRep ProfileRole = "sales_rep"
)

func (r ProfileRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleSalesRep:
		return true
	}
	return false
}

// CanModify reports whether a profile with this role may change a record owned by ownerID.
func (p Profile) CanModify(ownerID *string) bool {
	if p.Role == RoleAdmin || p.Role == RoleManager {
		return true
	}
	return ownerID != nil && *ownerID == p.ID
}

// GoogleUserInfo is the subset of the Google userinfo response used at sign-in.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
