package domain

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries a role-tagged principal view: AdminView for
// admins, OfficeView for police offices. Never a credential hash.
type LoginResponse struct {
	Message string `json:"message"`
	Role    Role   `json:"role"`
	User    any    `json:"user"`
	Token   string `json:"token"`
}

type AdminView struct {
	ID        string `json:"admin_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	ContactNo string `json:"contact_no"`
}

func ToAdminView(a *Admin) AdminView {
	return AdminView{
		ID:        a.ID.String(),
		Username:  a.Username,
		Email:     a.Email,
		ContactNo: a.ContactNo,
	}
}
