package request

import "siteforms/internal/usecase/commands"

// ContactRequest is accepted form-encoded or as JSON; the static site posts
// url-encoded bodies. The CSRF token travels in the body like the original
// endpoint expected.
type ContactRequest struct {
	Name      string `form:"name" json:"name"`
	Email     string `form:"email" json:"email"`
	Phone     string `form:"phone" json:"phone"`
	Message   string `form:"message" json:"message"`
	CSRFToken string `form:"csrf_token" json:"csrf_token"`
}

func (r *ContactRequest) ToCommand() commands.ContactRequest {
	return commands.ContactRequest{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Message: r.Message,
	}
}

type NewsletterRequest struct {
	Email     string `form:"email" json:"email"`
	CSRFToken string `form:"csrf_token" json:"csrf_token"`
}
