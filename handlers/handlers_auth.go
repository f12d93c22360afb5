package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/96TSH/nutrimate/internal/auth"
	"github.com/96TSH/nutrimate/internal/ginutil"
)

// LoginPage serves the sign-in state. A failed attempt lands back here with
// error=true; the message stays generic either way.
func (s *Service) LoginPage(c *gin.Context) {
	if c.Query("error") == "true" {
		ginutil.JSON(c, gin.H{"loginError": true}, "Invalid user ID or password.")
		return
	}
	ginutil.JSON(c, nil, "Please sign in.")
}

// Login handles the login form submission. Success establishes a session and
// redirects to /index; any failure redirects to the generic error login page
// without disclosing whether the user ID exists.
func (s *Service) Login(c *gin.Context) {
	ctx := c.Request.Context()

	username := c.PostForm("username")
	password := c.PostForm("password")

	identity, err := s.Authenticator.Authenticate(ctx, username, password)
	if err != nil {
		c.Redirect(http.StatusFound, "/login?error=true")
		return
	}

	session, _ := s.Sessions.Get(c.Request, SessionCookieName)
	session.Values[sessionUserKey] = identity.Username
	if err := session.Save(c.Request, c.Writer); err != nil {
		s.Logger.Error("failed to save session", zap.Error(err))
		c.Redirect(http.StatusFound, "/login?error=true")
		return
	}

	c.Redirect(http.StatusFound, "/index")
}

// Logout clears the session cookie.
func (s *Service) Logout(c *gin.Context) {
	session, _ := s.Sessions.Get(c.Request, SessionCookieName)
	delete(session.Values, sessionUserKey)
	session.Options.MaxAge = -1
	if err := session.Save(c.Request, c.Writer); err != nil {
		s.Logger.Error("failed to clear session", zap.Error(err))
	}
	c.Redirect(http.StatusFound, "/login")
}

func (s *Service) Index(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		ginutil.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}
	ginutil.JSON(c, gin.H{"username": identity.Username, "role": identity.Role}, "Welcome to Nutrimate.")
}

// ForgotPassword issues a reset token for the account behind the submitted
// email and mails the reset link. The response is identical whether or not
// the email is registered, and a delivery failure never fails the request.
func (s *Service) ForgotPassword(c *gin.Context) {
	ctx := c.Request.Context()

	var req ForgotPasswordRequest
	err := c.BindJSON(&req)
	if err != nil {
		errMsg := "failed to decode forgot-password request"
		s.Logger.Error(errMsg, zap.Error(err))
		ginutil.JSONError(c, http.StatusBadRequest, errMsg+": %v", err)
		return
	}

	if err := req.Validate(); err != nil {
		ginutil.HandleError(c, err)
		return
	}

	const sentMsg = "Password reset link sent. Please check your inbox."

	customer, err := s.Db.GetCustomerByEmail(ctx, req.Email)
	if err != nil {
		errMsg := "failed to look up customer for password reset"
		s.Logger.Error(errMsg, zap.Error(err))
		ginutil.HandleError(c, err)
		return
	}
	if customer == nil {
		ginutil.JSON(c, nil, sentMsg)
		return
	}

	token, err := s.Reset.Issue(ctx, customer)
	if err != nil {
		s.Logger.Error("failed to issue password reset token", zap.Error(err))
		ginutil.HandleError(c, err)
		return
	}

	link := fmt.Sprintf("%s/public/reset-password?token=%s", s.Config.WebAppURL, token)
	body := fmt.Sprintf("Hello %s,\n\nFollow this link to reset your Nutrimate password:\n\n%s\n\nThe link is valid for 24 hours.", customer.FirstName, link)
	if err := s.Mailer.Send(ctx, customer.Email, "Reset your Nutrimate password", body); err != nil {
		// Delivery is fire-and-forget; the issuance already succeeded.
		s.Logger.Error("failed to send password reset email", zap.Error(err))
	}

	ginutil.JSON(c, nil, sentMsg)
}

// ValidateResetToken backs the reset-link click: it distinguishes an unknown
// token from one that existed but lapsed.
func (s *Service) ValidateResetToken(c *gin.Context) {
	ctx := c.Request.Context()

	token := c.Query("token")
	if token == "" {
		ginutil.JSONError(c, http.StatusBadRequest, "token is required")
		return
	}

	status, err := s.Reset.Validate(ctx, token)
	if err != nil {
		s.Logger.Error("failed to validate password reset token", zap.Error(err))
		ginutil.HandleError(c, err)
		return
	}

	switch status {
	case auth.TokenInvalid:
		ginutil.JSONError(c, http.StatusBadRequest, auth.MsgInvalidToken)
	case auth.TokenExpired:
		ginutil.JSONError(c, http.StatusBadRequest, auth.MsgExpiredToken)
	default:
		ginutil.JSON(c, nil, "Token is valid.")
	}
}

// ResetPasswordSubmit performs the final password change.
func (s *Service) ResetPasswordSubmit(c *gin.Context) {
	ctx := c.Request.Context()

	var req ResetPasswordRequest
	err := c.BindJSON(&req)
	if err != nil {
		errMsg := "failed to decode reset-password request"
		s.Logger.Error(errMsg, zap.Error(err))
		ginutil.JSONError(c, http.StatusBadRequest, errMsg+": %v", err)
		return
	}

	if err := req.Validate(); err != nil {
		ginutil.HandleError(c, err)
		return
	}

	if err := s.Reset.SubmitReset(ctx, req.Token, req.Password); err != nil {
		s.Logger.Error("failed to reset password", zap.Error(err))
		ginutil.HandleError(c, err)
		return
	}

	ginutil.JSON(c, nil, "Password has been successfully reset.")
}
