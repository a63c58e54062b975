package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"slotifyme-admin/config"
	"slotifyme-admin/services"
	"slotifyme-admin/store"
	"slotifyme-admin/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Cfg    config.Config
	Store  store.Store
	Notify *services.NotifyService
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

type SecurityAnswersInput struct {
	Email   string `json:"email" binding:"required,email"`
	Answers struct {
		Question1 string `json:"question1" binding:"required,min=2"`
		Question2 string `json:"question2" binding:"required,min=2"`
		Question3 string `json:"question3" binding:"required,min=2"`
	} `json:"answers" binding:"required"`
}

type ResetPasswordInput struct {
	ResetToken  string `json:"reset_token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// Login exchanges credentials for a session cookie. Two outcomes only:
// cookie + user summary, or 401 with no cookie side effect.
func (ctl *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input"})
		return
	}

	user, err := ctl.Store.GetUserByEmail(strings.TrimSpace(input.Email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Store error")
		}
		return
	}

	if !user.IsActive || !utils.CheckPasswordHash(input.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), user.Email)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.SetSessionCookie(c, ctl.Cfg, token)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user": gin.H{
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

// Logout clears the session cookie unconditionally.
func (ctl *AuthController) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c, ctl.Cfg)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me returns the authenticated user summary.
func (ctl *AuthController) Me(c *gin.Context) {
	email, exists := c.Get("email")
	if !exists {
		utils.RespondWithError(c, http.StatusInternalServerError, "Email not found in context")
		return
	}

	user, err := ctl.Store.GetUserByEmail(email.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

// ForgotPassword starts the recovery flow. The response is identical whether
// or not the account exists.
func (ctl *AuthController) ForgotPassword(c *gin.Context) {
	var input ForgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": utils.BindingErrors(err)})
		return
	}

	// Intentionally no existence check leak.
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "If the account exists, answer the security questions to continue",
		"questions": []string{
			"What is the name of your first barbershop location?",
			"What was your first barber mentor's last name?",
			"In which year did you start your barbering career?",
		},
	})
}

// VerifySecurityQuestions checks the three answers (case-insensitive) and
// hands out a short-lived reset token on success.
func (ctl *AuthController) VerifySecurityQuestions(c *gin.Context) {
	var input SecurityAnswersInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": utils.BindingErrors(err)})
		return
	}

	user, err := ctl.Store.GetUserByEmail(input.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Verification failed"})
		return
	}

	answers := map[string]string{
		"question1": input.Answers.Question1,
		"question2": input.Answers.Question2,
		"question3": input.Answers.Question3,
	}
	for key, answer := range answers {
		hash, ok := user.SecurityAnswers[key].(string)
		if !ok || !utils.CheckPasswordHash(normalizeAnswer(answer), hash) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Verification failed"})
			return
		}
	}

	resetToken, err := utils.GenerateResetToken(user.Email)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "reset_token": resetToken})
}

// ResetPassword finishes the recovery flow with a valid reset token.
func (ctl *AuthController) ResetPassword(c *gin.Context) {
	var input ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": utils.BindingErrors(err)})
		return
	}

	claims, err := utils.ParseToken(input.ResetToken, utils.PurposePasswordReset)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired reset token"})
		return
	}

	email, _ := claims["email"].(string)
	hash, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update password")
		return
	}

	if err := ctl.Store.UpdateUserPassword(email, hash); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update password")
		return
	}

	if ctl.Notify != nil {
		if user, err := ctl.Store.GetUserByEmail(email); err == nil && user.Phone != "" {
			ctl.Notify.SendPasswordChangedAlert(user.Name, user.Phone, time.Now())
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password updated"})
}

func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
