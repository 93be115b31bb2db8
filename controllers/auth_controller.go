package controllers

import (
	"github.com/LigeronAhill/nextjs-dashboard/dto"
	"github.com/LigeronAhill/nextjs-dashboard/errors"
	"github.com/LigeronAhill/nextjs-dashboard/response"
	"github.com/LigeronAhill/nextjs-dashboard/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login xác thực email/mật khẩu và phát access token.
// Mọi lý do từ chối (sai định dạng, không có user, sai mật khẩu) đều trả về
// cùng một message để không lộ tài khoản nào tồn tại.
func (ctrl *AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	principal, err := ctrl.authService.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeStore) {
			response.ServerError(c)
			return
		}
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	accessToken, err := services.GenerateToken(*principal, 60*24*3)
	if err != nil {
		response.ServerError(c)
		return
	}

	services.SetTokenCookies(c, accessToken)

	response.Success(c, gin.H{
		"user_info":   principal,
		"accessToken": accessToken,
	})
}

// Logout xóa toàn bộ cookie của phiên.
func (ctrl *AuthController) Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}
