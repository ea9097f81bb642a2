package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/climate-solutions/solutions-backend/internal/session"
)

type loginForm struct {
	UserName string `form:"userName"`
	Password string `form:"password"`
}

func (h *Handler) loginForm(c *gin.Context) {
	h.render(c, http.StatusOK, "login", gin.H{"Error": "", "UserName": ""})
}

func (h *Handler) login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusOK, "login", gin.H{
			"Error":    "Invalid user name or password.",
			"UserName": "",
		})
		return
	}

	if !h.verifier.Verify(form.UserName, form.Password) {
		// Re-render with the user name echoed back; never the password.
		h.render(c, http.StatusOK, "login", gin.H{
			"Error":    "Invalid user name or password.",
			"UserName": form.UserName,
		})
		return
	}

	token, err := h.sessions.Create(c.Request.Context(), session.User{
		UserName:  form.UserName,
		LoginDate: time.Now().UTC(),
	})
	if err != nil {
		h.log.Error("unable to establish session", zap.Error(err))
		h.renderError(c, err)
		return
	}

	c.SetCookie(session.CookieName, token, h.cookieMaxAge, "/", "", false, true)
	c.Redirect(http.StatusFound, "/solutions/projects")
}

func (h *Handler) logout(c *gin.Context) {
	if token, err := c.Cookie(session.CookieName); err == nil && token != "" {
		if err := h.sessions.Destroy(c.Request.Context(), token); err != nil {
			h.log.Warn("session destroy failed", zap.Error(err))
		}
	}

	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
