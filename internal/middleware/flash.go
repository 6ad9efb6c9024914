package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/adityagv/homework-hub/internal/constants"
)

// SetFlash stores a one-shot notice shown on the next rendered page.
func SetFlash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.Set(constants.FlashKey, message)
	_ = session.Save()
}

// TakeFlash returns the pending notice and clears it.
func TakeFlash(c *gin.Context) string {
	session := sessions.Default(c)
	value := session.Get(constants.FlashKey)
	if value == nil {
		return ""
	}

	session.Delete(constants.FlashKey)
	_ = session.Save()

	message, _ := value.(string)
	return message
}
