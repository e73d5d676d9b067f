package contactControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

type ContactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// SubmitContactForm forwards the message to the third-party form relay.
// Relay failures surface directly; there is no retry.
// POST /contact
func SubmitContactForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		relayURL := os.Getenv("CONTACT_RELAY_URL")
		if relayURL == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "contact form is not configured"})
			return
		}

		var input ContactInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		jsonData, _ := json.Marshal(input)
		req, _ := http.NewRequest("POST", relayURL, bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		client := &http.Client{}
		resp, err := client.Do(req)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("failed to reach form relay: %v", err)})
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			body, _ := io.ReadAll(resp.Body)
			c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("form relay error (%d): %s", resp.StatusCode, string(body))})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Message sent"})
	}
}
