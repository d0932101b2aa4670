package controllers

import (
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"leetmentor/models"
	"leetmentor/services"

	"github.com/gin-gonic/gin"
	"google.golang.org/genai"
)

const (
	maxPDFBytes       = 20 << 20
	defaultMaxRetries = 5
)

// AssistantController serves the assistant, LeetCode and Lottie endpoints.
type AssistantController struct {
	Assistant *services.Assistant
	Leetcode  *services.LeetcodeClient
	Lottie    *services.LottieLoader
	Defaults  services.QueryOptions
	// MaxRetries bounds the retries a client may request. Zero means 5.
	MaxRetries int
}

func statusForResult(result services.Result) int {
	switch result.Kind {
	case services.ResultOK:
		return http.StatusOK
	case services.ResultNoContent:
		return http.StatusBadRequest
	case services.ResultQuotaExhausted:
		return http.StatusTooManyRequests
	default:
		return http.StatusBadGateway
	}
}

func (ac *AssistantController) queryOptions(req models.AskRequest) services.QueryOptions {
	opts := ac.Defaults
	if req.Retries > 0 {
		opts.Retries = req.Retries
	}
	maxRetries := ac.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	if opts.Retries > maxRetries {
		opts.Retries = maxRetries
	}
	if req.DelaySeconds > 0 {
		opts.Delay = time.Duration(req.DelaySeconds * float64(time.Second))
	}
	if req.MaxChars > 0 {
		opts.MaxChars = req.MaxChars
	}
	return opts
}

// Ask answers a free-form question.
func (ac *AssistantController) Ask(c *gin.Context) {
	var req models.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	result := ac.Assistant.Query(c.Request.Context(), req.Question, ac.queryOptions(req))
	c.JSON(statusForResult(result), models.AskResponse{
		Response: result.Render(),
		Kind:     string(result.Kind),
	})
}

// AskWithPDF answers a question about an uploaded PDF. Expects a multipart
// form with "question", "prompt" and "file".
func (ac *AssistantController) AskWithPDF(c *gin.Context) {
	question := c.PostForm("question")
	prompt := c.PostForm("prompt")

	var pdfContent []*genai.Part
	if header, err := c.FormFile("file"); err == nil {
		if header.Size > maxPDFBytes {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "PDF exceeds 20MB"})
			return
		}
		file, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open uploaded file"})
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
			return
		}
		if len(data) > 0 {
			pdfContent = append(pdfContent, services.PDFPart(data))
		}
	}

	result := ac.Assistant.QueryWithPDF(c.Request.Context(), question, pdfContent, prompt)
	c.JSON(statusForResult(result), models.AskResponse{
		Response: result.Render(),
		Kind:     string(result.Kind),
	})
}

// GetLeetcodeProfile returns the raw GraphQL data for a user.
func (ac *AssistantController) GetLeetcodeProfile(c *gin.Context) {
	username := strings.TrimSpace(c.Param("username"))
	data := ac.Leetcode.FetchProfile(c.Request.Context(), username)
	if data == nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch LeetCode data"})
		return
	}
	c.JSON(http.StatusOK, data)
}

func (ac *AssistantController) fetchSummary(c *gin.Context) (models.ProfileSummary, bool) {
	username := strings.TrimSpace(c.Param("username"))
	data := ac.Leetcode.FetchProfile(c.Request.Context(), username)
	if data == nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch LeetCode data"})
		return models.ProfileSummary{}, false
	}
	profile, err := services.DecodeProfile(data)
	if err != nil {
		log.Printf("Failed to decode profile for %s: %v", username, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Unexpected LeetCode response"})
		return models.ProfileSummary{}, false
	}
	if profile.UserProfile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return models.ProfileSummary{}, false
	}
	return services.Summarize(profile), true
}

// GetLeetcodeSummary returns the compact profile summary for a user.
func (ac *AssistantController) GetLeetcodeSummary(c *gin.Context) {
	summary, ok := ac.fetchSummary(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, summary)
}

// CoachLeetcodeUser asks the model for a study plan based on the profile.
func (ac *AssistantController) CoachLeetcodeUser(c *gin.Context) {
	var req models.CoachRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
			return
		}
	}

	summary, ok := ac.fetchSummary(c)
	if !ok {
		return
	}

	result := ac.Assistant.Query(c.Request.Context(), services.CoachPrompt(summary, req.Focus), ac.Defaults)
	c.JSON(statusForResult(result), models.CoachResponse{
		Summary:  summary,
		Response: result.Render(),
		Kind:     string(result.Kind),
	})
}

// GetAnimation proxies a Lottie animation JSON.
func (ac *AssistantController) GetAnimation(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}
	animation := ac.Lottie.LoadAnimation(c.Request.Context(), url)
	if animation == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Animation not available"})
		return
	}
	c.JSON(http.StatusOK, animation)
}
