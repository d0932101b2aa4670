package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"

	"leetmentor/models"
)

const (
	defaultLeetcodeEndpoint = "https://leetcode.com/graphql"
	defaultRecentAcLimit    = 15
	maxTopLanguages         = 5
)

const leetcodeQueryTemplate = `
query getLeetCodeData($username: String!) {
  userProfile: matchedUser(username: $username) {
    username
    profile {
      userAvatar
      reputation
      ranking
    }
    submitStats {
      acSubmissionNum {
        difficulty
        count
      }
      totalSubmissionNum {
        difficulty
        count
      }
    }
  }
  userContestRanking(username: $username) {
    attendedContestsCount
    rating
    globalRanking
    totalParticipants
    topPercentage
  }
  recentSubmissionList(username: $username) {
    title
    statusDisplay
    lang
  }
  matchedUser(username: $username) {
    languageProblemCount {
      languageName
      problemsSolved
    }
  }
  recentAcSubmissionList(username: $username, limit: %d) {
    id
    title
    titleSlug
    timestamp
  }
}
`

type LeetcodeConfig struct {
	Endpoint      string
	RecentAcLimit int
}

// LeetcodeClient fetches profile statistics from the LeetCode GraphQL API.
type LeetcodeClient struct {
	endpoint   string
	query      string
	httpClient *http.Client
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

func NewLeetcodeClient(cfg LeetcodeConfig, httpClient *http.Client) *LeetcodeClient {
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultLeetcodeEndpoint
	}
	if cfg.RecentAcLimit <= 0 {
		cfg.RecentAcLimit = defaultRecentAcLimit
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &LeetcodeClient{
		endpoint:   cfg.Endpoint,
		query:      fmt.Sprintf(leetcodeQueryTemplate, cfg.RecentAcLimit),
		httpClient: httpClient,
	}
}

// Query returns the GraphQL document sent by FetchProfile.
func (c *LeetcodeClient) Query() string {
	return c.query
}

// FetchProfile returns the "data" object for username, or nil when the
// request fails or the API reports errors.
func (c *LeetcodeClient) FetchProfile(ctx context.Context, username string) map[string]any {
	body, err := json.Marshal(graphQLRequest{
		Query:     c.query,
		Variables: map[string]any{"username": username},
	})
	if err != nil {
		log.Printf("Failed to marshal LeetCode query: %v", err)
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		log.Printf("Failed to create LeetCode request: %v", err)
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", "https://leetcode.com")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("LeetCode request failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("Failed to decode LeetCode response (status %d): %v", resp.StatusCode, err)
		return nil
	}

	if errs, ok := payload["errors"]; ok {
		log.Printf("Error: %v", errs)
		return nil
	}

	data, ok := payload["data"].(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return data
}

// DecodeProfile converts the raw data object into its typed form.
func DecodeProfile(data map[string]any) (*models.LeetcodeProfile, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile data: %w", err)
	}
	var profile models.LeetcodeProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile data: %w", err)
	}
	return &profile, nil
}

// Summarize reduces a profile to the numbers the study coach works with.
func Summarize(profile *models.LeetcodeProfile) models.ProfileSummary {
	summary := models.ProfileSummary{
		Solved:         map[string]int{},
		Submissions:    map[string]int{},
		TopLanguages:   []models.LanguageCount{},
		RecentAccepted: []string{},
	}

	if user := profile.UserProfile; user != nil {
		summary.Username = user.Username
		summary.Avatar = user.Profile.UserAvatar
		summary.Ranking = user.Profile.Ranking
		summary.Reputation = user.Profile.Reputation
		for _, dc := range user.SubmitStats.AcSubmissionNum {
			summary.Solved[dc.Difficulty] = dc.Count
		}
		for _, dc := range user.SubmitStats.TotalSubmissionNum {
			summary.Submissions[dc.Difficulty] = dc.Count
		}
		if total := summary.Submissions["All"]; total > 0 {
			summary.AcceptanceRate = float64(summary.Solved["All"]) / float64(total) * 100
		}
	}

	if ranking := profile.UserContestRanking; ranking != nil {
		summary.ContestsAttended = ranking.AttendedContestsCount
		summary.ContestRating = ranking.Rating
		summary.TopPercentage = ranking.TopPercentage
	}

	if profile.MatchedUser != nil {
		langs := append([]models.LanguageCount(nil), profile.MatchedUser.LanguageProblemCount...)
		sort.SliceStable(langs, func(i, j int) bool {
			return langs[i].ProblemsSolved > langs[j].ProblemsSolved
		})
		if len(langs) > maxTopLanguages {
			langs = langs[:maxTopLanguages]
		}
		summary.TopLanguages = append(summary.TopLanguages, langs...)
	}

	for _, sub := range profile.RecentSubmissionList {
		if sub.StatusDisplay != "Accepted" {
			summary.RecentFailures++
		}
	}
	for _, ac := range profile.RecentAcSubmissionList {
		summary.RecentAccepted = append(summary.RecentAccepted, ac.Title)
	}

	return summary
}

// CoachPrompt builds a study-plan question from a profile summary.
func CoachPrompt(summary models.ProfileSummary, focus string) string {
	var sb strings.Builder
	sb.WriteString("Act as a LeetCode coach. Based on the statistics below, point out strengths, weaknesses and a concrete practice plan for the next two weeks.\n\n")
	fmt.Fprintf(&sb, "Username: %s\n", summary.Username)
	fmt.Fprintf(&sb, "Global ranking: %d\n", summary.Ranking)
	fmt.Fprintf(&sb, "Solved: easy %d, medium %d, hard %d (total %d)\n",
		summary.Solved["Easy"], summary.Solved["Medium"], summary.Solved["Hard"], summary.Solved["All"])
	fmt.Fprintf(&sb, "Acceptance rate: %.1f%%\n", summary.AcceptanceRate)
	if summary.ContestsAttended > 0 {
		fmt.Fprintf(&sb, "Contests: %d attended, rating %.0f, top %.2f%%\n",
			summary.ContestsAttended, summary.ContestRating, summary.TopPercentage)
	}
	if len(summary.TopLanguages) > 0 {
		langs := make([]string, 0, len(summary.TopLanguages))
		for _, l := range summary.TopLanguages {
			langs = append(langs, fmt.Sprintf("%s (%d)", l.LanguageName, l.ProblemsSolved))
		}
		fmt.Fprintf(&sb, "Languages: %s\n", strings.Join(langs, ", "))
	}
	if len(summary.RecentAccepted) > 0 {
		fmt.Fprintf(&sb, "Recently solved: %s\n", strings.Join(summary.RecentAccepted, ", "))
	}
	fmt.Fprintf(&sb, "Recent failed submissions: %d\n", summary.RecentFailures)
	if focus = strings.TrimSpace(focus); focus != "" {
		fmt.Fprintf(&sb, "\nThe user wants to focus on: %s\n", focus)
	}
	return sb.String()
}
