package models

// LeetcodeProfile is a typed view of the data returned by the profile query.
type LeetcodeProfile struct {
	UserProfile            *MatchedUser       `json:"userProfile"`
	UserContestRanking     *ContestRanking    `json:"userContestRanking"`
	RecentSubmissionList   []RecentSubmission `json:"recentSubmissionList"`
	MatchedUser            *LanguageStats     `json:"matchedUser"`
	RecentAcSubmissionList []AcSubmission     `json:"recentAcSubmissionList"`
}

type MatchedUser struct {
	Username    string      `json:"username"`
	Profile     Profile     `json:"profile"`
	SubmitStats SubmitStats `json:"submitStats"`
}

type Profile struct {
	UserAvatar string `json:"userAvatar"`
	Reputation int    `json:"reputation"`
	Ranking    int    `json:"ranking"`
}

type SubmitStats struct {
	AcSubmissionNum    []DifficultyCount `json:"acSubmissionNum"`
	TotalSubmissionNum []DifficultyCount `json:"totalSubmissionNum"`
}

type DifficultyCount struct {
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

type ContestRanking struct {
	AttendedContestsCount int     `json:"attendedContestsCount"`
	Rating                float64 `json:"rating"`
	GlobalRanking         int     `json:"globalRanking"`
	TotalParticipants     int     `json:"totalParticipants"`
	TopPercentage         float64 `json:"topPercentage"`
}

type RecentSubmission struct {
	Title         string `json:"title"`
	StatusDisplay string `json:"statusDisplay"`
	Lang          string `json:"lang"`
}

type LanguageStats struct {
	LanguageProblemCount []LanguageCount `json:"languageProblemCount"`
}

type LanguageCount struct {
	LanguageName   string `json:"languageName"`
	ProblemsSolved int    `json:"problemsSolved"`
}

type AcSubmission struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	TitleSlug string `json:"titleSlug"`
	Timestamp string `json:"timestamp"`
}

// ProfileSummary is the compact profile returned by the summary endpoint.
type ProfileSummary struct {
	Username         string          `json:"username"`
	Avatar           string          `json:"avatar,omitempty"`
	Ranking          int             `json:"ranking"`
	Reputation       int             `json:"reputation"`
	Solved           map[string]int  `json:"solved"`
	Submissions      map[string]int  `json:"submissions"`
	AcceptanceRate   float64         `json:"acceptanceRate"`
	ContestsAttended int             `json:"contestsAttended"`
	ContestRating    float64         `json:"contestRating"`
	TopPercentage    float64         `json:"topPercentage"`
	TopLanguages     []LanguageCount `json:"topLanguages"`
	RecentAccepted   []string        `json:"recentAccepted"`
	RecentFailures   int             `json:"recentFailures"`
}
