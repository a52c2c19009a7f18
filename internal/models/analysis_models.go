package models

type AIAnalysisRequest struct {
	Tweets  []string `json:"tweets"`
	Concise bool     `json:"concise"`
}

type AIAnalysisResponse struct {
	Analysis string `json:"analysis"`
	Context  string `json:"context,omitempty"`
	Error    string `json:"error,omitempty"`
}

type ChatRequest struct {
	Tweets      []string `json:"tweets"`
	ChatHistory string   `json:"chat_history"`
	UserMessage string   `json:"user_message" binding:"required"`
}

type ChatResponse struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}
