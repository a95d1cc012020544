package llm

// Message представляет одно сообщение чата в запросе к модели.
type Message struct {
	Role    string `json:"role"`    // system или user
	Content string `json:"content"` // текст сообщения
}

// ChatCompletionRequest представляет запрос на генерацию ответа.
type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

// ChatCompletionResponse представляет ответ модели.
type ChatCompletionResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message      Message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	} `json:"choices"`
}
