package analysis

// SessionMetrics содержит оценки голоса и мимики, посчитанные на стороне клиента.
// Сервис их не вычисляет и не изменяет, только прокидывает в ответ.
type SessionMetrics struct {
	VoiceScore float64 `json:"voice_score"`
	FaceScore  float64 `json:"face_score"`
}

// Tips содержит советы по трем категориям, ожидаемым фронтендом
type Tips struct {
	Content string `json:"content"`
	Voice   string `json:"voice"`
	Face    string `json:"face"`
}

// EvaluationResult представляет результат оценки содержания ответа.
// ContentScore всегда присутствует, в том числе при деградации к fallback.
type EvaluationResult struct {
	ContentScore float64 `json:"content_score"`
	Tips         Tips    `json:"tips"`
	Degraded     bool    `json:"degraded"`
}

// STARResult представляет разбор ответа по методике STAR.
// Все четыре списка всегда присутствуют; пустой список означает
// "в ответе не найдено", а не отсутствие ключа.
type STARResult struct {
	Situation []string `json:"situation"`
	Task      []string `json:"task"`
	Action    []string `json:"action"`
	Result    []string `json:"result"`
	Degraded  bool     `json:"degraded"`
}

// EmptySTARResult возвращает STARResult с четырьмя пустыми списками
func EmptySTARResult() *STARResult {
	return &STARResult{
		Situation: []string{},
		Task:      []string{},
		Action:    []string{},
		Result:    []string{},
	}
}

// ScoreResponse — ответ эндпоинта score-session
type ScoreResponse struct {
	ContentScore    float64 `json:"content_score"`
	Tips            Tips    `json:"tips"`
	VoiceScore      float64 `json:"voice_score"`
	FaceScore       float64 `json:"face_score"`
	TranscriptDebug string  `json:"transcript_debug"`
	Degraded        bool    `json:"degraded"`
}

// ComprehensiveResponse — ответ эндпоинта comprehensive-analysis
type ComprehensiveResponse struct {
	ContentScore    float64     `json:"content_score"`
	Tips            Tips        `json:"tips"`
	VoiceScore      float64     `json:"voice_score"`
	FaceScore       float64     `json:"face_score"`
	TranscriptDebug string      `json:"transcript_debug"`
	Degraded        bool        `json:"degraded"`
	StarAnalysis    *STARResult `json:"star_analysis"`
}
