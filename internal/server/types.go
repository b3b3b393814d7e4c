package server

// Запросы валидируются на этом слое: до ядра анализа доходят только
// корректные тела. Указатели нужны, чтобы binding:"required" пропускал
// присутствующий, но пустой транскрипт и нулевые оценки.

// ScoreSessionRequest — тело запроса score-session и comprehensive-analysis
type ScoreSessionRequest struct {
	VoiceScore *float64 `json:"voice_score" binding:"required"`
	FaceScore  *float64 `json:"face_score" binding:"required"`
	Transcript *string  `json:"transcript" binding:"required"`
}

// StarAnalysisRequest — тело запроса star-analysis
type StarAnalysisRequest struct {
	Transcript *string `json:"transcript" binding:"required"`
}

// ErrorResponse — тело ответа при ошибке валидации запроса
type ErrorResponse struct {
	Error string `json:"error"`
}
