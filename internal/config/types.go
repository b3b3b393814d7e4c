package config

// AnalysisConfig представляет конфигурацию анализа интервью
type AnalysisConfig struct {
	Scoring   ScoringConfig `yaml:"scoring"`
	Criteria  []Criterion   `yaml:"criteria"`
	Fallbacks Fallbacks     `yaml:"fallbacks"`
}

// ScoringConfig содержит общие настройки оценки
type ScoringConfig struct {
	MinScore      float64 `yaml:"min_score"`
	MaxScore      float64 `yaml:"max_score"`
	FallbackScore float64 `yaml:"fallback_score"`
}

// Criterion представляет один критерий оценки ответа
type Criterion struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Fallbacks содержит тексты советов, возвращаемые при недоступности анализа
type Fallbacks struct {
	ContentTip string `yaml:"content_tip"`
	VoiceTip   string `yaml:"voice_tip"`
	FaceTip    string `yaml:"face_tip"`
}

// Методы для удобного доступа к конфигурации
func (c *AnalysisConfig) GetCriteriaNames() []string {
	names := make([]string, 0, len(c.Criteria))
	for _, criterion := range c.Criteria {
		names = append(names, criterion.Name)
	}
	return names
}

func (c *AnalysisConfig) GetFallbackScore() float64 {
	return c.Scoring.FallbackScore
}
