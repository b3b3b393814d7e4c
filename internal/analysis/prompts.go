package analysis

import (
	"fmt"
	"strings"

	"interview-analyzer/internal/config"
	"interview-analyzer/internal/schema"
)

// PromptBuilder собирает промпты для двух видов анализа.
// Сборка детерминирована: одинаковый транскрипт дает байт-в-байт одинаковый промпт.
type PromptBuilder struct {
	criteria   []config.Criterion
	dictionary map[string]schema.TipField
}

// NewPromptBuilder создает сборщик промптов
func NewPromptBuilder(cfg *config.AnalysisConfig, dictionary map[string]schema.TipField) *PromptBuilder {
	return &PromptBuilder{
		criteria:   cfg.Criteria,
		dictionary: dictionary,
	}
}

// BuildContentPrompt собирает промпт для оценки содержания ответа
func (b *PromptBuilder) BuildContentPrompt(transcript string) string {
	prompt := `Оцени ответ кандидата на собеседовании и верни результат в формате JSON.

ИНСТРУКЦИИ:
1. Поставь оценку score числом от 1 до 5 (допускается один знак после запятой)
2. Для каждой категории советов напиши один конкретный совет
3. Советы должны опираться на текст ответа, не будь общим
4. Верни ТОЛЬКО валидный JSON, без markdown и комментариев

КРИТЕРИИ ОЦЕНКИ:
%s
КАТЕГОРИИ СОВЕТОВ:
%s
ФОРМАТ ОТВЕТА:
{"score": 4.2, "tips": {"content": "...", "voice": "...", "face": "..."}}

ТЕКСТ ОТВЕТА КАНДИДАТА:
%s

ОТВЕТ (только JSON):`

	return fmt.Sprintf(prompt, b.criteriaDescription(), b.tipsDescription(), transcript)
}

// BuildStarPrompt собирает промпт для разбора ответа по методике STAR
func (b *PromptBuilder) BuildStarPrompt(transcript string) string {
	prompt := `Разбери ответ кандидата на собеседовании по методике STAR и верни результат в формате JSON.

ИНСТРУКЦИИ:
1. Распредели предложения ответа по четырем ключам: situation, task, action, result
2. situation — контекст и обстоятельства, task — задача кандидата,
   action — его конкретные действия, result — итог и эффект
3. Каждый ключ — массив предложений из текста; если подходящих предложений нет, верни пустой массив []
4. Все четыре ключа обязательны
5. Верни ТОЛЬКО валидный JSON, без markdown и комментариев

ФОРМАТ ОТВЕТА:
{"situation": ["..."], "task": ["..."], "action": ["..."], "result": ["..."]}

ТЕКСТ ОТВЕТА КАНДИДАТА:
%s

ОТВЕТ (только JSON):`

	return fmt.Sprintf(prompt, transcript)
}

func (b *PromptBuilder) criteriaDescription() string {
	var builder strings.Builder

	for _, criterion := range b.criteria {
		builder.WriteString(fmt.Sprintf("- %s (%s): %s\n", criterion.Name, criterion.Title, criterion.Description))
	}

	return builder.String()
}

// tipsDescription перечисляет категории в фиксированном порядке,
// итерация по map дала бы недетерминированный промпт
func (b *PromptBuilder) tipsDescription() string {
	var builder strings.Builder

	for _, name := range schema.RequiredCategories() {
		field, ok := b.dictionary[name]
		if !ok {
			continue
		}
		builder.WriteString(fmt.Sprintf("- %s (%s): %s\n", field.Name, field.Title, field.Hint))
	}

	return builder.String()
}
