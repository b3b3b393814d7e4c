package schema

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

// TipField описывает одну категорию советов из словаря config/dictionary.yaml
type TipField struct {
	Name  string
	Title string
	Hint  string
}

type rawDictionary struct {
	Tips map[string]rawTip `yaml:"tips"`
}

type rawTip struct {
	Title string `yaml:"title"`
	Hint  string `yaml:"hint"`
}

// Категории советов, которые фронтенд ожидает в каждом ответе
var requiredCategories = []string{"content", "voice", "face"}

// ParseYAMLDictionary парсит словарь категорий советов.
// Словарь определяет, о чем именно модель должна давать совет в каждой категории.
func ParseYAMLDictionary(yamlContent []byte) (map[string]TipField, error) {
	var raw rawDictionary
	if err := yaml.Unmarshal(yamlContent, &raw); err != nil {
		return nil, fmt.Errorf("ошибка парсинга словаря: %w", err)
	}

	if len(raw.Tips) == 0 {
		return nil, fmt.Errorf("словарь не содержит ни одной категории советов")
	}

	fields := make(map[string]TipField, len(raw.Tips))
	for name, tip := range raw.Tips {
		if tip.Title == "" {
			return nil, fmt.Errorf("категория %q должна иметь title", name)
		}

		fields[name] = TipField{
			Name:  name,
			Title: tip.Title,
			Hint:  tip.Hint,
		}
	}

	for _, required := range requiredCategories {
		if _, ok := fields[required]; !ok {
			return nil, fmt.Errorf("в словаре отсутствует обязательная категория %q", required)
		}
	}

	return fields, nil
}

// DefaultDictionary возвращает встроенный словарь категорий советов
func DefaultDictionary() map[string]TipField {
	return map[string]TipField{
		"content": {
			Name:  "content",
			Title: "Содержание ответа",
			Hint:  "структура, конкретика и полнота ответа",
		},
		"voice": {
			Name:  "voice",
			Title: "Голос",
			Hint:  "темп, громкость и уверенность речи",
		},
		"face": {
			Name:  "face",
			Title: "Мимика",
			Hint:  "зрительный контакт и выражение лица",
		},
	}
}

// RequiredCategories возвращает список обязательных категорий советов
func RequiredCategories() []string {
	out := make([]string, len(requiredCategories))
	copy(out, requiredCategories)
	return out
}
