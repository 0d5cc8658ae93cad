package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// MaxCommentLen максимальная длина комментария в символах
	MaxCommentLen = 2000
	// MinTitleLen минимальная длина заголовка статьи
	MinTitleLen = 3
	// MaxTitleLen максимальная длина заголовка статьи
	MaxTitleLen = 200
	// MaxSummaryLen максимальная длина анонса статьи
	MaxSummaryLen = 500
)

// ValidateComment проверяет текст комментария.
// Пустой текст и текст только из пробелов отклоняются.
func ValidateComment(content string) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return fmt.Errorf("comment cannot be empty")
	}

	if utf8.RuneCountInString(trimmed) > MaxCommentLen {
		return fmt.Errorf("comment must not exceed %d characters", MaxCommentLen)
	}

	return nil
}

// ValidateArticle проверяет поля статьи перед созданием или изменением
func ValidateArticle(title, summary, content string) error {
	title = strings.TrimSpace(title)
	n := utf8.RuneCountInString(title)

	if n == 0 {
		return fmt.Errorf("title cannot be empty")
	}
	if n < MinTitleLen {
		return fmt.Errorf("title must be at least %d characters long", MinTitleLen)
	}
	if n > MaxTitleLen {
		return fmt.Errorf("title must not exceed %d characters", MaxTitleLen)
	}

	if utf8.RuneCountInString(summary) > MaxSummaryLen {
		return fmt.Errorf("summary must not exceed %d characters", MaxSummaryLen)
	}

	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content cannot be empty")
	}

	return nil
}

// Slugify строит slug статьи из заголовка: латиница и цифры в нижнем
// регистре, остальные символы схлопываются в дефис.
func Slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if b.Len() > 0 && !dash {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
