// Package classifier loads the pre-trained ticket classification models and
// exposes them behind an opaque classify operation.
package classifier

import (
	"regexp"
	"strings"

	"ticketdesk/internal/shared/config"
)

// nonLetterRegex strips everything except lowercase letters and whitespace.
var nonLetterRegex = regexp.MustCompile(`[^a-z\s]`)

// NormalizeText prepares raw ticket text for classification: lowercased with
// all non-letter, non-whitespace characters removed.
func NormalizeText(text string) string {
	return nonLetterRegex.ReplaceAllString(strings.ToLower(text), "")
}

// Service classifies ticket text by category and priority using model
// artifacts loaded once at startup.
type Service struct {
	categoryModel *linearModel
	priorityModel *linearModel
}

func NewService(cfg *config.ClassifierConfig) (*Service, error) {
	categoryModel, err := loadModel(cfg.CategoryModelPath)
	if err != nil {
		return nil, err
	}

	priorityModel, err := loadModel(cfg.PriorityModelPath)
	if err != nil {
		return nil, err
	}

	return &Service{
		categoryModel: categoryModel,
		priorityModel: priorityModel,
	}, nil
}

// Classify predicts the category and priority of pre-normalized ticket text.
func (s *Service) Classify(normalizedText string) (category, priority string) {
	return s.categoryModel.predict(normalizedText), s.priorityModel.predict(normalizedText)
}
