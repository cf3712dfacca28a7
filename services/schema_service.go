package services

import "advisory_faq/models"

const schemaOrgContext = "https://schema.org"

// BuildFAQPageSchema 生成 schema.org FAQPage 结构化数据，问题顺序与传入顺序一致
func BuildFAQPageSchema(faqs []models.FAQEntry) models.FAQPageSchema {
	questions := make([]models.SchemaQuestion, 0, len(faqs))
	for _, f := range faqs {
		questions = append(questions, models.SchemaQuestion{
			Type: "Question",
			Name: f.Question,
			AcceptedAnswer: models.SchemaAnswer{
				Type: "Answer",
				Text: f.Answer,
			},
		})
	}

	return models.FAQPageSchema{
		Context:    schemaOrgContext,
		Type:       "FAQPage",
		MainEntity: questions,
	}
}

// FAQPageSchemaForPost 生成文章相关FAQ的结构化数据
func (s *FAQService) FAQPageSchemaForPost(slug string, maxResults int) (models.FAQPageSchema, error) {
	faqs, err := s.RelatedFAQsForPost(slug, maxResults)
	if err != nil {
		return models.FAQPageSchema{}, err
	}
	return BuildFAQPageSchema(faqs), nil
}
