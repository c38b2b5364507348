package dto

type CreateFAQReq struct {
	Question     string `json:"question" binding:"required,max=500"`
	Answer       string `json:"answer" binding:"required"`
	DisplayOrder int    `json:"display_order"`
}

type UpdateFAQReq struct {
	Question     *string `json:"question" binding:"omitempty,max=500"`
	Answer       *string `json:"answer"`
	DisplayOrder *int    `json:"display_order"`
}

type ReorderFAQsReq struct {
	FAQIDs []uint64 `json:"faq_ids" binding:"required"`
}
