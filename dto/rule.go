package dto

// RuleSelection is one rule in a full-replace rules request: either a
// template reference (with an optional parameter value) or custom text.
type RuleSelection struct {
	RuleTemplateID *uint32 `json:"rule_template_id"`
	ParameterValue string  `json:"parameter_value"`
	CustomText     string  `json:"custom_text"`
	IsEnabled      *bool   `json:"is_enabled"`
	DisplayOrder   int     `json:"display_order"`
}

type SetRulesReq struct {
	Rules []RuleSelection `json:"rules" binding:"required"`
}

type RuleResp struct {
	ID             uint64  `json:"id"`
	RuleTemplateID *uint32 `json:"rule_template_id,omitempty"`
	Category       string  `json:"category,omitempty"`
	Title          string  `json:"title,omitempty"`
	ParameterValue string  `json:"parameter_value,omitempty"`
	CustomText     string  `json:"custom_text,omitempty"`
	IsEnabled      bool    `json:"is_enabled"`
	DisplayOrder   int     `json:"display_order"`
}

// RuleDisplayResp is a rendered rule for the public rules page.
type RuleDisplayResp struct {
	Category string `json:"category,omitempty"`
	Title    string `json:"title,omitempty"`
	Text     string `json:"text"`
}
